// This file is part of endf - https://github.com/gschnabel/endf
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package record

import "strings"

// Section is a contiguous run of lines sharing one (MF, MT) identity.
type Section struct {
	MAT   int
	MF    int
	MT    int
	Lines []string
}

// SplitSections groups lines by the (MF, MT) read from columns 71..75,
// skipping blank lines and the FEND/MEND/TEND sentinels between sections.
// Each section's Lines run includes its own terminating SEND line.
func SplitSections(lines []string) ([]Section, error) {
	var sections []Section
	var cur *Section

	flush := func() {
		if cur != nil {
			sections = append(sections, *cur)
			cur = nil
		}
	}

	for _, line := range lines {
		padded := pad(line, LineWidth)
		if strings.TrimSpace(padded) == "" {
			continue
		}
		ctrl, err := ReadCtrl(padded)
		if err != nil {
			return nil, err
		}
		if ctrl.MF == 0 {
			// FEND, MEND or TEND: boundary between materials/files, never
			// part of a section's own line run.
			flush()
			continue
		}
		if ctrl.MT == 0 {
			// SEND: closes the running section and belongs to it, even
			// though it carries MT=0 itself.
			if cur != nil {
				cur.Lines = append(cur.Lines, line)
			}
			flush()
			continue
		}
		if cur == nil || cur.MAT != ctrl.MAT || cur.MF != ctrl.MF || cur.MT != ctrl.MT {
			flush()
			cur = &Section{MAT: ctrl.MAT, MF: ctrl.MF, MT: ctrl.MT}
		}
		cur.Lines = append(cur.Lines, line)
	}
	flush()
	return sections, nil
}
