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

import "github.com/pkg/errors"

// ErrTruncated is returned when the cursor runs past the end of the line
// slice while a record expects at least one more line.
var ErrTruncated = errors.New("record: unexpected end of input")

// ReadText decodes a TEXT record: a single 66-character free text field in
// columns 1-66, named HL, followed by the control suffix.
func ReadText(lines []string, ofs int) (map[string]interface{}, int, error) {
	if ofs >= len(lines) {
		return nil, ofs, ErrTruncated
	}
	line := pad(lines[ofs], LineWidth)
	ctrl, err := ReadCtrl(line)
	if err != nil {
		return nil, ofs, errors.Wrap(err, "TEXT record")
	}
	fields := map[string]interface{}{"HL": line[:66]}
	setCtrl(fields, ctrl)
	return fields, ofs + 1, nil
}

// WriteText formats a TEXT record. fields must contain HL and MAT/MF/MT.
func WriteText(fields map[string]interface{}) []string {
	hl, _ := fields["HL"].(string)
	line := pad(hl, 66) + writeCtrl(GetCtrl(fields))
	return []string{line}
}
