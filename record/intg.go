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

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// intgColWidth and intgMaxCols give the per-column width and the maximum
// number of KIJ columns that fit in the 56 characters left after II (5) and
// JJ (5) in a 66-column payload, for a given NDIGIT.
func intgColWidth(ndigit int) int {
	return ndigit + 1
}

func intgMaxCols(ndigit int) int {
	return 56 / intgColWidth(ndigit)
}

// ReadIntg decodes one INTG record line: II and JJ as 5-character integers,
// followed by up to intgMaxCols(ndigit) KIJ values of width ndigit+1.
func ReadIntg(lines []string, ofs int, ndigit int) (map[string]interface{}, int, error) {
	if ofs >= len(lines) {
		return nil, ofs, ErrTruncated
	}
	line := pad(lines[ofs], LineWidth)
	ii, err := strconv.Atoi(strings.TrimSpace(line[0:5]))
	if err != nil {
		return nil, ofs, errors.Wrap(err, "INTG record II")
	}
	jj, err := strconv.Atoi(strings.TrimSpace(line[5:10]))
	if err != nil {
		return nil, ofs, errors.Wrap(err, "INTG record JJ")
	}
	width := intgColWidth(ndigit)
	maxCols := intgMaxCols(ndigit)
	kij := make([]int, 0, maxCols)
	for i := 0; i < maxCols; i++ {
		start := 10 + i*width
		end := start + width
		if start >= 66 || start >= len(line) {
			break
		}
		if end > len(line) {
			end = len(line)
		}
		field := strings.TrimSpace(line[start:end])
		if field == "" {
			kij = append(kij, 0)
			continue
		}
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, ofs, errors.Wrapf(err, "INTG record KIJ[%d]", i)
		}
		kij = append(kij, v)
	}
	ctrl, err := ReadCtrl(line)
	if err != nil {
		return nil, ofs, err
	}
	fields := map[string]interface{}{"II": ii, "JJ": jj, "KIJ": kij}
	setCtrl(fields, ctrl)
	return fields, ofs + 1, nil
}

// WriteIntg formats one INTG record line from II, JJ and the KIJ sequence.
func WriteIntg(fields map[string]interface{}, ndigit int) []string {
	ii, _ := fields["II"].(int)
	jj, _ := fields["JJ"].(int)
	kij, _ := fields["KIJ"].([]int)
	width := intgColWidth(ndigit)

	var b strings.Builder
	b.WriteString(rjust(strconv.Itoa(ii), 5))
	b.WriteString(rjust(strconv.Itoa(jj), 5))
	for _, v := range kij {
		b.WriteString(rjust(strconv.Itoa(v), width))
	}
	body := b.String()
	if len(body) < 66 {
		body += strings.Repeat(" ", 66-len(body))
	}
	return []string{body[:66] + writeCtrl(GetCtrl(fields))}
}
