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
	"github.com/pkg/errors"

	"github.com/gschnabel/endf/fortran"
)

// valuesPerLine is the number of 11-character float fields packed onto a
// single LIST/TAB1-body line.
const valuesPerLine = 6

// ReadList decodes a LIST record: a CONT-style head (C1, C2, L1, L2, N1, N2)
// where N1 gives the number of body values, followed by N1 floats packed
// six per line with the final line zero-padded.
func ReadList(lines []string, ofs int, blankAsZero bool) (map[string]interface{}, int, error) {
	fields, next, err := readSixFieldRecord(lines, ofs, blankAsZero)
	if err != nil {
		return nil, ofs, errors.Wrap(err, "LIST record head")
	}
	n1, _ := fields["N1"].(int)
	opts := floatOpts(blankAsZero)
	vals := make([]float64, 0, n1)
	for len(vals) < n1 {
		if next >= len(lines) {
			return nil, ofs, errors.Wrap(ErrTruncated, "LIST record body")
		}
		line := pad(lines[next], LineWidth)
		remaining := n1 - len(vals)
		n := valuesPerLine
		if remaining < n {
			n = remaining
		}
		row, err := fortran.ReadFields(line, n, true, 0, opts)
		if err != nil {
			return nil, ofs, errors.Wrap(err, "LIST record body")
		}
		vals = append(vals, row...)
		next++
	}
	fields["vals"] = vals
	return fields, next, nil
}

// WriteList formats a LIST record.
func WriteList(fields map[string]interface{}, opts fortran.Options) []string {
	lines := writeSixFieldRecord(fields, opts)
	vals, _ := fields["vals"].([]float64)
	ctrl := GetCtrl(fields)
	for i := 0; i < len(vals); i += valuesPerLine {
		chunk := make([]float64, valuesPerLine)
		for j := range chunk {
			if i+j < len(vals) {
				chunk[j] = vals[i+j]
			}
		}
		lines = append(lines, fortran.WriteFields(chunk, opts)+writeCtrl(ctrl))
	}
	return lines
}
