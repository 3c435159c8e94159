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

// intPerLine is the number of 11-character integer fields packed onto a
// single NBT/INT interpolation-table line (three (NBT,INT) pairs).
const intPerLine = 6

// readInterpTable reads nr (NBT, INT) integer pairs starting at line ofs,
// packed six integers (three pairs) per line.
func readInterpTable(lines []string, ofs int, nr int, opts fortran.Options) (nbt, interp []int, next int, err error) {
	nbt = make([]int, 0, nr)
	interp = make([]int, 0, nr)
	needed := nr * 2
	read := 0
	next = ofs
	for read < needed {
		if next >= len(lines) {
			return nil, nil, ofs, errors.Wrap(ErrTruncated, "interpolation table")
		}
		line := pad(lines[next], LineWidth)
		n := intPerLine
		if needed-read < n {
			n = needed - read
		}
		for i := 0; i < n; i += 2 {
			start := i * FieldWidth
			v1, err := fortran.ReadInt(line[start:start+FieldWidth], opts)
			if err != nil {
				return nil, nil, ofs, errors.Wrap(err, "interpolation table NBT")
			}
			nbt = append(nbt, v1)
			if i+1 < n {
				v2, err := fortran.ReadInt(line[start+FieldWidth:start+2*FieldWidth], opts)
				if err != nil {
					return nil, nil, ofs, errors.Wrap(err, "interpolation table INT")
				}
				interp = append(interp, v2)
			}
		}
		read += n
		next++
	}
	return nbt, interp, next, nil
}

func writeInterpTable(nbt, interp []int, opts fortran.Options) []string {
	var lines []string
	total := len(nbt) * 2
	vals := make([]int, 0, total)
	for i := range nbt {
		vals = append(vals, nbt[i], interp[i])
	}
	for i := 0; i < len(vals); i += intPerLine {
		var line string
		for j := 0; j < intPerLine; j++ {
			if i+j < len(vals) {
				line += fortran.WriteInt(vals[i+j], FieldWidth)
			} else {
				line += fortran.WriteInt(0, FieldWidth)
			}
		}
		lines = append(lines, line)
	}
	return lines
}

// ReadTab2 decodes a TAB2 record: a CONT-style head (C1, C2, L1, L2, N1, N2,
// where N1 holds NR) followed by NR (NBT, INT) pairs.
func ReadTab2(lines []string, ofs int, blankAsZero bool) (map[string]interface{}, int, error) {
	fields, next, err := readSixFieldRecord(lines, ofs, blankAsZero)
	if err != nil {
		return nil, ofs, errors.Wrap(err, "TAB2 record head")
	}
	nr, _ := fields["N1"].(int)
	opts := floatOpts(blankAsZero)
	nbt, interp, next, err := readInterpTable(lines, next, nr, opts)
	if err != nil {
		return nil, ofs, err
	}
	fields["NBT"] = nbt
	fields["INT"] = interp
	return fields, next, nil
}

// WriteTab2 formats a TAB2 record.
func WriteTab2(fields map[string]interface{}, opts fortran.Options) []string {
	lines := writeSixFieldRecord(fields, opts)
	nbt, _ := fields["NBT"].([]int)
	interp, _ := fields["INT"].([]int)
	ctrl := GetCtrl(fields)
	for _, body := range writeInterpTable(nbt, interp, opts) {
		lines = append(lines, body+writeCtrl(ctrl))
	}
	return lines
}
