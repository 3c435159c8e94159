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

// readPointTable reads np (x, y) float pairs starting at line ofs, packed
// three pairs (six floats) per line.
func readPointTable(lines []string, ofs int, np int, opts fortran.Options) (x, y []float64, next int, err error) {
	x = make([]float64, 0, np)
	y = make([]float64, 0, np)
	needed := np * 2
	read := 0
	next = ofs
	for read < needed {
		if next >= len(lines) {
			return nil, nil, ofs, errors.Wrap(ErrTruncated, "TAB1 point table")
		}
		line := pad(lines[next], LineWidth)
		n := valuesPerLine
		if needed-read < n {
			n = needed - read
		}
		row, err := fortran.ReadFields(line, n, true, 0, opts)
		if err != nil {
			return nil, nil, ofs, errors.Wrap(err, "TAB1 point table")
		}
		for i := 0; i < len(row); i += 2 {
			x = append(x, row[i])
			if i+1 < len(row) {
				y = append(y, row[i+1])
			}
		}
		read += n
		next++
	}
	return x, y, next, nil
}

func writePointTable(x, y []float64, opts fortran.Options) []string {
	vals := make([]float64, 0, len(x)*2)
	for i := range x {
		vals = append(vals, x[i], y[i])
	}
	var lines []string
	for i := 0; i < len(vals); i += valuesPerLine {
		chunk := make([]float64, valuesPerLine)
		for j := range chunk {
			if i+j < len(vals) {
				chunk[j] = vals[i+j]
			}
		}
		lines = append(lines, fortran.WriteFields(chunk, opts))
	}
	return lines
}

// ReadTab1 decodes a TAB1 record: a CONT-style head (C1, C2, L1, L2, N1, N2,
// where N1 holds NR and N2 holds NP), followed by NR (NBT, INT) pairs and
// then NP (x, y) pairs.
func ReadTab1(lines []string, ofs int, blankAsZero bool) (map[string]interface{}, int, error) {
	fields, next, err := readSixFieldRecord(lines, ofs, blankAsZero)
	if err != nil {
		return nil, ofs, errors.Wrap(err, "TAB1 record head")
	}
	nr, _ := fields["N1"].(int)
	np, _ := fields["N2"].(int)
	opts := floatOpts(blankAsZero)
	nbt, interp, next, err := readInterpTable(lines, next, nr, opts)
	if err != nil {
		return nil, ofs, err
	}
	x, y, next, err := readPointTable(lines, next, np, opts)
	if err != nil {
		return nil, ofs, err
	}
	fields["NBT"] = nbt
	fields["INT"] = interp
	fields["X"] = x
	fields["Y"] = y
	return fields, next, nil
}

// WriteTab1 formats a TAB1 record.
func WriteTab1(fields map[string]interface{}, opts fortran.Options) []string {
	lines := writeSixFieldRecord(fields, opts)
	nbt, _ := fields["NBT"].([]int)
	interp, _ := fields["INT"].([]int)
	x, _ := fields["X"].([]float64)
	y, _ := fields["Y"].([]float64)
	ctrl := GetCtrl(fields)
	for _, body := range writeInterpTable(nbt, interp, opts) {
		lines = append(lines, body+writeCtrl(ctrl))
	}
	for _, body := range writePointTable(x, y, opts) {
		lines = append(lines, body+writeCtrl(ctrl))
	}
	return lines
}
