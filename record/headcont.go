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

// readSixFields parses the six 11-character fields in columns 1-66 as
// C1, C2 (float), L1, L2, N1, N2 (int).
func readSixFields(line string, opts fortran.Options) (c1, c2 float64, l1, l2, n1, n2 int, err error) {
	c1, err = fortran.ReadFloat(line[0:11], opts)
	if err != nil {
		return
	}
	c2, err = fortran.ReadFloat(line[11:22], opts)
	if err != nil {
		return
	}
	l1, err = fortran.ReadInt(line[22:33], opts)
	if err != nil {
		return
	}
	l2, err = fortran.ReadInt(line[33:44], opts)
	if err != nil {
		return
	}
	n1, err = fortran.ReadInt(line[44:55], opts)
	if err != nil {
		return
	}
	n2, err = fortran.ReadInt(line[55:66], opts)
	return
}

func writeSixFields(c1, c2 float64, l1, l2, n1, n2 int, opts fortran.Options) string {
	return fortran.WriteFloat(c1, opts) + fortran.WriteFloat(c2, opts) +
		fortran.WriteInt(l1, 11) + fortran.WriteInt(l2, 11) +
		fortran.WriteInt(n1, 11) + fortran.WriteInt(n2, 11)
}

func floatOpts(blankAsZero bool) fortran.Options {
	o := fortran.Default()
	o.BlankAsZero = blankAsZero
	return o
}

// ReadHead decodes a HEAD record: the same six-field layout as CONT, used to
// mark the start of a section (ZA, AWR conventionally occupy C1, C2).
func ReadHead(lines []string, ofs int, blankAsZero bool) (map[string]interface{}, int, error) {
	fields, next, err := readSixFieldRecord(lines, ofs, blankAsZero)
	if err != nil {
		return nil, ofs, errors.Wrap(err, "HEAD record")
	}
	return fields, next, nil
}

// WriteHead formats a HEAD record.
func WriteHead(fields map[string]interface{}, opts fortran.Options) []string {
	return writeSixFieldRecord(fields, opts)
}

// ReadCont decodes a CONT record (see ReadHead for layout).
func ReadCont(lines []string, ofs int, blankAsZero bool) (map[string]interface{}, int, error) {
	fields, next, err := readSixFieldRecord(lines, ofs, blankAsZero)
	if err != nil {
		return nil, ofs, errors.Wrap(err, "CONT record")
	}
	return fields, next, nil
}

// WriteCont formats a CONT record.
func WriteCont(fields map[string]interface{}, opts fortran.Options) []string {
	return writeSixFieldRecord(fields, opts)
}

func readSixFieldRecord(lines []string, ofs int, blankAsZero bool) (map[string]interface{}, int, error) {
	if ofs >= len(lines) {
		return nil, ofs, ErrTruncated
	}
	line := pad(lines[ofs], LineWidth)
	opts := floatOpts(blankAsZero)
	c1, c2, l1, l2, n1, n2, err := readSixFields(line, opts)
	if err != nil {
		return nil, ofs, err
	}
	ctrl, err := ReadCtrl(line)
	if err != nil {
		return nil, ofs, err
	}
	fields := map[string]interface{}{
		"C1": c1, "C2": c2, "L1": l1, "L2": l2, "N1": n1, "N2": n2,
	}
	setCtrl(fields, ctrl)
	return fields, ofs + 1, nil
}

func writeSixFieldRecord(fields map[string]interface{}, opts fortran.Options) []string {
	c1, _ := fields["C1"].(float64)
	c2, _ := fields["C2"].(float64)
	l1, _ := fields["L1"].(int)
	l2, _ := fields["L2"].(int)
	n1, _ := fields["N1"].(int)
	n2, _ := fields["N2"].(int)
	line := writeSixFields(c1, c2, l1, l2, n1, n2, opts) + writeCtrl(GetCtrl(fields))
	return []string{line}
}
