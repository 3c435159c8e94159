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
	"strings"

	"github.com/pkg/errors"

	"github.com/gschnabel/endf/fortran"
)

// ReadDir decodes a DIR record: the first two of the six 11-char fields are
// blank, followed by L1, L2, N1, N2 as integers.
func ReadDir(lines []string, ofs int, blankAsZero bool) (map[string]interface{}, int, error) {
	if ofs >= len(lines) {
		return nil, ofs, ErrTruncated
	}
	line := pad(lines[ofs], LineWidth)
	opts := floatOpts(blankAsZero)
	l1, err := fortran.ReadInt(line[22:33], opts)
	if err != nil {
		return nil, ofs, errors.Wrap(err, "DIR record L1")
	}
	l2, err := fortran.ReadInt(line[33:44], opts)
	if err != nil {
		return nil, ofs, errors.Wrap(err, "DIR record L2")
	}
	n1, err := fortran.ReadInt(line[44:55], opts)
	if err != nil {
		return nil, ofs, errors.Wrap(err, "DIR record N1")
	}
	n2, err := fortran.ReadInt(line[55:66], opts)
	if err != nil {
		return nil, ofs, errors.Wrap(err, "DIR record N2")
	}
	ctrl, err := ReadCtrl(line)
	if err != nil {
		return nil, ofs, err
	}
	fields := map[string]interface{}{"L1": l1, "L2": l2, "N1": n1, "N2": n2}
	setCtrl(fields, ctrl)
	return fields, ofs + 1, nil
}

// WriteDir formats a DIR record.
func WriteDir(fields map[string]interface{}, opts fortran.Options) []string {
	l1, _ := fields["L1"].(int)
	l2, _ := fields["L2"].(int)
	n1, _ := fields["N1"].(int)
	n2, _ := fields["N2"].(int)
	blank := strings.Repeat(" ", 11)
	line := blank + blank + fortran.WriteInt(l1, 11) + fortran.WriteInt(l2, 11) +
		fortran.WriteInt(n1, 11) + fortran.WriteInt(n2, 11) + writeCtrl(GetCtrl(fields))
	return []string{line}
}
