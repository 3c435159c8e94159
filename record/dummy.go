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

// ReadDummy consumes one opaque line: its control suffix is checked like
// any other record, but its 66-column body is not interpreted at all.
func ReadDummy(lines []string, ofs int) (Ctrl, int, error) {
	if ofs >= len(lines) {
		return Ctrl{}, ofs, ErrTruncated
	}
	ctrl, err := ReadCtrl(pad(lines[ofs], LineWidth))
	if err != nil {
		return Ctrl{}, ofs, errors.Wrap(err, "DUMMY record")
	}
	return ctrl, ofs + 1, nil
}

// WriteDummy formats one opaque blank-body line for the given section
// identity.
func WriteDummy(mat, mf, mt int) []string {
	return []string{blankLine(Ctrl{MAT: mat, MF: mf, MT: mt})}
}
