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

package fortran

import "errors"

// ErrBlankField is returned by ReadFields when a blank field is encountered
// and the caller supplied no sentinel value for it.
var ErrBlankField = errors.New("fortran: blank field encountered with no sentinel value")

// ReadFields splits line into n fields of opts.Width characters each and
// parses every one as a float. A wholly-blank field decodes to blank if
// hasBlank is true, or returns ErrBlankField otherwise.
func ReadFields(line string, n int, hasBlank bool, blank float64, opts Options) ([]float64, error) {
	width := opts.width()
	vals := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		start := i * width
		end := start + width
		var field string
		if start < len(line) {
			if end > len(line) {
				end = len(line)
			}
			field = line[start:end]
		}
		if isBlankField(field, width) {
			if !hasBlank {
				return nil, ErrBlankField
			}
			vals = append(vals, blank)
			continue
		}
		v, err := ReadFloat(field, opts)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}

// WriteFields formats vals as a concatenation of fixed-width fields.
func WriteFields(vals []float64, opts Options) string {
	var b []byte
	for _, v := range vals {
		b = append(b, WriteFloat(v, opts)...)
	}
	return string(b)
}

// isBlankField reports whether field (possibly shorter than width because
// the source line ended early) consists entirely of spaces.
func isBlankField(field string, width int) bool {
	for _, c := range field {
		if c != ' ' {
			return false
		}
	}
	return len(field) <= width
}
