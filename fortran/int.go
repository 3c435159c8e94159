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

import (
	"strconv"
	"strings"
)

// ReadInt parses a fixed-width integer field. If the field is all blank and
// opts.BlankAsZero is set, it returns 0 with no error.
func ReadInt(field string, opts Options) (int, error) {
	if opts.BlankAsZero && strings.TrimSpace(field) == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return 0, &InvalidIntegerError{Field: field, Err: err}
	}
	return n, nil
}

// WriteInt formats v as a plain right-justified integer field of the given
// width. It panics if the formatted value does not fit, mirroring the wire
// codec's expectation that callers size fields correctly ahead of time.
func WriteInt(v int, width int) string {
	if width == 0 {
		width = 11
	}
	s := strconv.Itoa(v)
	if len(s) > width {
		panic("fortran: integer " + s + " does not fit in field width " + strconv.Itoa(width))
	}
	return strings.Repeat(" ", width-len(s)) + s
}
