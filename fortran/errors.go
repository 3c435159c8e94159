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

import "fmt"

// InvalidIntegerError is raised when a fixed-width integer field cannot be
// parsed as an integer.
type InvalidIntegerError struct {
	Field string
	Err   error
}

func (e *InvalidIntegerError) Error() string {
	return fmt.Sprintf("invalid integer field %q: %v", e.Field, e.Err)
}

func (e *InvalidIntegerError) Unwrap() error { return e.Err }

// InvalidFloatError is raised when a fixed-width float field cannot be
// parsed as a number.
type InvalidFloatError struct {
	Field string
	Err   error
}

func (e *InvalidFloatError) Error() string {
	return fmt.Sprintf("invalid float field %q: %v", e.Field, e.Err)
}

func (e *InvalidFloatError) Unwrap() error { return e.Err }
