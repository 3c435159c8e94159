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

// Package fortran implements the fixed-width Fortran-style numeric field
// codec used by the ENDF-6 wire format: fields are W characters wide
// (11 by default), integers are plain right-justified digit strings, and
// floats admit ENDF's "implicit exponent" convention where the E before
// the exponent is omitted, e.g. "1.234+5" for 1.234E+5.
package fortran
