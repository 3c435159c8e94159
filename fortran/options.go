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

// Options controls reading and writing of fixed-width numeric fields.
//
// Width is the field width in characters; zero means the ENDF default of 11.
// AcceptSpaces strips interior spaces from a field before parsing it as a
// float. BlankAsZero makes an all-blank integer or float field decode to
// zero instead of raising an error.
//
// AbuseSignPos, KeepE, SkipIntZero and PreferNoExp only affect writing; see
// WriteFloat.
type Options struct {
	Width        int
	AcceptSpaces bool
	BlankAsZero  bool
	AbuseSignPos bool
	KeepE        bool
	SkipIntZero  bool
	PreferNoExp  bool
}

// width returns the effective field width, defaulting to 11.
func (o Options) width() int {
	if o.Width == 0 {
		return 11
	}
	return o.Width
}

// Default returns the ENDF-standard field options: width 11, interior
// spaces accepted, nothing else enabled.
func Default() Options {
	return Options{Width: 11, AcceptSpaces: true}
}
