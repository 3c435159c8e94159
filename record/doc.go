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

// Package record implements the eight ENDF-6 record kinds (TEXT, HEAD, CONT,
// DIR, INTG, TAB1, TAB2, LIST) plus the SEND/FEND/MEND/TEND control-only
// lines, and the section splitter that groups raw lines by (MF, MT).
//
// Every line on the wire is 80 columns: a 66-column payload (cols 1-66)
// followed by the control suffix MAT (4), MF (2), MT (3) and NS (5). Read
// functions take a line slice and a cursor offset and return the decoded
// fields as a map plus the advanced cursor; write functions take a field map
// and return the formatted lines, leaving the NS numbering to the caller.
package record
