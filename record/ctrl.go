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
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// LineWidth is the full width of an ENDF wire line.
const LineWidth = 80

// FieldWidth is the width of a single numeric field on the wire.
const FieldWidth = 11

// Ctrl holds the MAT/MF/MT control numbers that identify an ENDF section.
// Sentinel values: SEND has MT=0; FEND has MF=0, MT=0; MEND has MAT=0, MF=0,
// MT=0; TEND has MAT=-1, MF=0, MT=0.
type Ctrl struct {
	MAT int
	MF  int
	MT  int
}

// pad right-pads or truncates s to exactly n characters.
func pad(s string, n int) string {
	if len(s) >= n {
		return s[:n]
	}
	return s + strings.Repeat(" ", n-len(s))
}

// ReadCtrl parses the MAT/MF/MT control numbers (columns 67-75) of line; the
// NS field (columns 76-80) is not read.
func ReadCtrl(line string) (Ctrl, error) {
	line = pad(line, LineWidth)
	mat, err := strconv.Atoi(strings.TrimSpace(line[66:70]))
	if err != nil {
		return Ctrl{}, errors.Wrap(err, "invalid MAT field")
	}
	mf, err := strconv.Atoi(strings.TrimSpace(line[70:72]))
	if err != nil {
		return Ctrl{}, errors.Wrap(err, "invalid MF field")
	}
	mt, err := strconv.Atoi(strings.TrimSpace(line[72:75]))
	if err != nil {
		return Ctrl{}, errors.Wrap(err, "invalid MT field")
	}
	return Ctrl{MAT: mat, MF: mf, MT: mt}, nil
}

// writeCtrl formats the MAT/MF/MT/NS suffix (columns 67-80), with the NS
// field left blank; the driver overwrites those five columns with the
// sequence number once a record's position in the output is known.
func writeCtrl(c Ctrl) string {
	return rjust(strconv.Itoa(c.MAT), 4) + rjust(strconv.Itoa(c.MF), 2) + rjust(strconv.Itoa(c.MT), 3) + strings.Repeat(" ", 5)
}

func rjust(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return strings.Repeat(" ", n-len(s)) + s
}

// GetCtrl extracts MAT/MF/MT from a decoded field map (as produced by any
// Read* function in this package).
func GetCtrl(fields map[string]interface{}) Ctrl {
	c := Ctrl{}
	if v, ok := fields["MAT"].(int); ok {
		c.MAT = v
	}
	if v, ok := fields["MF"].(int); ok {
		c.MF = v
	}
	if v, ok := fields["MT"].(int); ok {
		c.MT = v
	}
	return c
}

func setCtrl(fields map[string]interface{}, c Ctrl) {
	fields["MAT"] = c.MAT
	fields["MF"] = c.MF
	fields["MT"] = c.MT
}
