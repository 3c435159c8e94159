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

// ErrUnexpectedControlRecord is returned when a control-only line is
// encountered that does not match the sentinel layout expected at this
// point (e.g. a SEND line whose MT field is not zero).
type ErrUnexpectedControlRecord struct {
	Want string
	Got  Ctrl
}

func (e *ErrUnexpectedControlRecord) Error() string {
	return "record: expected " + e.Want + " sentinel, got " + ctrlString(e.Got)
}

func ctrlString(c Ctrl) string {
	return "MAT=" + strconv.Itoa(c.MAT) + " MF=" + strconv.Itoa(c.MF) + " MT=" + strconv.Itoa(c.MT)
}

func blankLine(ctrl Ctrl) string {
	return strings.Repeat(" ", 66) + writeCtrl(ctrl)
}

// ReadSend consumes a SEND sentinel: MT=0, MAT/MF equal to the enclosing
// section's identity.
func ReadSend(lines []string, ofs int) (Ctrl, int, error) {
	if ofs >= len(lines) {
		return Ctrl{}, ofs, ErrTruncated
	}
	ctrl, err := ReadCtrl(pad(lines[ofs], LineWidth))
	if err != nil {
		return Ctrl{}, ofs, errors.Wrap(err, "SEND record")
	}
	if ctrl.MT != 0 {
		return Ctrl{}, ofs, &ErrUnexpectedControlRecord{Want: "SEND", Got: ctrl}
	}
	return ctrl, ofs + 1, nil
}

// WriteSend formats a SEND sentinel for the given section identity.
func WriteSend(mat, mf int) []string {
	return []string{blankLine(Ctrl{MAT: mat, MF: mf, MT: 0})}
}

// ReadFend consumes a FEND sentinel: MF=0, MT=0.
func ReadFend(lines []string, ofs int) (Ctrl, int, error) {
	if ofs >= len(lines) {
		return Ctrl{}, ofs, ErrTruncated
	}
	ctrl, err := ReadCtrl(pad(lines[ofs], LineWidth))
	if err != nil {
		return Ctrl{}, ofs, errors.Wrap(err, "FEND record")
	}
	if ctrl.MF != 0 || ctrl.MT != 0 {
		return Ctrl{}, ofs, &ErrUnexpectedControlRecord{Want: "FEND", Got: ctrl}
	}
	return ctrl, ofs + 1, nil
}

// WriteFend formats a FEND sentinel closing the current file (MF) of
// material mat.
func WriteFend(mat int) []string {
	return []string{blankLine(Ctrl{MAT: mat, MF: 0, MT: 0})}
}

// ReadMend consumes a MEND sentinel: MAT=0, MF=0, MT=0.
func ReadMend(lines []string, ofs int) (int, error) {
	if ofs >= len(lines) {
		return ofs, ErrTruncated
	}
	ctrl, err := ReadCtrl(pad(lines[ofs], LineWidth))
	if err != nil {
		return ofs, errors.Wrap(err, "MEND record")
	}
	if ctrl.MAT != 0 || ctrl.MF != 0 || ctrl.MT != 0 {
		return ofs, &ErrUnexpectedControlRecord{Want: "MEND", Got: ctrl}
	}
	return ofs + 1, nil
}

// WriteMend formats the MEND sentinel closing a material.
func WriteMend() []string {
	return []string{blankLine(Ctrl{MAT: 0, MF: 0, MT: 0})}
}

// ReadTend consumes a TEND sentinel: MAT=-1, MF=0, MT=0.
func ReadTend(lines []string, ofs int) (int, error) {
	if ofs >= len(lines) {
		return ofs, ErrTruncated
	}
	ctrl, err := ReadCtrl(pad(lines[ofs], LineWidth))
	if err != nil {
		return ofs, errors.Wrap(err, "TEND record")
	}
	if ctrl.MAT != -1 || ctrl.MF != 0 || ctrl.MT != 0 {
		return ofs, &ErrUnexpectedControlRecord{Want: "TEND", Got: ctrl}
	}
	return ofs + 1, nil
}

// WriteTend formats the tape-terminating TEND sentinel.
func WriteTend() []string {
	return []string{blankLine(Ctrl{MAT: -1, MF: 0, MT: 0})}
}
