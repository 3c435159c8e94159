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
	"math"
	"strconv"
	"strings"
)

// ReadFloat parses a fixed-width float field, including ENDF's implicit
// exponent notation (e.g. "1.234+5" for 1.234E+5, "-6.7-8" for -6.7E-8).
//
// The detection rule: scan the field for a '+' or '-' whose preceding
// character is a decimal digit; that is where the exponent starts, and a
// virtual 'E' is inserted there before handing the string to the standard
// float parser. An all-blank field decodes to 0 when opts.BlankAsZero is set.
func ReadFloat(field string, opts Options) (float64, error) {
	if opts.BlankAsZero && strings.TrimSpace(field) == "" {
		return 0, nil
	}
	s := field
	if opts.AcceptSpaces {
		s = strings.ReplaceAll(s, " ", "")
	}
	s = insertImplicitExponent(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &InvalidFloatError{Field: field, Err: err}
	}
	return v, nil
}

// insertImplicitExponent scans s for a sign character immediately following
// a digit (not at position 0) and inserts an 'E' there, e.g. "1.234+5"
// becomes "1.234E+5". Fields already in standard form (with an explicit 'E')
// or with no sign after the mantissa pass through unchanged.
func insertImplicitExponent(s string) string {
	for i := 1; i < len(s); i++ {
		c := s[i]
		if c != '+' && c != '-' {
			continue
		}
		prev := s[i-1]
		if prev >= '0' && prev <= '9' {
			return s[:i] + "E" + s[i:]
		}
	}
	return s
}

// expDigits returns the number of digits reserved for the exponent magnitude
// for a value whose absolute value is av, per the ENDF width rules:
// 1 digit for [1e-9, 1e10), 2 digits for [1e-99, 1e100), 3 digits otherwise,
// and 1 digit for an exact zero.
func expDigits(av float64) int {
	switch {
	case av == 0:
		return 1
	case av >= 1e-9 && av < 1e10:
		return 1
	case av >= 1e-99 && av < 1e100:
		return 2
	default:
		return 3
	}
}

// countSignifDigits counts significant digits in a formatted number string,
// starting from the first non-zero digit and treating interior zeros as
// significant (trailing zeros are not counted); stops at any character that
// is neither a digit nor '.'.
func countSignifDigits(s string) int {
	numSignif := 0
	inSignif := false
	zeroAcc := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		isDigit := c >= '0' && c <= '9'
		if !inSignif && isDigit && c != '0' {
			inSignif = true
		}
		if inSignif {
			if isDigit {
				if c != '0' {
					numSignif += 1 + zeroAcc
					zeroAcc = 0
				} else {
					zeroAcc++
				}
			} else if c != '.' {
				break
			}
		}
	}
	return numSignif
}

// basicNumString formats val without an exponent, per float2basicnumstr:
// a plain decimal representation right-justified to width characters.
func basicNumString(val float64, opts Options) string {
	width := opts.width()
	effWidth := width
	intPart := math.Trunc(val)
	lenIntPart := len(strconv.FormatInt(int64(math.Abs(intPart)), 10))
	isInteger := intPart == val

	if isInteger && intPart == 0 {
		return rjust("0", effWidth)
	}

	wasteSpace := 2
	if opts.AbuseSignPos && val > 0 {
		wasteSpace--
	}
	shouldSkipZero := opts.SkipIntZero && intPart == 0
	if shouldSkipZero {
		effWidth++
	}
	if isInteger {
		wasteSpace--
	}
	floatWidth := effWidth - wasteSpace - lenIntPart

	var numStr string
	if floatWidth > 0 && !isInteger {
		numStr = strconv.FormatFloat(val, 'f', floatWidth, 64)
		if shouldSkipZero {
			dotPos := strings.IndexByte(numStr, '.')
			numStr = numStr[:dotPos-1] + numStr[dotPos:]
		}
	} else {
		numStr = strconv.FormatInt(int64(val), 10)
		if val > 0 && !opts.AbuseSignPos {
			numStr = " " + numStr
		}
		if len(numStr) <= width-2 {
			numStr += "."
			numStr = ljustZero(numStr, width)
		}
	}
	return rjust(numStr, width)
}

// expFormString formats val in ENDF's scientific notation, per
// float2expformstr: sign, mantissa, optional 'E', sign, exponent digits.
func expFormString(val float64, opts Options) string {
	width := opts.width()
	av := math.Abs(val)
	nexp := expDigits(av)
	isPos := val >= 0
	signDec := 1
	if opts.AbuseSignPos && isPos {
		signDec = 0
	}
	expSymbDec := 0
	if opts.KeepE {
		expSymbDec = 1
	}
	var exponent int
	if av != 0 {
		exponent = int(math.Floor(math.Log10(av)))
	}
	mantissa := av
	if av != 0 {
		mantissa = av / math.Pow(10, float64(exponent))
	}
	isExpoPos := exponent >= 0
	absExponent := exponent
	if absExponent < 0 {
		absExponent = -absExponent
	}
	mantissaLen := width - 1 - nexp - signDec - expSymbDec
	mantissaStr := strconv.FormatFloat(mantissa, 'f', mantissaLen-2, 64)

	expSymbStr := ""
	if opts.KeepE {
		expSymbStr = "E"
	}
	exposignStr := "-"
	if isExpoPos {
		exposignStr = "+"
	}
	exponentStr := rjust(strconv.Itoa(absExponent), nexp)

	signStr := " "
	if !isPos {
		signStr = "-"
	} else if opts.AbuseSignPos {
		signStr = ""
	}
	return signStr + mantissaStr + expSymbStr + exposignStr + exponentStr
}

// WriteFloat formats val as a fixed-width ENDF numeric field according to
// opts. See Options for the meaning of AbuseSignPos, KeepE, SkipIntZero and
// PreferNoExp.
func WriteFloat(val float64, opts Options) string {
	width := opts.width()
	if opts.PreferNoExp {
		basic := basicNumString(val, opts)
		expStr := expFormString(val, opts)
		if len(basic) <= width {
			numSignifBasic := countSignifDigits(basic)
			numSignifExp := countSignifDigits(expStr)
			if numSignifBasic >= numSignifExp {
				trimmed := basic
				if strings.Contains(trimmed, ".") {
					trimmed = strings.TrimRight(strings.TrimSpace(trimmed), "0")
					trimmed = strings.TrimRight(trimmed, ".")
				} else {
					trimmed = strings.TrimSpace(trimmed)
				}
				return rjust(trimmed, width)
			}
		}
	}
	return expFormString(val, opts)
}

func rjust(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

func ljustZero(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat("0", width-len(s))
}
