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

package interp

import "github.com/gschnabel/endf/fortran"

// RecipeSource resolves the recipe source text responsible for section
// (mf, mt). A caller wires this up from whatever recipe library it has;
// the library of concrete recipe strings is explicitly out of scope here.
type RecipeSource func(mf, mt int) (src string, ok bool)

// Option configures a Parser, following the functional-options pattern
// vm.New uses for DataSize/AddressSize/Input/Output/Shrink.
type Option func(*Parser)

// IgnoreNumberMismatch treats a literal-vs-wire number disagreement as a
// warning instead of an error (read mode).
func IgnoreNumberMismatch(v bool) Option {
	return func(p *Parser) { p.ignoreNumberMismatch = v }
}

// IgnoreZeroMismatch does the same, but only when the wire value is zero.
// Defaults to true, matching the source's default.
func IgnoreZeroMismatch(v bool) Option {
	return func(p *Parser) { p.ignoreZeroMismatch = v }
}

// IgnoreVarspecMismatch allows `var?` to disagree silently with an
// earlier binding of the same variable.
func IgnoreVarspecMismatch(v bool) Option {
	return func(p *Parser) { p.ignoreVarspecMismatch = v }
}

// FuzzyMatching compares floats with relative tolerance instead of exact
// equality when checking number/variable consistency.
func FuzzyMatching(atol, rtol float64) Option {
	return func(p *Parser) { p.fuzzyMatching = true; p.atol, p.rtol = atol, rtol }
}

// BlankAsZero makes an all-blank integer/float field decode to zero.
func BlankAsZero(v bool) Option {
	return func(p *Parser) { p.blankAsZero = v }
}

// AcceptSpaces sets the AcceptSpaces flag of the float options the Parser
// writes with. Parsing does not consult it: the record readers always strip
// interior spaces from float fields.
func AcceptSpaces(v bool) Option {
	return func(p *Parser) { p.acceptSpaces = v }
}

// LogLookaheadTraceback includes speculative lookahead attempts in the
// record log rather than only committed reads.
func LogLookaheadTraceback(v bool) Option {
	return func(p *Parser) { p.logLookahead = v }
}

// Width overrides the width of float fields when writing (default 11).
// Integer fields and all reads keep the fixed 11-column layout.
func Width(w int) Option {
	return func(p *Parser) { p.width = w }
}

// WriteOptions controls the Fortran float-writing dialect: AbuseSignPos,
// SkipIntZero, PreferNoExp, KeepE. See package fortran.
func WriteOptions(abuseSignPos, skipIntZero, preferNoExp, keepE bool) Option {
	return func(p *Parser) {
		p.abuseSignPos, p.skipIntZero, p.preferNoExp, p.keepE = abuseSignPos, skipIntZero, preferNoExp, keepE
	}
}

// Parser drives recipe execution over ENDF sections. Construct with New.
type Parser struct {
	recipes RecipeSource
	cache   map[string]*cachedRecipe

	ignoreNumberMismatch  bool
	ignoreZeroMismatch    bool
	ignoreVarspecMismatch bool
	fuzzyMatching         bool
	atol, rtol            float64
	blankAsZero           bool
	acceptSpaces          bool
	logLookahead          bool
	width                 int
	abuseSignPos          bool
	skipIntZero           bool
	preferNoExp           bool
	keepE                 bool
}

// New creates a Parser that resolves per-(MF,MT) recipes through recipes.
func New(recipes RecipeSource, opts ...Option) *Parser {
	p := &Parser{
		recipes:            recipes,
		cache:              make(map[string]*cachedRecipe),
		ignoreZeroMismatch: true,
		acceptSpaces:       true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Parser) floatOptions() fortran.Options {
	return fortran.Options{
		Width:        p.width,
		AcceptSpaces: p.acceptSpaces,
		BlankAsZero:  p.blankAsZero,
		AbuseSignPos: p.abuseSignPos,
		KeepE:        p.keepE,
		SkipIntZero:  p.skipIntZero,
		PreferNoExp:  p.preferNoExp,
	}
}
