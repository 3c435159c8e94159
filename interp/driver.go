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

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/gschnabel/endf/datatree"
	"github.com/gschnabel/endf/internal/errw"
	"github.com/gschnabel/endf/recipe"
	"github.com/gschnabel/endf/record"
)

// cachedRecipe is the result of parsing one (MF,MT) recipe source string
// once. The recipe grammar is static, so the parsed AST is immutable and
// safe to share across every section that reuses it; only the parse error
// (if any) is cached alongside it so a missing/broken recipe fails the same
// way on every lookup instead of being re-parsed each time.
type cachedRecipe struct {
	ast *recipe.Node
	err error
}

func cacheKey(mf, mt int) string {
	return strconv.Itoa(mf) + "," + strconv.Itoa(mt)
}

// recipeFor resolves and parses (once) the recipe for (mf, mt).
func (p *Parser) recipeFor(mf, mt int) (*recipe.Node, error) {
	key := cacheKey(mf, mt)
	if c, ok := p.cache[key]; ok {
		return c.ast, c.err
	}
	src, ok := p.recipes(mf, mt)
	if !ok {
		err := errors.Errorf("interp: no recipe registered for MF=%d MT=%d", mf, mt)
		p.cache[key] = &cachedRecipe{err: err}
		return nil, err
	}
	ast, err := recipe.Parse(src, key)
	if err != nil {
		err = errors.Wrapf(err, "interp: recipe MF=%d MT=%d", mf, mt)
	}
	p.cache[key] = &cachedRecipe{ast: ast, err: err}
	return ast, err
}

// ParseSection decodes one (MAT,MF,MT) section's lines into a data tree by
// running its recipe in read mode. sec.Lines must include the section's own
// trailing SEND line (as produced by record.SplitSections); a recipe that
// leaves any of them unconsumed is treated as an incomplete decode.
func (p *Parser) ParseSection(sec record.Section) (*datatree.Node, error) {
	ast, err := p.recipeFor(sec.MF, sec.MT)
	if err != nil {
		return nil, &ParserError{MAT: sec.MAT, MF: sec.MF, MT: sec.MT, Err: err}
	}

	data := datatree.New()
	data.Set(datatree.KeyMAT, sec.MAT)
	data.Set(datatree.KeyMF, sec.MF)
	data.Set(datatree.KeyMT, sec.MT)

	st := &state{
		mode:  modeRead,
		lines: sec.Lines,
		mat:   sec.MAT, mf: sec.MF, mt: sec.MT,
		data: data,
		loop: datatree.NewLoopVars(),
		log:  newRecordLog(),
	}
	if err := p.execBody(ast, st); err != nil {
		return nil, &ParserError{MAT: sec.MAT, MF: sec.MF, MT: sec.MT, Err: err, Log: st.log.entries}
	}
	if st.ofs != len(st.lines) {
		err := errors.Errorf("section left %d of %d lines unconsumed", len(st.lines)-st.ofs, len(st.lines))
		return nil, &ParserError{MAT: sec.MAT, MF: sec.MF, MT: sec.MT, Err: err, Log: st.log.entries}
	}
	return data, nil
}

// WriteSection encodes data (a section-root node carrying MAT/MF/MT) back
// to wire lines by running its recipe in write mode. The returned lines
// carry a blank NS field; WriteTape stamps sequence numbers once a
// section's position on the tape is known.
func (p *Parser) WriteSection(data *datatree.Node) ([]string, error) {
	mat, mf, mt, err := data.Ctrl()
	if err != nil {
		return nil, &ParserError{MAT: mat, MF: mf, MT: mt, Err: err}
	}
	ast, err := p.recipeFor(mf, mt)
	if err != nil {
		return nil, &ParserError{MAT: mat, MF: mf, MT: mt, Err: err}
	}
	st := &state{
		mode: modeWrite,
		mat:  mat, mf: mf, mt: mt,
		data: data,
		loop: datatree.NewLoopVars(),
		log:  newRecordLog(),
	}
	if err := p.execBody(ast, st); err != nil {
		return nil, &ParserError{MAT: mat, MF: mf, MT: mt, Err: err, Log: st.log.entries}
	}
	return st.out, nil
}

// FilterEntry names one MF or (MF,MT) selector for a SectionFilter. MT zero
// matches every MT within MF, since MT=0 never names a real section.
type FilterEntry struct {
	MF, MT int
}

// SectionFilter decides which (MF,MT) sections a tape-level parse should
// skip, per should_skip_section: Exclude always wins; an empty Include
// means "everything not excluded".
type SectionFilter struct {
	Include []FilterEntry
	Exclude []FilterEntry
}

func matchesEntry(entries []FilterEntry, mf, mt int) bool {
	for _, e := range entries {
		if e.MF == mf && (e.MT == 0 || e.MT == mt) {
			return true
		}
	}
	return false
}

// ShouldSkip reports whether (mf, mt) is excluded from this parse.
func (f SectionFilter) ShouldSkip(mf, mt int) bool {
	if matchesEntry(f.Exclude, mf, mt) {
		return true
	}
	if len(f.Include) == 0 {
		return false
	}
	return !matchesEntry(f.Include, mf, mt)
}

// SectionResult is one section's outcome from ParseTape: either a decoded
// Data tree, or (in nofail mode) the Err that aborted it plus the section's
// Raw lines so the caller can carry it through unmodified.
type SectionResult struct {
	MAT, MF, MT int
	Data        *datatree.Node
	Err         error
	Raw         []string
}

// ParseTape splits lines into sections and decodes each one not excluded by
// filter. In nofail mode a section's failure is recorded in its
// SectionResult instead of aborting the whole tape.
func (p *Parser) ParseTape(lines []string, filter SectionFilter, nofail bool) ([]SectionResult, error) {
	secs, err := record.SplitSections(lines)
	if err != nil {
		return nil, err
	}
	results := make([]SectionResult, 0, len(secs))
	for _, sec := range secs {
		if filter.ShouldSkip(sec.MF, sec.MT) {
			continue
		}
		data, err := p.ParseSection(sec)
		if err != nil {
			if !nofail {
				return results, err
			}
			results = append(results, SectionResult{MAT: sec.MAT, MF: sec.MF, MT: sec.MT, Err: err, Raw: sec.Lines})
			continue
		}
		results = append(results, SectionResult{MAT: sec.MAT, MF: sec.MF, MT: sec.MT, Data: data})
	}
	return results, nil
}

// ParseFile is ParseTape over a newline-joined tape.
func (p *Parser) ParseFile(content string, filter SectionFilter, nofail bool) ([]SectionResult, error) {
	return p.ParseTape(strings.Split(content, "\n"), filter, nofail)
}

// stampNS overwrites line's NS field (columns 76-80, 1-based) with ns mod
// 100000.
func stampNS(line string, ns int) string {
	if len(line) < record.LineWidth {
		line += strings.Repeat(" ", record.LineWidth-len(line))
	}
	return line[:75] + rjust5(ns%100000)
}

func rjust5(v int) string {
	s := strconv.Itoa(v)
	if len(s) >= 5 {
		return s[len(s)-5:]
	}
	return strings.Repeat(" ", 5-len(s)) + s
}

// sendNS is the NS value stamped on a section's terminating SEND line,
// per ENDF convention, rather than continuing the sequential count.
const sendNS = 99999

// numberSection stamps sequential NS values onto a section's lines, or
// forces NS to 0 for the MF=0 tape head (which carries no real section
// identity to count against). The section's own terminating SEND line
// (MT=0) is excepted from the sequential count and stamped sendNS instead.
func numberSection(lines []string, mf int) []string {
	out := make([]string, len(lines))
	seq := 0
	for i, l := range lines {
		if mf == 0 {
			out[i] = stampNS(l, 0)
			continue
		}
		if ctrl, err := record.ReadCtrl(l); err == nil && ctrl.MT == 0 {
			out[i] = stampNS(l, sendNS)
			continue
		}
		seq++
		out[i] = stampNS(l, seq)
	}
	return out
}

// WriteTape encodes a sequence of section data trees back into one ENDF
// tape, inserting FEND between MF runs, MEND between MAT runs, and a
// trailing TEND. nodes must already be grouped in tape order: consecutive
// entries sharing (MAT,MF) form one run. MF=0 is the tape head: it is
// numbered with NS=0 throughout and never followed by its own FEND.
func (p *Parser) WriteTape(nodes []*datatree.Node) ([]string, error) {
	var out []string
	var curMAT, curMF int
	open := false

	for _, data := range nodes {
		mat, mf, _, err := data.Ctrl()
		if err != nil {
			return nil, err
		}
		if open && mat != curMAT {
			if curMF != 0 {
				out = append(out, record.WriteFend(curMAT)...)
			}
			out = append(out, record.WriteMend()...)
			open = false
		} else if open && mf != curMF {
			if curMF != 0 {
				out = append(out, record.WriteFend(curMAT)...)
			}
		}
		curMAT, curMF = mat, mf
		open = true

		lines, err := p.WriteSection(data)
		if err != nil {
			return nil, err
		}
		out = append(out, numberSection(lines, mf)...)
	}
	if open {
		if curMF != 0 {
			out = append(out, record.WriteFend(curMAT)...)
		}
		out = append(out, record.WriteMend()...)
	}
	out = append(out, record.WriteTend()...)
	return out, nil
}

// WriteFile is WriteTape joined into one newline-delimited tape string.
func (p *Parser) WriteFile(nodes []*datatree.Node) (string, error) {
	lines, err := p.WriteTape(nodes)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// WriteTo streams WriteTape's output to w one line at a time through an
// errw.Writer, so the per-line write error only needs checking once at the
// end rather than after every line.
func (p *Parser) WriteTo(w io.Writer, nodes []*datatree.Node) error {
	lines, err := p.WriteTape(nodes)
	if err != nil {
		return err
	}
	ew := errw.New(w)
	for _, l := range lines {
		ew.WriteLine(l)
	}
	return ew.Err
}
