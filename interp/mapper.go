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
	"github.com/pkg/errors"

	"github.com/gschnabel/endf/datatree"
	"github.com/gschnabel/endf/eval"
	"github.com/gschnabel/endf/recipe"
	"github.com/gschnabel/endf/record"
)

// execRecord dispatches one endf_line-shaped recipe node to its mapper.
func (p *Parser) execRecord(n *recipe.Node, st *state) error {
	switch n.Name {
	case "head_record":
		return p.mapSixField("HEAD", n, st)
	case "cont_record":
		return p.mapSixField("CONT", n, st)
	case "dir_record":
		return p.mapDir(n, st)
	case "intg_record":
		return p.mapIntg(n, st)
	case "tab1_record":
		return p.mapTab1(n, st)
	case "tab2_record":
		return p.mapTab2(n, st)
	case "list_record":
		return p.mapList(n, st)
	case "text_record":
		return p.mapText(n, st)
	case "send_record":
		return p.mapSend(n, st)
	case "dummy_record":
		return p.mapDummy(n, st)
	default:
		return errors.Errorf("interp: %s is not a record statement", n.Name)
	}
}

func safeLine(lines []string, i int) string {
	if i >= 0 && i < len(lines) {
		return lines[i]
	}
	return ""
}

// ctrlSlot resolves one ctrl_spec slot: a literal integer enforces an exact
// match, while the bare MAT/MF/MT keyword means "this section's value".
func ctrlSlot(spec *recipe.Node, current int) int {
	if v, ok := spec.Value.(int); ok {
		return v
	}
	return current
}

func (p *Parser) checkCtrl(ctrlSpec *recipe.Node, observed record.Ctrl, st *state) error {
	wantMAT := ctrlSlot(ctrlSpec.Children[0], st.mat)
	wantMF := ctrlSlot(ctrlSpec.Children[1], st.mf)
	wantMT := ctrlSlot(ctrlSpec.Children[2], st.mt)
	if observed.MAT != wantMAT {
		return &UnexpectedControlRecordError{Field: "MAT", Want: wantMAT, Got: observed.MAT}
	}
	if observed.MF != wantMF {
		return &UnexpectedControlRecordError{Field: "MF", Want: wantMF, Got: observed.MF}
	}
	if observed.MT != wantMT {
		return &UnexpectedControlRecordError{Field: "MT", Want: wantMT, Got: observed.MT}
	}
	return nil
}

// varName extracts the plain variable name backing expr, peeling the
// `var?` wrapper if present, for error messages.
func varName(expr *recipe.Node) string {
	n := expr
	if n.Name == "inconsistent_varspec" {
		n = n.Children[0]
	}
	if n.Name == "extvarname" {
		name, _ := recipe.GetChildValue(n, "VARNAME").(string)
		return name
	}
	return n.Name
}

func (p *Parser) valuesEqual(a, b eval.Value) bool {
	if p.fuzzyMatching {
		return fuzzyEqual(a.F, b.F, p.atol, p.rtol)
	}
	return a.F == b.F
}

func fuzzyEqual(a, b, atol, rtol float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	amax := abs(a)
	if babs := abs(b); babs > amax {
		amax = babs
	}
	tol := rtol * amax
	if atol > tol {
		tol = atol
	}
	return diff <= tol
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func (p *Parser) tolerateMismatch(value eval.Value) bool {
	if p.ignoreNumberMismatch {
		return true
	}
	if p.ignoreZeroMismatch && value.F == 0 {
		return true
	}
	return false
}

// readBind binds expr against value read off the wire: if expr carries the
// section's single unknown, Solve binds it; otherwise the forward value is
// compared against value subject to the mismatch-tolerance options.
func (p *Parser) readBind(expr *recipe.Node, value eval.Value, st *state) error {
	res, err := eval.Solve(expr, value, st.data, st.loop)
	if err != nil {
		return err
	}
	if res.Bound {
		return nil
	}
	if p.valuesEqual(res.Computed, value) {
		return nil
	}
	switch expr.Name {
	case "number", "desired_number":
		if p.tolerateMismatch(value) {
			return nil
		}
		return &NumberMismatchError{Want: res.Computed.F, Got: value.F}
	case "inconsistent_varspec":
		if p.ignoreVarspecMismatch {
			return nil
		}
		return &InconsistentVariableBindingError{Name: varName(expr), Old: res.Computed.F, New: value.F}
	default:
		return &InconsistentVariableBindingError{Name: varName(expr), Old: res.Computed.F, New: value.F}
	}
}

// valCursor threads a read position through a LIST/INTG body's nested
// list_loops in read mode, and accumulates produced values in write mode.
type valCursor struct {
	vals []eval.Value
	idx  int
}

func floatsToValues(fs []float64) []eval.Value {
	vs := make([]eval.Value, len(fs))
	for i, f := range fs {
		vs[i] = eval.Float(f)
	}
	return vs
}

func valuesToFloats(vs []eval.Value) []float64 {
	fs := make([]float64, len(vs))
	for i, v := range vs {
		fs[i] = v.F
	}
	return fs
}

func intsToValues(is []int) []eval.Value {
	vs := make([]eval.Value, len(is))
	for i, v := range is {
		vs[i] = eval.Int(v)
	}
	return vs
}

func valuesToInts(vs []eval.Value) []int {
	is := make([]int, len(vs))
	for i, v := range vs {
		is[i] = int(v.F)
	}
	return is
}

// walkListBody executes one body item of a LIST or INTG field list against
// cur: LINEPADDING advances to the next 6-wide boundary, list_loop binds its
// loop variable over [start,stop] and recurses into its own body, and any
// other item is a single value bound (read mode) or produced (write mode)
// through the same Solve/Eval machinery as a plain field.
func (p *Parser) walkListBody(item *recipe.Node, cur *valCursor, st *state) error {
	switch item.Name {
	case "LINEPADDING":
		pad := (6 - cur.idx%6) % 6
		for i := 0; i < pad; i++ {
			if st.mode == modeRead {
				if cur.idx >= len(cur.vals) {
					return &MoreListElementsExpectedError{Record: "LIST", WantIdx: cur.idx, BodyLen: len(cur.vals)}
				}
				cur.idx++
			} else {
				cur.vals = append(cur.vals, eval.Int(0))
				cur.idx++
			}
		}
		return nil
	case "list_loop":
		body := recipe.GetChild(item, "list_body")
		varName, _ := recipe.GetChildValue(item, "VARNAME").(string)
		startExpr, stopExpr := item.Children[2], item.Children[3]
		startV, err := eval.Eval(startExpr, st.data, st.loop)
		if err != nil {
			return err
		}
		stopV, err := eval.Eval(stopExpr, st.data, st.loop)
		if err != nil {
			return err
		}
		for i := int(startV.F); i <= int(stopV.F); i++ {
			st.loop.Bind(varName, i)
			for _, child := range body.Children {
				if err := p.walkListBody(child, cur, st); err != nil {
					st.loop.Unbind(varName)
					return err
				}
			}
		}
		st.loop.Unbind(varName)
		return nil
	default:
		if st.mode == modeRead {
			if cur.idx >= len(cur.vals) {
				return &MoreListElementsExpectedError{Record: "LIST", WantIdx: cur.idx, BodyLen: len(cur.vals)}
			}
			v := cur.vals[cur.idx]
			cur.idx++
			return p.readBind(item, v, st)
		}
		v, err := eval.Eval(item, st.data, st.loop)
		if err != nil {
			return err
		}
		cur.vals = append(cur.vals, v)
		cur.idx++
		return nil
	}
}

var sixFieldSlots = []string{"C1", "C2", "L1", "L2", "N1", "N2"}

// mapSixField drives a HEAD or CONT record: all six positional fields bind
// directly to the recipe's field-list expressions.
func (p *Parser) mapSixField(kind string, n *recipe.Node, st *state) error {
	ctrlSpec := recipe.GetChild(n, "ctrl_spec")
	fields := recipe.GetChild(n, "fields")
	if len(fields.Children) != 6 {
		return errors.Errorf("%s record: expected 6 fields, got %d", kind, len(fields.Children))
	}
	switch st.mode {
	case modeRead:
		startOfs := st.ofs
		var rec map[string]interface{}
		var next int
		var err error
		if kind == "HEAD" {
			rec, next, err = record.ReadHead(st.lines, st.ofs, p.blankAsZero)
		} else {
			rec, next, err = record.ReadCont(st.lines, st.ofs, p.blankAsZero)
		}
		if err != nil {
			return err
		}
		st.ofs = next
		if err := p.checkCtrl(ctrlSpec, record.GetCtrl(rec), st); err != nil {
			return err
		}
		for i, slot := range sixFieldSlots {
			v, err := eval.FromInterface(rec[slot])
			if err != nil {
				return err
			}
			if err := p.readBind(fields.Children[i], v, st); err != nil {
				return err
			}
		}
		st.log.add(LogEntry{Ofs: startOfs, Line: safeLine(st.lines, startOfs), Node: kind})
		return nil
	case modeWrite:
		rec := map[string]interface{}{"MAT": st.mat, "MF": st.mf, "MT": st.mt}
		for i, slot := range sixFieldSlots {
			v, err := eval.Eval(fields.Children[i], st.data, st.loop)
			if err != nil {
				return err
			}
			rec[slot] = v.AsInterface()
		}
		var lines []string
		if kind == "HEAD" {
			lines = record.WriteHead(rec, p.floatOptions())
		} else {
			lines = record.WriteCont(rec, p.floatOptions())
		}
		st.out = append(st.out, lines...)
		return nil
	}
	return nil
}

// mapDir drives a DIR record: the two leading blank fields carry no
// recipe binding, only L1, L2, N1, N2 do.
func (p *Parser) mapDir(n *recipe.Node, st *state) error {
	ctrlSpec := recipe.GetChild(n, "ctrl_spec")
	fields := recipe.GetChild(n, "fields")
	if len(fields.Children) != 4 {
		return errors.Errorf("DIR record: expected 4 fields (L1,L2,N1,N2), got %d", len(fields.Children))
	}
	slots := []string{"L1", "L2", "N1", "N2"}
	switch st.mode {
	case modeRead:
		startOfs := st.ofs
		rec, next, err := record.ReadDir(st.lines, st.ofs, p.blankAsZero)
		if err != nil {
			return err
		}
		st.ofs = next
		if err := p.checkCtrl(ctrlSpec, record.GetCtrl(rec), st); err != nil {
			return err
		}
		for i, slot := range slots {
			v, err := eval.FromInterface(rec[slot])
			if err != nil {
				return err
			}
			if err := p.readBind(fields.Children[i], v, st); err != nil {
				return err
			}
		}
		st.log.add(LogEntry{Ofs: startOfs, Line: safeLine(st.lines, startOfs), Node: "DIR"})
		return nil
	case modeWrite:
		rec := map[string]interface{}{"MAT": st.mat, "MF": st.mf, "MT": st.mt}
		for i, slot := range slots {
			v, err := eval.Eval(fields.Children[i], st.data, st.loop)
			if err != nil {
				return err
			}
			rec[slot] = v.AsInterface()
		}
		st.out = append(st.out, record.WriteDir(rec, p.floatOptions())...)
		return nil
	}
	return nil
}

// mapIntg drives one physical INTG line: II and JJ bind positionally, and
// the remaining field-list items walk the KIJ values belonging to that one
// line through walkListBody. A recipe wanting several INTG lines wraps this
// statement in its own `for` loop.
func (p *Parser) mapIntg(n *recipe.Node, st *state) error {
	ctrlSpec := recipe.GetChild(n, "ctrl_spec")
	fields := recipe.GetChild(n, "fields")
	ndigitNode := recipe.GetChild(n, "ndigit_expr")
	if len(fields.Children) < 2 {
		return errors.Errorf("INTG record: expected at least II, JJ fields")
	}
	ndigitV, err := eval.Eval(ndigitNode.Children[0], st.data, st.loop)
	if err != nil {
		return err
	}
	ndigit := int(ndigitV.F)
	iiExpr, jjExpr := fields.Children[0], fields.Children[1]
	bodyItems := fields.Children[2:]

	switch st.mode {
	case modeRead:
		startOfs := st.ofs
		rec, next, err := record.ReadIntg(st.lines, st.ofs, ndigit)
		if err != nil {
			return err
		}
		st.ofs = next
		if err := p.checkCtrl(ctrlSpec, record.GetCtrl(rec), st); err != nil {
			return err
		}
		ii, _ := rec["II"].(int)
		jj, _ := rec["JJ"].(int)
		if err := p.readBind(iiExpr, eval.Int(ii), st); err != nil {
			return err
		}
		if err := p.readBind(jjExpr, eval.Int(jj), st); err != nil {
			return err
		}
		kij, _ := rec["KIJ"].([]int)
		cur := &valCursor{vals: intsToValues(kij)}
		for _, item := range bodyItems {
			if err := p.walkListBody(item, cur, st); err != nil {
				return err
			}
		}
		if cur.idx != len(cur.vals) {
			return &UnconsumedListElementsError{Record: "INTG", Consumed: cur.idx, Total: len(cur.vals)}
		}
		st.log.add(LogEntry{Ofs: startOfs, Line: safeLine(st.lines, startOfs), Node: "INTG"})
		return nil
	case modeWrite:
		ii, err := eval.Eval(iiExpr, st.data, st.loop)
		if err != nil {
			return err
		}
		jj, err := eval.Eval(jjExpr, st.data, st.loop)
		if err != nil {
			return err
		}
		cur := &valCursor{}
		for _, item := range bodyItems {
			if err := p.walkListBody(item, cur, st); err != nil {
				return err
			}
		}
		rec := map[string]interface{}{
			"MAT": st.mat, "MF": st.mf, "MT": st.mt,
			"II": int(ii.F), "JJ": int(jj.F), "KIJ": valuesToInts(cur.vals),
		}
		st.out = append(st.out, record.WriteIntg(rec, ndigit)...)
		return nil
	}
	return nil
}

// mapList drives a LIST record: the six head fields bind positionally, and
// the rest of the field list walks the N1 body values through
// walkListBody.
func (p *Parser) mapList(n *recipe.Node, st *state) error {
	ctrlSpec := recipe.GetChild(n, "ctrl_spec")
	fields := recipe.GetChild(n, "fields")
	if len(fields.Children) < 6 {
		return errors.Errorf("LIST record: expected at least 6 head fields, got %d", len(fields.Children))
	}
	headExprs := fields.Children[:6]
	bodyItems := fields.Children[6:]

	switch st.mode {
	case modeRead:
		startOfs := st.ofs
		rec, next, err := record.ReadList(st.lines, st.ofs, p.blankAsZero)
		if err != nil {
			return err
		}
		st.ofs = next
		if err := p.checkCtrl(ctrlSpec, record.GetCtrl(rec), st); err != nil {
			return err
		}
		for i, slot := range sixFieldSlots {
			v, err := eval.FromInterface(rec[slot])
			if err != nil {
				return err
			}
			if err := p.readBind(headExprs[i], v, st); err != nil {
				return err
			}
		}
		vals, _ := rec["vals"].([]float64)
		cur := &valCursor{vals: floatsToValues(vals)}
		for _, item := range bodyItems {
			if err := p.walkListBody(item, cur, st); err != nil {
				return err
			}
		}
		if cur.idx != len(cur.vals) {
			return &UnconsumedListElementsError{Record: "LIST", Consumed: cur.idx, Total: len(cur.vals)}
		}
		st.log.add(LogEntry{Ofs: startOfs, Line: safeLine(st.lines, startOfs), Node: "LIST"})
		return nil
	case modeWrite:
		rec := map[string]interface{}{"MAT": st.mat, "MF": st.mf, "MT": st.mt}
		for i, slot := range sixFieldSlots {
			v, err := eval.Eval(headExprs[i], st.data, st.loop)
			if err != nil {
				return err
			}
			rec[slot] = v.AsInterface()
		}
		cur := &valCursor{}
		for _, item := range bodyItems {
			if err := p.walkListBody(item, cur, st); err != nil {
				return err
			}
		}
		rec["vals"] = valuesToFloats(cur.vals)
		st.out = append(st.out, record.WriteList(rec, p.floatOptions())...)
		return nil
	}
	return nil
}

// tableSectionName resolves the data-tree key a TAB1/TAB2 record's
// interpolation/point tables are stored under: the recipe's optional
// "(name)" suffix, or "table" by default.
func tableSectionName(n *recipe.Node) string {
	nameNode := recipe.GetChild(n, "name", true)
	if nameNode != nil {
		if s, ok := nameNode.Value.(string); ok {
			return s
		}
	}
	return "table"
}

// mapTab1 drives a TAB1 record. Only C1, C2, L1, L2 bind through the field
// list; NR and NP are redundant with the NBT/X array lengths and are never
// exposed to the recipe, per the data model's reserved "table" section.
func (p *Parser) mapTab1(n *recipe.Node, st *state) error {
	ctrlSpec := recipe.GetChild(n, "ctrl_spec")
	fields := recipe.GetChild(n, "fields")
	if len(fields.Children) != 4 {
		return errors.Errorf("TAB1 record: expected 4 fields (C1,C2,L1,L2), got %d", len(fields.Children))
	}
	slots := []string{"C1", "C2", "L1", "L2"}
	sectionKey := tableSectionName(n)

	switch st.mode {
	case modeRead:
		startOfs := st.ofs
		rec, next, err := record.ReadTab1(st.lines, st.ofs, p.blankAsZero)
		if err != nil {
			return err
		}
		st.ofs = next
		if err := p.checkCtrl(ctrlSpec, record.GetCtrl(rec), st); err != nil {
			return err
		}
		for i, slot := range slots {
			v, err := eval.FromInterface(rec[slot])
			if err != nil {
				return err
			}
			if err := p.readBind(fields.Children[i], v, st); err != nil {
				return err
			}
		}
		tbl := st.data.OpenSection(sectionKey)
		tbl.Set("NBT", rec["NBT"])
		tbl.Set("INT", rec["INT"])
		tbl.Set("X", rec["X"])
		tbl.Set("Y", rec["Y"])
		st.log.add(LogEntry{Ofs: startOfs, Line: safeLine(st.lines, startOfs), Node: "TAB1"})
		return nil
	case modeWrite:
		rec := map[string]interface{}{"MAT": st.mat, "MF": st.mf, "MT": st.mt}
		for i, slot := range slots {
			v, err := eval.Eval(fields.Children[i], st.data, st.loop)
			if err != nil {
				return err
			}
			rec[slot] = v.AsInterface()
		}
		tbl, err := st.data.Child(sectionKey)
		if err != nil {
			return err
		}
		nbt, _ := tbl.GetLocal("NBT")
		interp, _ := tbl.GetLocal("INT")
		x, _ := tbl.GetLocal("X")
		y, _ := tbl.GetLocal("Y")
		xs, _ := x.([]float64)
		nbts, _ := nbt.([]int)
		rec["N1"] = len(nbts)
		rec["N2"] = len(xs)
		rec["NBT"] = nbt
		rec["INT"] = interp
		rec["X"] = x
		rec["Y"] = y
		st.out = append(st.out, record.WriteTab1(rec, p.floatOptions())...)
		return nil
	}
	return nil
}

// mapTab2 drives a TAB2 record: C1, C2, L1, L2, N2 bind through the field
// list (N2 is a genuine TAB2 field, unlike TAB1's NP); NR is reconstructed
// from the stored NBT array's length.
func (p *Parser) mapTab2(n *recipe.Node, st *state) error {
	ctrlSpec := recipe.GetChild(n, "ctrl_spec")
	fields := recipe.GetChild(n, "fields")
	if len(fields.Children) != 5 {
		return errors.Errorf("TAB2 record: expected 5 fields (C1,C2,L1,L2,N2), got %d", len(fields.Children))
	}
	slots := []string{"C1", "C2", "L1", "L2"}
	sectionKey := tableSectionName(n)

	switch st.mode {
	case modeRead:
		startOfs := st.ofs
		rec, next, err := record.ReadTab2(st.lines, st.ofs, p.blankAsZero)
		if err != nil {
			return err
		}
		st.ofs = next
		if err := p.checkCtrl(ctrlSpec, record.GetCtrl(rec), st); err != nil {
			return err
		}
		for i, slot := range slots {
			v, err := eval.FromInterface(rec[slot])
			if err != nil {
				return err
			}
			if err := p.readBind(fields.Children[i], v, st); err != nil {
				return err
			}
		}
		n2, err := eval.FromInterface(rec["N2"])
		if err != nil {
			return err
		}
		if err := p.readBind(fields.Children[4], n2, st); err != nil {
			return err
		}
		tbl := st.data.OpenSection(sectionKey)
		tbl.Set("NBT", rec["NBT"])
		tbl.Set("INT", rec["INT"])
		st.log.add(LogEntry{Ofs: startOfs, Line: safeLine(st.lines, startOfs), Node: "TAB2"})
		return nil
	case modeWrite:
		rec := map[string]interface{}{"MAT": st.mat, "MF": st.mf, "MT": st.mt}
		for i, slot := range slots {
			v, err := eval.Eval(fields.Children[i], st.data, st.loop)
			if err != nil {
				return err
			}
			rec[slot] = v.AsInterface()
		}
		n2, err := eval.Eval(fields.Children[4], st.data, st.loop)
		if err != nil {
			return err
		}
		rec["N2"] = n2.AsInterface()
		tbl, err := st.data.Child(sectionKey)
		if err != nil {
			return err
		}
		nbt, _ := tbl.GetLocal("NBT")
		interp, _ := tbl.GetLocal("INT")
		nbts, _ := nbt.([]int)
		rec["N1"] = len(nbts)
		rec["NBT"] = nbt
		rec["INT"] = interp
		st.out = append(st.out, record.WriteTab2(rec, p.floatOptions())...)
		return nil
	}
	return nil
}

// textRef resolves a TEXT record's sole field to the data-tree slot its
// free-text value lives in; `var?` tolerance makes no sense for a string
// field, so the wrapper is unwrapped without consulting any mismatch
// option.
func textRef(expr *recipe.Node, loop *datatree.LoopVars) (*eval.Ref, error) {
	n := expr
	if n.Name == "inconsistent_varspec" {
		n = n.Children[0]
	}
	return eval.ResolveRef(n, loop)
}

// mapText drives a TEXT record: its HL field is free text, so it bypasses
// the numeric Solve/Eval path entirely and is read/written as a plain
// string data-tree slot.
func (p *Parser) mapText(n *recipe.Node, st *state) error {
	ctrlSpec := recipe.GetChild(n, "ctrl_spec")
	fields := recipe.GetChild(n, "fields")
	if len(fields.Children) != 1 {
		return errors.Errorf("TEXT record: expected exactly one field (HL), got %d", len(fields.Children))
	}
	ref, err := textRef(fields.Children[0], st.loop)
	if err != nil {
		return err
	}
	switch st.mode {
	case modeRead:
		startOfs := st.ofs
		rec, next, err := record.ReadText(st.lines, st.ofs)
		if err != nil {
			return err
		}
		st.ofs = next
		if err := p.checkCtrl(ctrlSpec, record.GetCtrl(rec), st); err != nil {
			return err
		}
		hl, _ := rec["HL"].(string)
		if ref.IsIndexed {
			if err := st.data.SetIndexed(ref.Name, ref.Indices, hl); err != nil {
				return err
			}
		} else {
			st.data.Set(ref.Name, hl)
		}
		st.log.add(LogEntry{Ofs: startOfs, Line: safeLine(st.lines, startOfs), Node: "TEXT"})
		return nil
	case modeWrite:
		var hlVal interface{}
		var ok bool
		if ref.IsIndexed {
			hlVal, ok = st.data.GetIndexed(ref.Name, ref.Indices)
		} else {
			hlVal, ok = st.data.Get(ref.Name)
		}
		if !ok {
			return &eval.ErrUnboundVariable{Name: ref.Name}
		}
		hl, _ := hlVal.(string)
		rec := map[string]interface{}{"MAT": st.mat, "MF": st.mf, "MT": st.mt, "HL": hl}
		st.out = append(st.out, record.WriteText(rec)...)
		return nil
	}
	return nil
}

// mapSend drives an explicit SEND statement appearing in a recipe body. The
// driver adds no SEND line of its own, so a section's closing SEND is read
// or written only where the recipe declares it.
func (p *Parser) mapSend(n *recipe.Node, st *state) error {
	ctrlSpec := recipe.GetChild(n, "ctrl_spec")
	switch st.mode {
	case modeRead:
		startOfs := st.ofs
		ctrl, next, err := record.ReadSend(st.lines, st.ofs)
		if err != nil {
			return err
		}
		st.ofs = next
		if err := p.checkCtrl(ctrlSpec, ctrl, st); err != nil {
			return err
		}
		st.log.add(LogEntry{Ofs: startOfs, Line: safeLine(st.lines, startOfs), Node: "SEND"})
		return nil
	case modeWrite:
		st.out = append(st.out, record.WriteSend(st.mat, st.mf)...)
		return nil
	}
	return nil
}

// mapDummy drives a DUMMY statement: an opaque line whose control suffix is
// checked like any other record but whose body carries no recipe-visible
// data.
func (p *Parser) mapDummy(n *recipe.Node, st *state) error {
	ctrlSpec := recipe.GetChild(n, "ctrl_spec")
	switch st.mode {
	case modeRead:
		startOfs := st.ofs
		ctrl, next, err := record.ReadDummy(st.lines, st.ofs)
		if err != nil {
			return err
		}
		st.ofs = next
		if err := p.checkCtrl(ctrlSpec, ctrl, st); err != nil {
			return err
		}
		st.log.add(LogEntry{Ofs: startOfs, Line: safeLine(st.lines, startOfs), Node: "DUMMY"})
		return nil
	case modeWrite:
		st.out = append(st.out, record.WriteDummy(st.mat, st.mf, st.mt)...)
		return nil
	}
	return nil
}
