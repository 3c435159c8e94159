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
)

// recordStmt reports whether n is one of the endf_line statement kinds
// execRecord knows how to dispatch.
func recordStmt(n *recipe.Node) bool {
	switch n.Name {
	case "head_record", "cont_record", "dir_record", "intg_record",
		"tab1_record", "tab2_record", "list_record", "text_record",
		"send_record", "dummy_record":
		return true
	}
	return false
}

// execBody runs every statement of a "body" node in sequence, stopping at
// the first error.
func (p *Parser) execBody(body *recipe.Node, st *state) error {
	for _, stmt := range body.Children {
		if err := p.execStmt(stmt, st); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) execStmt(n *recipe.Node, st *state) error {
	switch {
	case recordStmt(n):
		return p.execRecord(n, st)
	case n.Name == "for_loop":
		return p.execForLoop(n, st)
	case n.Name == "if_clause":
		return p.execIfClause(n, st)
	case n.Name == "section":
		return p.execSection(n, st)
	case n.Name == "stop_line":
		return p.execStop(n, st)
	default:
		return errors.Errorf("interp: unexpected statement node %s", n.Name)
	}
}

// execForLoop evaluates start/stop once at entry (the bounds are not
// re-evaluated per iteration) and runs the body once per induction value,
// binding and unbinding the loop variable around each pass.
func (p *Parser) execForLoop(n *recipe.Node, st *state) error {
	varName, _ := recipe.GetChildValue(n, "VARNAME").(string)
	startExpr, stopExpr, body := n.Children[1], n.Children[2], n.Children[3]
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
		if err := p.execBody(body, st); err != nil {
			st.loop.Unbind(varName)
			return err
		}
	}
	st.loop.Unbind(varName)
	return nil
}

// execIfClause evaluates each if/elif branch's condition in turn, running
// the first truthful one's body (after resolving any [lookahead=N]
// speculative peek), falling through to an else branch if present.
func (p *Parser) execIfClause(n *recipe.Node, st *state) error {
	for _, branch := range n.Children {
		if branch.Name == "else_branch" {
			body := branch.Children[0]
			return p.execBody(body, st)
		}
		// if_branch: [condition, (lookahead_expr)?, body]
		cond := branch.Children[0]
		bodyIdx := 1
		var lookaheadExpr *recipe.Node
		if branch.Children[1].Name == "lookahead_expr" {
			lookaheadExpr = branch.Children[1].Children[0]
			bodyIdx = 2
		}
		body := branch.Children[bodyIdx]

		truthful, err := p.evalCondition(cond, lookaheadExpr, body, st)
		if err != nil {
			return err
		}
		if truthful {
			return p.execBody(body, st)
		}
	}
	return nil
}

// evalCondition evaluates cond. When the branch declared [lookahead=N], up
// to N of the branch body's own leading record statements are run
// speculatively first (read mode only) so the condition can reference
// fields those records would bind; state is snapshotted beforehand and
// always restored afterward, so the peek leaves no trace regardless of the
// outcome, except that with LogLookaheadTraceback the speculative record-log
// entries are kept. The branch actually chosen is re-executed for real by
// the caller once a truthful condition is found.
func (p *Parser) evalCondition(cond, lookaheadExpr, body *recipe.Node, st *state) (bool, error) {
	if lookaheadExpr == nil {
		return eval.EvalBool(cond, st.data, st.loop)
	}
	nV, err := eval.Eval(lookaheadExpr, st.data, st.loop)
	if err != nil {
		return false, err
	}
	n := int(nV.F)

	snap := st.snapshot()
	defer func() {
		specLog := st.log
		st.restore(snap)
		if p.logLookahead {
			st.log = specLog
		}
	}()

	if st.mode == modeRead {
		count := 0
		for _, stmt := range body.Children {
			if count >= n {
				break
			}
			if !recordStmt(stmt) {
				break
			}
			if err := p.execStmt(stmt, st); err != nil {
				// An exhausted or malformed speculative read means the
				// condition cannot hold; inconclusive, not fatal.
				return false, nil
			}
			count++
		}
	}
	return eval.EvalBool(cond, st.data, st.loop)
}

// execSection opens (or creates) the named child data tree, validates that
// the head and tail names agree once index resolution has run against
// both, runs the body against the child, then returns to the parent.
func (p *Parser) execSection(n *recipe.Node, st *state) error {
	head, body, tail := n.Children[0], n.Children[1], n.Children[2]
	headRef, err := eval.ResolveRef(head, st.loop)
	if err != nil {
		return err
	}
	tailRef, err := eval.ResolveRef(tail, st.loop)
	if err != nil {
		return err
	}
	if !sameRef(headRef, tailRef) {
		return &InconsistentSectionBracketsError{Head: sectionLabel(headRef), Tail: sectionLabel(tailRef)}
	}

	parent := st.data
	var child *datatree.Node
	if headRef.IsIndexed {
		child, err = parent.IndexedChild(headRef.Name, headRef.Indices)
		if err != nil {
			return err
		}
	} else {
		child = parent.OpenSection(headRef.Name)
	}

	st.data = child
	err = p.execBody(body, st)
	st.data = parent
	return err
}

func sameRef(a, b *eval.Ref) bool {
	if a.Name != b.Name || a.IsIndexed != b.IsIndexed {
		return false
	}
	if !a.IsIndexed {
		return true
	}
	if len(a.Indices) != len(b.Indices) {
		return false
	}
	for i := range a.Indices {
		if a.Indices[i] != b.Indices[i] {
			return false
		}
	}
	return true
}

func sectionLabel(ref *eval.Ref) string {
	if !ref.IsIndexed {
		return ref.Name
	}
	return ref.Name + "[" + datatree.IndexKey(ref.Indices) + "]"
}

func (p *Parser) execStop(n *recipe.Node, st *state) error {
	msg, _ := recipe.GetChildValue(n, "STOP_MESSAGE").(string)
	return &StopError{Message: msg}
}
