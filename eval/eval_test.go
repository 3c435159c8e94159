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

package eval

import (
	"testing"

	"github.com/gschnabel/endf/datatree"
	"github.com/gschnabel/endf/recipe"
)

// parseField parses src as the sole field of a CONT record and returns its
// expression node, so tests exercise the real lexer/parser instead of
// hand-built trees.
func parseField(t *testing.T, src string) *recipe.Node {
	t.Helper()
	full := "[MAT,1,MT/ " + src + ", 0,0,0,0,0] CONT\n"
	root, err := recipe.Parse(full, "test")
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	fields := recipe.GetChild(root.Children[0], "fields")
	return fields.Children[0]
}

// parseCond parses src as an if-clause's condition and returns its node, so
// boolean-expression tests exercise the real disjunction/conjunction/
// relation grammar.
func parseCond(t *testing.T, src string) *recipe.Node {
	t.Helper()
	full := "if " + src + ":\n  STOP \"x\"\nendif\n"
	root, err := recipe.Parse(full, "test")
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	ifc := root.Children[0]
	branch := ifc.Children[0]
	return branch.Children[0]
}

func TestEvalArithmeticPromotion(t *testing.T) {
	data := datatree.New()
	loop := datatree.NewLoopVars()
	data.Set("NS", 3)

	v, err := Eval(parseField(t, "2*NS"), data, loop)
	if err != nil {
		t.Fatal(err)
	}
	if !v.IsInt || v.F != 6 {
		t.Fatalf("got %+v", v)
	}

	v, err = Eval(parseField(t, "NS/2"), data, loop)
	if err != nil {
		t.Fatal(err)
	}
	if v.IsInt || v.F != 1.5 {
		t.Fatalf("got %+v", v)
	}
}

func TestEvalUnboundVariable(t *testing.T) {
	data := datatree.New()
	loop := datatree.NewLoopVars()

	_, err := Eval(parseField(t, "NS"), data, loop)
	if _, ok := err.(*ErrUnboundVariable); !ok {
		t.Fatalf("expected ErrUnboundVariable, got %v", err)
	}
}

func TestEvalIndexedAndLoopVar(t *testing.T) {
	data := datatree.New()
	loop := datatree.NewLoopVars()
	loop.Bind("i", 2)
	if err := data.SetIndexed("E", []int{2}, 7.5); err != nil {
		t.Fatal(err)
	}

	v, err := Eval(parseField(t, "E[i]"), data, loop)
	if err != nil {
		t.Fatal(err)
	}
	if v.IsInt || v.F != 7.5 {
		t.Fatalf("got %+v", v)
	}
}

func TestEvalBoolRelationsAndLogic(t *testing.T) {
	data := datatree.New()
	loop := datatree.NewLoopVars()
	data.Set("LI", 1)
	data.Set("LTT", 2)

	ok, err := EvalBool(parseCond(t, "LI == 1 and LTT == 2"), data, loop)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected true")
	}

	ok, err = EvalBool(parseCond(t, "LI == 0 or LTT == 2"), data, loop)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected true")
	}
}

func TestSolveZeroUnknownsVerifies(t *testing.T) {
	data := datatree.New()
	loop := datatree.NewLoopVars()
	data.Set("NS", 3)

	res, err := Solve(parseField(t, "2*NS"), Int(6), data, loop)
	if err != nil {
		t.Fatal(err)
	}
	if res.Bound {
		t.Fatal("expected no binding, expression fully known")
	}
	if res.Computed.F != 6 {
		t.Fatalf("got %+v", res.Computed)
	}
}

func TestSolveBindsSingleUnknown(t *testing.T) {
	data := datatree.New()
	loop := datatree.NewLoopVars()

	res, err := Solve(parseField(t, "2*NS"), Int(6), data, loop)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Bound {
		t.Fatal("expected NS to be bound")
	}
	v, ok := data.Get("NS")
	if !ok {
		t.Fatal("NS not set in data tree")
	}
	if v != 3 {
		t.Fatalf("got %v", v)
	}
}

func TestSolveInvertsSubAndDiv(t *testing.T) {
	data := datatree.New()
	loop := datatree.NewLoopVars()
	data.Set("AWR", 10)

	if _, err := Solve(parseField(t, "AWR - NS"), Int(4), data, loop); err != nil {
		t.Fatal(err)
	}
	v, _ := data.Get("NS")
	if v != 6 {
		t.Fatalf("got %v", v)
	}

	data2 := datatree.New()
	if _, err := Solve(parseField(t, "NS/4"), Float(2.5), data2, loop); err != nil {
		t.Fatal(err)
	}
	v2, _ := data2.Get("NS")
	if v2 != float64(10) {
		t.Fatalf("got %v", v2)
	}
}

func TestSolveTooManyUnknowns(t *testing.T) {
	data := datatree.New()
	loop := datatree.NewLoopVars()

	_, err := Solve(parseField(t, "NS + AWR"), Int(6), data, loop)
	if err != ErrTooManyUnknowns {
		t.Fatalf("expected ErrTooManyUnknowns, got %v", err)
	}
}
