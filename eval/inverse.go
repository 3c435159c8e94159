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
	"github.com/pkg/errors"

	"github.com/gschnabel/endf/datatree"
	"github.com/gschnabel/endf/recipe"
)

// ErrTooManyUnknowns is returned by Solve when an expression contains more
// than one not-yet-bound extvarname; the DSL only supports inverting
// expressions with exactly one unknown.
var ErrTooManyUnknowns = errors.New("eval: expression has more than one unknown variable")

// Result reports the outcome of Solve.
type Result struct {
	// Bound is true when Solve found exactly one unknown variable and
	// assigned it; Ref names the variable it bound.
	Bound bool
	Ref   *Ref
	// Computed holds the forward-evaluated value of the expression when
	// Bound is false (every variable was already known); the caller
	// compares it against the target with its own tolerance rule.
	Computed Value
}

// Solve binds or verifies the single unknown variable in expr against
// target_value, per the inverse-evaluation rule: if expr has exactly one
// unresolved extvarname, it is solved for by walking the path from root to
// that leaf and algebraically reversing each binary/unary node; if expr has
// zero unresolved variables, the forward value is returned for the caller
// to compare against target.
func Solve(expr *recipe.Node, target Value, data *datatree.Node, loop *datatree.LoopVars) (Result, error) {
	unknowns, err := collectUnknowns(expr, data, loop)
	if err != nil {
		return Result{}, err
	}
	switch len(unknowns) {
	case 0:
		v, err := Eval(expr, data, loop)
		if err != nil {
			return Result{}, err
		}
		return Result{Computed: v}, nil
	case 1:
		leaf, value, err := invert(expr, target, data, loop)
		if err != nil {
			return Result{}, err
		}
		ref, err := ResolveRef(leaf, loop)
		if err != nil {
			return Result{}, err
		}
		if err := ref.Set(data, value); err != nil {
			return Result{}, err
		}
		return Result{Bound: true, Ref: ref}, nil
	default:
		return Result{}, ErrTooManyUnknowns
	}
}

// collectUnknowns returns every extvarname node in expr's subtree that
// fails to resolve against data/loop.
func collectUnknowns(expr *recipe.Node, data *datatree.Node, loop *datatree.LoopVars) ([]*recipe.Node, error) {
	switch expr.Name {
	case "number", "desired_number":
		return nil, nil
	case "extvarname":
		ref, err := ResolveRef(expr, loop)
		if err != nil {
			return nil, err
		}
		if _, ok := ref.Get(data, loop); ok {
			return nil, nil
		}
		return []*recipe.Node{expr}, nil
	case "inconsistent_varspec", "neg":
		return collectUnknowns(expr.Children[0], data, loop)
	case "add", "sub", "mul", "div":
		l, err := collectUnknowns(expr.Children[0], data, loop)
		if err != nil {
			return nil, err
		}
		r, err := collectUnknowns(expr.Children[1], data, loop)
		if err != nil {
			return nil, err
		}
		return append(l, r...), nil
	default:
		return nil, errors.Errorf("eval: cannot analyze node %s", expr.Name)
	}
}

// invert walks from expr down to its unique unknown leaf, reversing each
// node on the path so that the leaf's required value is produced from
// target and the already-known sibling operands.
func invert(expr *recipe.Node, target Value, data *datatree.Node, loop *datatree.LoopVars) (*recipe.Node, Value, error) {
	switch expr.Name {
	case "extvarname":
		return expr, target, nil
	case "inconsistent_varspec":
		return invert(expr.Children[0], target, data, loop)
	case "neg":
		return invert(expr.Children[0], Value{F: -target.F, IsInt: target.IsInt}, data, loop)
	case "add", "sub", "mul", "div":
		return invertBinary(expr, target, data, loop)
	default:
		return nil, Value{}, errors.Errorf("eval: cannot invert node %s", expr.Name)
	}
}

func invertBinary(expr *recipe.Node, target Value, data *datatree.Node, loop *datatree.LoopVars) (*recipe.Node, Value, error) {
	left, right := expr.Children[0], expr.Children[1]
	leftUnknowns, err := collectUnknowns(left, data, loop)
	if err != nil {
		return nil, Value{}, err
	}
	if len(leftUnknowns) > 0 {
		rv, err := Eval(right, data, loop)
		if err != nil {
			return nil, Value{}, err
		}
		childTarget := invertLeft(expr.Name, target, rv)
		return invert(left, childTarget, data, loop)
	}
	lv, err := Eval(left, data, loop)
	if err != nil {
		return nil, Value{}, err
	}
	childTarget := invertRight(expr.Name, target, lv)
	return invert(right, childTarget, data, loop)
}

// invertLeft computes the value the left operand must take, given the
// binary op, its target result, and the already-known right operand.
func invertLeft(op string, target, rv Value) Value {
	isInt := target.IsInt && rv.IsInt
	switch op {
	case "add":
		return Value{F: target.F - rv.F, IsInt: isInt}
	case "sub":
		return Value{F: target.F + rv.F, IsInt: isInt}
	case "mul":
		return Value{F: target.F / rv.F, IsInt: isInt}
	case "div":
		return Value{F: target.F * rv.F, IsInt: isInt}
	}
	return Value{}
}

// invertRight computes the value the right operand must take, given the
// binary op, its target result, and the already-known left operand.
func invertRight(op string, target, lv Value) Value {
	isInt := target.IsInt && lv.IsInt
	switch op {
	case "add":
		return Value{F: target.F - lv.F, IsInt: isInt}
	case "sub":
		return Value{F: lv.F - target.F, IsInt: isInt}
	case "mul":
		return Value{F: target.F / lv.F, IsInt: isInt}
	case "div":
		return Value{F: lv.F / target.F, IsInt: isInt}
	}
	return Value{}
}
