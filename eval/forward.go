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

// ErrUnboundVariable is returned by Eval when an extvarname has no binding
// in either the loop-variable scope or the data tree.
type ErrUnboundVariable struct {
	Name string
}

func (e *ErrUnboundVariable) Error() string {
	return "eval: unbound variable " + e.Name
}

// Eval evaluates expr against data and loop, returning a number. Every
// extvarname referenced must already be bound; an unbound variable is a
// forward-evaluation error (use Solve on the read path when exactly one
// variable is still unknown).
func Eval(expr *recipe.Node, data *datatree.Node, loop *datatree.LoopVars) (Value, error) {
	switch expr.Name {
	case "number", "desired_number":
		lit := expr.Value.(recipe.NumberLit)
		return Value{F: lit.F, IsInt: lit.IsInt}, nil
	case "extvarname":
		ref, err := ResolveRef(expr, loop)
		if err != nil {
			return Value{}, err
		}
		v, ok := ref.Get(data, loop)
		if !ok {
			return Value{}, &ErrUnboundVariable{Name: ref.Name}
		}
		return v, nil
	case "inconsistent_varspec":
		return Eval(expr.Children[0], data, loop)
	case "neg":
		v, err := Eval(expr.Children[0], data, loop)
		if err != nil {
			return Value{}, err
		}
		return Value{F: -v.F, IsInt: v.IsInt}, nil
	case "add", "sub", "mul", "div":
		return evalBinary(expr, data, loop)
	default:
		return Value{}, errors.Errorf("eval: cannot evaluate node %s", expr.Name)
	}
}

func evalBinary(expr *recipe.Node, data *datatree.Node, loop *datatree.LoopVars) (Value, error) {
	left, err := Eval(expr.Children[0], data, loop)
	if err != nil {
		return Value{}, err
	}
	right, err := Eval(expr.Children[1], data, loop)
	if err != nil {
		return Value{}, err
	}
	isInt := left.IsInt && right.IsInt
	switch expr.Name {
	case "add":
		return Value{F: left.F + right.F, IsInt: isInt}, nil
	case "sub":
		return Value{F: left.F - right.F, IsInt: isInt}, nil
	case "mul":
		return Value{F: left.F * right.F, IsInt: isInt}, nil
	case "div":
		// Division is always floating-point; the DSL has no integer-divide
		// operator.
		return Value{F: left.F / right.F, IsInt: false}, nil
	default:
		return Value{}, errors.Errorf("eval: unknown binary op %s", expr.Name)
	}
}
