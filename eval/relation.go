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

// EvalBool evaluates a disjunction/conjunction/relation node to a boolean.
func EvalBool(expr *recipe.Node, data *datatree.Node, loop *datatree.LoopVars) (bool, error) {
	switch expr.Name {
	case "and":
		l, err := EvalBool(expr.Children[0], data, loop)
		if err != nil {
			return false, err
		}
		r, err := EvalBool(expr.Children[1], data, loop)
		if err != nil {
			return false, err
		}
		return l && r, nil
	case "or":
		l, err := EvalBool(expr.Children[0], data, loop)
		if err != nil {
			return false, err
		}
		r, err := EvalBool(expr.Children[1], data, loop)
		if err != nil {
			return false, err
		}
		return l || r, nil
	case "lt", "le", "eq", "ne", "ge", "gt":
		left, err := Eval(expr.Children[0], data, loop)
		if err != nil {
			return false, err
		}
		right, err := Eval(expr.Children[1], data, loop)
		if err != nil {
			return false, err
		}
		switch expr.Name {
		case "lt":
			return left.F < right.F, nil
		case "le":
			return left.F <= right.F, nil
		case "eq":
			return left.F == right.F, nil
		case "ne":
			return left.F != right.F, nil
		case "ge":
			return left.F >= right.F, nil
		case "gt":
			return left.F > right.F, nil
		}
	}
	return false, errors.Errorf("eval: %s is not a boolean expression", expr.Name)
}
