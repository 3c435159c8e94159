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

import "github.com/pkg/errors"

// Value is a recipe-expression result: either an integer or a float,
// tracked so that "integer iff both operands are integer" promotion can be
// applied the way the recipe DSL requires.
type Value struct {
	F     float64
	IsInt bool
}

// Int wraps an integer result.
func Int(v int) Value { return Value{F: float64(v), IsInt: true} }

// Float wraps a floating-point result.
func Float(v float64) Value { return Value{F: v} }

// FromInterface converts a data-tree slot (int, float64, or a Value) into a
// Value, erroring on anything else (a section, string or indexed map is
// never a valid arithmetic operand).
func FromInterface(v interface{}) (Value, error) {
	switch t := v.(type) {
	case int:
		return Int(t), nil
	case float64:
		return Float(t), nil
	case Value:
		return t, nil
	default:
		return Value{}, errors.Errorf("eval: value of type %T is not numeric", v)
	}
}

// AsInterface converts Value back to the plain int/float64 representation
// stored in the data tree.
func (v Value) AsInterface() interface{} {
	if v.IsInt {
		return int(v.F)
	}
	return v.F
}
