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

// Ref names one addressable slot of an extvarname node: either a bare loop
// variable or a (possibly indexed) data-tree key.
type Ref struct {
	Name      string
	Indices   []int
	IsIndexed bool
}

// ResolveRef evaluates an extvarname node's indices (which are themselves
// only ever a loop-variable name or an integer literal) into a concrete Ref.
func ResolveRef(n *recipe.Node, loop *datatree.LoopVars) (*Ref, error) {
	if recipe.GetName(n) != "extvarname" {
		return nil, errors.Errorf("eval: %s is not an extvarname", recipe.GetName(n))
	}
	name, _ := recipe.GetChildValue(n, "VARNAME").(string)
	ref := &Ref{Name: name}
	idxList := recipe.GetChild(n, "indices", true)
	if idxList == nil {
		return ref, nil
	}
	ref.IsIndexed = true
	for _, idxNode := range idxList.Children {
		switch idxNode.Name {
		case "int_index":
			ref.Indices = append(ref.Indices, idxNode.Value.(int))
		case "loopvar_index":
			varName := idxNode.Value.(string)
			v, ok := loop.Get(varName)
			if !ok {
				return nil, errors.Errorf("eval: loop variable %q used as index is not bound", varName)
			}
			ref.Indices = append(ref.Indices, v)
		default:
			return nil, errors.Errorf("eval: unexpected index node %s", idxNode.Name)
		}
	}
	return ref, nil
}

// Get resolves ref's current value against data and loop, preferring a
// loop-variable binding over a data-tree lookup, per the extvarname
// resolution rule.
func (ref *Ref) Get(data *datatree.Node, loop *datatree.LoopVars) (Value, bool) {
	if !ref.IsIndexed {
		if v, ok := loop.Get(ref.Name); ok {
			return Int(v), true
		}
		if v, ok := data.Get(ref.Name); ok {
			val, err := FromInterface(v)
			if err != nil {
				return Value{}, false
			}
			return val, true
		}
		return Value{}, false
	}
	v, ok := data.GetIndexed(ref.Name, ref.Indices)
	if !ok {
		return Value{}, false
	}
	val, err := FromInterface(v)
	if err != nil {
		return Value{}, false
	}
	return val, true
}

// Set binds ref to val in data. Loop variables are never assignment
// targets: the unknown slot solve binds is always a data-tree entry.
func (ref *Ref) Set(data *datatree.Node, val Value) error {
	if ref.IsIndexed {
		return data.SetIndexed(ref.Name, ref.Indices, val.AsInterface())
	}
	data.Set(ref.Name, val.AsInterface())
	return nil
}
