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

package recipe

import "text/scanner"

// NumberLit is the Value carried by a "number" or "desired_number" leaf,
// tracking whether the literal was written without a fractional part so
// later integer/float promotion rules can tell the two apart.
type NumberLit struct {
	F     float64
	IsInt bool
}

// Node is one tagged node of a parsed recipe tree. A leaf node (no
// Children) carries a Value; an interior node is named by Name and walked
// through Children. This is the entire vocabulary the interpreter needs:
// IsTree, GetName, GetChild, GetChildValue and RetrieveValue below are
// built on nothing but these three fields.
type Node struct {
	Name     string
	Children []*Node
	Value    interface{}
	Pos      scanner.Position
}

// IsTree reports whether n is an interior node (has children) as opposed to
// a leaf token node.
func IsTree(n *Node) bool {
	return n != nil && len(n.Children) > 0
}

// GetName returns n's tag.
func GetName(n *Node) string {
	if n == nil {
		return ""
	}
	return n.Name
}

// GetChild returns the first direct child of tree named name. If nofail is
// supplied and nofail[0] is true, a missing child returns nil instead of
// panicking.
func GetChild(tree *Node, name string, nofail ...bool) *Node {
	for _, c := range tree.Children {
		if c.Name == name {
			return c
		}
	}
	if len(nofail) > 0 && nofail[0] {
		return nil
	}
	panic("recipe: missing child " + name + " in " + tree.Name)
}

// GetChildValue returns the Value of the first direct child named name.
func GetChildValue(tree *Node, name string) interface{} {
	c := GetChild(tree, name, true)
	if c == nil {
		return nil
	}
	return c.Value
}

// RetrieveValue performs a depth-first search of tree (including tree
// itself) for the first node named name and returns its Value.
func RetrieveValue(tree *Node, name string) (interface{}, bool) {
	if tree == nil {
		return nil, false
	}
	if tree.Name == name {
		return tree.Value, true
	}
	for _, c := range tree.Children {
		if v, ok := RetrieveValue(c, name); ok {
			return v, true
		}
	}
	return nil, false
}

// add appends a child to tree and returns tree, for fluent construction in
// the parser.
func (n *Node) add(child *Node) *Node {
	n.Children = append(n.Children, child)
	return n
}

func leaf(name string, value interface{}, pos scanner.Position) *Node {
	return &Node{Name: name, Value: value, Pos: pos}
}

func tree(name string, pos scanner.Position, children ...*Node) *Node {
	return &Node{Name: name, Pos: pos, Children: children}
}
