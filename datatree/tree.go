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

package datatree

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Reserved key names understood by the interpreter and by callers walking a
// Node directly.
const (
	KeyMAT = "MAT"
	KeyMF  = "MF"
	KeyMT  = "MT"
)

// Node is one level of the data tree: a string-keyed mapping whose values
// are either primitives (int, float64, string), an ordered sequence (such
// as []float64 or []int), an indexed-variable map (map[string]interface{}
// keyed by IndexKey), or a nested *Node (a named section). A Node's parent is reachable through its
// own parent field, which Get/GetIndexed climb for the "extvarname resolves
// through enclosing sections" lookup rule.
type Node struct {
	values map[string]interface{}
	parent *Node
}

// New creates a root node with no parent.
func New() *Node {
	return &Node{values: make(map[string]interface{})}
}

// NewChild creates a node whose parent is n. The child does not store
// itself as a key in n; callers that want it addressable call Set.
func (n *Node) NewChild() *Node {
	return &Node{values: make(map[string]interface{}), parent: n}
}

// Parent returns the enclosing node, or nil at the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Set stores value under key in this node.
func (n *Node) Set(key string, value interface{}) {
	n.values[key] = value
}

// GetLocal returns the value stored directly under key in this node,
// without climbing to the parent.
func (n *Node) GetLocal(key string) (interface{}, bool) {
	v, ok := n.values[key]
	return v, ok
}

// Get resolves key by searching this node, then its ancestors via Parent,
// stopping at the first match. This implements the "climbs the data tree
// via __up" lookup rule for extvarname resolution.
func (n *Node) Get(key string) (interface{}, bool) {
	for cur := n; cur != nil; cur = cur.parent {
		if v, ok := cur.values[key]; ok {
			return v, true
		}
	}
	return nil, false
}

// Keys returns the keys stored directly in this node (not its ancestors).
func (n *Node) Keys() []string {
	keys := make([]string, 0, len(n.values))
	for k := range n.values {
		keys = append(keys, k)
	}
	return keys
}

// Ctrl returns the MAT/MF/MT triple resolved through the ancestor chain.
func (n *Node) Ctrl() (mat, mf, mt int, err error) {
	matV, ok := n.Get(KeyMAT)
	if !ok {
		return 0, 0, 0, errors.New("datatree: MAT not set")
	}
	mfV, ok := n.Get(KeyMF)
	if !ok {
		return 0, 0, 0, errors.New("datatree: MF not set")
	}
	mtV, ok := n.Get(KeyMT)
	if !ok {
		return 0, 0, 0, errors.New("datatree: MT not set")
	}
	mat, ok = matV.(int)
	if !ok {
		return 0, 0, 0, errors.New("datatree: MAT is not an int")
	}
	mf, ok = mfV.(int)
	if !ok {
		return 0, 0, 0, errors.New("datatree: MF is not an int")
	}
	mt, ok = mtV.(int)
	if !ok {
		return 0, 0, 0, errors.New("datatree: MT is not an int")
	}
	return mat, mf, mt, nil
}

// IndexKey canonicalizes a tuple of loop indices into the comma-joined
// string key used by an indexed variable's backing map, so E[2,3] is stored
// and looked up under "2,3".
func IndexKey(idx []int) string {
	parts := make([]string, len(idx))
	for i, v := range idx {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// Indexed returns the map[string]interface{} stored under key, creating one
// in this node if absent. Entries are addressed by IndexKey. It errors if a
// non-indexed value already occupies key.
func (n *Node) Indexed(key string) (map[string]interface{}, error) {
	v, ok := n.values[key]
	if !ok {
		m := make(map[string]interface{})
		n.values[key] = m
		return m, nil
	}
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil, errors.Errorf("datatree: %q is not an indexed variable", key)
	}
	return m, nil
}

// GetIndexed resolves key[idx...] by climbing the ancestor chain the same
// way Get does, returning the stored value if present.
func (n *Node) GetIndexed(key string, idx []int) (interface{}, bool) {
	ik := IndexKey(idx)
	for cur := n; cur != nil; cur = cur.parent {
		v, ok := cur.values[key]
		if !ok {
			continue
		}
		m, ok := v.(map[string]interface{})
		if !ok {
			return nil, false
		}
		if val, ok := m[ik]; ok {
			return val, true
		}
		return nil, false
	}
	return nil, false
}

// SetIndexed assigns value to key[idx...] in this node, creating the
// indexed map if absent.
func (n *Node) SetIndexed(key string, idx []int, value interface{}) error {
	m, err := n.Indexed(key)
	if err != nil {
		return err
	}
	m[IndexKey(idx)] = value
	return nil
}

// Child returns the *Node stored under key, or an error if key does not
// hold a *Node.
func (n *Node) Child(key string) (*Node, error) {
	v, ok := n.values[key]
	if !ok {
		return nil, errors.Errorf("datatree: %q has no child section", key)
	}
	c, ok := v.(*Node)
	if !ok {
		return nil, errors.Errorf("datatree: %q is not a section", key)
	}
	return c, nil
}

// OpenSection returns the existing child section under key, or creates and
// attaches a new one if absent.
func (n *Node) OpenSection(key string) *Node {
	if v, ok := n.values[key]; ok {
		if c, ok := v.(*Node); ok {
			return c
		}
	}
	child := n.NewChild()
	n.values[key] = child
	return child
}

// Clone deep-copies n's own values (recursing into nested sections and
// indexed-variable maps) for lookahead's speculative-execution snapshot.
// The parent link is shared, not cloned: speculative execution only ever
// writes into the node it is currently positioned at, never back into an
// enclosing scope, so the ancestor chain needs no copy.
func (n *Node) Clone() *Node {
	c := &Node{values: make(map[string]interface{}, len(n.values)), parent: n.parent}
	for k, v := range n.values {
		c.values[k] = cloneValue(v)
	}
	return c
}

func cloneValue(v interface{}) interface{} {
	switch t := v.(type) {
	case *Node:
		return t.Clone()
	case map[string]interface{}:
		m := make(map[string]interface{}, len(t))
		for k, vv := range t {
			m[k] = cloneValue(vv)
		}
		return m
	case []float64:
		return append([]float64(nil), t...)
	case []int:
		return append([]int(nil), t...)
	default:
		return v
	}
}

// IndexedChild returns the *Node stored at indices idx of the indexed
// variable key, creating both the indexed map and the child section if
// absent.
func (n *Node) IndexedChild(key string, idx []int) (*Node, error) {
	m, err := n.Indexed(key)
	if err != nil {
		return nil, err
	}
	ik := IndexKey(idx)
	if v, ok := m[ik]; ok {
		c, ok := v.(*Node)
		if !ok {
			return nil, errors.Errorf("datatree: %s[%s] is not a section", key, ik)
		}
		return c, nil
	}
	child := n.NewChild()
	m[ik] = child
	return child, nil
}
