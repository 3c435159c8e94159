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

// KeyOfs is the reserved loop-variable key holding the line cursor at the
// point a record was last read or written, used for diagnostics.
const KeyOfs = "__ofs"

// LoopVars is the flat scope holding for-loop induction variables plus the
// reserved __ofs entry. Unlike Node, it has no parent chain: loop variables
// are always resolved before falling back to the data tree.
type LoopVars struct {
	vars map[string]int
}

// NewLoopVars creates an empty loop-variable scope.
func NewLoopVars() *LoopVars {
	return &LoopVars{vars: make(map[string]int)}
}

// Bind assigns value to name, replacing any existing binding of the same
// name; the earlier value is not kept, so Unbind leaves name unbound.
func (l *LoopVars) Bind(name string, value int) {
	l.vars[name] = value
}

// Unbind removes name, e.g. when a for-loop body finishes iterating.
func (l *LoopVars) Unbind(name string) {
	delete(l.vars, name)
}

// Get returns the bound value of name, if any.
func (l *LoopVars) Get(name string) (int, bool) {
	v, ok := l.vars[name]
	return v, ok
}

// SetOfs records the current line cursor under __ofs.
func (l *LoopVars) SetOfs(ofs int) {
	l.vars[KeyOfs] = ofs
}

// Snapshot returns a deep copy of the scope, used to isolate lookahead and
// other speculative execution from the live loop-variable state.
func (l *LoopVars) Snapshot() *LoopVars {
	cp := make(map[string]int, len(l.vars))
	for k, v := range l.vars {
		cp[k] = v
	}
	return &LoopVars{vars: cp}
}

// Restore replaces this scope's contents with snapshot's, without changing
// the LoopVars identity other code may hold a pointer to.
func (l *LoopVars) Restore(snapshot *LoopVars) {
	l.vars = snapshot.vars
}
