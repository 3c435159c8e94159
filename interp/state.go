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
	"github.com/gschnabel/endf/datatree"
)

// rwMode selects whether the executor is reading the wire into the data
// tree or writing the data tree out to the wire.
type rwMode int

const (
	modeRead rwMode = iota
	modeWrite
)

// state holds the single mutable execution context a Parser threads
// through one section's recipe execution: the line buffer and cursor in
// read mode, the accumulated output lines in write mode, the current data
// tree position, the loop-variable scope, and the record log. Execution
// is single-threaded and synchronous; state is the only mutable resource
// (see spec's concurrency model).
type state struct {
	mode rwMode

	lines []string // read mode: input lines of the section
	ofs   int       // read mode: cursor into lines

	out []string // write mode: accumulated output lines (without NS)

	mat, mf, mt int
	data        *datatree.Node
	loop        *datatree.LoopVars
	log         *recordLog
}

// snapshot captures state for lookahead's speculative execution. The data
// tree is deep-copied (Node.Clone) so writes during speculation never
// leak into the committed tree; loop vars and the log ring buffer are
// copied by their own snapshot helpers.
func (s *state) snapshot() *state {
	return &state{
		mode: s.mode,
		lines: s.lines,
		ofs:   s.ofs,
		out:   append([]string(nil), s.out...),
		mat:   s.mat, mf: s.mf, mt: s.mt,
		data: s.data.Clone(),
		loop: s.loop.Snapshot(),
		log:  s.log.snapshot(),
	}
}

// restore replaces s's mutable fields with snapshot's, after a
// speculative lookahead branch has run to completion (successfully or
// not) and its effects must not persist. The data tree node is restored in
// place, so the enclosing section and the caller that hold a pointer to it
// see the pre-lookahead contents.
func (s *state) restore(snapshot *state) {
	s.ofs = snapshot.ofs
	s.out = snapshot.out
	*s.data = *snapshot.data
	s.loop.Restore(snapshot.loop)
	s.log = snapshot.log
}
