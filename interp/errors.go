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

import "fmt"

// logCapacity bounds the record-log ring buffer attached to a ParserError,
// mirroring the bounded-capacity accumulation idiom asm.parser uses for its
// error list (asm.maxErrors).
const logCapacity = 20

// LogEntry is one record-log ring-buffer entry: the line cursor, the raw
// line being processed, and the recipe node that drove it.
type LogEntry struct {
	Ofs  int
	Line string
	Node string
}

// recordLog is a fixed-capacity ring of the most recent LogEntry values,
// attached to a ParserError so a failure carries its immediate context.
type recordLog struct {
	entries []LogEntry
}

func newRecordLog() *recordLog {
	return &recordLog{}
}

func (l *recordLog) add(e LogEntry) {
	l.entries = append(l.entries, e)
	if len(l.entries) > logCapacity {
		l.entries = l.entries[len(l.entries)-logCapacity:]
	}
}

func (l *recordLog) snapshot() *recordLog {
	cp := make([]LogEntry, len(l.entries))
	copy(cp, l.entries)
	return &recordLog{entries: cp}
}

// UnexpectedControlRecordError is raised when a recipe's literal ctrl_spec
// constraint (a fixed MAT/MF/MT rather than the bare keyword) disagrees
// with the value observed on the wire.
type UnexpectedControlRecordError struct {
	Field     string // "MAT", "MF" or "MT"
	Want, Got int
}

func (e *UnexpectedControlRecordError) Error() string {
	return fmt.Sprintf("unexpected control record: %s want %d, got %d", e.Field, e.Want, e.Got)
}

// MoreListElementsExpectedError is raised when a LIST/INTG body expression
// tries to consume a value past the end of the declared body length.
type MoreListElementsExpectedError struct {
	Record   string
	WantIdx  int
	BodyLen  int
}

func (e *MoreListElementsExpectedError) Error() string {
	return fmt.Sprintf("%s body: more elements expected at index %d (body has %d)", e.Record, e.WantIdx, e.BodyLen)
}

// UnconsumedListElementsError is raised when a LIST/INTG body mapper
// finishes without having consumed every declared body value.
type UnconsumedListElementsError struct {
	Record        string
	Consumed, Total int
}

func (e *UnconsumedListElementsError) Error() string {
	return fmt.Sprintf("%s body: %d of %d elements left unconsumed", e.Record, e.Total-e.Consumed, e.Total)
}

// InconsistentSectionBracketsError is raised when a section's head and
// tail names disagree after index resolution.
type InconsistentSectionBracketsError struct {
	Head, Tail string
}

func (e *InconsistentSectionBracketsError) Error() string {
	return fmt.Sprintf("section brackets disagree: (%s) ... (/%s)", e.Head, e.Tail)
}

// InconsistentVariableBindingError is raised when a variable (plain or
// `var?`) is rebound to a value that conflicts with its existing binding
// and the relevant tolerance option is off.
type InconsistentVariableBindingError struct {
	Name     string
	Old, New float64
}

func (e *InconsistentVariableBindingError) Error() string {
	return fmt.Sprintf("variable %s rebound: had %v, now %v", e.Name, e.Old, e.New)
}

// NumberMismatchError is raised when a literal number in a recipe
// disagrees with the value observed on the wire, subject to the
// IgnoreZeroMismatch/IgnoreNumberMismatch/FuzzyMatching options.
type NumberMismatchError struct {
	Want, Got float64
}

func (e *NumberMismatchError) Error() string {
	return fmt.Sprintf("number mismatch: recipe says %v, wire has %v", e.Want, e.Got)
}

// StopError is raised by an executed STOP recipe instruction.
type StopError struct {
	Message string
}

func (e *StopError) Error() string {
	return "recipe stop: " + e.Message
}

// ParserError is the catch-all umbrella (spec's "Parser" error kind) that
// every section failure surfaces through: it wraps the underlying typed
// error with the (MAT,MF,MT) section identity and the record-log ring
// buffer active at the time of failure.
type ParserError struct {
	MAT, MF, MT int
	Err         error
	Log         []LogEntry
}

func (e *ParserError) Error() string {
	return fmt.Sprintf("MAT=%d MF=%d MT=%d: %v", e.MAT, e.MF, e.MT, e.Err)
}

func (e *ParserError) Unwrap() error { return e.Err }
