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

// Package errw wraps an io.Writer so a long run of unchecked writes (one
// ENDF line at a time) can have its error checked once at the end instead
// of after every call.
package errw

import (
	"io"

	"github.com/pkg/errors"
)

// Writer tracks the first error seen on the wrapped io.Writer. Once set,
// Write is a no-op that keeps returning that error.
type Writer struct {
	w   io.Writer
	Err error
}

// New wraps w.
func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) Write(p []byte) (n int, err error) {
	if w.Err != nil {
		return 0, w.Err
	}
	n, err = w.w.Write(p)
	if err != nil {
		w.Err = errors.Wrap(err, "write failed")
	}
	return n, w.Err
}

// WriteLine writes s followed by a newline, ignoring the per-call error
// return the way callers that only check w.Err at the end expect.
func (w *Writer) WriteLine(s string) {
	io.WriteString(w, s)
	io.WriteString(w, "\n")
}
