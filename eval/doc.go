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

// Package eval evaluates recipe expressions against a data tree and a
// loop-variable scope, in two directions: forward evaluation for the write
// path (every variable is known) and inverse evaluation for the read path
// (exactly one variable in the expression is unknown, and the evaluator
// algebraically solves for it).
package eval
