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

// Package recipe lexes and parses the recipe DSL: a free-form text
// description of one ENDF MAT/MF/MT section's record layout, including
// for-loops, if/elif/else with optional lookahead, named sections and
// arithmetic expressions over data-tree variables.
//
// Parse produces a tagged *Node tree; the only primitives the interpreter
// needs to walk it are IsTree, GetName, GetChild, GetChildValue and
// RetrieveValue, mirroring the small set of AST accessors the original
// recipe interpreter relies on.
package recipe
