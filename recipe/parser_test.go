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

import "testing"

func TestParseHeadRecord(t *testing.T) {
	src := "[MAT,1,MT/ ZA, AWR, 0, 0, 0, 0] HEAD\n"
	root, err := Parse(src, "test")
	if err != nil {
		t.Fatal(err)
	}
	if len(root.Children) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(root.Children))
	}
	rec := root.Children[0]
	if GetName(rec) != "head_record" {
		t.Fatalf("got %s", GetName(rec))
	}
	fields := GetChild(rec, "fields")
	if len(fields.Children) != 6 {
		t.Fatalf("expected 6 fields, got %d", len(fields.Children))
	}
	za := fields.Children[0]
	if GetName(za) != "extvarname" {
		t.Fatalf("field 0 = %s", GetName(za))
	}
}

func TestParseForLoopAndSection(t *testing.T) {
	src := `(MF3)
for i = 1 to N:
  [MAT,3,MT/ E[i], XS[i], 0, 0, 0, 0] CONT
endfor
(/MF3)
`
	root, err := Parse(src, "test")
	if err != nil {
		t.Fatal(err)
	}
	if len(root.Children) != 1 {
		t.Fatalf("expected 1 top-level statement, got %d", len(root.Children))
	}
	sec := root.Children[0]
	if GetName(sec) != "section" {
		t.Fatalf("got %s", GetName(sec))
	}
	body := sec.Children[1]
	forLoop := body.Children[0]
	if GetName(forLoop) != "for_loop" {
		t.Fatalf("got %s", GetName(forLoop))
	}
}

func TestParseIfLookahead(t *testing.T) {
	src := `if LI == 1 [lookahead=1]:
  STOP "bad layout"
elif LI == 0 and LTT == 1:
  [MAT,14,MT/ 0,0,0,0,0,0] CONT
endif
`
	root, err := Parse(src, "test")
	if err != nil {
		t.Fatal(err)
	}
	ifc := root.Children[0]
	if GetName(ifc) != "if_clause" {
		t.Fatalf("got %s", GetName(ifc))
	}
	if len(ifc.Children) != 2 {
		t.Fatalf("expected if + elif branches, got %d", len(ifc.Children))
	}
	firstBranch := ifc.Children[0]
	if GetChild(firstBranch, "lookahead_expr", true) == nil {
		t.Fatalf("expected lookahead_expr on first branch")
	}
}

func TestParseListWithPadlineAndLoop(t *testing.T) {
	src := "[MAT,3,MT/ 0,0,0,0,NPL,0, PADLINE, {E[i],XS[i]}{i=1 to N}] LIST\n"
	root, err := Parse(src, "test")
	if err != nil {
		t.Fatal(err)
	}
	rec := root.Children[0]
	fields := GetChild(rec, "fields")
	last := fields.Children[len(fields.Children)-1]
	if GetName(last) != "list_loop" {
		t.Fatalf("got %s", GetName(last))
	}
	padline := fields.Children[6]
	if GetName(padline) != "LINEPADDING" {
		t.Fatalf("got %s", GetName(padline))
	}
}
