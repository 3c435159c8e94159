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

import "testing"

func TestGetClimbsParent(t *testing.T) {
	root := New()
	root.Set("MAT", 125)
	child := root.NewChild()
	child.Set("L1", 3)

	if v, ok := child.Get("MAT"); !ok || v.(int) != 125 {
		t.Fatalf("expected to climb to parent MAT, got %v %v", v, ok)
	}
	if _, ok := root.Get("L1"); ok {
		t.Fatalf("parent should not see child-only key")
	}
}

func TestCtrl(t *testing.T) {
	root := New()
	root.Set("MAT", 125)
	root.Set("MF", 3)
	root.Set("MT", 1)
	child := root.NewChild()
	mat, mf, mt, err := child.Ctrl()
	if err != nil {
		t.Fatal(err)
	}
	if mat != 125 || mf != 3 || mt != 1 {
		t.Fatalf("got %d %d %d", mat, mf, mt)
	}
}

func TestIndexedChild(t *testing.T) {
	root := New()
	c1, err := root.IndexedChild("table", []int{1})
	if err != nil {
		t.Fatal(err)
	}
	c1.Set("X", 1.0)
	c1again, err := root.IndexedChild("table", []int{1})
	if err != nil {
		t.Fatal(err)
	}
	if c1 != c1again {
		t.Fatalf("expected same child on repeat access")
	}
}

func TestLoopVarsSnapshotRestore(t *testing.T) {
	lv := NewLoopVars()
	lv.Bind("n", 1)
	snap := lv.Snapshot()
	lv.Bind("n", 2)
	lv.Bind("m", 9)

	lv.Restore(snap)
	if v, _ := lv.Get("n"); v != 1 {
		t.Fatalf("n = %d, want 1 after restore", v)
	}
	if _, ok := lv.Get("m"); ok {
		t.Fatalf("m should not survive restore")
	}
}
