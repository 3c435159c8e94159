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

package record

import (
	"math"
	"testing"

	"github.com/gschnabel/endf/fortran"
)

func TestReadHeadCont(t *testing.T) {
	line := " 1.001000+3 9.991673-1          0          0          0          0 125 1451    1"
	fields, next, err := ReadHead([]string{line}, 0, false)
	if err != nil {
		t.Fatal(err)
	}
	if next != 1 {
		t.Fatalf("next = %d, want 1", next)
	}
	za, _ := fields["C1"].(float64)
	awr, _ := fields["C2"].(float64)
	if math.Abs(za-1001.0) > 1e-6 {
		t.Errorf("C1 = %v, want 1001.0", za)
	}
	if math.Abs(awr-0.9991673) > 1e-6 {
		t.Errorf("C2 = %v, want 0.9991673", awr)
	}
	ctrl := GetCtrl(fields)
	if ctrl.MAT != 125 || ctrl.MF != 1 || ctrl.MT != 451 {
		t.Errorf("ctrl = %+v", ctrl)
	}
}

func TestWriteHeadRoundTrip(t *testing.T) {
	opts := fortran.Default()
	fields := map[string]interface{}{
		"C1": 1001.0, "C2": 0.9991673, "L1": 0, "L2": 0, "N1": 0, "N2": 0,
		"MAT": 125, "MF": 1, "MT": 451,
	}
	lines := WriteHead(fields, opts)
	if len(lines) != 1 || len(lines[0]) != 80 {
		t.Fatalf("WriteHead produced %v", lines)
	}
	got, _, err := ReadHead(lines, 0, false)
	if err != nil {
		t.Fatal(err)
	}
	if got["C1"].(float64) != 1001.0 {
		t.Errorf("round-trip C1 = %v", got["C1"])
	}
}

func TestReadListRecord(t *testing.T) {
	lines := []string{
		" 0.000000+0 0.000000+0          0          0          0          6 125 3  1    1",
		" 1.000000+0 2.000000+0 3.000000+0 4.000000+0 5.000000+0 6.000000+0 125 3  1    2",
	}
	fields, next, err := ReadList(lines, 0, false)
	if err != nil {
		t.Fatal(err)
	}
	if next != 2 {
		t.Fatalf("next = %d", next)
	}
	vals := fields["vals"].([]float64)
	if len(vals) != 6 {
		t.Fatalf("len(vals) = %d", len(vals))
	}
	for i, want := range []float64{1, 2, 3, 4, 5, 6} {
		if math.Abs(vals[i]-want) > 1e-9 {
			t.Errorf("vals[%d] = %v, want %v", i, vals[i], want)
		}
	}
}

func TestSplitSections(t *testing.T) {
	lines := []string{
		" 1.001000+3 9.991673-1          0          0          0          0 125 1451    1",
		"                                                                   125 1  0    2",
		"                                                                   125 0  0    1",
		"                                                                     0 0  0    1",
	}
	sections, err := SplitSections(lines)
	if err != nil {
		t.Fatal(err)
	}
	if len(sections) != 1 {
		t.Fatalf("len(sections) = %d, want 1", len(sections))
	}
	s := sections[0]
	if s.MAT != 125 || s.MF != 1 || s.MT != 451 {
		t.Errorf("section ctrl = %+v", s)
	}
	if len(s.Lines) != 2 {
		t.Errorf("section has %d lines, want 2", len(s.Lines))
	}
}

func TestIntgRoundTrip(t *testing.T) {
	fields := map[string]interface{}{
		"II": 1, "JJ": 2, "KIJ": []int{3, -4, 5},
		"MAT": 125, "MF": 32, "MT": 151,
	}
	lines := WriteIntg(fields, 2)
	got, _, err := ReadIntg(lines, 0, 2)
	if err != nil {
		t.Fatal(err)
	}
	kij := got["KIJ"].([]int)
	want := []int{3, -4, 5}
	if len(kij) < len(want) {
		t.Fatalf("KIJ = %v", kij)
	}
	for i, w := range want {
		if kij[i] != w {
			t.Errorf("KIJ[%d] = %d, want %d", i, kij[i], w)
		}
	}
}
