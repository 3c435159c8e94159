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

package fortran

import (
	"math"
	"testing"
)

func TestReadFloatImplicitExponent(t *testing.T) {
	cases := []struct {
		field string
		want  float64
	}{
		{"-2.5+3      ", -2500.0},
		{"1.234000-7", 1.234e-7},
		{" 9.991673-1", 0.9991673},
	}
	for _, c := range cases {
		got, err := ReadFloat(c.field, Default())
		if err != nil {
			t.Fatalf("ReadFloat(%q): %v", c.field, err)
		}
		if math.Abs(got-c.want) > 1e-9*math.Abs(c.want)+1e-12 {
			t.Errorf("ReadFloat(%q) = %v, want %v", c.field, got, c.want)
		}
	}
}

func TestWriteFloatRoundTrip(t *testing.T) {
	opts := Default()
	s := WriteFloat(1.234e-7, opts)
	if s != " 1.234000-7" {
		t.Fatalf("WriteFloat(1.234e-7) = %q, want %q", s, " 1.234000-7")
	}
	got, err := ReadFloat(s, opts)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-1.234e-7) > 1e-13 {
		t.Errorf("round trip got %v", got)
	}
}

func TestReadInt(t *testing.T) {
	n, err := ReadInt("  125", Default())
	if err != nil || n != 125 {
		t.Fatalf("ReadInt: %v, %v", n, err)
	}
	opts := Default()
	opts.BlankAsZero = true
	n, err = ReadInt("           ", opts)
	if err != nil || n != 0 {
		t.Fatalf("ReadInt blank: %v, %v", n, err)
	}
}

func TestWriteInt(t *testing.T) {
	s := WriteInt(451, 11)
	if s != "        451" {
		t.Fatalf("WriteInt = %q", s)
	}
}

func TestCountSignifDigits(t *testing.T) {
	cases := map[string]int{
		"1.234000-7": 4,
		"100.5":      4,
		"0.00120":    2,
	}
	for s, want := range cases {
		if got := countSignifDigits(s); got != want {
			t.Errorf("countSignifDigits(%q) = %d, want %d", s, got, want)
		}
	}
}

func TestReadFields(t *testing.T) {
	line := " 1.001000+3 9.991673-1          0          0          0          0"
	vals, err := ReadFields(line, 6, false, 0, Default())
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{1001.0, 0.9991673, 0, 0, 0, 0}
	for i, w := range want {
		if math.Abs(vals[i]-w) > 1e-9*math.Abs(w)+1e-9 {
			t.Errorf("field %d = %v, want %v", i, vals[i], w)
		}
	}
}
