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
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/gschnabel/endf/datatree"
	"github.com/gschnabel/endf/fortran"
	"github.com/gschnabel/endf/record"
)

// oneRecipe returns a RecipeSource that always serves src, regardless of
// (mf, mt); good enough for tests that only ever exercise one section kind.
func oneRecipe(src string) RecipeSource {
	return func(mf, mt int) (string, bool) { return src, true }
}

const headContSendRecipe = `[MAT,MF,MT/ZA,AWR,L1,L2,N1,N2]HEAD
[MAT,MF,MT/A,B,0,0,0,0]CONT
[MAT,MF,0/]SEND
`

func TestParseSectionHeadCont(t *testing.T) {
	opts := fortran.Default()
	head := record.WriteHead(map[string]interface{}{
		"C1": 1001.0, "C2": 0.9991673, "L1": 7, "L2": 0, "N1": 0, "N2": 1,
		"MAT": 125, "MF": 1, "MT": 451,
	}, opts)
	cont := record.WriteCont(map[string]interface{}{
		"C1": 2.0, "C2": 3.0, "L1": 0, "L2": 0, "N1": 0, "N2": 0,
		"MAT": 125, "MF": 1, "MT": 451,
	}, opts)
	send := record.WriteSend(125, 1)

	var lines []string
	lines = append(lines, head...)
	lines = append(lines, cont...)
	lines = append(lines, send...)

	p := New(oneRecipe(headContSendRecipe))
	data, err := p.ParseSection(record.Section{MAT: 125, MF: 1, MT: 451, Lines: lines})
	if err != nil {
		t.Fatal(err)
	}

	za, _ := data.Get("ZA")
	if v, ok := za.(float64); !ok || math.Abs(v-1001.0) > 1e-6 {
		t.Errorf("ZA = %v", za)
	}
	l1, _ := data.Get("L1")
	if v, ok := l1.(int); !ok || v != 7 {
		t.Errorf("L1 = %v", l1)
	}
	a, _ := data.Get("A")
	if v, ok := a.(float64); !ok || v != 2.0 {
		t.Errorf("A = %v", a)
	}
	b, _ := data.Get("B")
	if v, ok := b.(float64); !ok || v != 3.0 {
		t.Errorf("B = %v", b)
	}
}

func TestWriteSectionRoundTrip(t *testing.T) {
	p := New(oneRecipe(headContSendRecipe))

	data := datatree.New()
	data.Set(datatree.KeyMAT, 125)
	data.Set(datatree.KeyMF, 1)
	data.Set(datatree.KeyMT, 451)
	data.Set("ZA", 1001.0)
	data.Set("AWR", 0.9991673)
	data.Set("L1", 7)
	data.Set("L2", 0)
	data.Set("N1", 0)
	data.Set("N2", 1)
	data.Set("A", 2.0)
	data.Set("B", 3.0)

	lines, err := p.WriteSection(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 3 {
		t.Fatalf("WriteSection produced %d lines, want 3", len(lines))
	}

	roundTripped, err := p.ParseSection(record.Section{MAT: 125, MF: 1, MT: 451, Lines: lines})
	if err != nil {
		t.Fatal(err)
	}
	za, _ := roundTripped.Get("ZA")
	if v, _ := za.(float64); math.Abs(v-1001.0) > 1e-6 {
		t.Errorf("round-trip ZA = %v", za)
	}
	a, _ := roundTripped.Get("A")
	if v, _ := a.(float64); v != 2.0 {
		t.Errorf("round-trip A = %v", a)
	}
}

const listLoopRecipe = `[MAT,MF,MT/C1,C2,L1,L2,N1,N2,{E[i]}{i=1 to N1}]LIST
`

func TestListRecordLoop(t *testing.T) {
	opts := fortran.Default()
	lines := record.WriteList(map[string]interface{}{
		"C1": 1.0, "C2": 2.0, "L1": 0, "L2": 0, "N1": 3, "N2": 0,
		"vals": []float64{10, 20, 30},
		"MAT":  125, "MF": 3, "MT": 1,
	}, opts)

	p := New(oneRecipe(listLoopRecipe))
	data, err := p.ParseSection(record.Section{MAT: 125, MF: 3, MT: 1, Lines: lines})
	if err != nil {
		t.Fatal(err)
	}

	n1, _ := data.Get("N1")
	if v, _ := n1.(int); v != 3 {
		t.Fatalf("N1 = %v", n1)
	}
	for i, want := range []float64{10, 20, 30} {
		v, ok := data.GetIndexed("E", []int{i + 1})
		if !ok {
			t.Fatalf("E[%d] not bound", i+1)
		}
		if f, _ := v.(float64); f != want {
			t.Errorf("E[%d] = %v, want %v", i+1, v, want)
		}
	}
}

const ifElseRecipe = `[MAT,MF,MT/ZA,AWR,L1,L2,N1,N2]HEAD
if L1 == 1:
[MAT,MF,MT/A,0,0,0,0,0]CONT
else:
[MAT,MF,MT/B,0,0,0,0,0]CONT
endif
`

func TestIfClauseBranching(t *testing.T) {
	opts := fortran.Default()
	head := record.WriteHead(map[string]interface{}{
		"C1": 0.0, "C2": 0.0, "L1": 1, "L2": 0, "N1": 0, "N2": 0,
		"MAT": 125, "MF": 1, "MT": 451,
	}, opts)
	cont := record.WriteCont(map[string]interface{}{
		"C1": 5.0, "C2": 0.0, "L1": 0, "L2": 0, "N1": 0, "N2": 0,
		"MAT": 125, "MF": 1, "MT": 451,
	}, opts)
	var lines []string
	lines = append(lines, head...)
	lines = append(lines, cont...)

	p := New(oneRecipe(ifElseRecipe))
	data, err := p.ParseSection(record.Section{MAT: 125, MF: 1, MT: 451, Lines: lines})
	if err != nil {
		t.Fatal(err)
	}
	a, ok := data.Get("A")
	if !ok || a.(float64) != 5.0 {
		t.Errorf("A = %v, ok=%v", a, ok)
	}
	if _, ok := data.Get("B"); ok {
		t.Errorf("B should not be bound when the if-branch ran")
	}
}

const sectionRecipe = `(SUB)
[MAT,MF,MT/ZA,AWR,0,0,0,0]HEAD
(/SUB)
`

func TestSectionScoping(t *testing.T) {
	opts := fortran.Default()
	lines := record.WriteHead(map[string]interface{}{
		"C1": 42.0, "C2": 0.0, "L1": 0, "L2": 0, "N1": 0, "N2": 0,
		"MAT": 125, "MF": 1, "MT": 451,
	}, opts)

	p := New(oneRecipe(sectionRecipe))
	data, err := p.ParseSection(record.Section{MAT: 125, MF: 1, MT: 451, Lines: lines})
	if err != nil {
		t.Fatal(err)
	}
	sub, err := data.Child("SUB")
	if err != nil {
		t.Fatal(err)
	}
	za, ok := sub.GetLocal("ZA")
	if !ok || za.(float64) != 42.0 {
		t.Errorf("SUB.ZA = %v, ok=%v", za, ok)
	}
}

const mismatchedSectionRecipe = `(SUB)
[MAT,MF,MT/ZA,AWR,0,0,0,0]HEAD
(/OTHER)
`

func TestInconsistentSectionBrackets(t *testing.T) {
	opts := fortran.Default()
	lines := record.WriteHead(map[string]interface{}{
		"C1": 1.0, "C2": 0.0, "L1": 0, "L2": 0, "N1": 0, "N2": 0,
		"MAT": 125, "MF": 1, "MT": 451,
	}, opts)

	p := New(oneRecipe(mismatchedSectionRecipe))
	_, err := p.ParseSection(record.Section{MAT: 125, MF: 1, MT: 451, Lines: lines})
	if err == nil {
		t.Fatal("expected an error from mismatched section brackets")
	}
	var sbErr *InconsistentSectionBracketsError
	if !errors.As(err, &sbErr) {
		t.Fatalf("expected *InconsistentSectionBracketsError, got %T: %v", err, err)
	}
}

const textRecipe = `[MAT,MF,MT/HL]TEXT
`

func TestTextRecord(t *testing.T) {
	lines := record.WriteText(map[string]interface{}{
		"HL": "sample description line", "MAT": 125, "MF": 1, "MT": 451,
	})

	p := New(oneRecipe(textRecipe))
	data, err := p.ParseSection(record.Section{MAT: 125, MF: 1, MT: 451, Lines: lines})
	if err != nil {
		t.Fatal(err)
	}
	hl, ok := data.Get("HL")
	if !ok {
		t.Fatal("HL not bound")
	}
	if got := strings.TrimRight(hl.(string), " "); got != "sample description line" {
		t.Errorf("HL = %q", got)
	}

	out, err := p.WriteSection(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || len(out[0]) != 80 {
		t.Fatalf("WriteSection(TEXT) produced %v", out)
	}
}

const headSendRecipe = `[MAT,MF,MT/ZA,AWR,0,0,0,0]HEAD
[MAT,MF,0/]SEND
`

func TestDriverParseTapeAndFilter(t *testing.T) {
	opts := fortran.Default()
	sec1 := append(
		record.WriteHead(map[string]interface{}{
			"C1": 1.0, "C2": 0.0, "L1": 0, "L2": 0, "N1": 0, "N2": 0,
			"MAT": 125, "MF": 1, "MT": 451,
		}, opts),
		record.WriteSend(125, 1)...,
	)
	sec2 := append(
		record.WriteHead(map[string]interface{}{
			"C1": 2.0, "C2": 0.0, "L1": 0, "L2": 0, "N1": 0, "N2": 0,
			"MAT": 125, "MF": 3, "MT": 1,
		}, opts),
		record.WriteSend(125, 3)...,
	)

	var lines []string
	lines = append(lines, sec1...)
	lines = append(lines, record.WriteFend(125)...)
	lines = append(lines, sec2...)
	lines = append(lines, record.WriteFend(125)...)
	lines = append(lines, record.WriteMend()...)
	lines = append(lines, record.WriteTend()...)

	p := New(oneRecipe(headSendRecipe))
	results, err := p.ParseTape(lines, SectionFilter{}, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("ParseTape returned %d sections, want 2", len(results))
	}
	if results[0].MF != 1 || results[0].MT != 451 {
		t.Errorf("section 0 = MF=%d MT=%d", results[0].MF, results[0].MT)
	}
	if results[1].MF != 3 || results[1].MT != 1 {
		t.Errorf("section 1 = MF=%d MT=%d", results[1].MF, results[1].MT)
	}

	filtered, err := p.ParseTape(lines, SectionFilter{Exclude: []FilterEntry{{MF: 3}}}, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(filtered) != 1 || filtered[0].MF != 1 {
		t.Fatalf("filtered ParseTape = %+v", filtered)
	}
}

func TestWriteTapeRoundTrip(t *testing.T) {
	p := New(oneRecipe(headSendRecipe))

	sec1 := datatree.New()
	sec1.Set(datatree.KeyMAT, 125)
	sec1.Set(datatree.KeyMF, 1)
	sec1.Set(datatree.KeyMT, 451)
	sec1.Set("ZA", 1001.0)
	sec1.Set("AWR", 0.0)

	sec2 := datatree.New()
	sec2.Set(datatree.KeyMAT, 125)
	sec2.Set(datatree.KeyMF, 3)
	sec2.Set(datatree.KeyMT, 1)
	sec2.Set("ZA", 1002.0)
	sec2.Set("AWR", 0.0)

	lines, err := p.WriteTape([]*datatree.Node{sec1, sec2})
	if err != nil {
		t.Fatal(err)
	}

	results, err := p.ParseTape(lines, SectionFilter{}, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("round trip produced %d sections, want 2", len(results))
	}
	za0, _ := results[0].Data.Get("ZA")
	if v, _ := za0.(float64); v != 1001.0 {
		t.Errorf("section 0 ZA = %v", za0)
	}
	za1, _ := results[1].Data.Get("ZA")
	if v, _ := za1.(float64); v != 1002.0 {
		t.Errorf("section 1 ZA = %v", za1)
	}
}
