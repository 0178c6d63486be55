package main

import (
	"testing"

	"github.com/lixenwraith/dropchain/chain"
	"github.com/lixenwraith/dropchain/core"
	"github.com/lixenwraith/dropchain/vmath"
)

func TestLayoutColumns(t *testing.T) {
	l := newLayout(90, 30, 3)
	if len(l.columns) != 3 {
		t.Fatalf("Expected 3 columns, got %d", len(l.columns))
	}
	want := core.Area{X: 30, Y: 0, Width: 30, Height: 28}
	if l.columns[1] != want {
		t.Errorf("Expected column 1 %+v, got %+v", want, l.columns[1])
	}
	if s, ok := l.slotAt(core.Pt(65, 3)); !ok || s != 2 {
		t.Errorf("Expected slot 2, got %d %v", s, ok)
	}
	if _, ok := l.slotAt(core.Pt(10, 29)); ok {
		t.Error("Expected status rows outside every column")
	}
}

func TestNestedBoxesStrictlyInside(t *testing.T) {
	c := core.Area{X: 1, Y: 1, Width: 28, Height: 26}
	for d := 0; d < 4; d++ {
		outer, inner := nested(c, d), nested(c, d+1)
		if !vmath.AreaWithin(inner, outer) {
			t.Errorf("Depth %d box %+v not within depth %d box %+v", d+1, inner, d, outer)
		}
	}
	if !nested(c, 100).Empty() {
		t.Error("Expected collapsed box at large depth")
	}
}

func TestItemAt(t *testing.T) {
	l := newLayout(90, 30, 3)
	var c chain.Chain[item]
	c, _ = c.Append("B", item{Label: "B"})
	c, _ = c.Append("C", item{Label: "C"})

	content := l.content(1)
	tests := []struct {
		name  string
		p     core.Point
		want  string
		found bool
	}{
		{"outer item", core.Pt(content.X, content.Y), "B", true},
		{"nested item", vmath.AreaCenter(nested(content, 1)), "C", true},
		{"tail zone belongs to last item", vmath.AreaCenter(l.tailArea(1, 2)), "C", true},
		{"other column", core.Pt(5, 5), "", false},
	}
	for _, tt := range tests {
		label, ok := itemAt(l, 1, c, tt.p)
		if ok != tt.found || label != tt.want {
			t.Errorf("%s: expected %q %v, got %q %v", tt.name, tt.want, tt.found, label, ok)
		}
	}
}
