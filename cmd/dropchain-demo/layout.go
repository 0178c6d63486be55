package main

import (
	"github.com/lixenwraith/dropchain/chain"
	"github.com/lixenwraith/dropchain/core"
	"github.com/lixenwraith/dropchain/vmath"
)

// statusRows is reserved at the bottom of the screen for the status line
const statusRows = 2

// layout splits the screen into one framed column per root slot
type layout struct {
	columns []core.Area // frame of each slot column
}

func newLayout(width, height, slots int) layout {
	l := layout{columns: make([]core.Area, slots)}
	if slots == 0 {
		return l
	}
	colWidth := width / slots
	for i := range l.columns {
		l.columns[i] = core.Area{X: i * colWidth, Y: 0, Width: colWidth, Height: max(height-statusRows, 0)}
	}
	return l
}

// content is the area inside the column frame where items nest
func (l layout) content(slot int) core.Area {
	return l.columns[slot].Inset(1)
}

// nested returns the box of the item at depth d inside c
// Each level steps two cells right and down and ends one row above its parent
func nested(c core.Area, d int) core.Area {
	r := core.Area{
		X:      c.X + 2*d,
		Y:      c.Y + 2*d,
		Width:  c.Width - 4*d,
		Height: c.Height - 3*d,
	}
	r.Width = max(r.Width, 0)
	r.Height = max(r.Height, 0)
	return r
}

// tailArea is the drop zone after the last item of a chain of length n
func (l layout) tailArea(slot, n int) core.Area {
	return nested(l.content(slot), n)
}

// itemAt returns the innermost item of slot whose box contains p
func itemAt[T any](l layout, slot int, c chain.Chain[T], p core.Point) (string, bool) {
	content := l.content(slot)
	found, ok := "", false
	d := 0
	for label := range c.All() {
		if !vmath.AreaContains(nested(content, d), p) {
			break
		}
		found, ok = label, true
		d++
	}
	return found, ok
}

// slotAt returns the column containing p
func (l layout) slotAt(p core.Point) (int, bool) {
	for i, col := range l.columns {
		if vmath.AreaContains(col, p) {
			return i, true
		}
	}
	return -1, false
}
