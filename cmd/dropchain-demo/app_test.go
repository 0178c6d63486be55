package main

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/dropchain/audio"
	"github.com/lixenwraith/dropchain/config"
	"github.com/lixenwraith/dropchain/input"
	"github.com/lixenwraith/dropchain/metrics"
	"github.com/lixenwraith/dropchain/vmath"
)

func newTestApp(t *testing.T) *app {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(90, 30)

	stats, err := metrics.NewCollector(nil)
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.Config{Layout: config.LayoutConfig{
		Slots:    [][]string{{"A"}, {"B", "C"}, {}},
		Strategy: "center",
	}}
	a, err := newApp(screen, cfg, audio.NewPlayer(), stats, zerolog.Nop())
	if err != nil {
		t.Fatalf("newApp: %v", err)
	}
	return a
}

func TestAppDragToEmptySlot(t *testing.T) {
	a := newTestApp(t)
	if got := a.coord.Slots().String(); got != "A (); B (C ()); ()" {
		t.Fatalf("Unexpected initial layout %q", got)
	}

	dest := vmath.AreaCenter(a.layout.tailArea(2, 0))
	steps := []input.Intent{
		{Type: input.IntentPointerDown, X: 2, Y: 2},
		{Type: input.IntentPointerMove, X: dest.X, Y: dest.Y},
		{Type: input.IntentPointerUp, X: dest.X, Y: dest.Y},
	}
	for _, in := range steps {
		if !a.handle(&in) {
			t.Fatalf("%s must not quit", in.Type)
		}
		a.draw()
	}

	if got := a.coord.Slots().String(); got != "(); B (C ()); A ()" {
		t.Errorf("Expected A moved to slot 2, got %q", got)
	}
	if got := a.stats.Totals().Drops; got != 1 {
		t.Errorf("Expected 1 drop counted, got %d", got)
	}
	if !strings.Contains(a.lastEvent, "A") {
		t.Errorf("Expected status to mention A, got %q", a.lastEvent)
	}

	// Tail target of slot 2 moved below A after relayout
	center := vmath.AreaCenter(a.layout.tailArea(2, 1))
	if label, ok := itemAt(a.layout, 2, a.coord.Slots().At(2), center); !ok || label != "A" {
		t.Errorf("Expected A box around the new tail, got %q %v", label, ok)
	}
}

func TestAppGroupMoveAndCancel(t *testing.T) {
	a := newTestApp(t)

	// Pick B from slot 1; C travels with it
	bOrigin := a.layout.content(1)
	a.handle(&input.Intent{Type: input.IntentPointerDown, X: bOrigin.X, Y: bOrigin.Y})
	if a.coord.Draggable("C") {
		t.Error("Expected C locked while its parent is dragged")
	}

	a.handle(&input.Intent{Type: input.IntentCancel})
	if got := a.coord.Slots().String(); got != "A (); B (C ()); ()" {
		t.Errorf("Expected cancel to keep layout, got %q", got)
	}
	if got := a.stats.Totals().Cancels; got != 1 {
		t.Errorf("Expected 1 cancel, got %d", got)
	}

	a.handle(&input.Intent{Type: input.IntentPointerDown, X: bOrigin.X, Y: bOrigin.Y})
	dest := vmath.AreaCenter(a.layout.tailArea(0, 1))
	a.handle(&input.Intent{Type: input.IntentPointerMove, X: dest.X, Y: dest.Y})
	a.handle(&input.Intent{Type: input.IntentPointerUp, X: dest.X, Y: dest.Y})

	if got := a.coord.Slots().String(); got != "A (B (C ())); (); ()" {
		t.Errorf("Expected B and C under A, got %q", got)
	}
}

func TestAppControlIntents(t *testing.T) {
	a := newTestApp(t)

	a.handle(&input.Intent{Type: input.IntentToggleMute})
	if !a.player.Muted() {
		t.Error("Expected mute toggled on")
	}
	if a.handle(&input.Intent{Type: input.IntentQuit}) {
		t.Error("Expected quit intent to stop the loop")
	}
	// Pointer up with no drag is ignored
	if !a.handle(&input.Intent{Type: input.IntentPointerUp, X: 1, Y: 1}) {
		t.Error("Expected stray pointer up to be ignored")
	}
}
