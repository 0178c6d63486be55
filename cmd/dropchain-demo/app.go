package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/dropchain/audio"
	"github.com/lixenwraith/dropchain/config"
	"github.com/lixenwraith/dropchain/core"
	"github.com/lixenwraith/dropchain/dnd"
	"github.com/lixenwraith/dropchain/event"
	"github.com/lixenwraith/dropchain/input"
	dlog "github.com/lixenwraith/dropchain/log"
	"github.com/lixenwraith/dropchain/metrics"
	"github.com/lixenwraith/dropchain/session"
	"github.com/lixenwraith/dropchain/target"
)

// item is the payload carried by every draggable in the demo
type item struct {
	Label string
}

var (
	styleFrame   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleItem    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleLocked  = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen).Dim(true)
	styleHover   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleGhost   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleLastEvt = tcell.StyleDefault.Foreground(tcell.ColorAqua)
)

// app binds the screen, the coordinator and its observers
// Everything runs on the event loop goroutine
type app struct {
	screen  tcell.Screen
	coord   *dnd.Coordinator[item]
	queue   *event.Queue
	machine *input.Machine
	player  *audio.Player
	stats   *metrics.Collector
	log     zerolog.Logger

	layout    layout
	lastEvent string
}

func newApp(screen tcell.Screen, cfg config.Config, player *audio.Player, stats *metrics.Collector, logger zerolog.Logger) (*app, error) {
	distance, ok := target.DistanceByName(cfg.Layout.Strategy)
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q", cfg.Layout.Strategy)
	}

	a := &app{
		screen:  screen,
		queue:   event.NewQueue(),
		machine: input.NewMachine(),
		player:  player,
		stats:   stats,
		log:     logger,
	}

	n := len(cfg.Layout.Slots)
	a.coord = dnd.New[item](n,
		dnd.WithLogger(dlog.WithComponent("dnd")),
		dnd.WithEventQueue(a.queue),
		dnd.WithObserver(stats),
		dnd.WithObserver(player),
	)

	for slot, labels := range cfg.Layout.Slots {
		for _, label := range labels {
			if _, err := a.coord.RegisterDraggable(label, item{Label: label}, slot); err != nil {
				return nil, err
			}
		}
	}

	strategy := target.Strategy{Accept: target.AcceptType[item](), Distance: distance}
	for slot := range n {
		_, err := a.coord.RegisterDropTarget(dnd.TargetSpec{
			Key:      slotKey(slot),
			Strategy: strategy,
			Slot:     slot,
		}, dnd.Listeners[item]{})
		if err != nil {
			return nil, err
		}
	}

	a.relayout()
	return a, nil
}

func slotKey(slot int) string {
	return fmt.Sprintf("slot%d", slot)
}

// relayout places each slot's drop target on its empty tail position
// The target depth is the chain length so a deeper tail beats a shallower one
func (a *app) relayout() {
	w, h := a.screen.Size()
	slots := a.coord.Slots()
	a.layout = newLayout(w, h, slots.Len())

	for i := range slots.Len() {
		n := slots.At(i).Len()
		if err := a.coord.MoveDropTarget(slotKey(i), a.layout.tailArea(i, n), n); err != nil {
			a.log.Error().Err(err).Int("slot", i).Msg("relayout")
		}
	}
	if err := a.coord.Retest(); err != nil {
		a.log.Error().Err(err).Msg("retest")
	}
}

// handle applies one intent, returns false to quit
func (a *app) handle(in *input.Intent) bool {
	p := core.Pt(in.X, in.Y)
	active := a.coord.Session().State != session.StateIdle

	var err error
	switch in.Type {
	case input.IntentPointerDown:
		err = a.pickUp(p)
	case input.IntentPointerMove:
		if active {
			err = a.coord.PointerMove(p)
		}
	case input.IntentPointerUp:
		if active {
			if err = a.coord.PointerMove(p); err == nil {
				err = a.coord.PointerUp()
			}
			a.relayout()
		}
	case input.IntentCancel:
		if active {
			err = a.coord.Cancel()
		}
		a.machine.Reset()
	case input.IntentToggleMute:
		a.player.SetMuted(!a.player.Muted())
	case input.IntentResize:
		a.screen.Sync()
		a.relayout()
	case input.IntentQuit:
		return false
	}
	if err != nil {
		a.log.Warn().Err(err).Str("intent", in.Type.String()).Msg("input rejected")
	}

	a.drain()
	return true
}

// pickUp starts a drag on the innermost item under p
func (a *app) pickUp(p core.Point) error {
	slot, ok := a.layout.slotAt(p)
	if !ok {
		return nil
	}
	label, ok := itemAt(a.layout, slot, a.coord.Slots().At(slot), p)
	if !ok || !a.coord.Draggable(label) {
		return nil
	}
	return a.coord.PointerDown(label, p)
}

// drain consumes queued lifecycle events into the status line and the log
func (a *app) drain() {
	for _, ev := range a.queue.Consume() {
		a.lastEvent = describe(ev)
		a.log.Debug().
			Str("event", ev.Type.String()).
			Str("label", ev.Label).
			Str("target", ev.Target).
			Int64("frame", ev.Frame).
			Msg("lifecycle")
	}
}

func describe(ev event.Event) string {
	switch {
	case ev.Target != "" && ev.Slot != event.NoSlot:
		return fmt.Sprintf("%s %s -> %s (slot %d)", ev.Type, ev.Label, ev.Target, ev.Slot)
	case ev.Target != "":
		return fmt.Sprintf("%s %s @ %s", ev.Type, ev.Label, ev.Target)
	}
	return fmt.Sprintf("%s %s", ev.Type, ev.Label)
}

func (a *app) draw() {
	a.screen.Clear()

	slots := a.coord.Slots()
	sess := a.coord.Session()
	hovered, hovering := a.coord.Hovered()

	for i, col := range a.layout.columns {
		drawBox(a.screen, col, styleFrame, slotKey(i))

		c := slots.At(i)
		content := a.layout.content(i)
		d := 0
		for label := range c.All() {
			style := styleItem
			if !a.coord.Draggable(label) {
				style = styleLocked
			}
			drawBox(a.screen, nested(content, d), style, label)
			d++
		}

		if hovering && hovered == slotKey(i) {
			fill(a.screen, a.layout.tailArea(i, d), '░', styleHover)
		}
	}

	if sess.Label != "" && sess.State == session.StateDragging {
		drawText(a.screen, sess.Pointer.X, sess.Pointer.Y, "["+sess.Label+"]", styleGhost)
	}

	w, h := a.screen.Size()
	totals := a.stats.Totals()
	audioState := "on"
	if a.player.Muted() {
		audioState = "muted"
	}
	drawText(a.screen, 0, h-2, truncate(slots.String(), w), styleStatus)
	status := fmt.Sprintf("drops %d  cancels %d  audio %s (m)  esc cancel  q quit  | %s",
		totals.Drops, totals.Cancels, audioState, a.lastEvent)
	drawText(a.screen, 0, h-1, truncate(status, w), styleLastEvt)

	a.screen.Show()
}

func drawBox(s tcell.Screen, r core.Area, style tcell.Style, title string) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	x2, y2 := r.X+r.Width-1, r.Y+r.Height-1
	for x := r.X + 1; x < x2; x++ {
		s.SetContent(x, r.Y, tcell.RuneHLine, nil, style)
		s.SetContent(x, y2, tcell.RuneHLine, nil, style)
	}
	for y := r.Y + 1; y < y2; y++ {
		s.SetContent(r.X, y, tcell.RuneVLine, nil, style)
		s.SetContent(x2, y, tcell.RuneVLine, nil, style)
	}
	s.SetContent(r.X, r.Y, tcell.RuneULCorner, nil, style)
	s.SetContent(x2, r.Y, tcell.RuneURCorner, nil, style)
	s.SetContent(r.X, y2, tcell.RuneLLCorner, nil, style)
	s.SetContent(x2, y2, tcell.RuneLRCorner, nil, style)
	drawText(s, r.X+1, r.Y, truncate(title, r.Width-2), style)
}

func fill(s tcell.Screen, r core.Area, ch rune, style tcell.Style) {
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			s.SetContent(x, y, ch, nil, style)
		}
	}
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) > n {
		return string(r[:n])
	}
	return s
}
