package dnd

import (
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/dropchain/chain"
	"github.com/lixenwraith/dropchain/core"
	"github.com/lixenwraith/dropchain/event"
	"github.com/lixenwraith/dropchain/session"
	"github.com/lixenwraith/dropchain/target"
)

// NoSlot marks an unplaced draggable or a target without a destination slot
const NoSlot = target.NoSlot

// TargetSpec describes a drop target registration
type TargetSpec struct {
	Key      string
	Bounds   core.Area
	Depth    int
	Strategy target.Strategy
	Slot     int // Root slot receiving drops on this target
}

// SessionView is a read-only copy of the current drag session
type SessionView[T any] struct {
	ID       string
	State    session.State
	Label    string
	Payload  T
	Origin   int
	Pointer  core.Point
	Hovered  string
	HasHover bool
}

// Coordinator owns the drag session, the drop target registry and the root slots
// All methods except Slots must be called from the single input goroutine
type Coordinator[T any] struct {
	log       zerolog.Logger
	queue     *event.Queue
	observers []Observer

	slots atomic.Pointer[Slots[T]]

	registry *target.Registry
	hit      *target.HitTester
	session  *session.Session[T]

	draggables map[string]*draggable[T]
	listeners  map[string][]listenerEntry[T]

	nextID uint64
	frame  int64
}

// New creates a coordinator with slotCount empty root slots
func New[T any](slotCount int, opts ...Option) *Coordinator[T] {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	reg := target.NewRegistry()
	c := &Coordinator[T]{
		log:        o.logger,
		queue:      o.queue,
		observers:  o.observers,
		registry:   reg,
		hit:        target.NewHitTester(reg),
		session:    session.New[T](),
		draggables: make(map[string]*draggable[T]),
		listeners:  make(map[string][]listenerEntry[T]),
	}
	c.slots.Store(newSlots[T](max(slotCount, 0)))
	return c
}

// Slots returns the current root slot snapshot
// Safe from any goroutine
func (c *Coordinator[T]) Slots() *Slots[T] {
	return c.slots.Load()
}

// OwnerOf returns the slot currently holding label
func (c *Coordinator[T]) OwnerOf(label string) (int, bool) {
	return c.slots.Load().OwnerOf(label)
}

// RegisterDraggable declares a draggable payload under key
// A valid initialSlot places the payload at that slot's tail unless some slot already holds key;
// NoSlot registers a fresh payload that gets placed by its first drop
func (c *Coordinator[T]) RegisterDraggable(key string, payload T, initialSlot int) (Handle, error) {
	if _, exists := c.draggables[key]; exists {
		return Handle{}, &target.DuplicateKeyError{Key: key}
	}

	cur := c.slots.Load()
	if initialSlot != NoSlot {
		if initialSlot < 0 || initialSlot >= cur.Len() {
			return Handle{}, fmt.Errorf("draggable %q slot %d: %w", key, initialSlot, ErrInvalidSlot)
		}
		if _, owned := cur.OwnerOf(key); !owned {
			placed, err := cur.At(initialSlot).Append(key, payload)
			if err != nil {
				return Handle{}, fmt.Errorf("draggable %q: %w", key, err)
			}
			c.slots.Store(cur.with(initialSlot, placed))
		}
	}

	c.nextID++
	c.draggables[key] = &draggable[T]{id: c.nextID, payload: payload}
	return Handle{kind: handleDraggable, key: key, id: c.nextID}, nil
}

// RegisterDropTarget registers a drop target with its first listener set
func (c *Coordinator[T]) RegisterDropTarget(spec TargetSpec, l Listeners[T]) (Handle, error) {
	err := c.registry.Register(target.Target{
		Key:      spec.Key,
		Bounds:   spec.Bounds,
		Depth:    spec.Depth,
		Strategy: spec.Strategy,
		Slot:     spec.Slot,
	})
	if err != nil {
		return Handle{}, err
	}

	c.nextID++
	c.listeners[spec.Key] = append(c.listeners[spec.Key], listenerEntry[T]{id: c.nextID, l: l})
	return Handle{kind: handleTarget, key: spec.Key, id: c.nextID}, nil
}

// Listen adds another listener set to a registered target
// Listener sets run in registration order
func (c *Coordinator[T]) Listen(key string, l Listeners[T]) (Handle, error) {
	if _, ok := c.registry.Get(key); !ok {
		return Handle{}, &UnknownTargetError{Key: key}
	}
	c.nextID++
	c.listeners[key] = append(c.listeners[key], listenerEntry[T]{id: c.nextID, l: l})
	return Handle{kind: handleListener, key: key, id: c.nextID}, nil
}

// MoveDropTarget updates target geometry for the next hit test
func (c *Coordinator[T]) MoveDropTarget(key string, bounds core.Area, depth int) error {
	if err := c.registry.Move(key, bounds, depth); err != nil {
		return &UnknownTargetError{Key: key}
	}
	return nil
}

// Unregister removes a registration, no-op for stale or zero handles
// Removing the hovered target mid-drag delivers its exit and re-resolves the hover;
// removing the dragged draggable cancels the drag
func (c *Coordinator[T]) Unregister(h Handle) {
	switch h.kind {
	case handleDraggable:
		d, ok := c.draggables[h.key]
		if !ok || d.id != h.id {
			return
		}
		delete(c.draggables, h.key)
		if c.session.Active() && c.session.Label() == h.key {
			_ = c.cancel()
		}

	case handleTarget:
		t, ok := c.registry.Get(h.key)
		if !ok || !c.ownsTarget(h) {
			return
		}
		key, hovered := c.session.Hovered()
		wasHovered := c.session.Active() && hovered && key == t.Key
		if wasHovered {
			_, _, _, _ = c.session.Hover("", false)
			c.fireExit(key)
		}
		c.registry.Unregister(h.key)
		delete(c.listeners, h.key)
		// The pointer may still be over another target, e.g. the parent of a removed child
		if wasHovered {
			_ = c.retest()
		}

	case handleListener:
		entries := c.listeners[h.key]
		for i := range entries {
			if entries[i].id == h.id {
				c.listeners[h.key] = append(entries[:i:i], entries[i+1:]...)
				return
			}
		}
	}
}

// ownsTarget checks the handle still refers to the live registration of its key
func (c *Coordinator[T]) ownsTarget(h Handle) bool {
	entries := c.listeners[h.key]
	return len(entries) > 0 && entries[0].id == h.id
}

// PointerDown begins dragging the draggable registered under key
func (c *Coordinator[T]) PointerDown(key string, pos core.Point) error {
	d, ok := c.draggables[key]
	if !ok {
		return fmt.Errorf("pointer down %q: %w", key, ErrUnknownDraggable)
	}

	origin, owned := c.slots.Load().OwnerOf(key)
	if !owned {
		origin = NoSlot
	}

	c.frame++
	if err := c.session.Begin(key, d.payload, origin, pos); err != nil {
		return fmt.Errorf("pointer down %q: %w", key, err)
	}

	c.log.Debug().
		Str("session", c.session.ID().String()).
		Str("label", key).
		Int("origin", origin).
		Msg("drag.start")
	c.emit(event.EventDragStart, "", origin)
	return nil
}

// PointerMove updates the pointer and re-resolves the hovered target
func (c *Coordinator[T]) PointerMove(pos core.Point) error {
	c.frame++
	if err := c.session.Move(pos); err != nil {
		return err
	}
	return c.retest()
}

// Retest re-runs hit testing at the current pointer
// Call after relayout moved targets under a stationary pointer; no-op while idle
func (c *Coordinator[T]) Retest() error {
	if !c.session.Active() {
		return nil
	}
	return c.retest()
}

func (c *Coordinator[T]) retest() error {
	key, ok := c.hit.Test(c.session.Payload(), c.session.Pointer())
	prev, hadPrev, changed, err := c.session.Hover(key, ok)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	if hadPrev {
		c.fireExit(prev)
	}
	if ok {
		c.fireEnter(key)
	}
	return nil
}

// PointerUp commits onto the hovered target, or cancels when nothing is hovered
func (c *Coordinator[T]) PointerUp() error {
	c.frame++
	if !c.session.Active() {
		return &session.StateError{Op: "pointer up", State: c.session.State()}
	}
	if _, hovered := c.session.Hovered(); hovered {
		return c.commit()
	}
	return c.cancel()
}

// Cancel abandons the current drag without structural change
func (c *Coordinator[T]) Cancel() error {
	c.frame++
	return c.cancel()
}

func (c *Coordinator[T]) cancel() error {
	key, hovered := c.session.Hovered()
	if err := c.session.Cancel(); err != nil {
		return err
	}
	if hovered {
		c.fireExit(key)
	}

	c.log.Debug().
		Str("session", c.session.ID().String()).
		Str("label", c.session.Label()).
		Int("origin", c.session.Origin()).
		Msg("drag.cancel")
	c.emit(event.EventDragCancel, "", c.session.Origin())
	return c.session.Reset()
}

// Session returns a copy of the current drag state
func (c *Coordinator[T]) Session() SessionView[T] {
	hovered, ok := c.session.Hovered()
	id := ""
	if c.session.State() != session.StateIdle {
		id = c.session.ID().String()
	}
	return SessionView[T]{
		ID:       id,
		State:    c.session.State(),
		Label:    c.session.Label(),
		Payload:  c.session.Payload(),
		Origin:   c.session.Origin(),
		Pointer:  c.session.Pointer(),
		Hovered:  hovered,
		HasHover: ok,
	}
}

// Hovered returns the target currently winning the hit test
func (c *Coordinator[T]) Hovered() (string, bool) {
	return c.session.Hovered()
}

// Draggable reports whether key can start a drag now
// False for unknown keys and, during a drag, for the dragged item and everything it carries
func (c *Coordinator[T]) Draggable(key string) bool {
	if _, ok := c.draggables[key]; !ok {
		return false
	}
	if !c.session.Active() {
		return true
	}
	group, ok := c.groupOf(c.session.Label())
	if !ok {
		return key != c.session.Label()
	}
	return !group.Contains(key)
}

// groupOf returns the sub-chain that moves when label is dragged
func (c *Coordinator[T]) groupOf(label string) (chain.Chain[T], bool) {
	cur := c.slots.Load()
	slot, ok := cur.OwnerOf(label)
	if !ok {
		return chain.Chain[T]{}, false
	}
	return cur.At(slot).At(label)
}

func (c *Coordinator[T]) fireEnter(key string) {
	payload := c.session.Payload()
	for _, e := range c.listeners[key] {
		if e.l.OnEnter != nil {
			e.l.OnEnter(key, payload)
		}
	}
	c.log.Debug().
		Str("session", c.session.ID().String()).
		Str("label", c.session.Label()).
		Str("target", key).
		Msg("drag.enter")
	c.emit(event.EventDragEnter, key, NoSlot)
}

func (c *Coordinator[T]) fireExit(key string) {
	c.fireExitTo(key, c.listeners[key])
}

// fireExitTo delivers the exit to entries, which may outlive their registration
func (c *Coordinator[T]) fireExitTo(key string, entries []listenerEntry[T]) {
	for _, e := range entries {
		if e.l.OnExit != nil {
			e.l.OnExit(key)
		}
	}
	c.log.Debug().
		Str("session", c.session.ID().String()).
		Str("label", c.session.Label()).
		Str("target", key).
		Msg("drag.exit")
	c.emit(event.EventDragExit, key, NoSlot)
}

func (c *Coordinator[T]) fireDrop(key string, slot int) {
	payload := c.session.Payload()
	for _, e := range c.listeners[key] {
		if e.l.OnDrop != nil {
			e.l.OnDrop(key, payload)
		}
	}
	c.emit(event.EventDrop, key, slot)
}

func (c *Coordinator[T]) emit(et event.EventType, targetKey string, slot int) {
	ev := event.Event{
		Type:    et,
		Session: c.session.ID(),
		Label:   c.session.Label(),
		Target:  targetKey,
		Slot:    slot,
		Frame:   c.frame,
	}
	for _, o := range c.observers {
		o.Observe(ev)
	}
	if c.queue != nil {
		c.queue.Push(ev)
	}
}
