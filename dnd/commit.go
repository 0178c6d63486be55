package dnd

import (
	"fmt"

	"github.com/lixenwraith/dropchain/chain"
	"github.com/lixenwraith/dropchain/event"
)

// commit drops the dragged group onto the hovered target
// The new layout is built off to the side and published in one store; on any
// failure nothing is published, the hovered target gets its exit and the
// session returns to Idle without a drop event
func (c *Coordinator[T]) commit() error {
	key, _ := c.session.Hovered()
	label := c.session.Label()
	payload := c.session.Payload()
	sid := c.session.ID().String()

	if err := c.session.Commit(); err != nil {
		return err
	}

	cur := c.slots.Load()
	dest, err := c.destination(key, cur.Len())
	if err == nil {
		var next *Slots[T]
		next, err = move(cur, label, payload, dest)
		if err == nil {
			c.slots.Store(next)

			c.log.Debug().
				Str("session", sid).
				Str("label", label).
				Str("target", key).
				Int("slot", dest).
				Str("slots", next.String()).
				Msg("drag.drop")
			// OnDrop may unregister the target; its listeners still get the exit
			entered := c.listeners[key]
			c.fireDrop(key, dest)
			c.fireExitTo(key, entered)
			return c.session.Reset()
		}
	}

	c.log.Warn().
		Err(err).
		Str("session", sid).
		Str("label", label).
		Str("target", key).
		Msg("drag.drop rejected")
	c.fireExit(key)
	c.emit(event.EventDropRejected, key, NoSlot)
	if rerr := c.session.Reset(); rerr != nil {
		return rerr
	}
	return err
}

// destination maps a target key to its root slot
func (c *Coordinator[T]) destination(key string, slotCount int) (int, error) {
	t, ok := c.registry.Get(key)
	if !ok || t.Slot < 0 || t.Slot >= slotCount {
		return NoSlot, &UnknownTargetError{Key: key}
	}
	return t.Slot, nil
}

// move computes the layout after moving label (and everything it carries) to dest
//  1. every slot is split at label; the one slot owning it keeps its prefix
//  2. a label owned by no slot becomes a fresh single-node chain from payload
//  3. the removed group is appended whole to the destination tail
//
// Slots not owning label keep their chain structure untouched
func move[T any](cur *Slots[T], label string, payload T, dest int) (*Slots[T], error) {
	chains := make([]chain.Chain[T], len(cur.chains))

	var removed chain.Chain[T]
	for i, c := range cur.chains {
		prefix, rem := c.Split(label)
		chains[i] = prefix
		if !rem.Empty() {
			removed = rem
		}
	}
	if removed.Empty() {
		removed = chain.Of(label, payload)
	}

	merged, err := chains[dest].AppendChain(removed)
	if err != nil {
		return nil, fmt.Errorf("move %q to slot %d: %w", label, dest, err)
	}
	chains[dest] = merged

	return &Slots[T]{chains: chains, generation: cur.generation + 1}, nil
}
