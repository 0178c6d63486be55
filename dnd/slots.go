package dnd

import (
	"strings"

	"github.com/lixenwraith/dropchain/chain"
)

// Slots is an immutable snapshot of every root slot
// A new snapshot replaces the old one on each mutation; held snapshots never change
type Slots[T any] struct {
	chains     []chain.Chain[T]
	generation uint64
}

func newSlots[T any](n int) *Slots[T] {
	return &Slots[T]{chains: make([]chain.Chain[T], n)}
}

// Len returns the number of root slots
func (s *Slots[T]) Len() int {
	return len(s.chains)
}

// At returns the chain held by slot i, empty when i is out of range
func (s *Slots[T]) At(i int) chain.Chain[T] {
	if i < 0 || i >= len(s.chains) {
		return chain.Chain[T]{}
	}
	return s.chains[i]
}

// Chains returns a copy of the slot list
func (s *Slots[T]) Chains() []chain.Chain[T] {
	out := make([]chain.Chain[T], len(s.chains))
	copy(out, s.chains)
	return out
}

// Generation counts published mutations, starting at zero
func (s *Slots[T]) Generation() uint64 {
	return s.generation
}

// OwnerOf returns the slot whose chain contains label
func (s *Slots[T]) OwnerOf(label string) (int, bool) {
	for i, c := range s.chains {
		if c.Contains(label) {
			return i, true
		}
	}
	return NoSlot, false
}

// String renders every slot separated by ";", the layout notation used in logs
func (s *Slots[T]) String() string {
	parts := make([]string, len(s.chains))
	for i, c := range s.chains {
		parts[i] = c.String()
	}
	return strings.Join(parts, "; ")
}

// with returns a copy of s where slot i holds c
func (s *Slots[T]) with(i int, c chain.Chain[T]) *Slots[T] {
	next := &Slots[T]{chains: s.Chains(), generation: s.generation + 1}
	next.chains[i] = c
	return next
}
