// Package chain implements an immutable, recursively nestable ordered chain
//
// A Chain is a singly-linked sequence of labeled values. Every node owns the
// chain that follows it, so a node can be read as an item containing its own
// nested sub-sequence (Next). Nodes are never mutated after construction:
// every operation returns new structure and leaves previously held chains
// untouched, which lets a renderer keep reading an older chain while the
// coordinator publishes a newer one.
package chain

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// ErrDuplicateLabel is returned when an operation would place a label twice in one chain
var ErrDuplicateLabel = errors.New("duplicate label in chain")

type node[T any] struct {
	label string
	value T
	next  *node[T] // nil at tail
}

// Chain is an ordered sequence of labeled values
// Zero value is the empty chain
type Chain[T any] struct {
	head *node[T]
}

// Of returns the single-node chain holding value under label
func Of[T any](label string, value T) Chain[T] {
	return Chain[T]{head: &node[T]{label: label, value: value}}
}

// Empty reports whether the chain has no nodes
func (c Chain[T]) Empty() bool {
	return c.head == nil
}

// Len returns the node count. O(n)
func (c Chain[T]) Len() int {
	n := 0
	for cur := c.head; cur != nil; cur = cur.next {
		n++
	}
	return n
}

// Head returns the first node's label and value
func (c Chain[T]) Head() (label string, value T, ok bool) {
	if c.head == nil {
		return "", value, false
	}
	return c.head.label, c.head.value, true
}

// Next returns the sub-chain owned by the head node
// Empty for empty and single-node chains
func (c Chain[T]) Next() Chain[T] {
	if c.head == nil {
		return Chain[T]{}
	}
	return Chain[T]{head: c.head.next}
}

// Contains reports whether label appears in the chain
func (c Chain[T]) Contains(label string) bool {
	for cur := c.head; cur != nil; cur = cur.next {
		if cur.label == label {
			return true
		}
	}
	return false
}

// At returns the sub-chain starting at label, sharing structure with c
func (c Chain[T]) At(label string) (Chain[T], bool) {
	for cur := c.head; cur != nil; cur = cur.next {
		if cur.label == label {
			return Chain[T]{head: cur}, true
		}
	}
	return Chain[T]{}, false
}

// Labels returns labels in chain order
func (c Chain[T]) Labels() []string {
	labels := make([]string, 0, 4)
	for cur := c.head; cur != nil; cur = cur.next {
		labels = append(labels, cur.label)
	}
	return labels
}

// All yields label/value pairs in chain order
func (c Chain[T]) All() iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		for cur := c.head; cur != nil; cur = cur.next {
			if !yield(cur.label, cur.value) {
				return
			}
		}
	}
}

// Append returns a new chain with value as the tail node
// The receiver is not modified; its nodes are copied into the result
func (c Chain[T]) Append(label string, value T) (Chain[T], error) {
	return c.AppendChain(Of(label, value))
}

// AppendChain returns a new chain with every node of tail after the nodes of c
// Used to move a group: the head of tail keeps the sub-chain it owns
// Nodes of c are rebuilt; nodes of tail are shared since nothing mutates them
func (c Chain[T]) AppendChain(tail Chain[T]) (Chain[T], error) {
	if tail.head == nil {
		return c, nil
	}
	if c.head == nil {
		return tail, nil
	}

	seen := make(map[string]struct{})
	prefix := make([]*node[T], 0, 8)
	for cur := c.head; cur != nil; cur = cur.next {
		seen[cur.label] = struct{}{}
		prefix = append(prefix, cur)
	}
	for cur := tail.head; cur != nil; cur = cur.next {
		if _, dup := seen[cur.label]; dup {
			return c, fmt.Errorf("append %q: %w", cur.label, ErrDuplicateLabel)
		}
	}

	return rebuild(prefix, tail.head), nil
}

// Split cuts the chain at label
// removed starts at the matching node with its tail intact; prefix is a fresh
// copy of every node strictly before it, so prefix and removed share nothing
// When label is absent, removed is empty and prefix is c itself
func (c Chain[T]) Split(label string) (prefix, removed Chain[T]) {
	before := make([]*node[T], 0, 8)
	for cur := c.head; cur != nil; cur = cur.next {
		if cur.label == label {
			return rebuild(before, nil), Chain[T]{head: cur}
		}
		before = append(before, cur)
	}
	return c, Chain[T]{}
}

// Identical reports whether both chains are the same structure (pointer identity)
// Stronger than Equal; true only when no rebuild happened between the two values
func (c Chain[T]) Identical(other Chain[T]) bool {
	return c.head == other.head
}

// Equal reports whether both chains hold the same labels in the same order
// and eq returns true for every value pair. Nil eq compares labels only
func (c Chain[T]) Equal(other Chain[T], eq func(a, b T) bool) bool {
	a, b := c.head, other.head
	for a != nil && b != nil {
		if a.label != b.label {
			return false
		}
		if eq != nil && !eq(a.value, b.value) {
			return false
		}
		a, b = a.next, b.next
	}
	return a == nil && b == nil
}

// String renders the chain in nesting notation: "B (C ())", empty chain "()"
func (c Chain[T]) String() string {
	if c.head == nil {
		return "()"
	}
	var sb strings.Builder
	depth := 0
	for cur := c.head; cur != nil; cur = cur.next {
		sb.WriteString(cur.label)
		sb.WriteString(" (")
		depth++
	}
	sb.WriteString(strings.Repeat(")", depth))
	return sb.String()
}

// rebuild copies nodes in order and links the last copy to tail
func rebuild[T any](nodes []*node[T], tail *node[T]) Chain[T] {
	head := tail
	for i := len(nodes) - 1; i >= 0; i-- {
		head = &node[T]{label: nodes[i].label, value: nodes[i].value, next: head}
	}
	return Chain[T]{head: head}
}
