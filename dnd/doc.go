// Package dnd coordinates drag sessions, drop targets and the root slots they reorder
//
// The Coordinator is driven by a UI collaborator that forwards pointer events
// (PointerDown, PointerMove, PointerUp) serially from one input stream. Each
// call runs to completion synchronously: hit testing, enter/exit delivery and
// the drop commit all happen in the caller's turn, and no goroutines are
// started.
//
// Root slots are published as immutable Slots snapshots. A commit computes the
// whole post-move layout from the current snapshot and swaps it in with one
// atomic store, so Slots may be read from any goroutine without locking and a
// reader never observes a half-applied move.
//
// Listener callbacks run synchronously in the turn of the pointer event that
// triggered them, in the order the listeners were registered for that target.
package dnd
