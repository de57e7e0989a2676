package collection

import (
	"iter"
	"slices"
)

// Identified is implemented by values that carry a string identity.
type Identified interface {
	Identity() string
}

// Policy decides which value survives when an id occurs more than once.
type Policy int

const (
	// LastWriteWins replaces the stored value with the later one. The entry
	// keeps the position where its id was first seen.
	LastWriteWins Policy = iota
	// FirstWriteWins keeps the first value and drops later ones.
	FirstWriteWins
)

// String returns a readable policy name for logs and error messages.
func (p Policy) String() string {
	switch p {
	case LastWriteWins:
		return "last-write-wins"
	case FirstWriteWins:
		return "first-write-wins"
	default:
		return "unknown"
	}
}

// Ordered is an insertion-ordered table of values keyed by their identity.
//
// The zero value is an empty, usable collection.
type Ordered[T Identified] struct {
	entries   []T
	pos       map[string]int
	collapsed []string
	policy    Policy
}

// New returns an empty collection using the given duplicate policy.
func New[T Identified](policy Policy) *Ordered[T] {
	return &Ordered[T]{pos: make(map[string]int), policy: policy}
}

// FromSlice folds items left to right into a collection.
// Duplicate ids follow [LastWriteWins].
func FromSlice[T Identified](items []T) *Ordered[T] {
	return FromSliceWith(items, LastWriteWins)
}

// FromSliceWith folds items left to right using the given duplicate policy.
func FromSliceWith[T Identified](items []T, policy Policy) *Ordered[T] {
	c := &Ordered[T]{
		entries: make([]T, 0, len(items)),
		pos:     make(map[string]int, len(items)),
		policy:  policy,
	}
	for _, it := range items {
		c.Put(it)
	}
	return c
}

// Put inserts v at the end of the collection, or resolves a duplicate id
// according to the collection's policy. It reports whether v's id was
// already present.
func (c *Ordered[T]) Put(v T) bool {
	if c.pos == nil {
		c.pos = make(map[string]int)
	}
	id := v.Identity()
	i, exists := c.pos[id]
	if !exists {
		c.pos[id] = len(c.entries)
		c.entries = append(c.entries, v)
		return false
	}
	if !slices.Contains(c.collapsed, id) {
		c.collapsed = append(c.collapsed, id)
	}
	if c.policy == LastWriteWins {
		c.entries[i] = v
	}
	return true
}

// Get returns the value stored under id.
func (c *Ordered[T]) Get(id string) (T, bool) {
	i, ok := c.pos[id]
	if !ok {
		var zero T
		return zero, false
	}
	return c.entries[i], true
}

// Has reports whether id is present.
func (c *Ordered[T]) Has(id string) bool {
	_, ok := c.pos[id]
	return ok
}

// Len returns the number of distinct ids.
func (c *Ordered[T]) Len() int { return len(c.entries) }

// Slice unfolds the collection into a new slice in insertion order.
// For input without duplicate ids it is the inverse of [FromSlice].
func (c *Ordered[T]) Slice() []T { return slices.Clone(c.entries) }

// Keys returns the ids in insertion order.
func (c *Ordered[T]) Keys() []string {
	keys := make([]string, len(c.entries))
	for i, v := range c.entries {
		keys[i] = v.Identity()
	}
	return keys
}

// Collapsed returns the ids that occurred more than once, in the order
// their first duplicate was seen. Each id is listed once.
func (c *Ordered[T]) Collapsed() []string { return slices.Clone(c.collapsed) }

// Policy returns the duplicate policy the collection was built with.
func (c *Ordered[T]) Policy() Policy { return c.policy }

// All iterates over positions and values in insertion order.
func (c *Ordered[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range c.entries {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values iterates over values in insertion order.
func (c *Ordered[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range c.entries {
			if !yield(v) {
				return
			}
		}
	}
}
