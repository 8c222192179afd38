/*
Package iteratable implements a special-purpose set type suitable for
worklist-style algorithms (closures, reachability, item-set construction):
the kind of thing that is often more naturally described as set operations
than as explicit loops.

Unusually, most operations are destructive, and iteration is resumable: a
caller may append new members to a set while iterating over it with
IterateOnce/Next, and the iteration will pick up the newly added members —
this is exactly the shape of a fixpoint worklist (see the closure
computation in package lr).

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
Copyright © 2021–2026 The parsegen authors.
*/
package iteratable

// Equatable is implemented by elements that know how to compare themselves
// for set-membership purposes. Without it, Set falls back to ==, which is
// usually wrong for pointer-heavy elements such as LR items — most clients
// of this package should implement Equatable.
type Equatable interface {
	Equals(other interface{}) bool
}

// Set is a destructive, insertion-ordered, deduplicated collection.
type Set struct {
	items  []interface{}
	cursor int
}

// NewSet creates a new set, optionally pre-populated with items. capacity is
// a hint only.
func NewSet(capacity int, items ...interface{}) *Set {
	s := &Set{items: make([]interface{}, 0, capacity), cursor: -1}
	for _, it := range items {
		s.Add(it)
	}
	return s
}

func equal(a, b interface{}) bool {
	if ea, ok := a.(Equatable); ok {
		return ea.Equals(b)
	}
	return a == b
}

// Add inserts item if not already present, reporting whether it was added.
func (s *Set) Add(item interface{}) bool {
	for _, x := range s.items {
		if equal(x, item) {
			return false
		}
	}
	s.items = append(s.items, item)
	return true
}

// Contains reports whether item is a member.
func (s *Set) Contains(item interface{}) bool {
	for _, x := range s.items {
		if equal(x, item) {
			return true
		}
	}
	return false
}

// Copy returns a shallow copy of s, with a fresh iteration cursor.
func (s *Set) Copy() *Set {
	cp := &Set{items: make([]interface{}, len(s.items)), cursor: -1}
	copy(cp.items, s.items)
	return cp
}

// Size returns the number of members.
func (s *Set) Size() int { return len(s.items) }

// Empty reports whether s has no members.
func (s *Set) Empty() bool { return len(s.items) == 0 }

// Values returns the members in insertion order. The slice is a copy.
func (s *Set) Values() []interface{} {
	out := make([]interface{}, len(s.items))
	copy(out, s.items)
	return out
}

// Union destructively adds every member of other to s not already present,
// and returns s.
func (s *Set) Union(other *Set) *Set {
	for _, x := range other.items {
		s.Add(x)
	}
	return s
}

// Difference returns a new set of every member of s not present in other. s
// and other are unmodified.
func (s *Set) Difference(other *Set) *Set {
	out := NewSet(0)
	for _, x := range s.items {
		if !other.Contains(x) {
			out.Add(x)
		}
	}
	return out
}

// Equals reports whether s and other contain the same members, irrespective
// of insertion order.
func (s *Set) Equals(other *Set) bool {
	if other == nil || len(s.items) != len(other.items) {
		return false
	}
	for _, x := range s.items {
		if !other.Contains(x) {
			return false
		}
	}
	return true
}

// IterateOnce resets the iteration cursor to the start of the set. Calling
// it mid-iteration restarts the walk from the beginning.
func (s *Set) IterateOnce() { s.cursor = -1 }

// Next advances the cursor and reports whether another item is available.
// Because the cursor is simply compared against the current length, items
// appended to s after Next has begun iterating (e.g. by the caller's own
// worklist logic) are still visited — this is what makes Set suitable for
// fixpoint computations.
func (s *Set) Next() bool {
	s.cursor++
	return s.cursor < len(s.items)
}

// Item returns the member at the current cursor position. Valid only after
// a Next call that returned true.
func (s *Set) Item() interface{} {
	return s.items[s.cursor]
}
