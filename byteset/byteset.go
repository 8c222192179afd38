/*
Package byteset implements a canonical, sorted-interval representation of
subsets of the byte domain 0..=255.

A Set is a sequence of disjoint, non-adjacent, increasing inclusive intervals
[lo, hi]. Two adjacent intervals (separated by exactly one byte) are always
merged, so that a given subset of bytes has exactly one representation: this
makes Set comparable with ==... except Sets are backed by slices, so clients
compare them with Equal. The canonical form is what allows RegEx (package rx)
to use ByteSet values as map/struct keys when interning nodes.

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package byteset

import "fmt"

// interval is an inclusive byte range [lo, hi].
type interval struct {
	lo, hi byte
}

// Set is a canonical sorted-interval representation of a subset of 0..=255.
// The zero value is the empty set.
type Set struct {
	intervals []interval
}

// Empty returns the empty byte set.
func Empty() Set {
	return Set{}
}

// Universe returns the set containing every byte 0..=255.
func Universe() Set {
	return Set{intervals: []interval{{0, 255}}}
}

// Point returns the singleton set {b}.
func Point(b byte) Set {
	return Set{intervals: []interval{{b, b}}}
}

// Range returns the inclusive range [lo, hi]. If hi < lo, the bounds are
// swapped so that Range is always well-formed.
func Range(lo, hi byte) Set {
	if hi < lo {
		lo, hi = hi, lo
	}
	return Set{intervals: []interval{{lo, hi}}}
}

// IsEmpty reports whether s contains no bytes.
func (s Set) IsEmpty() bool {
	return len(s.intervals) == 0
}

// IsUniverse reports whether s contains every byte.
func (s Set) IsUniverse() bool {
	return len(s.intervals) == 1 && s.intervals[0].lo == 0 && s.intervals[0].hi == 255
}

// Min returns the smallest byte in s, if any.
func (s Set) Min() (byte, bool) {
	if len(s.intervals) == 0 {
		return 0, false
	}
	return s.intervals[0].lo, true
}

// Contains reports whether b is a member of s. O(log n) over the interval count.
func (s Set) Contains(b byte) bool {
	lo, hi := 0, len(s.intervals)
	for lo < hi {
		mid := (lo + hi) / 2
		iv := s.intervals[mid]
		switch {
		case b < iv.lo:
			hi = mid
		case b > iv.hi:
			lo = mid + 1
		default:
			return true
		}
	}
	return false
}

// Complement returns the set of bytes not in s, relative to 0..=255.
func (s Set) Complement() Set {
	if len(s.intervals) == 0 {
		return Universe()
	}
	var out []interval
	first := s.intervals[0]
	if first.lo > 0 {
		out = append(out, interval{0, first.lo - 1})
	}
	for i := 1; i < len(s.intervals); i++ {
		prev, cur := s.intervals[i-1], s.intervals[i]
		out = append(out, interval{prev.hi + 1, cur.lo - 1})
	}
	last := s.intervals[len(s.intervals)-1]
	if last.hi < 255 {
		out = append(out, interval{last.hi + 1, 255})
	}
	return Set{intervals: out}
}

// Intersection returns the bytes present in both s and t.
func (s Set) Intersection(t Set) Set {
	var out []interval
	i, j := 0, 0
	for i < len(s.intervals) && j < len(t.intervals) {
		a, b := s.intervals[i], t.intervals[j]
		lo := max(a.lo, b.lo)
		hi := min(a.hi, b.hi)
		if lo <= hi {
			out = append(out, interval{lo, hi})
		}
		if a.hi < b.hi {
			i++
		} else {
			j++
		}
	}
	return Set{intervals: out}
}

// Union returns the bytes present in either s or t. Intervals that are
// adjacent (differ by exactly one) are merged into a single interval, so
// that e.g. Range(0,3).Union(Range(4,7)) == Range(0,7).
func (s Set) Union(t Set) Set {
	merged := mergeSorted(s.intervals, t.intervals)
	if len(merged) == 0 {
		return Set{}
	}
	var out []interval
	cur := merged[0]
	for _, next := range merged[1:] {
		if cur.hi >= next.lo || int(next.lo)-int(cur.hi) == 1 {
			if next.hi > cur.hi {
				cur.hi = next.hi
			}
		} else {
			out = append(out, cur)
			cur = next
		}
	}
	out = append(out, cur)
	return Set{intervals: out}
}

// mergeSorted merges two already-sorted (by lo) interval slices.
func mergeSorted(a, b []interval) []interval {
	out := make([]interval, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i].lo <= b[j].lo {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// Equal reports whether s and t contain exactly the same bytes.
func (s Set) Equal(t Set) bool {
	if len(s.intervals) != len(t.intervals) {
		return false
	}
	for i := range s.intervals {
		if s.intervals[i] != t.intervals[i] {
			return false
		}
	}
	return true
}

// Less imposes an arbitrary-but-total order over Sets, used by rx for
// canonicalizing Or/And children into a fixed order.
func (s Set) Less(t Set) bool {
	n := len(s.intervals)
	if len(t.intervals) < n {
		n = len(t.intervals)
	}
	for i := 0; i < n; i++ {
		if s.intervals[i].lo != t.intervals[i].lo {
			return s.intervals[i].lo < t.intervals[i].lo
		}
		if s.intervals[i].hi != t.intervals[i].hi {
			return s.intervals[i].hi < t.intervals[i].hi
		}
	}
	return len(s.intervals) < len(t.intervals)
}

// Bytes returns every byte contained in s, in increasing order. Intended for
// debug/dot rendering of small sets, not for hot paths.
func (s Set) Bytes() []byte {
	var out []byte
	for _, iv := range s.intervals {
		for b := int(iv.lo); b <= int(iv.hi); b++ {
			out = append(out, byte(b))
		}
	}
	return out
}

// Key returns a comparable, canonical string encoding of s, suitable for use
// as a map key or as interning-hash input.
func (s Set) Key() string {
	buf := make([]byte, 0, len(s.intervals)*2)
	for _, iv := range s.intervals {
		buf = append(buf, iv.lo, iv.hi)
	}
	return string(buf)
}

func (s Set) String() string {
	if len(s.intervals) == 0 {
		return "{}"
	}
	out := "{"
	for i, iv := range s.intervals {
		if i > 0 {
			out += ","
		}
		if iv.lo == iv.hi {
			out += fmt.Sprintf("%02x", iv.lo)
		} else {
			out += fmt.Sprintf("[%02x-%02x]", iv.lo, iv.hi)
		}
	}
	return out + "}"
}

func max(a, b byte) byte {
	if a > b {
		return a
	}
	return b
}

func min(a, b byte) byte {
	if a < b {
		return a
	}
	return b
}
