/*
Package rx implements a canonical regular-expression tree and Brzozowski
derivatives over it, as described in spec.md §4.2.

Smart constructors enforce a canonical form (flattening, idempotence,
annihilators, identities) so that structurally equivalent expressions collapse
to a single shared representative: RegEx values are small pointer handles into
a package-level interning table keyed by the structural hash of the canonical
node shape (github.com/cnf/structhash), giving O(1) identity checks during DFA
construction (package rx/dfa) instead of deep structural comparison.

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package rx

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"github.com/npillmayer/schuko/tracing"

	"github.com/gopherlr/parsegen/byteset"
)

// tracer traces with key 'parsegen.rx'.
func tracer() tracing.Trace {
	return tracing.Select("parsegen.rx")
}

// Kind discriminates the RegEx node variants of spec.md §3: None | Epsilon |
// Set | Cat | Star | Or | And | Not.
type Kind int8

const (
	KNone Kind = iota
	KEpsilon
	KSet
	KCat
	KStar
	KOr
	KAnd
	KNot
)

func (k Kind) String() string {
	switch k {
	case KNone:
		return "∅"
	case KEpsilon:
		return "ε"
	case KSet:
		return "set"
	case KCat:
		return "cat"
	case KStar:
		return "star"
	case KOr:
		return "or"
	case KAnd:
		return "and"
	case KNot:
		return "not"
	default:
		return "?"
	}
}

// node is the interned, canonical representation of a regular expression.
// Structurally identical nodes share one *node; equality is pointer equality.
type node struct {
	kind     Kind
	set      byteset.Set // valid iff kind == KSet
	kids     []*node     // Cat/Or/And children, canonical order
	kid      *node       // Star/Not child
	nullable bool        // memoized; children are already canonical/memoized
	serial   uint64      // assignment order, used as a fixed total order
}

// RegEx is a handle to an interned, canonical regular-expression node.
type RegEx struct {
	root *node
}

// --- interning ---------------------------------------------------------

var internTable = map[string]*node{}
var serialCounter uint64

func internNode(n *node) *node {
	key := shapeKey(n)
	if existing, ok := internTable[key]; ok {
		return existing
	}
	serialCounter++
	n.serial = serialCounter
	internTable[key] = n
	return n
}

// shapeKey hashes the node's shape (kind, set, and the already-interned
// child pointers) to a stable string key suitable for deduplication.
func shapeKey(n *node) string {
	var sb strings.Builder
	sb.WriteByte(byte(n.kind))
	sb.WriteByte('|')
	sb.WriteString(n.set.Key())
	sb.WriteByte('|')
	if n.kid != nil {
		fmt.Fprintf(&sb, "%p", n.kid)
	}
	for _, k := range n.kids {
		fmt.Fprintf(&sb, ",%p", k)
	}
	hash, err := structhash.Hash(sb.String(), 1)
	if err != nil {
		// structhash only fails on unhashable types; a string never is.
		tracer().Errorf("rx: structhash of canonical shape failed: %v", err)
		return sb.String()
	}
	return hash
}

func leaf(kind Kind) *node {
	return internNode(&node{kind: kind, nullable: kind == KEpsilon || kind == KStar})
}

// --- canonical constructors ---------------------------------------------

// None returns the regex recognizing no strings (the empty language, ∅).
func None() RegEx { return RegEx{root: leaf(KNone)} }

// Empty returns the regex recognizing only the empty string (ε).
func Empty() RegEx { return RegEx{root: leaf(KEpsilon)} }

// Set returns the regex recognizing exactly one byte from a. An empty set
// collapses to None, per spec.md §4.2.
func Set(a byteset.Set) RegEx {
	if a.IsEmpty() {
		return None()
	}
	return RegEx{root: internNode(&node{kind: KSet, set: a})}
}

// Then concatenates r and s (Cat). Associative; ε is the identity; ∅ is the
// annihilator.
func (r RegEx) Then(s RegEx) RegEx {
	a, b := r.root, s.root
	switch {
	case b.kind == KEpsilon:
		return r
	case a.kind == KEpsilon:
		return s
	case a.kind == KNone || b.kind == KNone:
		return None()
	}
	var kids []*node
	if a.kind == KCat {
		kids = append(kids, a.kids...)
	} else {
		kids = append(kids, a)
	}
	if b.kind == KCat {
		kids = append(kids, b.kids...)
	} else {
		kids = append(kids, b)
	}
	return RegEx{root: internNode(&node{kind: KCat, kids: kids})}
}

// Star returns r* (Kleene star). (r*)* = r*; star(∅) = star(ε) = ε.
func (r RegEx) Star() RegEx {
	switch r.root.kind {
	case KNone, KEpsilon:
		return Empty()
	case KStar:
		return r
	}
	return RegEx{root: internNode(&node{kind: KStar, kid: r.root, nullable: true})}
}

// Or returns r ∨ s (alternation). Associative, commutative, idempotent; two
// Set children merge via Union; ∅ is the identity.
func (r RegEx) Or(s RegEx) RegEx {
	a, b := r.root, s.root
	switch {
	case a.kind == KNone:
		return s
	case b.kind == KNone:
		return r
	case a.kind == KSet && b.kind == KSet:
		return Set(a.set.Union(b.set))
	}
	kids := mergeCommutative(childrenOf(a, KOr), childrenOf(b, KOr), true)
	return fromMerged(KOr, kids)
}

// And returns r ∧ s (intersection). Associative, commutative, idempotent;
// two Set children merge via Intersection; ∅ is the annihilator.
func (r RegEx) And(s RegEx) RegEx {
	a, b := r.root, s.root
	switch {
	case a.kind == KNone || b.kind == KNone:
		return None()
	case a.kind == KEpsilon:
		if s.IsNullable() {
			return Empty()
		}
		return None()
	case b.kind == KEpsilon:
		if r.IsNullable() {
			return Empty()
		}
		return None()
	case a.kind == KSet && b.kind == KSet:
		return Set(a.set.Intersection(b.set))
	}
	kids := mergeCommutative(childrenOf(a, KAnd), childrenOf(b, KAnd), false)
	return fromMerged(KAnd, kids)
}

// Not returns ¬r. Involutive; ¬∅ = universe; ¬Set(s) = Set(complement(s)).
func (r RegEx) Not() RegEx {
	switch r.root.kind {
	case KNone:
		return Set(byteset.Universe())
	case KSet:
		return Set(r.root.set.Complement())
	case KNot:
		return RegEx{root: r.root.kid}
	}
	return RegEx{root: internNode(&node{kind: KNot, kid: r.root})}
}

func childrenOf(n *node, kind Kind) []*node {
	if n.kind == kind {
		return n.kids
	}
	return []*node{n}
}

// fromMerged builds an Or/And node from an already order-merged, set-folded
// child list, collapsing zero/one-child results per the identity/annihilator
// rule for kind.
func fromMerged(kind Kind, kids []*node) RegEx {
	switch len(kids) {
	case 0:
		if kind == KOr {
			return None()
		}
		return Empty() // And() of nothing is vacuously true; unreachable in practice
	case 1:
		return RegEx{root: kids[0]}
	default:
		return RegEx{root: internNode(&node{kind: kind, kids: kids})}
	}
}

// mergeCommutative merges two already-canonical (sorted, deduped) child
// lists by the fixed total order (node.serial), collapsing adjacent Set
// nodes via union (Or) or intersection (And), and dropping duplicates
// (idempotence): the caller passes isOr=true for Or, false for And.
func mergeCommutative(a, b []*node, isOr bool) []*node {
	out := make([]*node, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if order(a[i]) <= order(b[j]) {
			out = appendCanonical(out, a[i], isOr)
			i++
		} else {
			out = appendCanonical(out, b[j], isOr)
			j++
		}
	}
	for ; i < len(a); i++ {
		out = appendCanonical(out, a[i], isOr)
	}
	for ; j < len(b); j++ {
		out = appendCanonical(out, b[j], isOr)
	}
	return out
}

func appendCanonical(out []*node, n *node, isOr bool) []*node {
	if len(out) > 0 {
		last := out[len(out)-1]
		if last == n {
			return out // idempotent: already present
		}
		if last.kind == KSet && n.kind == KSet {
			var merged byteset.Set
			if isOr {
				merged = last.set.Union(n.set)
			} else {
				merged = last.set.Intersection(n.set)
			}
			out[len(out)-1] = Set(merged).root
			return out
		}
	}
	return append(out, n)
}

// order imposes the fixed total order over interned nodes used for
// canonicalizing commutative Or/And children: the order in which distinct
// shapes were first interned.
func order(n *node) uint64 { return n.serial }

// --- non-canonical helpers -----------------------------------------------

// Opt returns r? = r ∨ ε.
func (r RegEx) Opt() RegEx { return r.Or(Empty()) }

// Plus returns r+ = r · r*.
func (r RegEx) Plus() RegEx { return r.Then(r.Star()) }

// Diff returns r \ s = r ∧ ¬s.
func (r RegEx) Diff(s RegEx) RegEx { return r.And(s.Not()) }

// --- derivative and nullability -------------------------------------------

// IsNullable reports whether r's language contains the empty string.
func (r RegEx) IsNullable() bool { return r.root.nullable }

// Deriv computes ∂_b(r): the regex recognizing { w | b·w ∈ L(r) }.
func (r RegEx) Deriv(b byte) RegEx {
	n := r.root
	switch n.kind {
	case KNone, KEpsilon:
		return None()
	case KSet:
		if n.set.Contains(b) {
			return Empty()
		}
		return None()
	case KCat:
		return derivCat(n.kids, b)
	case KStar:
		inner := RegEx{root: n.kid}
		return inner.Deriv(b).Then(r)
	case KOr:
		return derivOr(n.kids, b)
	case KAnd:
		return derivAnd(n.kids, b)
	case KNot:
		return RegEx{root: n.kid}.Deriv(b).Not()
	}
	panic("rx: unreachable node kind")
}

func derivCat(kids []*node, b byte) RegEx {
	head := RegEx{root: kids[0]}
	var tail RegEx
	if len(kids) == 2 {
		tail = RegEx{root: kids[1]}
	} else {
		tail = RegEx{root: internNode(&node{kind: KCat, kids: kids[1:]})}
	}
	da := head.Deriv(b).Then(tail)
	if head.IsNullable() {
		return da.Or(tail.Deriv(b))
	}
	return da
}

func derivOr(kids []*node, b byte) RegEx {
	acc := RegEx{root: kids[0]}.Deriv(b)
	for _, k := range kids[1:] {
		acc = acc.Or(RegEx{root: k}.Deriv(b))
	}
	return acc
}

func derivAnd(kids []*node, b byte) RegEx {
	acc := RegEx{root: kids[0]}.Deriv(b)
	for _, k := range kids[1:] {
		acc = acc.And(RegEx{root: k}.Deriv(b))
	}
	return acc
}

// --- identity and ordering -------------------------------------------------

// Equal reports whether r and s are the identical (interned) node.
func (r RegEx) Equal(s RegEx) bool { return r.root == s.root }

// Key returns a string uniquely identifying r's interned node, stable for
// the lifetime of the process. Useful as a map key when building tuples of
// RegEx values (e.g. DFA subset-construction states in package rx/dfa).
func (r RegEx) Key() string { return fmt.Sprintf("%p", r.root) }

// Less imposes the fixed total order used to canonicalize commutative nodes.
func (r RegEx) Less(s RegEx) bool { return order(r.root) < order(s.root) }

// Kind returns the node's top-level variant.
func (r RegEx) Kind() Kind { return r.root.kind }

func (r RegEx) String() string {
	n := r.root
	switch n.kind {
	case KNone:
		return "∅"
	case KEpsilon:
		return "ε"
	case KSet:
		return n.set.String()
	case KStar:
		return "(" + (RegEx{root: n.kid}).String() + ")*"
	case KNot:
		return "¬(" + (RegEx{root: n.kid}).String() + ")"
	case KCat, KOr, KAnd:
		sep := map[Kind]string{KCat: "·", KOr: "|", KAnd: "&"}[n.kind]
		parts := make([]string, len(n.kids))
		for i, k := range n.kids {
			parts[i] = (RegEx{root: k}).String()
		}
		return "(" + strings.Join(parts, sep) + ")"
	}
	return "?"
}
