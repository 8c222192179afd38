/*
Package closure implements a generic transitive-closure engine over a graph
of integer-indexed nodes, parameterized by (initial values per node,
successor function, extend function). It is the shared machinery behind the
LALR(1) `reads` and `includes` relations (package lr): both are graphs that
may contain cycles (nullable self-references), and both need "union over the
node's strongly connected component" semantics rather than plain recursion,
which would not terminate on a cycle.

The closure is computed via Tarjan's SCC algorithm: nodes in the same SCC
share one result (the union of their initial values and everything reachable
through the SCC); SCCs are then folded in reverse topological order so that a
node's successors are always fully resolved before the node itself is.

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package closure

// TerminalSet is a small integer set, used here to hold terminal word ids
// (FIRST/FOLLOW-style sets) accumulated during a closure computation.
type TerminalSet map[int]struct{}

// NewTerminalSet returns a TerminalSet containing the given members.
func NewTerminalSet(members ...int) TerminalSet {
	s := make(TerminalSet, len(members))
	for _, m := range members {
		s[m] = struct{}{}
	}
	return s
}

// Union returns a new TerminalSet containing the members of both s and t.
func (s TerminalSet) Union(t TerminalSet) TerminalSet {
	out := make(TerminalSet, len(s)+len(t))
	for m := range s {
		out[m] = struct{}{}
	}
	for m := range t {
		out[m] = struct{}{}
	}
	return out
}

// Extend is applied to a successor's resolved value before it is folded
// into the current node's accumulator. The identity extend (Identity) is
// correct for both `reads` and `includes`, which simply inherit the
// target's set verbatim; a non-identity extend is provided for callers that
// need to transform values crossing an edge.
type Extend func(TerminalSet) TerminalSet

// Identity returns v unchanged.
func Identity(v TerminalSet) TerminalSet { return v }

// Close computes, for each node 0..n-1, initial[node] unioned with
// extend(Close(successor)) for every successor of node, with cycles (SCCs)
// resolved by unioning all SCC members together exactly once.
func Close(n int, successors func(node int) []int, initial []TerminalSet, extend Extend) []TerminalSet {
	if extend == nil {
		extend = Identity
	}
	t := &tarjan{
		n:         n,
		successor: successors,
		index:     make([]int, n),
		lowlink:   make([]int, n),
		onStack:   make([]bool, n),
	}
	for i := range t.index {
		t.index[i] = -1
	}
	for v := 0; v < n; v++ {
		if t.index[v] == -1 {
			t.strongConnect(v)
		}
	}

	result := make([]TerminalSet, n)
	sccOf := make([]int, n)
	for sccID, members := range t.sccs {
		for _, v := range members {
			sccOf[v] = sccID
		}
	}
	// t.sccs is already in reverse-topological processing order (components
	// are emitted by Tarjan in an order where a component's cross-edges all
	// point to already-emitted components), so a single forward pass over it
	// suffices.
	for sccID, members := range t.sccs {
		merged := NewTerminalSet()
		for _, v := range members {
			merged = merged.Union(initial[v])
		}
		for _, v := range members {
			for _, w := range successor(t, v) {
				if sccOf[w] != sccID {
					merged = merged.Union(extend(result[w]))
				}
			}
		}
		for _, v := range members {
			result[v] = merged
		}
	}
	return result
}

func successor(t *tarjan, v int) []int { return t.successor(v) }

// tarjan is Tarjan's strongly-connected-components algorithm, iterative over
// an explicit stack is unnecessary at the grammar sizes this module targets;
// a direct recursive formulation is used for clarity.
type tarjan struct {
	n         int
	successor func(int) []int
	index     []int
	lowlink   []int
	onStack   []bool
	stack     []int
	counter   int
	sccs      [][]int
}

func (t *tarjan) strongConnect(v int) {
	t.index[v] = t.counter
	t.lowlink[v] = t.counter
	t.counter++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	for _, w := range t.successor(v) {
		if t.index[w] == -1 {
			t.strongConnect(w)
			if t.lowlink[w] < t.lowlink[v] {
				t.lowlink[v] = t.lowlink[w]
			}
		} else if t.onStack[w] {
			if t.index[w] < t.lowlink[v] {
				t.lowlink[v] = t.index[w]
			}
		}
	}

	if t.lowlink[v] == t.index[v] {
		var scc []int
		for {
			w := t.stack[len(t.stack)-1]
			t.stack = t.stack[:len(t.stack)-1]
			t.onStack[w] = false
			scc = append(scc, w)
			if w == v {
				break
			}
		}
		t.sccs = append(t.sccs, scc)
	}
}
