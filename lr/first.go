package lr

import "github.com/gopherlr/parsegen/lr/closure"

// ComputeFirst returns, indexed by variable id, the FIRST set of that
// variable: the set of terminals that can begin some string it derives.
// Computed as a least fixpoint over the grammar's productions, per spec.md
// §4.5.
func ComputeFirst(g *Grammar, nullable []bool) []closure.TerminalSet {
	first := make([]closure.TerminalSet, g.TotalVarCount())
	for v := range first {
		first[v] = closure.NewTerminalSet()
	}
	for {
		changed := false
		for v, prods := range g.byVar {
			for _, p := range prods {
				add, _ := FirstOfSequence(p.RHS, first, nullable)
				before := len(first[v])
				first[v] = first[v].Union(add)
				if len(first[v]) != before {
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}
	return first
}

// FirstOfSequence computes FIRST(seq): the terminals that can begin seq,
// processing symbols left to right and stopping at the first non-nullable
// symbol. epsilon reports whether the entire sequence can derive the empty
// string (all symbols nullable, or seq is empty).
func FirstOfSequence(seq []Symbol, first []closure.TerminalSet, nullable []bool) (set closure.TerminalSet, epsilon bool) {
	set = closure.NewTerminalSet()
	for _, s := range seq {
		if s.IsTerminal() {
			set = set.Union(closure.NewTerminalSet(s.Value))
			return set, false
		}
		set = set.Union(first[s.Value])
		if !nullable[s.Value] {
			return set, false
		}
	}
	return set, true
}
