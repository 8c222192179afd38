package lr

// ComputeNullable returns, indexed by variable id (0..TotalVarCount-1),
// whether that variable's language contains the empty string. A variable is
// nullable if some production's RHS consists entirely of nullable symbols
// (the empty RHS vacuously qualifies); terminals are never nullable.
// Computed as a least fixpoint, per spec.md §4.5/§9.
func ComputeNullable(g *Grammar) []bool {
	nullable := make([]bool, g.TotalVarCount())
	for {
		changed := false
		for v, prods := range g.byVar {
			if nullable[v] {
				continue
			}
			for _, p := range prods {
				if allNullable(p.RHS, nullable) {
					nullable[v] = true
					changed = true
					break
				}
			}
		}
		if !changed {
			break
		}
	}
	return nullable
}

func allNullable(rhs []Symbol, nullable []bool) bool {
	for _, s := range rhs {
		if s.IsTerminal() || !nullable[s.Value] {
			return false
		}
	}
	return true
}
