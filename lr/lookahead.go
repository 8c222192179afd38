package lr

import "github.com/gopherlr/parsegen/lr/closure"

// NonterminalTransition is a pair (state, variable) such that Goto(state,
// Variable(variable)) is defined in the LR(0) skeleton: the unit of the
// DeRemer-Pennello LALR(1) lookahead algorithm (spec.md §4.6).
type NonterminalTransition struct {
	State int
	Var   int
}

// lookbackKey identifies a reduction point: the state a completed item is
// found in, together with the production it completes.
type lookbackKey struct {
	state  int
	serial int
}

// Lookahead holds the result of the DeRemer-Pennello construction: Follow
// sets indexed per nonterminal transition, and the lookback relation needed
// to turn those into per-reduction lookahead sets via LA.
type Lookahead struct {
	transitions []NonterminalTransition
	index       map[NonterminalTransition]int
	follow      []closure.TerminalSet
	lookback    map[lookbackKey][]int
}

// ComputeLookahead runs the DeRemer-Pennello algorithm over the LR(0)
// automaton a: nonterminal transitions, DirectRead, reads/Read,
// includes/Follow and lookback, per spec.md §4.6. nullable is the grammar's
// nullability vector (lr.ComputeNullable).
func ComputeLookahead(a *Automaton, g *Grammar, nullable []bool) *Lookahead {
	transitions, index := enumerateTransitions(a)
	n := len(transitions)

	directRead := make([]closure.TerminalSet, n)
	readsSucc := make([][]int, n)
	lookback := map[lookbackKey][]int{}

	// The augmented production S' -> S never labels an edge (nothing has a
	// dot before S'), so end-of-input can never be observed as a terminal
	// edge out of any state and DirectRead alone would never produce it.
	// Seed it directly on the one transition that leaves the start state on
	// the start variable: after the whole input reduces to S, what follows
	// is by construction the end of input.
	startVar := g.AugmentedProduction().RHS[0].Value

	for t, nt := range transitions {
		q, _ := a.Goto(nt.State, Variable(nt.Var))

		dr := closure.NewTerminalSet()
		for _, e := range a.EdgesFrom(q) {
			if e.sym.IsTerminal() {
				dr = dr.Union(closure.NewTerminalSet(e.sym.Value))
			} else if nullable[e.sym.Value] {
				if bt, ok := index[NonterminalTransition{State: q, Var: e.sym.Value}]; ok {
					readsSucc[t] = append(readsSucc[t], bt)
				}
			}
		}
		if nt.State == a.Start && nt.Var == startVar {
			dr = dr.Union(closure.NewTerminalSet(EndOfInput))
		}
		directRead[t] = dr

		for _, prod := range g.ProductionsFor(nt.Var) {
			// The walk starts at nt.State itself, not q: lookback(q', A->ω)
			// asks which predecessor p has goto(p, ω) = q', and p is exactly
			// the state that owns this nonterminal transition, not the state
			// the transition leads into (they coincide only when ω is
			// non-empty and this is its first symbol).
			state, ok := nt.State, true
			for _, sym := range prod.RHS {
				next, has := a.Goto(state, sym)
				if !has {
					ok = false
					break
				}
				state = next
			}
			if ok {
				key := lookbackKey{state: state, serial: prod.Serial}
				lookback[key] = append(lookback[key], t)
			}
		}
	}

	read := closure.Close(n, func(v int) []int { return readsSucc[v] }, directRead, nil)

	includesSucc := make([][]int, n)
	for t2, nt2 := range transitions {
		for _, prod := range g.ProductionsFor(nt2.Var) {
			state := nt2.State
			for i, sym := range prod.RHS {
				if sym.IsVariable() && allNullable(prod.RHS[i+1:], nullable) {
					if t1, ok := index[NonterminalTransition{State: state, Var: sym.Value}]; ok {
						includesSucc[t1] = append(includesSucc[t1], t2)
					}
				}
				next, has := a.Goto(state, sym)
				if !has {
					break
				}
				state = next
			}
		}
	}

	follow := closure.Close(n, func(v int) []int { return includesSucc[v] }, read, nil)

	return &Lookahead{transitions: transitions, index: index, follow: follow, lookback: lookback}
}

// LA returns LA(state, prod): the lookahead set for reducing by prod when
// the parser is in state state, per spec.md §4.6.
func (la *Lookahead) LA(state int, prod *Production) closure.TerminalSet {
	set := closure.NewTerminalSet()
	for _, t := range la.lookback[lookbackKey{state: state, serial: prod.Serial}] {
		set = set.Union(la.follow[t])
	}
	return set
}

func enumerateTransitions(a *Automaton) ([]NonterminalTransition, map[NonterminalTransition]int) {
	var transitions []NonterminalTransition
	index := map[NonterminalTransition]int{}
	for _, s := range a.States() {
		for _, e := range a.EdgesFrom(s.ID) {
			if !e.sym.IsVariable() {
				continue
			}
			nt := NonterminalTransition{State: e.from, Var: e.sym.Value}
			if _, ok := index[nt]; !ok {
				index[nt] = len(transitions)
				transitions = append(transitions, nt)
			}
		}
	}
	return transitions, index
}
