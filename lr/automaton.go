package lr

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/gopherlr/parsegen/lr/closure"
	"github.com/gopherlr/parsegen/lr/iteratable"
)

// Mode selects which kind of item-set automaton Build constructs.
type Mode int8

const (
	LR0 Mode = iota
	LR1
)

// State is a single automaton state: its id and its closed item set (either
// LR0Items or LR1Items, depending on the automaton's Mode). State identity
// is the closed item set itself (compared by value, not by the path used to
// reach it), per spec.md §9.
type State struct {
	ID    int
	Items *iteratable.Set
}

type transition struct {
	from, to int
	sym      Symbol
}

// stateComparator orders States by ID, for use as a gods treeset comparator.
func stateComparator(x, y interface{}) int {
	return utils.IntComparator(x.(*State).ID, y.(*State).ID)
}

// Automaton is a canonical LR(0) or LR(1) item-set automaton: an ordered
// sequence of states plus a symbol-labeled transition relation between them,
// built by a worklist over reachable item sets (spec.md §4.5). States and
// transitions are kept in gods containers, mirroring the teacher's CFSM
// bookkeeping.
type Automaton struct {
	Mode     Mode
	Grammar  *Grammar
	states   *treeset.Set    // of *State, ordered by ID
	edges    *arraylist.List // of transition
	Start    int
	nextID   int
}

func newAutomaton(mode Mode, g *Grammar) *Automaton {
	return &Automaton{
		Mode:    mode,
		Grammar: g,
		states:  treeset.NewWith(stateComparator),
		edges:   arraylist.New(),
	}
}

// States returns every state, ordered by ID.
func (a *Automaton) States() []*State {
	vals := a.states.Values()
	out := make([]*State, len(vals))
	for i, v := range vals {
		out[i] = v.(*State)
	}
	return out
}

// NumStates returns the number of states in the automaton.
func (a *Automaton) NumStates() int { return a.states.Size() }

// Goto returns the state reached from state id on symbol sym, if any.
func (a *Automaton) Goto(id int, sym Symbol) (int, bool) {
	it := a.edges.Iterator()
	for it.Next() {
		e := it.Value().(transition)
		if e.from == id && e.sym == sym {
			return e.to, true
		}
	}
	return 0, false
}

// EdgesFrom returns every outgoing transition from state id.
func (a *Automaton) EdgesFrom(id int) []transition {
	var out []transition
	it := a.edges.Iterator()
	for it.Next() {
		e := it.Value().(transition)
		if e.from == id {
			out = append(out, e)
		}
	}
	return out
}

func (a *Automaton) addEdge(from, to int, sym Symbol) {
	a.edges.Add(transition{from: from, to: to, sym: sym})
}

func (a *Automaton) findOrAdd(items *iteratable.Set) (*State, bool) {
	it := a.states.Iterator()
	for it.Next() {
		s := it.Value().(*State)
		if s.Items.Equals(items) {
			return s, false
		}
	}
	s := &State{ID: a.nextID, Items: items}
	a.nextID++
	a.states.Add(s)
	return s, true
}

// peekFn extracts the symbol after the dot from a boxed item (LR0Item or
// LR1Item), or nil if the item is complete.
type peekFn func(item interface{}) *Symbol

// advanceFn moves the dot one position to the right in a boxed item.
type advanceFn func(item interface{}) interface{}

// build runs the generic closure/goto worklist shared by LR(0) and LR(1)
// construction (spec.md §4.5): for each reached state, goto is computed
// exactly once per distinct symbol appearing after some dot.
func build(g *Grammar, mode Mode, start *iteratable.Set, closureFn func(*iteratable.Set) *iteratable.Set, peek peekFn, advance advanceFn) *Automaton {
	a := newAutomaton(mode, g)
	s0, _ := a.findOrAdd(closureFn(start))
	a.Start = s0.ID

	queue := []*State{s0}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]

		vals := s.Items.Values()
		seen := map[Symbol]bool{}
		for _, x := range vals {
			sym := peek(x)
			if sym == nil || seen[*sym] {
				continue
			}
			seen[*sym] = true

			gset := iteratable.NewSet(0)
			for _, y := range vals {
				ySym := peek(y)
				if ySym != nil && *ySym == *sym {
					gset.Add(advance(y))
				}
			}
			gclosure := closureFn(gset)
			target, isNew := a.findOrAdd(gclosure)
			if isNew {
				queue = append(queue, target)
			}
			a.addEdge(s.ID, target.ID, *sym)
		}
	}
	tracer().Debugf("lr: built automaton (mode=%v) with %d states", mode, a.NumStates())
	return a
}

func peekLR0(item interface{}) *Symbol    { return item.(LR0Item).PeekSymbol() }
func advanceLR0(item interface{}) interface{} { return item.(LR0Item).Advance() }

// closureLR0 expands every item A -> α•Bβ in items with B -> •γ for every
// production of B, to a fixpoint.
func closureLR0(g *Grammar) func(*iteratable.Set) *iteratable.Set {
	return func(items *iteratable.Set) *iteratable.Set {
		c := items.Copy()
		c.IterateOnce()
		for c.Next() {
			it := c.Item().(LR0Item)
			sym := it.PeekSymbol()
			if sym == nil || !sym.IsVariable() {
				continue
			}
			for _, p := range g.ProductionsFor(sym.Value) {
				c.Add(LR0Item{Prod: p, Pos: 0})
			}
		}
		return c
	}
}

// BuildLR0 constructs the canonical LR(0) automaton for g.
func BuildLR0(g *Grammar) *Automaton {
	start := iteratable.NewSet(1, StartItem(g))
	return build(g, LR0, start, closureLR0(g), peekLR0, advanceLR0)
}

func peekLR1(item interface{}) *Symbol { return item.(LR1Item).PeekSymbol() }
func advanceLR1(item interface{}) interface{} { return item.(LR1Item).Advance() }

// closureLR1 expands every item A -> α•Bβ, a ∈ items with B -> •γ, b for
// every production of B and every b in FIRST(βa) (spec.md §4.5): if β is
// nullable, a itself propagates as a lookahead.
func closureLR1(g *Grammar, first []closure.TerminalSet, nullable []bool) func(*iteratable.Set) *iteratable.Set {
	return func(items *iteratable.Set) *iteratable.Set {
		c := items.Copy()
		c.IterateOnce()
		for c.Next() {
			it := c.Item().(LR1Item)
			sym := it.PeekSymbol()
			if sym == nil || !sym.IsVariable() {
				continue
			}
			beta := it.Prod.RHS[it.Pos+1:]
			firstBeta, eps := FirstOfSequence(beta, first, nullable)
			las := firstBeta
			if eps {
				las = las.Union(closure.NewTerminalSet(it.Lookahead))
			}
			for _, p := range g.ProductionsFor(sym.Value) {
				for la := range las {
					c.Add(LR1Item{LR0Item: LR0Item{Prod: p, Pos: 0}, Lookahead: la})
				}
			}
		}
		return c
	}
}

// BuildLR1 constructs the canonical LR(1) automaton for g. State count may
// be substantially larger than the LR(0) skeleton; LALR(1) construction
// (see lookahead.go) uses the LR(0) skeleton with a merged lookahead
// computation instead.
func BuildLR1(g *Grammar, first []closure.TerminalSet, nullable []bool) *Automaton {
	start := iteratable.NewSet(1, StartItem1(g))
	return build(g, LR1, start, closureLR1(g, first, nullable), peekLR1, advanceLR1)
}

func (m Mode) String() string {
	if m == LR0 {
		return "LR0"
	}
	return "LR1"
}
