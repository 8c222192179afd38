package lr

import (
	"fmt"

	"github.com/gopherlr/parsegen/lr/sparse"
)

// ActionKind discriminates the four kinds of parser action.
type ActionKind int8

const (
	InvalidAction ActionKind = iota
	ShiftAction
	ReduceAction
	AcceptAction
)

func (k ActionKind) String() string {
	switch k {
	case ShiftAction:
		return "shift"
	case ReduceAction:
		return "reduce"
	case AcceptAction:
		return "accept"
	default:
		return "invalid"
	}
}

// Action is a single ACTION-table entry: either shift into State, reduce by
// Prod, accept, or (the zero value) invalid.
type Action struct {
	Kind  ActionKind
	State int
	Prod  *Production
}

func (a Action) String() string {
	switch a.Kind {
	case ShiftAction:
		return fmt.Sprintf("shift %d", a.State)
	case ReduceAction:
		return fmt.Sprintf("reduce %v", a.Prod)
	case AcceptAction:
		return "accept"
	default:
		return "invalid"
	}
}

// Conflict is a clash between two candidate table entries discovered while
// synthesizing the ACTION table.
type Conflict interface {
	fmt.Stringer
	conflict()
}

// ShiftReduceConflict is a shift/reduce clash that the default resolver
// could not settle by precedence (the terminal and the reducing production
// share a Nonassoc precedence level, per spec.md §4.7).
type ShiftReduceConflict struct {
	Word   int
	Shift  int
	Reduce *Production
}

func (ShiftReduceConflict) conflict() {}
func (c ShiftReduceConflict) String() string {
	return fmt.Sprintf("shift/reduce on T%d: shift %d vs. reduce %v", c.Word, c.Shift, c.Reduce)
}

// ReduceReduceConflict is a clash between two productions both reducible on
// the same lookahead. Never resolved silently: the first-declared
// production (lowest Serial) wins, and the clash is always reported.
type ReduceReduceConflict struct {
	Word         int
	Prod1, Prod2 *Production
}

func (ReduceReduceConflict) conflict() {}
func (c ReduceReduceConflict) String() string {
	return fmt.Sprintf("reduce/reduce on T%d: %v vs. %v", c.Word, c.Prod1, c.Prod2)
}

// ConstructionError reports a table-construction conflict at a specific
// state.
type ConstructionError struct {
	State    int
	Conflict Conflict
}

func (e ConstructionError) Error() string {
	return fmt.Sprintf("lr: state %d: %s", e.State, e.Conflict)
}

// LRTable is a synthesized ACTION/GOTO table pair, addressed by state and
// symbol word/variable id.
type LRTable struct {
	grammar *Grammar
	action  *sparse.IntMatrix
	goTo    *sparse.IntMatrix
}

const (
	acceptCode  int32 = -1
	shiftOffset int32 = -2 // shift to state s is encoded as shiftOffset-s
)

func encodeShift(state int) int32 { return shiftOffset - int32(state) }

func decodeShift(code int32) (int, bool) {
	if code <= shiftOffset {
		return int(shiftOffset - code), true
	}
	return 0, false
}

// Action returns the ACTION-table entry for (state, word).
func (t *LRTable) Action(state, word int) Action {
	code := t.action.Value(state, word)
	switch {
	case code == sparse.DefaultNullValue:
		return Action{Kind: InvalidAction}
	case code == acceptCode:
		return Action{Kind: AcceptAction}
	default:
		if s, ok := decodeShift(code); ok {
			return Action{Kind: ShiftAction, State: s}
		}
		return Action{Kind: ReduceAction, Prod: t.grammar.Productions()[code]}
	}
}

// Goto returns the GOTO-table entry for (state, variable), if any.
func (t *LRTable) Goto(state, v int) (int, bool) {
	target := t.goTo.Value(state, v)
	if target == sparse.DefaultNullValue {
		return 0, false
	}
	return int(target), true
}

// tableBuilder accumulates ACTION/GOTO entries and collects conflicts
// encountered along the way, resolving shift/reduce clashes by declared
// precedence (spec.md §4.7) and flagging the rest.
type tableBuilder struct {
	g      *Grammar
	prec   *PrecedenceTable
	action *sparse.IntMatrix
	goTo   *sparse.IntMatrix
	errs   []ConstructionError
}

func newTableBuilder(g *Grammar, prec *PrecedenceTable, numStates int) *tableBuilder {
	return &tableBuilder{
		g:      g,
		prec:   prec,
		action: sparse.NewIntMatrix(numStates, g.MaxWordID()+1, sparse.DefaultNullValue),
		goTo:   sparse.NewIntMatrix(numStates, g.VarCount(), sparse.DefaultNullValue),
	}
}

func (b *tableBuilder) setGoto(state, v, target int) {
	b.goTo.Set(state, v, int32(target))
}

func (b *tableBuilder) setShift(state, word, target int) {
	b.insert(state, word, encodeShift(target))
}

func (b *tableBuilder) setAccept(state, word int) {
	b.insert(state, word, acceptCode)
}

func (b *tableBuilder) setReduce(state, word int, prod *Production) {
	b.insert(state, word, int32(prod.Serial))
}

func (b *tableBuilder) insert(state, word int, code int32) {
	existing := b.action.Value(state, word)
	if existing == sparse.DefaultNullValue || existing == code {
		b.action.Set(state, word, code)
		return
	}
	resolved, conflict := b.resolve(word, existing, code)
	if conflict != nil {
		b.errs = append(b.errs, ConstructionError{State: state, Conflict: conflict})
	}
	b.action.Set(state, word, resolved)
}

// resolve settles a clash between an existing entry and a newly discovered
// one, applying the precedence-based rule of spec.md §4.7. It returns the
// chosen code and, if the clash could not be silently settled, the Conflict
// describing it.
func (b *tableBuilder) resolve(word int, existing, incoming int32) (int32, Conflict) {
	existingShift, existingIsShift := decodeShift(existing)
	incomingShift, incomingIsShift := decodeShift(incoming)

	if !existingIsShift && !incomingIsShift {
		p1 := b.g.Productions()[existing]
		p2 := b.g.Productions()[incoming]
		if p1.Serial <= p2.Serial {
			return existing, ReduceReduceConflict{Word: word, Prod1: p1, Prod2: p2}
		}
		return incoming, ReduceReduceConflict{Word: word, Prod1: p1, Prod2: p2}
	}

	var shiftState int
	var reduceProd *Production
	shiftCode := existing
	if existingIsShift {
		shiftState = existingShift
		reduceProd = b.g.Productions()[incoming]
	} else {
		shiftState = incomingShift
		reduceProd = b.g.Productions()[existing]
		shiftCode = incoming
	}

	tp, tpOK := b.prec.Terminal(word)
	pp := reduceProd.Prec
	if pp == nil || !tpOK {
		return shiftCode, nil // prefer shift when precedence is undeclared on either side
	}
	if pp.Level == tp.Level && pp.Assoc == Nonassoc {
		return shiftCode, ShiftReduceConflict{Word: word, Shift: shiftState, Reduce: reduceProd}
	}
	if pp.Level > tp.Level || (pp.Level == tp.Level && pp.Assoc == Left) {
		return int32(reduceProd.Serial), nil
	}
	return shiftCode, nil
}

func (b *tableBuilder) build() (*LRTable, []ConstructionError) {
	return &LRTable{grammar: b.g, action: b.action, goTo: b.goTo}, b.errs
}

// BuildLALRTable synthesizes an LRTable from the LR(0) skeleton a and a
// DeRemer-Pennello lookahead solution, per spec.md §4.6-4.7. prec may be nil,
// in which case every shift/reduce clash resolves to shift.
func BuildLALRTable(a *Automaton, g *Grammar, la *Lookahead, prec *PrecedenceTable) (*LRTable, []ConstructionError) {
	if prec == nil {
		prec = NewPrecedenceTable()
	}
	b := newTableBuilder(g, prec, a.NumStates())
	aug := g.AugmentedProduction()

	for _, s := range a.States() {
		for _, e := range a.EdgesFrom(s.ID) {
			if e.sym.IsVariable() {
				b.setGoto(s.ID, e.sym.Value, e.to)
			} else {
				b.setShift(s.ID, e.sym.Value, e.to)
			}
		}
		for _, x := range s.Items.Values() {
			item := x.(LR0Item)
			if !item.IsComplete() {
				continue
			}
			// The augmented production never has a lookback entry (no edge is
			// labeled S'), so its Accept goes directly into the end-of-input column.
			if item.Prod == aug {
				b.setAccept(s.ID, EndOfInput)
				continue
			}
			lookaheads := la.LA(s.ID, item.Prod)
			for word := range lookaheads {
				b.setReduce(s.ID, word, item.Prod)
			}
		}
	}
	tracer().Debugf("lr: LALR table built with %d conflicts", len(b.errs))
	return b.build()
}

// BuildCanonicalTable synthesizes an LRTable directly from a canonical LR(1)
// automaton: each item's own lookahead terminal drives its reduce entries,
// with no DeRemer-Pennello merging step (spec.md §4.7).
func BuildCanonicalTable(a *Automaton, g *Grammar, prec *PrecedenceTable) (*LRTable, []ConstructionError) {
	if prec == nil {
		prec = NewPrecedenceTable()
	}
	b := newTableBuilder(g, prec, a.NumStates())
	aug := g.AugmentedProduction()

	for _, s := range a.States() {
		for _, e := range a.EdgesFrom(s.ID) {
			if e.sym.IsVariable() {
				b.setGoto(s.ID, e.sym.Value, e.to)
			} else {
				b.setShift(s.ID, e.sym.Value, e.to)
			}
		}
		for _, x := range s.Items.Values() {
			item := x.(LR1Item)
			if !item.IsComplete() {
				continue
			}
			if item.Prod == aug {
				b.setAccept(s.ID, item.Lookahead)
			} else {
				b.setReduce(s.ID, item.Lookahead, item.Prod)
			}
		}
	}
	tracer().Debugf("lr: canonical LR(1) table built with %d conflicts", len(b.errs))
	return b.build()
}
