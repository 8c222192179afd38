package lr

import "fmt"

// Production is a single right-hand side alternative for a variable: a
// sequence of symbols, a global serial index (productions are numbered in
// declaration order, with the augmented start production always last), and
// an optional declared or defaulted precedence.
type Production struct {
	Serial int
	Var    int
	RHS    []Symbol
	Prec   *Precedence
}

func (p *Production) String() string {
	return fmt.Sprintf("V%d -> %v", p.Var, p.RHS)
}

// Grammar is an ordered list of rules (one per variable), each a vector of
// productions, with the augmented start production appended last by the
// builder. See spec.md §3 and §6 for the grammar input boundary contract.
type Grammar struct {
	productions  []*Production   // indexed by Serial
	byVar        [][]*Production // byVar[v] = productions with LHS v, in declaration order
	maxWordID    int             // highest terminal word id referenced
	userVarCount int             // number of user-declared variables (excludes the augmented start)
	augVar       int             // the synthetic augmented start variable id
	names        map[int]string  // optional variable names, for diagnostics
}

// Productions returns every production, indexed by Serial (the augmented
// start production is last).
func (g *Grammar) Productions() []*Production { return g.productions }

// ProductionsFor returns the productions whose LHS is variable v, in
// declaration order.
func (g *Grammar) ProductionsFor(v int) []*Production { return g.byVar[v] }

// VarCount returns the number of user-declared variables (excludes the
// augmented start variable, per spec.md §9's goto-table sizing note).
func (g *Grammar) VarCount() int { return g.userVarCount }

// TotalVarCount returns VarCount()+1, including the augmented start.
func (g *Grammar) TotalVarCount() int { return g.userVarCount + 1 }

// MaxWordID returns the highest terminal word id appearing in the grammar.
func (g *Grammar) MaxWordID() int { return g.maxWordID }

// AugmentedVar returns the synthetic start variable's id (S').
func (g *Grammar) AugmentedVar() int { return g.augVar }

// AugmentedProduction returns the grammar's single S' -> S production.
func (g *Grammar) AugmentedProduction() *Production {
	return g.byVar[g.augVar][0]
}

// Name returns a diagnostic name for variable v, or a synthetic one if none
// was registered.
func (g *Grammar) Name(v int) string {
	if n, ok := g.names[v]; ok {
		return n
	}
	if v == g.augVar {
		return "S'"
	}
	return fmt.Sprintf("V%d", v)
}

// EachSymbol calls fn once for every terminal 0..MaxWordID and every
// variable 0..VarCount-1 (the augmented variable is never passed: it only
// ever triggers Accept, per spec.md §4.7).
func (g *Grammar) EachSymbol(fn func(Symbol)) {
	for w := 0; w <= g.maxWordID; w++ {
		fn(Terminal(w))
	}
	for v := 0; v < g.userVarCount; v++ {
		fn(Variable(v))
	}
}

// GrammarBuilder accumulates rules and productions, then appends the
// augmented start production and freezes the result. Rules are added in
// order; user rules never reference the augmented start.
type GrammarBuilder struct {
	byVar     [][]*Production
	names     map[int]string
	serial    int
	maxWordID int
}

// NewGrammarBuilder returns an empty builder.
func NewGrammarBuilder() *GrammarBuilder {
	return &GrammarBuilder{names: map[int]string{}}
}

// NewVariable registers a new variable (optionally named, for diagnostics)
// and returns its id.
func (b *GrammarBuilder) NewVariable(name string) int {
	id := len(b.byVar)
	b.byVar = append(b.byVar, nil)
	if name != "" {
		b.names[id] = name
	}
	return id
}

// AddProduction appends a production var -> rhs, returning its global serial.
func (b *GrammarBuilder) AddProduction(v int, rhs ...Symbol) int {
	for _, s := range rhs {
		if s.IsTerminal() && s.Value > b.maxWordID {
			b.maxWordID = s.Value
		}
	}
	p := &Production{Serial: b.serial, Var: v, RHS: append([]Symbol(nil), rhs...)}
	b.serial++
	b.byVar[v] = append(b.byVar[v], p)
	return p.Serial
}

// Build appends the augmented start production S' -> Variable(startVar) and
// freezes the grammar. It is an error for startVar to be out of range or for
// any user variable to have zero productions.
func (b *GrammarBuilder) Build(startVar int) (*Grammar, error) {
	if startVar < 0 || startVar >= len(b.byVar) {
		return nil, fmt.Errorf("lr: start variable %d out of range", startVar)
	}
	for v, prods := range b.byVar {
		if len(prods) == 0 {
			return nil, fmt.Errorf("lr: variable %d (%s) has no productions", v, b.names[v])
		}
	}
	userVarCount := len(b.byVar)
	augVar := userVarCount
	aug := &Production{Serial: b.serial, Var: augVar, RHS: []Symbol{Variable(startVar)}}

	byVar := append(b.byVar, []*Production{aug})
	productions := make([]*Production, b.serial+1)
	for _, prods := range byVar {
		for _, p := range prods {
			productions[p.Serial] = p
		}
	}

	g := &Grammar{
		productions:  productions,
		byVar:        byVar,
		maxWordID:    b.maxWordID,
		userVarCount: userVarCount,
		augVar:       augVar,
		names:        b.names,
	}
	tracer().Debugf("lr: grammar built with %d variables, %d productions, maxWordID=%d",
		userVarCount, len(productions), b.maxWordID)
	return g, nil
}
