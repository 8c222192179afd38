package lr

// Associativity says how a precedence level resolves a shift/reduce tie at
// the same level.
type Associativity int8

const (
	Left Associativity = iota
	Right
	Nonassoc
)

// Precedence is a declared operator precedence: a level (higher binds
// tighter) and an associativity, per spec.md §3.
type Precedence struct {
	Level int
	Assoc Associativity
}

// PrecedenceTable holds per-terminal declared precedences, and assigns
// per-production precedences either from an explicit declaration or by
// defaulting to the rightmost terminal in the production's RHS that carries
// one (spec.md §4.7).
type PrecedenceTable struct {
	terminals map[int]Precedence
}

// NewPrecedenceTable returns an empty table.
func NewPrecedenceTable() *PrecedenceTable {
	return &PrecedenceTable{terminals: map[int]Precedence{}}
}

// DeclareTerminal assigns a precedence to terminal word id w.
func (pt *PrecedenceTable) DeclareTerminal(w int, p Precedence) {
	pt.terminals[w] = p
}

// Terminal returns the declared precedence for terminal w, if any.
func (pt *PrecedenceTable) Terminal(w int) (Precedence, bool) {
	p, ok := pt.terminals[w]
	return p, ok
}

// ResolveProductions assigns a precedence to every production in g that
// doesn't already carry an explicit one (Production.Prec), defaulting to the
// precedence of the rightmost RHS terminal that has one declared.
// Explicitly-set production precedences (set via SetProduction before
// calling this) are never overridden.
func (pt *PrecedenceTable) ResolveProductions(g *Grammar) {
	for _, p := range g.productions {
		if p.Prec != nil {
			continue
		}
		for i := len(p.RHS) - 1; i >= 0; i-- {
			sym := p.RHS[i]
			if sym.IsTerminal() {
				if prec, ok := pt.terminals[sym.Value]; ok {
					cp := prec
					p.Prec = &cp
					break
				}
			}
		}
	}
}

// SetProduction explicitly overrides production p's precedence, taking
// priority over the defaulting pass in ResolveProductions.
func (pt *PrecedenceTable) SetProduction(p *Production, prec Precedence) {
	cp := prec
	p.Prec = &cp
}
