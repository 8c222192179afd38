package lr

import "fmt"

// LR0Item is `production, pos`: pos counts symbols already consumed
// (shifted past the dot).
type LR0Item struct {
	Prod *Production
	Pos  int
}

// StartItem returns the kernel item for the augmented start production,
// dot at position 0: `S' -> • S`.
func StartItem(g *Grammar) LR0Item {
	return LR0Item{Prod: g.AugmentedProduction(), Pos: 0}
}

// IsComplete reports whether the dot has reached the end of the RHS.
func (it LR0Item) IsComplete() bool { return it.Pos == len(it.Prod.RHS) }

// IsKernel reports whether it is a kernel item: the start item, or any item
// with the dot past position 0.
func (it LR0Item) IsKernel(g *Grammar) bool {
	return it.Pos > 0 || it.Prod == g.AugmentedProduction()
}

// PeekSymbol returns the symbol immediately after the dot, or nil if the
// item is complete.
func (it LR0Item) PeekSymbol() *Symbol {
	if it.IsComplete() {
		return nil
	}
	s := it.Prod.RHS[it.Pos]
	return &s
}

// Advance returns the item with the dot moved one position to the right.
// Panics if the item is already complete.
func (it LR0Item) Advance() LR0Item {
	if it.IsComplete() {
		panic("lr: Advance on a complete item")
	}
	return LR0Item{Prod: it.Prod, Pos: it.Pos + 1}
}

// Equals implements iteratable.Equatable.
func (it LR0Item) Equals(other interface{}) bool {
	o, ok := other.(LR0Item)
	return ok && o.Prod == it.Prod && o.Pos == it.Pos
}

func (it LR0Item) String() string {
	rhs := it.Prod.RHS
	out := fmt.Sprintf("V%d ->", it.Prod.Var)
	for i, s := range rhs {
		if i == it.Pos {
			out += " •"
		}
		out += " " + s.String()
	}
	if it.Pos == len(rhs) {
		out += " •"
	}
	return out
}

// LR1Item is an LR0Item carrying a single lookahead terminal. A state may
// hold several LR1Items that share an LR0Item but differ by lookahead.
type LR1Item struct {
	LR0Item
	Lookahead int
}

// StartItem1 returns the LR(1) kernel item for the augmented start
// production, with end-of-input as lookahead.
func StartItem1(g *Grammar) LR1Item {
	return LR1Item{LR0Item: StartItem(g), Lookahead: EndOfInput}
}

// Advance returns the LR1Item with the dot moved one position right,
// keeping the same lookahead.
func (it LR1Item) Advance() LR1Item {
	return LR1Item{LR0Item: it.LR0Item.Advance(), Lookahead: it.Lookahead}
}

// Equals implements iteratable.Equatable.
func (it LR1Item) Equals(other interface{}) bool {
	o, ok := other.(LR1Item)
	return ok && o.LR0Item.Equals(it.LR0Item) && o.Lookahead == it.Lookahead
}

func (it LR1Item) String() string {
	return fmt.Sprintf("%s , T%d", it.LR0Item.String(), it.Lookahead)
}
