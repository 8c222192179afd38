/*
Package lr implements the grammar model, LR item-set automata (LR0/LR1/
LALR1), the DeRemer–Pennello LALR(1) lookahead algorithm, parsing-table
synthesis with precedence-based conflict resolution, and the lazy
shift/reduce parse-event driver, per spec.md §4.5-4.8.

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package lr

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("parsegen.lr")
}

// SymbolKind discriminates the two kinds of grammar symbol.
type SymbolKind int8

const (
	TerminalSym SymbolKind = iota
	VariableSym
)

// EndOfInput is the terminal word id reserved for end-of-input ($); action
// table column 0 is always this terminal, per spec.md §4.7.
const EndOfInput = 0

// Symbol is either a Terminal(word id) or a Variable(rule id).
type Symbol struct {
	Kind  SymbolKind
	Value int
}

// Terminal constructs a terminal symbol for word id wordID.
func Terminal(wordID int) Symbol { return Symbol{Kind: TerminalSym, Value: wordID} }

// Variable constructs a variable (nonterminal) symbol for rule id ruleID.
func Variable(ruleID int) Symbol { return Symbol{Kind: VariableSym, Value: ruleID} }

// IsTerminal reports whether s is a terminal.
func (s Symbol) IsTerminal() bool { return s.Kind == TerminalSym }

// IsVariable reports whether s is a variable.
func (s Symbol) IsVariable() bool { return s.Kind == VariableSym }

func (s Symbol) String() string {
	if s.IsTerminal() {
		return fmt.Sprintf("T%d", s.Value)
	}
	return fmt.Sprintf("V%d", s.Value)
}
