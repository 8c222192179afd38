package lr_test

import (
	"testing"

	"github.com/gopherlr/parsegen"
	"github.com/gopherlr/parsegen/lr"
)

// E -> E + E | E * E | n, with '+' binding looser than '*', both
// left-associative. Without declared precedence this grammar is ambiguous;
// precedence settles every shift/reduce clash.
func buildPrecedenceTable(t *testing.T) *lr.LRTable {
	t.Helper()
	const (
		wordN = iota + 1
		wordPlus
		wordStar
	)
	b := lr.NewGrammarBuilder()
	e := b.NewVariable("E")
	b.AddProduction(e, lr.Variable(e), lr.Terminal(wordPlus), lr.Variable(e))
	b.AddProduction(e, lr.Variable(e), lr.Terminal(wordStar), lr.Variable(e))
	b.AddProduction(e, lr.Terminal(wordN))

	g, err := b.Build(e)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	prec := lr.NewPrecedenceTable()
	prec.DeclareTerminal(wordPlus, lr.Precedence{Level: 1, Assoc: lr.Left})
	prec.DeclareTerminal(wordStar, lr.Precedence{Level: 2, Assoc: lr.Left})
	prec.ResolveProductions(g)

	automaton := lr.BuildLR0(g)
	nullable := lr.ComputeNullable(g)
	la := lr.ComputeLookahead(automaton, g, nullable)
	table, conflicts := lr.BuildLALRTable(automaton, g, la, prec)
	if len(conflicts) != 0 {
		t.Fatalf("expected every clash to be settled by precedence, got: %v", conflicts)
	}
	return table
}

func TestPrecedenceResolvesLeftAssociativeMulBindsTighter(t *testing.T) {
	const (
		wordN = iota + 1
		wordPlus
		wordStar
	)
	table := buildPrecedenceTable(t)
	input := []parsegen.Token{
		tok(wordN, "n"), tok(wordPlus, "+"), tok(wordN, "n"), tok(wordStar, "*"), tok(wordN, "n"),
		tok(wordPlus, "+"), tok(wordN, "n"),
	}
	p := lr.NewParser(table, &sliceTokenizer{toks: input})
	events, err := p.Events()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	// "n + n * n + n" must parse as ((n + (n * n)) + n): '*' binds its
	// operands before the surrounding '+' can reduce, and the two '+'
	// reductions settle left to right by left-associativity.
	want := []string{
		"shift n", "reduce E->n",
		"shift +",
		"shift n", "reduce E->n",
		"shift *",
		"shift n", "reduce E->n",
		"reduce E->E*E",
		"reduce E->E+E",
		"shift +",
		"shift n", "reduce E->n",
		"reduce E->E+E",
	}
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d: %v", len(events), len(want), events)
	}
	describe := func(ev lr.Event) string {
		if ev.Kind == lr.ShiftEvent {
			return "shift " + ev.Token.Lexeme()
		}
		rhs := ""
		for _, s := range ev.Prod.RHS {
			if s.IsVariable() {
				rhs += "E"
			} else if s.Value == wordPlus {
				rhs += "+"
			} else if s.Value == wordStar {
				rhs += "*"
			} else {
				rhs += "n"
			}
		}
		return "reduce E->" + rhs
	}
	for i, ev := range events {
		if got := describe(ev); got != want[i] {
			t.Errorf("event %d: got %q, want %q", i, got, want[i])
		}
	}
}

// With no precedence declared at all, every shift/reduce clash on E -> E+E
// settles silently in favor of Shift, so "n+n+n" still parses without error
// (right-nested, since a reduce is only ever taken once nothing is left to
// shift).
func TestPrecedenceWithoutDeclarationDefaultsToShift(t *testing.T) {
	const (
		wordN = iota + 1
		wordPlus
	)
	b := lr.NewGrammarBuilder()
	e := b.NewVariable("E")
	b.AddProduction(e, lr.Variable(e), lr.Terminal(wordPlus), lr.Variable(e))
	b.AddProduction(e, lr.Terminal(wordN))
	g, err := b.Build(e)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	automaton := lr.BuildLR0(g)
	nullable := lr.ComputeNullable(g)
	la := lr.ComputeLookahead(automaton, g, nullable)
	table, conflicts := lr.BuildLALRTable(automaton, g, la, nil)
	if len(conflicts) != 0 {
		t.Fatalf("expected undeclared clashes to settle silently, got: %v", conflicts)
	}

	input := []parsegen.Token{
		tok(wordN, "n"), tok(wordPlus, "+"), tok(wordN, "n"), tok(wordPlus, "+"), tok(wordN, "n"),
	}
	p := lr.NewParser(table, &sliceTokenizer{toks: input})
	events, err := p.Events()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	var shifts, reduces int
	for _, ev := range events {
		if ev.Kind == lr.ShiftEvent {
			shifts++
		} else {
			reduces++
		}
	}
	// Five tokens are shifted; three E->n and two E->E+E reductions follow.
	if shifts != 5 || reduces != 5 {
		t.Fatalf("got %d shifts, %d reduces; want 5 and 5", shifts, reduces)
	}
	// Preferring shift defers every reduction until no more '+' remains to
	// shift, so the final event must be the outermost E->E+E.
	last := events[len(events)-1]
	if last.Kind != lr.ReduceEvent || len(last.Prod.RHS) != 3 {
		t.Fatalf("expected the last event to reduce E->E+E, got %v", last)
	}
}
