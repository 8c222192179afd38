package lr_test

import (
	"testing"

	"github.com/gopherlr/parsegen"
	"github.com/gopherlr/parsegen/lr"
	"github.com/gopherlr/parsegen/lr/scanner"
)

// sliceTokenizer feeds a fixed token sequence, appending an EOF token once
// exhausted.
type sliceTokenizer struct {
	toks []parsegen.Token
	pos  int
}

func (s *sliceTokenizer) NextToken() parsegen.Token {
	if s.pos >= len(s.toks) {
		return scanner.MakeDefaultToken(parsegen.TokType(lr.EndOfInput), "", parsegen.Span{})
	}
	t := s.toks[s.pos]
	s.pos++
	return t
}

func (s *sliceTokenizer) SetErrorHandler(func(error)) {}

func tok(word int, lexeme string) parsegen.Token {
	return scanner.MakeDefaultToken(parsegen.TokType(word), lexeme, parsegen.Span{})
}

// arithmetic grammar: E -> E + T | T ; T -> T * F | F ; F -> ( E ) | n
// words: n=1 +=2 *=3 (=4 )=5 ; vars: E=0 T=1 F=2
func buildArithmeticTable(t *testing.T) *lr.LRTable {
	t.Helper()
	const (
		wordN = iota + 1
		wordPlus
		wordStar
		wordLParen
		wordRParen
	)
	b := lr.NewGrammarBuilder()
	e := b.NewVariable("E")
	tv := b.NewVariable("T")
	f := b.NewVariable("F")

	b.AddProduction(e, lr.Variable(e), lr.Terminal(wordPlus), lr.Variable(tv))
	b.AddProduction(e, lr.Variable(tv))
	b.AddProduction(tv, lr.Variable(tv), lr.Terminal(wordStar), lr.Variable(f))
	b.AddProduction(tv, lr.Variable(f))
	b.AddProduction(f, lr.Terminal(wordLParen), lr.Variable(e), lr.Terminal(wordRParen))
	b.AddProduction(f, lr.Terminal(wordN))

	g, err := b.Build(e)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	automaton := lr.BuildLR0(g)
	nullable := lr.ComputeNullable(g)
	la := lr.ComputeLookahead(automaton, g, nullable)
	table, conflicts := lr.BuildLALRTable(automaton, g, la, nil)
	if len(conflicts) != 0 {
		t.Fatalf("unexpected conflicts: %v", conflicts)
	}
	return table
}

func TestArithmeticParse(t *testing.T) {
	const (
		wordN = iota + 1
		wordPlus
		wordStar
		wordLParen
		wordRParen
	)
	table := buildArithmeticTable(t)
	input := []parsegen.Token{
		tok(wordN, "n"), tok(wordPlus, "+"), tok(wordN, "n"), tok(wordStar, "*"), tok(wordN, "n"),
	}
	p := lr.NewParser(table, &sliceTokenizer{toks: input})
	events, err := p.Events()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	// A bottom-up parse of "n + n * n" must reduce the first lone n all the
	// way up to E (via F->n, T->F, E->T) before the '+' can shift, since
	// E->E+T needs an E already on the stack: this is forced by the
	// grammar, not a choice the table can avoid.
	want := []string{
		"shift n",
		"reduce F->n",
		"reduce T->F",
		"reduce E->T",
		"shift +",
		"shift n",
		"reduce F->n",
		"reduce T->F",
		"shift *",
		"shift n",
		"reduce F->n",
		"reduce T->T*F",
		"reduce E->E+T",
	}
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d: %v", len(events), len(want), events)
	}
	names := map[int]string{0: "E", 1: "T", 2: "F"}
	prodName := func(prod *lr.Production) string {
		rhs := ""
		for _, s := range prod.RHS {
			if s.IsVariable() {
				rhs += names[s.Value]
			} else {
				switch s.Value {
				case wordPlus:
					rhs += "+"
				case wordStar:
					rhs += "*"
				case wordLParen:
					rhs += "("
				case wordRParen:
					rhs += ")"
				case wordN:
					rhs += "n"
				}
			}
		}
		return names[prod.Var] + "->" + rhs
	}
	for i, ev := range events {
		var got string
		if ev.Kind == lr.ShiftEvent {
			got = "shift " + ev.Token.Lexeme()
		} else {
			got = "reduce " + prodName(ev.Prod)
		}
		if got != want[i] {
			t.Errorf("event %d: got %q, want %q", i, got, want[i])
		}
	}
}

func TestArithmeticAcceptsParenthesized(t *testing.T) {
	const (
		wordN = iota + 1
		wordPlus
		wordStar
		wordLParen
		wordRParen
	)
	table := buildArithmeticTable(t)
	input := []parsegen.Token{
		tok(wordLParen, "("), tok(wordN, "n"), tok(wordPlus, "+"), tok(wordN, "n"), tok(wordRParen, ")"),
		tok(wordStar, "*"), tok(wordN, "n"),
	}
	p := lr.NewParser(table, &sliceTokenizer{toks: input})
	events, err := p.Events()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(events) == 0 {
		t.Fatal("expected a non-empty event trace")
	}
	last := events[len(events)-1]
	if last.Kind != lr.ReduceEvent || last.Var != 0 {
		t.Fatalf("expected the final event to reduce to E, got %v", last)
	}
}

func TestArithmeticRejectsMalformed(t *testing.T) {
	const (
		wordN = iota + 1
		wordPlus
		wordStar
		wordLParen
		wordRParen
	)
	table := buildArithmeticTable(t)
	input := []parsegen.Token{tok(wordN, "n"), tok(wordPlus, "+"), tok(wordPlus, "+")}
	p := lr.NewParser(table, &sliceTokenizer{toks: input})
	_, err := p.Events()
	if err == nil {
		t.Fatal("expected a parse error")
	}
	var perr lr.ParseError
	if pe, ok := err.(lr.ParseError); ok {
		perr = pe
	} else {
		t.Fatalf("expected lr.ParseError, got %T", err)
	}
	if perr.Kind != lr.InvalidActionErr {
		t.Fatalf("expected InvalidActionErr, got %v", perr.Kind)
	}
}
