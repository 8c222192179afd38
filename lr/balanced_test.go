package lr_test

import (
	"testing"

	"github.com/gopherlr/parsegen"
	"github.com/gopherlr/parsegen/lr"
	"github.com/gopherlr/parsegen/lr/scanner"
)

// balanced parentheses grammar: L -> L P | P ; P -> ( L ) | ( )
// words: (=1 )=2 ; vars: L=0 P=1
const (
	parenOpen  = 1
	parenClose = 2
)

func buildBalancedTable(t *testing.T) *lr.LRTable {
	t.Helper()
	b := lr.NewGrammarBuilder()
	l := b.NewVariable("L")
	p := b.NewVariable("P")

	b.AddProduction(l, lr.Variable(l), lr.Variable(p))
	b.AddProduction(l, lr.Variable(p))
	b.AddProduction(p, lr.Terminal(parenOpen), lr.Variable(l), lr.Terminal(parenClose))
	b.AddProduction(p, lr.Terminal(parenOpen), lr.Terminal(parenClose))

	g, err := b.Build(l)
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

func parenTokens(s string) []parsegen.Token {
	toks := make([]parsegen.Token, len(s))
	for i, c := range s {
		if c == '(' {
			toks[i] = scanner.MakeDefaultToken(parsegen.TokType(parenOpen), "(", parsegen.Span{})
		} else {
			toks[i] = scanner.MakeDefaultToken(parsegen.TokType(parenClose), ")", parsegen.Span{})
		}
	}
	return toks
}

// parseBalanced reports whether the table accepts s, without otherwise
// inspecting the event trace.
func parseBalanced(table *lr.LRTable, s string) bool {
	p := lr.NewParser(table, &sliceTokenizer{toks: parenTokens(s)})
	_, err := p.Events()
	return err == nil
}

// isBalanced is the reference definition used by S2: a running open-count
// that never goes negative and ends at zero, on a non-empty string.
func isBalanced(s string) bool {
	if s == "" {
		return false
	}
	depth := 0
	for _, c := range s {
		if c == '(' {
			depth++
		} else {
			depth--
		}
		if depth < 0 {
			return false
		}
	}
	return depth == 0
}

func TestBalancedAcceptsNestedGroups(t *testing.T) {
	table := buildBalancedTable(t)
	if !parseBalanced(table, "(())") {
		t.Error("expected \"(())\" to be accepted")
	}
}

func TestBalancedRejectsUnclosedGroup(t *testing.T) {
	table := buildBalancedTable(t)
	if parseBalanced(table, "(()") {
		t.Error("expected \"(()\" to be rejected")
	}
}

func TestBalancedRejectsLeadingClose(t *testing.T) {
	table := buildBalancedTable(t)
	if parseBalanced(table, ")(") {
		t.Error("expected \")(\" to be rejected")
	}
}

func TestBalancedMatchesRunningCounterUpToLength12(t *testing.T) {
	table := buildBalancedTable(t)
	const maxLen = 12
	checked := 0
	for n := 1; n <= maxLen; n++ {
		for mask := 0; mask < 1<<uint(n); mask++ {
			buf := make([]byte, n)
			for i := 0; i < n; i++ {
				if mask&(1<<uint(i)) != 0 {
					buf[i] = '('
				} else {
					buf[i] = ')'
				}
			}
			s := string(buf)
			got := parseBalanced(table, s)
			want := isBalanced(s)
			checked++
			if got != want {
				t.Errorf("parse(%q) = %v, want %v", s, got, want)
			}
		}
	}
	if checked == 0 {
		t.Fatal("generated no test strings")
	}
}
