package lr_test

import (
	"testing"

	"github.com/gopherlr/parsegen/lr"
)

// Next follows the same (value, err, ok) pull protocol as rx/scan.Scanner:
// ok first turns false right after Accept or on the call after an error has
// permanently drained the parser, never before, and stays false thereafter.
func TestParserNextDrainsOnAccept(t *testing.T) {
	table := buildBalancedTable(t)
	p := lr.NewParser(table, &sliceTokenizer{toks: parenTokens("()")})

	var kinds []lr.EventKind
	for {
		ev, err, ok := p.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			break
		}
		kinds = append(kinds, ev.Kind)
	}
	if len(kinds) == 0 {
		t.Fatal("expected at least one event before Accept")
	}
	// A further call after drain must keep reporting ok=false, not panic or
	// resurrect the parse.
	_, err, ok := p.Next()
	if err != nil || ok {
		t.Fatalf("expected a drained parser to keep returning (zero, nil, false), got (err=%v, ok=%v)", err, ok)
	}
}

func TestParserNextDrainsOnError(t *testing.T) {
	table := buildBalancedTable(t)
	// A leading ')' has no legal action from the start state: the very
	// first step must report the error.
	p := lr.NewParser(table, &sliceTokenizer{toks: parenTokens(")(")})

	_, err, ok := p.Next()
	if err == nil {
		t.Fatal("expected the first step to fail on a leading ')'")
	}
	if !ok {
		t.Fatal("expected ok=true on the very step that reports the error")
	}
	perr, isParseErr := err.(lr.ParseError)
	if !isParseErr {
		t.Fatalf("expected lr.ParseError, got %T", err)
	}
	if perr.Kind != lr.InvalidActionErr {
		t.Fatalf("expected InvalidActionErr, got %v", perr.Kind)
	}

	// Once drained by an error, further calls must stay drained.
	_, err, ok = p.Next()
	if err != nil || ok {
		t.Fatalf("expected the parser to stay drained after an error, got (err=%v, ok=%v)", err, ok)
	}
}

func TestLRTableActionAndGoto(t *testing.T) {
	table := buildBalancedTable(t)
	// State 0's only legal move is to shift on '(': every other word must
	// report InvalidAction.
	if a := table.Action(0, parenOpen); a.Kind != lr.ShiftAction {
		t.Fatalf("expected ShiftAction on '(' from state 0, got %v", a)
	}
	if a := table.Action(0, parenClose); a.Kind != lr.InvalidAction {
		t.Fatalf("expected InvalidAction on ')' from state 0, got %v", a)
	}
	if _, ok := table.Goto(0, 99); ok {
		t.Fatal("expected no Goto entry for an out-of-range variable")
	}
}
