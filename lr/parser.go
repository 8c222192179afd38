package lr

import (
	"fmt"

	"github.com/gopherlr/parsegen"
	"github.com/gopherlr/parsegen/lr/scanner"
)

// EventKind discriminates the two kinds of parse event.
type EventKind int8

const (
	ShiftEvent EventKind = iota
	ReduceEvent
)

// Event is a single step of the shift/reduce parse, emitted lazily by
// Parser.Next (spec.md §4.8). A ShiftEvent carries the token just consumed;
// a ReduceEvent carries the completed production, its LHS variable and the
// number of symbols popped off the stack, letting a caller build whatever
// tree shape it needs without the driver committing to one.
type Event struct {
	Kind       EventKind
	Token      parsegen.Token
	Prod       *Production
	Var        int
	ChildCount int
}

func (e Event) String() string {
	switch e.Kind {
	case ShiftEvent:
		return fmt.Sprintf("shift %v", e.Token)
	case ReduceEvent:
		return fmt.Sprintf("reduce %v (%d children)", e.Prod, e.ChildCount)
	default:
		return "invalid event"
	}
}

// ParseErrorKind discriminates the two ways a drive step can fail.
type ParseErrorKind int8

const (
	// InvalidActionErr means the ACTION table has no entry for the current
	// (state, lookahead) pair: the input does not belong to the language.
	InvalidActionErr ParseErrorKind = iota
	// InvalidGotoErr means a reduction popped back to a state with no GOTO
	// entry for the reduced variable, which signals a malformed table
	// rather than a rejected input.
	InvalidGotoErr
)

// ParseError reports why Parser.Next could not continue.
type ParseError struct {
	Kind  ParseErrorKind
	Step  int
	State int
	Word  int
	Var   int
}

func (e ParseError) Error() string {
	switch e.Kind {
	case InvalidGotoErr:
		return fmt.Sprintf("lr: step %d: no goto from state %d on V%d", e.Step, e.State, e.Var)
	default:
		return fmt.Sprintf("lr: step %d: no action in state %d on T%d", e.Step, e.State, e.Word)
	}
}

// Parser is a lazy, stack-based shift/reduce driver: it holds no parse tree
// of its own, emitting one Event per call to Next and letting the caller
// assemble whatever structure it needs (spec.md §4.8; see package
// example/cst for a minimal consumer).
type Parser struct {
	table     *LRTable
	toks      scanner.Tokenizer
	states    []int
	lookahead parsegen.Token
	buffered  bool
	step      int
	dead      bool
}

// NewParser returns a Parser over table, reading tokens from toks. The
// initial stack holds the automaton's start state, which BuildLALRTable and
// BuildCanonicalTable always number 0.
func NewParser(table *LRTable, toks scanner.Tokenizer) *Parser {
	return &Parser{table: table, toks: toks, states: []int{0}}
}

func (p *Parser) peek() parsegen.Token {
	if !p.buffered {
		p.lookahead = p.toks.NextToken()
		p.buffered = true
	}
	return p.lookahead
}

func (p *Parser) shift() { p.buffered = false }

// Next drives the parser one step and returns the resulting Event. ok is
// false once the input has been accepted or the parser has permanently
// drained after an error, mirroring rx/scan.Scanner.Next.
func (p *Parser) Next() (ev Event, err error, ok bool) {
	for !p.dead {
		state := p.states[len(p.states)-1]
		tok := p.peek()
		word := int(tok.TokType())
		action := p.table.Action(state, word)
		p.step++

		switch action.Kind {
		case ShiftAction:
			p.states = append(p.states, action.State)
			p.shift()
			return Event{Kind: ShiftEvent, Token: tok}, nil, true

		case ReduceAction:
			n := len(action.Prod.RHS)
			p.states = p.states[:len(p.states)-n]
			top := p.states[len(p.states)-1]
			target, has := p.table.Goto(top, action.Prod.Var)
			if !has {
				p.dead = true
				return Event{}, ParseError{Kind: InvalidGotoErr, Step: p.step, State: top, Var: action.Prod.Var}, true
			}
			p.states = append(p.states, target)
			return Event{Kind: ReduceEvent, Prod: action.Prod, Var: action.Prod.Var, ChildCount: n}, nil, true

		case AcceptAction:
			p.dead = true
			return Event{}, nil, false

		default:
			p.dead = true
			return Event{}, ParseError{Kind: InvalidActionErr, Step: p.step, State: state, Word: word}, true
		}
	}
	return Event{}, nil, false
}

// Events drains the parser into a slice, stopping at the first error (which
// is returned alongside whatever events were already produced).
func (p *Parser) Events() ([]Event, error) {
	var evs []Event
	for {
		ev, err, ok := p.Next()
		if !ok {
			return evs, nil
		}
		if err != nil {
			return evs, err
		}
		evs = append(evs, ev)
	}
}
