package scan

import "fmt"

// Token is a single scanned lexeme, spanning a half-open byte range of the
// scanner's input and labeled by a non-skip class.
type Token struct {
	Start, End int
	Class      int
}

// Error reports that no pattern matches the input starting at Pos. Once
// returned, the scanner that produced it is permanently drained.
type Error struct {
	Pos int
}

func (e *Error) Error() string {
	return fmt.Sprintf("scan: no pattern matches at byte %d", e.Pos)
}

// Scanner is a maximal-munch iterator over an input byte slice, driven by a
// Table. Call Next repeatedly; it returns (Token, nil, true), (Token{},
// err, true) on a scan error, or (Token{}, nil, false) once the input (or a
// prior error) has drained it.
type Scanner struct {
	table *Table
	input []byte
	index int
	dead  bool
}

// New returns a Scanner over input, driven by table.
func New(table *Table, input []byte) *Scanner {
	return &Scanner{table: table, input: input}
}

// Next advances the scanner and returns the next token. ok is false once the
// scanner is drained (end of input, or permanently after a scan error).
func (s *Scanner) Next() (tok Token, err error, ok bool) {
	for s.index < len(s.input) && !s.dead {
		state := Start
		index := s.index

		lastAcceptState := s.table.Sink()
		lastAcceptIndex := 0

		for index < len(s.input) {
			if state == s.table.Sink() {
				break
			}
			if _, accepting := s.table.Class(state); accepting {
				lastAcceptState = state
				lastAcceptIndex = index
			}
			state = s.table.Step(state, s.input[index])
			index++
		}

		if class, accepting := s.table.Class(state); accepting {
			start := s.index
			s.index = index
			if s.table.Command(class) == Emit {
				return Token{Start: start, End: s.index, Class: class}, nil, true
			}
			continue
		}
		if class, accepting := s.table.Class(lastAcceptState); accepting {
			start := s.index
			s.index = lastAcceptIndex
			if s.table.Command(class) == Emit {
				return Token{Start: start, End: s.index, Class: class}, nil, true
			}
			continue
		}

		pos := s.index
		s.dead = true
		return Token{}, &Error{Pos: pos}, true
	}
	return Token{}, nil, false
}

// Tokens drains the scanner into a slice, stopping at the first error (which
// is returned alongside whatever tokens were already produced).
func (s *Scanner) Tokens() ([]Token, error) {
	var toks []Token
	for {
		tok, err, ok := s.Next()
		if !ok {
			return toks, nil
		}
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
	}
}
