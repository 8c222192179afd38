package parsegen

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. No constants are defined here, as
// the set of token categories is determined by a grammar at construction
// time. One value is reserved across this module regardless of grammar:
// TokType(0) is the word id package lr treats as end-of-input, so a
// lr/scanner.Tokenizer feeding an lr.Parser must yield a token of TokType(0)
// to signal drain rather than returning a nil Token or a sentinel of some
// other value. The two Tokenizers in package lr/scanner (DefaultTokenizer and
// lexmach.LMScanner) do not follow this convention: they report text/scanner
// categories and signal end of input with scanner.EOF (-1).
type TokType int

// TokTypeStringer is a type to be provided by a scanner/parser combination to be able
// to print out token categories.
type TokTypeStringer func(TokType) string

// Token is produced by a scanner (a lr/scanner.Tokenizer) and reflects a
// terminal of a grammar. Package rx/scan reports its matches with its own
// scan.Token struct, which does not implement this interface.
//
// An example would be a token for a floating point number:
//
//    TokType = Float       // identifier for this kind of token (grammar specific)
//    Lexeme  = "3.1416"    // lexeme as it appeared in the input stream
//    Value   = 3.1416      // converted value
//    Span    = 67…73       // occurred from position 67 in the input stream
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// TokenRetriever is a type for getting tokens at an input position.
type TokenRetriever func(uint64) Token

// --- Spans ------------------------------------------------------------

// Span captures a length of input token run: a start position and the
// position just behind the end (half-open).
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull returns true for the zero span.
func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend grows s to also cover other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
