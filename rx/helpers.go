package rx

import (
	"unicode/utf8"

	"github.com/gopherlr/parsegen/byteset"
)

// Literal returns a regex recognizing exactly the bytes of s.
func Literal(s string) RegEx {
	r := Empty()
	for i := 0; i < len(s); i++ {
		r = r.Then(Set(byteset.Point(s[i])))
	}
	return r
}

// Any returns a regex recognizing any single rune occurring in s (an
// alternation of per-rune literals, each encoded as UTF-8).
func Any(s string) RegEx {
	r := None()
	for _, c := range s {
		r = r.Or(Literal(string(c)))
	}
	return r
}

// codepointShell is a maximal span of scalar values sharing the same UTF-8
// encoded length (surrogates, which are not scalar values and are never
// encoded, split the three-byte shell in two).
type codepointShell struct {
	lo, hi uint32
}

var codepointShells = []codepointShell{
	{0x0000, 0x007F},
	{0x0080, 0x07FF},
	{0x0800, 0xD7FF},
	{0xE000, 0xFFFF},
	{0x10000, 0x10FFFF},
}

// CodepointRange returns a regex recognizing the UTF-8 encoding of every
// codepoint in the inclusive range [from, to], per spec.md §4.2's non-goal
// of no Unicode-class shorthands beyond explicit ranges. The range is split
// at UTF-8 encoded-length shell boundaries (and around the surrogate gap,
// which has no encoding of its own), then each shell is decomposed into
// byte-range sequences by the standard UTF-8 range-splitting recursion.
func CodepointRange(from, to rune) RegEx {
	lo, hi := uint32(from), uint32(to)
	r := None()
	for _, shell := range codepointShells {
		a, b := max(lo, shell.lo), min(hi, shell.hi)
		if a > b {
			continue
		}
		r = r.Or(utf8ShellRange(a, b))
	}
	return r
}

func byteRange(from, to uint8) RegEx {
	return Set(byteset.Range(from, to))
}

// utf8ShellRange decomposes [lo, hi] into a regex over UTF-8 byte sequences,
// assuming lo and hi encode to the same number of bytes (i.e. both lie
// within a single entry of codepointShells). It is the standard recursive
// UTF-8 range-splitting algorithm: strip a shared leading byte, then peel
// off the low boundary's and high boundary's partial suffix ranges, leaving
// a middle span whose continuation bytes range freely over 0x80-0xBF.
func utf8ShellRange(lo, hi uint32) RegEx {
	return splitUTF8Bytes(encodeRuneBytes(lo), encodeRuneBytes(hi))
}

func encodeRuneBytes(v uint32) []byte {
	buf := make([]byte, utf8.UTFMax)
	n := utf8.EncodeRune(buf, rune(v))
	return buf[:n]
}

func splitUTF8Bytes(lo, hi []byte) RegEx {
	if len(lo) == 1 {
		return byteRange(lo[0], hi[0])
	}
	if lo[0] == hi[0] {
		return byteRange(lo[0], lo[0]).Then(splitUTF8Bytes(lo[1:], hi[1:]))
	}

	loLead, hiLead := lo[0], hi[0]
	r := None()

	if !isAllBytes(lo[1:], 0x80) {
		r = r.Or(byteRange(lo[0], lo[0]).Then(splitUTF8Bytes(lo[1:], fullSuffix(len(lo)-1, 0xBF))))
		loLead++
	}
	if !isAllBytes(hi[1:], 0xBF) {
		r = r.Or(byteRange(hi[0], hi[0]).Then(splitUTF8Bytes(fullSuffix(len(hi)-1, 0x80), hi[1:])))
		hiLead--
	}
	if loLead <= hiLead {
		r = r.Or(byteRange(loLead, hiLead).Then(continuationRun(len(lo) - 1)))
	}
	return r
}

func isAllBytes(bs []byte, v byte) bool {
	for _, b := range bs {
		if b != v {
			return false
		}
	}
	return true
}

func fullSuffix(n int, v byte) []byte {
	bs := make([]byte, n)
	for i := range bs {
		bs[i] = v
	}
	return bs
}

// continuationRun returns a regex matching n consecutive UTF-8 continuation
// bytes (each ranging freely over 0x80-0xBF).
func continuationRun(n int) RegEx {
	r := Empty()
	for i := 0; i < n; i++ {
		r = r.Then(byteRange(0x80, 0xBF))
	}
	return r
}
