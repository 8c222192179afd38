package dfa

import (
	"testing"

	"github.com/gopherlr/parsegen/byteset"
	"github.com/gopherlr/parsegen/rx"
)

func TestBuildMatchesRegex(t *testing.T) {
	pattern := rx.Literal("ab").Then(rx.Set(byteset.Range('c', 'd')).Star())
	d := Build([]rx.RegEx{pattern})

	cases := map[string]bool{
		"ab":     true,
		"abcd":   true,
		"abcccd": true,
		"a":      false,
		"abe":    false,
		"":       false,
	}
	for s, want := range cases {
		if got := d.Matches(s); got != want {
			t.Fatalf("Matches(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestSinkIsStateZero(t *testing.T) {
	d := Build([]rx.RegEx{rx.Literal("a")})
	st := d.States()[0]
	for b := 0; b < 256; b++ {
		if st.Next[b] != 0 {
			t.Fatalf("sink state must self-loop on every byte, byte %d went to %d", b, st.Next[b])
		}
	}
	if _, ok := d.Class(0); ok {
		t.Fatalf("sink state must not be accepting")
	}
}

func TestClassIsLowestMatchingIndex(t *testing.T) {
	// "if" as a keyword (class 0) takes priority over the identifier class (1)
	// at the state that has matched exactly "if".
	kw := rx.Literal("if")
	ident := rx.Set(byteset.Range('a', 'z')).Plus()
	d := Build([]rx.RegEx{kw, ident})

	id := 1
	for _, b := range []byte("if") {
		id = d.Step(id, b)
	}
	class, ok := d.Class(id)
	if !ok || class != 0 {
		t.Fatalf("state after \"if\" should be class 0 (keyword), got (%d,%v)", class, ok)
	}
}

func TestMinimizePreservesLanguage(t *testing.T) {
	pattern := rx.Set(byteset.Range('a', 'b')).Plus()
	d := Build([]rx.RegEx{pattern})
	m := Minimize(d)

	strs := []string{"a", "b", "ab", "aabbab", "", "c", "abc"}
	for _, s := range strs {
		if d.Matches(s) != m.Matches(s) {
			t.Fatalf("minimized DFA disagrees with original on %q", s)
		}
	}
	if m.NumStates() > d.NumStates() {
		t.Fatalf("minimization should not increase state count: %d > %d", m.NumStates(), d.NumStates())
	}
}

func TestMinimizeSinkStaysAtZero(t *testing.T) {
	d := Build([]rx.RegEx{rx.Literal("xyz")})
	m := Minimize(d)
	st := m.States()[0]
	for b := 0; b < 256; b++ {
		if st.Next[b] != 0 {
			t.Fatalf("minimized sink must self-loop on every byte")
		}
	}
	if _, ok := m.Class(0); ok {
		t.Fatalf("minimized sink must not be accepting")
	}
}

func TestIntersectionScenario(t *testing.T) {
	// L(a(b|c)*)
	pattern := rx.Literal("a").Then(rx.Literal("b").Or(rx.Literal("c")).Star())
	d := Build([]rx.RegEx{pattern})

	inLanguage := []string{"abc", "ac", "abb"}
	for _, s := range inLanguage {
		if !d.Matches(s) {
			t.Fatalf("expected %q in L(a(b|c)*)", s)
		}
	}
	if d.Matches("acd") {
		t.Fatalf("acd should not be in L(a(b|c)*)")
	}
}
