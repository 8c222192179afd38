package rx

import (
	"testing"

	"github.com/gopherlr/parsegen/byteset"
)

func TestOrIsIdempotent(t *testing.T) {
	a := Set(byteset.Range('a', 'z'))
	if !a.Or(a).Equal(a) {
		t.Fatalf("a|a != a")
	}
}

func TestOrIsCommutative(t *testing.T) {
	a := Set(byteset.Point('a'))
	b := Set(byteset.Point('b'))
	c := Set(byteset.Point('c'))
	lhs := a.Or(b).Or(c)
	rhs := c.Or(b).Or(a)
	if !lhs.Equal(rhs) {
		t.Fatalf("Or not commutative: %v != %v", lhs, rhs)
	}
}

func TestOrMergesAdjacentSets(t *testing.T) {
	got := Set(byteset.Range('a', 'm')).Or(Set(byteset.Range('n', 'z')))
	want := Set(byteset.Range('a', 'z'))
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNoneIsOrIdentity(t *testing.T) {
	a := Literal("foo")
	if !a.Or(None()).Equal(a) {
		t.Fatalf("a|∅ != a")
	}
}

func TestNoneIsThenAnnihilator(t *testing.T) {
	a := Literal("foo")
	if !a.Then(None()).Equal(None()) {
		t.Fatalf("a·∅ != ∅")
	}
	if !None().Then(a).Equal(None()) {
		t.Fatalf("∅·a != ∅")
	}
}

func TestEpsilonIsThenIdentity(t *testing.T) {
	a := Literal("foo")
	if !a.Then(Empty()).Equal(a) {
		t.Fatalf("a·ε != a")
	}
	if !Empty().Then(a).Equal(a) {
		t.Fatalf("ε·a != a")
	}
}

func TestStarIdempotent(t *testing.T) {
	a := Set(byteset.Point('a'))
	if !a.Star().Star().Equal(a.Star()) {
		t.Fatalf("(a*)* != a*")
	}
}

func TestStarOfEmptyIsEpsilon(t *testing.T) {
	if !None().Star().Equal(Empty()) {
		t.Fatalf("∅* != ε")
	}
	if !Empty().Star().Equal(Empty()) {
		t.Fatalf("ε* != ε")
	}
}

func TestNotInvolutive(t *testing.T) {
	a := Literal("foo")
	if !a.Not().Not().Equal(a) {
		t.Fatalf("¬¬a != a")
	}
}

func TestNotOfSetIsComplement(t *testing.T) {
	s := byteset.Range('a', 'z')
	got := Set(s).Not()
	want := Set(s.Complement())
	if !got.Equal(want) {
		t.Fatalf("¬Set(s) != Set(complement(s))")
	}
}

func TestNullable(t *testing.T) {
	if !Empty().IsNullable() {
		t.Fatalf("ε should be nullable")
	}
	if None().IsNullable() {
		t.Fatalf("∅ should not be nullable")
	}
	a := Set(byteset.Point('a'))
	if a.IsNullable() {
		t.Fatalf("a single byte set should not be nullable")
	}
	if !a.Star().IsNullable() {
		t.Fatalf("a* should be nullable")
	}
	if !a.Opt().IsNullable() {
		t.Fatalf("a? should be nullable")
	}
}

func TestDerivLiteral(t *testing.T) {
	r := Literal("ab")
	d := r.Deriv('a')
	if !d.Equal(Literal("b")) {
		t.Fatalf("∂_a(ab) = %v, want b", d)
	}
	if !d.Deriv('b').Equal(Empty()) {
		t.Fatalf("∂_b(∂_a(ab)) should be ε")
	}
	if !r.Deriv('x').Equal(None()) {
		t.Fatalf("∂_x(ab) should be ∅")
	}
}

func TestDerivStar(t *testing.T) {
	r := Set(byteset.Point('a')).Star()
	d := r.Deriv('a')
	if !d.Equal(r) {
		t.Fatalf("∂_a(a*) should equal a* (since a*=a·a*|ε), got %v", d)
	}
}

func TestDerivOr(t *testing.T) {
	r := Literal("a").Or(Literal("b"))
	if !r.Deriv('a').Equal(Empty()) {
		t.Fatalf("∂_a(a|b) should be ε")
	}
	if !r.Deriv('b').Equal(Empty()) {
		t.Fatalf("∂_b(a|b) should be ε")
	}
	if !r.Deriv('c').Equal(None()) {
		t.Fatalf("∂_c(a|b) should be ∅")
	}
}

func matches(r RegEx, s string) bool {
	for i := 0; i < len(s); i++ {
		r = r.Deriv(s[i])
	}
	return r.IsNullable()
}

func TestLiteralMatching(t *testing.T) {
	r := Literal("foo")
	if !matches(r, "foo") {
		t.Fatalf("expected foo to match")
	}
	if matches(r, "foobar") {
		t.Fatalf("expected foobar not to match (whole-string match only)")
	}
	if matches(r, "fo") {
		t.Fatalf("expected fo not to match")
	}
}

func TestPlusRequiresAtLeastOne(t *testing.T) {
	r := Set(byteset.Point('a')).Plus()
	if matches(r, "") {
		t.Fatalf("a+ should not match empty string")
	}
	if !matches(r, "a") {
		t.Fatalf("a+ should match 'a'")
	}
	if !matches(r, "aaaa") {
		t.Fatalf("a+ should match 'aaaa'")
	}
}

func TestCodepointRangeASCII(t *testing.T) {
	r := CodepointRange('0', '9')
	for _, d := range "0123456789" {
		if !matches(r, string(d)) {
			t.Fatalf("range(0,9) should match digit %q", d)
		}
	}
	if matches(r, "a") {
		t.Fatalf("range(0,9) should not match 'a'")
	}
}

func TestCodepointRangeMultiByte(t *testing.T) {
	// U+00E0 (à) .. U+00FF (ÿ): a range lying wholly in the two-byte UTF-8 shell.
	r := CodepointRange(0x00E0, 0x00FF)
	if !matches(r, "å") {
		t.Fatalf("range should match å (U+00E5)")
	}
	if matches(r, "a") {
		t.Fatalf("range should not match ascii 'a'")
	}
}

func TestAnyMatchesEachAlternative(t *testing.T) {
	r := Any("xyz")
	for _, c := range "xyz" {
		if !matches(r, string(c)) {
			t.Fatalf("Any(xyz) should match %q", c)
		}
	}
	if matches(r, "w") {
		t.Fatalf("Any(xyz) should not match 'w'")
	}
}

func TestDiff(t *testing.T) {
	digits := Set(byteset.Range('0', '9'))
	notNine := digits.Diff(Set(byteset.Point('9')))
	if matches(notNine, "9") {
		t.Fatalf("digits\\{9} should not match '9'")
	}
	if !matches(notNine, "5") {
		t.Fatalf("digits\\{9} should match '5'")
	}
}

func TestInterningSharesIdenticalShapes(t *testing.T) {
	a := Literal("ab").Or(Literal("cd"))
	b := Literal("cd").Or(Literal("ab"))
	if !a.Equal(b) {
		t.Fatalf("structurally identical (after canonicalization) regexes should intern to the same node")
	}
}
