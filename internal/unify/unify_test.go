package unify

import (
	"testing"

	"github.com/knuthbendix/kbcomplete/internal/term"
)

func TestUnifyStructural(t *testing.T) {
	x := term.NewVar("X")
	s := term.App("f", x, term.App("a"))
	tt := term.App("f", term.App("b"), term.App("a"))

	b, ok := Unify(s, tt)
	if !ok {
		t.Fatalf("expected unification to succeed")
	}
	got := term.Substitute(s, b)
	if !term.StructuralEqual(got, term.Substitute(tt, b)) {
		t.Errorf("sigma(s) != sigma(t): %s vs %s", got, term.Substitute(tt, b))
	}
}

func TestUnifyOccursCheck(t *testing.T) {
	x := term.NewVar("X")
	s := x
	tt := term.App("f", x)

	if _, ok := Unify(s, tt); ok {
		t.Errorf("expected occurs check to reject unify(X, f(X))")
	}
}

func TestUnifyFailsOnSymbolMismatch(t *testing.T) {
	s := term.App("f", term.App("a"))
	tt := term.App("g", term.App("a"))
	if _, ok := Unify(s, tt); ok {
		t.Errorf("expected unification of distinct symbols to fail")
	}
}

func TestUnifyVariableChain(t *testing.T) {
	x := term.NewVar("X")
	y := term.NewVar("Y")
	s := term.App("f", x, y)
	tt := term.App("f", y, term.App("a"))

	b, ok := Unify(s, tt)
	if !ok {
		t.Fatalf("expected unification to succeed")
	}
	sigmaS := term.Substitute(s, b)
	sigmaT := term.Substitute(tt, b)
	if !term.StructuralEqual(sigmaS, sigmaT) {
		t.Errorf("sigma(s)=%s, sigma(t)=%s, want equal", sigmaS, sigmaT)
	}
}

func TestMatchesOneSided(t *testing.T) {
	x := term.NewVar("X")
	pattern := term.App("f", x, term.App("a"))
	target := term.App("f", term.App("b"), term.App("a"))

	b, ok := Matches(pattern, target)
	if !ok {
		t.Fatalf("expected match to succeed")
	}
	if got := term.Substitute(pattern, b); !term.StructuralEqual(got, target) {
		t.Errorf("sigma(pattern) = %s, want %s", got, target)
	}
}

func TestMatchesTargetVariableIsOpaque(t *testing.T) {
	x := term.NewVar("X")
	pattern := term.App("f", term.App("a"))
	target := term.App("f", x)

	if _, ok := Matches(pattern, target); ok {
		t.Errorf("a non-variable pattern should never match an opaque target variable")
	}
}

func TestMatchesRepeatedPatternVariable(t *testing.T) {
	x := term.NewVar("X")
	pattern := term.App("f", x, x)

	ok1 := func() bool {
		_, ok := Matches(pattern, term.App("f", term.App("a"), term.App("a")))
		return ok
	}()
	if !ok1 {
		t.Errorf("expected f(X,X) to match f(a,a)")
	}

	_, ok2 := Matches(pattern, term.App("f", term.App("a"), term.App("b")))
	if ok2 {
		t.Errorf("did not expect f(X,X) to match f(a,b)")
	}
}
