package critical

import (
	"testing"

	"github.com/knuthbendix/kbcomplete/internal/budget"
	"github.com/knuthbendix/kbcomplete/internal/rewrite"
	"github.com/knuthbendix/kbcomplete/internal/term"
)

func mustRule(t *testing.T, lhs, rhs *term.Term) *rewrite.Rule {
	t.Helper()
	r, err := rewrite.NewRule(lhs, rhs)
	if err != nil {
		t.Fatalf("NewRule: %v", err)
	}
	return r
}

func containsPair(pairs []term.Equation, u, v *term.Term) bool {
	for _, p := range pairs {
		if (term.StructuralEqual(p.Left, u) && term.StructuralEqual(p.Right, v)) ||
			(term.StructuralEqual(p.Left, v) && term.StructuralEqual(p.Right, u)) {
			return true
		}
	}
	return false
}

// TestCriticalPairExample is scenario 6 of spec.md §8: rules
// [f(f(X)) ==> a, f(f(X)) ==> b] produce the critical pair a = b.
func TestCriticalPairExample(t *testing.T) {
	x := term.NewVar("X")
	r1 := mustRule(t, term.App("f", term.App("f", x)), term.App("a"))
	r2 := mustRule(t, term.App("f", term.App("f", x)), term.App("b"))

	pairs, err := All(rewrite.TRS{r1, r2}, budget.Unlimited())
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if !containsPair(pairs, term.App("a"), term.App("b")) {
		t.Errorf("expected critical pair a = b among %v", pairs)
	}
}

// TestCriticalPairSkipsVariablePositions checks that a rule like
// f(X) ==> X never contributes an overlap site at its own variable
// argument, matching the source's var(T) -> [] rule.
func TestCriticalPairSkipsVariablePositions(t *testing.T) {
	x := term.NewVar("X")
	identity := mustRule(t, term.App("f", x), x)

	sites := collectSites(identity.LHS)
	if len(sites) != 1 {
		t.Fatalf("expected exactly the root f(X) as a site, got %d sites", len(sites))
	}
	if !term.StructuralEqual(sites[0].subterm, identity.LHS) {
		t.Errorf("expected the single site to be the root")
	}
}

func TestCriticalPairContextReconstruction(t *testing.T) {
	x := term.NewVar("X")
	// f(g(X), h(X)): overlapping at the g(X) position and replacing with
	// a constant should rebuild f(c, h(X)), preserving the sibling h(X).
	outer := term.App("f", term.App("g", x), term.App("h", x))
	sites := collectSites(outer)

	var gSite site
	found := false
	for _, s := range sites {
		if !s.subterm.IsVar() && s.subterm.Sym == "g" {
			gSite = s
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a site at the g(X) subterm")
	}
	rebuilt := gSite.plug(term.App("c"))
	want := term.App("f", term.App("c"), term.App("h", x))
	if !term.StructuralEqual(rebuilt, want) {
		t.Errorf("plug rebuilt %s, want %s", rebuilt, want)
	}
}
