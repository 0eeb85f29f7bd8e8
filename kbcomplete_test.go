package kbcomplete

import "testing"

func TestFacadeNormalFormAndCompletion(t *testing.T) {
	x := NewVar("X")
	eq := Equation{Left: App("f", x), Right: App("g", x)}

	ord := Ordering{Prec: Precedence{"g", "f"}, Stats: Stats{}}
	rules, err := Completion([]Equation{eq}, ord, WithSteps(1000))
	if err != nil {
		t.Fatalf("Completion: %v", err)
	}
	if len(rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(rules))
	}

	a := App("a")
	got, err := NormalForm(rules, App("f", a), WithSteps(100))
	if err != nil {
		t.Fatalf("NormalForm: %v", err)
	}
	if got.String() != "g(a)" {
		t.Errorf("NormalForm(f(a)) = %s, want g(a)", got)
	}
}

func TestFacadeEquationsTRSSearches(t *testing.T) {
	x := NewVar("X")
	eq := Equation{Left: App("f", x), Right: App("g", x)}

	rules, won, err := EquationsTRS([]Equation{eq}, Symbols(App("f", App("g", x))), SearchOptions{
		NewBudget:   func() *Budget { return WithSteps(500) },
		Concurrency: 2,
	})
	if err != nil {
		t.Fatalf("EquationsTRS: %v", err)
	}
	if len(rules) == 0 {
		t.Fatalf("expected a non-empty TRS")
	}
	if len(won.Prec) == 0 {
		t.Errorf("expected the winning ordering to carry a precedence")
	}
}

func TestFacadeCandidatesIsFinite(t *testing.T) {
	n := 0
	for range Candidates([]Symbol{"f", "g", "h"}) {
		n++
	}
	// 3! permutations * 2^3 status assignments.
	if n != 6*8 {
		t.Fatalf("expected 48 candidates, got %d", n)
	}
}

func TestFacadeCriticalPairsOfEmptyTRS(t *testing.T) {
	pairs, err := CriticalPairs(nil, Unlimited())
	if err != nil {
		t.Fatalf("CriticalPairs: %v", err)
	}
	if len(pairs) != 0 {
		t.Errorf("expected no critical pairs from an empty TRS, got %v", pairs)
	}
}
