package snapshot

import (
	"encoding/json"
	"testing"

	"github.com/knuthbendix/kbcomplete/internal/rewrite"
	"github.com/knuthbendix/kbcomplete/internal/term"
)

func TestMarshalLoadEquationsRoundTrip(t *testing.T) {
	x, y := term.NewVar("X"), term.NewVar("Y")
	equations := []term.Equation{
		{Left: term.App("f", x, y), Right: term.App("g", y, x)},
	}

	data, err := json.Marshal(MarshalEquations(equations))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	got, err := LoadEquations(data)
	if err != nil {
		t.Fatalf("LoadEquations: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 equation, got %d", len(got))
	}
	if got[0].Left.Sym != "f" || got[0].Right.Sym != "g" {
		t.Errorf("Left/Right = %s / %s, want shapes f(..)/g(..)", got[0].Left, got[0].Right)
	}
	if got[0].Left.Args[0].V != got[0].Right.Args[1].V {
		t.Errorf("round trip lost variable sharing between the two sides")
	}
}

func TestMarshalLoadTRSRoundTrip(t *testing.T) {
	x := term.NewVar("X")
	rule, err := rewrite.NewRule(term.App("f", x), term.App("g", x))
	if err != nil {
		t.Fatalf("NewRule: %v", err)
	}

	data, err := json.Marshal(MarshalTRS(rewrite.TRS{rule}))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	got, err := LoadTRS(data)
	if err != nil {
		t.Fatalf("LoadTRS: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(got))
	}
	if got[0].LHS.Sym != "f" || got[0].RHS.Sym != "g" {
		t.Errorf("rule = %s, want f(...) ==> g(...)", got[0])
	}
}

func TestLoadRejectsUnreadableFormat(t *testing.T) {
	doc := Document{Format: "2.0.0"}
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if _, err := LoadEquations(data); err == nil {
		t.Fatalf("expected an error for a format outside the readable range")
	}
}

func TestLoadRejectsMissingFormat(t *testing.T) {
	if _, err := LoadEquations([]byte(`{"equations":[]}`)); err == nil {
		t.Fatalf("expected an error for a missing format field")
	}
}
