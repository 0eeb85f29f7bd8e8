package term

import "testing"

func TestStructuralEqual(t *testing.T) {
	x := NewVar("X")
	a := App("f", x, App("a"))
	b := App("f", x, App("a"))
	if !StructuralEqual(a, b) {
		t.Errorf("expected structurally equal terms")
	}

	y := NewVar("Y")
	c := App("f", y, App("a"))
	if StructuralEqual(a, c) {
		t.Errorf("expected distinct variables to break structural equality")
	}
}

func TestFreshRenamePreservesSharing(t *testing.T) {
	x := NewVar("X")
	orig := App("f", x, x)

	renamed := FreshRename(orig)
	if renamed.Args[0].V != renamed.Args[1].V {
		t.Fatalf("fresh rename did not preserve shared occurrences of X")
	}
	if renamed.Args[0].V == x.V {
		t.Fatalf("fresh rename reused the original variable identity")
	}
	if !StructuralEqual(orig, App("f", x, x)) {
		t.Fatalf("fresh rename mutated the original term")
	}
}

func TestFreshRenameAllSharesMapping(t *testing.T) {
	x := NewVar("X")
	lhs := App("f", x)
	rhs := x

	renamed := FreshRenameAll(lhs, rhs)
	renamedLHS, renamedRHS := renamed[0], renamed[1]
	if renamedLHS.Args[0].V == x.V {
		t.Fatalf("expected a fresh variable")
	}
	if renamedLHS.Args[0].V != renamedRHS.V {
		t.Fatalf("expected shared variable X to map to the same fresh variable across both terms")
	}
}

func TestSubstitute(t *testing.T) {
	x := NewVar("X")
	y := NewVar("Y")
	pattern := App("f", x, y)

	binding := Binding{x.V: App("a"), y.V: App("b")}
	got := Substitute(pattern, binding)
	want := App("f", App("a"), App("b"))
	if !StructuralEqual(got, want) {
		t.Errorf("Substitute(%s, ...) = %s, want %s", pattern, got, want)
	}

	// Unbound variables pass through untouched.
	partial := Substitute(App("g", x), Binding{y.V: App("c")})
	if !StructuralEqual(partial, App("g", x)) {
		t.Errorf("expected unbound variable to pass through, got %s", partial)
	}
}

func TestVariablesOf(t *testing.T) {
	x := NewVar("X")
	y := NewVar("Y")
	term := App("f", x, App("g", y, x))
	vars := VariablesOf(term)
	if len(vars) != 2 {
		t.Fatalf("expected 2 distinct variables, got %d", len(vars))
	}
}

func TestOccurs(t *testing.T) {
	x := NewVar("X")
	inner := App("f", x)
	if !Occurs(x.V, inner) {
		t.Errorf("expected X to occur in f(X)")
	}
	y := NewVar("Y")
	if Occurs(y.V, inner) {
		t.Errorf("did not expect Y to occur in f(X)")
	}
}

func TestSizeCountsNodes(t *testing.T) {
	x := NewVar("X")
	tm := App("f", x, App("a"))
	// f(X, a) -> f + X + a = 3 nodes.
	if got := Size(tm); got != 3 {
		t.Errorf("Size = %d, want 3", got)
	}
}
