package unify

import "github.com/knuthbendix/kbcomplete/internal/term"

// Matches computes one-sided matching (subsumption): it succeeds iff there
// is a binding sigma with sigma(pattern) structurally equal to target, and
// it leaves pattern's variables instantiated accordingly. Only pattern
// variables may bind; variables occurring in target are treated as opaque
// constants, never unified with pattern variables or each other.
func Matches(pattern, target *term.Term) (term.Binding, bool) {
	b := term.Binding{}
	if !matchRec(pattern, target, b) {
		return nil, false
	}
	return b, true
}

func matchRec(pattern, target *term.Term, b term.Binding) bool {
	if pattern.IsVar() {
		if existing, ok := b[pattern.V]; ok {
			return term.StructuralEqual(existing, target)
		}
		b[pattern.V] = target
		return true
	}
	if target.IsVar() {
		// A non-variable pattern node can never match an opaque target
		// variable.
		return false
	}
	if pattern.Sym != target.Sym || len(pattern.Args) != len(target.Args) {
		return false
	}
	for i := range pattern.Args {
		if !matchRec(pattern.Args[i], target.Args[i], b) {
			return false
		}
	}
	return true
}
