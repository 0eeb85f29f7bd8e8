package order

import "github.com/knuthbendix/kbcomplete/internal/term"

// RPO is the recursive path ordering with status (spec.md §4.4): a strict
// partial order on terms, total enough to orient most equations but
// genuinely Incomparable when neither side simplifies the other — which is
// what lets completion detect an unorientable equation instead of picking
// an arbitrary, possibly non-terminating direction.
func RPO(prec Precedence, stats Stats, s, t *term.Term) Comparison {
	// Case 1: t is a variable.
	if t.IsVar() {
		if s.IsVar() {
			if s.V == t.V {
				return Eq
			}
			// Two distinct variables, neither an instance of the other:
			// genuinely incomparable, not "s<t" by an arbitrary
			// left-to-right reading. Treating them as Lt would make the
			// relation non-antisymmetric (rpo(X,Y) and rpo(Y,X) both <),
			// which breaks well-foundedness and silently "orients"
			// equations like commutativity that have no valid direction.
			return Incomparable
		}
		if term.Occurs(t.V, s) {
			return Gt
		}
		return Lt
	}

	// Case 2: s is a variable, t is not.
	if s.IsVar() {
		return Lt
	}

	// Case 3: s = f(...), t = g(...).
	cmp := func(a, b *term.Term) Comparison { return RPO(prec, stats, a, b) }

	// Subterm property, checked symmetrically: if some argument of s
	// already dominates t, s wins outright; if some argument of t
	// dominates s, t wins outright. Only one of these can hold for a
	// well-founded ordering, but both must be checked before falling
	// through to the precedence/extension comparison, or the result
	// stops being antisymmetric.
	for _, si := range s.Args {
		if c := cmp(si, t); c == Gt || c == Eq {
			return Gt
		}
	}
	for _, ti := range t.Args {
		if c := cmp(ti, s); c == Gt || c == Eq {
			return Lt
		}
	}

	switch prec.Compare(s.Sym, t.Sym) {
	case Gt:
		if allLessThan(cmp, t.Args, s) {
			return Gt
		}
		return Incomparable
	case Lt:
		if allLessThan(cmp, s.Args, t) {
			return Lt
		}
		return Incomparable
	case Eq:
		switch extensionCompare(cmp, stats.statusOf(s.Sym), s.Args, t.Args) {
		case Gt:
			if allLessThan(cmp, t.Args, s) {
				return Gt
			}
			return Incomparable
		case Lt:
			if allLessThan(cmp, s.Args, t) {
				return Lt
			}
			return Incomparable
		case Eq:
			return Eq
		default:
			return Incomparable
		}
	default:
		return Incomparable
	}
}

// allLessThan reports whether every term in ts is strictly less than s.
func allLessThan(cmp CompareFunc, ts []*term.Term, s *term.Term) bool {
	for _, tj := range ts {
		if cmp(tj, s) != Lt {
			return false
		}
	}
	return true
}

// extensionCompare compares two argument sequences of a shared symbol
// using the symbol's status-selected extension.
func extensionCompare(cmp CompareFunc, status Status, sArgs, tArgs []*term.Term) Comparison {
	if status == StatusMul {
		return Mul(cmp, sArgs, tArgs)
	}
	return Lex(cmp, sArgs, tArgs)
}
