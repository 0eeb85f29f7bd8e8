package order

import "github.com/knuthbendix/kbcomplete/internal/term"

// Lex lifts an element ordering over sequences of equal length: the first
// non-equal position decides. Sequences of unequal length are
// incomparable, matching spec.md §4.4's definition over "sequences of
// equal length" (same-symbol applications always have matching arity).
func Lex(cmp CompareFunc, xs, ys []*term.Term) Comparison {
	if len(xs) != len(ys) {
		return Incomparable
	}
	for i := range xs {
		c := cmp(xs[i], ys[i])
		if c != Eq {
			return c
		}
	}
	return Eq
}
