package order

import "github.com/knuthbendix/kbcomplete/internal/term"

// Mul is the Dershowitz multiset extension of cmp. Let X = xs \ ys, Y = ys
// \ xs be the multiset differences (using cmp's equality). If both are
// empty the multisets are equivalent. Otherwise xs > ys iff every element
// of Y is strictly dominated by some element of X, and symmetrically for
// ys > xs; if neither holds the multisets are incomparable.
func Mul(cmp CompareFunc, xs, ys []*term.Term) Comparison {
	x, y := multisetDiff(cmp, xs, ys)
	if len(x) == 0 && len(y) == 0 {
		return Eq
	}
	if dominatesAll(cmp, x, y) {
		return Gt
	}
	if dominatesAll(cmp, y, x) {
		return Lt
	}
	return Incomparable
}

// multisetDiff cancels matching pairs (cmp == Eq) one at a time, leaving
// the unmatched remainders of xs and ys respectively.
func multisetDiff(cmp CompareFunc, xs, ys []*term.Term) (x, y []*term.Term) {
	remaining := append([]*term.Term(nil), ys...)
	for _, xi := range xs {
		idx := -1
		for i, yi := range remaining {
			if cmp(xi, yi) == Eq {
				idx = i
				break
			}
		}
		if idx >= 0 {
			remaining = append(remaining[:idx], remaining[idx+1:]...)
		} else {
			x = append(x, xi)
		}
	}
	y = remaining
	return
}

// dominatesAll reports whether every element of small is strictly
// dominated (cmp == Gt, from big's perspective) by some element of big.
// An empty small is vacuously dominated, matching the standard multiset
// order's base case.
func dominatesAll(cmp CompareFunc, big, small []*term.Term) bool {
	for _, s := range small {
		found := false
		for _, b := range big {
			if cmp(b, s) == Gt {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
