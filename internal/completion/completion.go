package completion

import (
	"github.com/knuthbendix/kbcomplete/internal/budget"
	"github.com/knuthbendix/kbcomplete/internal/critical"
	"github.com/knuthbendix/kbcomplete/internal/order"
	"github.com/knuthbendix/kbcomplete/internal/rewrite"
	"github.com/knuthbendix/kbcomplete/internal/term"
)

// Complete runs Knuth-Bendix completion to a fixed point: drain E via
// orient, pick the smallest remaining rule in S, fold its critical pairs
// against R and itself back into a fresh E, move it into R, and repeat
// until S is empty. Returns the convergent TRS, kberrors.ErrUnorientable
// if ord can't decide some equation, or kberrors.ErrBudgetExhausted if b
// runs out first (spec.md §4.6).
func Complete(equations []term.Equation, ord order.Ordering, b *budget.Budget) (rewrite.TRS, error) {
	st := &state{E: append([]term.Equation(nil), equations...)}

	for {
		for len(st.E) > 0 {
			if err := orient(ord, st, b); err != nil {
				return nil, err
			}
		}
		if len(st.S) == 0 {
			return st.R, nil
		}

		i := smallestRule(st.S)
		rho := st.S[i]
		st.S = append(append(rewrite.TRS(nil), st.S[:i]...), st.S[i+1:]...)

		fromRho := rewrite.TRS{rho}
		withR, err := critical.Pairs(fromRho, st.R, b)
		if err != nil {
			return nil, err
		}
		withRReversed, err := critical.Pairs(st.R, fromRho, b)
		if err != nil {
			return nil, err
		}
		selfOverlap, err := critical.Pairs(fromRho, fromRho, b)
		if err != nil {
			return nil, err
		}

		st.E = append(append(append(st.E, withR...), withRReversed...), selfOverlap...)
		st.R = append(st.R, rho)
	}
}

// smallestRule returns the index of the smallest rule in rules, by
// combined LHS+RHS term size. Ties break toward the earliest such rule, so
// a given (equations, ordering) input always drives completion through the
// same sequence of choices.
func smallestRule(rules rewrite.TRS) int {
	best := 0
	bestSize := term.Size(rules[0].LHS) + term.Size(rules[0].RHS)
	for i := 1; i < len(rules); i++ {
		sz := term.Size(rules[i].LHS) + term.Size(rules[i].RHS)
		if sz < bestSize {
			best, bestSize = i, sz
		}
	}
	return best
}
