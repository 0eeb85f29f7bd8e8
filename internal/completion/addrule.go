package completion

import (
	"github.com/knuthbendix/kbcomplete/internal/budget"
	"github.com/knuthbendix/kbcomplete/internal/kberrors"
	"github.com/knuthbendix/kbcomplete/internal/rewrite"
	"github.com/knuthbendix/kbcomplete/internal/term"
)

// tagged remembers which bucket, S or R, a rule came from so interreduction
// can put its tightened (or unchanged) form back where it belongs; rho
// itself always lands in S.
type tagged struct {
	rule  *rewrite.Rule
	fromS bool
}

// addRule installs rho and restores the invariants of spec.md §4.6's
// add_rule: every existing rule whose LHS becomes reducible by rho alone is
// demoted back into E as a normalized equation; every rule that survives
// has its RHS renormalized against the tightened rule set (the survivors
// plus rho). rho is appended to S once interreduction settles.
func addRule(rho *rewrite.Rule, st *state, b *budget.Budget) error {
	combined := make([]tagged, 0, len(st.S)+len(st.R))
	for _, r := range st.S {
		combined = append(combined, tagged{rule: r, fromS: true})
	}
	for _, r := range st.R {
		combined = append(combined, tagged{rule: r, fromS: false})
	}

	single := rewrite.TRS{rho}
	var survivors, demoted []tagged
	for _, c := range combined {
		if !b.Tick() {
			return kberrors.BudgetExhausted("add_rule")
		}
		reducedLHS, err := rewrite.NormalForm(single, c.rule.LHS, b)
		if err != nil {
			return err
		}
		if term.StructuralEqual(reducedLHS, c.rule.LHS) {
			survivors = append(survivors, c)
		} else {
			demoted = append(demoted, c)
		}
	}

	full := make(rewrite.TRS, 0, len(survivors)+1)
	for _, s := range survivors {
		full = append(full, s.rule)
	}
	full = append(full, rho)

	var newS, newR rewrite.TRS
	for _, s := range survivors {
		tightenedRHS, err := rewrite.NormalForm(full, s.rule.RHS, b)
		if err != nil {
			return err
		}
		kept := s.rule
		if !term.StructuralEqual(tightenedRHS, s.rule.RHS) {
			kept, err = rewrite.NewRule(s.rule.LHS, tightenedRHS)
			if err != nil {
				return err
			}
		}
		if s.fromS {
			newS = append(newS, kept)
		} else {
			newR = append(newR, kept)
		}
	}

	for _, d := range demoted {
		newLHS, err := rewrite.NormalForm(full, d.rule.LHS, b)
		if err != nil {
			return err
		}
		newRHS, err := rewrite.NormalForm(full, d.rule.RHS, b)
		if err != nil {
			return err
		}
		st.E = append(st.E, term.Equation{Left: newLHS, Right: newRHS})
	}

	newS = append(newS, rho)
	st.S = newS
	st.R = newR
	return nil
}
