package completion

import (
	"github.com/knuthbendix/kbcomplete/internal/budget"
	"github.com/knuthbendix/kbcomplete/internal/kberrors"
	"github.com/knuthbendix/kbcomplete/internal/order"
	"github.com/knuthbendix/kbcomplete/internal/rewrite"
	"github.com/knuthbendix/kbcomplete/internal/term"
)

// orient pops one equation off st.E, normalizes both sides under the rules
// already installed in R and S, and either discards it (both sides already
// agree), orients it into a new rule via addRule, or reports
// kberrors.ErrUnorientable when the ordering can't tell the two sides
// apart. It processes exactly one equation per call; the caller drains E
// by calling it in a loop (spec.md §4.6).
func orient(ord order.Ordering, st *state, b *budget.Budget) error {
	if len(st.E) == 0 {
		return nil
	}
	eq := st.E[0]
	st.E = st.E[1:]

	installed := make(rewrite.TRS, 0, len(st.R)+len(st.S))
	installed = append(installed, st.R...)
	installed = append(installed, st.S...)

	if !b.Tick() {
		return kberrors.BudgetExhausted("orient")
	}
	s, err := rewrite.NormalForm(installed, eq.Left, b)
	if err != nil {
		return err
	}
	t, err := rewrite.NormalForm(installed, eq.Right, b)
	if err != nil {
		return err
	}
	if term.StructuralEqual(s, t) {
		return nil
	}

	switch ord.Compare(s, t) {
	case order.Gt:
		rule, err := rewrite.NewRule(s, t)
		if err != nil {
			return err
		}
		return addRule(rule, st, b)
	case order.Lt:
		rule, err := rewrite.NewRule(t, s)
		if err != nil {
			return err
		}
		return addRule(rule, st, b)
	default:
		return kberrors.Unorientable(s, t)
	}
}
