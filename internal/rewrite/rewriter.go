package rewrite

import (
	"github.com/knuthbendix/kbcomplete/internal/budget"
	"github.com/knuthbendix/kbcomplete/internal/kberrors"
	"github.com/knuthbendix/kbcomplete/internal/term"
	"github.com/knuthbendix/kbcomplete/internal/unify"
)

// Step tries each rule in order and returns the correspondingly
// instantiated RHS of the first whose LHS (after fresh renaming) matches
// t at the root. It never reorders rules and never looks past the first
// match: completion's confluence guarantee depends on this exact
// first-match policy being stable within a single NormalForm call
// (spec.md §9 / design notes). ok is false, with a nil error, when no
// rule applies — "no match" is an ordinary outcome, not an error.
func Step(rules TRS, t *term.Term, b *budget.Budget) (result *term.Term, ok bool, err error) {
	for _, rule := range rules {
		if !b.Tick() {
			return nil, false, kberrors.BudgetExhausted("step")
		}
		fresh := rule.Fresh()
		if binding, matched := unify.Matches(fresh.LHS, t); matched {
			return term.Substitute(fresh.RHS, binding), true, nil
		}
	}
	return nil, false, nil
}

// NormalForm computes a term in normal form under rules via the innermost
// strategy: recursively normalize each argument, then attempt root
// rewriting; if that succeeds, recurse on the result. Variables are
// normal forms of themselves. Termination is only guaranteed when rules
// came from a successful completion run; on arbitrary rules the budget is
// the only thing standing between this and an infinite recursion
// (spec.md §7, NoNormalForm).
func NormalForm(rules TRS, t *term.Term, b *budget.Budget) (*term.Term, error) {
	if t.IsVar() {
		return t, nil
	}

	newArgs := make([]*term.Term, len(t.Args))
	changed := false
	for i, a := range t.Args {
		na, err := NormalForm(rules, a, b)
		if err != nil {
			return nil, err
		}
		newArgs[i] = na
		if na != a {
			changed = true
		}
	}

	cur := t
	if changed {
		cur = term.App(t.Sym, newArgs...)
	}

	next, ok, err := Step(rules, cur, b)
	if err != nil {
		return nil, err
	}
	if !ok {
		return cur, nil
	}
	return NormalForm(rules, next, b)
}

// Reducible reports whether t can be rewritten at the root by rules,
// without returning the result. Only the root is tried; subterms are not
// searched.
func Reducible(rules TRS, t *term.Term, b *budget.Budget) (bool, error) {
	_, ok, err := Step(rules, t, b)
	return ok, err
}
