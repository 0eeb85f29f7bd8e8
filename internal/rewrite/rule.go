// Package rewrite implements root rewriting by first-matching rule and
// innermost normal-form computation over a TRS (spec.md §4.3).
package rewrite

import (
	"fmt"

	"github.com/knuthbendix/kbcomplete/internal/kberrors"
	"github.com/knuthbendix/kbcomplete/internal/term"
)

// Rule is an oriented rewrite rule L ==> R. Every variable in R must occur
// in L, and L must not be a bare variable; NewRule enforces both
// (spec.md §3, the MalformedRule error).
type Rule struct {
	LHS *term.Term
	RHS *term.Term
}

// String renders the rule for diagnostics.
func (r *Rule) String() string {
	return fmt.Sprintf("%s ==> %s", r.LHS, r.RHS)
}

// NewRule validates and builds a rule. It is the only constructor: every
// *Rule in the system has been checked against spec.md §3's shape
// invariants.
func NewRule(lhs, rhs *term.Term) (*Rule, error) {
	if lhs.IsVar() {
		return nil, kberrors.MalformedRule("rule LHS must not be a bare variable", lhs, rhs)
	}
	lhsVars := make(map[*term.Var]bool)
	for _, v := range term.VariablesOf(lhs) {
		lhsVars[v] = true
	}
	for _, v := range term.VariablesOf(rhs) {
		if !lhsVars[v] {
			return nil, kberrors.MalformedRule("every RHS variable must occur in the LHS", lhs, rhs)
		}
	}
	return &Rule{LHS: lhs, RHS: rhs}, nil
}

// TRS is a finite ordered sequence of rules. Order matters only for
// rewriting (first-match policy); confluence of a completed TRS makes the
// final normal form independent of that order.
type TRS []*Rule

// Fresh returns a copy of the rule with L and R independently renamed
// apart from every other live use, preserving the variables shared
// between L and R.
func (r *Rule) Fresh() *Rule {
	renamed := term.FreshRenameAll(r.LHS, r.RHS)
	return &Rule{LHS: renamed[0], RHS: renamed[1]}
}
