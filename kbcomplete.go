// Package kbcomplete implements Knuth-Bendix completion: turning a set of
// equations into a confluent, terminating term-rewriting system under a
// chosen reduction ordering (spec.md §§1-9). The algorithms themselves
// live under internal/; this package re-exports the public types and the
// four external operations (normal_form, critical_pairs, completion,
// equations_trs).
package kbcomplete

import (
	"github.com/knuthbendix/kbcomplete/internal/budget"
	"github.com/knuthbendix/kbcomplete/internal/completion"
	"github.com/knuthbendix/kbcomplete/internal/critical"
	"github.com/knuthbendix/kbcomplete/internal/order"
	"github.com/knuthbendix/kbcomplete/internal/rewrite"
	"github.com/knuthbendix/kbcomplete/internal/search"
	"github.com/knuthbendix/kbcomplete/internal/term"
)

// Term, Symbol, Var, Equation, Rule, and TRS are aliases for the internal
// types so callers never need to import internal/term or internal/rewrite
// directly to build the values these operations consume.
type (
	Term     = term.Term
	Symbol   = term.Symbol
	Var      = term.Var
	Equation = term.Equation
	Rule     = rewrite.Rule
	TRS      = rewrite.TRS

	Precedence = order.Precedence
	Stats      = order.Stats
	Status     = order.Status
	Ordering   = order.Ordering

	Budget = budget.Budget
)

// Status values for per-symbol argument comparison under RPO.
const (
	StatusLex = order.StatusLex
	StatusMul = order.StatusMul
)

// NewVar allocates a fresh variable.
func NewVar(name string) *Term { return term.NewVar(name) }

// App builds an application of sym to args; zero args is a constant.
func App(sym Symbol, args ...*Term) *Term { return term.App(sym, args...) }

// Symbols returns the distinct function symbols occurring in t, in
// first-occurrence order.
func Symbols(t *Term) []Symbol { return term.Symbols(t) }

// NewRule validates and builds a rewrite rule L ==> R.
func NewRule(lhs, rhs *Term) (*Rule, error) { return rewrite.NewRule(lhs, rhs) }

// WithSteps returns a Budget that exhausts after n more steps.
func WithSteps(n int) *Budget { return budget.WithSteps(n) }

// Unlimited returns a Budget with no step cap and no deadline.
func Unlimited() *Budget { return budget.Unlimited() }

// NormalForm computes the normal form of t under rules (spec.md §6, op 1).
func NormalForm(rules TRS, t *Term, b *Budget) (*Term, error) {
	return rewrite.NormalForm(rules, t, b)
}

// CriticalPairs computes the full critical-pair set of rules (spec.md §6,
// op 2).
func CriticalPairs(rules TRS, b *Budget) ([]Equation, error) {
	return critical.All(rules, b)
}

// Completion runs Knuth-Bendix completion on equations under ord,
// returning the resulting convergent TRS (spec.md §6, op 3).
func Completion(equations []Equation, ord Ordering, b *Budget) (TRS, error) {
	return completion.Complete(equations, ord, b)
}

// SearchOptions configures EquationsTRS's ordering search.
type SearchOptions struct {
	// NewBudget is called once per ordering candidate tried. Nil defaults
	// to a step-bounded budget.
	NewBudget func() *Budget
	// Concurrency bounds how many candidates run at once; below 1 is
	// treated as 1.
	Concurrency int
	// Verbose logs each candidate's outcome via the standard logger.
	Verbose bool
}

// EquationsTRS tries candidate (precedence, statuses) orderings over
// symbols against equations until one converges, returning the TRS and
// the winning ordering (spec.md §6, op 4).
func EquationsTRS(equations []Equation, symbols []Symbol, opts SearchOptions) (TRS, Ordering, error) {
	d := search.NewDriver(search.Options{NewBudget: opts.NewBudget, Concurrency: opts.Concurrency})
	d.SetVerbose(opts.Verbose)
	return d.EquationsTRS(equations, symbols)
}

// Candidates iterates every (precedence, statuses) ordering derivable from
// symbols, for callers that want to drive the search manually instead of
// through EquationsTRS's built-in enumeration (spec.md §9).
func Candidates(symbols []Symbol) func(func(Ordering) bool) {
	return search.Candidates(symbols)
}
