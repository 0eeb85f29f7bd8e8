// Package search drives the ordering-candidate enumeration spec.md §6
// assigns to equations_trs: try candidate (precedence, statuses) pairs
// against the same equation set until one lets completion converge.
package search

import (
	"github.com/knuthbendix/kbcomplete/internal/order"
	"github.com/knuthbendix/kbcomplete/internal/term"
)

// Candidates returns an iterator over every (precedence, statuses) pair
// derivable from symbols: every permutation of symbols as a precedence,
// crossed with every Lex/Mul assignment of status to each symbol
// (spec.md §9: "Represent this as an explicit iterator producing
// (precedence, statuses) candidates"). The iterator is ordered but not
// meaningfully prioritized; callers after a cheap answer should bound the
// search themselves (for example by breaking out of the range loop)
// rather than rely on iteration order.
func Candidates(symbols []term.Symbol) func(func(order.Ordering) bool) {
	return func(yield func(order.Ordering) bool) {
		perm := append([]term.Symbol(nil), symbols...)
		permute(perm, len(perm), func(p []term.Symbol) bool {
			prec := append(order.Precedence(nil), p...)
			done := false
			eachStatus(p, func(stats order.Stats) bool {
				if !yield(order.Ordering{Prec: prec, Stats: stats}) {
					done = true
					return false
				}
				return true
			})
			return !done
		})
	}
}

// permute runs fn on every permutation of syms[:k] in place (Heap's
// algorithm), stopping early if fn returns false.
func permute(syms []term.Symbol, k int, fn func([]term.Symbol) bool) bool {
	if k <= 1 {
		return fn(syms)
	}
	for i := 0; i < k; i++ {
		if !permute(syms, k-1, fn) {
			return false
		}
		if k%2 == 0 {
			syms[i], syms[k-1] = syms[k-1], syms[i]
		} else {
			syms[0], syms[k-1] = syms[k-1], syms[0]
		}
	}
	return true
}

// eachStatus runs fn on every assignment of StatusLex/StatusMul to the
// symbols in syms, stopping early if fn returns false.
func eachStatus(syms []term.Symbol, fn func(order.Stats) bool) bool {
	n := len(syms)
	total := 1 << n
	for mask := 0; mask < total; mask++ {
		stats := make(order.Stats, n)
		for i, sym := range syms {
			if mask&(1<<i) != 0 {
				stats[sym] = order.StatusMul
			} else {
				stats[sym] = order.StatusLex
			}
		}
		if !fn(stats) {
			return false
		}
	}
	return true
}
