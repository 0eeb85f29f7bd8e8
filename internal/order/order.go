// Package order implements the three comparison primitives spec.md §4.4
// builds term orderings from: a position-based precedence, a
// lexicographic extension, a multiset extension, and the recursive path
// ordering (RPO) with per-symbol status that composes them into a
// reduction ordering for completion.
package order

import "github.com/knuthbendix/kbcomplete/internal/term"

// Comparison is the result of comparing two terms or symbols: one of <,
// =, >, or incomparable.
type Comparison int

const (
	// Lt means the left operand is strictly smaller.
	Lt Comparison = iota
	// Eq means the operands are equivalent under the ordering.
	Eq
	// Gt means the left operand is strictly greater.
	Gt
	// Incomparable means neither operand dominates the other.
	Incomparable
)

func (c Comparison) String() string {
	switch c {
	case Lt:
		return "<"
	case Eq:
		return "="
	case Gt:
		return ">"
	default:
		return "incomparable"
	}
}

// CompareFunc is an element comparator, used to instantiate Lex/Mul over
// the symbol or term domain.
type CompareFunc func(a, b *term.Term) Comparison

// Precedence is a total order on the function symbols appearing in the
// input, represented as a sequence where earlier entries are smaller
// (spec.md §3).
type Precedence []term.Symbol

// index returns the position of s in the precedence by a linear scan; a
// Precedence value is typically small (one per completion attempt).
func (p Precedence) index(s term.Symbol) (int, bool) {
	for i, sym := range p {
		if sym == s {
			return i, true
		}
	}
	return -1, false
}

// Compare implements the precedence primitive: a position-based total
// order on the given symbol list. Symbols absent from the precedence are
// incomparable to everything, including each other.
func (p Precedence) Compare(f, g term.Symbol) Comparison {
	if f == g {
		return Eq
	}
	i, iok := p.index(f)
	j, jok := p.index(g)
	if !iok || !jok {
		return Incomparable
	}
	if i < j {
		return Lt
	}
	return Gt
}

// Status selects the extension used when comparing the arguments of two
// terms sharing a top symbol under RPO.
type Status int

const (
	// StatusLex compares argument sequences lexicographically, left to
	// right.
	StatusLex Status = iota
	// StatusMul compares argument sequences as multisets (Dershowitz
	// ordering).
	StatusMul
)

// Stats maps each function symbol to the status used for it. Symbols
// absent from Stats default to StatusLex.
type Stats map[term.Symbol]Status

func (s Stats) statusOf(sym term.Symbol) Status {
	if st, ok := s[sym]; ok {
		return st
	}
	return StatusLex
}
