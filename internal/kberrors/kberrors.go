// Package kberrors defines the error taxonomy of spec.md §7: Unorientable,
// BudgetExhausted, and MalformedRule, following the teacher's
// internal/errors category+code+context convention
// (internal/errors/standard.go's StandardError).
package kberrors

import (
	"errors"
	"fmt"
)

// Category classifies a CompletionError the way the teacher's
// ErrorCategory classifies a StandardError.
type Category string

const (
	// CategoryUnorientable marks an equation that reduces to two distinct
	// terms neither greater than the other under the active ordering.
	// Recoverable by retrying completion with another ordering.
	CategoryUnorientable Category = "UNORIENTABLE"
	// CategoryBudgetExhausted marks a step or time bound hit mid-run. The
	// partial state is discarded; nothing is returned to the caller.
	CategoryBudgetExhausted Category = "BUDGET_EXHAUSTED"
	// CategoryMalformed marks an attempt to construct a rule with a
	// variable LHS, or a RHS variable absent from the LHS. Fatal for the
	// run: it indicates a programmer error upstream, not a property of the
	// input equations.
	CategoryMalformed Category = "MALFORMED_RULE"
)

// CompletionError is the error type returned by the completion engine.
// Context carries the offending terms/equations (rendered via their
// String methods) for diagnostics.
type CompletionError struct {
	Category Category
	Code     string
	Message  string
	Context  map[string]interface{}
}

// Error implements the error interface.
func (e *CompletionError) Error() string {
	return fmt.Sprintf("[%s:%s] %s", e.Category, e.Code, e.Message)
}

// Is allows errors.Is(err, ErrUnorientable) / ErrBudgetExhausted /
// ErrMalformedRule to classify a *CompletionError by category without the
// caller needing to type-assert.
func (e *CompletionError) Is(target error) bool {
	switch target {
	case ErrUnorientable:
		return e.Category == CategoryUnorientable
	case ErrBudgetExhausted:
		return e.Category == CategoryBudgetExhausted
	case ErrMalformedRule:
		return e.Category == CategoryMalformed
	}
	return false
}

// Sentinel values for errors.Is comparisons; they are never themselves
// returned, only matched against via CompletionError.Is.
var (
	ErrUnorientable    = errors.New("unorientable equation")
	ErrBudgetExhausted = errors.New("budget exhausted")
	ErrMalformedRule   = errors.New("malformed rule")
)

// Unorientable builds a CompletionError for an equation that could not be
// oriented under the active reduction ordering.
func Unorientable(s, t fmt.Stringer) *CompletionError {
	return &CompletionError{
		Category: CategoryUnorientable,
		Code:     "NO_REDUCTION_ORDER",
		Message:  fmt.Sprintf("neither %s > %s nor %s > %s under the active ordering", s, t, t, s),
		Context:  map[string]interface{}{"lhs": s.String(), "rhs": t.String()},
	}
}

// BudgetExhausted builds a CompletionError reporting where the step or
// time bound was hit.
func BudgetExhausted(phase string) *CompletionError {
	return &CompletionError{
		Category: CategoryBudgetExhausted,
		Code:     "STEP_OR_TIME_BOUND",
		Message:  fmt.Sprintf("completion budget exhausted during %s", phase),
		Context:  map[string]interface{}{"phase": phase},
	}
}

// MalformedRule builds a CompletionError for a rule whose LHS is a bare
// variable, or whose RHS mentions a variable absent from the LHS.
func MalformedRule(reason string, lhs, rhs fmt.Stringer) *CompletionError {
	return &CompletionError{
		Category: CategoryMalformed,
		Code:     "INVALID_RULE_SHAPE",
		Message:  reason,
		Context:  map[string]interface{}{"lhs": lhs.String(), "rhs": rhs.String()},
	}
}
