// Package completion implements the Knuth-Bendix completion loop: orient
// equations into rules under a reduction ordering, interreduce to keep the
// rule set tight, generate critical pairs, and iterate to a fixed point
// (spec.md §4.6).
package completion

import (
	"github.com/knuthbendix/kbcomplete/internal/rewrite"
	"github.com/knuthbendix/kbcomplete/internal/term"
)

// state is the (E, S, R) triple spec.md §4.6 threads through completion: E
// is the worklist of unprocessed equations, S holds oriented rules not yet
// used to generate critical pairs, R holds rules that have already
// produced their critical pairs against the rest of the set.
type state struct {
	E []term.Equation
	S rewrite.TRS
	R rewrite.TRS
}
