package term

import "fmt"

// Equation is an unordered pair {s, t} of terms sharing a variable scope
// (spec.md §3). It is unordered in meaning; Left/Right is just a concrete
// representation, not a claimed direction.
type Equation struct {
	Left  *Term
	Right *Term
}

// String renders the equation for diagnostics.
func (e Equation) String() string {
	return fmt.Sprintf("%s = %s", e.Left, e.Right)
}

// Fresh returns a copy of the equation with both sides renamed apart from
// every other live use, preserving variables shared between the two
// sides.
func (e Equation) Fresh() Equation {
	renamed := FreshRenameAll(e.Left, e.Right)
	return Equation{Left: renamed[0], Right: renamed[1]}
}
