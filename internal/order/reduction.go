package order

import "github.com/knuthbendix/kbcomplete/internal/term"

// Ordering bundles a precedence and a status map into the reduction
// ordering completion compares with: RPO parameterized by both, exactly
// the "cmp" spec.md §4.6 threads through orient.
type Ordering struct {
	Prec  Precedence
	Stats Stats
}

// Compare applies RPO under o's precedence and statuses.
func (o Ordering) Compare(s, t *term.Term) Comparison {
	return RPO(o.Prec, o.Stats, s, t)
}
