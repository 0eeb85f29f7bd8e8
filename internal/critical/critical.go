// Package critical enumerates critical pairs: the overlaps between a
// rule's LHS (at non-variable positions) and any rule's LHS, reconstructed
// as equations fed back into completion (spec.md §4.5).
package critical

import (
	"github.com/knuthbendix/kbcomplete/internal/budget"
	"github.com/knuthbendix/kbcomplete/internal/kberrors"
	"github.com/knuthbendix/kbcomplete/internal/rewrite"
	"github.com/knuthbendix/kbcomplete/internal/term"
	"github.com/knuthbendix/kbcomplete/internal/unify"
)

// frame is one step of a reversed context path: the symbol at a node and
// the siblings to the left and right of the child being descended into.
// Preserved verbatim from the source's approach so that rebuilding a
// replaced subterm never re-walks the whole term from the root.
type frame struct {
	sym   term.Symbol
	left  []*term.Term
	right []*term.Term
}

// site is one non-variable position in a term: the subterm found there,
// plus the root-to-position frame path needed to plug a replacement back
// in.
type site struct {
	subterm *term.Term
	frames  []frame
}

// plug rebuilds the full term with the site's subterm replaced by repl,
// folding the frame path outward from the position to the root.
func (s site) plug(repl *term.Term) *term.Term {
	cur := repl
	for i := len(s.frames) - 1; i >= 0; i-- {
		f := s.frames[i]
		args := make([]*term.Term, len(f.left)+1+len(f.right))
		copy(args, f.left)
		args[len(f.left)] = cur
		copy(args[len(f.left)+1:], f.right)
		cur = term.App(f.sym, args...)
	}
	return cur
}

// collectSites walks t depth-first and returns a site for every
// non-variable position, including the root. Positions occupied by a
// variable are skipped entirely and never descended into — a variable has
// no children anyway, so this exactly reproduces the source's `var(T) ->
// []` rule (design notes §9) rather than a special case bolted on top.
func collectSites(t *term.Term) []site {
	var sites []site
	var walk func(node *term.Term, frames []frame)
	walk = func(node *term.Term, frames []frame) {
		if node.IsVar() {
			return
		}
		sites = append(sites, site{subterm: node, frames: append([]frame(nil), frames...)})
		for i, arg := range node.Args {
			f := frame{
				sym:   node.Sym,
				left:  append([]*term.Term(nil), node.Args[:i]...),
				right: append([]*term.Term(nil), node.Args[i+1:]...),
			}
			walk(arg, append(frames, f))
		}
	}
	walk(t, nil)
	return sites
}

// Pairs computes CP(outer, inner): for every rule l1==>r1 in outer, every
// non-variable position p in l1, and every rule l2==>r2 in inner, unify
// l1|p with l2 (each side independently fresh-renamed) and, on success,
// emit u = sigma(r1), v = sigma(l1[r2]_p). Self-overlap is included
// automatically when outer and inner share a rule, since each side is
// renamed independently regardless of pointer identity.
func Pairs(outer, inner rewrite.TRS, b *budget.Budget) ([]term.Equation, error) {
	var out []term.Equation
	for _, r1 := range outer {
		f1 := r1.Fresh()
		sites := collectSites(f1.LHS)
		for _, r2 := range inner {
			f2 := r2.Fresh()
			for _, s := range sites {
				if !b.Tick() {
					return nil, kberrors.BudgetExhausted("critical_pairs")
				}
				binding, ok := unify.Unify(s.subterm, f2.LHS)
				if !ok {
					continue
				}
				u := term.Substitute(f1.RHS, binding)
				replaced := s.plug(f2.RHS)
				v := term.Substitute(replaced, binding)
				out = append(out, term.Equation{Left: u, Right: v})
			}
		}
	}
	return out, nil
}

// All computes CP(rules, rules), the full critical-pair set of a TRS
// (spec.md §6's `critical_pairs(rules) -> equations`).
func All(rules rewrite.TRS, b *budget.Budget) ([]term.Equation, error) {
	return Pairs(rules, rules, b)
}
