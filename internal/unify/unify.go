// Package unify implements most-general unification with occurs check and
// one-sided matching (subsumption) over internal/term terms.
package unify

import "github.com/knuthbendix/kbcomplete/internal/term"

// Unify computes a most general unifier of s and t with occurs check
// enabled. On success it returns a binding such that substituting it into
// both s and t yields structurally equal terms; the occurs check is
// mandatory (spec: without it critical-pair generation would admit
// infinite terms and corrupt completion).
func Unify(s, t *term.Term) (term.Binding, bool) {
	raw := term.Binding{}
	if !unify(s, t, raw) {
		return nil, false
	}
	return finalize(raw), true
}

func unify(s, t *term.Term, raw term.Binding) bool {
	s = resolve(s, raw)
	t = resolve(t, raw)

	if s.IsVar() && t.IsVar() {
		if s.V == t.V {
			return true
		}
		return bind(s.V, t, raw)
	}
	if s.IsVar() {
		return bind(s.V, t, raw)
	}
	if t.IsVar() {
		return bind(t.V, s, raw)
	}
	if s.Sym != t.Sym || len(s.Args) != len(t.Args) {
		return false
	}
	for i := range s.Args {
		if !unify(s.Args[i], t.Args[i], raw) {
			return false
		}
	}
	return true
}

// resolve chases a chain of variable-to-variable bindings down to either an
// unbound variable or a non-variable term, without descending into
// structure (lazy resolution, mirroring the teacher's
// `ApplySubstitutions`/union-find style chasing).
func resolve(t *term.Term, raw term.Binding) *term.Term {
	for t.IsVar() {
		repl, ok := raw[t.V]
		if !ok {
			return t
		}
		t = repl
	}
	return t
}

func bind(v *term.Var, t *term.Term, raw term.Binding) bool {
	if occursUnder(v, t, raw) {
		return false
	}
	raw[v] = t
	return true
}

// occursUnder is the occurs check: it resolves through raw as it descends,
// so a variable bound (possibly transitively) to a term containing v is
// correctly rejected even if v does not occur in t's surface syntax.
func occursUnder(v *term.Var, t *term.Term, raw term.Binding) bool {
	t = resolve(t, raw)
	if t.IsVar() {
		return t.V == v
	}
	for _, a := range t.Args {
		if occursUnder(v, a, raw) {
			return true
		}
	}
	return false
}

// finalize collapses the lazily-chained raw binding into a solved form
// where every bound variable maps directly to a binding-free term, so that
// term.Substitute (which does not itself chase chains) applies it
// correctly in one pass.
func finalize(raw term.Binding) term.Binding {
	out := make(term.Binding, len(raw))
	for v := range raw {
		out[v] = deepResolve(&term.Term{Kind: term.KindVar, V: v}, raw)
	}
	return out
}

func deepResolve(t *term.Term, raw term.Binding) *term.Term {
	t = resolve(t, raw)
	if t.IsVar() || len(t.Args) == 0 {
		return t
	}
	args := make([]*term.Term, len(t.Args))
	changed := false
	for i, a := range t.Args {
		na := deepResolve(a, raw)
		args[i] = na
		if na != a {
			changed = true
		}
	}
	if !changed {
		return t
	}
	return term.App(t.Sym, args...)
}
