package term

// Binding is a finite map from variables to terms, following the teacher's
// substitution-map convention (internal/types/inference.go's
// `substitutions map[string]*Type`), keyed here by variable identity rather
// than by name since variables are not named.
type Binding map[*Var]*Term

// Lookup returns the term bound to v, if any.
func (b Binding) Lookup(v *Var) (*Term, bool) {
	t, ok := b[v]
	return t, ok
}

// Substitute applies binding to t, replacing every bound variable by its
// image and leaving unbound variables and the tree shape otherwise
// untouched. It does not chase chains of bindings; callers that build up a
// binding incrementally should keep it fully resolved (as unify does).
func Substitute(t *Term, binding Binding) *Term {
	if len(binding) == 0 {
		return t
	}
	if t.IsVar() {
		if repl, ok := binding[t.V]; ok {
			return repl
		}
		return t
	}
	if len(t.Args) == 0 {
		return t
	}
	newArgs := make([]*Term, len(t.Args))
	changed := false
	for i, a := range t.Args {
		na := Substitute(a, binding)
		newArgs[i] = na
		if na != a {
			changed = true
		}
	}
	if !changed {
		return t
	}
	return &Term{Kind: KindApp, Sym: t.Sym, Args: newArgs}
}

// FreshRename returns a copy of t in which every variable has been replaced
// by a newly allocated variable, preserving shared occurrences of the same
// variable within t. Used whenever a rule or equation is instantiated so
// that distinct uses never alias variable identity (spec.md §4.1).
func FreshRename(t *Term) *Term {
	mapping := make(map[*Var]*Term)
	return freshRename(t, mapping)
}

func freshRename(t *Term, mapping map[*Var]*Term) *Term {
	if t.IsVar() {
		if fresh, ok := mapping[t.V]; ok {
			return fresh
		}
		fresh := NewVar(t.V.Name)
		mapping[t.V] = fresh
		return fresh
	}
	if len(t.Args) == 0 {
		return t
	}
	newArgs := make([]*Term, len(t.Args))
	for i, a := range t.Args {
		newArgs[i] = freshRename(a, mapping)
	}
	return &Term{Kind: KindApp, Sym: t.Sym, Args: newArgs}
}

// FreshRenameAll renames every term in ts using a single shared mapping, so
// that variables shared across the slice (e.g. the two sides of a rule)
// remain shared after renaming.
func FreshRenameAll(ts ...*Term) []*Term {
	mapping := make(map[*Var]*Term)
	out := make([]*Term, len(ts))
	for i, t := range ts {
		out[i] = freshRename(t, mapping)
	}
	return out
}
