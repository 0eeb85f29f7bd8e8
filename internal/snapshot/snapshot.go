// Package snapshot persists an equation set or a completed TRS to JSON.
// The core explicitly owns no persisted state (spec.md §6); this is the
// layer above it that does, following the teacher's package-manager
// lockfile's format-versioned JSON convention
// (internal/packagemanager/lockfile.go).
package snapshot

import (
	"encoding/json"
	"fmt"

	semver "github.com/Masterminds/semver/v3"

	"github.com/knuthbendix/kbcomplete/internal/rewrite"
	"github.com/knuthbendix/kbcomplete/internal/term"
)

// formatVersion is the semver this package writes; readable reports the
// range of versions this package's Load can still parse, mirroring
// lockfile.go's own parseConstraint/semverConstraintForExact pairing.
const formatVersion = "1.0.0"

var readable = mustConstraint(">=1.0.0, <2.0.0")

func mustConstraint(expr string) *semver.Constraints {
	c, err := semver.NewConstraint(expr)
	if err != nil {
		panic(err)
	}
	return c
}

// TermDoc is the JSON-safe mirror of *term.Term. Term itself is not
// JSON-safe: variables carry pointer identity, not a name that round-trips
// uniquely. The Var field reconstructs sharing within a single document
// without claiming any meaning across documents. Exported so
// internal/rpcserver can encode a single term in a request/response body
// without duplicating this shape.
type TermDoc struct {
	Var  string     `json:"var,omitempty"`
	Sym  string     `json:"sym,omitempty"`
	Args []*TermDoc `json:"args,omitempty"`
}

// EncodeTerm renders t as a TermDoc, assigning fresh variable IDs into ids.
// Terms encoded with the same ids map keep their shared variables shared;
// the caller chooses that scope (a whole document, or one rule).
func EncodeTerm(t *term.Term, ids map[*term.Var]string, next *int) *TermDoc {
	if t.IsVar() {
		id, ok := ids[t.V]
		if !ok {
			id = fmt.Sprintf("v%d", *next)
			*next++
			ids[t.V] = id
		}
		return &TermDoc{Var: id}
	}
	args := make([]*TermDoc, len(t.Args))
	for i, a := range t.Args {
		args[i] = EncodeTerm(a, ids, next)
	}
	return &TermDoc{Sym: string(t.Sym), Args: args}
}

// DecodeTerm reconstructs a *term.Term from a TermDoc, resolving variable
// IDs against vars: repeated IDs decoded with the same vars map become the
// same *term.Var. The caller chooses that scope (one equation, one rule,
// or a whole request).
func DecodeTerm(d *TermDoc, vars map[string]*term.Term) *term.Term {
	if d.Var != "" {
		v, ok := vars[d.Var]
		if !ok {
			v = term.NewVar(d.Var)
			vars[d.Var] = v
		}
		return v
	}
	args := make([]*term.Term, len(d.Args))
	for i, a := range d.Args {
		args[i] = DecodeTerm(a, vars)
	}
	return term.App(term.Symbol(d.Sym), args...)
}

// equationDoc and ruleDoc are the JSON-safe mirrors of term.Equation and
// rewrite.Rule, each a pair of TermDocs whose two sides share one
// variable ID namespace.
type equationDoc struct {
	Left  *TermDoc `json:"left"`
	Right *TermDoc `json:"right"`
}

type ruleDoc struct {
	LHS *TermDoc `json:"lhs"`
	RHS *TermDoc `json:"rhs"`
}

// Document is the on-disk shape: a format version plus whichever of
// Equations or Rules this snapshot carries. A snapshot holds one or the
// other, never both — equations before completion, rules after.
type Document struct {
	Format    string        `json:"format"`
	Equations []equationDoc `json:"equations,omitempty"`
	Rules     []ruleDoc     `json:"rules,omitempty"`
}

// MarshalEquations renders an equation set as a Document ready for
// json.Marshal.
func MarshalEquations(equations []term.Equation) Document {
	ids := make(map[*term.Var]string)
	next := 0
	docs := make([]equationDoc, len(equations))
	for i, eq := range equations {
		docs[i] = equationDoc{
			Left:  EncodeTerm(eq.Left, ids, &next),
			Right: EncodeTerm(eq.Right, ids, &next),
		}
	}
	return Document{Format: formatVersion, Equations: docs}
}

// MarshalTRS renders a TRS as a Document ready for json.Marshal. Each rule
// gets an independent variable namespace, matching the fact that rules in
// a TRS share no variable scope with one another.
func MarshalTRS(rules rewrite.TRS) Document {
	docs := make([]ruleDoc, len(rules))
	for i, r := range rules {
		ids := make(map[*term.Var]string)
		next := 0
		docs[i] = ruleDoc{
			LHS: EncodeTerm(r.LHS, ids, &next),
			RHS: EncodeTerm(r.RHS, ids, &next),
		}
	}
	return Document{Format: formatVersion, Rules: docs}
}

// checkFormat validates doc's format string against the range this
// package's Load functions can read.
func checkFormat(doc Document) error {
	if doc.Format == "" {
		return fmt.Errorf("snapshot: missing format version")
	}
	v, err := semver.NewVersion(doc.Format)
	if err != nil {
		return fmt.Errorf("snapshot: invalid format version %q: %w", doc.Format, err)
	}
	if !readable.Check(v) {
		return fmt.Errorf("snapshot: format version %s is not in the readable range %s", doc.Format, readable)
	}
	return nil
}

// LoadEquations parses a Document previously produced by MarshalEquations.
func LoadEquations(data []byte) ([]term.Equation, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	if err := checkFormat(doc); err != nil {
		return nil, err
	}
	out := make([]term.Equation, len(doc.Equations))
	for i, d := range doc.Equations {
		vars := make(map[string]*term.Term)
		out[i] = term.Equation{
			Left:  DecodeTerm(d.Left, vars),
			Right: DecodeTerm(d.Right, vars),
		}
	}
	return out, nil
}

// LoadTRS parses a Document previously produced by MarshalTRS.
func LoadTRS(data []byte) (rewrite.TRS, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	if err := checkFormat(doc); err != nil {
		return nil, err
	}
	out := make(rewrite.TRS, len(doc.Rules))
	for i, d := range doc.Rules {
		vars := make(map[string]*term.Term)
		lhs := DecodeTerm(d.LHS, vars)
		rhs := DecodeTerm(d.RHS, vars)
		rule, err := rewrite.NewRule(lhs, rhs)
		if err != nil {
			return nil, err
		}
		out[i] = rule
	}
	return out, nil
}
