package main

import (
	"fmt"
	"strings"
	"unicode"

	kbcomplete "github.com/knuthbendix/kbcomplete"
)

// readEquations parses a tiny S-expression syntax into equations. It is
// explicitly not a general-purpose term-syntax parser, and lives entirely
// here in cmd/, never in the public facade or internal/term (spec.md's
// core excludes term-syntax parsing entirely).
//
// Grammar: one top-level "(= LHS RHS)" form per equation, LHS/RHS each
// either an identifier or "(sym ARG...)". Identifiers starting with an
// uppercase letter are variables, scoped to the single equation they
// occur in; anything else is a nullary function symbol.
//
//	(= (* (* X Y) Z) (* X (* Y Z)))
//	(= (* (i X) X) e)
func readEquations(src string) ([]kbcomplete.Equation, error) {
	toks := tokenize(src)
	p := &parser{toks: toks}

	var out []kbcomplete.Equation
	for p.pos < len(p.toks) {
		eq, err := p.equation()
		if err != nil {
			return nil, err
		}
		out = append(out, eq)
	}
	return out, nil
}

func tokenize(src string) []string {
	var toks []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			toks = append(toks, cur.String())
			cur.Reset()
		}
	}
	for _, r := range src {
		switch {
		case r == '(' || r == ')':
			flush()
			toks = append(toks, string(r))
		case unicode.IsSpace(r):
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return toks
}

type parser struct {
	toks []string
	pos  int
}

func (p *parser) peek() (string, bool) {
	if p.pos >= len(p.toks) {
		return "", false
	}
	return p.toks[p.pos], true
}

func (p *parser) next() (string, error) {
	tok, ok := p.peek()
	if !ok {
		return "", fmt.Errorf("readEquations: unexpected end of input")
	}
	p.pos++
	return tok, nil
}

func (p *parser) expect(want string) error {
	got, err := p.next()
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("readEquations: expected %q, got %q", want, got)
	}
	return nil
}

func (p *parser) equation() (kbcomplete.Equation, error) {
	if err := p.expect("("); err != nil {
		return kbcomplete.Equation{}, err
	}
	if err := p.expect("="); err != nil {
		return kbcomplete.Equation{}, err
	}
	vars := make(map[string]*kbcomplete.Term)
	left, err := p.term(vars)
	if err != nil {
		return kbcomplete.Equation{}, err
	}
	right, err := p.term(vars)
	if err != nil {
		return kbcomplete.Equation{}, err
	}
	if err := p.expect(")"); err != nil {
		return kbcomplete.Equation{}, err
	}
	return kbcomplete.Equation{Left: left, Right: right}, nil
}

func (p *parser) term(vars map[string]*kbcomplete.Term) (*kbcomplete.Term, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if tok == "(" {
		head, err := p.next()
		if err != nil {
			return nil, err
		}
		var args []*kbcomplete.Term
		for {
			next, ok := p.peek()
			if !ok {
				return nil, fmt.Errorf("readEquations: unterminated application starting with %q", head)
			}
			if next == ")" {
				p.pos++
				break
			}
			arg, err := p.term(vars)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
		return kbcomplete.App(kbcomplete.Symbol(head), args...), nil
	}
	if tok == ")" {
		return nil, fmt.Errorf("readEquations: unexpected %q", tok)
	}
	if isVariableName(tok) {
		if v, ok := vars[tok]; ok {
			return v, nil
		}
		v := kbcomplete.NewVar(tok)
		vars[tok] = v
		return v, nil
	}
	return kbcomplete.App(kbcomplete.Symbol(tok)), nil
}

func isVariableName(tok string) bool {
	r := []rune(tok)
	return len(r) > 0 && unicode.IsUpper(r[0])
}
