package rpcserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/knuthbendix/kbcomplete/internal/budget"
	"github.com/knuthbendix/kbcomplete/internal/completion"
	"github.com/knuthbendix/kbcomplete/internal/kberrors"
	"github.com/knuthbendix/kbcomplete/internal/order"
	"github.com/knuthbendix/kbcomplete/internal/rewrite"
	"github.com/knuthbendix/kbcomplete/internal/snapshot"
	"github.com/knuthbendix/kbcomplete/internal/term"
)

// completeRequest is the body of POST /complete: an equation set plus the
// ordering to run completion under.
type completeRequest struct {
	Equations  []equationWire    `json:"equations"`
	Precedence []string          `json:"precedence"`
	Statuses   map[string]string `json:"statuses,omitempty"`
	Steps      int               `json:"steps,omitempty"`
}

type equationWire struct {
	Left  *snapshot.TermDoc `json:"left"`
	Right *snapshot.TermDoc `json:"right"`
}

type completeResponse struct {
	Rules []ruleWire `json:"rules,omitempty"`
	Error string     `json:"error,omitempty"`
}

type ruleWire struct {
	LHS *snapshot.TermDoc `json:"lhs"`
	RHS *snapshot.TermDoc `json:"rhs"`
}

func decodeOrdering(precedence []string, statuses map[string]string) order.Ordering {
	prec := make(order.Precedence, len(precedence))
	for i, s := range precedence {
		prec[i] = term.Symbol(s)
	}
	stats := make(order.Stats, len(statuses))
	for sym, s := range statuses {
		if s == "mul" {
			stats[term.Symbol(sym)] = order.StatusMul
		} else {
			stats[term.Symbol(sym)] = order.StatusLex
		}
	}
	return order.Ordering{Prec: prec, Stats: stats}
}

// handleComplete runs Knuth-Bendix completion on the request's equations
// under its ordering and returns the resulting rule set.
func (s *Server) handleComplete(w http.ResponseWriter, r *http.Request) {
	var req completeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return
	}

	vars := make(map[string]*term.Term)
	equations := make([]term.Equation, len(req.Equations))
	for i, eq := range req.Equations {
		equations[i] = term.Equation{
			Left:  snapshot.DecodeTerm(eq.Left, vars),
			Right: snapshot.DecodeTerm(eq.Right, vars),
		}
	}

	ord := decodeOrdering(req.Precedence, req.Statuses)
	steps := req.Steps
	if steps <= 0 {
		steps = s.defaultSteps
	}

	rules, err := completion.Complete(equations, ord, budget.WithSteps(steps))
	if err != nil {
		writeJSONResult(w, completeResponse{Error: err.Error()}, statusForError(err))
		return
	}

	resp := completeResponse{Rules: make([]ruleWire, len(rules))}
	for i, rule := range rules {
		ids := make(map[*term.Var]string)
		next := 0
		resp.Rules[i] = ruleWire{
			LHS: snapshot.EncodeTerm(rule.LHS, ids, &next),
			RHS: snapshot.EncodeTerm(rule.RHS, ids, &next),
		}
	}
	writeJSONResult(w, resp, http.StatusOK)
}

// normalFormRequest is the body of POST /normal-form: a rule set plus the
// term to reduce.
type normalFormRequest struct {
	Rules []ruleWire        `json:"rules"`
	Term  *snapshot.TermDoc `json:"term"`
	Steps int               `json:"steps,omitempty"`
}

type normalFormResponse struct {
	Term  *snapshot.TermDoc `json:"term,omitempty"`
	Error string            `json:"error,omitempty"`
}

// handleNormalForm reduces the request's term under its rule set to
// normal form.
func (s *Server) handleNormalForm(w http.ResponseWriter, r *http.Request) {
	var req normalFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return
	}

	rules := make(rewrite.TRS, len(req.Rules))
	for i, rw := range req.Rules {
		vars := make(map[string]*term.Term)
		rule, err := rewrite.NewRule(snapshot.DecodeTerm(rw.LHS, vars), snapshot.DecodeTerm(rw.RHS, vars))
		if err != nil {
			writeJSONResult(w, normalFormResponse{Error: err.Error()}, statusForError(err))
			return
		}
		rules[i] = rule
	}

	termVars := make(map[string]*term.Term)
	input := snapshot.DecodeTerm(req.Term, termVars)

	steps := req.Steps
	if steps <= 0 {
		steps = s.defaultSteps
	}

	result, err := rewrite.NormalForm(rules, input, budget.WithSteps(steps))
	if err != nil {
		writeJSONResult(w, normalFormResponse{Error: err.Error()}, statusForError(err))
		return
	}

	ids := make(map[*term.Var]string)
	next := 0
	writeJSONResult(w, normalFormResponse{Term: snapshot.EncodeTerm(result, ids, &next)}, http.StatusOK)
}

func statusForError(err error) int {
	if errors.Is(err, kberrors.ErrBudgetExhausted) {
		return http.StatusRequestTimeout
	}
	return http.StatusUnprocessableEntity
}

func writeJSONResult(w http.ResponseWriter, v interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, err error) {
	writeJSONResult(w, map[string]string{"error": err.Error()}, status)
}
