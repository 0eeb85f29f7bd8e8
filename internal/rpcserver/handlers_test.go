package rpcserver

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/knuthbendix/kbcomplete/internal/snapshot"
)

func newTestServer(t *testing.T) *Server {
	s, err := New(Options{Addr: "127.0.0.1:0", DefaultSteps: 1000})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestHandleCompleteOrientsSimpleEquation(t *testing.T) {
	s := newTestServer(t)

	body := completeRequest{
		Equations: []equationWire{{
			Left:  &snapshot.TermDoc{Sym: "f", Args: []*snapshot.TermDoc{{Var: "X"}}},
			Right: &snapshot.TermDoc{Sym: "g", Args: []*snapshot.TermDoc{{Var: "X"}}},
		}},
		Precedence: []string{"g", "f"},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	req := httptest.NewRequest("POST", "/complete", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	s.handleComplete(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp completeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if resp.Error != "" {
		t.Fatalf("unexpected error: %s", resp.Error)
	}
	if len(resp.Rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(resp.Rules))
	}
}

func TestHandleCompleteReportsUnorientable(t *testing.T) {
	s := newTestServer(t)

	body := completeRequest{
		Equations: []equationWire{{
			Left:  &snapshot.TermDoc{Sym: "f", Args: []*snapshot.TermDoc{{Var: "X"}, {Var: "Y"}}},
			Right: &snapshot.TermDoc{Sym: "f", Args: []*snapshot.TermDoc{{Var: "Y"}, {Var: "X"}}},
		}},
		Precedence: []string{"f"},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	req := httptest.NewRequest("POST", "/complete", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	s.handleComplete(rec, req)

	var resp completeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if resp.Error == "" {
		t.Fatalf("expected an error for unorientable commutativity")
	}
}

func TestHandleNormalFormReducesTerm(t *testing.T) {
	s := newTestServer(t)

	body := normalFormRequest{
		Rules: []ruleWire{{
			LHS: &snapshot.TermDoc{Sym: "f", Args: []*snapshot.TermDoc{{Var: "X"}}},
			RHS: &snapshot.TermDoc{Sym: "g", Args: []*snapshot.TermDoc{{Var: "X"}}},
		}},
		Term: &snapshot.TermDoc{Sym: "f", Args: []*snapshot.TermDoc{{Sym: "a"}}},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	req := httptest.NewRequest("POST", "/normal-form", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	s.handleNormalForm(rec, req)

	var resp normalFormResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if resp.Error != "" {
		t.Fatalf("unexpected error: %s", resp.Error)
	}
	if resp.Term == nil || resp.Term.Sym != "g" {
		t.Fatalf("expected normal form rooted at g, got %v", resp.Term)
	}
}
