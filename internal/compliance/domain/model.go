package domain

import "strings"

// Scope tags the area a question belongs to. It is accepted and logged but
// does not change how a question is answered.
type Scope string

const (
	ScopeGeneral    Scope = "general"
	ScopeAudit      Scope = "audit"
	ScopeCompliance Scope = "compliance"
)

// Known reports whether s is one of the documented scopes.
func (s Scope) Known() bool {
	switch s {
	case ScopeGeneral, ScopeAudit, ScopeCompliance:
		return true
	}
	return false
}

// Query is the input of a compliance question.
type Query struct {
	Question      string
	ContextFilter Scope
}

// NewQuery trims the question and applies the default scope.
func NewQuery(question, contextFilter string) (Query, error) {
	q := Query{
		Question:      strings.TrimSpace(question),
		ContextFilter: Scope(strings.TrimSpace(contextFilter)),
	}
	if q.Question == "" {
		return Query{}, ErrEmptyQuestion
	}
	if q.ContextFilter == "" {
		q.ContextFilter = ScopeGeneral
	}
	return q, nil
}

// Citation references a section of a source document.
type Citation struct {
	Document string `json:"document"`
	Section  string `json:"section"`
}

// Answer is the fixed response shape returned to callers.
type Answer struct {
	Answer          string     `json:"answer"`
	Citations       []Citation `json:"citations"`
	ConfidenceScore float64    `json:"confidence_score"`
}

// Mode records which path produced an answer.
type Mode string

const (
	ModeSimulation Mode = "simulation"
	ModeLive       Mode = "live"
	ModeError      Mode = "error"
)

// Result is what the engine hands back to the boundary layer. Err is set
// only when Mode is ModeError; Answer always carries a renderable body.
type Result struct {
	Answer Answer
	Mode   Mode
	Err    *UpstreamError
}

// Failed reports whether the upstream call failed.
func (r Result) Failed() bool {
	return r.Err != nil
}
