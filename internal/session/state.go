/*
Package session owns the per-session state of the form: the submitted profile,
the plan result and the one-shot notice flags. Each browser session gets its
own Controller; nothing here is global.
*/
package session

import (
	"time"

	"github.com/NomanAbdullah13/Demo-for-ai-plan-generation/internal/fitness"
)

// Phase is the position of a session in the submit/generate cycle.
type Phase int

const (
	PhaseEmpty Phase = iota
	PhaseSubmitting
	PhaseGenerated
)

func (p Phase) String() string {
	switch p {
	case PhaseSubmitting:
		return "submitting"
	case PhaseGenerated:
		return "generated"
	default:
		return "empty"
	}
}

// MarshalText renders the phase by name in JSON.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// PlanResult holds either the generated text or the error message, never both.
type PlanResult struct {
	GeneratedText string `json:"generated_text,omitempty"`
	ErrorMessage  string `json:"error_message,omitempty"`
}

// IsZero reports whether no result has been recorded.
func (r PlanResult) IsZero() bool {
	return r.GeneratedText == "" && r.ErrorMessage == ""
}

// Failed reports whether the last generation attempt failed.
func (r PlanResult) Failed() bool {
	return r.ErrorMessage != ""
}

// SessionState is a snapshot of one session.
type SessionState struct {
	Phase         Phase                `json:"phase"`
	Profile       *fitness.UserProfile `json:"profile"`
	Result        PlanResult           `json:"result"`
	PlanGenerated bool                 `json:"plan_generated"`
	ResetForm     bool                 `json:"reset_form"`
	GenerateNew   bool                 `json:"generate_new"`
	GeneratedAt   time.Time            `json:"generated_at,omitzero"`
}

// Notices are the transient flags handed to one render and then cleared.
type Notices struct {
	Reset       bool
	GenerateNew bool
}

// Any reports whether a notice is pending.
func (n Notices) Any() bool {
	return n.Reset || n.GenerateNew
}
