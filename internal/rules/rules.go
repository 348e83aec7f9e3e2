// Package rules defines the capability interface the match engine uses to
// drive kind-specific play. Modules interpret only their own state blob on
// the session; the engine routes actions and reacts to the returned
// outcome.
package rules

import (
	"github.com/nolanpeet/stakehouse/internal/models"
)

// ActionType identifies what a participant is trying to do. The legal set
// is module-specific.
type ActionType string

// Action is one participant move
type Action struct {
	// Type selects the move
	Type ActionType `json:"type"`

	// Amount is the move's numeric argument, where the type takes one
	Amount int64 `json:"amount,omitempty"`

	// Target is the move's subject participant, where the type takes one
	Target string `json:"target,omitempty"`
}

// StepResult is what a module reports back after applying an action
type StepResult struct {
	// Outcome is non-nil when the session reached a terminal condition
	Outcome *models.Outcome

	// AdvanceTurn tells a turn-based engine to move to the next active
	// participant
	AdvanceTurn bool

	// Detail is a human-readable note about what happened
	Detail string
}

// Module is the fixed capability interface every match family implements
type Module interface {
	// Kind reports which session kind this module drives
	Kind() models.SessionKind

	// TurnBased reports whether the engine should enforce round-robin turns
	TurnBased() bool

	// Init deals initial state into the session when play begins.
	// Participant order is frozen by the time Init runs.
	Init(s *models.Session) error

	// LegalActions lists the moves currently open to the acting participant
	LegalActions(s *models.Session) []Action

	// Apply executes one move for a participant. A rejected move returns an
	// error and mutates nothing.
	Apply(s *models.Session, userID string, a Action) (*StepResult, error)

	// OnTimeout resolves the session when its idle timer fires; a nil
	// outcome means the engine should cancel with refund instead
	OnTimeout(s *models.Session) (*StepResult, error)
}

// RuleError is a typed error for rule module operations
type RuleError string

// Error implements the error interface
func (e RuleError) Error() string {
	return string(e)
}

const (
	// ErrIllegalAction is returned when a move is not legal in the current
	// module state
	ErrIllegalAction = RuleError("action is not legal in the current state")

	// ErrNotParticipant is returned when the acting user is not an active
	// participant
	ErrNotParticipant = RuleError("user is not an active participant")

	// ErrCorruptState is returned when the session's rule state cannot be
	// decoded
	ErrCorruptState = RuleError("rule state is corrupt")
)
