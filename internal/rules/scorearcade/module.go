// Package scorearcade drives single-player score sessions. Score reports
// accumulate in the session state; the payout happens only through an
// explicit end call, which the engine gates behind anti-cheat challenge
// verification.
package scorearcade

import (
	"encoding/json"
	"fmt"

	"github.com/nolanpeet/stakehouse/internal/models"
	"github.com/nolanpeet/stakehouse/internal/rules"
)

const (
	// ActionReport records an accepted cumulative score
	ActionReport = rules.ActionType("report")

	// ActionEnd finishes the run and releases the escrowed stake
	ActionEnd = rules.ActionType("end")
)

// state is the module's data, stored on the session
type state struct {
	// Score is the accepted cumulative score
	Score int64 `json:"score"`
}

// Module implements rules.Module for score arcade sessions
type Module struct{}

// New creates a new score arcade module
func New() *Module {
	return &Module{}
}

// Kind reports which session kind this module drives
func (m *Module) Kind() models.SessionKind {
	return models.KindScoreArcade
}

// TurnBased reports that a solo run has no turns
func (m *Module) TurnBased() bool {
	return false
}

// Init starts the run at zero
func (m *Module) Init(s *models.Session) error {
	return saveState(s, &state{})
}

// LegalActions lists the arcade moves
func (m *Module) LegalActions(s *models.Session) []rules.Action {
	return []rules.Action{
		{Type: ActionReport},
		{Type: ActionEnd},
	}
}

// Apply records a score or ends the run. The engine validates scores with
// anti-cheat before they reach this module; Apply only refuses regressions.
func (m *Module) Apply(s *models.Session, userID string, a rules.Action) (*rules.StepResult, error) {
	p := s.Participant(userID)
	if p == nil || p.Status != models.ParticipantStatusActive {
		return nil, rules.ErrNotParticipant
	}

	st, err := loadState(s)
	if err != nil {
		return nil, err
	}

	switch a.Type {
	case ActionReport:
		if a.Amount < st.Score {
			return nil, rules.ErrIllegalAction
		}
		st.Score = a.Amount
		if err := saveState(s, st); err != nil {
			return nil, err
		}
		return &rules.StepResult{Detail: fmt.Sprintf("score %d", st.Score)}, nil

	case ActionEnd:
		return &rules.StepResult{
			Outcome: &models.Outcome{
				Kind:    models.OutcomeWinnerTakesAll,
				Winners: []string{userID},
				Detail:  fmt.Sprintf("run ended at score %d", st.Score),
			},
		}, nil

	default:
		return nil, rules.ErrIllegalAction
	}
}

// OnTimeout declines to pay an abandoned run; the engine cancels with
// refund
func (m *Module) OnTimeout(s *models.Session) (*rules.StepResult, error) {
	return &rules.StepResult{}, nil
}

// Score returns the accepted cumulative score for a session view
func Score(s *models.Session) int64 {
	st, err := loadState(s)
	if err != nil {
		return 0
	}
	return st.Score
}

func loadState(s *models.Session) (*state, error) {
	if len(s.RuleState) == 0 {
		return nil, rules.ErrCorruptState
	}
	var st state
	if err := json.Unmarshal(s.RuleState, &st); err != nil {
		return nil, rules.ErrCorruptState
	}
	return &st, nil
}

func saveState(s *models.Session, st *state) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to encode rule state: %w", err)
	}
	s.RuleState = data
	return nil
}
