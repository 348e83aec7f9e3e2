// Package boardrace drives two-lap dice races. Pieces move by die roll
// around a circular track; landing exactly on an opponent's square sends
// that piece back to the start of its current lap. First piece to complete
// both laps wins the whole pot.
package boardrace

import (
	"encoding/json"
	"fmt"

	"github.com/nolanpeet/stakehouse/internal/dice"
	"github.com/nolanpeet/stakehouse/internal/models"
	"github.com/nolanpeet/stakehouse/internal/rules"
)

const (
	// ActionRoll advances the acting piece by one die roll
	ActionRoll = rules.ActionType("roll")

	// TrackLength is the number of squares in one lap
	TrackLength = 24

	// Laps a piece must complete to finish
	Laps = 2

	dieSides = 6
)

// pieceState is one racer's position
type pieceState struct {
	// Square is the current square within the lap, 0 is the start
	Square int `json:"square"`

	// Lap counts completed laps
	Lap int `json:"lap"`
}

// state is the module's shared data, stored on the session
type state struct {
	// Pieces maps user ID to position
	Pieces map[string]*pieceState `json:"pieces"`
}

// Config contains the dependencies for the board race module
type Config struct {
	// Roller supplies the die
	Roller dice.Roller
}

// Module implements rules.Module for board race sessions
type Module struct {
	roller dice.Roller
}

// New creates a new board race module
func New(cfg *Config) (*Module, error) {
	if cfg == nil || cfg.Roller == nil {
		return nil, fmt.Errorf("roller cannot be nil")
	}

	return &Module{roller: cfg.Roller}, nil
}

// Kind reports which session kind this module drives
func (m *Module) Kind() models.SessionKind {
	return models.KindBoardRace
}

// TurnBased reports that races enforce round-robin turns
func (m *Module) TurnBased() bool {
	return true
}

// Init places every piece at the start of lap zero
func (m *Module) Init(s *models.Session) error {
	st := &state{Pieces: make(map[string]*pieceState)}
	for _, p := range s.ActiveParticipants() {
		st.Pieces[p.UserID] = &pieceState{}
	}
	return saveState(s, st)
}

// LegalActions lists the only move a racer ever has
func (m *Module) LegalActions(s *models.Session) []rules.Action {
	return []rules.Action{{Type: ActionRoll}}
}

// Apply rolls and moves the acting piece, resolving captures and the finish
func (m *Module) Apply(s *models.Session, userID string, a rules.Action) (*rules.StepResult, error) {
	p := s.Participant(userID)
	if p == nil || p.Status != models.ParticipantStatusActive {
		return nil, rules.ErrNotParticipant
	}

	if a.Type != ActionRoll {
		return nil, rules.ErrIllegalAction
	}

	st, err := loadState(s)
	if err != nil {
		return nil, err
	}

	piece, ok := st.Pieces[userID]
	if !ok {
		return nil, rules.ErrCorruptState
	}

	roll := m.roller.Roll(dieSides)
	piece.Square += roll
	detail := fmt.Sprintf("%s rolled %d", userID, roll)

	if piece.Square >= TrackLength {
		piece.Square -= TrackLength
		piece.Lap++
	}

	if piece.Lap >= Laps {
		if err := saveState(s, st); err != nil {
			return nil, err
		}
		return &rules.StepResult{
			Outcome: &models.Outcome{
				Kind:    models.OutcomeWinnerTakesAll,
				Winners: []string{userID},
				Detail:  "finished the race",
			},
			Detail: detail,
		}, nil
	}

	// Landing on an occupied square captures it; the captured piece
	// restarts its current lap
	for _, other := range s.ActiveParticipants() {
		if other.UserID == userID {
			continue
		}
		otherPiece := st.Pieces[other.UserID]
		if otherPiece != nil && otherPiece.Lap == piece.Lap && otherPiece.Square == piece.Square {
			otherPiece.Square = 0
			detail = fmt.Sprintf("%s captured %s", userID, other.UserID)
		}
	}

	if err := saveState(s, st); err != nil {
		return nil, err
	}

	return &rules.StepResult{AdvanceTurn: true, Detail: detail}, nil
}

// OnTimeout awards the race to the current leader; a dead-even race is a
// draw and everyone takes their own stake back
func (m *Module) OnTimeout(s *models.Session) (*rules.StepResult, error) {
	st, err := loadState(s)
	if err != nil {
		return nil, err
	}

	var leaders []string
	best := -1
	for _, p := range s.ActiveParticipants() {
		piece := st.Pieces[p.UserID]
		if piece == nil {
			continue
		}
		progress := piece.Lap*TrackLength + piece.Square
		switch {
		case progress > best:
			best = progress
			leaders = []string{p.UserID}
		case progress == best:
			leaders = append(leaders, p.UserID)
		}
	}

	if len(leaders) == 1 {
		return &rules.StepResult{
			Outcome: &models.Outcome{
				Kind:    models.OutcomeWinnerTakesAll,
				Winners: leaders,
				Detail:  "leader at timeout",
			},
		}, nil
	}

	return &rules.StepResult{
		Outcome: &models.Outcome{
			Kind:   models.OutcomeDraw,
			Detail: "tied at timeout",
		},
	}, nil
}

// Positions returns every piece's progress for a session view
func Positions(s *models.Session) map[string]int {
	st, err := loadState(s)
	if err != nil {
		return nil
	}
	positions := make(map[string]int, len(st.Pieces))
	for userID, piece := range st.Pieces {
		positions[userID] = piece.Lap*TrackLength + piece.Square
	}
	return positions
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
