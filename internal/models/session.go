package models

import (
	"encoding/json"
	"time"
)

// SessionKind identifies which rule module drives a session
type SessionKind string

const (
	// KindBettingRound is a card game with betting rounds and a showdown
	KindBettingRound SessionKind = "betting_round"

	// KindBoardRace is a dice-driven board race between two players
	KindBoardRace SessionKind = "board_race"

	// KindRoleEconomy is a hidden-role resource race with vote eliminations
	KindRoleEconomy SessionKind = "role_economy"

	// KindScoreArcade is a single-player score session gated by anti-cheat
	KindScoreArcade SessionKind = "score_arcade"
)

// SessionPhase represents the current state of a session
type SessionPhase string

const (
	// PhaseWaitingForPlayers indicates a session is waiting for participants to join
	PhaseWaitingForPlayers SessionPhase = "waiting_for_players"

	// PhaseWaitingForStakes indicates the table is filled and stakes are being escrowed
	PhaseWaitingForStakes SessionPhase = "waiting_for_stakes"

	// PhaseActive indicates play is in progress
	PhaseActive SessionPhase = "active"

	// PhaseSettlement indicates a terminal outcome is being paid out
	PhaseSettlement SessionPhase = "settlement"

	// PhaseClosed indicates the session settled and is finished
	PhaseClosed SessionPhase = "closed"

	// PhaseCancelled indicates the session was cancelled and stakes refunded
	PhaseCancelled SessionPhase = "cancelled"
)

// Session represents one active wagering contest
type Session struct {
	// ID is the unique identifier for the session
	ID string

	// Kind selects the rule module that drives this session
	Kind SessionKind

	// Phase is the current state-machine state
	Phase SessionPhase

	// SubPhase is owned by the rule module (e.g. deal, betting, showdown)
	SubPhase string

	// Participants in join order; the order fixes turn rotation
	Participants []*Participant

	// TurnIndex points at the participant whose turn it is
	TurnIndex int

	// Pot is the escrowed total in the smallest credit unit
	Pot int64

	// RuleState is opaque shared data owned by the rule module
	RuleState json.RawMessage

	// Flagged marks the session as suspicious; it can only be cancelled
	Flagged bool

	// Frozen marks a detected accounting defect; no further mutation allowed
	Frozen bool

	// FixedStake, when non-zero, is the exact stake each participant must escrow
	FixedStake int64

	// MinPlayers required before stakes can be collected
	MinPlayers int

	// MaxPlayers is the seat cap
	MaxPlayers int

	// TimeoutSeconds is the idle timeout before automatic cancellation
	TimeoutSeconds int

	// CreatedAt is when the session was created
	CreatedAt time.Time

	// LastActivityAt is when the session last accepted an action
	LastActivityAt time.Time
}

// Participant returns the participant for the given user, or nil
func (s *Session) Participant(userID string) *Participant {
	for _, p := range s.Participants {
		if p.UserID == userID {
			return p
		}
	}
	return nil
}

// ActiveParticipants returns participants still contesting the session, in order
func (s *Session) ActiveParticipants() []*Participant {
	active := make([]*Participant, 0, len(s.Participants))
	for _, p := range s.Participants {
		if p.Status == ParticipantStatusActive {
			active = append(active, p)
		}
	}
	return active
}

// Terminal reports whether the session has reached a terminal phase
func (s *Session) Terminal() bool {
	return s.Phase == PhaseClosed || s.Phase == PhaseCancelled
}
