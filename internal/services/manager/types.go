package manager

import (
	"context"
	"time"

	"github.com/nolanpeet/stakehouse/internal/common/clock"
	"github.com/nolanpeet/stakehouse/internal/models"
	sessionRepo "github.com/nolanpeet/stakehouse/internal/repositories/session"
	"github.com/nolanpeet/stakehouse/internal/rules"
	"github.com/nolanpeet/stakehouse/internal/rules/betting"
	"github.com/nolanpeet/stakehouse/internal/rules/boardrace"
	"github.com/nolanpeet/stakehouse/internal/rules/roleeconomy"
	"github.com/nolanpeet/stakehouse/internal/rules/scorearcade"
	matchService "github.com/nolanpeet/stakehouse/internal/services/match"
)

const (
	// DefaultSweepInterval is how often the idle sweep runs
	DefaultSweepInterval = 30 * time.Second
)

// Announcer receives terminal records for broadcast. Implementations must
// not block; a slow or failing announcement never holds up settlement.
type Announcer interface {
	AnnounceSettlement(ctx context.Context, kind models.SessionKind, record *models.SettlementRecord)
	AnnounceCancellation(ctx context.Context, kind models.SessionKind, record *models.CancellationRecord)
}

// Config contains the dependencies for the session manager
type Config struct {
	// MatchService is the state machine every command is routed through
	MatchService matchService.Service

	// SessionRepo serves the idle index for the sweep
	SessionRepo sessionRepo.Repository

	// Clock provides time functionality
	Clock clock.Clock

	// Announcer, when set, is notified of every settlement and cancellation
	Announcer Announcer

	// SweepInterval overrides how often idle sessions are reaped; defaulted
	// when zero
	SweepInterval time.Duration
}

// ParticipantView is the public snapshot of one seat
type ParticipantView struct {
	UserID string                   `json:"user_id"`
	Status models.ParticipantStatus `json:"status"`
	Stake  int64                    `json:"stake"`
}

// SessionView is the public snapshot of a session. Private rule state such
// as hole cards and hidden roles never appears in it.
type SessionView struct {
	ID             string               `json:"id"`
	Kind           models.SessionKind   `json:"kind"`
	Phase          models.SessionPhase  `json:"phase"`
	Pot            int64                `json:"pot"`
	FixedStake     int64                `json:"fixed_stake,omitempty"`
	MinPlayers     int                  `json:"min_players"`
	MaxPlayers     int                  `json:"max_players"`
	TurnUserID     string               `json:"turn_user_id,omitempty"`
	Flagged        bool                 `json:"flagged,omitempty"`
	Frozen         bool                 `json:"frozen,omitempty"`
	Participants   []ParticipantView    `json:"participants"`
	Detail         map[string]any       `json:"detail,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	LastActivityAt time.Time            `json:"last_activity_at"`
}

// NewSessionView builds the public snapshot for a session
func NewSessionView(session *models.Session) *SessionView {
	view := &SessionView{
		ID:             session.ID,
		Kind:           session.Kind,
		Phase:          session.Phase,
		Pot:            session.Pot,
		FixedStake:     session.FixedStake,
		MinPlayers:     session.MinPlayers,
		MaxPlayers:     session.MaxPlayers,
		Flagged:        session.Flagged,
		Frozen:         session.Frozen,
		CreatedAt:      session.CreatedAt,
		LastActivityAt: session.LastActivityAt,
	}

	for _, p := range session.Participants {
		view.Participants = append(view.Participants, ParticipantView{
			UserID: p.UserID,
			Status: p.Status,
			Stake:  p.Stake,
		})
	}

	if session.Phase == models.PhaseActive && session.Kind != models.KindScoreArcade &&
		session.TurnIndex < len(session.Participants) {
		view.TurnUserID = session.Participants[session.TurnIndex].UserID
	}

	if session.Phase == models.PhaseActive {
		switch session.Kind {
		case models.KindBettingRound:
			view.Detail = map[string]any{"board": betting.RevealedBoard(session)}
		case models.KindBoardRace:
			view.Detail = map[string]any{"positions": boardrace.Positions(session)}
		case models.KindRoleEconomy:
			view.Detail = map[string]any{"vault": roleeconomy.Vault(session)}
		case models.KindScoreArcade:
			view.Detail = map[string]any{"score": scorearcade.Score(session)}
		}
	}

	return view
}

// CreateSessionInput contains parameters for creating a session
type CreateSessionInput struct {
	Kind           models.SessionKind
	FixedStake     int64
	MinPlayers     int
	MaxPlayers     int
	TimeoutSeconds int
}

// CreateSessionOutput contains the created session snapshot
type CreateSessionOutput struct {
	View *SessionView
}

// JoinInput contains parameters for seating a user
type JoinInput struct {
	SessionID string
	UserID    string
}

// JoinOutput contains the session snapshot after the join
type JoinOutput struct {
	View *SessionView
}

// StakeInput contains parameters for escrowing a stake
type StakeInput struct {
	SessionID string
	UserID    string
	Amount    int64
}

// StakeOutput contains the session snapshot after the stake
type StakeOutput struct {
	View *SessionView

	// Challenge is issued when the stake activated a score session
	Challenge *models.Challenge
}

// SubmitActionInput contains a participant action to apply
type SubmitActionInput struct {
	SessionID string
	UserID    string
	Action    rules.Action
}

// SubmitActionOutput contains the session snapshot after the action
type SubmitActionOutput struct {
	View *SessionView

	// Detail is the module's report for the applied action
	Detail string

	// Record is set when the action ended the session
	Record *models.SettlementRecord
}

// ReportScoreInput contains a cumulative score report
type ReportScoreInput struct {
	SessionID string
	UserID    string
	Score     int64
}

// ReportScoreOutput contains the accepted score after validation
type ReportScoreOutput struct {
	View          *SessionView
	AcceptedScore int64
}

// EndSessionInput contains parameters for ending a score session
type EndSessionInput struct {
	SessionID         string
	UserID            string
	ChallengeResponse string
}

// EndSessionOutput contains the settlement that ending produced
type EndSessionOutput struct {
	View   *SessionView
	Record *models.SettlementRecord
}

// GetStateInput contains parameters for reading a session snapshot
type GetStateInput struct {
	SessionID string
}

// GetStateOutput contains the session snapshot
type GetStateOutput struct {
	View *SessionView
}

// DisconnectInput contains parameters for marking a participant disconnected
type DisconnectInput struct {
	SessionID string
	UserID    string
}

// DisconnectOutput contains the session snapshot and any terminal record
// the disconnect forced
type DisconnectOutput struct {
	View         *SessionView
	Record       *models.SettlementRecord
	Cancellation *models.CancellationRecord
}

// CancelInput contains parameters for cancelling a session
type CancelInput struct {
	SessionID string
	Reason    models.CancellationReason
}

// CancelOutput contains the cancellation record
type CancelOutput struct {
	View         *SessionView
	Cancellation *models.CancellationRecord
}
