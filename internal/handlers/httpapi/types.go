package httpapi

import (
	"github.com/nolanpeet/stakehouse/internal/models"
	"github.com/nolanpeet/stakehouse/internal/services/manager"
)

// createSessionRequest is the body for POST /v1/sessions
type createSessionRequest struct {
	Kind           models.SessionKind `json:"kind"`
	FixedStake     int64              `json:"fixed_stake,omitempty"`
	MinPlayers     int                `json:"min_players,omitempty"`
	MaxPlayers     int                `json:"max_players,omitempty"`
	TimeoutSeconds int                `json:"timeout_seconds,omitempty"`
}

// stakeRequest is the body for POST /v1/sessions/{id}/stake
type stakeRequest struct {
	Amount int64 `json:"amount"`
}

// actionRequest is the body for POST /v1/sessions/{id}/actions
type actionRequest struct {
	Type   string `json:"type"`
	Amount int64  `json:"amount,omitempty"`
	Target string `json:"target,omitempty"`
}

// scoreRequest is the body for POST /v1/sessions/{id}/score
type scoreRequest struct {
	Score int64 `json:"score"`
}

// endRequest is the body for POST /v1/sessions/{id}/end
type endRequest struct {
	ChallengeResponse string `json:"challenge_response"`
}

// cancelRequest is the body for POST /v1/sessions/{id}/cancel
type cancelRequest struct {
	Reason models.CancellationReason `json:"reason,omitempty"`
}

// challengeBody is the wire form of an issued anti-cheat challenge
type challengeBody struct {
	Nonce    string `json:"nonce"`
	IssuedAt string `json:"issued_at"`
}

// sessionResponse wraps a session snapshot with whatever the operation
// additionally produced
type sessionResponse struct {
	Session       *manager.SessionView       `json:"session"`
	Challenge     *challengeBody             `json:"challenge,omitempty"`
	Detail        string                     `json:"detail,omitempty"`
	AcceptedScore *int64                     `json:"accepted_score,omitempty"`
	Settlement    *models.SettlementRecord   `json:"settlement,omitempty"`
	Cancellation  *models.CancellationRecord `json:"cancellation,omitempty"`
}

// errorResponse is the body of every non-2xx response
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
