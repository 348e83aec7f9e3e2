package models

import (
	"encoding/json"
	"time"
)

// ParticipantStatus represents the current state of a participant in a session
type ParticipantStatus string

const (
	// ParticipantStatusActive indicates the participant is still contesting the pot
	ParticipantStatusActive ParticipantStatus = "active"

	// ParticipantStatusEliminated indicates the participant folded or was eliminated
	ParticipantStatusEliminated ParticipantStatus = "eliminated"

	// ParticipantStatusDisconnected indicates the participant dropped mid-session
	ParticipantStatusDisconnected ParticipantStatus = "disconnected"

	// ParticipantStatusSpectator indicates the participant has no stake in the pot
	ParticipantStatusSpectator ParticipantStatus = "spectator"
)

// Participant represents a user's seat in a specific session
type Participant struct {
	// UserID is the authenticated identifier supplied by the identity provider
	UserID string

	// Stake is the amount this participant contributed to the pot
	Stake int64

	// TicketID is the escrow ticket backing the stake, empty until staked
	TicketID string

	// Status is the current state of the participant
	Status ParticipantStatus

	// RoleData is opaque per-participant data owned by the rule module
	RoleData json.RawMessage

	// JoinedAt is when the participant joined the session
	JoinedAt time.Time
}
