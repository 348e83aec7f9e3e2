package models

import (
	"time"
)

// Challenge is the single-use anti-cheat token issued at the start of a
// score session. The response must be presented at session end and is
// recomputed server-side from the nonce and the server secret.
type Challenge struct {
	// SessionID is the session the challenge belongs to
	SessionID string

	// UserID is the participant the challenge was issued to
	UserID string

	// Nonce is the random single-use value
	Nonce string

	// IssuedAt is when the challenge was created; it expires after a fixed window
	IssuedAt time.Time
}
