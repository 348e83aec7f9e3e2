package session

import (
	"time"

	"github.com/nolanpeet/stakehouse/internal/models"
)

// SaveSessionInput contains parameters for persisting a session
type SaveSessionInput struct {
	Session *models.Session
}

// GetSessionInput contains parameters for retrieving a session
type GetSessionInput struct {
	SessionID string
}

// DeleteSessionInput contains parameters for removing a session
type DeleteSessionInput struct {
	SessionID string
}

// GetActiveSessionsInput contains parameters for listing live sessions
type GetActiveSessionsInput struct{}

// GetActiveSessionsOutput contains the live sessions
type GetActiveSessionsOutput struct {
	Sessions []*models.Session
}

// GetIdleSessionsInput contains the idle cutoff
type GetIdleSessionsInput struct {
	// OlderThan is the last-activity cutoff; sessions untouched since before
	// this instant are returned
	OlderThan time.Time
}

// GetIdleSessionsOutput contains the IDs of idle live sessions
type GetIdleSessionsOutput struct {
	SessionIDs []string
}
