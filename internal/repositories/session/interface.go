package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/nolanpeet/stakehouse/internal/repositories/session Repository

import (
	"context"

	"github.com/nolanpeet/stakehouse/internal/models"
)

// Repository defines the interface for session persistence
type Repository interface {
	// SaveSession persists a session and maintains the live-session indexes
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// DeleteSession removes a session and its index entries
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error

	// GetActiveSessions retrieves all sessions that have not reached a terminal phase
	GetActiveSessions(ctx context.Context, input *GetActiveSessionsInput) (*GetActiveSessionsOutput, error)

	// GetIdleSessions retrieves live session IDs whose last activity is older than the cutoff
	GetIdleSessions(ctx context.Context, input *GetIdleSessionsInput) (*GetIdleSessionsOutput, error)
}
