package record

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/nolanpeet/stakehouse/internal/repositories/record Repository

import (
	"context"

	"github.com/nolanpeet/stakehouse/internal/models"
)

// Repository is the persistence sink for terminal records and ledger events.
// Settlement and cancellation records are written at most once per session;
// ledger events are append-only. All writes return only after the store has
// acknowledged them.
type Repository interface {
	// SaveSettlementRecord persists a settlement record idempotently. If a
	// record already exists for the session, the existing record is returned
	// untouched and AlreadyExists is set.
	SaveSettlementRecord(ctx context.Context, input *SaveSettlementRecordInput) (*SaveSettlementRecordOutput, error)

	// GetSettlementRecord retrieves the settlement record for a session
	GetSettlementRecord(ctx context.Context, input *GetSettlementRecordInput) (*models.SettlementRecord, error)

	// SaveCancellationRecord persists a cancellation record idempotently
	SaveCancellationRecord(ctx context.Context, input *SaveCancellationRecordInput) (*SaveCancellationRecordOutput, error)

	// GetCancellationRecord retrieves the cancellation record for a session
	GetCancellationRecord(ctx context.Context, input *GetCancellationRecordInput) (*models.CancellationRecord, error)

	// AppendLedgerEvent appends a balance movement to the ledger event stream
	AppendLedgerEvent(ctx context.Context, input *AppendLedgerEventInput) error
}
