package record

import (
	"github.com/nolanpeet/stakehouse/internal/models"
)

// SaveSettlementRecordInput contains parameters for persisting a settlement record
type SaveSettlementRecordInput struct {
	Record *models.SettlementRecord
}

// SaveSettlementRecordOutput contains the stored record, which is the
// pre-existing one when the session was already settled
type SaveSettlementRecordOutput struct {
	Record *models.SettlementRecord

	// AlreadyExists indicates the session had a record before this call
	AlreadyExists bool
}

// GetSettlementRecordInput contains parameters for retrieving a settlement record
type GetSettlementRecordInput struct {
	SessionID string
}

// SaveCancellationRecordInput contains parameters for persisting a cancellation record
type SaveCancellationRecordInput struct {
	Record *models.CancellationRecord
}

// SaveCancellationRecordOutput contains the stored record
type SaveCancellationRecordOutput struct {
	Record *models.CancellationRecord

	// AlreadyExists indicates the session had a record before this call
	AlreadyExists bool
}

// GetCancellationRecordInput contains parameters for retrieving a cancellation record
type GetCancellationRecordInput struct {
	SessionID string
}

// AppendLedgerEventInput contains the ledger event to append
type AppendLedgerEventInput struct {
	Event *models.LedgerEvent
}
