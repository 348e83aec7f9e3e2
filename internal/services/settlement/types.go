package settlement

import (
	"github.com/nolanpeet/stakehouse/internal/common/clock"
	"github.com/nolanpeet/stakehouse/internal/models"
	recordRepo "github.com/nolanpeet/stakehouse/internal/repositories/record"
	escrowService "github.com/nolanpeet/stakehouse/internal/services/escrow"
)

// Config contains the dependencies for the settlement service
type Config struct {
	// EscrowService moves the money
	EscrowService escrowService.Service

	// RecordRepo persists settlement and cancellation records
	RecordRepo recordRepo.Repository

	// Clock provides time functionality
	Clock clock.Clock
}

// SettleInput contains the session and outcome to settle
type SettleInput struct {
	Session *models.Session
	Outcome *models.Outcome
}

// SettleOutput contains the settlement record, freshly created or
// pre-existing
type SettleOutput struct {
	Record *models.SettlementRecord

	// AlreadySettled indicates the record existed before this call and
	// nothing was paid
	AlreadySettled bool
}

// CancelInput contains the session to cancel and why
type CancelInput struct {
	Session *models.Session
	Reason  models.CancellationReason
}

// CancelOutput contains the cancellation record
type CancelOutput struct {
	Record *models.CancellationRecord

	// AlreadyCancelled indicates the record existed before this call
	AlreadyCancelled bool
}
