package settlement

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/nolanpeet/stakehouse/internal/services/settlement Service

import "context"

// Service defines the interface for converting match outcomes into payouts
// exactly once per session.
type Service interface {
	// Settle computes payouts for an outcome, records them durably, and
	// pays winners. A session that already has a settlement record gets
	// the existing record back with nothing re-paid.
	Settle(ctx context.Context, input *SettleInput) (*SettleOutput, error)

	// Cancel refunds every outstanding ticket and records the
	// cancellation. Only usable before settlement; idempotent.
	Cancel(ctx context.Context, input *CancelInput) (*CancelOutput, error)
}
