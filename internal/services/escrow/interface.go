package escrow

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/nolanpeet/stakehouse/internal/services/escrow Service

import "context"

// Service defines the interface for stake escrow operations. Every balance
// movement emits one ledger event for the persistence sink.
type Service interface {
	// Debit atomically moves a stake from a user's balance into a session pot
	// and issues the escrow ticket for it
	Debit(ctx context.Context, input *DebitInput) (*DebitOutput, error)

	// Refund returns a single ticket's amount to its owner, consuming the ticket
	Refund(ctx context.Context, input *RefundInput) (*RefundOutput, error)

	// Payout credits a settlement share from the pooled pot; no ticket required
	Payout(ctx context.Context, input *PayoutInput) error

	// VerifyPot checks that the pot equals the sum of outstanding tickets
	VerifyPot(ctx context.Context, input *VerifyPotInput) error

	// RefundSession refunds every outstanding ticket for a session
	RefundSession(ctx context.Context, input *RefundSessionInput) (*RefundSessionOutput, error)

	// ConsumeForSettlement consumes all outstanding tickets and clears the pot,
	// releasing the pooled amount for payout
	ConsumeForSettlement(ctx context.Context, input *ConsumeForSettlementInput) error

	// GetPot reads the escrowed total for a session
	GetPot(ctx context.Context, input *GetPotInput) (int64, error)
}
