package balance

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/nolanpeet/stakehouse/internal/repositories/balance Repository

import (
	"context"
)

// Repository defines the interface for the user balance ledger. Debit and
// Credit are atomic per user: two concurrent debits can never both succeed
// past the user's true balance.
type Repository interface {
	// Debit atomically checks and decrements a user's available balance
	Debit(ctx context.Context, input *DebitInput) error

	// Credit atomically increments a user's available balance
	Credit(ctx context.Context, input *CreditInput) error

	// GetBalance retrieves a user's current available balance
	GetBalance(ctx context.Context, input *GetBalanceInput) (int64, error)

	// SetBalance overwrites a user's balance (seeding and operator tooling)
	SetBalance(ctx context.Context, input *SetBalanceInput) error
}
