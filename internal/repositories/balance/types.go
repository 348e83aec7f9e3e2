package balance

// DebitInput contains parameters for debiting a user's balance
type DebitInput struct {
	// UserID is the balance to debit
	UserID string

	// Amount to debit, in the smallest credit unit; must be positive
	Amount int64
}

// CreditInput contains parameters for crediting a user's balance
type CreditInput struct {
	// UserID is the balance to credit
	UserID string

	// Amount to credit, in the smallest credit unit; must be positive
	Amount int64
}

// GetBalanceInput contains parameters for reading a user's balance
type GetBalanceInput struct {
	// UserID is the balance to read
	UserID string
}

// SetBalanceInput contains parameters for overwriting a user's balance
type SetBalanceInput struct {
	// UserID is the balance to overwrite
	UserID string

	// Amount is the new balance
	Amount int64
}
