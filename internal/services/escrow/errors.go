package escrow

// EscrowError is a custom error type for escrow-related errors
type EscrowError string

// Error implements the error interface
func (e EscrowError) Error() string {
	return string(e)
}

// Define errors
const (
	// ErrInsufficientFunds is recoverable and user-fixable
	ErrInsufficientFunds EscrowError = "insufficient funds"

	// ErrTicketConsumed is an idempotency guard, safe to treat as a no-op
	ErrTicketConsumed EscrowError = "escrow ticket already consumed"

	// ErrTicketNotFound is returned when a ticket does not exist
	ErrTicketNotFound EscrowError = "escrow ticket not found"

	// ErrLedgerInconsistency is fatal: the pot no longer matches its tickets.
	// The affected session must be frozen and an operator alerted.
	ErrLedgerInconsistency EscrowError = "ledger inconsistency detected"

	ErrNilConfig      EscrowError = "config cannot be nil"
	ErrNilBalanceRepo EscrowError = "balance repository cannot be nil"
	ErrNilEscrowRepo  EscrowError = "escrow repository cannot be nil"
	ErrNilRecordRepo  EscrowError = "record repository cannot be nil"
	ErrNilClock       EscrowError = "clock cannot be nil"
	ErrNilUUID        EscrowError = "UUID generator cannot be nil"
)
