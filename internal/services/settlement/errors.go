package settlement

// SettlementError is a typed error for settlement operations
type SettlementError string

// Error implements the error interface
func (e SettlementError) Error() string {
	return string(e)
}

const (
	// ErrAlreadySettled is returned when cancellation is requested for a
	// session that has a settlement record
	ErrAlreadySettled = SettlementError("session is already settled")

	// ErrSessionFlagged is returned when settlement is attempted for a
	// session flagged by anti-cheat; only cancellation remains
	ErrSessionFlagged = SettlementError("flagged session cannot reach a paying settlement")

	// ErrNoWinners is returned when a paying outcome names no winners
	ErrNoWinners = SettlementError("outcome must name at least one winner")

	// ErrNilConfig is returned when a nil config is provided
	ErrNilConfig = SettlementError("config cannot be nil")

	// ErrNilEscrowService is returned when a nil escrow service is provided
	ErrNilEscrowService = SettlementError("escrow service cannot be nil")

	// ErrNilRecordRepo is returned when a nil record repository is provided
	ErrNilRecordRepo = SettlementError("record repository cannot be nil")

	// ErrNilClock is returned when a nil clock is provided
	ErrNilClock = SettlementError("clock cannot be nil")
)
