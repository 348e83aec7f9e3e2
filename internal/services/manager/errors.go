package manager

// ManagerError is a typed error for the session manager
type ManagerError string

// Error implements the error interface
func (e ManagerError) Error() string {
	return string(e)
}

const (
	// ErrNotStarted is returned when an operation runs before Start
	ErrNotStarted = ManagerError("manager has not been started")

	// ErrStopped is returned when an operation runs after Stop
	ErrStopped = ManagerError("manager has been stopped")

	// ErrNilConfig is returned when the config is nil
	ErrNilConfig = ManagerError("config cannot be nil")

	// ErrNilMatchService is returned when the match service is nil
	ErrNilMatchService = ManagerError("match service cannot be nil")

	// ErrNilSessionRepo is returned when the session repository is nil
	ErrNilSessionRepo = ManagerError("session repository cannot be nil")

	// ErrNilClock is returned when the clock is nil
	ErrNilClock = ManagerError("clock cannot be nil")
)
