package messaging

import "context"

// Service renders engine events into human-readable announcement copy
type Service interface {
	// GetSettlementMessage returns an announcement for a settled session
	GetSettlementMessage(ctx context.Context, input *GetSettlementMessageInput) (*GetSettlementMessageOutput, error)

	// GetCancellationMessage returns an announcement for a cancelled session
	GetCancellationMessage(ctx context.Context, input *GetCancellationMessageInput) (*GetCancellationMessageOutput, error)
}
