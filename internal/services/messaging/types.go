package messaging

import (
	"github.com/nolanpeet/stakehouse/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"

	// ToneConsoling is a consoling tone
	ToneConsoling MessageTone = "consoling"
)

// GetSettlementMessageInput contains parameters for a settlement announcement
type GetSettlementMessageInput struct {
	// Record is the settlement being announced
	Record *models.SettlementRecord

	// Kind is the session kind, used to flavor the copy
	Kind models.SessionKind

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetSettlementMessageOutput contains the rendered settlement announcement
type GetSettlementMessageOutput struct {
	// Title is the headline of the announcement
	Title string

	// Message is the body of the announcement
	Message string

	// Tone is the tone that was used
	Tone MessageTone
}

// GetCancellationMessageInput contains parameters for a cancellation
// announcement
type GetCancellationMessageInput struct {
	// Record is the cancellation being announced
	Record *models.CancellationRecord

	// Kind is the session kind
	Kind models.SessionKind
}

// GetCancellationMessageOutput contains the rendered cancellation
// announcement
type GetCancellationMessageOutput struct {
	// Title is the headline of the announcement
	Title string

	// Message is the body of the announcement
	Message string
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct{}
