package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/nolanpeet/stakehouse/internal/models"
)

// service implements the Service interface
type service struct {
	// Random number generator for selecting message variants
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	source := rand.NewSource(time.Now().UnixNano())

	return &service{
		rand: rand.New(source),
	}, nil
}

var kindLabels = map[models.SessionKind]string{
	models.KindBettingRound: "betting round",
	models.KindBoardRace:    "board race",
	models.KindRoleEconomy:  "role economy",
	models.KindScoreArcade:  "arcade run",
}

// GetSettlementMessage returns an announcement for a settled session
func (s *service) GetSettlementMessage(ctx context.Context, input *GetSettlementMessageInput) (*GetSettlementMessageOutput, error) {
	if input == nil || input.Record == nil {
		return nil, errors.New("input and record cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneCelebration
	}

	var titles []string
	switch input.Record.Outcome.Kind {
	case models.OutcomeDraw:
		tone = ToneConsoling
		titles = []string{
			"It's a draw",
			"Nobody budged",
			"Stakes go home",
		}
	case models.OutcomeWinnerTakesAll:
		titles = []string{
			"We have a winner!",
			"Pot claimed!",
			"Clean sweep!",
		}
	default:
		titles = []string{
			"Session settled",
			"Pot paid out",
		}
	}

	var lines []string
	label := kindLabels[input.Kind]
	if label == "" {
		label = string(input.Kind)
	}
	lines = append(lines, fmt.Sprintf("The %s is over. Pot: %d.", label, input.Record.Pot))
	if input.Record.Outcome.Detail != "" {
		lines = append(lines, input.Record.Outcome.Detail)
	}
	for _, payout := range input.Record.Payouts {
		lines = append(lines, fmt.Sprintf("%s collects %d", payout.UserID, payout.Amount))
	}

	return &GetSettlementMessageOutput{
		Title:   titles[s.rand.Intn(len(titles))],
		Message: strings.Join(lines, "\n"),
		Tone:    tone,
	}, nil
}

// GetCancellationMessage returns an announcement for a cancelled session
func (s *service) GetCancellationMessage(ctx context.Context, input *GetCancellationMessageInput) (*GetCancellationMessageOutput, error) {
	if input == nil || input.Record == nil {
		return nil, errors.New("input and record cannot be nil")
	}

	var title string
	switch input.Record.Reason {
	case models.CancelReasonIdleTimeout:
		title = "Session timed out"
	case models.CancelReasonUnderfunded:
		title = "Session cancelled: not enough funded players"
	case models.CancelReasonAntiCheat:
		title = "Session voided"
	case models.CancelReasonAbandoned:
		title = "Session abandoned"
	default:
		title = "Session cancelled"
	}

	var lines []string
	label := kindLabels[input.Kind]
	if label == "" {
		label = string(input.Kind)
	}
	lines = append(lines, fmt.Sprintf("The %s did not finish. All stakes refunded.", label))
	for _, refund := range input.Record.Refunds {
		lines = append(lines, fmt.Sprintf("%s gets back %d", refund.UserID, refund.Amount))
	}

	return &GetCancellationMessageOutput{
		Title:   title,
		Message: strings.Join(lines, "\n"),
	}, nil
}
