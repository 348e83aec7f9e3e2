package settlement

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/nolanpeet/stakehouse/internal/common/clock"
	"github.com/nolanpeet/stakehouse/internal/models"
	recordRepo "github.com/nolanpeet/stakehouse/internal/repositories/record"
	escrowService "github.com/nolanpeet/stakehouse/internal/services/escrow"
)

// service implements the Service interface
type service struct {
	escrowService escrowService.Service
	recordRepo    recordRepo.Repository
	clock         clock.Clock
}

// New creates a new settlement service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.EscrowService == nil {
		return nil, ErrNilEscrowService
	}

	if cfg.RecordRepo == nil {
		return nil, ErrNilRecordRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		escrowService: cfg.EscrowService,
		recordRepo:    cfg.RecordRepo,
		clock:         cfg.Clock,
	}, nil
}

// Settle computes payouts for an outcome and applies them exactly once.
// The record is persisted before any balance is credited, so a crash
// between the two leaves a record to reconcile from, never a double pay.
func (s *service) Settle(ctx context.Context, input *SettleInput) (*SettleOutput, error) {
	if input == nil || input.Session == nil || input.Outcome == nil {
		return nil, errors.New("input, session and outcome cannot be nil")
	}

	session := input.Session
	if session.Flagged {
		return nil, ErrSessionFlagged
	}

	if err := s.escrowService.VerifyPot(ctx, &escrowService.VerifyPotInput{
		SessionID: session.ID,
	}); err != nil {
		return nil, err
	}

	pot, err := s.escrowService.GetPot(ctx, &escrowService.GetPotInput{
		SessionID: session.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get pot: %w", err)
	}

	payouts, err := computePayouts(session, input.Outcome, pot)
	if err != nil {
		return nil, err
	}

	record := &models.SettlementRecord{
		SessionID: session.ID,
		Outcome:   *input.Outcome,
		Payouts:   payouts,
		Pot:       pot,
		SettledAt: s.clock.Now(),
	}

	saved, err := s.recordRepo.SaveSettlementRecord(ctx, &recordRepo.SaveSettlementRecordInput{
		Record: record,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save settlement record: %w", err)
	}

	if saved.AlreadyExists {
		return &SettleOutput{Record: saved.Record, AlreadySettled: true}, nil
	}

	if err := s.escrowService.ConsumeForSettlement(ctx, &escrowService.ConsumeForSettlementInput{
		SessionID: session.ID,
	}); err != nil {
		return nil, err
	}

	for _, payout := range payouts {
		if payout.Amount == 0 {
			continue
		}

		if err := s.escrowService.Payout(ctx, &escrowService.PayoutInput{
			SessionID: session.ID,
			UserID:    payout.UserID,
			Amount:    payout.Amount,
		}); err != nil {
			return nil, fmt.Errorf("failed to pay %s: %w", payout.UserID, err)
		}
	}

	return &SettleOutput{Record: record}, nil
}

// Cancel refunds every outstanding ticket and records the cancellation
func (s *service) Cancel(ctx context.Context, input *CancelInput) (*CancelOutput, error) {
	if input == nil || input.Session == nil {
		return nil, errors.New("input and session cannot be nil")
	}

	session := input.Session

	existing, err := s.recordRepo.GetCancellationRecord(ctx, &recordRepo.GetCancellationRecordInput{
		SessionID: session.ID,
	})
	if err == nil {
		return &CancelOutput{Record: existing, AlreadyCancelled: true}, nil
	}
	if !errors.Is(err, recordRepo.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check cancellation record: %w", err)
	}

	_, err = s.recordRepo.GetSettlementRecord(ctx, &recordRepo.GetSettlementRecordInput{
		SessionID: session.ID,
	})
	if err == nil {
		return nil, ErrAlreadySettled
	}
	if !errors.Is(err, recordRepo.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check settlement record: %w", err)
	}

	refunded, err := s.escrowService.RefundSession(ctx, &escrowService.RefundSessionInput{
		SessionID: session.ID,
	})
	if err != nil {
		return nil, err
	}

	record := &models.CancellationRecord{
		SessionID:   session.ID,
		Reason:      input.Reason,
		Refunds:     refunded.Refunds,
		CancelledAt: s.clock.Now(),
	}

	saved, err := s.recordRepo.SaveCancellationRecord(ctx, &recordRepo.SaveCancellationRecordInput{
		Record: record,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save cancellation record: %w", err)
	}

	return &CancelOutput{Record: saved.Record, AlreadyCancelled: saved.AlreadyExists}, nil
}

// computePayouts converts an outcome into a payout list that sums exactly
// to the pot
func computePayouts(session *models.Session, outcome *models.Outcome, pot int64) ([]models.Payout, error) {
	switch outcome.Kind {
	case models.OutcomeDraw:
		return drawPayouts(session), nil

	case models.OutcomeWinnerTakesAll:
		if len(outcome.Winners) != 1 {
			return nil, ErrNoWinners
		}
		return []models.Payout{{UserID: outcome.Winners[0], Amount: pot}}, nil

	case models.OutcomeProportional:
		winners := winnersInParticipantOrder(session, outcome.Winners)
		if len(winners) == 0 {
			return nil, ErrNoWinners
		}
		if equalStakes(session) {
			return equalSplit(pot, winners), nil
		}
		return sidePotSplit(session, winners, pot), nil

	default:
		return nil, fmt.Errorf("unknown outcome kind: %s", outcome.Kind)
	}
}

// drawPayouts hands every contributor back exactly their own stake
func drawPayouts(session *models.Session) []models.Payout {
	payouts := make([]models.Payout, 0, len(session.Participants))
	for _, p := range session.Participants {
		if p.Stake > 0 {
			payouts = append(payouts, models.Payout{UserID: p.UserID, Amount: p.Stake})
		}
	}
	return payouts
}

// winnersInParticipantOrder filters the participant list down to the named
// winners, preserving participant order so remainder assignment is
// reproducible
func winnersInParticipantOrder(session *models.Session, winners []string) []*models.Participant {
	isWinner := make(map[string]bool, len(winners))
	for _, userID := range winners {
		isWinner[userID] = true
	}

	ordered := make([]*models.Participant, 0, len(winners))
	for _, p := range session.Participants {
		if isWinner[p.UserID] {
			ordered = append(ordered, p)
		}
	}
	return ordered
}

func equalStakes(session *models.Session) bool {
	var first int64 = -1
	for _, p := range session.Participants {
		if p.Stake == 0 {
			continue
		}
		if first == -1 {
			first = p.Stake
			continue
		}
		if p.Stake != first {
			return false
		}
	}
	return true
}

// equalSplit divides a pot evenly among winners; the remainder goes one
// unit at a time to the earliest winners in participant order
func equalSplit(pot int64, winners []*models.Participant) []models.Payout {
	n := int64(len(winners))
	share := pot / n
	remainder := pot % n

	payouts := make([]models.Payout, 0, n)
	for i, w := range winners {
		amount := share
		if int64(i) < remainder {
			amount++
		}
		payouts = append(payouts, models.Payout{UserID: w.UserID, Amount: amount})
	}
	return payouts
}

// sidePotSplit partitions the pot into tiers by ascending stake and settles
// each tier independently among the winners still contesting it. A tier no
// winner reaches goes back to its own contributors.
func sidePotSplit(session *models.Session, winners []*models.Participant, pot int64) []models.Payout {
	levels := stakeLevels(session)

	totals := make(map[string]int64)
	order := make([]string, 0, len(session.Participants))
	seen := make(map[string]bool)
	credit := func(userID string, amount int64) {
		if !seen[userID] {
			seen[userID] = true
			order = append(order, userID)
		}
		totals[userID] += amount
	}

	var distributed int64
	var prev int64
	for _, level := range levels {
		var tierPot int64
		for _, p := range session.Participants {
			contribution := min64(p.Stake, level) - prev
			if contribution > 0 {
				tierPot += contribution
			}
		}

		contesting := make([]*models.Participant, 0, len(winners))
		for _, w := range winners {
			if w.Stake >= level {
				contesting = append(contesting, w)
			}
		}

		if len(contesting) > 0 {
			for _, payout := range equalSplit(tierPot, contesting) {
				credit(payout.UserID, payout.Amount)
			}
		} else {
			// Nobody won this tier, its contributors take their money back
			for _, p := range session.Participants {
				contribution := min64(p.Stake, level) - prev
				if contribution > 0 {
					credit(p.UserID, contribution)
				}
			}
		}

		distributed += tierPot
		prev = level
	}

	// Anything the stakes do not account for goes to the earliest winner
	if distributed < pot && len(winners) > 0 {
		credit(winners[0].UserID, pot-distributed)
	}

	payouts := make([]models.Payout, 0, len(order))
	for _, userID := range order {
		payouts = append(payouts, models.Payout{UserID: userID, Amount: totals[userID]})
	}
	return payouts
}

// stakeLevels returns the distinct nonzero stakes in ascending order
func stakeLevels(session *models.Session) []int64 {
	set := make(map[int64]bool)
	for _, p := range session.Participants {
		if p.Stake > 0 {
			set[p.Stake] = true
		}
	}

	levels := make([]int64, 0, len(set))
	for level := range set {
		levels = append(levels, level)
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i] < levels[j] })
	return levels
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
