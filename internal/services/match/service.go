package match

import (
	"context"
	"errors"
	"fmt"

	"github.com/nolanpeet/stakehouse/internal/common/clock"
	"github.com/nolanpeet/stakehouse/internal/common/uuid"
	"github.com/nolanpeet/stakehouse/internal/models"
	sessionRepo "github.com/nolanpeet/stakehouse/internal/repositories/session"
	"github.com/nolanpeet/stakehouse/internal/rules"
	"github.com/nolanpeet/stakehouse/internal/rules/scorearcade"
	anticheatService "github.com/nolanpeet/stakehouse/internal/services/anticheat"
	escrowService "github.com/nolanpeet/stakehouse/internal/services/escrow"
	settlementService "github.com/nolanpeet/stakehouse/internal/services/settlement"
)

// validTransitions is the phase table; anything absent is rejected
var validTransitions = map[models.SessionPhase][]models.SessionPhase{
	models.PhaseWaitingForPlayers: {models.PhaseWaitingForStakes, models.PhaseCancelled},
	models.PhaseWaitingForStakes:  {models.PhaseActive, models.PhaseCancelled},
	models.PhaseActive:            {models.PhaseSettlement, models.PhaseCancelled},
	models.PhaseSettlement:        {models.PhaseClosed},
}

// service implements the Service interface
type service struct {
	sessionRepo       sessionRepo.Repository
	escrowService     escrowService.Service
	settlementService settlementService.Service
	anticheatService  anticheatService.Service
	modules           map[models.SessionKind]rules.Module
	clock             clock.Clock
	uuids             uuid.UUID
}

// New creates a new match service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.EscrowService == nil {
		return nil, ErrNilEscrowService
	}

	if cfg.SettlementService == nil {
		return nil, ErrNilSettlementService
	}

	if cfg.AntiCheatService == nil {
		return nil, ErrNilAntiCheatService
	}

	if len(cfg.Modules) == 0 {
		return nil, ErrNoModules
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUID
	}

	return &service{
		sessionRepo:       cfg.SessionRepo,
		escrowService:     cfg.EscrowService,
		settlementService: cfg.SettlementService,
		anticheatService:  cfg.AntiCheatService,
		modules:           cfg.Modules,
		clock:             cfg.Clock,
		uuids:             cfg.UUIDGenerator,
	}, nil
}

// CreateSession creates a session in waiting_for_players
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if _, ok := s.modules[input.Kind]; !ok {
		return nil, ErrUnknownKind
	}

	now := s.clock.Now()
	session := &models.Session{
		ID:             s.uuids.NewUUID(),
		Kind:           input.Kind,
		Phase:          models.PhaseWaitingForPlayers,
		FixedStake:     input.FixedStake,
		MinPlayers:     input.MinPlayers,
		MaxPlayers:     input.MaxPlayers,
		TimeoutSeconds: input.TimeoutSeconds,
		CreatedAt:      now,
		LastActivityAt: now,
	}

	if session.MinPlayers == 0 {
		if input.Kind == models.KindScoreArcade {
			session.MinPlayers = 1
		} else {
			session.MinPlayers = 2
		}
	}
	if session.MaxPlayers == 0 {
		if input.Kind == models.KindScoreArcade {
			session.MaxPlayers = 1
		} else {
			session.MaxPlayers = DefaultMaxPlayers
		}
	}
	if session.TimeoutSeconds == 0 {
		session.TimeoutSeconds = DefaultTimeoutSeconds
	}

	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	return &CreateSessionOutput{Session: session}, nil
}

// Join seats a user. Reaching minimum players advances to
// waiting_for_stakes; joins stay open up to the cap until play begins.
func (s *service) Join(ctx context.Context, input *JoinInput) (*JoinOutput, error) {
	if input == nil || input.SessionID == "" || input.UserID == "" {
		return nil, errors.New("input, session ID and user ID cannot be empty")
	}

	session, err := s.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if session.Phase != models.PhaseWaitingForPlayers && session.Phase != models.PhaseWaitingForStakes {
		return nil, ErrInvalidPhaseTransition
	}

	if session.Participant(input.UserID) != nil {
		return nil, ErrAlreadyJoined
	}

	if len(session.Participants) >= session.MaxPlayers {
		return nil, ErrSessionFull
	}

	participant := &models.Participant{
		UserID:   input.UserID,
		Status:   models.ParticipantStatusActive,
		JoinedAt: s.clock.Now(),
	}
	session.Participants = append(session.Participants, participant)

	if session.Phase == models.PhaseWaitingForPlayers && len(session.Participants) >= session.MinPlayers {
		if err := transition(session, models.PhaseWaitingForStakes); err != nil {
			return nil, err
		}
	}

	s.touch(session)
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	return &JoinOutput{Session: session, Participant: participant}, nil
}

// Stake escrows a participant's stake. A participant who cannot fund their
// stake loses their seat; falling below minimum players auto-cancels with
// full refund. The last stake activates play.
func (s *service) Stake(ctx context.Context, input *StakeInput) (*StakeOutput, error) {
	if input == nil || input.SessionID == "" || input.UserID == "" {
		return nil, errors.New("input, session ID and user ID cannot be empty")
	}

	session, err := s.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if session.Phase != models.PhaseWaitingForStakes {
		return nil, ErrInvalidPhaseTransition
	}

	participant := session.Participant(input.UserID)
	if participant == nil {
		return nil, ErrNotParticipant
	}

	if participant.TicketID != "" {
		return nil, ErrAlreadyStaked
	}

	if session.FixedStake > 0 && input.Amount != session.FixedStake {
		return nil, ErrWrongStake
	}

	debited, err := s.escrowService.Debit(ctx, &escrowService.DebitInput{
		SessionID: session.ID,
		UserID:    input.UserID,
		Amount:    input.Amount,
	})
	if err != nil {
		if errors.Is(err, escrowService.ErrInsufficientFunds) {
			return nil, s.removeUnderfunded(ctx, session, input.UserID)
		}
		return nil, err
	}

	participant.Stake = input.Amount
	participant.TicketID = debited.Ticket.ID
	session.Pot += input.Amount
	s.touch(session)

	output := &StakeOutput{Session: session}
	if s.allStaked(session) {
		challenge, err := s.activate(ctx, session)
		if err != nil {
			return nil, err
		}
		output.Challenge = challenge
	}

	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	return output, nil
}

// Submit applies a participant action through the session's rule module
func (s *service) Submit(ctx context.Context, input *SubmitInput) (*SubmitOutput, error) {
	if input == nil || input.SessionID == "" || input.UserID == "" {
		return nil, errors.New("input, session ID and user ID cannot be empty")
	}

	session, err := s.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if session.Frozen {
		return nil, ErrSessionFrozen
	}

	if session.Phase != models.PhaseActive {
		return nil, ErrInvalidPhaseTransition
	}

	module, err := s.module(session.Kind)
	if err != nil {
		return nil, err
	}

	// Score sessions mutate only through ReportScore and End, which carry
	// the anti-cheat gates; the generic action route is turn-based only
	if !module.TurnBased() {
		return nil, ErrInvalidPhaseTransition
	}

	normalizeTurn(session)
	if s.turnUserID(session) != input.UserID {
		return nil, ErrOutOfTurn
	}

	result, err := module.Apply(session, input.UserID, input.Action)
	if err != nil {
		return nil, err
	}

	s.touch(session)

	if result.Outcome != nil {
		record, err := s.finish(ctx, session, result.Outcome)
		if err != nil {
			return nil, err
		}
		return &SubmitOutput{Session: session, Result: result, Record: record}, nil
	}

	if result.AdvanceTurn {
		advanceTurn(session)
	}

	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	return &SubmitOutput{Session: session, Result: result}, nil
}

// ReportScore validates a score report and records the accepted score
func (s *service) ReportScore(ctx context.Context, input *ReportScoreInput) (*ReportScoreOutput, error) {
	if input == nil || input.SessionID == "" || input.UserID == "" {
		return nil, errors.New("input, session ID and user ID cannot be empty")
	}

	session, err := s.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if session.Frozen {
		return nil, ErrSessionFrozen
	}

	if session.Phase != models.PhaseActive {
		return nil, ErrInvalidPhaseTransition
	}

	module, err := s.module(session.Kind)
	if err != nil {
		return nil, err
	}
	if module.TurnBased() {
		return nil, ErrInvalidPhaseTransition
	}

	if session.Flagged {
		return nil, ErrSessionFlagged
	}

	validated, err := s.anticheatService.ValidateScore(ctx, &anticheatService.ValidateScoreInput{
		SessionID: session.ID,
		UserID:    input.UserID,
		Score:     input.Score,
	})
	if err != nil {
		if errors.Is(err, anticheatService.ErrSessionFlagged) {
			session.Flagged = true
			if saveErr := s.save(ctx, session); saveErr != nil {
				return nil, saveErr
			}
			return nil, ErrSessionFlagged
		}
		if errors.Is(err, anticheatService.ErrScoreRejected) {
			return nil, ErrAntiCheatRejected
		}
		return nil, err
	}

	if _, err := module.Apply(session, input.UserID, rules.Action{
		Type:   scorearcade.ActionReport,
		Amount: validated.AcceptedScore,
	}); err != nil {
		return nil, err
	}

	s.touch(session)
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	return &ReportScoreOutput{Session: session, AcceptedScore: validated.AcceptedScore}, nil
}

// End finishes a score session after challenge verification
func (s *service) End(ctx context.Context, input *EndInput) (*EndOutput, error) {
	if input == nil || input.SessionID == "" || input.UserID == "" {
		return nil, errors.New("input, session ID and user ID cannot be empty")
	}

	session, err := s.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if session.Frozen {
		return nil, ErrSessionFrozen
	}

	if session.Phase != models.PhaseActive {
		return nil, ErrInvalidPhaseTransition
	}

	if session.Flagged {
		return nil, ErrSessionFlagged
	}

	module, err := s.module(session.Kind)
	if err != nil {
		return nil, err
	}
	if module.TurnBased() {
		return nil, ErrInvalidPhaseTransition
	}

	if err := s.anticheatService.VerifyResponse(ctx, &anticheatService.VerifyResponseInput{
		SessionID: session.ID,
		UserID:    input.UserID,
		Response:  input.ChallengeResponse,
	}); err != nil {
		if errors.Is(err, anticheatService.ErrChallengeFailed) {
			return nil, ErrChallengeFailed
		}
		return nil, err
	}

	result, err := module.Apply(session, input.UserID, rules.Action{Type: scorearcade.ActionEnd})
	if err != nil {
		return nil, err
	}
	if result.Outcome == nil {
		return nil, ErrInvalidPhaseTransition
	}

	record, err := s.finish(ctx, session, result.Outcome)
	if err != nil {
		return nil, err
	}

	return &EndOutput{Session: session, Record: record}, nil
}

// Disconnect marks a participant disconnected. The last connected
// participant wins by forfeit; an emptied session cancels with refund.
func (s *service) Disconnect(ctx context.Context, input *DisconnectInput) (*DisconnectOutput, error) {
	if input == nil || input.SessionID == "" || input.UserID == "" {
		return nil, errors.New("input, session ID and user ID cannot be empty")
	}

	record, cancellation, session, err := s.depart(ctx, input.SessionID, input.UserID, models.ParticipantStatusDisconnected, models.CancelReasonAbandoned)
	if err != nil {
		return nil, err
	}

	return &DisconnectOutput{Session: session, Record: record, Cancellation: cancellation}, nil
}

// Forfeit removes a participant voluntarily, with the same terminal rules
// as a disconnect
func (s *service) Forfeit(ctx context.Context, input *ForfeitInput) (*ForfeitOutput, error) {
	if input == nil || input.SessionID == "" || input.UserID == "" {
		return nil, errors.New("input, session ID and user ID cannot be empty")
	}

	record, cancellation, session, err := s.depart(ctx, input.SessionID, input.UserID, models.ParticipantStatusEliminated, models.CancelReasonAbandoned)
	if err != nil {
		return nil, err
	}

	return &ForfeitOutput{Session: session, Record: record, Cancellation: cancellation}, nil
}

// Cancel refunds and closes a pre-settlement session
func (s *service) Cancel(ctx context.Context, input *CancelInput) (*CancelOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	session, err := s.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if session.Phase == models.PhaseSettlement || session.Phase == models.PhaseClosed {
		return nil, ErrAlreadySettled
	}

	record, err := s.cancel(ctx, session, input.Reason)
	if err != nil {
		return nil, err
	}

	return &CancelOutput{Session: session, Record: record}, nil
}

// Timeout resolves an idle session. An active session's module may pick a
// winner; everything else cancels with refund. A frozen session holds
// escrowed money against a ledger whose integrity is in question, so it is
// never resolved here.
func (s *service) Timeout(ctx context.Context, input *TimeoutInput) (*TimeoutOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	session, err := s.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if session.Terminal() {
		return &TimeoutOutput{Session: session}, nil
	}

	if session.Frozen {
		return nil, ErrSessionFrozen
	}

	if session.Phase == models.PhaseActive && !session.Flagged {
		module, err := s.module(session.Kind)
		if err != nil {
			return nil, err
		}

		result, err := module.OnTimeout(session)
		if err != nil {
			return nil, err
		}

		if result.Outcome != nil {
			record, err := s.finish(ctx, session, result.Outcome)
			if err != nil {
				return nil, err
			}
			return &TimeoutOutput{Session: session, Record: record}, nil
		}
	}

	reason := models.CancelReasonIdleTimeout
	if session.Flagged {
		reason = models.CancelReasonAntiCheat
	}

	cancellation, err := s.cancel(ctx, session, reason)
	if err != nil {
		return nil, err
	}

	return &TimeoutOutput{Session: session, Cancellation: cancellation}, nil
}

// GetSession reads a session snapshot
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	session, err := s.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	return &GetSessionOutput{Session: session}, nil
}

// depart handles both disconnects and forfeits
func (s *service) depart(ctx context.Context, sessionID, userID string, status models.ParticipantStatus, emptyReason models.CancellationReason) (*models.SettlementRecord, *models.CancellationRecord, *models.Session, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, nil, nil, err
	}

	participant := session.Participant(userID)
	if participant == nil {
		return nil, nil, nil, ErrNotParticipant
	}

	switch session.Phase {
	case models.PhaseWaitingForPlayers, models.PhaseWaitingForStakes:
		if err := s.removeAndRefund(ctx, session, participant); err != nil {
			return nil, nil, nil, err
		}

		if session.Phase == models.PhaseWaitingForStakes && len(session.Participants) < session.MinPlayers {
			cancellation, err := s.cancel(ctx, session, models.CancelReasonUnderfunded)
			if err != nil {
				return nil, nil, nil, err
			}
			return nil, cancellation, session, nil
		}

		s.touch(session)
		if err := s.save(ctx, session); err != nil {
			return nil, nil, nil, err
		}
		return nil, nil, session, nil

	case models.PhaseActive:
		participant.Status = status
		remaining := session.ActiveParticipants()

		if len(remaining) == 1 {
			record, err := s.finish(ctx, session, &models.Outcome{
				Kind:    models.OutcomeWinnerTakesAll,
				Winners: []string{remaining[0].UserID},
				Detail:  "win by forfeit",
			})
			if err != nil {
				return nil, nil, nil, err
			}
			return record, nil, session, nil
		}

		if len(remaining) == 0 {
			cancellation, err := s.cancel(ctx, session, emptyReason)
			if err != nil {
				return nil, nil, nil, err
			}
			return nil, cancellation, session, nil
		}

		normalizeTurn(session)
		s.touch(session)
		if err := s.save(ctx, session); err != nil {
			return nil, nil, nil, err
		}
		return nil, nil, session, nil

	default:
		return nil, nil, nil, ErrInvalidPhaseTransition
	}
}

// removeUnderfunded drops a participant who could not fund their stake and
// auto-cancels the session when it falls below minimum players. The caller
// always gets ErrInsufficientFunds back.
func (s *service) removeUnderfunded(ctx context.Context, session *models.Session, userID string) error {
	for i, p := range session.Participants {
		if p.UserID == userID {
			session.Participants = append(session.Participants[:i], session.Participants[i+1:]...)
			break
		}
	}

	if len(session.Participants) < session.MinPlayers {
		if _, err := s.cancel(ctx, session, models.CancelReasonUnderfunded); err != nil {
			return err
		}
		return ErrInsufficientFunds
	}

	s.touch(session)
	if err := s.save(ctx, session); err != nil {
		return err
	}
	return ErrInsufficientFunds
}

// removeAndRefund takes a pre-active leaver out of the session, refunding
// their ticket when one was escrowed
func (s *service) removeAndRefund(ctx context.Context, session *models.Session, participant *models.Participant) error {
	if participant.TicketID != "" {
		refunded, err := s.escrowService.Refund(ctx, &escrowService.RefundInput{
			TicketID: participant.TicketID,
		})
		if err != nil && !errors.Is(err, escrowService.ErrTicketConsumed) {
			return err
		}
		if err == nil {
			session.Pot -= refunded.Ticket.Amount
		}
	}

	for i, p := range session.Participants {
		if p.UserID == participant.UserID {
			session.Participants = append(session.Participants[:i], session.Participants[i+1:]...)
			break
		}
	}
	return nil
}

// allStaked reports whether every participant has an escrowed ticket
func (s *service) allStaked(session *models.Session) bool {
	for _, p := range session.Participants {
		if p.TicketID == "" {
			return false
		}
	}
	return len(session.Participants) >= session.MinPlayers
}

// activate moves a fully staked session into play: the participant order
// freezes, the module deals, and score sessions get their end challenge
func (s *service) activate(ctx context.Context, session *models.Session) (*models.Challenge, error) {
	if err := transition(session, models.PhaseActive); err != nil {
		return nil, err
	}

	module, err := s.module(session.Kind)
	if err != nil {
		return nil, err
	}

	if err := module.Init(session); err != nil {
		return nil, err
	}
	session.TurnIndex = 0

	if err := s.anticheatService.StartTracking(ctx, &anticheatService.StartTrackingInput{
		SessionID: session.ID,
	}); err != nil {
		return nil, err
	}

	if module.TurnBased() {
		return nil, nil
	}

	issued, err := s.anticheatService.IssueChallenge(ctx, &anticheatService.IssueChallengeInput{
		SessionID: session.ID,
		UserID:    session.Participants[0].UserID,
	})
	if err != nil {
		return nil, err
	}
	return issued.Challenge, nil
}

// finish settles an outcome and closes the session. A ledger inconsistency
// freezes the session instead of settling it.
func (s *service) finish(ctx context.Context, session *models.Session, outcome *models.Outcome) (*models.SettlementRecord, error) {
	if err := transition(session, models.PhaseSettlement); err != nil {
		return nil, err
	}

	settled, err := s.settlementService.Settle(ctx, &settlementService.SettleInput{
		Session: session,
		Outcome: outcome,
	})
	if err != nil {
		if errors.Is(err, escrowService.ErrLedgerInconsistency) {
			session.Frozen = true
			if saveErr := s.save(ctx, session); saveErr != nil {
				return nil, saveErr
			}
		}
		if errors.Is(err, settlementService.ErrSessionFlagged) {
			return nil, ErrSessionFlagged
		}
		return nil, err
	}

	if err := transition(session, models.PhaseClosed); err != nil {
		return nil, err
	}

	if err := s.anticheatService.ClearSession(ctx, &anticheatService.ClearSessionInput{
		SessionID: session.ID,
	}); err != nil {
		return nil, err
	}

	s.touch(session)
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	return settled.Record, nil
}

// cancel refunds outstanding tickets and moves the session to cancelled.
// The phase change is validated before any money moves so a refused
// transition can never strand a half-refunded session.
func (s *service) cancel(ctx context.Context, session *models.Session, reason models.CancellationReason) (*models.CancellationRecord, error) {
	if session.Phase != models.PhaseCancelled && !canTransition(session.Phase, models.PhaseCancelled) {
		return nil, ErrInvalidPhaseTransition
	}

	cancelled, err := s.settlementService.Cancel(ctx, &settlementService.CancelInput{
		Session: session,
		Reason:  reason,
	})
	if err != nil {
		if errors.Is(err, settlementService.ErrAlreadySettled) {
			return nil, ErrAlreadySettled
		}
		return nil, err
	}

	if session.Phase != models.PhaseCancelled {
		if err := transition(session, models.PhaseCancelled); err != nil {
			return nil, err
		}
	}

	if err := s.anticheatService.ClearSession(ctx, &anticheatService.ClearSessionInput{
		SessionID: session.ID,
	}); err != nil {
		return nil, err
	}

	s.touch(session)
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	return cancelled.Record, nil
}

func (s *service) loadSession(ctx context.Context, sessionID string) (*models.Session, error) {
	session, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{SessionID: sessionID})
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (s *service) save(ctx context.Context, session *models.Session) error {
	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{Session: session}); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *service) touch(session *models.Session) {
	session.LastActivityAt = s.clock.Now()
}

func (s *service) module(kind models.SessionKind) (rules.Module, error) {
	module, ok := s.modules[kind]
	if !ok {
		return nil, ErrUnknownKind
	}
	return module, nil
}

func (s *service) turnUserID(session *models.Session) string {
	if session.TurnIndex >= len(session.Participants) {
		return ""
	}
	return session.Participants[session.TurnIndex].UserID
}

// transition validates a phase change against the table
func transition(session *models.Session, to models.SessionPhase) error {
	if !canTransition(session.Phase, to) {
		return ErrInvalidPhaseTransition
	}
	session.Phase = to
	return nil
}

// canTransition reports whether the phase table allows the change
func canTransition(from, to models.SessionPhase) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// normalizeTurn moves the turn off a participant who is no longer active
func normalizeTurn(session *models.Session) {
	if len(session.Participants) == 0 {
		return
	}
	if session.TurnIndex >= len(session.Participants) {
		session.TurnIndex = 0
	}
	if session.Participants[session.TurnIndex].Status == models.ParticipantStatusActive {
		return
	}
	advanceTurn(session)
}

// advanceTurn rotates to the next active participant in join order
func advanceTurn(session *models.Session) {
	n := len(session.Participants)
	if n == 0 {
		return
	}
	for i := 1; i <= n; i++ {
		idx := (session.TurnIndex + i) % n
		if session.Participants[idx].Status == models.ParticipantStatusActive {
			session.TurnIndex = idx
			return
		}
	}
}
