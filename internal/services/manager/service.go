package manager

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/nolanpeet/stakehouse/internal/common/clock"
	"github.com/nolanpeet/stakehouse/internal/models"
	sessionRepo "github.com/nolanpeet/stakehouse/internal/repositories/session"
	matchService "github.com/nolanpeet/stakehouse/internal/services/match"
)

// command is one unit of serialized work for a session worker. fn reports
// whether the session reached a terminal phase so the worker can be reaped.
type command struct {
	fn   func(ctx context.Context) bool
	done chan struct{}
}

// worker serializes all mutation of one session
type worker struct {
	sessionID string
	commands  chan *command
	closed    chan struct{}
}

// service implements the Service interface
type service struct {
	matchService  matchService.Service
	sessionRepo   sessionRepo.Repository
	clock         clock.Clock
	announcer     Announcer
	sweepInterval time.Duration

	mu      sync.Mutex
	workers map[string]*worker
	started bool
	stopped bool
	stop    chan struct{}
	baseCtx context.Context
	wg      sync.WaitGroup
}

// New creates a new session manager
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.MatchService == nil {
		return nil, ErrNilMatchService
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	sweepInterval := cfg.SweepInterval
	if sweepInterval == 0 {
		sweepInterval = DefaultSweepInterval
	}

	return &service{
		matchService:  cfg.MatchService,
		sessionRepo:   cfg.SessionRepo,
		clock:         cfg.Clock,
		announcer:     cfg.Announcer,
		sweepInterval: sweepInterval,
		workers:       make(map[string]*worker),
		stop:          make(chan struct{}),
	}, nil
}

// Start launches the idle sweep. The context outlives individual requests;
// it is the base context every worker command runs under.
func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return ErrStopped
	}
	if s.started {
		return errors.New("manager already started")
	}

	s.started = true
	s.baseCtx = ctx
	s.wg.Add(1)
	go s.sweepLoop()

	return nil
}

// Stop stops the sweep and drains every worker
func (s *service) Stop() {
	s.mu.Lock()
	if !s.started || s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	close(s.stop)
	s.mu.Unlock()

	s.wg.Wait()
}

// CreateSession creates a session; the worker spins up lazily on its first
// command
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if err := s.ready(); err != nil {
		return nil, err
	}

	created, err := s.matchService.CreateSession(ctx, &matchService.CreateSessionInput{
		Kind:           input.Kind,
		FixedStake:     input.FixedStake,
		MinPlayers:     input.MinPlayers,
		MaxPlayers:     input.MaxPlayers,
		TimeoutSeconds: input.TimeoutSeconds,
	})
	if err != nil {
		return nil, err
	}

	return &CreateSessionOutput{View: NewSessionView(created.Session)}, nil
}

// Join seats a user in a session
func (s *service) Join(ctx context.Context, input *JoinInput) (*JoinOutput, error) {
	if input == nil || input.SessionID == "" || input.UserID == "" {
		return nil, errors.New("input, session ID and user ID cannot be empty")
	}

	var output *JoinOutput
	var opErr error
	err := s.dispatch(ctx, input.SessionID, func(ctx context.Context) bool {
		joined, err := s.matchService.Join(ctx, &matchService.JoinInput{
			SessionID: input.SessionID,
			UserID:    input.UserID,
		})
		if err != nil {
			opErr = err
			return false
		}
		output = &JoinOutput{View: NewSessionView(joined.Session)}
		return joined.Session.Terminal()
	})
	if err != nil {
		return nil, err
	}
	if opErr != nil {
		return nil, opErr
	}
	return output, nil
}

// Stake escrows a participant's stake
func (s *service) Stake(ctx context.Context, input *StakeInput) (*StakeOutput, error) {
	if input == nil || input.SessionID == "" || input.UserID == "" {
		return nil, errors.New("input, session ID and user ID cannot be empty")
	}

	var output *StakeOutput
	var opErr error
	err := s.dispatch(ctx, input.SessionID, func(ctx context.Context) bool {
		staked, err := s.matchService.Stake(ctx, &matchService.StakeInput{
			SessionID: input.SessionID,
			UserID:    input.UserID,
			Amount:    input.Amount,
		})
		if err != nil {
			opErr = err
			// an underfunded stake can auto-cancel the whole session
			return errors.Is(err, matchService.ErrInsufficientFunds)
		}
		output = &StakeOutput{
			View:      NewSessionView(staked.Session),
			Challenge: staked.Challenge,
		}
		return staked.Session.Terminal()
	})
	if err != nil {
		return nil, err
	}
	if opErr != nil {
		return nil, opErr
	}
	return output, nil
}

// SubmitAction applies a participant action through the rule module
func (s *service) SubmitAction(ctx context.Context, input *SubmitActionInput) (*SubmitActionOutput, error) {
	if input == nil || input.SessionID == "" || input.UserID == "" {
		return nil, errors.New("input, session ID and user ID cannot be empty")
	}

	var output *SubmitActionOutput
	var opErr error
	err := s.dispatch(ctx, input.SessionID, func(ctx context.Context) bool {
		submitted, err := s.matchService.Submit(ctx, &matchService.SubmitInput{
			SessionID: input.SessionID,
			UserID:    input.UserID,
			Action:    input.Action,
		})
		if err != nil {
			opErr = err
			return false
		}
		output = &SubmitActionOutput{
			View:   NewSessionView(submitted.Session),
			Record: submitted.Record,
		}
		if submitted.Result != nil {
			output.Detail = submitted.Result.Detail
		}
		s.announce(ctx, submitted.Session.Kind, submitted.Record, nil)
		return submitted.Session.Terminal()
	})
	if err != nil {
		return nil, err
	}
	if opErr != nil {
		return nil, opErr
	}
	return output, nil
}

// ReportScore validates and records a score report
func (s *service) ReportScore(ctx context.Context, input *ReportScoreInput) (*ReportScoreOutput, error) {
	if input == nil || input.SessionID == "" || input.UserID == "" {
		return nil, errors.New("input, session ID and user ID cannot be empty")
	}

	var output *ReportScoreOutput
	var opErr error
	err := s.dispatch(ctx, input.SessionID, func(ctx context.Context) bool {
		reported, err := s.matchService.ReportScore(ctx, &matchService.ReportScoreInput{
			SessionID: input.SessionID,
			UserID:    input.UserID,
			Score:     input.Score,
		})
		if err != nil {
			opErr = err
			return false
		}
		output = &ReportScoreOutput{
			View:          NewSessionView(reported.Session),
			AcceptedScore: reported.AcceptedScore,
		}
		return false
	})
	if err != nil {
		return nil, err
	}
	if opErr != nil {
		return nil, opErr
	}
	return output, nil
}

// EndSession finishes a score session after challenge verification
func (s *service) EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error) {
	if input == nil || input.SessionID == "" || input.UserID == "" {
		return nil, errors.New("input, session ID and user ID cannot be empty")
	}

	var output *EndSessionOutput
	var opErr error
	err := s.dispatch(ctx, input.SessionID, func(ctx context.Context) bool {
		ended, err := s.matchService.End(ctx, &matchService.EndInput{
			SessionID:         input.SessionID,
			UserID:            input.UserID,
			ChallengeResponse: input.ChallengeResponse,
		})
		if err != nil {
			opErr = err
			return false
		}
		output = &EndSessionOutput{
			View:   NewSessionView(ended.Session),
			Record: ended.Record,
		}
		s.announce(ctx, ended.Session.Kind, ended.Record, nil)
		return ended.Session.Terminal()
	})
	if err != nil {
		return nil, err
	}
	if opErr != nil {
		return nil, opErr
	}
	return output, nil
}

// GetState reads a public snapshot without touching the worker; reads never
// queue behind mutations
func (s *service) GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}
	if err := s.ready(); err != nil {
		return nil, err
	}

	got, err := s.matchService.GetSession(ctx, &matchService.GetSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return nil, err
	}

	return &GetStateOutput{View: NewSessionView(got.Session)}, nil
}

// Disconnect marks a participant disconnected
func (s *service) Disconnect(ctx context.Context, input *DisconnectInput) (*DisconnectOutput, error) {
	if input == nil || input.SessionID == "" || input.UserID == "" {
		return nil, errors.New("input, session ID and user ID cannot be empty")
	}

	var output *DisconnectOutput
	var opErr error
	err := s.dispatch(ctx, input.SessionID, func(ctx context.Context) bool {
		disconnected, err := s.matchService.Disconnect(ctx, &matchService.DisconnectInput{
			SessionID: input.SessionID,
			UserID:    input.UserID,
		})
		if err != nil {
			opErr = err
			return false
		}
		output = &DisconnectOutput{
			View:         NewSessionView(disconnected.Session),
			Record:       disconnected.Record,
			Cancellation: disconnected.Cancellation,
		}
		s.announce(ctx, disconnected.Session.Kind, disconnected.Record, disconnected.Cancellation)
		return disconnected.Session.Terminal()
	})
	if err != nil {
		return nil, err
	}
	if opErr != nil {
		return nil, opErr
	}
	return output, nil
}

// Cancel refunds and closes a pre-settlement session
func (s *service) Cancel(ctx context.Context, input *CancelInput) (*CancelOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	var output *CancelOutput
	var opErr error
	err := s.dispatch(ctx, input.SessionID, func(ctx context.Context) bool {
		cancelled, err := s.matchService.Cancel(ctx, &matchService.CancelInput{
			SessionID: input.SessionID,
			Reason:    input.Reason,
		})
		if err != nil {
			opErr = err
			return false
		}
		output = &CancelOutput{
			View:         NewSessionView(cancelled.Session),
			Cancellation: cancelled.Record,
		}
		s.announce(ctx, cancelled.Session.Kind, nil, cancelled.Record)
		return cancelled.Session.Terminal()
	})
	if err != nil {
		return nil, err
	}
	if opErr != nil {
		return nil, opErr
	}
	return output, nil
}

// announce forwards terminal records to the configured announcer
func (s *service) announce(ctx context.Context, kind models.SessionKind, record *models.SettlementRecord, cancellation *models.CancellationRecord) {
	if s.announcer == nil {
		return
	}
	if record != nil {
		s.announcer.AnnounceSettlement(ctx, kind, record)
	}
	if cancellation != nil {
		s.announcer.AnnounceCancellation(ctx, kind, cancellation)
	}
}

// ready reports whether the manager accepts commands
func (s *service) ready() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return ErrNotStarted
	}
	if s.stopped {
		return ErrStopped
	}
	return nil
}

// acquire returns the live worker for a session, creating one if needed
func (s *service) acquire(sessionID string) (*worker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return nil, ErrNotStarted
	}
	if s.stopped {
		return nil, ErrStopped
	}

	if w, ok := s.workers[sessionID]; ok {
		return w, nil
	}

	w := &worker{
		sessionID: sessionID,
		commands:  make(chan *command),
		closed:    make(chan struct{}),
	}
	s.workers[sessionID] = w
	s.wg.Add(1)
	go s.runWorker(w)

	return w, nil
}

// dispatch runs fn on the session's worker and waits for it to finish. A
// worker reaped between acquire and send is replaced transparently.
func (s *service) dispatch(ctx context.Context, sessionID string, fn func(ctx context.Context) bool) error {
	for {
		w, err := s.acquire(sessionID)
		if err != nil {
			return err
		}

		cmd := &command{fn: fn, done: make(chan struct{})}
		select {
		case w.commands <- cmd:
			// the commands channel is unbuffered: a completed send means the
			// worker took the command and will run it to completion
			<-cmd.done
			return nil
		case <-w.closed:
			continue
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// runWorker processes commands for one session until the session reaches a
// terminal phase or the manager stops
func (s *service) runWorker(w *worker) {
	defer s.wg.Done()

	for {
		select {
		case cmd := <-w.commands:
			terminal := cmd.fn(s.baseCtx)
			close(cmd.done)
			if terminal {
				s.reap(w)
				return
			}
		case <-s.stop:
			s.reap(w)
			return
		}
	}
}

// reap removes a worker from the registry and wakes blocked dispatchers
func (s *service) reap(w *worker) {
	s.mu.Lock()
	if s.workers[w.sessionID] == w {
		delete(s.workers, w.sessionID)
	}
	s.mu.Unlock()
	close(w.closed)
}

// sweepLoop cancels idle sessions on a fixed tick
func (s *service) sweepLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(s.baseCtx)
		case <-s.stop:
			return
		}
	}
}

// sweep resolves every live session whose own idle deadline has passed. The
// index query uses one sweep interval as the floor, the per-session
// TimeoutSeconds makes the actual decision.
func (s *service) sweep(ctx context.Context) {
	idle, err := s.sessionRepo.GetIdleSessions(ctx, &sessionRepo.GetIdleSessionsInput{
		OlderThan: s.clock.Now().Add(-s.sweepInterval),
	})
	if err != nil {
		log.Printf("idle sweep: failed to query idle sessions: %v", err)
		return
	}

	for _, sessionID := range idle.SessionIDs {
		session, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{SessionID: sessionID})
		if err != nil {
			if !errors.Is(err, sessionRepo.ErrSessionNotFound) {
				log.Printf("idle sweep: failed to load session %s: %v", sessionID, err)
			}
			continue
		}

		deadline := session.LastActivityAt.Add(time.Duration(session.TimeoutSeconds) * time.Second)
		if s.clock.Now().Before(deadline) {
			continue
		}

		timeoutErr := s.dispatch(ctx, sessionID, func(ctx context.Context) bool {
			resolved, err := s.matchService.Timeout(ctx, &matchService.TimeoutInput{SessionID: sessionID})
			if err != nil {
				log.Printf("idle sweep: timeout for session %s failed: %v", sessionID, err)
				return false
			}
			s.announce(ctx, resolved.Session.Kind, resolved.Record, resolved.Cancellation)
			return resolved.Session.Terminal()
		})
		if timeoutErr != nil {
			// One undispatchable session must not starve the rest of
			// this sweep's candidates
			log.Printf("idle sweep: dispatch for session %s failed: %v", sessionID, timeoutErr)
			continue
		}
	}
}
