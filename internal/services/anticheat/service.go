package anticheat

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nolanpeet/stakehouse/internal/common/clock"
	"github.com/nolanpeet/stakehouse/internal/models"
)

const (
	// rateTolerance gives honest clients headroom over the configured ceiling
	rateTolerance = 1.2

	// maxSuspiciousFlags is how many rejections a session survives before
	// it is permanently flagged
	maxSuspiciousFlags = 3

	// challengeTTL is how long an issued challenge stays verifiable
	challengeTTL = 300 * time.Second

	// nonceBytes is the length of the random challenge nonce
	nonceBytes = 16
)

// rateState tracks the accepted score trajectory for one session
type rateState struct {
	acceptedScore   int64
	lastUpdate      time.Time
	suspiciousFlags int
	flagged         bool
}

// service implements the Service interface
type service struct {
	clock             clock.Clock
	serverSecret      []byte
	maxScorePerSecond float64

	mu         sync.Mutex
	sessions   map[string]*rateState
	challenges map[string]*models.Challenge
}

// New creates a new anti-cheat service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if len(cfg.ServerSecret) == 0 {
		return nil, ErrMissingSecret
	}

	if cfg.MaxScorePerSecond <= 0 {
		return nil, errors.New("max score per second must be positive")
	}

	return &service{
		clock:             cfg.Clock,
		serverSecret:      cfg.ServerSecret,
		maxScorePerSecond: cfg.MaxScorePerSecond,
		sessions:          make(map[string]*rateState),
		challenges:        make(map[string]*models.Challenge),
	}, nil
}

// StartTracking seeds the rate state for a session when it goes active
func (s *service) StartTracking(ctx context.Context, input *StartTrackingInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[input.SessionID]; ok {
		return nil
	}

	s.sessions[input.SessionID] = &rateState{
		lastUpdate: s.clock.Now(),
	}

	return nil
}

// ValidateScore rate-checks a cumulative score report. A rejection leaves
// the accepted score untouched and counts toward the session's flag.
func (s *service) ValidateScore(ctx context.Context, input *ValidateScoreInput) (*ValidateScoreOutput, error) {
	if input == nil || input.SessionID == "" || input.UserID == "" {
		return nil, errors.New("input, session ID and user ID cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions[input.SessionID]
	if !ok {
		state = &rateState{lastUpdate: s.clock.Now()}
		s.sessions[input.SessionID] = state
	}

	if state.flagged {
		return nil, ErrSessionFlagged
	}

	now := s.clock.Now()
	elapsed := now.Sub(state.lastUpdate).Seconds()
	if elapsed < 0 {
		elapsed = 0
	}

	delta := input.Score - state.acceptedScore
	allowedMax := s.maxScorePerSecond * elapsed * rateTolerance

	if float64(delta) > allowedMax {
		state.suspiciousFlags++
		if state.suspiciousFlags > maxSuspiciousFlags {
			state.flagged = true
			return nil, ErrSessionFlagged
		}
		return nil, ErrScoreRejected
	}

	if delta > 0 {
		state.acceptedScore = input.Score
	}
	state.lastUpdate = now

	return &ValidateScoreOutput{AcceptedScore: state.acceptedScore}, nil
}

// IsFlagged reports whether a session has been permanently flagged
func (s *service) IsFlagged(ctx context.Context, input *IsFlaggedInput) (bool, error) {
	if input == nil || input.SessionID == "" {
		return false, errors.New("input and session ID cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions[input.SessionID]
	if !ok {
		return false, nil
	}

	return state.flagged, nil
}

// IssueChallenge creates a single-use challenge for a participant. Reissuing
// replaces any pending challenge for the same participant.
func (s *service) IssueChallenge(ctx context.Context, input *IssueChallengeInput) (*IssueChallengeOutput, error) {
	if input == nil || input.SessionID == "" || input.UserID == "" {
		return nil, errors.New("input, session ID and user ID cannot be empty")
	}

	nonce := make([]byte, nonceBytes)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	challenge := &models.Challenge{
		SessionID: input.SessionID,
		UserID:    input.UserID,
		Nonce:     hex.EncodeToString(nonce),
		IssuedAt:  s.clock.Now(),
	}

	s.mu.Lock()
	s.challenges[challengeKey(input.SessionID, input.UserID)] = challenge
	s.mu.Unlock()

	return &IssueChallengeOutput{Challenge: challenge}, nil
}

// VerifyResponse checks a challenge response. The pending challenge is
// consumed on the first attempt whether or not verification succeeds.
func (s *service) VerifyResponse(ctx context.Context, input *VerifyResponseInput) error {
	if input == nil || input.SessionID == "" || input.UserID == "" {
		return errors.New("input, session ID and user ID cannot be empty")
	}

	key := challengeKey(input.SessionID, input.UserID)

	s.mu.Lock()
	challenge, ok := s.challenges[key]
	delete(s.challenges, key)
	s.mu.Unlock()

	if !ok {
		return ErrChallengeFailed
	}

	if s.clock.Now().Sub(challenge.IssuedAt) > challengeTTL {
		return ErrChallengeFailed
	}

	expected := ComputeResponse(s.serverSecret, challenge.Nonce, challenge.SessionID, challenge.UserID)
	if !hmac.Equal([]byte(expected), []byte(input.Response)) {
		return ErrChallengeFailed
	}

	return nil
}

// ClearSession drops all tracking state for a terminal session
func (s *service) ClearSession(ctx context.Context, input *ClearSessionInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, input.SessionID)
	for key, challenge := range s.challenges {
		if challenge.SessionID == input.SessionID {
			delete(s.challenges, key)
		}
	}

	return nil
}

// ComputeResponse derives the expected challenge response. Trusted clients
// compute the same value over the nonce they were issued.
func ComputeResponse(secret []byte, nonce, sessionID, userID string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(nonce + "|" + sessionID + "|" + userID))
	return hex.EncodeToString(mac.Sum(nil))
}

func challengeKey(sessionID, userID string) string {
	return sessionID + "|" + userID
}
