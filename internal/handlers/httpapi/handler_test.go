package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/nolanpeet/stakehouse/internal/models"
	sessionRepo "github.com/nolanpeet/stakehouse/internal/repositories/session"
	"github.com/nolanpeet/stakehouse/internal/services/manager"
	managerMocks "github.com/nolanpeet/stakehouse/internal/services/manager/mocks"
	matchService "github.com/nolanpeet/stakehouse/internal/services/match"
)

type HandlerTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockManager *managerMocks.MockService
	handler     *Handler
	router      http.Handler

	testSessionID string
}

func (s *HandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockManager = managerMocks.NewMockService(s.mockCtrl)
	s.testSessionID = "test-session-id"

	handler, err := New(&Config{Manager: s.mockManager})
	s.Require().NoError(err)
	s.handler = handler
	s.router = handler.Router()
}

func (s *HandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *HandlerTestSuite) request(method, path, userID string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != nil {
		encoded, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewBuffer(encoded)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if userID != "" {
		req.Header.Set(userHeader, userID)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) decodeSession(rec *httptest.ResponseRecorder) *sessionResponse {
	var resp sessionResponse
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&resp))
	return &resp
}

func (s *HandlerTestSuite) decodeError(rec *httptest.ResponseRecorder) *errorResponse {
	var resp errorResponse
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&resp))
	return &resp
}

func (s *HandlerTestSuite) view(phase models.SessionPhase) *manager.SessionView {
	return &manager.SessionView{
		ID:    s.testSessionID,
		Kind:  models.KindBoardRace,
		Phase: phase,
		Pot:   100,
	}
}

func (s *HandlerTestSuite) TestHealthz() {
	rec := s.request(http.MethodGet, "/healthz", "", nil)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestCreateSession_HappyPath() {
	s.mockManager.EXPECT().
		CreateSession(gomock.Any(), &manager.CreateSessionInput{
			Kind:       models.KindBoardRace,
			FixedStake: 50,
			MaxPlayers: 2,
		}).
		Return(&manager.CreateSessionOutput{View: s.view(models.PhaseWaitingForPlayers)}, nil)

	rec := s.request(http.MethodPost, "/v1/sessions", "alice", &createSessionRequest{
		Kind:       models.KindBoardRace,
		FixedStake: 50,
		MaxPlayers: 2,
	})

	s.Equal(http.StatusCreated, rec.Code)
	resp := s.decodeSession(rec)
	s.Equal(s.testSessionID, resp.Session.ID)
}

func (s *HandlerTestSuite) TestCreateSession_MissingIdentity() {
	rec := s.request(http.MethodPost, "/v1/sessions", "", &createSessionRequest{
		Kind: models.KindBoardRace,
	})

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("unauthenticated", s.decodeError(rec).Code)
}

func (s *HandlerTestSuite) TestCreateSession_MissingKind() {
	rec := s.request(http.MethodPost, "/v1/sessions", "alice", &createSessionRequest{})

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestGetSession_NotFound() {
	s.mockManager.EXPECT().
		GetState(gomock.Any(), &manager.GetStateInput{SessionID: "missing"}).
		Return(nil, sessionRepo.ErrSessionNotFound)

	rec := s.request(http.MethodGet, "/v1/sessions/missing", "", nil)

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("session_not_found", s.decodeError(rec).Code)
}

func (s *HandlerTestSuite) TestJoin_HappyPath() {
	s.mockManager.EXPECT().
		Join(gomock.Any(), &manager.JoinInput{SessionID: s.testSessionID, UserID: "bob"}).
		Return(&manager.JoinOutput{View: s.view(models.PhaseWaitingForStakes)}, nil)

	rec := s.request(http.MethodPost, "/v1/sessions/"+s.testSessionID+"/join", "bob", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(models.PhaseWaitingForStakes, s.decodeSession(rec).Session.Phase)
}

func (s *HandlerTestSuite) TestStake_InsufficientFunds() {
	s.mockManager.EXPECT().
		Stake(gomock.Any(), gomock.Any()).
		Return(nil, matchService.ErrInsufficientFunds)

	rec := s.request(http.MethodPost, "/v1/sessions/"+s.testSessionID+"/stake", "bob", &stakeRequest{Amount: 50})

	s.Equal(http.StatusPaymentRequired, rec.Code)
	s.Equal("insufficient_funds", s.decodeError(rec).Code)
}

func (s *HandlerTestSuite) TestStake_NonPositiveAmount() {
	rec := s.request(http.MethodPost, "/v1/sessions/"+s.testSessionID+"/stake", "bob", &stakeRequest{Amount: 0})

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestStake_ReturnsChallenge() {
	s.mockManager.EXPECT().
		Stake(gomock.Any(), &manager.StakeInput{
			SessionID: s.testSessionID,
			UserID:    "alice",
			Amount:    50,
		}).
		Return(&manager.StakeOutput{
			View:      s.view(models.PhaseActive),
			Challenge: &models.Challenge{Nonce: "test-nonce"},
		}, nil)

	rec := s.request(http.MethodPost, "/v1/sessions/"+s.testSessionID+"/stake", "alice", &stakeRequest{Amount: 50})

	s.Equal(http.StatusOK, rec.Code)
	resp := s.decodeSession(rec)
	s.Require().NotNil(resp.Challenge)
	s.Equal("test-nonce", resp.Challenge.Nonce)
}

func (s *HandlerTestSuite) TestSubmitAction_OutOfTurn() {
	s.mockManager.EXPECT().
		SubmitAction(gomock.Any(), gomock.Any()).
		Return(nil, matchService.ErrOutOfTurn)

	rec := s.request(http.MethodPost, "/v1/sessions/"+s.testSessionID+"/actions", "bob", &actionRequest{Type: "roll"})

	s.Equal(http.StatusConflict, rec.Code)
	s.Equal("out_of_turn", s.decodeError(rec).Code)
}

func (s *HandlerTestSuite) TestSubmitAction_SettlesSession() {
	record := &models.SettlementRecord{
		SessionID: s.testSessionID,
		Payouts:   []models.Payout{{UserID: "alice", Amount: 100}},
	}
	s.mockManager.EXPECT().
		SubmitAction(gomock.Any(), gomock.Any()).
		Return(&manager.SubmitActionOutput{
			View:   s.view(models.PhaseClosed),
			Record: record,
		}, nil)

	rec := s.request(http.MethodPost, "/v1/sessions/"+s.testSessionID+"/actions", "alice", &actionRequest{Type: "roll"})

	s.Equal(http.StatusOK, rec.Code)
	resp := s.decodeSession(rec)
	s.Require().NotNil(resp.Settlement)
	s.Equal(record.Payouts, resp.Settlement.Payouts)
}

func (s *HandlerTestSuite) TestReportScore_AntiCheatRejected() {
	s.mockManager.EXPECT().
		ReportScore(gomock.Any(), gomock.Any()).
		Return(nil, matchService.ErrAntiCheatRejected)

	rec := s.request(http.MethodPost, "/v1/sessions/"+s.testSessionID+"/score", "alice", &scoreRequest{Score: 1000000})

	s.Equal(http.StatusForbidden, rec.Code)
	s.Equal("anti_cheat_rejected", s.decodeError(rec).Code)
}

func (s *HandlerTestSuite) TestEndSession_ChallengeFailed() {
	s.mockManager.EXPECT().
		EndSession(gomock.Any(), gomock.Any()).
		Return(nil, matchService.ErrChallengeFailed)

	rec := s.request(http.MethodPost, "/v1/sessions/"+s.testSessionID+"/end", "alice", &endRequest{ChallengeResponse: "wrong"})

	s.Equal(http.StatusForbidden, rec.Code)
	s.Equal("challenge_failed", s.decodeError(rec).Code)
}

func (s *HandlerTestSuite) TestCancel_DefaultsReason() {
	s.mockManager.EXPECT().
		Cancel(gomock.Any(), &manager.CancelInput{
			SessionID: s.testSessionID,
			Reason:    models.CancelReasonRequested,
		}).
		Return(&manager.CancelOutput{
			View:         s.view(models.PhaseCancelled),
			Cancellation: &models.CancellationRecord{Reason: models.CancelReasonRequested},
		}, nil)

	rec := s.request(http.MethodPost, "/v1/sessions/"+s.testSessionID+"/cancel", "alice", &cancelRequest{})

	s.Equal(http.StatusOK, rec.Code)
	s.Require().NotNil(s.decodeSession(rec).Cancellation)
}

func (s *HandlerTestSuite) TestLeave_FrozenSession() {
	s.mockManager.EXPECT().
		Disconnect(gomock.Any(), gomock.Any()).
		Return(nil, matchService.ErrSessionFrozen)

	rec := s.request(http.MethodPost, "/v1/sessions/"+s.testSessionID+"/leave", "alice", nil)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("session_frozen", s.decodeError(rec).Code)
}

func (s *HandlerTestSuite) TestWatch_StreamsUntilTerminal() {
	// Two snapshots: one active, then closed, which ends the stream
	active := s.mockManager.EXPECT().
		GetState(gomock.Any(), &manager.GetStateInput{SessionID: s.testSessionID}).
		Return(&manager.GetStateOutput{View: s.view(models.PhaseActive)}, nil)
	s.mockManager.EXPECT().
		GetState(gomock.Any(), &manager.GetStateInput{SessionID: s.testSessionID}).
		Return(&manager.GetStateOutput{View: s.view(models.PhaseClosed)}, nil).
		After(active)

	server := httptest.NewServer(s.router)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/v1/sessions/" + s.testSessionID + "/watch"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	s.Require().NoError(err)
	defer resp.Body.Close()
	defer conn.Close()

	var first manager.SessionView
	s.Require().NoError(conn.ReadJSON(&first))
	s.Equal(models.PhaseActive, first.Phase)

	var second manager.SessionView
	s.Require().NoError(conn.ReadJSON(&second))
	s.Equal(models.PhaseClosed, second.Phase)

	// Terminal phase closes the stream from the server side
	_, _, err = conn.ReadMessage()
	s.Error(err)
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
