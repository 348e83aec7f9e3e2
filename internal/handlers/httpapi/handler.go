package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/nolanpeet/stakehouse/internal/models"
	"github.com/nolanpeet/stakehouse/internal/rules"
	"github.com/nolanpeet/stakehouse/internal/services/manager"
)

const (
	// userHeader carries the caller's identity; the upstream identity
	// provider is trusted to have authenticated it
	userHeader = "X-User-ID"

	// watchInterval is how often the websocket pushes a fresh snapshot
	watchInterval = time.Second
)

// Config holds configuration for the HTTP handler
type Config struct {
	// Manager is the engine entry point
	Manager manager.Service
}

// Handler serves the wagering session API
type Handler struct {
	manager  manager.Service
	upgrader websocket.Upgrader
}

// New creates a new HTTP handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Manager == nil {
		return nil, errors.New("manager cannot be nil")
	}

	return &Handler{
		manager: cfg.Manager,
		upgrader: websocket.Upgrader{
			// CORS policy is enforced by the outer middleware
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}, nil
}

// Router builds the route table
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", h.healthz).Methods(http.MethodGet)

	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/sessions", h.createSession).Methods(http.MethodPost)
	v1.HandleFunc("/sessions/{id}", h.getSession).Methods(http.MethodGet)
	v1.HandleFunc("/sessions/{id}/watch", h.watch).Methods(http.MethodGet)
	v1.HandleFunc("/sessions/{id}/join", h.join).Methods(http.MethodPost)
	v1.HandleFunc("/sessions/{id}/stake", h.stake).Methods(http.MethodPost)
	v1.HandleFunc("/sessions/{id}/actions", h.submitAction).Methods(http.MethodPost)
	v1.HandleFunc("/sessions/{id}/score", h.reportScore).Methods(http.MethodPost)
	v1.HandleFunc("/sessions/{id}/end", h.endSession).Methods(http.MethodPost)
	v1.HandleFunc("/sessions/{id}/leave", h.leave).Methods(http.MethodPost)
	v1.HandleFunc("/sessions/{id}/cancel", h.cancel).Methods(http.MethodPost)

	return r
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.userID(w, r); !ok {
		return
	}

	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.Kind == "" {
		writeBadRequest(w, "kind is required")
		return
	}

	created, err := h.manager.CreateSession(r.Context(), &manager.CreateSessionInput{
		Kind:           req.Kind,
		FixedStake:     req.FixedStake,
		MinPlayers:     req.MinPlayers,
		MaxPlayers:     req.MaxPlayers,
		TimeoutSeconds: req.TimeoutSeconds,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, &sessionResponse{Session: created.View})
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	state, err := h.manager.GetState(r.Context(), &manager.GetStateInput{
		SessionID: mux.Vars(r)["id"],
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &sessionResponse{Session: state.View})
}

func (h *Handler) join(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	joined, err := h.manager.Join(r.Context(), &manager.JoinInput{
		SessionID: mux.Vars(r)["id"],
		UserID:    userID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &sessionResponse{Session: joined.View})
}

func (h *Handler) stake(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req stakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.Amount <= 0 {
		writeBadRequest(w, "amount must be positive")
		return
	}

	staked, err := h.manager.Stake(r.Context(), &manager.StakeInput{
		SessionID: mux.Vars(r)["id"],
		UserID:    userID,
		Amount:    req.Amount,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	resp := &sessionResponse{Session: staked.View}
	if staked.Challenge != nil {
		resp.Challenge = &challengeBody{
			Nonce:    staked.Challenge.Nonce,
			IssuedAt: staked.Challenge.IssuedAt.Format(time.RFC3339),
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) submitAction(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req actionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.Type == "" {
		writeBadRequest(w, "action type is required")
		return
	}

	submitted, err := h.manager.SubmitAction(r.Context(), &manager.SubmitActionInput{
		SessionID: mux.Vars(r)["id"],
		UserID:    userID,
		Action: rules.Action{
			Type:   rules.ActionType(req.Type),
			Amount: req.Amount,
			Target: req.Target,
		},
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &sessionResponse{
		Session:    submitted.View,
		Detail:     submitted.Detail,
		Settlement: submitted.Record,
	})
}

func (h *Handler) reportScore(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	reported, err := h.manager.ReportScore(r.Context(), &manager.ReportScoreInput{
		SessionID: mux.Vars(r)["id"],
		UserID:    userID,
		Score:     req.Score,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &sessionResponse{
		Session:       reported.View,
		AcceptedScore: &reported.AcceptedScore,
	})
}

func (h *Handler) endSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req endRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	ended, err := h.manager.EndSession(r.Context(), &manager.EndSessionInput{
		SessionID:         mux.Vars(r)["id"],
		UserID:            userID,
		ChallengeResponse: req.ChallengeResponse,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &sessionResponse{
		Session:    ended.View,
		Settlement: ended.Record,
	})
}

func (h *Handler) leave(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	left, err := h.manager.Disconnect(r.Context(), &manager.DisconnectInput{
		SessionID: mux.Vars(r)["id"],
		UserID:    userID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &sessionResponse{
		Session:      left.View,
		Settlement:   left.Record,
		Cancellation: left.Cancellation,
	})
}

func (h *Handler) cancel(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.userID(w, r); !ok {
		return
	}

	var req cancelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	reason := req.Reason
	if reason == "" {
		reason = models.CancelReasonRequested
	}

	cancelled, err := h.manager.Cancel(r.Context(), &manager.CancelInput{
		SessionID: mux.Vars(r)["id"],
		Reason:    reason,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &sessionResponse{
		Session:      cancelled.View,
		Cancellation: cancelled.Cancellation,
	})
}

// watch pushes session snapshots over a websocket until the session reaches
// a terminal phase or the client goes away
func (h *Handler) watch(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// the read pump only exists to notice the peer closing
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		state, err := h.manager.GetState(ctx, &manager.GetStateInput{SessionID: sessionID})
		if err != nil {
			return
		}
		if err := conn.WriteJSON(state.View); err != nil {
			return
		}
		if state.View.Phase == models.PhaseClosed || state.View.Phase == models.PhaseCancelled {
			return
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return
		}
	}
}

// userID extracts the caller's identity, writing a 401 when it is missing
func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := r.Header.Get(userHeader)
	if userID == "" {
		writeJSON(w, http.StatusUnauthorized, &errorResponse{
			Error: "missing " + userHeader + " header",
			Code:  "unauthenticated",
		})
		return "", false
	}
	return userID, true
}
