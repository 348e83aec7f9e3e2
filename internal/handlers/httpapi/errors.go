package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	sessionRepo "github.com/nolanpeet/stakehouse/internal/repositories/session"
	escrowService "github.com/nolanpeet/stakehouse/internal/services/escrow"
	"github.com/nolanpeet/stakehouse/internal/services/manager"
	matchService "github.com/nolanpeet/stakehouse/internal/services/match"
)

// statusFor maps engine errors onto HTTP statuses and stable error codes.
// Ledger inconsistencies and frozen sessions surface as 500s with their own
// codes so operators can tell them from ordinary failures.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, sessionRepo.ErrSessionNotFound):
		return http.StatusNotFound, "session_not_found"
	case errors.Is(err, matchService.ErrNotParticipant):
		return http.StatusNotFound, "not_participant"
	case errors.Is(err, matchService.ErrInsufficientFunds):
		return http.StatusPaymentRequired, "insufficient_funds"
	case errors.Is(err, matchService.ErrOutOfTurn):
		return http.StatusConflict, "out_of_turn"
	case errors.Is(err, matchService.ErrInvalidPhaseTransition):
		return http.StatusConflict, "invalid_phase"
	case errors.Is(err, matchService.ErrSessionFull):
		return http.StatusConflict, "session_full"
	case errors.Is(err, matchService.ErrAlreadyJoined):
		return http.StatusConflict, "already_joined"
	case errors.Is(err, matchService.ErrAlreadyStaked):
		return http.StatusConflict, "already_staked"
	case errors.Is(err, matchService.ErrWrongStake):
		return http.StatusConflict, "wrong_stake"
	case errors.Is(err, matchService.ErrAlreadySettled):
		return http.StatusConflict, "already_settled"
	case errors.Is(err, matchService.ErrUnknownKind):
		return http.StatusBadRequest, "unknown_kind"
	case errors.Is(err, matchService.ErrAntiCheatRejected):
		return http.StatusForbidden, "anti_cheat_rejected"
	case errors.Is(err, matchService.ErrChallengeFailed):
		return http.StatusForbidden, "challenge_failed"
	case errors.Is(err, matchService.ErrSessionFlagged):
		return http.StatusForbidden, "session_flagged"
	case errors.Is(err, matchService.ErrSessionFrozen):
		return http.StatusInternalServerError, "session_frozen"
	case errors.Is(err, escrowService.ErrLedgerInconsistency):
		return http.StatusInternalServerError, "ledger_inconsistency"
	case errors.Is(err, manager.ErrStopped), errors.Is(err, manager.ErrNotStarted):
		return http.StatusServiceUnavailable, "unavailable"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func writeError(w http.ResponseWriter, err error) {
	status, code := statusFor(err)
	writeJSON(w, status, &errorResponse{Error: err.Error(), Code: code})
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, &errorResponse{Error: message, Code: "bad_request"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
