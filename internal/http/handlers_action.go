package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hireloop/hrms-ui-api/internal/domain/action"
	domainauth "github.com/hireloop/hrms-ui-api/internal/domain/auth"
	"github.com/hireloop/hrms-ui-api/internal/ports"
)

// ActionHandlers proxies catalog actions from the browser to the
// backend. The session token travels via context; the browser never
// sees it.
type ActionHandlers struct {
	Backend ports.Backend
	Logger  *slog.Logger
}

type actionRequest struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data,omitempty"`
}

// Dispatch executes one catalog action.
// POST /api/action.
func (h *ActionHandlers) Dispatch(w http.ResponseWriter, r *http.Request) {
	var req actionRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	act := action.Action(req.Action)
	if !act.Valid() {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "unknown_action",
			Err:     errors.New("unknown action: " + req.Action),
		})
		return
	}

	// Only the login and candidate test actions run anonymously.
	if !act.Public() && domainauth.SessionFromContext(r.Context()) == nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return
	}

	var data any
	if len(req.Data) > 0 {
		data = req.Data
	}
	res, err := h.Backend.Call(r.Context(), act, data, nil)
	if err != nil {
		h.Logger.ErrorContext(r.Context(), "action dispatch failed", "action", act, "error", err)
		WriteError(w, ErrorParams{
			Code:    http.StatusBadGateway,
			ErrCode: "backend_unavailable",
			Err:     err,
		})
		return
	}

	WriteJSON(w, http.StatusOK, res)
}
