package handler

import (
	"net/http"

	"platra/internal/model"
	"platra/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// InviteHandler handles the invitee side of staff invitations.
type InviteHandler struct {
	service service.InviteService
	logger  zerolog.Logger
}

// NewInviteHandler creates a new invite handler.
func NewInviteHandler(service service.InviteService, logger zerolog.Logger) *InviteHandler {
	return &InviteHandler{
		service: service,
		logger:  logger.With().Str("handler", "invite").Logger(),
	}
}

// Verify handles GET /api/invites/{token}/verify. The classified state is always returned
// with 200; the browser renders it.
func (h *InviteHandler) Verify(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	result := h.service.Verify(r.Context(), sess, chi.URLParam(r, "token"))
	writeData(w, http.StatusOK, result)
}

// Accept handles POST /api/invites/{token}/accept.
func (h *InviteHandler) Accept(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	next, err := h.service.Accept(r.Context(), sess, chi.URLParam(r, "token"))
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeData(w, http.StatusOK, next)
}

// Reject handles POST /api/invites/{token}/reject with body {"confirmed": true}. Without
// the confirmation nothing is sent and the response carries no next step.
func (h *InviteHandler) Reject(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	var req struct {
		Confirmed bool `json:"confirmed"`
	}
	if err := decodeOptionalJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	next, err := h.service.Reject(r.Context(), sess, chi.URLParam(r, "token"), req.Confirmed)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	if next == nil {
		writeMessage(w, "Rejection not confirmed")
		return
	}
	writeData(w, http.StatusOK, next)
}

// Complete handles POST /api/invites/{token}/complete.
func (h *InviteHandler) Complete(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	var req model.CompleteInviteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	user, err := h.service.Complete(r.Context(), sess, chi.URLParam(r, "token"), req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeData(w, http.StatusOK, user)
}
