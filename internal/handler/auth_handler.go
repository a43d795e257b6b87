package handler

import (
	"net/http"

	"platra/internal/model"
	"platra/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// AuthHandler handles authentication and organization selection.
type AuthHandler struct {
	service service.AuthService
	logger  zerolog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(service service.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger.With().Str("handler", "auth").Logger(),
	}
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	user, err := h.service.CurrentUser(r.Context(), sess)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeData(w, http.StatusOK, user)
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	var req model.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	user, err := h.service.Login(r.Context(), sess, req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeData(w, http.StatusOK, user)
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	var req model.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	user, err := h.service.Register(r.Context(), sess, req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeData(w, http.StatusCreated, user)
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	_ = h.service.Logout(r.Context(), sess)
	writeMessage(w, "Logged out")
}

// VerifyOTP handles POST /api/auth/verify-otp.
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	var req struct {
		OTP string `json:"otp"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	if err := h.service.VerifyOTP(r.Context(), sess, req.OTP); err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeMessage(w, "Verification successful!")
}

// ResendOTP handles POST /api/auth/resend-otp.
func (h *AuthHandler) ResendOTP(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	window, err := h.service.ResendOTP(r.Context(), sess)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, model.Envelope{
		Success: true,
		Message: "OTP resent successfully!",
		Data:    map[string]int{"resend_in": int(window.Seconds())},
	})
}

// ListOrganizations handles GET /api/organizations.
func (h *AuthHandler) ListOrganizations(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	orgs, err := h.service.ListOrganizations(r.Context(), sess)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeData(w, http.StatusOK, orgs)
}

// CreateOrganization handles POST /api/organizations, as JSON or multipart with a logo.
func (h *AuthHandler) CreateOrganization(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	req, logo, err := bindOrganization(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	org, err := h.service.CreateOrganization(r.Context(), sess, req, logo)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeData(w, http.StatusCreated, org)
}

// SelectOrganization handles POST /api/organizations/{orgID}/select.
func (h *AuthHandler) SelectOrganization(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	user, err := h.service.SelectOrganization(r.Context(), sess, chi.URLParam(r, "orgID"))
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeData(w, http.StatusOK, user)
}

// ClearOrganization handles DELETE /api/organizations/selection.
func (h *AuthHandler) ClearOrganization(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	user, err := h.service.ClearOrganization(r.Context(), sess)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeData(w, http.StatusOK, user)
}
