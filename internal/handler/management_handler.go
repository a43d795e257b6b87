package handler

import (
	"net/http"

	"platra/internal/model"
	"platra/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// ManagementHandler handles the dashboard of the selected organization.
type ManagementHandler struct {
	service service.ManagementService
	logger  zerolog.Logger
}

// NewManagementHandler creates a new management handler.
func NewManagementHandler(service service.ManagementService, logger zerolog.Logger) *ManagementHandler {
	return &ManagementHandler{
		service: service,
		logger:  logger.With().Str("handler", "management").Logger(),
	}
}

func (h *ManagementHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	categories, err := h.service.ListCategories(r.Context(), sess)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeData(w, http.StatusOK, categories)
}

func (h *ManagementHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	var req model.CategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	category, err := h.service.CreateCategory(r.Context(), sess, req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeData(w, http.StatusCreated, category)
}

// ListItems handles GET /api/dashboard/items and returns categories with their items.
func (h *ManagementHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	menu, err := h.service.ListItems(r.Context(), sess)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeData(w, http.StatusOK, menu)
}

func (h *ManagementHandler) ListCategoryItems(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	items, err := h.service.ListCategoryItems(r.Context(), sess, chi.URLParam(r, "categoryID"))
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeData(w, http.StatusOK, items)
}

func (h *ManagementHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	req, image, err := bindMenuItem(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	item, err := h.service.CreateItem(r.Context(), sess, req, image)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeData(w, http.StatusCreated, item)
}

func (h *ManagementHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	req, image, err := bindMenuItem(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	item, err := h.service.UpdateItem(r.Context(), sess, chi.URLParam(r, "itemID"), req, image)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeData(w, http.StatusOK, item)
}

func (h *ManagementHandler) ListQRCodes(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	codes, err := h.service.ListQRCodes(r.Context(), sess)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeData(w, http.StatusOK, codes)
}

func (h *ManagementHandler) CreateQRCode(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	var req model.QRCodeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	code, err := h.service.CreateQRCode(r.Context(), sess, req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeData(w, http.StatusCreated, code)
}

func (h *ManagementHandler) UpdateQRCode(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	var req model.QRCodeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	code, err := h.service.UpdateQRCode(r.Context(), sess, chi.URLParam(r, "qrID"), req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeData(w, http.StatusOK, code)
}

// ToggleQRCode handles POST /api/dashboard/qr/{qrID}/toggle.
func (h *ManagementHandler) ToggleQRCode(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	code, err := h.service.ToggleQRCode(r.Context(), sess, chi.URLParam(r, "qrID"))
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeData(w, http.StatusOK, code)
}

func (h *ManagementHandler) DeleteQRCode(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	if err := h.service.DeleteQRCode(r.Context(), sess, chi.URLParam(r, "qrID")); err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeMessage(w, "QR code deleted")
}

func (h *ManagementHandler) ListStaff(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	staff, err := h.service.ListStaff(r.Context(), sess)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeData(w, http.StatusOK, staff)
}

func (h *ManagementHandler) UpdateStaffRole(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	var req model.StaffRoleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	if err := h.service.UpdateStaffRole(r.Context(), sess, chi.URLParam(r, "staffID"), req.Role); err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeMessage(w, "Role updated")
}

func (h *ManagementHandler) RemoveStaff(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	if err := h.service.RemoveStaff(r.Context(), sess, chi.URLParam(r, "staffID")); err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeMessage(w, "Staff member removed")
}

func (h *ManagementHandler) ListInvites(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	invites, err := h.service.ListInvites(r.Context(), sess)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeData(w, http.StatusOK, invites)
}

func (h *ManagementHandler) SendInvite(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	var req model.InviteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	if err := h.service.SendInvite(r.Context(), sess, req); err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, model.Envelope{Success: true, Message: "Invitation sent"})
}

func (h *ManagementHandler) CancelInvite(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	if err := h.service.CancelInvite(r.Context(), sess, chi.URLParam(r, "inviteID")); err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeMessage(w, "Invitation cancelled")
}

func (h *ManagementHandler) ResendInvite(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	if err := h.service.ResendInvite(r.Context(), sess, chi.URLParam(r, "inviteID")); err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeMessage(w, "Invitation resent")
}
