package handler

import (
	"net/http"
	"strconv"

	"platra/internal/model"
	"platra/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// OrderingHandler handles the customer ordering flow.
type OrderingHandler struct {
	service service.OrderingService
	logger  zerolog.Logger
}

// NewOrderingHandler creates a new ordering handler.
func NewOrderingHandler(service service.OrderingService, logger zerolog.Logger) *OrderingHandler {
	return &OrderingHandler{
		service: service,
		logger:  logger.With().Str("handler", "ordering").Logger(),
	}
}

// StartSession handles POST /api/sessions.
func (h *OrderingHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	var req struct {
		ExternalID string `json:"external_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	customer, err := h.service.StartSession(r.Context(), sess, req.ExternalID)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeData(w, http.StatusCreated, customer)
}

// Menu handles GET /api/menu. ?refresh=true bypasses the cached menu.
func (h *OrderingHandler) Menu(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	refresh, _ := strconv.ParseBool(r.URL.Query().Get("refresh"))
	menu, err := h.service.Menu(r.Context(), sess, refresh)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeData(w, http.StatusOK, menu)
}

// OpenItem handles POST /api/selection.
func (h *OrderingHandler) OpenItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	var req struct {
		ItemID string `json:"item_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	view, err := h.service.OpenItem(r.Context(), sess, req.ItemID)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeData(w, http.StatusOK, view)
}

// Selection handles GET /api/selection.
func (h *OrderingHandler) Selection(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	view, err := h.service.Selection(r.Context(), sess)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeData(w, http.StatusOK, view)
}

// ToggleVariation handles POST /api/selection/variations/{variationID}.
func (h *OrderingHandler) ToggleVariation(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	view, err := h.service.ToggleVariation(r.Context(), sess, chi.URLParam(r, "variationID"))
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeData(w, http.StatusOK, view)
}

// CloseItem handles DELETE /api/selection.
func (h *OrderingHandler) CloseItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	h.service.CloseItem(r.Context(), sess)
	w.WriteHeader(http.StatusNoContent)
}

// ConfirmItem handles POST /api/selection/confirm.
func (h *OrderingHandler) ConfirmItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	view, err := h.service.ConfirmItem(r.Context(), sess)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeData(w, http.StatusOK, view)
}

// Cart handles GET /api/cart.
func (h *OrderingHandler) Cart(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}
	writeData(w, http.StatusOK, h.service.Cart(r.Context(), sess))
}

// RemoveEntry handles DELETE /api/cart/entries/{entryID}. Unknown entries are not an error.
func (h *OrderingHandler) RemoveEntry(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	view, removed := h.service.RemoveEntry(r.Context(), sess, chi.URLParam(r, "entryID"))
	if !removed {
		h.logger.Debug().Str("entry_id", chi.URLParam(r, "entryID")).Msg("cart entry not found")
	}
	writeData(w, http.StatusOK, view)
}

// Checkout handles POST /api/checkout.
func (h *OrderingHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	var form model.CheckoutForm
	if err := decodeJSON(r, &form); err != nil {
		writeError(w, err, h.logger)
		return
	}

	resp, err := h.service.Checkout(r.Context(), sess, form)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeData(w, http.StatusCreated, resp)
}

// GetCheckout handles GET /api/checkout/{checkoutID}.
func (h *OrderingHandler) GetCheckout(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	resp, err := h.service.GetCheckout(r.Context(), sess, chi.URLParam(r, "checkoutID"))
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeData(w, http.StatusOK, resp)
}
