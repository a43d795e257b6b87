package handler

import (
	"net/http"

	"platra/internal/model"
	"platra/internal/service"

	"github.com/rs/zerolog"
)

// PaymentHandler handles the payment provider callback.
type PaymentHandler struct {
	service service.PaymentService
	logger  zerolog.Logger
}

func NewPaymentHandler(service service.PaymentService, logger zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		logger:  logger.With().Str("handler", "payment").Logger(),
	}
}

// Verify handles GET /api/payments/verify?reference=... and answers with the page the
// browser should go to next.
func (h *PaymentHandler) Verify(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r, h.logger)
	if !ok {
		return
	}

	outcome := h.service.Verify(r.Context(), sess, r.URL.Query().Get("reference"))
	writeJSON(w, http.StatusOK, model.Envelope{
		Success: outcome.Verified,
		Message: outcome.Message,
		Data:    outcome,
	})
}
