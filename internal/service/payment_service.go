package service

import (
	"context"
	"net/url"
	"strings"

	"platra/internal/model"
	"platra/internal/platform"
	"platra/internal/session"

	"github.com/rs/zerolog"
)

const (
	paymentSuccessRoute = "/payment/success"
	paymentFailureRoute = "/payment/failure"
)

// paymentService implements PaymentService.
type paymentService struct {
	logger zerolog.Logger
}

func NewPaymentService(logger zerolog.Logger) PaymentService {
	return &paymentService{
		logger: logger.With().Str("service", "payment").Logger(),
	}
}

// Verify never fails: every outcome is a redirect, to the success page only when the
// platform confirms the reference.
func (s *paymentService) Verify(ctx context.Context, sess *session.Session, reference string) model.PaymentOutcome {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return model.PaymentOutcome{Message: "Missing payment reference", Redirect: paymentFailureRoute}
	}

	query := "?" + url.Values{"reference": {reference}}.Encode()

	err := sess.API.VerifyPayment(ctx, reference)
	if err == nil {
		s.logger.Info().Str("reference", reference).Msg("payment verified")
		return model.PaymentOutcome{
			Verified:  true,
			Reference: reference,
			Message:   "Payment verified",
			Redirect:  paymentSuccessRoute + query,
		}
	}

	message := "Verification failed"
	if _, ok := platform.AsAPIError(err); !ok {
		message = "Network error"
	}
	s.logger.Warn().Err(err).Str("reference", reference).Msg("payment verification failed")

	return model.PaymentOutcome{
		Reference: reference,
		Message:   message,
		Redirect:  paymentFailureRoute + query,
	}
}
