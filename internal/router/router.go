package router

import (
	"net/http"

	"platra/internal/handler"
	"platra/internal/middleware"
	"platra/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers mounted under /api.
type Handlers struct {
	Auth       *handler.AuthHandler
	Ordering   *handler.OrderingHandler
	Invite     *handler.InviteHandler
	Management *handler.ManagementHandler
	Payment    *handler.PaymentHandler
}

// Config carries what the middleware chain needs.
type Config struct {
	AllowedOrigin string
	Sessions      *session.Store
	Tokens        *session.Tokens
	Cookie        middleware.SessionConfig
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, cfg Config, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Apply middleware in order: Recovery -> Logging -> CORS -> MaxBodySize -> Session
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowedOrigin))
	r.Use(middleware.MaxBodySize(handler.MaxRequestBody))
	r.Use(middleware.Session(cfg.Sessions, cfg.Tokens, cfg.Cookie, logger))

	// Health check endpoint (no session required)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Get("/me", h.Auth.Me)
			r.Post("/login", h.Auth.Login)
			r.Post("/register", h.Auth.Register)
			r.Post("/logout", h.Auth.Logout)
			r.Post("/verify-otp", h.Auth.VerifyOTP)
			r.Post("/resend-otp", h.Auth.ResendOTP)
		})

		r.Route("/organizations", func(r chi.Router) {
			r.Get("/", h.Auth.ListOrganizations)
			r.Post("/", h.Auth.CreateOrganization)
			r.Delete("/selection", h.Auth.ClearOrganization)
			r.Post("/{orgID}/select", h.Auth.SelectOrganization)
		})

		// customer ordering
		r.Post("/sessions", h.Ordering.StartSession)
		r.Get("/menu", h.Ordering.Menu)
		r.Route("/selection", func(r chi.Router) {
			r.Get("/", h.Ordering.Selection)
			r.Post("/", h.Ordering.OpenItem)
			r.Delete("/", h.Ordering.CloseItem)
			r.Post("/variations/{variationID}", h.Ordering.ToggleVariation)
			r.Post("/confirm", h.Ordering.ConfirmItem)
		})
		r.Get("/cart", h.Ordering.Cart)
		r.Delete("/cart/entries/{entryID}", h.Ordering.RemoveEntry)
		r.Post("/checkout", h.Ordering.Checkout)
		r.Get("/checkout/{checkoutID}", h.Ordering.GetCheckout)

		r.Route("/invites/{token}", func(r chi.Router) {
			r.Get("/verify", h.Invite.Verify)
			r.Post("/accept", h.Invite.Accept)
			r.Post("/reject", h.Invite.Reject)
			r.Post("/complete", h.Invite.Complete)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/categories", h.Management.ListCategories)
			r.Post("/categories", h.Management.CreateCategory)
			r.Get("/categories/{categoryID}/items", h.Management.ListCategoryItems)

			r.Get("/items", h.Management.ListItems)
			r.Post("/items", h.Management.CreateItem)
			r.Put("/items/{itemID}", h.Management.UpdateItem)

			r.Get("/qr", h.Management.ListQRCodes)
			r.Post("/qr", h.Management.CreateQRCode)
			r.Put("/qr/{qrID}", h.Management.UpdateQRCode)
			r.Post("/qr/{qrID}/toggle", h.Management.ToggleQRCode)
			r.Delete("/qr/{qrID}", h.Management.DeleteQRCode)

			r.Get("/staff", h.Management.ListStaff)
			r.Put("/staff/{staffID}/role", h.Management.UpdateStaffRole)
			r.Delete("/staff/{staffID}", h.Management.RemoveStaff)

			r.Get("/invites", h.Management.ListInvites)
			r.Post("/invites", h.Management.SendInvite)
			r.Delete("/invites/{inviteID}", h.Management.CancelInvite)
			r.Post("/invites/{inviteID}/resend", h.Management.ResendInvite)
		})

		r.Get("/payments/verify", h.Payment.Verify)
	})

	return r
}
