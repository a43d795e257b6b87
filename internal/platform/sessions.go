package platform

import (
	"context"
	"net/http"
	"net/url"

	"platra/internal/model"
)

// CreateSession calls POST /sessions/create with the scanned QR code's external id.
func (c *Client) CreateSession(ctx context.Context, externalID string) (*model.CustomerSession, error) {
	body := map[string]string{"external_id": externalID}
	var session model.CustomerSession
	if err := c.sendJSON(ctx, http.MethodPost, c.endpoint("sessions", "create"), body, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// GetMenu calls GET /sessions/get-menu. The upstream resolves the organization from the
// customer session cookie.
func (c *Client) GetMenu(ctx context.Context) (*model.CustomerMenu, error) {
	var menu model.CustomerMenu
	if err := c.getJSON(ctx, c.endpoint("sessions", "get-menu"), &menu); err != nil {
		return nil, err
	}
	return &menu, nil
}

// VerifyPayment calls GET /payments/verify?reference=...
func (c *Client) VerifyPayment(ctx context.Context, reference string) error {
	target := c.endpoint("payments", "verify") + "?" + url.Values{"reference": {reference}}.Encode()
	return c.getJSON(ctx, target, nil)
}
