package platform

import (
	"context"
	"net/http"

	"platra/internal/model"
)

// ListQRCodes calls GET /organizations/{orgId}/qr.
func (c *Client) ListQRCodes(ctx context.Context, orgID string) ([]model.QRCode, error) {
	var codes []model.QRCode
	if err := c.getJSON(ctx, c.endpoint("organizations", orgID, "qr"), &codes); err != nil {
		return nil, err
	}
	return codes, nil
}

// CreateQRCode calls POST /organizations/{orgId}/qr.
func (c *Client) CreateQRCode(ctx context.Context, orgID string, req model.QRCodeRequest) (*model.QRCode, error) {
	var code model.QRCode
	if err := c.sendJSON(ctx, http.MethodPost, c.endpoint("organizations", orgID, "qr"), req, &code); err != nil {
		return nil, err
	}
	return &code, nil
}

// UpdateQRCode calls PUT /organizations/{orgId}/qr/{id}.
func (c *Client) UpdateQRCode(ctx context.Context, orgID, qrID string, req model.QRCodeRequest) (*model.QRCode, error) {
	var code model.QRCode
	if err := c.sendJSON(ctx, http.MethodPut, c.endpoint("organizations", orgID, "qr", qrID), req, &code); err != nil {
		return nil, err
	}
	return &code, nil
}

// DeleteQRCode calls DELETE /organizations/{orgId}/qr/{id}.
func (c *Client) DeleteQRCode(ctx context.Context, orgID, qrID string) error {
	return c.sendJSON(ctx, http.MethodDelete, c.endpoint("organizations", orgID, "qr", qrID), nil, nil)
}
