package platform

import (
	"context"
	"net/http"

	"platra/internal/model"
)

// VerifyInvite calls GET /invites/{token}/verify.
func (c *Client) VerifyInvite(ctx context.Context, token string) (*model.InviteVerification, error) {
	var verification model.InviteVerification
	if err := c.getJSON(ctx, c.endpoint("invites", token, "verify"), &verification); err != nil {
		return nil, err
	}
	return &verification, nil
}

// AcceptInvite calls POST /invites/{token}/accept.
func (c *Client) AcceptInvite(ctx context.Context, token string) (*model.InviteAcceptance, error) {
	var acceptance model.InviteAcceptance
	if err := c.sendJSON(ctx, http.MethodPost, c.endpoint("invites", token, "accept"), nil, &acceptance); err != nil {
		return nil, err
	}
	return &acceptance, nil
}

// RejectInvite calls POST /invites/{token}/reject.
func (c *Client) RejectInvite(ctx context.Context, token string) error {
	return c.sendJSON(ctx, http.MethodPost, c.endpoint("invites", token, "reject"), nil, nil)
}

// CompleteInvite calls POST /invites/{token}/complete for invitees without an account.
func (c *Client) CompleteInvite(ctx context.Context, token string, req model.CompleteInviteRequest) (*model.User, error) {
	var user model.User
	if err := c.sendJSON(ctx, http.MethodPost, c.endpoint("invites", token, "complete"), req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
