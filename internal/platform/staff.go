package platform

import (
	"context"
	"net/http"

	"platra/internal/model"
)

func (c *Client) ListStaff(ctx context.Context, orgID string) ([]model.StaffMember, error) {
	var staff []model.StaffMember
	if err := c.getJSON(ctx, c.endpoint("organizations", orgID, "staff"), &staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (c *Client) UpdateStaffRole(ctx context.Context, orgID, staffID string, role model.Role) error {
	body := model.StaffRoleRequest{Role: role}
	return c.sendJSON(ctx, http.MethodPut, c.endpoint("organizations", orgID, "staff", staffID), body, nil)
}

func (c *Client) RemoveStaff(ctx context.Context, orgID, staffID string) error {
	return c.sendJSON(ctx, http.MethodDelete, c.endpoint("organizations", orgID, "staff", staffID), nil, nil)
}

func (c *Client) ListInvites(ctx context.Context, orgID string) ([]model.StaffInvite, error) {
	var invites []model.StaffInvite
	if err := c.getJSON(ctx, c.endpoint("organizations", orgID, "invites"), &invites); err != nil {
		return nil, err
	}
	return invites, nil
}

func (c *Client) SendInvite(ctx context.Context, orgID string, req model.InviteRequest) error {
	return c.sendJSON(ctx, http.MethodPost, c.endpoint("organizations", orgID, "invites"), req, nil)
}

func (c *Client) CancelInvite(ctx context.Context, orgID, inviteID string) error {
	return c.sendJSON(ctx, http.MethodDelete, c.endpoint("organizations", orgID, "invites", inviteID), nil, nil)
}

func (c *Client) ResendInvite(ctx context.Context, orgID, inviteID string) error {
	return c.sendJSON(ctx, http.MethodPost, c.endpoint("organizations", orgID, "invites", inviteID, "resend"), nil, nil)
}
