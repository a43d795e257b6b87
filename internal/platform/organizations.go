package platform

import (
	"context"
	"net/http"

	"platra/internal/media"
	"platra/internal/model"
)

// ListOrganizations calls GET /organizations.
func (c *Client) ListOrganizations(ctx context.Context) ([]model.Organization, error) {
	var orgs []model.Organization
	if err := c.getJSON(ctx, c.endpoint("organizations"), &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

// CreateOrganization calls POST /organizations as multipart, attaching the logo when given.
func (c *Client) CreateOrganization(ctx context.Context, name, description string, logo *media.Image) (*model.Organization, error) {
	form := newMultipartForm()
	form.field("name", name)
	form.field("description", description)
	if logo != nil {
		form.file("logo", logo)
	}
	body, contentType, err := form.close()
	if err != nil {
		return nil, err
	}

	var org model.Organization
	if err := c.do(ctx, http.MethodPost, c.endpoint("organizations"), body, contentType, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

// SelectOrganization calls POST /organizations/{id}/select.
func (c *Client) SelectOrganization(ctx context.Context, orgID string) (*model.Organization, error) {
	var org model.Organization
	if err := c.sendJSON(ctx, http.MethodPost, c.endpoint("organizations", orgID, "select"), nil, &org); err != nil {
		return nil, err
	}
	return &org, nil
}
