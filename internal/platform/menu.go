package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"platra/internal/model"
)

// ListCategories calls GET /organizations/{orgId}/categories.
func (c *Client) ListCategories(ctx context.Context, orgID string) ([]model.MenuCategory, error) {
	var categories []model.MenuCategory
	if err := c.getJSON(ctx, c.endpoint("organizations", orgID, "categories"), &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory calls POST /organizations/{orgId}/categories.
func (c *Client) CreateCategory(ctx context.Context, orgID string, req model.CategoryRequest) (*model.MenuCategory, error) {
	var category model.MenuCategory
	if err := c.sendJSON(ctx, http.MethodPost, c.endpoint("organizations", orgID, "categories"), req, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// OrganizationMenu calls GET /menu/{orgId}.
func (c *Client) OrganizationMenu(ctx context.Context, orgID string) ([]model.MenuCategory, error) {
	var categories []model.MenuCategory
	if err := c.getJSON(ctx, c.endpoint("menu", orgID), &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// ListItems calls GET /organizations/{orgId}/items.
func (c *Client) ListItems(ctx context.Context, orgID string) ([]model.MenuItem, error) {
	var items []model.MenuItem
	if err := c.getJSON(ctx, c.endpoint("organizations", orgID, "items"), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateItem calls POST /organizations/{orgId}/items as multipart.
func (c *Client) CreateItem(ctx context.Context, orgID string, form ItemForm) (*model.MenuItem, error) {
	return c.submitItem(ctx, http.MethodPost, c.endpoint("organizations", orgID, "items"), form)
}

// UpdateItem calls PUT /organizations/{orgId}/items/{id} as multipart.
func (c *Client) UpdateItem(ctx context.Context, orgID, itemID string, form ItemForm) (*model.MenuItem, error) {
	return c.submitItem(ctx, http.MethodPut, c.endpoint("organizations", orgID, "items", itemID), form)
}

func (c *Client) submitItem(ctx context.Context, method, target string, form ItemForm) (*model.MenuItem, error) {
	body, contentType, err := encodeItemForm(form)
	if err != nil {
		return nil, err
	}

	var item model.MenuItem
	if err := c.do(ctx, method, target, body, contentType, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func encodeItemForm(form ItemForm) (io.Reader, string, error) {
	ingredients, err := json.Marshal(nonNil(form.Ingredients))
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode ingredients: %w", err)
	}
	allergens, err := json.Marshal(nonNil(form.Allergens))
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode allergens: %w", err)
	}
	variations := form.Variations
	if variations == nil {
		variations = []model.MenuItemVariation{}
	}
	encodedVariations, err := json.Marshal(variations)
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode variations: %w", err)
	}

	mf := newMultipartForm()
	mf.field("category_id", form.CategoryID)
	mf.field("name", form.Name)
	mf.field("description", form.Description)
	mf.field("price", form.Price)
	mf.field("is_vegetarian", strconv.FormatBool(form.IsVegetarian))
	mf.field("is_vegan", strconv.FormatBool(form.IsVegan))
	mf.field("is_spicy", strconv.FormatBool(form.IsSpicy))
	mf.field("is_available", strconv.FormatBool(form.IsAvailable))
	mf.field("display_order", strconv.Itoa(form.DisplayOrder))
	if form.PreparationTime != nil {
		mf.field("preparation_time", strconv.Itoa(*form.PreparationTime))
	}
	mf.field("ingredients", string(ingredients))
	mf.field("allergens", string(allergens))
	if form.Image != nil {
		mf.file("image_url", form.Image)
	}
	mf.field("variations", string(encodedVariations))

	body, contentType, err := mf.close()
	if err != nil {
		return nil, "", err
	}
	return body, contentType, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
