package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItemVariation is a priced option attached to a menu item (size, topping, sauce...).
type MenuItemVariation struct {
	ID            string          `json:"id,omitempty"`
	MenuItemID    string          `json:"menu_item_id,omitempty"`
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	PriceModifier decimal.Decimal `json:"price_modifier"`
	IsRequired    bool            `json:"is_required"`
	CreatedAt     *time.Time      `json:"created_at,omitempty"`
}

// MenuItem is a single orderable dish.
type MenuItem struct {
	ID              string              `json:"id"`
	OrganizationID  string              `json:"organization_id,omitempty"`
	CategoryID      string              `json:"category_id,omitempty"`
	Name            string              `json:"name"`
	Description     string              `json:"description,omitempty"`
	Price           decimal.Decimal     `json:"price"`
	ImageURL        string              `json:"image_url,omitempty"`
	Ingredients     []string            `json:"ingredients,omitempty"`
	Allergens       []string            `json:"allergens,omitempty"`
	IsVegetarian    bool                `json:"is_vegetarian"`
	IsVegan         bool                `json:"is_vegan"`
	IsSpicy         bool                `json:"is_spicy"`
	PreparationTime *int                `json:"preparation_time,omitempty"`
	IsAvailable     bool                `json:"is_available"`
	DisplayOrder    int                 `json:"display_order"`
	CreatedAt       *time.Time          `json:"created_at,omitempty"`
	UpdatedAt       *time.Time          `json:"updated_at,omitempty"`
	Variations      []MenuItemVariation `json:"variations,omitempty"`
}

// Variation returns the item's variation with the given id.
func (i *MenuItem) Variation(id string) (MenuItemVariation, bool) {
	for _, v := range i.Variations {
		if v.ID == id {
			return v, true
		}
	}
	return MenuItemVariation{}, false
}

// MenuCategory groups menu items. DisplayOrder is advisory and not unique.
type MenuCategory struct {
	ID             string     `json:"id"`
	OrganizationID string     `json:"organization_id,omitempty"`
	Name           string     `json:"name"`
	Description    string     `json:"description,omitempty"`
	DisplayOrder   int        `json:"display_order"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
	Items          []MenuItem `json:"items"`
}

// CustomerMenu is the payload of GET /sessions/get-menu.
type CustomerMenu struct {
	Organization Organization   `json:"organization"`
	Menu         []MenuCategory `json:"menu"`
}

// FindItem looks an item up across all categories.
func (m *CustomerMenu) FindItem(id string) (MenuItem, bool) {
	for _, c := range m.Menu {
		for _, item := range c.Items {
			if item.ID == id {
				return item, true
			}
		}
	}
	return MenuItem{}, false
}

// CategoryRequest is the body for creating a menu category.
type CategoryRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
	IsActive     bool   `json:"is_active"`
}

// MenuItemRequest carries the fields of a menu item create or update. Ingredients and
// Allergens are comma separated, as typed into the dashboard form. ImageRef names an image
// resolved through the media loader.
type MenuItemRequest struct {
	CategoryID      string              `json:"category_id"`
	Name            string              `json:"name"`
	Description     string              `json:"description"`
	Price           decimal.Decimal     `json:"price"`
	Ingredients     string              `json:"ingredients"`
	Allergens       string              `json:"allergens"`
	IsVegetarian    bool                `json:"is_vegetarian"`
	IsVegan         bool                `json:"is_vegan"`
	IsSpicy         bool                `json:"is_spicy"`
	IsAvailable     bool                `json:"is_available"`
	PreparationTime *int                `json:"preparation_time,omitempty"`
	DisplayOrder    int                 `json:"display_order"`
	Variations      []MenuItemVariation `json:"variations"`
	ImageRef        string              `json:"image_ref,omitempty"`
}
