// Package platform is the client of the upstream restaurant platform REST API.
package platform

import (
	"context"

	"platra/internal/media"
	"platra/internal/model"
)

// API lists the upstream operations used by this service. Each browser session owns one
// implementation so upstream cookies never leak between browsers.
type API interface {
	// Me returns the user bound to the current upstream session.
	Me(ctx context.Context) (*model.User, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.User, error)
	Register(ctx context.Context, displayName, email, password string) (*model.User, error)
	Logout(ctx context.Context) error
	VerifyOTP(ctx context.Context, otp string) error
	ResendOTP(ctx context.Context) error

	ListOrganizations(ctx context.Context) ([]model.Organization, error)
	CreateOrganization(ctx context.Context, name, description string, logo *media.Image) (*model.Organization, error)
	SelectOrganization(ctx context.Context, orgID string) (*model.Organization, error)

	ListCategories(ctx context.Context, orgID string) ([]model.MenuCategory, error)
	CreateCategory(ctx context.Context, orgID string, req model.CategoryRequest) (*model.MenuCategory, error)
	// OrganizationMenu returns the dashboard menu: categories with their items.
	OrganizationMenu(ctx context.Context, orgID string) ([]model.MenuCategory, error)
	ListItems(ctx context.Context, orgID string) ([]model.MenuItem, error)
	CreateItem(ctx context.Context, orgID string, form ItemForm) (*model.MenuItem, error)
	UpdateItem(ctx context.Context, orgID, itemID string, form ItemForm) (*model.MenuItem, error)

	ListQRCodes(ctx context.Context, orgID string) ([]model.QRCode, error)
	CreateQRCode(ctx context.Context, orgID string, req model.QRCodeRequest) (*model.QRCode, error)
	UpdateQRCode(ctx context.Context, orgID, qrID string, req model.QRCodeRequest) (*model.QRCode, error)
	DeleteQRCode(ctx context.Context, orgID, qrID string) error

	ListStaff(ctx context.Context, orgID string) ([]model.StaffMember, error)
	UpdateStaffRole(ctx context.Context, orgID, staffID string, role model.Role) error
	RemoveStaff(ctx context.Context, orgID, staffID string) error
	ListInvites(ctx context.Context, orgID string) ([]model.StaffInvite, error)
	SendInvite(ctx context.Context, orgID string, req model.InviteRequest) error
	CancelInvite(ctx context.Context, orgID, inviteID string) error
	ResendInvite(ctx context.Context, orgID, inviteID string) error

	VerifyInvite(ctx context.Context, token string) (*model.InviteVerification, error)
	AcceptInvite(ctx context.Context, token string) (*model.InviteAcceptance, error)
	RejectInvite(ctx context.Context, token string) error
	CompleteInvite(ctx context.Context, token string, req model.CompleteInviteRequest) (*model.User, error)

	CreateSession(ctx context.Context, externalID string) (*model.CustomerSession, error)
	GetMenu(ctx context.Context) (*model.CustomerMenu, error)

	VerifyPayment(ctx context.Context, reference string) error
}

// ItemForm is the multipart body of an item create or update.
type ItemForm struct {
	CategoryID      string
	Name            string
	Description     string
	Price           string
	IsVegetarian    bool
	IsVegan         bool
	IsSpicy         bool
	IsAvailable     bool
	DisplayOrder    int
	PreparationTime *int
	Ingredients     []string
	Allergens       []string
	Variations      []model.MenuItemVariation
	Image           *media.Image
}
