package service

import (
	"context"
	"time"

	"platra/internal/cart"
	"platra/internal/invite"
	"platra/internal/media"
	"platra/internal/model"
	"platra/internal/session"

	"github.com/shopspring/decimal"
)

// AuthService covers authentication and the organization context of a session.
type AuthService interface {
	// CurrentUser refreshes the session user from the platform. On failure the user is cleared.
	CurrentUser(ctx context.Context, sess *session.Session) (*model.User, error)
	Login(ctx context.Context, sess *session.Session, req model.LoginRequest) (*model.User, error)
	Register(ctx context.Context, sess *session.Session, req model.RegisterRequest) (*model.User, error)
	// Logout always clears the session user, even when the platform call fails.
	Logout(ctx context.Context, sess *session.Session) error
	VerifyOTP(ctx context.Context, sess *session.Session, otp string) error
	// ResendOTP returns how long the new code stays valid.
	ResendOTP(ctx context.Context, sess *session.Session) (time.Duration, error)

	ListOrganizations(ctx context.Context, sess *session.Session) ([]model.Organization, error)
	CreateOrganization(ctx context.Context, sess *session.Session, req model.OrganizationRequest, logo *media.Image) (*model.Organization, error)
	// SelectOrganization binds one of the fetched organizations to the session user.
	SelectOrganization(ctx context.Context, sess *session.Session, orgID string) (*model.User, error)
	ClearOrganization(ctx context.Context, sess *session.Session) (*model.User, error)
}

// OrderingService is the customer flow: QR session, menu, item dialog, cart and checkout.
type OrderingService interface {
	StartSession(ctx context.Context, sess *session.Session, externalID string) (*model.CustomerSession, error)
	// Menu returns the cached menu unless refresh is set or nothing is cached yet.
	Menu(ctx context.Context, sess *session.Session, refresh bool) (*model.CustomerMenu, error)

	OpenItem(ctx context.Context, sess *session.Session, itemID string) (*ItemView, error)
	ToggleVariation(ctx context.Context, sess *session.Session, variationID string) (*ItemView, error)
	Selection(ctx context.Context, sess *session.Session) (*ItemView, error)
	CloseItem(ctx context.Context, sess *session.Session)
	ConfirmItem(ctx context.Context, sess *session.Session) (*CartView, error)

	Cart(ctx context.Context, sess *session.Session) *CartView
	// RemoveEntry reports whether an entry was removed. Unknown ids leave the cart unchanged.
	RemoveEntry(ctx context.Context, sess *session.Session, entryID string) (*CartView, bool)
	// Checkout records the cart with the customer's details and empties the cart.
	Checkout(ctx context.Context, sess *session.Session, form model.CheckoutForm) (*model.CheckoutResponse, error)
	GetCheckout(ctx context.Context, sess *session.Session, id string) (*model.CheckoutResponse, error)
}

// InviteService handles the invitee side of staff invitations.
type InviteService interface {
	Verify(ctx context.Context, sess *session.Session, token string) invite.Result
	Accept(ctx context.Context, sess *session.Session, token string) (invite.Next, error)
	// Reject does nothing unless confirmed is set; it reports whether the invite was rejected.
	Reject(ctx context.Context, sess *session.Session, token string, confirmed bool) (*invite.Next, error)
	Complete(ctx context.Context, sess *session.Session, token string, req model.CompleteInviteRequest) (*model.User, error)
}

// ManagementService is the dashboard of the selected organization.
type ManagementService interface {
	ListCategories(ctx context.Context, sess *session.Session) ([]model.MenuCategory, error)
	CreateCategory(ctx context.Context, sess *session.Session, req model.CategoryRequest) (*model.MenuCategory, error)

	ListItems(ctx context.Context, sess *session.Session) ([]model.MenuCategory, error)
	ListCategoryItems(ctx context.Context, sess *session.Session, categoryID string) ([]model.MenuItem, error)
	CreateItem(ctx context.Context, sess *session.Session, req model.MenuItemRequest, image *media.Image) (*model.MenuItem, error)
	UpdateItem(ctx context.Context, sess *session.Session, itemID string, req model.MenuItemRequest, image *media.Image) (*model.MenuItem, error)

	ListQRCodes(ctx context.Context, sess *session.Session) ([]model.QRCode, error)
	CreateQRCode(ctx context.Context, sess *session.Session, req model.QRCodeRequest) (*model.QRCode, error)
	UpdateQRCode(ctx context.Context, sess *session.Session, qrID string, req model.QRCodeRequest) (*model.QRCode, error)
	ToggleQRCode(ctx context.Context, sess *session.Session, qrID string) (*model.QRCode, error)
	DeleteQRCode(ctx context.Context, sess *session.Session, qrID string) error

	ListStaff(ctx context.Context, sess *session.Session) ([]model.StaffMember, error)
	UpdateStaffRole(ctx context.Context, sess *session.Session, staffID string, role model.Role) error
	RemoveStaff(ctx context.Context, sess *session.Session, staffID string) error

	ListInvites(ctx context.Context, sess *session.Session) ([]model.StaffInvite, error)
	SendInvite(ctx context.Context, sess *session.Session, req model.InviteRequest) error
	CancelInvite(ctx context.Context, sess *session.Session, inviteID string) error
	ResendInvite(ctx context.Context, sess *session.Session, inviteID string) error
}

// PaymentService verifies a payment provider callback.
type PaymentService interface {
	Verify(ctx context.Context, sess *session.Session, reference string) model.PaymentOutcome
}

// ItemView is the open item dialog with display prices.
type ItemView struct {
	cart.SelectionView
	FormattedTotal string            `json:"formatted_total"`
	Modifiers      map[string]string `json:"formatted_modifiers"`
	Currency       string            `json:"currency"`
}

// CartView is the cart with its grand total.
type CartView struct {
	Entries        []model.CartEntry `json:"entries"`
	Count          int               `json:"count"`
	Total          decimal.Decimal   `json:"total"`
	FormattedTotal string            `json:"formatted_total"`
	Currency       string            `json:"currency"`
}
