package handler

import (
	"context"
	"net/http"
	"time"

	"platra/internal/cart"
	"platra/internal/invite"
	"platra/internal/media"
	"platra/internal/model"
	"platra/internal/service"
	"platra/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) CurrentUser(ctx context.Context, sess *session.Session) (*model.User, error) {
	args := m.Called(ctx, sess)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, sess *session.Session, req model.LoginRequest) (*model.User, error) {
	args := m.Called(ctx, sess, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Register(ctx context.Context, sess *session.Session, req model.RegisterRequest) (*model.User, error) {
	args := m.Called(ctx, sess, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, sess *session.Session) error {
	args := m.Called(ctx, sess)
	return args.Error(0)
}

func (m *MockAuthService) VerifyOTP(ctx context.Context, sess *session.Session, otp string) error {
	args := m.Called(ctx, sess, otp)
	return args.Error(0)
}

func (m *MockAuthService) ResendOTP(ctx context.Context, sess *session.Session) (time.Duration, error) {
	args := m.Called(ctx, sess)
	return args.Get(0).(time.Duration), args.Error(1)
}

func (m *MockAuthService) ListOrganizations(ctx context.Context, sess *session.Session) ([]model.Organization, error) {
	args := m.Called(ctx, sess)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Organization), args.Error(1)
}

func (m *MockAuthService) CreateOrganization(ctx context.Context, sess *session.Session, req model.OrganizationRequest, logo *media.Image) (*model.Organization, error) {
	args := m.Called(ctx, sess, req, logo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Organization), args.Error(1)
}

func (m *MockAuthService) SelectOrganization(ctx context.Context, sess *session.Session, orgID string) (*model.User, error) {
	args := m.Called(ctx, sess, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) ClearOrganization(ctx context.Context, sess *session.Session) (*model.User, error) {
	args := m.Called(ctx, sess)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockOrderingService is a mock implementation of OrderingService.
type MockOrderingService struct {
	mock.Mock
}

func (m *MockOrderingService) StartSession(ctx context.Context, sess *session.Session, externalID string) (*model.CustomerSession, error) {
	args := m.Called(ctx, sess, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CustomerSession), args.Error(1)
}

func (m *MockOrderingService) Menu(ctx context.Context, sess *session.Session, refresh bool) (*model.CustomerMenu, error) {
	args := m.Called(ctx, sess, refresh)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CustomerMenu), args.Error(1)
}

func (m *MockOrderingService) OpenItem(ctx context.Context, sess *session.Session, itemID string) (*service.ItemView, error) {
	args := m.Called(ctx, sess, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ItemView), args.Error(1)
}

func (m *MockOrderingService) ToggleVariation(ctx context.Context, sess *session.Session, variationID string) (*service.ItemView, error) {
	args := m.Called(ctx, sess, variationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ItemView), args.Error(1)
}

func (m *MockOrderingService) Selection(ctx context.Context, sess *session.Session) (*service.ItemView, error) {
	args := m.Called(ctx, sess)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ItemView), args.Error(1)
}

func (m *MockOrderingService) CloseItem(ctx context.Context, sess *session.Session) {
	m.Called(ctx, sess)
}

func (m *MockOrderingService) ConfirmItem(ctx context.Context, sess *session.Session) (*service.CartView, error) {
	args := m.Called(ctx, sess)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CartView), args.Error(1)
}

func (m *MockOrderingService) Cart(ctx context.Context, sess *session.Session) *service.CartView {
	args := m.Called(ctx, sess)
	return args.Get(0).(*service.CartView)
}

func (m *MockOrderingService) RemoveEntry(ctx context.Context, sess *session.Session, entryID string) (*service.CartView, bool) {
	args := m.Called(ctx, sess, entryID)
	return args.Get(0).(*service.CartView), args.Bool(1)
}

func (m *MockOrderingService) Checkout(ctx context.Context, sess *session.Session, form model.CheckoutForm) (*model.CheckoutResponse, error) {
	args := m.Called(ctx, sess, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CheckoutResponse), args.Error(1)
}

func (m *MockOrderingService) GetCheckout(ctx context.Context, sess *session.Session, id string) (*model.CheckoutResponse, error) {
	args := m.Called(ctx, sess, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CheckoutResponse), args.Error(1)
}

// MockInviteService is a mock implementation of InviteService.
type MockInviteService struct {
	mock.Mock
}

func (m *MockInviteService) Verify(ctx context.Context, sess *session.Session, token string) invite.Result {
	args := m.Called(ctx, sess, token)
	return args.Get(0).(invite.Result)
}

func (m *MockInviteService) Accept(ctx context.Context, sess *session.Session, token string) (invite.Next, error) {
	args := m.Called(ctx, sess, token)
	return args.Get(0).(invite.Next), args.Error(1)
}

func (m *MockInviteService) Reject(ctx context.Context, sess *session.Session, token string, confirmed bool) (*invite.Next, error) {
	args := m.Called(ctx, sess, token, confirmed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invite.Next), args.Error(1)
}

func (m *MockInviteService) Complete(ctx context.Context, sess *session.Session, token string, req model.CompleteInviteRequest) (*model.User, error) {
	args := m.Called(ctx, sess, token, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockManagementService is a mock implementation of ManagementService.
type MockManagementService struct {
	mock.Mock
}

func (m *MockManagementService) ListCategories(ctx context.Context, sess *session.Session) ([]model.MenuCategory, error) {
	args := m.Called(ctx, sess)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MenuCategory), args.Error(1)
}

func (m *MockManagementService) CreateCategory(ctx context.Context, sess *session.Session, req model.CategoryRequest) (*model.MenuCategory, error) {
	args := m.Called(ctx, sess, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuCategory), args.Error(1)
}

func (m *MockManagementService) ListItems(ctx context.Context, sess *session.Session) ([]model.MenuCategory, error) {
	args := m.Called(ctx, sess)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MenuCategory), args.Error(1)
}

func (m *MockManagementService) ListCategoryItems(ctx context.Context, sess *session.Session, categoryID string) ([]model.MenuItem, error) {
	args := m.Called(ctx, sess, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MenuItem), args.Error(1)
}

func (m *MockManagementService) CreateItem(ctx context.Context, sess *session.Session, req model.MenuItemRequest, image *media.Image) (*model.MenuItem, error) {
	args := m.Called(ctx, sess, req, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuItem), args.Error(1)
}

func (m *MockManagementService) UpdateItem(ctx context.Context, sess *session.Session, itemID string, req model.MenuItemRequest, image *media.Image) (*model.MenuItem, error) {
	args := m.Called(ctx, sess, itemID, req, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuItem), args.Error(1)
}

func (m *MockManagementService) ListQRCodes(ctx context.Context, sess *session.Session) ([]model.QRCode, error) {
	args := m.Called(ctx, sess)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.QRCode), args.Error(1)
}

func (m *MockManagementService) CreateQRCode(ctx context.Context, sess *session.Session, req model.QRCodeRequest) (*model.QRCode, error) {
	args := m.Called(ctx, sess, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.QRCode), args.Error(1)
}

func (m *MockManagementService) UpdateQRCode(ctx context.Context, sess *session.Session, qrID string, req model.QRCodeRequest) (*model.QRCode, error) {
	args := m.Called(ctx, sess, qrID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.QRCode), args.Error(1)
}

func (m *MockManagementService) ToggleQRCode(ctx context.Context, sess *session.Session, qrID string) (*model.QRCode, error) {
	args := m.Called(ctx, sess, qrID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.QRCode), args.Error(1)
}

func (m *MockManagementService) DeleteQRCode(ctx context.Context, sess *session.Session, qrID string) error {
	args := m.Called(ctx, sess, qrID)
	return args.Error(0)
}

func (m *MockManagementService) ListStaff(ctx context.Context, sess *session.Session) ([]model.StaffMember, error) {
	args := m.Called(ctx, sess)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StaffMember), args.Error(1)
}

func (m *MockManagementService) UpdateStaffRole(ctx context.Context, sess *session.Session, staffID string, role model.Role) error {
	args := m.Called(ctx, sess, staffID, role)
	return args.Error(0)
}

func (m *MockManagementService) RemoveStaff(ctx context.Context, sess *session.Session, staffID string) error {
	args := m.Called(ctx, sess, staffID)
	return args.Error(0)
}

func (m *MockManagementService) ListInvites(ctx context.Context, sess *session.Session) ([]model.StaffInvite, error) {
	args := m.Called(ctx, sess)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StaffInvite), args.Error(1)
}

func (m *MockManagementService) SendInvite(ctx context.Context, sess *session.Session, req model.InviteRequest) error {
	args := m.Called(ctx, sess, req)
	return args.Error(0)
}

func (m *MockManagementService) CancelInvite(ctx context.Context, sess *session.Session, inviteID string) error {
	args := m.Called(ctx, sess, inviteID)
	return args.Error(0)
}

func (m *MockManagementService) ResendInvite(ctx context.Context, sess *session.Session, inviteID string) error {
	args := m.Called(ctx, sess, inviteID)
	return args.Error(0)
}

// MockPaymentService is a mock implementation of PaymentService.
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) Verify(ctx context.Context, sess *session.Session, reference string) model.PaymentOutcome {
	args := m.Called(ctx, sess, reference)
	return args.Get(0).(model.PaymentOutcome)
}

// withSession attaches a fresh session and the given chi URL params to r.
func withSession(r *http.Request, params map[string]string) (*http.Request, *session.Session) {
	sess := session.New("sess-1", nil, cart.New())
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	ctx = session.WithContext(ctx, sess)
	return r.WithContext(ctx), sess
}
