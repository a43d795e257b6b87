// Package platformtest provides a testify mock of platform.API.
package platformtest

import (
	"context"

	"platra/internal/media"
	"platra/internal/model"
	"platra/internal/platform"

	"github.com/stretchr/testify/mock"
)

// MockAPI is a mock implementation of platform.API.
type MockAPI struct {
	mock.Mock
}

var _ platform.API = (*MockAPI)(nil)

func (m *MockAPI) Me(ctx context.Context) (*model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAPI) Login(ctx context.Context, req model.LoginRequest) (*model.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAPI) Register(ctx context.Context, displayName, email, password string) (*model.User, error) {
	args := m.Called(ctx, displayName, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAPI) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAPI) VerifyOTP(ctx context.Context, otp string) error {
	args := m.Called(ctx, otp)
	return args.Error(0)
}

func (m *MockAPI) ResendOTP(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAPI) ListOrganizations(ctx context.Context) ([]model.Organization, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Organization), args.Error(1)
}

func (m *MockAPI) CreateOrganization(ctx context.Context, name, description string, logo *media.Image) (*model.Organization, error) {
	args := m.Called(ctx, name, description, logo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Organization), args.Error(1)
}

func (m *MockAPI) SelectOrganization(ctx context.Context, orgID string) (*model.Organization, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Organization), args.Error(1)
}

func (m *MockAPI) ListCategories(ctx context.Context, orgID string) ([]model.MenuCategory, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MenuCategory), args.Error(1)
}

func (m *MockAPI) CreateCategory(ctx context.Context, orgID string, req model.CategoryRequest) (*model.MenuCategory, error) {
	args := m.Called(ctx, orgID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuCategory), args.Error(1)
}

func (m *MockAPI) OrganizationMenu(ctx context.Context, orgID string) ([]model.MenuCategory, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MenuCategory), args.Error(1)
}

func (m *MockAPI) ListItems(ctx context.Context, orgID string) ([]model.MenuItem, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MenuItem), args.Error(1)
}

func (m *MockAPI) CreateItem(ctx context.Context, orgID string, form platform.ItemForm) (*model.MenuItem, error) {
	args := m.Called(ctx, orgID, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuItem), args.Error(1)
}

func (m *MockAPI) UpdateItem(ctx context.Context, orgID, itemID string, form platform.ItemForm) (*model.MenuItem, error) {
	args := m.Called(ctx, orgID, itemID, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuItem), args.Error(1)
}

func (m *MockAPI) ListQRCodes(ctx context.Context, orgID string) ([]model.QRCode, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.QRCode), args.Error(1)
}

func (m *MockAPI) CreateQRCode(ctx context.Context, orgID string, req model.QRCodeRequest) (*model.QRCode, error) {
	args := m.Called(ctx, orgID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.QRCode), args.Error(1)
}

func (m *MockAPI) UpdateQRCode(ctx context.Context, orgID, qrID string, req model.QRCodeRequest) (*model.QRCode, error) {
	args := m.Called(ctx, orgID, qrID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.QRCode), args.Error(1)
}

func (m *MockAPI) DeleteQRCode(ctx context.Context, orgID, qrID string) error {
	args := m.Called(ctx, orgID, qrID)
	return args.Error(0)
}

func (m *MockAPI) ListStaff(ctx context.Context, orgID string) ([]model.StaffMember, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StaffMember), args.Error(1)
}

func (m *MockAPI) UpdateStaffRole(ctx context.Context, orgID, staffID string, role model.Role) error {
	args := m.Called(ctx, orgID, staffID, role)
	return args.Error(0)
}

func (m *MockAPI) RemoveStaff(ctx context.Context, orgID, staffID string) error {
	args := m.Called(ctx, orgID, staffID)
	return args.Error(0)
}

func (m *MockAPI) ListInvites(ctx context.Context, orgID string) ([]model.StaffInvite, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StaffInvite), args.Error(1)
}

func (m *MockAPI) SendInvite(ctx context.Context, orgID string, req model.InviteRequest) error {
	args := m.Called(ctx, orgID, req)
	return args.Error(0)
}

func (m *MockAPI) CancelInvite(ctx context.Context, orgID, inviteID string) error {
	args := m.Called(ctx, orgID, inviteID)
	return args.Error(0)
}

func (m *MockAPI) ResendInvite(ctx context.Context, orgID, inviteID string) error {
	args := m.Called(ctx, orgID, inviteID)
	return args.Error(0)
}

func (m *MockAPI) VerifyInvite(ctx context.Context, token string) (*model.InviteVerification, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.InviteVerification), args.Error(1)
}

func (m *MockAPI) AcceptInvite(ctx context.Context, token string) (*model.InviteAcceptance, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.InviteAcceptance), args.Error(1)
}

func (m *MockAPI) RejectInvite(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAPI) CompleteInvite(ctx context.Context, token string, req model.CompleteInviteRequest) (*model.User, error) {
	args := m.Called(ctx, token, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAPI) CreateSession(ctx context.Context, externalID string) (*model.CustomerSession, error) {
	args := m.Called(ctx, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CustomerSession), args.Error(1)
}

func (m *MockAPI) GetMenu(ctx context.Context) (*model.CustomerMenu, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CustomerMenu), args.Error(1)
}

func (m *MockAPI) VerifyPayment(ctx context.Context, reference string) error {
	args := m.Called(ctx, reference)
	return args.Error(0)
}
