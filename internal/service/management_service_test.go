package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"platra/internal/media"
	"platra/internal/model"
	"platra/internal/platform"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestManagementService_RequiresOrganization(t *testing.T) {
	ctx := context.Background()
	svc := NewManagementService(nil, zerolog.Nop())

	anonymous, _ := newTestSession()
	_, err := svc.ListCategories(ctx, anonymous)
	assert.ErrorIs(t, err, model.ErrNotAuthenticated)

	noOrg, api := newTestSession()
	noOrg.SetUser(&model.User{ID: "u1"})
	_, err = svc.ListStaff(ctx, noOrg)
	assert.ErrorIs(t, err, model.ErrNoOrganization)
	err = svc.DeleteQRCode(ctx, noOrg, "qr-1")
	assert.ErrorIs(t, err, model.ErrNoOrganization)
	api.AssertNotCalled(t, "ListStaff", mock.Anything, mock.Anything)
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		raw      string
		expected []string
	}{
		{raw: "", expected: []string{}},
		{raw: "rice, tomato ,pepper", expected: []string{"rice", "tomato", "pepper"}},
		{raw: " , nuts,, ", expected: []string{"nuts"}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitList(tt.raw))
		})
	}
}

func TestManagementService_CreateCategory(t *testing.T) {
	ctx := context.Background()
	sess, api := loggedIn()
	svc := NewManagementService(nil, zerolog.Nop())

	_, err := svc.CreateCategory(ctx, sess, model.CategoryRequest{Name: "  "})
	require.Error(t, err)
	assert.Equal(t, "Category name is required", err.Error())

	req := model.CategoryRequest{Name: "Soups", IsActive: true}
	api.On("CreateCategory", ctx, "org-1", req).Return(&model.MenuCategory{ID: "cat-9", Name: "Soups"}, nil)

	category, err := svc.CreateCategory(ctx, sess, model.CategoryRequest{Name: " Soups ", IsActive: true})

	require.NoError(t, err)
	assert.Equal(t, "cat-9", category.ID)
}

func TestManagementService_ListCategoryItems(t *testing.T) {
	ctx := context.Background()
	sess, api := loggedIn()
	svc := NewManagementService(nil, zerolog.Nop())

	api.On("ListItems", ctx, "org-1").Return([]model.MenuItem{
		{ID: "egusi", CategoryID: "soups"},
		{ID: "chapman", CategoryID: "drinks"},
		{ID: "okra", CategoryID: "soups"},
	}, nil).Once()

	items, err := svc.ListCategoryItems(ctx, sess, "soups")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "egusi", items[0].ID)
	assert.Equal(t, "okra", items[1].ID)

	api.On("ListItems", ctx, "org-1").Return(nil, errors.New("connection reset")).Once()

	_, err = svc.ListCategoryItems(ctx, sess, "soups")
	require.Error(t, err)
	assert.Equal(t, "An error occurred", err.Error())
}

func TestManagementService_CreateItem(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		req         model.MenuItemRequest
		expectedErr error
		expectedMsg string
	}{
		{
			name:        "name required",
			req:         model.MenuItemRequest{CategoryID: "cat-1"},
			expectedMsg: "Item name is required",
		},
		{
			name:        "category required",
			req:         model.MenuItemRequest{Name: "Egusi"},
			expectedMsg: "Please select a category",
		},
		{
			name:        "negative price",
			req:         model.MenuItemRequest{Name: "Egusi", CategoryID: "cat-1", Price: decimal.NewFromInt(-1)},
			expectedErr: model.ErrInvalidPrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess, api := loggedIn()
			svc := NewManagementService(nil, zerolog.Nop())

			_, err := svc.CreateItem(ctx, sess, tt.req, nil)

			require.Error(t, err)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.Equal(t, tt.expectedMsg, err.Error())
			}
			api.AssertNotCalled(t, "CreateItem", mock.Anything, mock.Anything, mock.Anything)
		})
	}

	t.Run("builds the form with the loaded image", func(t *testing.T) {
		sess, api := loggedIn()
		loader := new(MockLoader)
		image := &media.Image{Name: "egusi.png", ContentType: "image/png", Data: []byte("png")}
		loader.On("Load", ctx, "egusi.png").Return(image, nil)

		var form platform.ItemForm
		api.On("CreateItem", ctx, "org-1", mock.AnythingOfType("platform.ItemForm")).
			Run(func(args mock.Arguments) { form = args.Get(2).(platform.ItemForm) }).
			Return(&model.MenuItem{ID: "item-1"}, nil)

		svc := NewManagementService(loader, zerolog.Nop())
		item, err := svc.CreateItem(ctx, sess, model.MenuItemRequest{
			CategoryID:  "cat-1",
			Name:        " Egusi Soup ",
			Price:       decimal.RequireFromString("2500.50"),
			Ingredients: "melon seeds, spinach",
			Allergens:   "",
			IsAvailable: true,
			ImageRef:    "egusi.png",
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, "item-1", item.ID)
		assert.Equal(t, "Egusi Soup", form.Name)
		assert.Equal(t, "2500.5", form.Price)
		assert.Equal(t, []string{"melon seeds", "spinach"}, form.Ingredients)
		assert.Equal(t, []string{}, form.Allergens)
		assert.Same(t, image, form.Image)
		loader.AssertExpectations(t)
	})

	t.Run("unreadable image", func(t *testing.T) {
		sess, _ := loggedIn()
		loader := new(MockLoader)
		loader.On("Load", ctx, "missing.png").Return(nil, errors.New("no such file"))

		_, err := NewManagementService(loader, zerolog.Nop()).CreateItem(ctx, sess, model.MenuItemRequest{
			CategoryID: "cat-1",
			Name:       "Egusi",
			ImageRef:   "missing.png",
		}, nil)

		assert.ErrorIs(t, err, model.ErrInvalidImage)
	})
}

func TestManagementService_CreateQRCode(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		req         model.QRCodeRequest
		expectedErr error
	}{
		{name: "unknown business type", req: model.QRCodeRequest{ScanPoint: "Table 1", Capacity: 2, BusinessType: "bar"}, expectedErr: model.ErrInvalidBusinessType},
		{name: "zero capacity", req: model.QRCodeRequest{ScanPoint: "Table 1"}, expectedErr: model.ErrInvalidCapacity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess, _ := loggedIn()
			_, err := NewManagementService(nil, zerolog.Nop()).CreateQRCode(ctx, sess, tt.req)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}

	t.Run("defaults to restaurant and ignores is_active", func(t *testing.T) {
		sess, api := loggedIn()
		active := false
		expected := model.QRCodeRequest{ScanPoint: "Table 4", Capacity: 4, BusinessType: model.BusinessRestaurant}
		api.On("CreateQRCode", ctx, "org-1", expected).Return(&model.QRCode{ID: "qr-4"}, nil)

		code, err := NewManagementService(nil, zerolog.Nop()).CreateQRCode(ctx, sess, model.QRCodeRequest{
			ScanPoint: " Table 4 ",
			Capacity:  4,
			IsActive:  &active,
		})

		require.NoError(t, err)
		assert.Equal(t, "qr-4", code.ID)
	})
}

func TestManagementService_ToggleQRCode(t *testing.T) {
	ctx := context.Background()
	codes := []model.QRCode{
		{ID: "qr-1", ScanPoint: "Table 1", Capacity: 2, BusinessType: model.BusinessRestaurant, IsActive: true},
		{ID: "qr-2", ScanPoint: "Room 12", Capacity: 1, BusinessType: model.BusinessHotel},
	}

	t.Run("flips is_active and resends the rest", func(t *testing.T) {
		sess, api := loggedIn()
		api.On("ListQRCodes", ctx, "org-1").Return(codes, nil)
		inactive := false
		api.On("UpdateQRCode", ctx, "org-1", "qr-1", model.QRCodeRequest{
			ScanPoint:    "Table 1",
			Capacity:     2,
			BusinessType: model.BusinessRestaurant,
			IsActive:     &inactive,
		}).Return(&model.QRCode{ID: "qr-1"}, nil)

		_, err := NewManagementService(nil, zerolog.Nop()).ToggleQRCode(ctx, sess, "qr-1")

		require.NoError(t, err)
		api.AssertExpectations(t)
	})

	t.Run("unknown code", func(t *testing.T) {
		sess, api := loggedIn()
		api.On("ListQRCodes", ctx, "org-1").Return(codes, nil)

		_, err := NewManagementService(nil, zerolog.Nop()).ToggleQRCode(ctx, sess, "qr-9")

		assert.ErrorIs(t, err, model.ErrQRCodeNotFound)
		api.AssertNotCalled(t, "UpdateQRCode", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestManagementService_Staff(t *testing.T) {
	ctx := context.Background()
	svc := NewManagementService(nil, zerolog.Nop())

	t.Run("rejects unknown roles", func(t *testing.T) {
		sess, api := loggedIn()

		err := svc.UpdateStaffRole(ctx, sess, "staff-1", "owner")

		assert.ErrorIs(t, err, model.ErrInvalidRole)
		api.AssertNotCalled(t, "UpdateStaffRole", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("updates role", func(t *testing.T) {
		sess, api := loggedIn()
		api.On("UpdateStaffRole", ctx, "org-1", "staff-1", model.RoleKitchenStaff).Return(nil)

		assert.NoError(t, svc.UpdateStaffRole(ctx, sess, "staff-1", model.RoleKitchenStaff))
	})

	t.Run("remove failure keeps upstream message", func(t *testing.T) {
		sess, api := loggedIn()
		api.On("RemoveStaff", ctx, "org-1", "staff-1").Return(&platform.APIError{StatusCode: 403, Message: "Cannot remove the owner"})

		err := svc.RemoveStaff(ctx, sess, "staff-1")

		apiErr, ok := platform.AsAPIError(err)
		require.True(t, ok)
		assert.Equal(t, "Cannot remove the owner", apiErr.Message)
	})
}

func TestManagementService_Invites(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("computes the expired flag", func(t *testing.T) {
		sess, api := loggedIn()
		api.On("ListInvites", ctx, "org-1").Return([]model.StaffInvite{
			{ID: "a", ExpiresAt: now.Add(-time.Minute)},
			{ID: "b", ExpiresAt: now.Add(time.Hour)},
			{ID: "c"},
		}, nil)

		svc := NewManagementService(nil, zerolog.Nop()).(*managementService)
		svc.now = func() time.Time { return now }

		invites, err := svc.ListInvites(ctx, sess)

		require.NoError(t, err)
		require.Len(t, invites, 3)
		assert.True(t, invites[0].Expired)
		assert.False(t, invites[1].Expired)
		assert.False(t, invites[2].Expired)
	})

	t.Run("send requires name and email", func(t *testing.T) {
		sess, _ := loggedIn()

		err := NewManagementService(nil, zerolog.Nop()).SendInvite(ctx, sess, model.InviteRequest{Name: "Tolu"})

		require.Error(t, err)
		assert.Equal(t, "Name and email are required", err.Error())
	})

	t.Run("send defaults the role", func(t *testing.T) {
		sess, api := loggedIn()
		api.On("SendInvite", ctx, "org-1", model.InviteRequest{
			Name:  "Tolu",
			Email: "tolu@example.com",
			Role:  model.RoleServiceStaff,
		}).Return(nil)

		err := NewManagementService(nil, zerolog.Nop()).SendInvite(ctx, sess, model.InviteRequest{Name: "Tolu", Email: " tolu@example.com"})

		require.NoError(t, err)
		api.AssertExpectations(t)
	})

	t.Run("cancel and resend", func(t *testing.T) {
		sess, api := loggedIn()
		api.On("CancelInvite", ctx, "org-1", "inv-1").Return(nil)
		api.On("ResendInvite", ctx, "org-1", "inv-2").Return(errors.New("broken pipe"))
		svc := NewManagementService(nil, zerolog.Nop())

		assert.NoError(t, svc.CancelInvite(ctx, sess, "inv-1"))
		err := svc.ResendInvite(ctx, sess, "inv-2")
		assert.EqualError(t, err, messageGenericError)
	})
}
