package service

import (
	"context"
	"strings"
	"time"

	"platra/internal/media"
	"platra/internal/model"
	"platra/internal/platform"
	"platra/internal/session"

	"github.com/rs/zerolog"
)

// managementService implements ManagementService. Every operation acts on the organization
// selected in the session.
type managementService struct {
	media  media.Loader
	now    func() time.Time
	logger zerolog.Logger
}

// NewManagementService creates the dashboard service. loader resolves item image references.
func NewManagementService(loader media.Loader, logger zerolog.Logger) ManagementService {
	return &managementService{
		media:  loader,
		now:    time.Now,
		logger: logger.With().Str("service", "management").Logger(),
	}
}

func (s *managementService) ListCategories(ctx context.Context, sess *session.Session) ([]model.MenuCategory, error) {
	orgID, err := requireOrganization(sess.User())
	if err != nil {
		return nil, err
	}

	categories, err := sess.API.ListCategories(ctx, orgID)
	if err != nil {
		s.logger.Error().Err(err).Str("organization_id", orgID).Msg("failed to list categories")
		return nil, upstreamError(err, "Failed to fetch categories", messageGenericError)
	}
	return categories, nil
}

func (s *managementService) CreateCategory(ctx context.Context, sess *session.Session, req model.CategoryRequest) (*model.MenuCategory, error) {
	orgID, err := requireOrganization(sess.User())
	if err != nil {
		return nil, err
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, model.MissingField("Category name is required")
	}

	category, err := sess.API.CreateCategory(ctx, orgID, req)
	if err != nil {
		s.logger.Error().Err(err).Str("organization_id", orgID).Msg("failed to create category")
		return nil, upstreamError(err, "Failed to create category", messageGenericError)
	}

	s.logger.Info().Str("organization_id", orgID).Str("category_id", category.ID).Msg("category created")
	return category, nil
}

// ListItems returns the dashboard menu, categories with their items.
func (s *managementService) ListItems(ctx context.Context, sess *session.Session) ([]model.MenuCategory, error) {
	orgID, err := requireOrganization(sess.User())
	if err != nil {
		return nil, err
	}

	menu, err := sess.API.OrganizationMenu(ctx, orgID)
	if err != nil {
		s.logger.Error().Err(err).Str("organization_id", orgID).Msg("failed to fetch menu")
		return nil, upstreamError(err, "Failed to fetch menu", "An error occurred")
	}
	return menu, nil
}

// ListCategoryItems returns the items of one category from the organization's item list.
func (s *managementService) ListCategoryItems(ctx context.Context, sess *session.Session, categoryID string) ([]model.MenuItem, error) {
	orgID, err := requireOrganization(sess.User())
	if err != nil {
		return nil, err
	}

	items, err := sess.API.ListItems(ctx, orgID)
	if err != nil {
		s.logger.Error().Err(err).Str("organization_id", orgID).Msg("failed to fetch items")
		return nil, upstreamError(err, "Failed to fetch items", "An error occurred")
	}

	inCategory := make([]model.MenuItem, 0, len(items))
	for _, item := range items {
		if item.CategoryID == categoryID {
			inCategory = append(inCategory, item)
		}
	}
	return inCategory, nil
}

func (s *managementService) CreateItem(ctx context.Context, sess *session.Session, req model.MenuItemRequest, image *media.Image) (*model.MenuItem, error) {
	orgID, err := requireOrganization(sess.User())
	if err != nil {
		return nil, err
	}

	form, err := s.itemForm(ctx, req, image)
	if err != nil {
		return nil, err
	}

	item, err := sess.API.CreateItem(ctx, orgID, form)
	if err != nil {
		s.logger.Error().Err(err).Str("organization_id", orgID).Msg("failed to create menu item")
		return nil, upstreamError(err, "Failed to create menu item", "An error occurred. Try again.")
	}

	s.logger.Info().Str("organization_id", orgID).Str("item_id", item.ID).Msg("menu item created")
	return item, nil
}

func (s *managementService) UpdateItem(ctx context.Context, sess *session.Session, itemID string, req model.MenuItemRequest, image *media.Image) (*model.MenuItem, error) {
	orgID, err := requireOrganization(sess.User())
	if err != nil {
		return nil, err
	}

	form, err := s.itemForm(ctx, req, image)
	if err != nil {
		return nil, err
	}

	item, err := sess.API.UpdateItem(ctx, orgID, itemID, form)
	if err != nil {
		s.logger.Error().Err(err).Str("organization_id", orgID).Str("item_id", itemID).Msg("failed to update menu item")
		return nil, upstreamError(err, "Failed to update menu item", "An error occurred. Try again.")
	}
	return item, nil
}

// SplitList turns a comma separated form field into its trimmed, non-empty parts.
func SplitList(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (s *managementService) itemForm(ctx context.Context, req model.MenuItemRequest, image *media.Image) (platform.ItemForm, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return platform.ItemForm{}, model.MissingField("Item name is required")
	}
	if req.CategoryID == "" {
		return platform.ItemForm{}, model.MissingField("Please select a category")
	}
	if req.Price.IsNegative() {
		return platform.ItemForm{}, model.ErrInvalidPrice
	}

	if image == nil && req.ImageRef != "" {
		img, err := s.media.Load(ctx, req.ImageRef)
		if err != nil {
			s.logger.Warn().Err(err).Str("image_ref", req.ImageRef).Msg("failed to load item image")
			return platform.ItemForm{}, imageError(err)
		}
		image = img
	}

	return platform.ItemForm{
		CategoryID:      req.CategoryID,
		Name:            name,
		Description:     strings.TrimSpace(req.Description),
		Price:           req.Price.String(),
		IsVegetarian:    req.IsVegetarian,
		IsVegan:         req.IsVegan,
		IsSpicy:         req.IsSpicy,
		IsAvailable:     req.IsAvailable,
		DisplayOrder:    req.DisplayOrder,
		PreparationTime: req.PreparationTime,
		Ingredients:     SplitList(req.Ingredients),
		Allergens:       SplitList(req.Allergens),
		Variations:      req.Variations,
		Image:           image,
	}, nil
}

func (s *managementService) ListQRCodes(ctx context.Context, sess *session.Session) ([]model.QRCode, error) {
	orgID, err := requireOrganization(sess.User())
	if err != nil {
		return nil, err
	}

	codes, err := sess.API.ListQRCodes(ctx, orgID)
	if err != nil {
		s.logger.Error().Err(err).Str("organization_id", orgID).Msg("failed to list QR codes")
		return nil, upstreamError(err, "Error fetching QR codes", "Error fetching QR codes")
	}
	return codes, nil
}

func validateQRCode(req model.QRCodeRequest) (model.QRCodeRequest, error) {
	req.ScanPoint = strings.TrimSpace(req.ScanPoint)
	if req.ScanPoint == "" {
		return req, model.MissingField("Scan point is required")
	}
	if req.BusinessType == "" {
		req.BusinessType = model.BusinessRestaurant
	}
	if !req.BusinessType.Valid() {
		return req, model.ErrInvalidBusinessType
	}
	if req.Capacity < 1 {
		return req, model.ErrInvalidCapacity
	}
	return req, nil
}

func (s *managementService) CreateQRCode(ctx context.Context, sess *session.Session, req model.QRCodeRequest) (*model.QRCode, error) {
	orgID, err := requireOrganization(sess.User())
	if err != nil {
		return nil, err
	}

	req, err = validateQRCode(req)
	if err != nil {
		return nil, err
	}
	req.IsActive = nil

	code, err := sess.API.CreateQRCode(ctx, orgID, req)
	if err != nil {
		s.logger.Error().Err(err).Str("organization_id", orgID).Msg("failed to create QR code")
		return nil, upstreamError(err, "Failed to create QR code", "Error creating QR code")
	}

	s.logger.Info().Str("organization_id", orgID).Str("qr_id", code.ID).Msg("QR code created")
	return code, nil
}

func (s *managementService) UpdateQRCode(ctx context.Context, sess *session.Session, qrID string, req model.QRCodeRequest) (*model.QRCode, error) {
	orgID, err := requireOrganization(sess.User())
	if err != nil {
		return nil, err
	}

	req, err = validateQRCode(req)
	if err != nil {
		return nil, err
	}

	code, err := sess.API.UpdateQRCode(ctx, orgID, qrID, req)
	if err != nil {
		s.logger.Error().Err(err).Str("organization_id", orgID).Str("qr_id", qrID).Msg("failed to update QR code")
		return nil, upstreamError(err, "Failed to update QR code", "Error updating QR code")
	}
	return code, nil
}

// ToggleQRCode flips is_active on a QR code, resending its other fields unchanged.
func (s *managementService) ToggleQRCode(ctx context.Context, sess *session.Session, qrID string) (*model.QRCode, error) {
	orgID, err := requireOrganization(sess.User())
	if err != nil {
		return nil, err
	}

	codes, err := s.ListQRCodes(ctx, sess)
	if err != nil {
		return nil, err
	}

	var current *model.QRCode
	for i := range codes {
		if codes[i].ID == qrID {
			current = &codes[i]
			break
		}
	}
	if current == nil {
		return nil, model.ErrQRCodeNotFound
	}

	active := !current.IsActive
	req := model.QRCodeRequest{
		ScanPoint:    current.ScanPoint,
		Capacity:     current.Capacity,
		BusinessType: current.BusinessType,
		IsActive:     &active,
	}

	code, err := sess.API.UpdateQRCode(ctx, orgID, qrID, req)
	if err != nil {
		s.logger.Error().Err(err).Str("qr_id", qrID).Msg("failed to toggle QR code")
		return nil, upstreamError(err, "Failed to update QR code status", "Error updating QR code status")
	}

	s.logger.Info().Str("qr_id", qrID).Bool("active", active).Msg("QR code status changed")
	return code, nil
}

func (s *managementService) DeleteQRCode(ctx context.Context, sess *session.Session, qrID string) error {
	orgID, err := requireOrganization(sess.User())
	if err != nil {
		return err
	}

	if err := sess.API.DeleteQRCode(ctx, orgID, qrID); err != nil {
		s.logger.Error().Err(err).Str("qr_id", qrID).Msg("failed to delete QR code")
		return upstreamError(err, "Failed to delete QR code", "Error deleting QR code")
	}
	return nil
}

func (s *managementService) ListStaff(ctx context.Context, sess *session.Session) ([]model.StaffMember, error) {
	orgID, err := requireOrganization(sess.User())
	if err != nil {
		return nil, err
	}

	staff, err := sess.API.ListStaff(ctx, orgID)
	if err != nil {
		s.logger.Error().Err(err).Str("organization_id", orgID).Msg("failed to list staff")
		return nil, upstreamError(err, "Failed to fetch staff", messageGenericError)
	}
	return staff, nil
}

func (s *managementService) UpdateStaffRole(ctx context.Context, sess *session.Session, staffID string, role model.Role) error {
	orgID, err := requireOrganization(sess.User())
	if err != nil {
		return err
	}
	if !role.Valid() {
		return model.ErrInvalidRole
	}

	if err := sess.API.UpdateStaffRole(ctx, orgID, staffID, role); err != nil {
		s.logger.Error().Err(err).Str("staff_id", staffID).Msg("failed to update staff role")
		return upstreamError(err, "Failed to update staff role", messageGenericError)
	}
	return nil
}

func (s *managementService) RemoveStaff(ctx context.Context, sess *session.Session, staffID string) error {
	orgID, err := requireOrganization(sess.User())
	if err != nil {
		return err
	}

	if err := sess.API.RemoveStaff(ctx, orgID, staffID); err != nil {
		s.logger.Error().Err(err).Str("staff_id", staffID).Msg("failed to remove staff member")
		return upstreamError(err, "Failed to remove staff member", messageGenericError)
	}
	return nil
}

// ListInvites returns the organization's invitations with Expired computed from ExpiresAt.
func (s *managementService) ListInvites(ctx context.Context, sess *session.Session) ([]model.StaffInvite, error) {
	orgID, err := requireOrganization(sess.User())
	if err != nil {
		return nil, err
	}

	invites, err := sess.API.ListInvites(ctx, orgID)
	if err != nil {
		s.logger.Error().Err(err).Str("organization_id", orgID).Msg("failed to list invites")
		return nil, upstreamError(err, "Failed to fetch invitations", messageGenericError)
	}

	now := s.now()
	for i := range invites {
		invites[i].Expired = !invites[i].ExpiresAt.IsZero() && invites[i].ExpiresAt.Before(now)
	}
	return invites, nil
}

func (s *managementService) SendInvite(ctx context.Context, sess *session.Session, req model.InviteRequest) error {
	orgID, err := requireOrganization(sess.User())
	if err != nil {
		return err
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" {
		return model.MissingField("Name and email are required")
	}
	if req.Role == "" {
		req.Role = model.RoleServiceStaff
	}
	if !req.Role.Valid() {
		return model.ErrInvalidRole
	}

	if err := sess.API.SendInvite(ctx, orgID, req); err != nil {
		s.logger.Error().Err(err).Str("organization_id", orgID).Msg("failed to send invite")
		return upstreamError(err, "Failed to send invitation", "Error sending invitation")
	}

	s.logger.Info().Str("organization_id", orgID).Str("role", string(req.Role)).Msg("invite sent")
	return nil
}

func (s *managementService) CancelInvite(ctx context.Context, sess *session.Session, inviteID string) error {
	orgID, err := requireOrganization(sess.User())
	if err != nil {
		return err
	}

	if err := sess.API.CancelInvite(ctx, orgID, inviteID); err != nil {
		s.logger.Error().Err(err).Str("invite_id", inviteID).Msg("failed to cancel invite")
		return upstreamError(err, "Failed to cancel invitation", messageGenericError)
	}
	return nil
}

func (s *managementService) ResendInvite(ctx context.Context, sess *session.Session, inviteID string) error {
	orgID, err := requireOrganization(sess.User())
	if err != nil {
		return err
	}

	if err := sess.API.ResendInvite(ctx, orgID, inviteID); err != nil {
		s.logger.Error().Err(err).Str("invite_id", inviteID).Msg("failed to resend invite")
		return upstreamError(err, "Failed to resend invitation", messageGenericError)
	}
	return nil
}
