package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"platra/internal/cart"
	"platra/internal/model"
	"platra/internal/money"
	"platra/internal/repository"
	"platra/internal/session"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// orderingService implements OrderingService.
type orderingService struct {
	checkoutRepo    repository.CheckoutRepository
	defaultCurrency string
	now             func() time.Time
	logger          zerolog.Logger
}

// NewOrderingService creates the customer ordering service. defaultCurrency is used when the
// organization's menu does not name one.
func NewOrderingService(checkoutRepo repository.CheckoutRepository, defaultCurrency string, logger zerolog.Logger) OrderingService {
	if defaultCurrency == "" {
		defaultCurrency = money.DefaultCurrency
	}
	return &orderingService{
		checkoutRepo:    checkoutRepo,
		defaultCurrency: defaultCurrency,
		now:             time.Now,
		logger:          logger.With().Str("service", "ordering").Logger(),
	}
}

func (s *orderingService) StartSession(ctx context.Context, sess *session.Session, externalID string) (*model.CustomerSession, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return nil, model.MissingField("QR code reference is required")
	}

	customer, err := sess.API.CreateSession(ctx, externalID)
	if err != nil {
		s.logger.Warn().Err(err).Str("external_id", externalID).Msg("failed to start customer session")
		return nil, upstreamError(err, "An error has occurred", "An error has occurred")
	}

	// a new table means a new menu and a new cart
	sess.SetMenu(nil)
	sess.Cart.Clear()

	s.logger.Info().Str("session_id", sess.ID).Str("external_id", externalID).Msg("customer session started")
	return customer, nil
}

func (s *orderingService) Menu(ctx context.Context, sess *session.Session, refresh bool) (*model.CustomerMenu, error) {
	if !refresh {
		if menu := sess.Menu(); menu != nil {
			return menu, nil
		}
	}

	menu, err := sess.API.GetMenu(ctx)
	if err != nil {
		s.logger.Error().Err(err).Str("session_id", sess.ID).Msg("failed to fetch menu")
		return nil, upstreamError(err, "Failed to load menu", "Failed to load menu - network error")
	}

	sess.SetMenu(menu)
	s.logger.Debug().
		Str("session_id", sess.ID).
		Int("categories", len(menu.Menu)).
		Msg("menu fetched")
	return menu, nil
}

func (s *orderingService) OpenItem(ctx context.Context, sess *session.Session, itemID string) (*ItemView, error) {
	menu, err := s.Menu(ctx, sess, false)
	if err != nil {
		return nil, err
	}

	item, ok := menu.FindItem(itemID)
	if !ok {
		return nil, model.ErrItemNotFound
	}

	sess.Cart.Open(item)
	view, err := sess.Cart.Selection()
	if err != nil {
		return nil, err
	}
	return s.itemView(sess, view), nil
}

func (s *orderingService) ToggleVariation(_ context.Context, sess *session.Session, variationID string) (*ItemView, error) {
	view, err := sess.Cart.Toggle(variationID)
	if err != nil {
		return nil, err
	}
	return s.itemView(sess, view), nil
}

func (s *orderingService) Selection(_ context.Context, sess *session.Session) (*ItemView, error) {
	view, err := sess.Cart.Selection()
	if err != nil {
		return nil, err
	}
	return s.itemView(sess, view), nil
}

func (s *orderingService) CloseItem(_ context.Context, sess *session.Session) {
	sess.Cart.Close()
}

func (s *orderingService) ConfirmItem(_ context.Context, sess *session.Session) (*CartView, error) {
	entry, err := sess.Cart.Confirm()
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("session_id", sess.ID).
		Str("cart_id", entry.ID).
		Str("item_id", entry.Item.ID).
		Str("total", entry.TotalPrice.StringFixed(2)).
		Msg("item added to cart")
	return s.cartView(sess), nil
}

func (s *orderingService) Cart(_ context.Context, sess *session.Session) *CartView {
	return s.cartView(sess)
}

func (s *orderingService) RemoveEntry(_ context.Context, sess *session.Session, entryID string) (*CartView, bool) {
	removed := sess.Cart.Remove(entryID)
	return s.cartView(sess), removed
}

func (s *orderingService) Checkout(ctx context.Context, sess *session.Session, form model.CheckoutForm) (*model.CheckoutResponse, error) {
	if err := cart.ValidateCustomer(form.Name, form.Email); err != nil {
		return nil, err
	}

	// a concurrent checkout finds the cart already emptied
	unlock := sess.LockCheckout()
	defer unlock()

	entries := sess.Cart.Entries()
	if len(entries) == 0 {
		return nil, model.ErrEmptyCart
	}

	payload := cart.BuildCheckout(entries, form.Name, form.Email, form.SpecialInstructions)

	checkout := &model.Checkout{
		ID:                  uuid.New(),
		SessionID:           sess.ID,
		CustomerName:        payload.CustomerName,
		CustomerEmail:       payload.CustomerEmail,
		SpecialInstructions: payload.SpecialInstructions,
		Total:               cart.Sum(payload.Items),
		Currency:            s.currency(sess),
		Status:              model.CheckoutStatusPendingPayment,
		CreatedAt:           s.now().UTC(),
	}
	if menu := sess.Menu(); menu != nil {
		checkout.OrganizationID = menu.Organization.ID
	}

	items := make([]model.CheckoutItem, len(payload.Items))
	for i, entry := range payload.Items {
		items[i] = model.CheckoutItem{
			ID:         uuid.New(),
			CheckoutID: checkout.ID,
			CartID:     entry.ID,
			MenuItemID: entry.Item.ID,
			Name:       entry.Item.Name,
			BasePrice:  entry.Item.Price,
			TotalPrice: entry.TotalPrice,
			Variations: entry.SelectedVariations,
		}
	}

	if err := s.persist(ctx, checkout, items); err != nil {
		return nil, err
	}

	// only the entries that were recorded leave the cart
	for _, entry := range payload.Items {
		sess.Cart.Remove(entry.ID)
	}

	s.logger.Info().
		Str("checkout_id", checkout.ID.String()).
		Str("session_id", sess.ID).
		Int("item_count", len(items)).
		Str("total", checkout.Total.StringFixed(2)).
		Msg("checkout recorded")

	return &model.CheckoutResponse{
		Checkout:       *checkout,
		Items:          items,
		FormattedTotal: money.Format(checkout.Total, checkout.Currency),
	}, nil
}

func (s *orderingService) persist(ctx context.Context, checkout *model.Checkout, items []model.CheckoutItem) (err error) {
	tx, err := s.checkoutRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to record checkout: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = s.checkoutRepo.CreateCheckout(ctx, tx, checkout); err != nil {
		return fmt.Errorf("failed to record checkout: %w", err)
	}

	if err = s.checkoutRepo.CreateCheckoutItems(ctx, tx, items); err != nil {
		return fmt.Errorf("failed to record checkout items: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("checkout_id", checkout.ID.String()).Msg("failed to commit transaction")
		return fmt.Errorf("failed to record checkout: %w", err)
	}

	return nil
}

// GetCheckout returns a checkout recorded by the same session.
func (s *orderingService) GetCheckout(ctx context.Context, sess *session.Session, id string) (*model.CheckoutResponse, error) {
	checkoutID, err := uuid.Parse(id)
	if err != nil {
		return nil, model.ErrCheckoutNotFound
	}

	checkout, items, err := s.checkoutRepo.GetByID(ctx, checkoutID)
	if err != nil {
		s.logger.Error().Err(err).Str("checkout_id", id).Msg("failed to get checkout")
		return nil, fmt.Errorf("failed to get checkout: %w", err)
	}
	if checkout == nil || checkout.SessionID != sess.ID {
		return nil, model.ErrCheckoutNotFound
	}

	return &model.CheckoutResponse{
		Checkout:       *checkout,
		Items:          items,
		FormattedTotal: money.Format(checkout.Total, checkout.Currency),
	}, nil
}

func (s *orderingService) currency(sess *session.Session) string {
	if menu := sess.Menu(); menu != nil && menu.Organization.Currency != "" {
		return strings.ToUpper(menu.Organization.Currency)
	}
	return s.defaultCurrency
}

func (s *orderingService) itemView(sess *session.Session, view cart.SelectionView) *ItemView {
	code := s.currency(sess)
	modifiers := make(map[string]string, len(view.Variations))
	for _, v := range view.Variations {
		modifiers[v.ID] = money.FormatModifier(v.PriceModifier, code)
	}
	return &ItemView{
		SelectionView:  view,
		FormattedTotal: money.Format(view.Total, code),
		Modifiers:      modifiers,
		Currency:       code,
	}
}

func (s *orderingService) cartView(sess *session.Session) *CartView {
	code := s.currency(sess)
	entries := sess.Cart.Entries()
	total := cart.Sum(entries)
	return &CartView{
		Entries:        entries,
		Count:          len(entries),
		Total:          total,
		FormattedTotal: money.Format(total, code),
		Currency:       code,
	}
}
