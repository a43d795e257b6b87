package service

import (
	"context"

	"platra/internal/cart"
	"platra/internal/media"
	"platra/internal/model"
	"platra/internal/platform/platformtest"
	"platra/internal/session"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
)

// MockCheckoutRepository is a mock implementation of CheckoutRepository.
type MockCheckoutRepository struct {
	mock.Mock
}

func (m *MockCheckoutRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if tx, ok := args.Get(0).(pgx.Tx); ok {
		return tx, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCheckoutRepository) CreateCheckout(ctx context.Context, tx pgx.Tx, checkout *model.Checkout) error {
	args := m.Called(ctx, tx, checkout)
	return args.Error(0)
}

func (m *MockCheckoutRepository) CreateCheckoutItems(ctx context.Context, tx pgx.Tx, items []model.CheckoutItem) error {
	args := m.Called(ctx, tx, items)
	return args.Error(0)
}

func (m *MockCheckoutRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Checkout, []model.CheckoutItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*model.Checkout), args.Get(1).([]model.CheckoutItem), args.Error(2)
}

// MockTx is a minimal mock implementation of pgx.Tx for testing.
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Stub methods to satisfy pgx.Tx; the service never calls them.
func (m *MockTx) Begin(ctx context.Context) (pgx.Tx, error) { return nil, nil }
func (m *MockTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (m *MockTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (m *MockTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (m *MockTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (m *MockTx) Exec(ctx context.Context, sql string, arguments ...any) (commandTag pgconn.CommandTag, err error) {
	return
}
func (m *MockTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (m *MockTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (m *MockTx) Conn() *pgx.Conn                                               { return nil }

// MockLoader is a mock implementation of media.Loader.
type MockLoader struct {
	mock.Mock
}

func (m *MockLoader) Load(ctx context.Context, ref string) (*media.Image, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*media.Image), args.Error(1)
}

func newTestSession() (*session.Session, *platformtest.MockAPI) {
	api := new(platformtest.MockAPI)
	return session.New("sess-1", api, cart.New()), api
}

// loggedIn returns a session whose user has selected org-1.
func loggedIn() (*session.Session, *platformtest.MockAPI) {
	sess, api := newTestSession()
	sess.SetUser(&model.User{ID: "u1", Email: "owner@example.com"})
	org := model.Organization{ID: "org-1", Name: "Mama's Kitchen"}
	sess.SetOrganizations([]model.Organization{org})
	sess.SelectOrganization(org)
	return sess, api
}
