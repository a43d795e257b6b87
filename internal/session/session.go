// Package session holds per-browser state: the upstream client with its cookies, the cart,
// the cached customer menu and the authenticated user with their organizations.
package session

import (
	"context"
	"slices"
	"sync"
	"time"

	"platra/internal/cart"
	"platra/internal/model"
	"platra/internal/platform"
)

// Session is the state of one browser. It is safe for concurrent use.
type Session struct {
	ID        string
	API       platform.API
	Cart      *cart.Cart
	CreatedAt time.Time

	checkoutMu sync.Mutex

	mu            sync.RWMutex
	user          *model.User
	organizations []model.Organization
	menu          *model.CustomerMenu
}

// New creates a session around an upstream client.
func New(id string, api platform.API, c *cart.Cart) *Session {
	return &Session{
		ID:        id,
		API:       api,
		Cart:      c,
		CreatedAt: time.Now(),
	}
}

// LockCheckout serialises checkouts of the session. The returned func releases the lock.
func (s *Session) LockCheckout() (unlock func()) {
	s.checkoutMu.Lock()
	return s.checkoutMu.Unlock
}

// User returns a copy of the authenticated user, or nil.
func (s *Session) User() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// SetUser replaces the authenticated user. A nil user also forgets the organizations.
func (s *Session) SetUser(user *model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user == nil {
		s.user = nil
		s.organizations = nil
		return
	}
	u := *user
	s.user = &u
}

func (s *Session) Organizations() []model.Organization {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.organizations)
}

func (s *Session) SetOrganizations(orgs []model.Organization) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.organizations = slices.Clone(orgs)
}

// Organization finds id among the fetched organizations.
func (s *Session) Organization(id string) (model.Organization, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, org := range s.organizations {
		if org.ID == id {
			return org, true
		}
	}
	return model.Organization{}, false
}

// SelectOrganization binds org to the user. It fails when nobody is logged in.
func (s *Session) SelectOrganization(org model.Organization) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return false
	}
	s.user.OrgID = org.ID
	s.user.OrganizationName = org.Name
	return true
}

func (s *Session) ClearOrganization() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user != nil {
		s.user.OrgID = ""
		s.user.OrganizationName = ""
	}
}

// OrganizationID returns the selected organization, or "".
func (s *Session) OrganizationID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return ""
	}
	return s.user.OrgID
}

func (s *Session) Menu() *model.CustomerMenu {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.menu
}

func (s *Session) SetMenu(menu *model.CustomerMenu) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.menu = menu
}

type contextKey struct{}

// WithContext returns a copy of ctx carrying s.
func WithContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the session stored by WithContext.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(contextKey{}).(*Session)
	return s, ok && s != nil
}
