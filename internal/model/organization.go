package model

import "time"

// User is the authenticated dashboard user. OrgID and OrganizationName are set once an
// organization has been selected.
type User struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	DisplayName      string `json:"display_name"`
	OrganizationName string `json:"organization_name,omitempty"`
	OrgID            string `json:"org_id,omitempty"`
}

// Organization is a tenant owning menus, staff and QR codes.
type Organization struct {
	ID          string     `json:"id"`
	OwnerID     string     `json:"owner_id,omitempty"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug,omitempty"`
	Description string     `json:"description,omitempty"`
	Address     string     `json:"address,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	Email       string     `json:"email,omitempty"`
	LogoURL     string     `json:"logo_url,omitempty"`
	IsActive    bool       `json:"is_active"`
	Currency    string     `json:"currency,omitempty"`
	UserRole    string     `json:"user_role,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is what the registration form submits.
type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// OrganizationRequest is the body for creating an organization. LogoRef is resolved through
// the media loader.
type OrganizationRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	LogoRef     string `json:"logo_ref,omitempty"`
}

// CustomerSession is returned by POST /sessions/create.
type CustomerSession struct {
	RedirectURL string `json:"redirect_url"`
}
