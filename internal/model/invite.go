package model

import "time"

// Role is a staff role inside an organization.
type Role string

const (
	RoleManager       Role = "manager"
	RoleServiceStaff  Role = "service_staff"
	RoleDeliveryStaff Role = "delivery_staff"
	RoleKitchenStaff  Role = "kitchen_staff"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleManager, RoleServiceStaff, RoleDeliveryStaff, RoleKitchenStaff:
		return true
	}
	return false
}

// Invite is the server-owned invitation as seen by the invitee.
type Invite struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	OrganizationID string    `json:"organizationId"`
	IsNewUser      bool      `json:"isNewUser"`
	ExpiresAt      time.Time `json:"expiresAt"`
}

// InviteOrganization is the organization summary attached to an invite verification.
type InviteOrganization struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// InviteUser is the existing account an invite belongs to, if any.
type InviteUser struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

// InviteVerification is the payload of GET /invites/{token}/verify.
type InviteVerification struct {
	Invite       Invite             `json:"invite"`
	Organization InviteOrganization `json:"organization"`
	IsNewUser    bool               `json:"isNewUser"`
	User         *InviteUser        `json:"user,omitempty"`
}

// InviteAcceptance is the payload of POST /invites/{token}/accept.
type InviteAcceptance struct {
	IsNewUser bool   `json:"isNewUser"`
	Email     string `json:"email"`
}

// CompleteInviteRequest finishes an invite for a new user.
type CompleteInviteRequest struct {
	DisplayName string `json:"display_name"`
	Password    string `json:"password"`
}

// StaffMember is a user attached to an organization.
type StaffMember struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	OrganizationID string    `json:"organization_id"`
	Role           Role      `json:"role"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// StaffInvite is an invitation as seen from the organization's dashboard.
type StaffInvite struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Email          string    `json:"email"`
	Token          string    `json:"token,omitempty"`
	Name           string    `json:"name"`
	Role           Role      `json:"role"`
	ExpiresAt      time.Time `json:"expires_at"`
	Accepted       bool      `json:"accepted"`
	CreatedAt      time.Time `json:"created_at"`
	IsNewUser      bool      `json:"is_new_user"`
	Status         string    `json:"status"`
	Expired        bool      `json:"expired"`
}

// InviteRequest is the body for sending a staff invitation.
type InviteRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// StaffRoleRequest changes a staff member's role.
type StaffRoleRequest struct {
	Role Role `json:"role"`
}
