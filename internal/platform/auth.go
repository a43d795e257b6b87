package platform

import (
	"context"
	"net/http"

	"platra/internal/model"
)

// Me calls GET /auth/me.
func (c *Client) Me(ctx context.Context) (*model.User, error) {
	var user model.User
	if err := c.getJSON(ctx, c.endpoint("auth", "me"), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login calls POST /auth/login. The upstream answers with a session cookie kept in the jar.
func (c *Client) Login(ctx context.Context, req model.LoginRequest) (*model.User, error) {
	var user model.User
	if err := c.sendJSON(ctx, http.MethodPost, c.endpoint("auth", "login"), req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Register calls POST /auth/register.
func (c *Client) Register(ctx context.Context, displayName, email, password string) (*model.User, error) {
	body := map[string]string{
		"display_name": displayName,
		"email":        email,
		"password":     password,
	}
	var user model.User
	if err := c.sendJSON(ctx, http.MethodPost, c.endpoint("auth", "register"), body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout calls POST /auth/logout.
func (c *Client) Logout(ctx context.Context) error {
	return c.sendJSON(ctx, http.MethodPost, c.endpoint("auth", "logout"), nil, nil)
}

// VerifyOTP calls POST /auth/verify-otp.
func (c *Client) VerifyOTP(ctx context.Context, otp string) error {
	return c.sendJSON(ctx, http.MethodPost, c.endpoint("auth", "verify-otp"), map[string]string{"otp": otp}, nil)
}

// ResendOTP calls POST /auth/resend-otp.
func (c *Client) ResendOTP(ctx context.Context) error {
	return c.sendJSON(ctx, http.MethodPost, c.endpoint("auth", "resend-otp"), nil, nil)
}
