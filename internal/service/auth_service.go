package service

import (
	"context"
	"strings"
	"time"
	"unicode"

	"platra/internal/media"
	"platra/internal/model"
	"platra/internal/session"

	"github.com/rs/zerolog"
)

// OTPLength is the number of digits in a one-time password.
const OTPLength = 6

// OTPResendWindow is how long a freshly sent one-time password stays valid.
const OTPResendWindow = 300 * time.Second

const messageGenericError = "An error occurred. Please try again."

// authService implements AuthService.
type authService struct {
	media  media.Loader
	logger zerolog.Logger
}

// NewAuthService creates an auth service. loader resolves organization logo references.
func NewAuthService(loader media.Loader, logger zerolog.Logger) AuthService {
	return &authService{
		media:  loader,
		logger: logger.With().Str("service", "auth").Logger(),
	}
}

func (s *authService) CurrentUser(ctx context.Context, sess *session.Session) (*model.User, error) {
	previous := sess.User()

	user, err := sess.API.Me(ctx)
	if err != nil {
		sess.SetUser(nil)
		s.logger.Debug().Err(err).Str("session_id", sess.ID).Msg("no authenticated user")
		return nil, upstreamError(err, "Not authenticated", messageGenericError)
	}

	// the platform may not echo the organization chosen in this session
	if user.OrgID == "" && previous != nil && previous.ID == user.ID {
		user.OrgID = previous.OrgID
		user.OrganizationName = previous.OrganizationName
	}
	sess.SetUser(user)
	return sess.User(), nil
}

func (s *authService) Login(ctx context.Context, sess *session.Session, req model.LoginRequest) (*model.User, error) {
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return nil, model.MissingField("Email and password are required")
	}

	user, err := sess.API.Login(ctx, req)
	if err != nil {
		s.logger.Warn().Err(err).Str("session_id", sess.ID).Msg("login failed")
		return nil, upstreamError(err, "Login failed", "Network error")
	}

	sess.SetUser(user)
	s.logger.Info().Str("session_id", sess.ID).Str("user_id", user.ID).Msg("user logged in")
	return sess.User(), nil
}

func (s *authService) Register(ctx context.Context, sess *session.Session, req model.RegisterRequest) (*model.User, error) {
	first := strings.TrimSpace(req.FirstName)
	last := strings.TrimSpace(req.LastName)
	email := strings.TrimSpace(req.Email)
	if first == "" || last == "" || email == "" || req.Password == "" {
		return nil, model.MissingField("All fields are required")
	}

	user, err := sess.API.Register(ctx, first+" "+last, email, req.Password)
	if err != nil {
		s.logger.Warn().Err(err).Str("session_id", sess.ID).Msg("registration failed")
		return nil, upstreamError(err, "Registration failed", "Network error")
	}

	sess.SetUser(user)
	s.logger.Info().Str("session_id", sess.ID).Str("user_id", user.ID).Msg("user registered")
	return sess.User(), nil
}

func (s *authService) Logout(ctx context.Context, sess *session.Session) error {
	if err := sess.API.Logout(ctx); err != nil {
		s.logger.Warn().Err(err).Str("session_id", sess.ID).Msg("platform logout failed, clearing session anyway")
	}
	sess.SetUser(nil)
	return nil
}

// NormalizeOTP accepts a typed or pasted code: surrounding space is trimmed and only the
// first six characters count. They must all be digits.
func NormalizeOTP(raw string) (string, error) {
	runes := []rune(strings.TrimSpace(raw))
	if len(runes) > OTPLength {
		runes = runes[:OTPLength]
	}
	if len(runes) != OTPLength {
		return "", model.ErrInvalidOTP
	}
	for _, r := range runes {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return "", model.ErrInvalidOTP
		}
	}
	return string(runes), nil
}

func (s *authService) VerifyOTP(ctx context.Context, sess *session.Session, otp string) error {
	code, err := NormalizeOTP(otp)
	if err != nil {
		return err
	}

	if err := sess.API.VerifyOTP(ctx, code); err != nil {
		s.logger.Warn().Err(err).Str("session_id", sess.ID).Msg("OTP verification failed")
		return upstreamError(err, "Invalid OTP. Please try again.", messageGenericError)
	}
	return nil
}

func (s *authService) ResendOTP(ctx context.Context, sess *session.Session) (time.Duration, error) {
	if err := sess.API.ResendOTP(ctx); err != nil {
		s.logger.Warn().Err(err).Str("session_id", sess.ID).Msg("OTP resend failed")
		return 0, upstreamError(err, "Failed to resend OTP. Please try again.", messageGenericError)
	}
	return OTPResendWindow, nil
}

func (s *authService) ListOrganizations(ctx context.Context, sess *session.Session) ([]model.Organization, error) {
	orgs, err := sess.API.ListOrganizations(ctx)
	if err != nil {
		s.logger.Error().Err(err).Str("session_id", sess.ID).Msg("failed to fetch organizations")
		return nil, upstreamError(err, "Failed to fetch organizations", messageGenericError)
	}

	sess.SetOrganizations(orgs)
	return sess.Organizations(), nil
}

func (s *authService) CreateOrganization(ctx context.Context, sess *session.Session, req model.OrganizationRequest, logo *media.Image) (*model.Organization, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, model.MissingField("Business name is required")
	}

	if logo == nil && req.LogoRef != "" {
		img, err := s.media.Load(ctx, req.LogoRef)
		if err != nil {
			s.logger.Warn().Err(err).Str("logo_ref", req.LogoRef).Msg("failed to load logo")
			return nil, imageError(err)
		}
		logo = img
	}

	org, err := sess.API.CreateOrganization(ctx, name, strings.TrimSpace(req.Description), logo)
	if err != nil {
		s.logger.Error().Err(err).Str("session_id", sess.ID).Msg("failed to create organization")
		return nil, upstreamError(err, "Failed to create business", messageGenericError)
	}

	sess.SetOrganizations(append(sess.Organizations(), *org))
	s.logger.Info().Str("organization_id", org.ID).Msg("organization created")
	return org, nil
}

func (s *authService) SelectOrganization(ctx context.Context, sess *session.Session, orgID string) (*model.User, error) {
	if sess.User() == nil {
		return nil, model.ErrNotAuthenticated
	}

	org, ok := sess.Organization(orgID)
	if !ok {
		return nil, model.ErrUnknownOrganization
	}

	if _, err := sess.API.SelectOrganization(ctx, org.ID); err != nil {
		s.logger.Error().Err(err).Str("organization_id", org.ID).Msg("failed to select organization")
		return nil, upstreamError(err,
			"Failed to select an organization - Please try again later",
			"Failed to select an organization - Please try again later")
	}

	if !sess.SelectOrganization(org) {
		return nil, model.ErrNotAuthenticated
	}
	s.logger.Info().Str("session_id", sess.ID).Str("organization_id", org.ID).Msg("organization selected")
	return sess.User(), nil
}

func (s *authService) ClearOrganization(_ context.Context, sess *session.Session) (*model.User, error) {
	if sess.User() == nil {
		return nil, model.ErrNotAuthenticated
	}
	sess.ClearOrganization()
	return sess.User(), nil
}
