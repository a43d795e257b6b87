package service

import (
	"context"
	"strings"

	"platra/internal/invite"
	"platra/internal/model"
	"platra/internal/session"

	"github.com/rs/zerolog"
)

// inviteService implements InviteService.
type inviteService struct {
	logger zerolog.Logger
}

// NewInviteService creates the invitee-side invite service.
func NewInviteService(logger zerolog.Logger) InviteService {
	return &inviteService{
		logger: logger.With().Str("service", "invite").Logger(),
	}
}

func (s *inviteService) Verify(ctx context.Context, sess *session.Session, token string) invite.Result {
	if strings.TrimSpace(token) == "" {
		return invite.Result{State: invite.StateNotFound, Message: "Invitation token is missing"}
	}

	verification, err := sess.API.VerifyInvite(ctx, token)
	result := invite.Classify(verification, err)

	event := s.logger.Debug()
	if result.State == invite.StateError {
		event = s.logger.Warn().Err(err)
	}
	event.Str("session_id", sess.ID).Str("state", string(result.State)).Msg("invite verified")

	return result
}

func (s *inviteService) Accept(ctx context.Context, sess *session.Session, token string) (invite.Next, error) {
	acceptance, err := sess.API.AcceptInvite(ctx, token)
	if err != nil {
		s.logger.Warn().Err(err).Str("session_id", sess.ID).Msg("failed to accept invite")
		return invite.Next{}, upstreamError(err, invite.MessageAcceptFailed, invite.MessageAcceptNetworkError)
	}

	s.logger.Info().
		Str("session_id", sess.ID).
		Bool("new_user", acceptance.IsNewUser).
		Msg("invite accepted")
	return invite.AcceptOutcome(token, *acceptance), nil
}

func (s *inviteService) Reject(ctx context.Context, sess *session.Session, token string, confirmed bool) (*invite.Next, error) {
	if !confirmed {
		return nil, nil
	}

	if err := sess.API.RejectInvite(ctx, token); err != nil {
		s.logger.Warn().Err(err).Str("session_id", sess.ID).Msg("failed to reject invite")
		return nil, upstreamError(err, invite.MessageRejectFailed, invite.MessageRejectNetworkError)
	}

	s.logger.Info().Str("session_id", sess.ID).Msg("invite rejected")
	next := invite.RejectOutcome()
	return &next, nil
}

func (s *inviteService) Complete(ctx context.Context, sess *session.Session, token string, req model.CompleteInviteRequest) (*model.User, error) {
	req.DisplayName = strings.TrimSpace(req.DisplayName)
	if req.DisplayName == "" || req.Password == "" {
		return nil, model.MissingField("Name and password are required")
	}

	user, err := sess.API.CompleteInvite(ctx, token, req)
	if err != nil {
		s.logger.Warn().Err(err).Str("session_id", sess.ID).Msg("failed to complete invite")
		return nil, upstreamError(err, invite.MessageCompleteFailed, invite.MessageCompleteNetworkError)
	}

	if user.ID != "" {
		sess.SetUser(user)
	}
	return user, nil
}
