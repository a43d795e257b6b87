package service

import (
	"context"
	"errors"

	"platra/internal/model"
	"platra/internal/platform"
)

// upstreamError turns a failed platform call into what the browser is shown. Platform
// answers keep their status and code, with fallback standing in for an empty message.
// Anything else (transport, decoding) is replaced by the fixed network message.
func upstreamError(err error, fallback, network string) error {
	if apiErr, ok := platform.AsAPIError(err); ok {
		message := apiErr.Message
		if message == "" {
			message = fallback
		}
		return &platform.APIError{StatusCode: apiErr.StatusCode, Code: apiErr.Code, Message: message}
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return model.Unavailable(network)
}

// requireOrganization returns the selected organization of the session user.
func requireOrganization(sessUser *model.User) (string, error) {
	if sessUser == nil {
		return "", model.ErrNotAuthenticated
	}
	if sessUser.OrgID == "" {
		return "", model.ErrNoOrganization
	}
	return sessUser.OrgID, nil
}

// imageError keeps image validation errors and reports any other loader failure as
// model.ErrInvalidImage.
func imageError(err error) error {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return model.ErrInvalidImage
}
