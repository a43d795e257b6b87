// Package invite classifies the platform's answer to an invitation verification and decides
// where the invitee goes next.
package invite

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"platra/internal/model"
	"platra/internal/platform"
)

// State is the outcome of verifying an invitation token.
type State string

const (
	StateLoading     State = "loading"
	StateValid       State = "valid"
	StateExpired     State = "expired"
	StateNotFound    State = "notFound"
	StateAlreadyUsed State = "alreadyUsed"
	StateError       State = "error"
)

// Structured codes the platform may attach to a failed verification.
const (
	CodeExpired     = "INVITE_EXPIRED"
	CodeNotFound    = "INVITE_NOT_FOUND"
	CodeAlreadyUsed = "INVITE_ALREADY_USED"
)

const (
	MessageNetworkError       = "Failed to verify invitation - network error"
	MessageVerificationFailed = "Invitation verification failed"
	MessageAcceptedLogin      = "Invitation accepted! Please login to access your organization."
)

// Result is a classified verification. Verification is only set for StateValid.
type Result struct {
	State        State                     `json:"state"`
	Message      string                    `json:"message,omitempty"`
	Verification *model.InviteVerification `json:"verification,omitempty"`
}

var codeStates = map[string]State{
	CodeExpired:     StateExpired,
	CodeNotFound:    StateNotFound,
	CodeAlreadyUsed: StateAlreadyUsed,
}

// Classify maps the result of GET /invites/{token}/verify to a State. A structured code wins
// over the message text; the message is matched case-sensitively as a fallback.
func Classify(verification *model.InviteVerification, err error) Result {
	if err == nil {
		return Result{State: StateValid, Verification: verification}
	}

	var apiErr *platform.APIError
	if !errors.As(err, &apiErr) {
		return Result{State: StateError, Message: MessageNetworkError}
	}

	if apiErr.HTTPOK() {
		message := apiErr.Message
		if message == "" {
			message = MessageVerificationFailed
		}
		return Result{State: StateError, Message: message}
	}

	if state, ok := codeStates[apiErr.Code]; ok {
		return Result{State: state, Message: apiErr.Message}
	}

	message := apiErr.Message
	switch {
	case strings.Contains(message, "expired"):
		return Result{State: StateExpired, Message: message}
	case strings.Contains(message, "not found"):
		return Result{State: StateNotFound, Message: message}
	case strings.Contains(message, "already"):
		return Result{State: StateAlreadyUsed, Message: message}
	}

	if message == "" {
		message = http.StatusText(apiErr.StatusCode)
	}
	return Result{State: StateError, Message: message}
}

// Next is where the browser goes after a successful accept.
type Next struct {
	Route   string `json:"route"`
	Message string `json:"message,omitempty"`
}

// AcceptOutcome routes a new user to registration, prefilled with their e-mail and the
// invite token, and an existing user to login.
func AcceptOutcome(token string, acceptance model.InviteAcceptance) Next {
	if acceptance.IsNewUser {
		query := url.Values{}
		query.Set("email", acceptance.Email)
		query.Set("invite", token)
		return Next{Route: "/register?" + query.Encode()}
	}
	return Next{Route: "/login", Message: MessageAcceptedLogin}
}

// Messages shown when accepting or rejecting fails.
const (
	MessageAcceptFailed         = "Failed to accept invitation"
	MessageAcceptNetworkError   = "Failed to accept invitation - network error"
	MessageRejectFailed         = "Failed to reject invitation"
	MessageRejectNetworkError   = "Failed to reject invitation - network error"
	MessageRejected             = "Invitation rejected"
	MessageCompleteFailed       = "Failed to complete invitation"
	MessageCompleteNetworkError = "Failed to complete invitation - network error"
)

// RejectOutcome sends the browser home after a rejection.
func RejectOutcome() Next {
	return Next{Route: "/", Message: MessageRejected}
}
