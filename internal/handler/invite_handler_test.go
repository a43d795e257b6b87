package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"platra/internal/invite"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInviteHandler_Verify(t *testing.T) {
	svc := new(MockInviteService)
	h := NewInviteHandler(svc, zerolog.Nop())
	r, sess := withSession(httptest.NewRequest(http.MethodGet, "/api/invites/tok/verify", nil), map[string]string{"token": "tok"})
	svc.On("Verify", mock.Anything, sess, "tok").Return(invite.Result{State: invite.StateExpired, Message: "This invitation has expired"})
	w := httptest.NewRecorder()

	h.Verify(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var result invite.Result
	decodeData(t, w, &result)
	assert.Equal(t, invite.StateExpired, result.State)
}

func TestInviteHandler_Reject(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		confirmed bool
		next      *invite.Next
	}{
		{name: "unconfirmed", body: `{}`, confirmed: false},
		{name: "empty body", body: "", confirmed: false},
		{name: "confirmed", body: `{"confirmed":true}`, confirmed: true, next: &invite.Next{Route: "/", Message: invite.MessageRejected}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockInviteService)
			h := NewInviteHandler(svc, zerolog.Nop())
			r, sess := withSession(httptest.NewRequest(http.MethodPost, "/api/invites/tok/reject", strings.NewReader(tt.body)), map[string]string{"token": "tok"})
			svc.On("Reject", mock.Anything, sess, "tok", tt.confirmed).Return(tt.next, nil)
			w := httptest.NewRecorder()

			h.Reject(w, r)

			assert.Equal(t, http.StatusOK, w.Code)
			var next invite.Next
			if tt.next == nil {
				env := decodeData(t, w, nil)
				assert.Equal(t, "Rejection not confirmed", env.Message)
				return
			}
			decodeData(t, w, &next)
			require.Equal(t, "/", next.Route)
		})
	}
}
