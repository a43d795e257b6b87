package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"platra/internal/model"
	"platra/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOrderingHandler_Checkout(t *testing.T) {
	logger := zerolog.Nop()
	form := model.CheckoutForm{Name: "Ada", Email: "ada@example.com", SpecialInstructions: "extra pepper"}

	tests := []struct {
		name           string
		body           string
		mockReturn     *model.CheckoutResponse
		mockError      error
		expectService  bool
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "Success",
			body: `{"customer_name":"Ada","customer_email":"ada@example.com","special_instructions":"extra pepper"}`,
			mockReturn: &model.CheckoutResponse{
				Checkout:       model.Checkout{ID: uuid.New(), Total: decimal.NewFromInt(3300), Status: model.CheckoutStatusPendingPayment},
				FormattedTotal: "₦3,300.00",
			},
			expectService:  true,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Empty cart",
			body:           `{"customer_name":"Ada","customer_email":"ada@example.com","special_instructions":"extra pepper"}`,
			mockError:      model.ErrEmptyCart,
			expectService:  true,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeEmptyCart,
		},
		{
			name:           "Invalid JSON",
			body:           `{"customer_name":`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockOrderingService)
			h := NewOrderingHandler(svc, logger)

			r, sess := withSession(httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(tt.body)), nil)
			if tt.expectService {
				svc.On("Checkout", mock.Anything, sess, form).Return(tt.mockReturn, tt.mockError)
			}
			w := httptest.NewRecorder()

			h.Checkout(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
			var resp model.CheckoutResponse
			if tt.mockReturn != nil {
				env := decodeData(t, w, &resp)
				assert.True(t, env.Success)
				assert.Equal(t, "₦3,300.00", resp.FormattedTotal)
			} else {
				env := decodeData(t, w, nil)
				assert.Equal(t, tt.expectedCode, env.Code)
			}
			if tt.expectService {
				svc.AssertExpectations(t)
			} else {
				svc.AssertNotCalled(t, "Checkout", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestOrderingHandler_Selection(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("toggle passes the variation id", func(t *testing.T) {
		svc := new(MockOrderingService)
		h := NewOrderingHandler(svc, logger)
		r, sess := withSession(httptest.NewRequest(http.MethodPost, "/api/selection/variations/large", nil), map[string]string{"variationID": "large"})
		svc.On("ToggleVariation", mock.Anything, sess, "large").Return(&service.ItemView{FormattedTotal: "₦3,500.00"}, nil)
		w := httptest.NewRecorder()

		h.ToggleVariation(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var view service.ItemView
		decodeData(t, w, &view)
		assert.Equal(t, "₦3,500.00", view.FormattedTotal)
	})

	t.Run("confirm without an open item", func(t *testing.T) {
		svc := new(MockOrderingService)
		h := NewOrderingHandler(svc, logger)
		r, sess := withSession(httptest.NewRequest(http.MethodPost, "/api/selection/confirm", nil), nil)
		svc.On("ConfirmItem", mock.Anything, sess).Return(nil, model.ErrNoOpenItem)
		w := httptest.NewRecorder()

		h.ConfirmItem(w, r)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("close", func(t *testing.T) {
		svc := new(MockOrderingService)
		h := NewOrderingHandler(svc, logger)
		r, sess := withSession(httptest.NewRequest(http.MethodDelete, "/api/selection", nil), nil)
		svc.On("CloseItem", mock.Anything, sess).Return()
		w := httptest.NewRecorder()

		h.CloseItem(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
		svc.AssertExpectations(t)
	})
}

func TestOrderingHandler_RemoveEntry(t *testing.T) {
	for _, removed := range []bool{true, false} {
		svc := new(MockOrderingService)
		h := NewOrderingHandler(svc, zerolog.Nop())
		r, sess := withSession(httptest.NewRequest(http.MethodDelete, "/api/cart/entries/e-1", nil), map[string]string{"entryID": "e-1"})
		svc.On("RemoveEntry", mock.Anything, sess, "e-1").Return(&service.CartView{Count: 1}, removed)
		w := httptest.NewRecorder()

		h.RemoveEntry(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var view service.CartView
		decodeData(t, w, &view)
		assert.Equal(t, 1, view.Count)
	}
}

func TestOrderingHandler_Menu(t *testing.T) {
	tests := []struct {
		query   string
		refresh bool
	}{
		{query: "", refresh: false},
		{query: "?refresh=true", refresh: true},
		{query: "?refresh=nope", refresh: false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			svc := new(MockOrderingService)
			h := NewOrderingHandler(svc, zerolog.Nop())
			r, sess := withSession(httptest.NewRequest(http.MethodGet, "/api/menu"+tt.query, nil), nil)
			svc.On("Menu", mock.Anything, sess, tt.refresh).Return(&model.CustomerMenu{}, nil)
			w := httptest.NewRecorder()

			h.Menu(w, r)

			assert.Equal(t, http.StatusOK, w.Code)
			svc.AssertExpectations(t)
		})
	}
}
