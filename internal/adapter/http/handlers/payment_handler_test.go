package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"retail_console/internal/adapter/http/handlers/mocks"
	"retail_console/internal/domain/entities"
	"retail_console/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_RecordPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *PaymentHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/quotations/:quotation_id/payments", h.RecordPayment)
		return r
	}

	t.Run("invalid json body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations/q-1/payments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty body becomes empty payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)
		uc.EXPECT().
			RecordPayment(gomock.Any(), "q-1", gomock.Any()).
			DoAndReturn(func(_ any, _ string, payload json.RawMessage) (entities.PaymentEvent, error) {
				if string(payload) != "{}" {
					t.Fatalf("expected empty object payload, got %s", payload)
				}
				return entities.PaymentEvent{Type: entities.EventPaymentReceived, Timestamp: time.Now().UTC()}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations/q-1/payments", nil)
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("envelope payload is unwrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)
		uc.EXPECT().
			RecordPayment(gomock.Any(), "q-1", gomock.Any()).
			DoAndReturn(func(_ any, _ string, payload json.RawMessage) (entities.PaymentEvent, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("unmarshal forwarded payload: %v", err)
				}
				if m["payment_method_id"] != "pix" {
					t.Fatalf("expected unwrapped provider payload, got %s", payload)
				}
				return entities.PaymentEvent{Type: entities.EventPaymentReceived, Timestamp: time.Now().UTC()}, nil
			})

		payload := `{"provider_payload":{"payment_method_id":"pix"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotations/q-1/payments", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("quotation not accepted maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)
		uc.EXPECT().
			RecordPayment(gomock.Any(), "q-1", gomock.Any()).
			Return(entities.PaymentEvent{}, usecase.ErrQuotationNotAccepted)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations/q-1/payments", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("provider unauthorized maps to 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)
		uc.EXPECT().
			RecordPayment(gomock.Any(), "q-1", gomock.Any()).
			Return(entities.PaymentEvent{}, usecase.ErrPaymentGatewayUnauthorized)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations/q-1/payments", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}
