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

func TestTimelineHandler_GetTimeline(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITimelineUseCase(ctrl)
		h := NewTimelineHandler(uc)
		uc.EXPECT().GetTimeline(gomock.Any(), "q-404").Return(nil, usecase.BillClassification{}, usecase.ErrQuotationNotFound)

		r := gin.New()
		r.GET("/v1/quotations/:quotation_id/timeline", h.GetTimeline)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotations/q-404/timeline", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success renders bill summary and entries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITimelineUseCase(ctrl)
		h := NewTimelineHandler(uc)

		now := time.Now().UTC()
		uc.EXPECT().GetTimeline(gomock.Any(), "q-1").Return(
			[]usecase.TimelineEntry{
				{Type: "staff_response", Severity: "neutral", Icon: "message-square", Timestamp: now, Message: "called customer", ActorID: "staff-2"},
				{Type: entities.EventSecondAlert, Severity: "warning", Icon: "bell-ring", Timestamp: now.Add(-time.Hour)},
			},
			usecase.DeriveBillStatus(entities.BillStatusPending),
			nil,
		)

		r := gin.New()
		r.GET("/v1/quotations/:quotation_id/timeline", h.GetTimeline)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotations/q-1/timeline", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Bill struct {
				Label    string `json:"label"`
				Severity string `json:"severity"`
			} `json:"bill"`
			Entries []struct {
				Type string `json:"type"`
			} `json:"entries"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if body.Bill.Label != "Payment pending" || body.Bill.Severity != "warning" {
			t.Fatalf("unexpected bill summary: %+v", body.Bill)
		}
		if len(body.Entries) != 2 || body.Entries[0].Type != "staff_response" {
			t.Fatalf("unexpected entries: %+v", body.Entries)
		}
	})
}

func TestTimelineHandler_AddStaffNote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing note", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITimelineUseCase(ctrl)
		h := NewTimelineHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations/:quotation_id/notes", h.AddStaffNote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations/q-1/notes", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success forwards actor and follow-up", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITimelineUseCase(ctrl)
		h := NewTimelineHandler(uc)

		followUp := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
		uc.EXPECT().
			AddStaffNote(gomock.Any(), "q-1", "promised to pay friday", gomock.Any(), "staff-2").
			DoAndReturn(func(_ any, _, note string, f *time.Time, actor string) (entities.StaffResponse, error) {
				if f == nil || !f.Equal(followUp) {
					t.Fatalf("expected follow-up %v, got %v", followUp, f)
				}
				return entities.StaffResponse{ID: "sr-1", Note: note, ActorID: actor, FollowUpOn: f}, nil
			})

		r := gin.New()
		r.POST("/v1/quotations/:quotation_id/notes", h.AddStaffNote)

		payload := `{"note":"promised to pay friday","follow_up_on":"2026-09-15T10:00:00Z"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotations/q-1/notes", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Actor-ID", "staff-2")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestTimelineHandler_RaiseAlert(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown alert type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITimelineUseCase(ctrl)
		h := NewTimelineHandler(uc)
		uc.EXPECT().RaiseAlert(gomock.Any(), "q-1", "fourth_alert", "").Return(entities.PaymentEvent{}, usecase.ErrUnknownAlertType)

		r := gin.New()
		r.POST("/v1/quotations/:quotation_id/alerts", h.RaiseAlert)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations/q-1/alerts", bytes.NewBufferString(`{"type":"fourth_alert"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITimelineUseCase(ctrl)
		h := NewTimelineHandler(uc)
		uc.EXPECT().
			RaiseAlert(gomock.Any(), "q-1", entities.EventFirstAlert, "payment reminder sent").
			Return(entities.PaymentEvent{Type: entities.EventFirstAlert, Timestamp: time.Now().UTC(), Message: "payment reminder sent"}, nil)

		r := gin.New()
		r.POST("/v1/quotations/:quotation_id/alerts", h.RaiseAlert)

		payload := `{"type":"first_alert","message":"payment reminder sent"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotations/q-1/alerts", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}
