package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tukang-design/tukang-api/internal/adapter/http/handlers/mocks"
	"github.com/tukang-design/tukang-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestNotificationHandler_SendNotification(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		r := gin.New()
		r.POST("/v1/send-notification", h.SendNotification)

		req := httptest.NewRequest(http.MethodPost, "/v1/send-notification", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing name and email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		r := gin.New()
		r.POST("/v1/send-notification", h.SendNotification)

		req := httptest.NewRequest(http.MethodPost, "/v1/send-notification", bytes.NewBufferString(`{"estimatedPrice":1000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("transport failure returns 500 with error field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		r := gin.New()
		r.POST("/v1/send-notification", h.SendNotification)

		uc.EXPECT().NotifyEstimate(gomock.Any(), gomock.Any()).Return(errors.New("smtp timeout"))

		req := httptest.NewRequest(http.MethodPost, "/v1/send-notification", bytes.NewBufferString(`{"name":"Ben","email":"ben@example.sg","estimatedPrice":1000,"region":"SG"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != false {
			t.Fatalf("expected success false: %s", w.Body.String())
		}
		if _, hasErr := body["error"]; !hasErr {
			t.Fatalf("500 must carry error field: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		r := gin.New()
		r.POST("/v1/send-notification", h.SendNotification)

		uc.EXPECT().NotifyEstimate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.EstimateNotification) error {
				if in.Name != "Ben" || string(in.Region) != "SG" {
					t.Fatalf("unexpected notification input: %+v", in)
				}
				return nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/send-notification", bytes.NewBufferString(`{"name":"Ben","email":"ben@example.sg","services":[{"name":"Landing page","price":1000}],"estimatedPrice":1000,"region":"SG"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestMapNotificationError(t *testing.T) {
	if got := mapNotificationError(usecase.ErrInvalidNotification); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapNotificationError(usecase.ErrMailerNotConfigured); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
	if got := mapNotificationError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
