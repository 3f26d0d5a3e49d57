package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tukang-design/tukang-api/internal/adapter/http/handlers/mocks"
	"github.com/tukang-design/tukang-api/internal/domain/entities"
	"github.com/tukang-design/tukang-api/internal/usecase"
	repomocks "github.com/tukang-design/tukang-api/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler_SubmitQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/submit-quote", h.SubmitQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/submit-quote", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/submit-quote", h.SubmitQuote)

		uc.EXPECT().SubmitQuote(gomock.Any(), gomock.Any()).Return(usecase.QuoteResult{}, usecase.ErrMissingRequiredFields)

		req := httptest.NewRequest(http.MethodPost, "/v1/submit-quote", bytes.NewBufferString(`{"name":"","email":"","projectBrief":""}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != false {
			t.Fatalf("expected success false: %s", w.Body.String())
		}
		if body["message"] != "Missing required fields" {
			t.Fatalf("expected message field, got: %s", w.Body.String())
		}
		if _, hasErr := body["error"]; hasErr {
			t.Fatalf("400 must not carry error field: %s", w.Body.String())
		}
	})

	t.Run("persist failure returns 500 with error field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/submit-quote", h.SubmitQuote)

		uc.EXPECT().SubmitQuote(gomock.Any(), gomock.Any()).Return(usecase.QuoteResult{}, errors.New("dynamodb unavailable"))

		req := httptest.NewRequest(http.MethodPost, "/v1/submit-quote", bytes.NewBufferString(`{"name":"Aina","email":"aina@studio.my","projectBrief":"refresh"}`))
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
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/submit-quote", h.SubmitQuote)

		uc.EXPECT().SubmitQuote(gomock.Any(), gomock.Any()).Return(usecase.QuoteResult{
			Submission:       entities.Submission{ID: "TKG-AB12CD34", Region: "MY"},
			NotificationSent: true,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/submit-quote", bytes.NewBufferString(`{"name":"Aina","email":"aina@studio.my","projectBrief":"refresh","region":"MY"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != true || body["id"] != "TKG-AB12CD34" || body["region"] != "MY" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if body["notificationSent"] != true {
			t.Fatalf("expected notificationSent true: %s", w.Body.String())
		}
	})

	// Wires the real pipeline so the legacy minimal payload shape stays
	// accepted end to end: "message" carries the brief, no region given.
	t.Run("minimal legacy payload stores region-defaulted submission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockISubmissionRepository(ctrl)
		notifier := mocks.NewMockINotificationUseCase(ctrl)
		h := NewQuoteHandler(usecase.NewQuoteUseCase(repo, notifier))

		r := gin.New()
		r.POST("/v1/submit-quote", h.SubmitQuote)

		var stored entities.Submission
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, s entities.Submission) (entities.Submission, error) {
				stored = s
				return s, nil
			})
		notifier.EXPECT().NotifyQuoteSubmitted(gomock.Any(), gomock.Any()).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/submit-quote", bytes.NewBufferString(`{"name":"Sara","email":"sara@example.com","message":"Hi","projectType":"Landing Page"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != true || body["region"] != "INT" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if stored.ProjectBrief != "Hi" {
			t.Fatalf("expected message stored as brief, got %q", stored.ProjectBrief)
		}
		if stored.ProjectType != "Landing Page" {
			t.Fatalf("unexpected stored project type: %q", stored.ProjectType)
		}
		if stored.Region != "INT" {
			t.Fatalf("expected region defaulted to INT, got %q", stored.Region)
		}
	})

	t.Run("notification failure still succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/submit-quote", h.SubmitQuote)

		uc.EXPECT().SubmitQuote(gomock.Any(), gomock.Any()).Return(usecase.QuoteResult{
			Submission:       entities.Submission{ID: "TKG-AB12CD34", Region: "SG"},
			NotificationSent: false,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/submit-quote", bytes.NewBufferString(`{"name":"Ben","email":"ben@example.sg","projectBrief":"shop","region":"SG"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != true || body["notificationSent"] != false {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_ListSubmissions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("without filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/admin/submissions", h.ListSubmissions)

		now := time.Now().UTC()
		uc.EXPECT().List(gomock.Any(), entities.SubmissionStatus("")).Return([]entities.Submission{
			{ID: "TKG-1", Status: entities.SubmissionStatusNew, SubmittedAt: now},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/submissions", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["count"] != float64(1) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("with status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/admin/submissions", h.ListSubmissions)

		uc.EXPECT().List(gomock.Any(), entities.SubmissionStatusReviewed).Return([]entities.Submission{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/submissions?status=reviewed", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/admin/submissions", h.ListSubmissions)

		uc.EXPECT().List(gomock.Any(), entities.SubmissionStatus("bogus")).Return(nil, usecase.ErrInvalidSubmissionStatus)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/submissions?status=bogus", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_GetSubmission(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/admin/submissions/:id", h.GetSubmission)

		uc.EXPECT().GetByID(gomock.Any(), "TKG-MISSING1").Return(entities.Submission{}, usecase.ErrSubmissionNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/submissions/TKG-MISSING1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/admin/submissions/:id", h.GetSubmission)

		uc.EXPECT().GetByID(gomock.Any(), "TKG-AB12CD34").Return(entities.Submission{ID: "TKG-AB12CD34", Status: entities.SubmissionStatusNew}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/submissions/TKG-AB12CD34", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "TKG-AB12CD34" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_UpdateSubmissionStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("illegal transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/admin/submissions/:id/status", h.UpdateSubmissionStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "TKG-1", entities.SubmissionStatusAccepted).Return(entities.Submission{}, usecase.ErrInvalidStatusTransition)

		req := httptest.NewRequest(http.MethodPatch, "/v1/admin/submissions/TKG-1/status", bytes.NewBufferString(`{"status":"accepted"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/admin/submissions/:id/status", h.UpdateSubmissionStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "TKG-1", entities.SubmissionStatusReviewed).Return(entities.Submission{ID: "TKG-1", Status: entities.SubmissionStatusReviewed}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/admin/submissions/TKG-1/status", bytes.NewBufferString(`{"status":"reviewed"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapQuoteError(t *testing.T) {
	if got := mapQuoteError(usecase.ErrMissingRequiredFields); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuoteError(usecase.ErrInvalidEmail); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuoteError(usecase.ErrNegativePrice); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuoteError(usecase.ErrSubmissionNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapQuoteError(usecase.ErrInvalidStatusTransition); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapQuoteError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
