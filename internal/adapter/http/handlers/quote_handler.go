package handlers

import (
	"errors"
	"log"
	"net/http"

	request "github.com/tukang-design/tukang-api/internal/adapter/http/dto/request"
	response "github.com/tukang-design/tukang-api/internal/adapter/http/dto/response"
	"github.com/tukang-design/tukang-api/internal/domain/entities"
	"github.com/tukang-design/tukang-api/internal/usecase"
	"github.com/tukang-design/tukang-api/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles the public quote submission endpoint and the admin
// operations over stored submissions.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// SubmitQuote accepts a funnel quote request, persists it, and reports
// whether the internal notification went out. A failed notification never
// turns a stored submission into an error response.
func (h *QuoteHandler) SubmitQuote(c *gin.Context) {
	var payload request.SubmitQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	result, err := h.usecase.SubmitQuote(c.Request.Context(), payload.ToQuoteInput())
	if err != nil {
		log.Printf("[quote][handler] submit failed err=%v", err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quote][handler] submit success submission_id=%s notification_sent=%t", result.Submission.ID, result.NotificationSent)

	c.JSON(http.StatusOK, response.FromQuoteResult(result))
}

// ListSubmissions returns stored submissions for the admin dashboard,
// optionally filtered by ?status=.
func (h *QuoteHandler) ListSubmissions(c *gin.Context) {
	status := entities.SubmissionStatus(c.Query("status"))

	subs, err := h.usecase.List(c.Request.Context(), status)
	if err != nil {
		log.Printf("[quote][handler] list failed status=%q err=%v", status, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSubmissions(subs))
}

func (h *QuoteHandler) GetSubmission(c *gin.Context) {
	id := c.Param("id")

	s, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[quote][handler] get failed submission_id=%s err=%v", id, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSubmission(s))
}

// UpdateSubmissionStatus moves a submission along its lifecycle. Transitions
// are validated in the use case; an illegal one maps to 409.
func (h *QuoteHandler) UpdateSubmissionStatus(c *gin.Context) {
	id := c.Param("id")

	var payload request.UpdateSubmissionStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	s, err := h.usecase.UpdateStatus(c.Request.Context(), id, entities.SubmissionStatus(payload.Status))
	if err != nil {
		log.Printf("[quote][handler] status update failed submission_id=%s status=%s err=%v", id, payload.Status, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quote][handler] status update success submission_id=%s status=%s", s.ID, s.Status)

	c.JSON(http.StatusOK, response.FromSubmission(s))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingRequiredFields):
		return pkg.NewDomainErrorSimple("MISSING_REQUIRED_FIELDS", "Missing required fields", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEmail):
		return pkg.NewDomainErrorSimple("INVALID_EMAIL", "Invalid email address", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNegativePrice):
		return pkg.NewDomainErrorSimple("INVALID_PRICE", "Prices cannot be negative", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSubmissionID), errors.Is(err, usecase.ErrInvalidSubmissionStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSubmissionNotFound):
		return pkg.NewDomainErrorSimple("SUBMISSION_NOT_FOUND", "Submission not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Status transition not allowed", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
