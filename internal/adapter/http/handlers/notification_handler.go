package handlers

import (
	"errors"
	"log"
	"net/http"

	request "github.com/tukang-design/tukang-api/internal/adapter/http/dto/request"
	response "github.com/tukang-design/tukang-api/internal/adapter/http/dto/response"
	"github.com/tukang-design/tukang-api/internal/usecase"
	"github.com/tukang-design/tukang-api/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidNotificationPayload = pkg.NewDomainErrorSimple("INVALID_NOTIFICATION_INPUT", "Invalid notification payload", http.StatusBadRequest)
)

// NotificationHandler handles the public estimate-by-email endpoint.

type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

// SendNotification emails a calculator estimate to the visitor and the
// studio inbox.
func (h *NotificationHandler) SendNotification(c *gin.Context) {
	var payload request.NotificationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNotificationPayload.HTTPStatus, errInvalidNotificationPayload.ToHTTPError())
		return
	}

	if err := h.usecase.NotifyEstimate(c.Request.Context(), payload.ToEstimateNotification()); err != nil {
		log.Printf("[notification][handler] send failed email=%s err=%v", payload.Email, err)
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[notification][handler] send success email=%s region=%s", payload.Email, payload.Region)

	c.JSON(http.StatusOK, response.NotificationSentResponse{Success: true})
}

func mapNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidNotification):
		return pkg.NewDomainErrorSimple("INVALID_NOTIFICATION_INPUT", "Invalid notification payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMailerNotConfigured):
		return pkg.NewDomainError("MAIL_NOT_CONFIGURED", "Mail transport not configured", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("NOTIFICATION_FAILED", "Failed to send notification", err, http.StatusInternalServerError)
	}
}
