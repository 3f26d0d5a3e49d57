package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	response "github.com/tukang-design/tukang-api/internal/adapter/http/dto/response"
	"github.com/tukang-design/tukang-api/internal/usecase"
	"github.com/tukang-design/tukang-api/pkg"

	"github.com/gin-gonic/gin"
)

// BookingPaymentHandler handles deposit payments for bookings.

type BookingPaymentHandler struct {
	usecase usecase.IBookingPaymentUseCase
}

func NewBookingPaymentHandler(uc usecase.IBookingPaymentUseCase) *BookingPaymentHandler {
	return &BookingPaymentHandler{usecase: uc}
}

// CreatePaymentByBookingID takes the deposit for a pending booking. The
// body is the raw provider payload, optionally wrapped under
// "provider_payload".
func (h *BookingPaymentHandler) CreatePaymentByBookingID(c *gin.Context) {
	bookingID := c.Param("booking_id")
	log.Printf("[payment][handler] create start booking_id=%s", bookingID)

	providerPayload, err := readProviderPayload(c)
	if err != nil {
		log.Printf("[payment][handler] invalid payload booking_id=%s err=%v", bookingID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateAndConfirm(c.Request.Context(), bookingID, providerPayload)
	if err != nil {
		log.Printf("[payment][handler] create failed booking_id=%s err=%v", bookingID, err)
		appErr := mapBookingPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success booking_id=%s payment_id=%s status=%s", bookingID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromBookingPayment(created))
}

// ListPaymentsByBookingID returns every deposit payment recorded against a
// booking, newest first.
func (h *BookingPaymentHandler) ListPaymentsByBookingID(c *gin.Context) {
	bookingID := c.Param("booking_id")

	payments, err := h.usecase.ListByBookingID(c.Request.Context(), bookingID)
	if err != nil {
		log.Printf("[payment][handler] list failed booking_id=%s err=%v", bookingID, err)
		appErr := mapBookingPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBookingPayments(payments))
}

func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["provider_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("provider_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapBookingPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentBookingID), errors.Is(err, usecase.ErrInvalidProviderPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBookingNotPendingPayment):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_PENDING_PAYMENT", "Booking is not awaiting a deposit", http.StatusConflict)
	case errors.Is(err, usecase.ErrBookingPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
