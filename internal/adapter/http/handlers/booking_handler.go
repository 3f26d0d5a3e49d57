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
	errInvalidBookingPayload = pkg.NewDomainErrorSimple("INVALID_BOOKING_INPUT", "Invalid booking payload", http.StatusBadRequest)
)

// BookingHandler handles admin booking creation and the pending-payment
// follow-up endpoints.

type BookingHandler struct {
	usecase usecase.IBookingUseCase
}

func NewBookingHandler(uc usecase.IBookingUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc}
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var payload request.BookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	b, err := h.usecase.CreateBooking(c.Request.Context(), payload.ToBookingInput())
	if err != nil {
		log.Printf("[booking][handler] create failed email=%s err=%v", payload.Email, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[booking][handler] create success booking_id=%s", b.ID)

	c.JSON(http.StatusCreated, response.FromBooking(b))
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	id := c.Param("booking_id")

	b, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[booking][handler] get failed booking_id=%s err=%v", id, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBooking(b))
}

// RunFollowUpScan runs one follow-up batch over stale pending-payment
// bookings. Per-booking failures are reported in the results array and
// never fail the scan itself.
func (h *BookingHandler) RunFollowUpScan(c *gin.Context) {
	result, err := h.usecase.RunFollowUpScan(c.Request.Context())
	if err != nil {
		log.Printf("[booking][handler] follow-up scan failed err=%v", err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[booking][handler] follow-up scan done processed=%d results=%d", result.Processed, len(result.Results))

	c.JSON(http.StatusOK, response.FromFollowUpScan(result))
}

// RecordManualFollowUp bumps the follow-up counter for a booking an admin
// already contacted out of band.
func (h *BookingHandler) RecordManualFollowUp(c *gin.Context) {
	var payload request.ManualFollowUpRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	b, err := h.usecase.RecordManualFollowUp(c.Request.Context(), payload.BookingID, payload.FollowUpType)
	if err != nil {
		log.Printf("[booking][handler] manual follow-up failed booking_id=%s err=%v", payload.BookingID, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[booking][handler] manual follow-up recorded booking_id=%s count=%d", b.ID, b.FollowUpCount)

	c.JSON(http.StatusOK, response.FromManualFollowUp(b))
}

func mapBookingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBookingID), errors.Is(err, usecase.ErrInvalidBookingVal):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
