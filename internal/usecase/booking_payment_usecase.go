package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/tukang-design/tukang-api/internal/domain/entities"
	"github.com/tukang-design/tukang-api/internal/usecase/interfaces"
)

var (
	ErrBookingPaymentNotFound     = errors.New("booking payment not found")
	ErrInvalidPaymentBookingID    = errors.New("invalid booking_id")
	ErrInvalidProviderPayload     = errors.New("invalid payment provider payload")
	ErrBookingNotPendingPayment   = errors.New("booking not pending payment")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IBookingPaymentUseCase encapsulates "take the deposit and confirm the
// booking": create the provider payment, persist the record, and move the
// booking out of pending_payment.

type IBookingPaymentUseCase interface {
	CreateAndConfirm(ctx context.Context, bookingID string, providerPayload json.RawMessage) (entities.BookingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BookingPayment, error)
	ListByBookingID(ctx context.Context, bookingID string) ([]entities.BookingPayment, error)
}

type BookingPaymentUseCase struct {
	repo        interfaces.IBookingPaymentRepository
	bookingRepo interfaces.IBookingRepository
	gateway     interfaces.IPaymentGateway
}

var _ IBookingPaymentUseCase = (*BookingPaymentUseCase)(nil)

func NewBookingPaymentUseCase(repo interfaces.IBookingPaymentRepository, bookingRepo interfaces.IBookingRepository, gateway interfaces.IPaymentGateway) *BookingPaymentUseCase {
	return &BookingPaymentUseCase{repo: repo, bookingRepo: bookingRepo, gateway: gateway}
}

func (u *BookingPaymentUseCase) CreateAndConfirm(ctx context.Context, bookingID string, providerPayload json.RawMessage) (entities.BookingPayment, error) {
	log.Printf("[payment][usecase] create-and-confirm start raw_booking_id=%q payload_len=%d", bookingID, len(providerPayload))
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return entities.BookingPayment{}, ErrInvalidPaymentBookingID
	}
	if len(providerPayload) == 0 || !json.Valid(providerPayload) {
		log.Printf("[payment][usecase] invalid payload booking_id=%s", bookingID)
		return entities.BookingPayment{}, ErrInvalidProviderPayload
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured booking_id=%s", bookingID)
		return entities.BookingPayment{}, errors.New("payment gateway not configured")
	}

	booking, err := u.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading booking booking_id=%s err=%v", bookingID, err)
		return entities.BookingPayment{}, err
	}
	if booking.ID == "" {
		return entities.BookingPayment{}, ErrBookingNotFound
	}
	if booking.Status != entities.BookingStatusPendingPayment {
		log.Printf("[payment][usecase] booking not pending payment booking_id=%s status=%s", bookingID, booking.Status)
		return entities.BookingPayment{}, ErrBookingNotPendingPayment
	}

	// The source of truth for the amount is the booking's deposit; the
	// caller's payload never overrides it. external_reference links the
	// provider payment back to the booking for reconciliation.
	var reqMap map[string]any
	if err := json.Unmarshal(providerPayload, &reqMap); err != nil {
		return entities.BookingPayment{}, ErrInvalidProviderPayload
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = booking.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Deposit for booking %s", booking.ID)
	}
	reqMap["transaction_amount"] = booking.DepositAmount
	if b, err := json.Marshal(reqMap); err == nil {
		providerPayload = b
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, providerPayload)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed booking_id=%s err=%v", bookingID, err)
		if isGatewayUnauthorized(err) {
			return entities.BookingPayment{}, ErrPaymentGatewayUnauthorized
		}
		if isGatewayBadRequest(err) {
			return entities.BookingPayment{}, ErrPaymentGatewayBadRequest
		}
		return entities.BookingPayment{}, err
	}
	log.Printf("[payment][usecase] payment gateway success booking_id=%s provider_payment_id=%s provider_status=%s", bookingID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed booking_id=%s err=%v", bookingID, err)
	}

	p := entities.BookingPayment{
		ID:                 providerPaymentID,
		BookingID:          booking.ID,
		Amount:             booking.DepositAmount,
		Date:               time.Now().UTC(),
		Status:             paymentStatusFromProvider(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed booking_id=%s payment_id=%s err=%v", bookingID, p.ID, err)
		return entities.BookingPayment{}, err
	}

	// Only an approved deposit confirms the booking. Pending or denied
	// payments keep it in pending_payment so the deposit can be retried.
	if created.Status != entities.PaymentStatusApproved {
		log.Printf("[payment][usecase] payment not approved, booking stays pending booking_id=%s payment_id=%s status=%s", bookingID, created.ID, created.Status)
		return created, nil
	}

	if _, err := u.bookingRepo.UpdateStatusByID(ctx, booking.ID, entities.BookingStatusConfirmed); err != nil {
		// The payment record exists; confirmation lagging behind is
		// recoverable from the admin side, so surface the failure.
		log.Printf("[payment][usecase] booking confirm failed booking_id=%s payment_id=%s err=%v", bookingID, created.ID, err)
		return entities.BookingPayment{}, err
	}

	log.Printf("[payment][usecase] create-and-confirm success booking_id=%s payment_id=%s", bookingID, created.ID)
	return created, nil
}

// paymentStatusFromProvider collapses Mercado Pago's status vocabulary into
// the three states the booking flow acts on.
func paymentStatusFromProvider(providerStatus string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	default:
		// pending, in_process, authorized and anything unrecognized stay
		// inconclusive rather than denied.
		return entities.PaymentStatusPending
	}
}

func (u *BookingPaymentUseCase) GetByID(ctx context.Context, id string) (entities.BookingPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BookingPayment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BookingPayment{}, err
	}
	if p.ID == "" {
		return entities.BookingPayment{}, ErrBookingPaymentNotFound
	}
	return p, nil
}

func (u *BookingPaymentUseCase) ListByBookingID(ctx context.Context, bookingID string) ([]entities.BookingPayment, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return nil, ErrInvalidPaymentBookingID
	}
	return u.repo.ListByBookingID(ctx, bookingID)
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
