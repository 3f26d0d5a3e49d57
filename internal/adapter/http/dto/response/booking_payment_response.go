package response

import (
	"time"

	"github.com/tukang-design/tukang-api/internal/domain/entities"
)

type BookingPaymentResponse struct {
	ID        string    `json:"id"`
	BookingID string    `json:"booking_id"`
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromBookingPayment(p entities.BookingPayment) BookingPaymentResponse {
	return BookingPaymentResponse{
		ID:                 p.ID,
		BookingID:          p.BookingID,
		Amount:             p.Amount,
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}

type BookingPaymentListResponse struct {
	Success  bool                     `json:"success"`
	Count    int                      `json:"count"`
	Payments []BookingPaymentResponse `json:"payments"`
}

func FromBookingPayments(payments []entities.BookingPayment) BookingPaymentListResponse {
	out := make([]BookingPaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromBookingPayment(p))
	}
	return BookingPaymentListResponse{Success: true, Count: len(out), Payments: out}
}
