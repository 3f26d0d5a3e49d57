package interfaces

import (
	"context"

	"github.com/tukang-design/tukang-api/internal/domain/entities"
)

// IBookingPaymentRepository abstracts DynamoDB persistence for BookingPayment.

type IBookingPaymentRepository interface {
	Create(ctx context.Context, p entities.BookingPayment) (entities.BookingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BookingPayment, error)
	ListByBookingID(ctx context.Context, bookingID string) ([]entities.BookingPayment, error)
}
