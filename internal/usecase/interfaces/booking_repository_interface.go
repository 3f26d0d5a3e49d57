package interfaces

import (
	"context"
	"time"

	"github.com/tukang-design/tukang-api/internal/domain/entities"
)

// IBookingRepository abstracts DynamoDB persistence for Booking.
//
// ListPendingFollowUps backs the batch scan: bookings still in
// pending_payment, submitted before the cutoff, with no follow-up sent yet.
// MarkFollowUpSent must be idempotent so a re-run of the scan cannot
// double-mark a booking.

type IBookingRepository interface {
	Create(ctx context.Context, b entities.Booking) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	ListPendingFollowUps(ctx context.Context, submittedBefore time.Time) ([]entities.Booking, error)
	MarkFollowUpSent(ctx context.Context, id string, at time.Time) (entities.Booking, error)
	IncrementFollowUpCount(ctx context.Context, id string, at time.Time) (entities.Booking, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.BookingStatus) (entities.Booking, error)
}
