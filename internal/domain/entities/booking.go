package entities

import "time"

// BookingStatus represents the lifecycle of a project booking.
//
// A booking starts as pending_payment when the client accepts a quote and
// moves to confirmed once the deposit payment is recorded. The follow-up
// scan nudges bookings stuck in pending_payment past the threshold.

type BookingStatus string

const (
	BookingStatusPendingPayment BookingStatus = "pending_payment"
	BookingStatusConfirmed      BookingStatus = "confirmed"
	BookingStatusCancelled      BookingStatus = "cancelled"
)

// Booking is a project booking persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (status-index): status
type Booking struct {
	ID            string        `json:"id"`
	SubmissionID  string        `json:"submission_id,omitempty"`
	Contact       Contact       `json:"contact"`
	Region        string        `json:"region"`
	DepositAmount float64       `json:"deposit_amount"`
	Status        BookingStatus `json:"status"`

	// Follow-up bookkeeping. FollowUpSent is set exactly once by the batch
	// scan; FollowUpCount also counts manual follow-ups recorded by admins.
	FollowUpSent   bool       `json:"follow_up_sent"`
	FollowUpCount  int        `json:"follow_up_count"`
	LastFollowUpAt *time.Time `json:"last_follow_up_at,omitempty"`

	SubmittedAt time.Time `json:"submitted_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
