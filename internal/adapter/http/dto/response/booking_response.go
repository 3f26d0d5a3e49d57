package response

import (
	"time"

	"github.com/tukang-design/tukang-api/internal/domain/entities"
	"github.com/tukang-design/tukang-api/internal/usecase"
)

type BookingResponse struct {
	ID             string           `json:"id"`
	SubmissionID   string           `json:"submission_id,omitempty"`
	Contact        entities.Contact `json:"contact"`
	Region         string           `json:"region"`
	DepositAmount  float64          `json:"deposit_amount"`
	Status         string           `json:"status"`
	FollowUpSent   bool             `json:"follow_up_sent"`
	FollowUpCount  int              `json:"follow_up_count"`
	LastFollowUpAt *time.Time       `json:"last_follow_up_at,omitempty"`
	SubmittedAt    time.Time        `json:"submitted_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

func FromBooking(b entities.Booking) BookingResponse {
	return BookingResponse{
		ID:             b.ID,
		SubmissionID:   b.SubmissionID,
		Contact:        b.Contact,
		Region:         b.Region,
		DepositAmount:  b.DepositAmount,
		Status:         string(b.Status),
		FollowUpSent:   b.FollowUpSent,
		FollowUpCount:  b.FollowUpCount,
		LastFollowUpAt: b.LastFollowUpAt,
		SubmittedAt:    b.SubmittedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

type FollowUpResultResponse struct {
	BookingID string `json:"bookingId"`
	Email     string `json:"email"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
}

// FollowUpScanResponse reports one batch pass. FollowUpsProcessed counts
// only sent-and-marked bookings; per-booking failures stay in Results.
type FollowUpScanResponse struct {
	Success            bool                     `json:"success"`
	FollowUpsProcessed int                      `json:"followUpsProcessed"`
	Results            []FollowUpResultResponse `json:"results"`
}

func FromFollowUpScan(r usecase.FollowUpScanResult) FollowUpScanResponse {
	results := make([]FollowUpResultResponse, 0, len(r.Results))
	for _, o := range r.Results {
		results = append(results, FollowUpResultResponse{
			BookingID: o.BookingID,
			Email:     o.Email,
			Status:    o.Status,
			Error:     o.Error,
		})
	}
	return FollowUpScanResponse{Success: true, FollowUpsProcessed: r.Processed, Results: results}
}

type ManualFollowUpResponse struct {
	Success       bool   `json:"success"`
	BookingID     string `json:"bookingId"`
	FollowUpCount int    `json:"followUpCount"`
}

func FromManualFollowUp(b entities.Booking) ManualFollowUpResponse {
	return ManualFollowUpResponse{Success: true, BookingID: b.ID, FollowUpCount: b.FollowUpCount}
}
