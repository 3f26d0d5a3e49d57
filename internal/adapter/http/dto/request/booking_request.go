package request

import (
	"github.com/tukang-design/tukang-api/internal/usecase"
)

// BookingRequest opens a deposit booking from an accepted quote.
type BookingRequest struct {
	SubmissionID  string  `json:"submissionId"`
	Name          string  `json:"name" binding:"required"`
	Email         string  `json:"email" binding:"required"`
	Company       string  `json:"company"`
	Phone         string  `json:"phone"`
	Region        string  `json:"region"`
	DepositAmount float64 `json:"depositAmount"`
}

func (r BookingRequest) ToBookingInput() usecase.BookingInput {
	return usecase.BookingInput{
		SubmissionID:  r.SubmissionID,
		Name:          r.Name,
		Email:         r.Email,
		Company:       r.Company,
		Phone:         r.Phone,
		Region:        r.Region,
		DepositAmount: r.DepositAmount,
	}
}

// ManualFollowUpRequest records a follow-up an admin performed out of band
// (phone call, WhatsApp) against a booking.
type ManualFollowUpRequest struct {
	BookingID    string `json:"bookingId" binding:"required"`
	FollowUpType string `json:"type"`
}
