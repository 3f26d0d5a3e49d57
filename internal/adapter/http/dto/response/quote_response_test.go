package response

import (
	"testing"
	"time"

	"github.com/tukang-design/tukang-api/internal/domain/entities"
	"github.com/tukang-design/tukang-api/internal/usecase"
)

func TestFromQuoteResult(t *testing.T) {
	res := FromQuoteResult(usecase.QuoteResult{
		Submission:       entities.Submission{ID: "TKG-AB12CD34", Region: "MY"},
		NotificationSent: false,
	})
	if !res.Success {
		t.Fatalf("expected success true")
	}
	if res.ID != "TKG-AB12CD34" || res.Region != "MY" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.NotificationSent {
		t.Fatalf("expected notificationSent false")
	}
}

func TestFromSubmissions(t *testing.T) {
	now := time.Now().UTC()
	subs := []entities.Submission{
		{ID: "TKG-1", Status: entities.SubmissionStatusNew, SubmittedAt: now, UpdatedAt: now},
		{ID: "TKG-2", Status: entities.SubmissionStatusReviewed, SubmittedAt: now, UpdatedAt: now},
	}

	res := FromSubmissions(subs)
	if !res.Success || res.Count != 2 || len(res.Submissions) != 2 {
		t.Fatalf("unexpected list response: %+v", res)
	}
	if res.Submissions[0].ID != "TKG-1" || res.Submissions[1].Status != "reviewed" {
		t.Fatalf("unexpected mapped submissions: %+v", res.Submissions)
	}
}

func TestFromFollowUpScan(t *testing.T) {
	res := FromFollowUpScan(usecase.FollowUpScanResult{
		Processed: 1,
		Results: []usecase.FollowUpOutcome{
			{BookingID: "BKG-1", Email: "a@b.my", Status: usecase.FollowUpStatusSent},
			{BookingID: "BKG-2", Email: "c@d.sg", Status: usecase.FollowUpStatusFailed, Error: "smtp timeout"},
		},
	})
	if !res.Success || res.FollowUpsProcessed != 1 || len(res.Results) != 2 {
		t.Fatalf("unexpected scan response: %+v", res)
	}
	if res.Results[1].Error != "smtp timeout" {
		t.Fatalf("expected error carried through: %+v", res.Results[1])
	}
}

func TestFromBookingPayment(t *testing.T) {
	now := time.Now().UTC()
	p := entities.BookingPayment{
		ID:        "pay-1",
		BookingID: "BKG-1",
		Amount:    500,
		Date:      now,
		Status:    entities.PaymentStatusApproved,
	}
	res := FromBookingPayment(p)
	if res.ID != "pay-1" || res.BookingID != "BKG-1" || res.Status != "approved" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if !res.Date.Equal(now) || res.Amount != 500 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
}
