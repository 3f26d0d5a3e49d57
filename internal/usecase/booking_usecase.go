package usecase

import (
	"context"
	"errors"
	"log"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tukang-design/tukang-api/internal/domain/entities"
	"github.com/tukang-design/tukang-api/internal/pricing"
	"github.com/tukang-design/tukang-api/internal/usecase/interfaces"
)

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidBookingID  = errors.New("invalid booking id")
	ErrInvalidBookingVal = errors.New("invalid booking input")
)

const (
	FollowUpStatusSent   = "follow_up_sent"
	FollowUpStatusFailed = "follow_up_failed"
)

// BookingInput is the admin request to open a booking from an accepted quote.
type BookingInput struct {
	SubmissionID  string
	Name          string
	Email         string
	Company       string
	Phone         string
	Region        string
	DepositAmount float64
}

// FollowUpOutcome is the per-booking result of one scan pass.
type FollowUpOutcome struct {
	BookingID string
	Email     string
	Status    string
	Error     string
}

// FollowUpScanResult aggregates one batch run. Processed counts only the
// bookings whose follow-up was sent and marked.
type FollowUpScanResult struct {
	Processed int
	Results   []FollowUpOutcome
}

// IBookingUseCase exposes booking creation, the pending-payment follow-up
// scan, and manual follow-up bookkeeping.

type IBookingUseCase interface {
	CreateBooking(ctx context.Context, in BookingInput) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	RunFollowUpScan(ctx context.Context) (FollowUpScanResult, error)
	RecordManualFollowUp(ctx context.Context, bookingID, followUpType string) (entities.Booking, error)
}

type BookingUseCase struct {
	repo          interfaces.IBookingRepository
	notifier      INotificationUseCase
	followUpAfter time.Duration
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(repo interfaces.IBookingRepository, notifier INotificationUseCase, followUpAfter time.Duration) *BookingUseCase {
	return &BookingUseCase{repo: repo, notifier: notifier, followUpAfter: followUpAfter}
}

func (u *BookingUseCase) CreateBooking(ctx context.Context, in BookingInput) (entities.Booking, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" {
		return entities.Booking{}, ErrInvalidBookingVal
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return entities.Booking{}, ErrInvalidBookingVal
	}
	if in.DepositAmount < 0 {
		return entities.Booking{}, ErrInvalidBookingVal
	}

	now := time.Now().UTC()
	b := entities.Booking{
		ID:           newBookingID(),
		SubmissionID: strings.TrimSpace(in.SubmissionID),
		Contact: entities.Contact{
			Name:    name,
			Email:   email,
			Company: strings.TrimSpace(in.Company),
			Phone:   strings.TrimSpace(in.Phone),
		},
		Region:        string(pricing.ParseRegionOrDefault(in.Region)),
		DepositAmount: in.DepositAmount,
		Status:        entities.BookingStatusPendingPayment,
		SubmittedAt:   now,
		UpdatedAt:     now,
	}

	created, err := u.repo.Create(ctx, b)
	if err != nil {
		return entities.Booking{}, err
	}
	log.Printf("[booking][usecase] created booking_id=%s submission_id=%s deposit=%.2f", created.ID, created.SubmissionID, created.DepositAmount)
	return created, nil
}

func newBookingID() string {
	id := uuid.New()
	return "BKG-" + strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8])
}

func (u *BookingUseCase) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	return b, nil
}

// RunFollowUpScan visits every booking stuck in pending_payment past the
// threshold and sends one follow-up email per booking. Each booking is
// processed independently: a failed send or a failed mark is recorded in
// the result and never aborts the rest of the batch.
func (u *BookingUseCase) RunFollowUpScan(ctx context.Context) (FollowUpScanResult, error) {
	cutoff := time.Now().UTC().Add(-u.followUpAfter)
	log.Printf("[booking][usecase] follow-up scan start cutoff=%s", cutoff.Format(time.RFC3339))

	matches, err := u.repo.ListPendingFollowUps(ctx, cutoff)
	if err != nil {
		log.Printf("[booking][usecase] follow-up scan query failed err=%v", err)
		return FollowUpScanResult{}, err
	}

	res := FollowUpScanResult{Results: make([]FollowUpOutcome, 0, len(matches))}
	for _, b := range matches {
		outcome := FollowUpOutcome{BookingID: b.ID, Email: b.Contact.Email}

		if u.notifier == nil {
			outcome.Status = FollowUpStatusFailed
			outcome.Error = ErrMailerNotConfigured.Error()
			res.Results = append(res.Results, outcome)
			continue
		}
		if err := u.notifier.NotifyBookingFollowUp(ctx, b); err != nil {
			log.Printf("[booking][usecase] follow-up send failed booking_id=%s err=%v", b.ID, err)
			outcome.Status = FollowUpStatusFailed
			outcome.Error = err.Error()
			res.Results = append(res.Results, outcome)
			continue
		}

		if _, err := u.repo.MarkFollowUpSent(ctx, b.ID, time.Now().UTC()); err != nil {
			// The email went out but the mark failed; the next scan will
			// pick the booking up again, which is the acceptable side of
			// the missing send/mark transaction.
			log.Printf("[booking][usecase] follow-up mark failed booking_id=%s err=%v", b.ID, err)
			outcome.Status = FollowUpStatusFailed
			outcome.Error = err.Error()
			res.Results = append(res.Results, outcome)
			continue
		}

		outcome.Status = FollowUpStatusSent
		res.Results = append(res.Results, outcome)
		res.Processed++
	}

	log.Printf("[booking][usecase] follow-up scan done matched=%d processed=%d", len(matches), res.Processed)
	return res, nil
}

// RecordManualFollowUp bumps the follow-up counter after an admin chased a
// booking by hand. followUpType is free-form and only logged.
func (u *BookingUseCase) RecordManualFollowUp(ctx context.Context, bookingID, followUpType string) (entities.Booking, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}

	existing, err := u.repo.GetByID(ctx, bookingID)
	if err != nil {
		return entities.Booking{}, err
	}
	if existing.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}

	updated, err := u.repo.IncrementFollowUpCount(ctx, bookingID, time.Now().UTC())
	if err != nil {
		return entities.Booking{}, err
	}
	if updated.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	log.Printf("[booking][usecase] manual follow-up recorded booking_id=%s type=%q count=%d", updated.ID, followUpType, updated.FollowUpCount)
	return updated, nil
}
