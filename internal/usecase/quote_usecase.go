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
	ErrMissingRequiredFields   = errors.New("missing required fields")
	ErrInvalidEmail            = errors.New("invalid email address")
	ErrNegativePrice           = errors.New("negative price")
	ErrInvalidSubmissionID     = errors.New("invalid submission id")
	ErrSubmissionNotFound      = errors.New("submission not found")
	ErrInvalidSubmissionStatus = errors.New("invalid submission status")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

// QuoteInput is the normalized client request for a quote submission.
type QuoteInput struct {
	Name             string
	Email            string
	Company          string
	Phone            string
	SelectedGoals    []entities.Goal
	SelectedFeatures []entities.Feature
	TotalPrice       float64
	Timeline         string
	ProjectType      string
	ProjectBrief     string
	Region           string
}

// QuoteResult reports the two independently fallible steps of the pipeline.
// A persisted submission with NotificationSent=false is still a success:
// the record is the durable source of truth, email is best effort.
type QuoteResult struct {
	Submission       entities.Submission
	NotificationSent bool
}

// IQuoteUseCase exposes the quote submission pipeline and the admin
// operations over stored submissions.
//
//   - SubmitQuote: validate → assemble → persist → notify
//   - GetByID / List: admin dashboard reads
//   - UpdateStatus: admin lifecycle transitions (new → reviewed → quoted →
//     accepted|declined); the pipeline itself never mutates status

type IQuoteUseCase interface {
	SubmitQuote(ctx context.Context, in QuoteInput) (QuoteResult, error)
	GetByID(ctx context.Context, id string) (entities.Submission, error)
	List(ctx context.Context, status entities.SubmissionStatus) ([]entities.Submission, error)
	UpdateStatus(ctx context.Context, id string, next entities.SubmissionStatus) (entities.Submission, error)
}

type QuoteUseCase struct {
	repo     interfaces.ISubmissionRepository
	notifier INotificationUseCase
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.ISubmissionRepository, notifier INotificationUseCase) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, notifier: notifier}
}

func (u *QuoteUseCase) SubmitQuote(ctx context.Context, in QuoteInput) (QuoteResult, error) {
	s, err := assembleSubmission(in)
	if err != nil {
		log.Printf("[quote][usecase] submit rejected err=%v", err)
		return QuoteResult{}, err
	}

	log.Printf("[quote][usecase] submit start submission_id=%s region=%s total=%.2f", s.ID, s.Region, s.TotalPrice)
	created, err := u.repo.Create(ctx, s)
	if err != nil {
		// Write failure is fatal to the request; the notification step is
		// skipped entirely.
		log.Printf("[quote][usecase] persist failed submission_id=%s err=%v", s.ID, err)
		return QuoteResult{}, err
	}
	log.Printf("[quote][usecase] persisted submission_id=%s", created.ID)

	notified := false
	if u.notifier != nil {
		if err := u.notifier.NotifyQuoteSubmitted(ctx, created); err != nil {
			// The lead is already durable; a mail-relay outage must never
			// fail the request.
			log.Printf("[quote][usecase] notification failed submission_id=%s err=%v", created.ID, err)
		} else {
			notified = true
		}
	}

	log.Printf("[quote][usecase] submit success submission_id=%s notification_sent=%v", created.ID, notified)
	return QuoteResult{Submission: created, NotificationSent: notified}, nil
}

// assembleSubmission validates the raw input and produces the normalized
// Submission with a fresh reference. Pure apart from the id entropy.
func assembleSubmission(in QuoteInput) (entities.Submission, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	brief := strings.TrimSpace(in.ProjectBrief)
	if name == "" || email == "" || brief == "" {
		return entities.Submission{}, ErrMissingRequiredFields
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return entities.Submission{}, ErrInvalidEmail
	}
	if in.TotalPrice < 0 {
		return entities.Submission{}, ErrNegativePrice
	}
	for _, g := range in.SelectedGoals {
		if g.Price < 0 {
			return entities.Submission{}, ErrNegativePrice
		}
	}
	for _, f := range in.SelectedFeatures {
		if f.Price < 0 {
			return entities.Submission{}, ErrNegativePrice
		}
	}

	now := time.Now().UTC()
	return entities.Submission{
		ID: NewSubmissionID(),
		Contact: entities.Contact{
			Name:    name,
			Email:   email,
			Company: strings.TrimSpace(in.Company),
			Phone:   strings.TrimSpace(in.Phone),
		},
		SelectedGoals:    in.SelectedGoals,
		SelectedFeatures: in.SelectedFeatures,
		TotalPrice:       in.TotalPrice,
		Region:           string(pricing.ParseRegionOrDefault(in.Region)),
		Timeline:         strings.TrimSpace(in.Timeline),
		ProjectType:      strings.TrimSpace(in.ProjectType),
		ProjectBrief:     brief,
		Status:           entities.SubmissionStatusNew,
		SubmittedAt:      now,
		UpdatedAt:        now,
	}, nil
}

// NewSubmissionID builds the human-readable quote reference, e.g.
// TKG-3F2A9C41. Uniqueness is best effort; duplicates would be stored as
// distinct documents and have never been observed at funnel volume.
func NewSubmissionID() string {
	id := uuid.New()
	return "TKG-" + strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8])
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Submission, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Submission{}, ErrInvalidSubmissionID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Submission{}, err
	}
	if s.ID == "" {
		return entities.Submission{}, ErrSubmissionNotFound
	}
	return s, nil
}

func (u *QuoteUseCase) List(ctx context.Context, status entities.SubmissionStatus) ([]entities.Submission, error) {
	if status != "" && !isKnownSubmissionStatus(status) {
		return nil, ErrInvalidSubmissionStatus
	}
	return u.repo.ListByStatus(ctx, status)
}

func (u *QuoteUseCase) UpdateStatus(ctx context.Context, id string, next entities.SubmissionStatus) (entities.Submission, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Submission{}, ErrInvalidSubmissionID
	}
	if !isKnownSubmissionStatus(next) {
		return entities.Submission{}, ErrInvalidSubmissionStatus
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Submission{}, err
	}
	if current.ID == "" {
		return entities.Submission{}, ErrSubmissionNotFound
	}
	if !current.Status.CanTransitionTo(next) {
		return entities.Submission{}, ErrInvalidStatusTransition
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, next)
	if err != nil {
		return entities.Submission{}, err
	}
	if updated.ID == "" {
		return entities.Submission{}, ErrSubmissionNotFound
	}
	log.Printf("[quote][usecase] status updated submission_id=%s status=%s", updated.ID, updated.Status)
	return updated, nil
}

func isKnownSubmissionStatus(s entities.SubmissionStatus) bool {
	switch s {
	case entities.SubmissionStatusNew,
		entities.SubmissionStatusReviewed,
		entities.SubmissionStatusQuoted,
		entities.SubmissionStatusAccepted,
		entities.SubmissionStatusDeclined:
		return true
	}
	return false
}
