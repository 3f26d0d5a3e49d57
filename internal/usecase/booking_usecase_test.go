package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/tukang-design/tukang-api/internal/domain/entities"
	mock_interfaces "github.com/tukang-design/tukang-api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func pendingBooking(id, email string) entities.Booking {
	return entities.Booking{
		ID:            id,
		Contact:       entities.Contact{Name: "Ann", Email: email},
		Region:        "SG",
		DepositAmount: 300,
		Status:        entities.BookingStatusPendingPayment,
		SubmittedAt:   time.Now().UTC().Add(-96 * time.Hour),
	}
}

func TestBookingUseCase_CreateBooking(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil, 72*time.Hour)
		cases := []BookingInput{
			{Email: "a@x.com"},
			{Name: "Ann"},
			{Name: "Ann", Email: "not-an-address"},
			{Name: "Ann", Email: "a@x.com", DepositAmount: -1},
		}
		for _, in := range cases {
			if _, err := uc.CreateBooking(context.Background(), in); !errors.Is(err, ErrInvalidBookingVal) {
				t.Fatalf("expected ErrInvalidBookingVal for %+v, got %v", in, err)
			}
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(repo, nil, 72*time.Hour)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Booking{})).DoAndReturn(
			func(_ context.Context, b entities.Booking) (entities.Booking, error) {
				if b.Status != entities.BookingStatusPendingPayment {
					t.Fatalf("expected pending_payment, got %q", b.Status)
				}
				if !strings.HasPrefix(b.ID, "BKG-") {
					t.Fatalf("expected BKG- id, got %q", b.ID)
				}
				if b.FollowUpSent || b.FollowUpCount != 0 {
					t.Fatalf("fresh booking must have no follow-up state: %+v", b)
				}
				return b, nil
			},
		)

		b, err := uc.CreateBooking(context.Background(), BookingInput{
			SubmissionID:  "TKG-AAAA1111",
			Name:          " Ann ",
			Email:         "ann@x.com",
			Region:        "sg",
			DepositAmount: 300,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Region != "SG" || b.Contact.Name != "Ann" {
			t.Fatalf("unexpected normalization: %+v", b)
		}
	})
}

func TestBookingUseCase_RunFollowUpScan(t *testing.T) {
	t.Run("query failure aborts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(repo, nil, 72*time.Hour)

		repo.EXPECT().ListPendingFollowUps(gomock.Any(), gomock.Any()).Return(nil, errors.New("db"))

		if _, err := uc.RunFollowUpScan(context.Background()); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("single match marked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		mailer := mock_interfaces.NewMockIMailer(ctrl)
		notifier := NewNotificationUseCase(mailer, testMailConfig())
		uc := NewBookingUseCase(repo, notifier, 72*time.Hour)

		repo.EXPECT().ListPendingFollowUps(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cutoff time.Time) ([]entities.Booking, error) {
				if d := time.Since(cutoff); d < 71*time.Hour || d > 73*time.Hour {
					t.Fatalf("unexpected cutoff: %s", cutoff)
				}
				return []entities.Booking{pendingBooking("BKG-1", "a@x.com")}, nil
			},
		)
		mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
		repo.EXPECT().MarkFollowUpSent(gomock.Any(), "BKG-1", gomock.Any()).
			Return(entities.Booking{ID: "BKG-1", FollowUpSent: true}, nil)

		res, err := uc.RunFollowUpScan(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Processed != 1 || len(res.Results) != 1 {
			t.Fatalf("unexpected result: %+v", res)
		}
		if res.Results[0].Status != FollowUpStatusSent || res.Results[0].BookingID != "BKG-1" {
			t.Fatalf("unexpected outcome: %+v", res.Results[0])
		}
	})

	t.Run("one failure does not abort the batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		mailer := mock_interfaces.NewMockIMailer(ctrl)
		notifier := NewNotificationUseCase(mailer, testMailConfig())
		uc := NewBookingUseCase(repo, notifier, 72*time.Hour)

		repo.EXPECT().ListPendingFollowUps(gomock.Any(), gomock.Any()).Return([]entities.Booking{
			pendingBooking("BKG-1", "a@x.com"),
			pendingBooking("BKG-2", "b@x.com"),
			pendingBooking("BKG-3", "c@x.com"),
		}, nil)

		// BKG-1 send fails; BKG-2 mark fails; BKG-3 succeeds.
		gomock.InOrder(
			mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("relay rejected")),
			mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil),
			mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil),
		)
		repo.EXPECT().MarkFollowUpSent(gomock.Any(), "BKG-2", gomock.Any()).Return(entities.Booking{}, errors.New("db"))
		repo.EXPECT().MarkFollowUpSent(gomock.Any(), "BKG-3", gomock.Any()).Return(entities.Booking{ID: "BKG-3", FollowUpSent: true}, nil)

		res, err := uc.RunFollowUpScan(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Processed != 1 || len(res.Results) != 3 {
			t.Fatalf("unexpected result: %+v", res)
		}
		if res.Results[0].Status != FollowUpStatusFailed || res.Results[0].Error == "" {
			t.Fatalf("unexpected first outcome: %+v", res.Results[0])
		}
		if res.Results[1].Status != FollowUpStatusFailed {
			t.Fatalf("unexpected second outcome: %+v", res.Results[1])
		}
		if res.Results[2].Status != FollowUpStatusSent {
			t.Fatalf("unexpected third outcome: %+v", res.Results[2])
		}
	})

	t.Run("no matches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(repo, nil, 72*time.Hour)

		repo.EXPECT().ListPendingFollowUps(gomock.Any(), gomock.Any()).Return(nil, nil)

		res, err := uc.RunFollowUpScan(context.Background())
		if err != nil || res.Processed != 0 || len(res.Results) != 0 {
			t.Fatalf("unexpected result: %+v %v", res, err)
		}
	})
}

func TestBookingUseCase_RecordManualFollowUp(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil, 72*time.Hour)
		if _, err := uc.RecordManualFollowUp(context.Background(), " ", ""); !errors.Is(err, ErrInvalidBookingID) {
			t.Fatalf("expected ErrInvalidBookingID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(repo, nil, 72*time.Hour)

		repo.EXPECT().GetByID(gomock.Any(), "BKG-MISSING").Return(entities.Booking{}, nil)

		if _, err := uc.RecordManualFollowUp(context.Background(), "BKG-MISSING", "email"); !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})

	t.Run("increments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(repo, nil, 72*time.Hour)

		repo.EXPECT().GetByID(gomock.Any(), "BKG-1").Return(pendingBooking("BKG-1", "a@x.com"), nil)
		repo.EXPECT().IncrementFollowUpCount(gomock.Any(), "BKG-1", gomock.Any()).
			Return(entities.Booking{ID: "BKG-1", FollowUpCount: 2}, nil)

		b, err := uc.RecordManualFollowUp(context.Background(), "BKG-1", "call")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.FollowUpCount != 2 {
			t.Fatalf("expected count 2, got %d", b.FollowUpCount)
		}
	})
}
