package interfaces

import (
	"context"

	"github.com/tukang-design/tukang-api/internal/domain/entities"
)

// ISubmissionRepository abstracts DynamoDB persistence for Submission.
//
// The funnel must be able to:
//   - create a submission when a quote request arrives
//   - fetch a submission by its public id
//   - list submissions for the admin dashboard, optionally by status
//   - update status by id (admin lifecycle transitions)

type ISubmissionRepository interface {
	Create(ctx context.Context, s entities.Submission) (entities.Submission, error)
	GetByID(ctx context.Context, id string) (entities.Submission, error)
	ListByStatus(ctx context.Context, status entities.SubmissionStatus) ([]entities.Submission, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.SubmissionStatus) (entities.Submission, error)
}
