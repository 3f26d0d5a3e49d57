package response

import (
	"time"

	"github.com/tukang-design/tukang-api/internal/domain/entities"
	"github.com/tukang-design/tukang-api/internal/usecase"
)

// SubmitQuoteResponse is the public funnel acknowledgement. NotificationSent
// is informational: a false value still means the submission was stored.
type SubmitQuoteResponse struct {
	Success          bool   `json:"success"`
	ID               string `json:"id"`
	Region           string `json:"region"`
	NotificationSent bool   `json:"notificationSent"`
}

func FromQuoteResult(r usecase.QuoteResult) SubmitQuoteResponse {
	return SubmitQuoteResponse{
		Success:          true,
		ID:               r.Submission.ID,
		Region:           r.Submission.Region,
		NotificationSent: r.NotificationSent,
	}
}

type NotificationSentResponse struct {
	Success bool `json:"success"`
}

type SubmissionResponse struct {
	ID               string             `json:"id"`
	Contact          entities.Contact   `json:"contact"`
	SelectedGoals    []entities.Goal    `json:"selected_goals,omitempty"`
	SelectedFeatures []entities.Feature `json:"selected_features,omitempty"`
	TotalPrice       float64            `json:"total_price"`
	Region           string             `json:"region"`
	Timeline         string             `json:"timeline,omitempty"`
	ProjectType      string             `json:"project_type,omitempty"`
	ProjectBrief     string             `json:"project_brief,omitempty"`
	Status           string             `json:"status"`
	SubmittedAt      time.Time          `json:"submitted_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

func FromSubmission(s entities.Submission) SubmissionResponse {
	return SubmissionResponse{
		ID:               s.ID,
		Contact:          s.Contact,
		SelectedGoals:    s.SelectedGoals,
		SelectedFeatures: s.SelectedFeatures,
		TotalPrice:       s.TotalPrice,
		Region:           s.Region,
		Timeline:         s.Timeline,
		ProjectType:      s.ProjectType,
		ProjectBrief:     s.ProjectBrief,
		Status:           string(s.Status),
		SubmittedAt:      s.SubmittedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

type SubmissionListResponse struct {
	Success     bool                 `json:"success"`
	Count       int                  `json:"count"`
	Submissions []SubmissionResponse `json:"submissions"`
}

func FromSubmissions(subs []entities.Submission) SubmissionListResponse {
	out := make([]SubmissionResponse, 0, len(subs))
	for _, s := range subs {
		out = append(out, FromSubmission(s))
	}
	return SubmissionListResponse{Success: true, Count: len(out), Submissions: out}
}
