package entities

import "time"

// SubmissionStatus represents the lifecycle of a quote submission.
//
// Domain notes:
//   - The funnel creates submissions as "new" and never touches status again.
//   - Later transitions (review, quote, accept/decline) are admin actions.
//
//go:generate stringer -type=SubmissionStatus

type SubmissionStatus string

const (
	SubmissionStatusNew      SubmissionStatus = "new"
	SubmissionStatusReviewed SubmissionStatus = "reviewed"
	SubmissionStatusQuoted   SubmissionStatus = "quoted"
	SubmissionStatusAccepted SubmissionStatus = "accepted"
	SubmissionStatusDeclined SubmissionStatus = "declined"
)

// NextStatuses lists the transitions an admin may apply from each status.
// Terminal statuses (accepted/declined) have no outgoing transitions.
func (s SubmissionStatus) NextStatuses() []SubmissionStatus {
	switch s {
	case SubmissionStatusNew:
		return []SubmissionStatus{SubmissionStatusReviewed}
	case SubmissionStatusReviewed:
		return []SubmissionStatus{SubmissionStatusQuoted}
	case SubmissionStatusQuoted:
		return []SubmissionStatus{SubmissionStatusAccepted, SubmissionStatusDeclined}
	default:
		return nil
	}
}

// CanTransitionTo reports whether next is a valid admin transition from s.
func (s SubmissionStatus) CanTransitionTo(next SubmissionStatus) bool {
	for _, n := range s.NextStatuses() {
		if n == next {
			return true
		}
	}
	return false
}

// Contact is the prospective client's contact block on a submission.
type Contact struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// Goal is one project goal the client selected in the quote builder.
// Insertion order is preserved for display only.
type Goal struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
}

// FeatureComplexity grades a selected feature for scoping purposes.
type FeatureComplexity string

const (
	FeatureComplexityBasic        FeatureComplexity = "basic"
	FeatureComplexityIntermediate FeatureComplexity = "intermediate"
	FeatureComplexityAdvanced     FeatureComplexity = "advanced"
)

// Feature is one add-on feature the client selected in the quote builder.
type Feature struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Price       float64           `json:"price"`
	Complexity  FeatureComplexity `json:"complexity,omitempty"`
	Required    bool              `json:"required"`
}

// Submission is a quote request persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (status-index): status
//
// Monetary representation:
//   - TotalPrice is the producer-computed sum of goal and feature prices at
//     submission time; the backend stores it, it does not re-derive it.
type Submission struct {
	ID               string           `json:"id"`
	Contact          Contact          `json:"contact"`
	SelectedGoals    []Goal           `json:"selected_goals,omitempty"`
	SelectedFeatures []Feature        `json:"selected_features,omitempty"`
	TotalPrice       float64          `json:"total_price"`
	Region           string           `json:"region"`
	Timeline         string           `json:"timeline,omitempty"`
	ProjectType      string           `json:"project_type,omitempty"`
	ProjectBrief     string           `json:"project_brief,omitempty"`
	Status           SubmissionStatus `json:"status"`
	SubmittedAt      time.Time        `json:"submitted_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}
