package request

import (
	"github.com/tukang-design/tukang-api/internal/domain/entities"
	"github.com/tukang-design/tukang-api/internal/usecase"
)

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
}

type GoalRequest struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type FeatureRequest struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Complexity  string  `json:"complexity"`
	Required    bool    `json:"required"`
}

// SubmitQuoteRequest is the payload posted by the public quote builder.
// Contact fields are accepted both nested under "contact" and flat at the
// top level, and the brief both as "projectBrief" and the older "message"
// key; the funnel front-end has shipped all of these shapes.
type SubmitQuoteRequest struct {
	Contact          *ContactRequest  `json:"contact"`
	Name             string           `json:"name"`
	Email            string           `json:"email"`
	Company          string           `json:"company"`
	Phone            string           `json:"phone"`
	SelectedGoals    []GoalRequest    `json:"selectedGoals"`
	SelectedFeatures []FeatureRequest `json:"selectedFeatures"`
	TotalPrice       float64          `json:"totalPrice"`
	Timeline         string           `json:"timeline"`
	ProjectType      string           `json:"projectType"`
	ProjectBrief     string           `json:"projectBrief"`
	Message          string           `json:"message"`
	Region           string           `json:"region"`
}

func (r SubmitQuoteRequest) resolveContact() (name, email, company, phone string) {
	if r.Contact != nil {
		return r.Contact.Name, r.Contact.Email, r.Contact.Company, r.Contact.Phone
	}
	return r.Name, r.Email, r.Company, r.Phone
}

func (r SubmitQuoteRequest) resolveBrief() string {
	if r.ProjectBrief != "" {
		return r.ProjectBrief
	}
	return r.Message
}

func (r SubmitQuoteRequest) ToQuoteInput() usecase.QuoteInput {
	name, email, company, phone := r.resolveContact()

	goals := make([]entities.Goal, 0, len(r.SelectedGoals))
	for _, g := range r.SelectedGoals {
		goals = append(goals, entities.Goal{
			ID:          g.ID,
			Title:       g.Title,
			Description: g.Description,
			Price:       g.Price,
		})
	}

	features := make([]entities.Feature, 0, len(r.SelectedFeatures))
	for _, f := range r.SelectedFeatures {
		features = append(features, entities.Feature{
			ID:          f.ID,
			Name:        f.Name,
			Description: f.Description,
			Price:       f.Price,
			Complexity:  entities.FeatureComplexity(f.Complexity),
			Required:    f.Required,
		})
	}

	return usecase.QuoteInput{
		Name:             name,
		Email:            email,
		Company:          company,
		Phone:            phone,
		SelectedGoals:    goals,
		SelectedFeatures: features,
		TotalPrice:       r.TotalPrice,
		Timeline:         r.Timeline,
		ProjectType:      r.ProjectType,
		ProjectBrief:     r.resolveBrief(),
		Region:           r.Region,
	}
}

// UpdateSubmissionStatusRequest is the admin payload for lifecycle moves.
type UpdateSubmissionStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
