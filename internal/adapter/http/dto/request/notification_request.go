package request

import (
	"github.com/tukang-design/tukang-api/internal/pricing"
	"github.com/tukang-design/tukang-api/internal/usecase"
)

type ServiceSelectionRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// NotificationRequest is the payload of the public /send-notification
// endpoint: a calculator estimate the visitor asked to receive by email.
type NotificationRequest struct {
	Name           string                    `json:"name" binding:"required"`
	Email          string                    `json:"email" binding:"required"`
	Company        string                    `json:"company"`
	Phone          string                    `json:"phone"`
	Services       []ServiceSelectionRequest `json:"services"`
	EstimatedPrice float64                   `json:"estimatedPrice"`
	Region         string                    `json:"region"`
	Message        string                    `json:"message"`
}

func (r NotificationRequest) ToEstimateNotification() usecase.EstimateNotification {
	services := make([]usecase.ServiceSelection, 0, len(r.Services))
	for _, s := range r.Services {
		services = append(services, usecase.ServiceSelection{Name: s.Name, Price: s.Price})
	}

	return usecase.EstimateNotification{
		Name:           r.Name,
		Email:          r.Email,
		Company:        r.Company,
		Phone:          r.Phone,
		Services:       services,
		EstimatedPrice: r.EstimatedPrice,
		Region:         pricing.ParseRegionOrDefault(r.Region),
		Message:        r.Message,
	}
}
