package response

import (
	"time"

	"petconnect/internal/data/entity"
)

type Service struct {
	ID              string    `json:"id"`
	WalkerID        string    `json:"walkerId"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`
	AvgRating       float64   `json:"avgRating"`
	ReviewCount     int64     `json:"reviewCount"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func FromService(service *entity.Service) Service {
	return Service{
		ID:              service.ID.String(),
		WalkerID:        service.WalkerID.String(),
		Name:            service.Name,
		Description:     service.Description,
		Price:           service.Price,
		DurationMinutes: service.DurationMinutes,
		Status:          string(service.Status),
		CreatedAt:       service.CreatedAt,
		UpdatedAt:       service.UpdatedAt,
	}
}

func FromServices(services []*entity.Service) []Service {
	out := make([]Service, 0, len(services))
	for _, service := range services {
		out = append(out, FromService(service))
	}
	return out
}
