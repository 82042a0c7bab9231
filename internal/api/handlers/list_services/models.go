package list_services

import "github.com/m04kA/SMC-SalonBooking/internal/domain"

// ServiceResponse услуга каталога
type ServiceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	DisplayName     string  `json:"displayName"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"durationMinutes"`
	DurationLabel   string  `json:"durationLabel"`
	Price           float64 `json:"price"`
}

// ServiceListResponse HTTP response model
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

func FromDomainServices(services []domain.Service) *ServiceListResponse {
	out := &ServiceListResponse{Services: make([]ServiceResponse, 0, len(services))}
	for _, s := range services {
		out.Services = append(out.Services, ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			DisplayName:     s.DisplayName,
			Description:     s.Description,
			DurationMinutes: s.DurationMinutes,
			DurationLabel:   domain.FormatDuration(s.DurationMinutes),
			Price:           s.Price,
		})
	}
	return out
}
