package models

import "github.com/akimv/BarberHub-BookingService/internal/domain"

// Response модели

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// BarberResponse ответ с данными барбера
type BarberResponse struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	SiteID   int64  `json:"siteId"`
}

// BarberListResponse ответ со списком барберов
type BarberListResponse struct {
	Barbers []BarberResponse `json:"barbers"`
}

// SiteResponse ответ с данными точки
type SiteResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// SiteListResponse ответ со списком точек
type SiteListResponse struct {
	Sites []SiteResponse `json:"sites"`
}

// Методы конвертации

// FromDomainServiceList конвертирует список domain моделей услуг в DTO
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(services)),
	}

	for _, svc := range services {
		resp.Services = append(resp.Services, ServiceResponse{
			ID:              svc.ID,
			Name:            svc.Name,
			Price:           svc.Price,
			DurationMinutes: svc.DurationMinutes,
		})
	}

	return resp
}

// FromDomainBarberList конвертирует список domain моделей барберов в DTO
func FromDomainBarberList(barbers []*domain.Barber) *BarberListResponse {
	resp := &BarberListResponse{
		Barbers: make([]BarberResponse, 0, len(barbers)),
	}

	for _, b := range barbers {
		resp.Barbers = append(resp.Barbers, BarberResponse{
			ID:       b.ID,
			FullName: b.FullName,
			SiteID:   b.SiteID,
		})
	}

	return resp
}

// FromDomainSiteList конвертирует список domain моделей точек в DTO
func FromDomainSiteList(sites []*domain.Site) *SiteListResponse {
	resp := &SiteListResponse{
		Sites: make([]SiteResponse, 0, len(sites)),
	}

	for _, s := range sites {
		resp.Sites = append(resp.Sites, SiteResponse{
			ID:      s.ID,
			Name:    s.Name,
			Address: s.Address,
		})
	}

	return resp
}
