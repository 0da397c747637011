package update_appointment

import (
	"time"

	"github.com/akimv/BarberHub-BookingService/internal/domain"
	updateAppointment "github.com/akimv/BarberHub-BookingService/internal/usecase/update_appointment"
	"github.com/akimv/BarberHub-BookingService/pkg/types"
)

// UpdateAppointmentRequest HTTP request model.
// Запрос несёт полное новое состояние редактируемых полей.
type UpdateAppointmentRequest struct {
	BarberID   int64   `json:"barberId"`
	SiteID     int64   `json:"siteId"`
	ServiceIDs []int64 `json:"serviceIds"`
	Date       string  `json:"date"`      // "2026-09-15"
	StartTime  string  `json:"startTime"` // "14:00"
	Notes      *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              string   `json:"id"`
	ClientID        string   `json:"clientId"`
	BarberID        int64    `json:"barberId"`
	SiteID          int64    `json:"siteId"`
	ServiceIDs      []int64  `json:"serviceIds"`
	Date            string   `json:"date"`
	StartTime       string   `json:"startTime"`
	EndTime         string   `json:"endTime"`
	DurationMinutes int      `json:"durationMinutes"`
	TotalPrice      float64  `json:"totalPrice"`
	Status          string   `json:"status"`
	ServiceNames    []string `json:"serviceNames"`
	Notes           *string  `json:"notes,omitempty"`
	CreatedAt       string   `json:"createdAt"`
	UpdatedAt       string   `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateAppointmentRequest) ToUseCaseRequest(appointmentID, clientID string) (*updateAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &updateAppointment.Request{
		AppointmentID: appointmentID,
		ClientID:      clientID,
		BarberID:      r.BarberID,
		SiteID:        r.SiteID,
		ServiceIDs:    r.ServiceIDs,
		Date:          date,
		StartTime:     startTime,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		ClientID:        resp.ClientID,
		BarberID:        resp.BarberID,
		SiteID:          resp.SiteID,
		ServiceIDs:      resp.ServiceIDs,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		DurationMinutes: resp.DurationMinutes,
		TotalPrice:      resp.TotalPrice,
		Status:          resp.Status,
		ServiceNames:    resp.ServiceNames,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
