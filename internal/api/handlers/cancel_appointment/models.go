package cancel_appointment

import (
	"github.com/akimv/BarberHub-BookingService/internal/domain"
	"github.com/akimv/BarberHub-BookingService/internal/service/appointments/models"
)

// CancelAppointmentRequest HTTP request model
type CancelAppointmentRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// Validate проверяет входные данные запроса
func (r *CancelAppointmentRequest) Validate() bool {
	return len(r.CancellationReason) <= domain.MaxCancellationReasonLength
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelAppointmentRequest) ToServiceRequest() *models.CancelAppointmentRequest {
	return &models.CancelAppointmentRequest{
		CancellationReason: r.CancellationReason,
	}
}
