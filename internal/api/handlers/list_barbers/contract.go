package list_barbers

import (
	"context"

	"github.com/akimv/BarberHub-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListBarbers(ctx context.Context) (*models.BarberListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
