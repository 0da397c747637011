package list_sites

import (
	"context"

	"github.com/akimv/BarberHub-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListSites(ctx context.Context) (*models.SiteListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
