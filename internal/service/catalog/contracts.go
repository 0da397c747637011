package catalog

import (
	"context"

	"github.com/akimv/BarberHub-BookingService/internal/domain"
)

// CatalogLister интерфейс источника справочников.
// В production сюда подставляется кеширующая обёртка над репозиторием.
type CatalogLister interface {
	ListServices(ctx context.Context) ([]*domain.Service, error)
	ListBarbers(ctx context.Context) ([]*domain.Barber, error)
	ListSites(ctx context.Context) ([]*domain.Site, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
