package catalog

import (
	"context"
	"fmt"

	"github.com/akimv/BarberHub-BookingService/internal/service/catalog/models"
)

// Service сервис для работы со справочниками барбершопа
type Service struct {
	lister CatalogLister
	logger Logger
}

// NewService создает новый экземпляр сервиса справочников
func NewService(lister CatalogLister, logger Logger) *Service {
	return &Service{
		lister: lister,
		logger: logger,
	}
}

// ListServices возвращает список активных услуг
func (s *Service) ListServices(ctx context.Context) (*models.ServiceListResponse, error) {
	services, err := s.lister.ListServices(ctx)
	if err != nil {
		s.logger.Error("ListServices: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: ListServices: %v", ErrInternal, err)
	}

	s.logger.Info("ListServices: fetched %d services", len(services))
	return models.FromDomainServiceList(services), nil
}

// ListBarbers возвращает список активных барберов
func (s *Service) ListBarbers(ctx context.Context) (*models.BarberListResponse, error) {
	barbers, err := s.lister.ListBarbers(ctx)
	if err != nil {
		s.logger.Error("ListBarbers: failed to list barbers: %v", err)
		return nil, fmt.Errorf("%w: ListBarbers: %v", ErrInternal, err)
	}

	s.logger.Info("ListBarbers: fetched %d barbers", len(barbers))
	return models.FromDomainBarberList(barbers), nil
}

// ListSites возвращает список точек барбершопа
func (s *Service) ListSites(ctx context.Context) (*models.SiteListResponse, error) {
	sites, err := s.lister.ListSites(ctx)
	if err != nil {
		s.logger.Error("ListSites: failed to list sites: %v", err)
		return nil, fmt.Errorf("%w: ListSites: %v", ErrInternal, err)
	}

	s.logger.Info("ListSites: fetched %d sites", len(sites))
	return models.FromDomainSiteList(sites), nil
}
