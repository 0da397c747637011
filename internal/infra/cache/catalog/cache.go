package catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/akimv/BarberHub-BookingService/internal/domain"
)

const (
	servicesKey = "catalog:services"
	barbersKey  = "catalog:barbers"
	sitesKey    = "catalog:sites"
)

// Lister источник справочных списков (обычно catalog repository)
type Lister interface {
	ListServices(ctx context.Context) ([]*domain.Service, error)
	ListBarbers(ctx context.Context) ([]*domain.Barber, error)
	ListSites(ctx context.Context) ([]*domain.Site, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Cache read-through кэш справочников поверх redis.
// Ошибки redis не фатальны: при недоступности кэша чтение уходит в источник.
type Cache struct {
	client *redis.Client
	next   Lister
	ttl    time.Duration
	log    Logger
}

// NewCache создает кэш справочников с указанным TTL
func NewCache(client *redis.Client, next Lister, ttl time.Duration, log Logger) *Cache {
	return &Cache{
		client: client,
		next:   next,
		ttl:    ttl,
		log:    log,
	}
}

// ListServices возвращает список услуг из кэша или источника
func (c *Cache) ListServices(ctx context.Context) ([]*domain.Service, error) {
	var cached []*domain.Service
	if c.get(ctx, servicesKey, &cached) {
		return cached, nil
	}

	services, err := c.next.ListServices(ctx)
	if err != nil {
		return nil, err
	}

	c.set(ctx, servicesKey, services)
	return services, nil
}

// ListBarbers возвращает список барберов из кэша или источника
func (c *Cache) ListBarbers(ctx context.Context) ([]*domain.Barber, error) {
	var cached []*domain.Barber
	if c.get(ctx, barbersKey, &cached) {
		return cached, nil
	}

	barbers, err := c.next.ListBarbers(ctx)
	if err != nil {
		return nil, err
	}

	c.set(ctx, barbersKey, barbers)
	return barbers, nil
}

// ListSites возвращает список точек из кэша или источника
func (c *Cache) ListSites(ctx context.Context) ([]*domain.Site, error) {
	var cached []*domain.Site
	if c.get(ctx, sitesKey, &cached) {
		return cached, nil
	}

	sites, err := c.next.ListSites(ctx)
	if err != nil {
		return nil, err
	}

	c.set(ctx, sitesKey, sites)
	return sites, nil
}

// get читает и десериализует значение из redis; false при промахе или ошибке
func (c *Cache) get(ctx context.Context, key string, dest interface{}) bool {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("catalog cache: get %s failed: %v", key, err)
		}
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		c.log.Warn("catalog cache: unmarshal %s failed: %v", key, err)
		return false
	}

	return true
}

// set сериализует и пишет значение в redis best-effort
func (c *Cache) set(ctx context.Context, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		c.log.Warn("catalog cache: marshal %s failed: %v", key, err)
		return
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn("catalog cache: set %s failed: %v", key, err)
	}
}
