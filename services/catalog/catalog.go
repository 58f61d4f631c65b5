package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	poojaRepo "poojaconnect/database/repository/pooja"
	zoneRepo "poojaconnect/database/repository/zone"
	"poojaconnect/models"
	"poojaconnect/utils"
)

// ErrPoojaNotFound is returned when a slug resolves to nothing.
var ErrPoojaNotFound = errors.New("pooja not found")

// CatalogService exposes the public pooja and zone reference data.
type CatalogService interface {
	ListPoojas(ctx context.Context) ([]models.Pooja, error)
	GetPoojaBySlug(ctx context.Context, slug string) (*models.Pooja, error)
	ListZones(ctx context.Context) ([]models.Zone, error)
}

// DefaultCatalogService implements CatalogService with a Redis cache in
// front of the store. Cache may be nil, in which case every call hits the
// store directly.
type DefaultCatalogService struct {
	Poojas   poojaRepo.PoojaRepository
	Zones    zoneRepo.ZoneRepository
	Cache    *redis.Client
	CacheTTL time.Duration
}

const (
	cacheKeyPoojas = "catalog:poojas"
	cacheKeyZones  = "catalog:zones"
	cacheKeyPooja  = "catalog:pooja:" // + slug
)

func (s *DefaultCatalogService) ListPoojas(ctx context.Context) ([]models.Pooja, error) {
	var poojas []models.Pooja
	if s.cacheGet(ctx, cacheKeyPoojas, &poojas) {
		return poojas, nil
	}
	poojas, err := s.Poojas.GetAllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list poojas: %w", err)
	}
	s.cacheSet(ctx, cacheKeyPoojas, poojas)
	return poojas, nil
}

func (s *DefaultCatalogService) GetPoojaBySlug(ctx context.Context, slug string) (*models.Pooja, error) {
	var pooja models.Pooja
	if s.cacheGet(ctx, cacheKeyPooja+slug, &pooja) {
		return &pooja, nil
	}
	found, err := s.Poojas.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, poojaRepo.ErrNotFound) {
			return nil, ErrPoojaNotFound
		}
		return nil, fmt.Errorf("failed to fetch pooja %q: %w", slug, err)
	}
	s.cacheSet(ctx, cacheKeyPooja+slug, found)
	return found, nil
}

func (s *DefaultCatalogService) ListZones(ctx context.Context) ([]models.Zone, error) {
	var zones []models.Zone
	if s.cacheGet(ctx, cacheKeyZones, &zones) {
		return zones, nil
	}
	zones, err := s.Zones.GetAllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}
	s.cacheSet(ctx, cacheKeyZones, zones)
	return zones, nil
}

// cacheGet reports whether the key was present and decoded into dest. Cache
// errors are logged and treated as misses.
func (s *DefaultCatalogService) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	if s.Cache == nil {
		return false
	}
	data, err := s.Cache.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			utils.GetLogger().Warn("Catalog cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	return json.Unmarshal([]byte(data), dest) == nil
}

func (s *DefaultCatalogService) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, key, data, s.CacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("Catalog cache write failed", zap.String("key", key), zap.Error(err))
	}
}
