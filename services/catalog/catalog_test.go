package catalog

import (
	"context"
	"errors"
	"testing"

	poojaRepo "poojaconnect/database/repository/pooja"
	zoneRepo "poojaconnect/database/repository/zone"
	"poojaconnect/models"
)

type stubPoojaRepo struct {
	poojas []models.Pooja
}

func (s *stubPoojaRepo) GetAllActive(ctx context.Context) ([]models.Pooja, error) {
	var out []models.Pooja
	for _, p := range s.poojas {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubPoojaRepo) GetByID(ctx context.Context, id string) (*models.Pooja, error) {
	for i := range s.poojas {
		if s.poojas[i].ID == id {
			p := s.poojas[i]
			return &p, nil
		}
	}
	return nil, poojaRepo.ErrNotFound
}

func (s *stubPoojaRepo) GetBySlug(ctx context.Context, slug string) (*models.Pooja, error) {
	for i := range s.poojas {
		if s.poojas[i].Slug == slug {
			p := s.poojas[i]
			return &p, nil
		}
	}
	return nil, poojaRepo.ErrNotFound
}

func (s *stubPoojaRepo) Create(ctx context.Context, pooja *models.Pooja) error {
	s.poojas = append(s.poojas, *pooja)
	return nil
}

type stubZoneRepo struct {
	zones []models.Zone
}

func (s *stubZoneRepo) GetAllActive(ctx context.Context) ([]models.Zone, error) {
	var out []models.Zone
	for _, z := range s.zones {
		if z.IsActive {
			out = append(out, z)
		}
	}
	return out, nil
}

func (s *stubZoneRepo) GetByID(ctx context.Context, id string) (*models.Zone, error) {
	for i := range s.zones {
		if s.zones[i].ID == id {
			z := s.zones[i]
			return &z, nil
		}
	}
	return nil, zoneRepo.ErrNotFound
}

func (s *stubZoneRepo) Create(ctx context.Context, zone *models.Zone) error {
	s.zones = append(s.zones, *zone)
	return nil
}

func (s *stubZoneRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(s.zones)), nil
}

func newCatalogService() *DefaultCatalogService {
	poojas := &stubPoojaRepo{poojas: []models.Pooja{
		{ID: "1", Name: "Ganesh Pooja", Slug: "ganesh-pooja", IsActive: true},
		{ID: "2", Name: "Retired Pooja", Slug: "retired", IsActive: false},
	}}
	zones := &stubZoneRepo{zones: []models.Zone{
		{ID: "z1", Name: "Whitefield", IsActive: true},
		{ID: "z2", Name: "Closed Zone", IsActive: false},
	}}
	// Cache left nil so every call goes straight to the store.
	return &DefaultCatalogService{Poojas: poojas, Zones: zones}
}

func TestListPoojas_ActiveOnly(t *testing.T) {
	svc := newCatalogService()
	poojas, err := svc.ListPoojas(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(poojas) != 1 || poojas[0].Slug != "ganesh-pooja" {
		t.Fatalf("expected only the active pooja, got %v", poojas)
	}
}

func TestGetPoojaBySlug(t *testing.T) {
	svc := newCatalogService()
	pooja, err := svc.GetPoojaBySlug(context.Background(), "ganesh-pooja")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pooja.ID != "1" {
		t.Fatalf("expected pooja 1, got %s", pooja.ID)
	}
}

func TestGetPoojaBySlug_NotFound(t *testing.T) {
	svc := newCatalogService()
	if _, err := svc.GetPoojaBySlug(context.Background(), "missing"); !errors.Is(err, ErrPoojaNotFound) {
		t.Fatalf("expected ErrPoojaNotFound, got %v", err)
	}
}

func TestListZones_ActiveOnly(t *testing.T) {
	svc := newCatalogService()
	zones, err := svc.ListZones(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(zones) != 1 || zones[0].Name != "Whitefield" {
		t.Fatalf("expected only the active zone, got %v", zones)
	}
}
