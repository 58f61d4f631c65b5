package seed

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	adminRepo "poojaconnect/database/repository/admin"
	poojaRepo "poojaconnect/database/repository/pooja"
	priestRepo "poojaconnect/database/repository/priest"
	slotRepo "poojaconnect/database/repository/slot"
	zoneRepo "poojaconnect/database/repository/zone"
	"poojaconnect/models"
	"poojaconnect/utils"
)

// Seeder populates launch reference data: zones, the pooja catalog, the
// initial priest roster with zone coverage, a rolling window of availability
// slots, and the bootstrap admin account.
type Seeder struct {
	Zones   zoneRepo.ZoneRepository
	Poojas  poojaRepo.PoojaRepository
	Priests priestRepo.PriestRepository
	Slots   slotRepo.SlotRepository
	Admins  adminRepo.AdminRepository
}

// Run seeds everything, skipping when zones already exist so restarts are
// idempotent.
func (s *Seeder) Run(ctx context.Context) error {
	logger := utils.GetLogger()

	count, err := s.Zones.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing zones: %w", err)
	}
	if count > 0 {
		logger.Info("Seed skipped, reference data already present")
		return nil
	}

	zones, err := s.seedZones(ctx)
	if err != nil {
		return err
	}
	if err := s.seedPoojas(ctx); err != nil {
		return err
	}
	priests, err := s.seedPriests(ctx, zones)
	if err != nil {
		return err
	}
	if err := s.seedSlots(ctx, priests); err != nil {
		return err
	}
	if err := s.seedAdmin(ctx); err != nil {
		return err
	}

	logger.Info("Seeding completed",
		zap.Int("zones", len(zones)),
		zap.Int("priests", len(priests)))
	return nil
}

func (s *Seeder) seedZones(ctx context.Context) ([]models.Zone, error) {
	names := []string{"Whitefield", "Koramangala", "HSR Layout", "Indiranagar"}
	zones := make([]models.Zone, 0, len(names))
	for _, name := range names {
		zone := models.Zone{Name: name, IsActive: true}
		if err := s.Zones.Create(ctx, &zone); err != nil {
			return nil, err
		}
		zones = append(zones, zone)
	}
	return zones, nil
}

func (s *Seeder) seedPoojas(ctx context.Context) error {
	poojas := []models.Pooja{
		{
			Name:                   "Griha Pravesh",
			Slug:                   "griha-pravesh",
			Description:            "Traditional housewarming ceremony to invoke blessings for your new home. This sacred ritual purifies the space and invites prosperity, peace, and positive energy into your dwelling.",
			DurationMinutes:        90,
			BasePricePriestOnlyMin: 2500, BasePricePriestOnlyMax: 3500,
			BasePriceWithKitMin: 4500, BasePriceWithKitMax: 6000,
			IsActive: true,
		},
		{
			Name:                   "Satyanarayan Pooja",
			Slug:                   "satyanarayan-pooja",
			Description:            "A powerful ceremony dedicated to Lord Vishnu for prosperity, health, and harmony, performed on auspicious occasions or when seeking blessings for family welfare.",
			DurationMinutes:        120,
			BasePricePriestOnlyMin: 2000, BasePricePriestOnlyMax: 3000,
			BasePriceWithKitMin: 4000, BasePriceWithKitMax: 5500,
			IsActive: true,
		},
		{
			Name:                   "Lakshmi Pooja",
			Slug:                   "lakshmi-pooja",
			Description:            "Invoke the blessings of Goddess Lakshmi for wealth, prosperity, and abundance. Especially popular during Diwali and for business openings.",
			DurationMinutes:        75,
			BasePricePriestOnlyMin: 1800, BasePricePriestOnlyMax: 2500,
			BasePriceWithKitMin: 3500, BasePriceWithKitMax: 4500,
			IsActive: true,
		},
		{
			Name:                   "Ganesh Pooja",
			Slug:                   "ganesh-pooja",
			Description:            "Begin any new venture with the blessings of Lord Ganesha, the remover of obstacles. Ideal for new beginnings, exams, or important life events.",
			DurationMinutes:        60,
			BasePricePriestOnlyMin: 1500, BasePricePriestOnlyMax: 2000,
			BasePriceWithKitMin: 3000, BasePriceWithKitMax: 4000,
			IsActive: true,
		},
		{
			Name:                   "Rudrabhishek",
			Slug:                   "rudrabhishek",
			Description:            "An elaborate ritual dedicated to Lord Shiva for health, peace, and spiritual growth, involving sacred chanting and abhishekam of the Shiva Lingam.",
			DurationMinutes:        150,
			BasePricePriestOnlyMin: 3500, BasePricePriestOnlyMax: 5000,
			BasePriceWithKitMin: 6000, BasePriceWithKitMax: 8000,
			IsActive: true,
		},
	}
	for i := range poojas {
		if err := s.Poojas.Create(ctx, &poojas[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedPriests(ctx context.Context, zones []models.Zone) ([]models.Priest, error) {
	priests := []models.Priest{
		{
			FullName: "Pandit Ramesh Sharma", Phone: "9876543210",
			PrimaryZoneID:      zones[0].ID,
			SupportedLanguages: []string{models.LanguageKannada, models.LanguageHindi},
			IsActive:           true,
		},
		{
			FullName: "Pandit Venkatesh Iyer", Phone: "9876543211",
			PrimaryZoneID:      zones[1].ID,
			SupportedLanguages: []string{models.LanguageKannada, models.LanguageTelugu},
			IsActive:           true,
		},
		{
			FullName: "Pandit Suresh Bhat", Phone: "9876543212",
			PrimaryZoneID:      zones[2].ID,
			SupportedLanguages: []string{models.LanguageHindi, models.LanguageTelugu},
			IsActive:           true,
		},
		{
			FullName: "Pandit Krishna Murthy", Phone: "9876543213",
			PrimaryZoneID:      zones[3].ID,
			SupportedLanguages: []string{models.LanguageKannada, models.LanguageHindi, models.LanguageTelugu},
			IsActive:           true,
		},
	}
	for i := range priests {
		if err := s.Priests.Create(ctx, &priests[i]); err != nil {
			return nil, err
		}
		// Launch priests cover every zone.
		for _, zone := range zones {
			link := &models.PriestZone{PriestID: priests[i].ID, ZoneID: zone.ID}
			if err := s.Priests.CreateZoneLink(ctx, link); err != nil {
				return nil, err
			}
		}
	}
	return priests, nil
}

func (s *Seeder) seedSlots(ctx context.Context, priests []models.Priest) error {
	today := time.Now()
	for _, p := range priests {
		slots := UpcomingWindows(p.ID, today, SlotHorizonDays)
		if err := s.Slots.CreateMany(ctx, slots); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedAdmin(ctx context.Context) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("changeme"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	admin := &models.Admin{
		Email:        "ops@poojaconnect.in",
		PasswordHash: string(hash),
		IsSuperadmin: true,
	}
	return s.Admins.Create(ctx, admin)
}
