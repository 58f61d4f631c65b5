package priest

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	priestRepo "poojaconnect/database/repository/priest"
	zoneRepo "poojaconnect/database/repository/zone"
	"poojaconnect/models"
	"poojaconnect/utils"
)

var (
	// ErrMissingFields is returned when required priest fields are absent.
	ErrMissingFields = errors.New("missing required priest fields")
	// ErrUnknownZone is returned when the primary zone does not resolve.
	ErrUnknownZone = errors.New("unknown primary zone")
)

// PriestInput is the payload for creating a priest.
type PriestInput struct {
	FullName           string   `json:"fullName"`
	Phone              string   `json:"phone"`
	PrimaryZoneID      string   `json:"primaryZoneId"`
	SupportedLanguages []string `json:"supportedLanguages"`
	IsActive           *bool    `json:"isActive"`
	// Additional zones the priest covers beyond the primary one.
	CoverageZoneIDs []string `json:"coverageZoneIds"`
}

// PriestService manages the priest roster for admin operations.
type PriestService interface {
	List(ctx context.Context) ([]models.Priest, error)
	Create(ctx context.Context, input PriestInput) (*models.Priest, error)
}

// DefaultPriestService implements PriestService.
type DefaultPriestService struct {
	Repo  priestRepo.PriestRepository
	Zones zoneRepo.ZoneRepository
}

func (s *DefaultPriestService) List(ctx context.Context) ([]models.Priest, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultPriestService) Create(ctx context.Context, input PriestInput) (*models.Priest, error) {
	if input.FullName == "" || input.Phone == "" || len(input.SupportedLanguages) == 0 {
		return nil, ErrMissingFields
	}
	if input.PrimaryZoneID != "" {
		if _, err := s.Zones.GetByID(ctx, input.PrimaryZoneID); err != nil {
			if errors.Is(err, zoneRepo.ErrNotFound) {
				return nil, ErrUnknownZone
			}
			return nil, fmt.Errorf("failed to resolve zone %s: %w", input.PrimaryZoneID, err)
		}
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	record := &models.Priest{
		FullName:           input.FullName,
		Phone:              input.Phone,
		PrimaryZoneID:      input.PrimaryZoneID,
		SupportedLanguages: input.SupportedLanguages,
		IsActive:           isActive,
	}
	if err := s.Repo.Create(ctx, record); err != nil {
		return nil, err
	}

	for _, zoneID := range input.CoverageZoneIDs {
		link := &models.PriestZone{PriestID: record.ID, ZoneID: zoneID}
		if err := s.Repo.CreateZoneLink(ctx, link); err != nil {
			return nil, fmt.Errorf("failed to link priest %s to zone %s: %w", record.ID, zoneID, err)
		}
	}

	utils.GetLogger().Info("Priest created",
		zap.String("priestId", record.ID),
		zap.String("fullName", record.FullName))
	return record, nil
}
