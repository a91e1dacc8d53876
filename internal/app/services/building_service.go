package services

import (
	"context"
	"fmt"

	"github.com/campusnav/campusnav/internal/app/models"
	"github.com/campusnav/campusnav/internal/app/repositories"
)

// BuildingService serves the read-only building catalog.
type BuildingService struct {
	buildingRepo repositories.IBuildingRepository
}

// NewBuildingService creates a new BuildingService
func NewBuildingService(buildingRepo repositories.IBuildingRepository) *BuildingService {
	return &BuildingService{
		buildingRepo: buildingRepo,
	}
}

// List returns all buildings sorted by name. Buildings with out-of-range
// coordinates are returned as-is; validity is a display-time concern.
func (s *BuildingService) List(ctx context.Context) ([]models.Building, error) {
	buildings, err := s.buildingRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list buildings: %w", err)
	}
	return buildings, nil
}
