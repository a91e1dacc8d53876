package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusnav/campusnav/internal/app/models"
)

// IBuildingRepository defines read access to the building catalog.
type IBuildingRepository interface {
	GetAll(ctx context.Context) ([]models.Building, error)
}

// BuildingRepository handles building catalog database operations. The
// catalog is read-only through the API; writes happen only via seeding.
type BuildingRepository struct {
	db *pgxpool.Pool
}

// NewBuildingRepository creates a new BuildingRepository
func NewBuildingRepository(db *pgxpool.Pool) *BuildingRepository {
	return &BuildingRepository{
		db: db,
	}
}

// GetAll retrieves every building ordered by name.
func (r *BuildingRepository) GetAll(ctx context.Context) ([]models.Building, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, code, name, address, lat, long, description
		FROM buildings
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("error fetching buildings: %w", err)
	}
	defer rows.Close()

	buildings := make([]models.Building, 0)
	for rows.Next() {
		var b models.Building
		if err := rows.Scan(&b.ID, &b.Code, &b.Name, &b.Address, &b.Latitude, &b.Longitude, &b.Description); err != nil {
			return nil, fmt.Errorf("error scanning building: %w", err)
		}
		buildings = append(buildings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating buildings: %w", err)
	}

	return buildings, nil
}

// Count returns the number of buildings in the catalog.
func (r *BuildingRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM buildings`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting buildings: %w", err)
	}
	return count, nil
}

// Create inserts a building. Used by seeding only; the API never writes to
// the catalog.
func (r *BuildingRepository) Create(ctx context.Context, b *models.Building) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO buildings (code, name, address, lat, long, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		b.Code, b.Name, b.Address, b.Latitude, b.Longitude, b.Description).Scan(&b.ID)

	if err != nil {
		return fmt.Errorf("error creating building: %w", err)
	}

	return nil
}
