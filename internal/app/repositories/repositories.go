package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles all repository instances sharing one pool.
type Repositories struct {
	UserRepository     *UserRepository
	BuildingRepository *BuildingRepository
	ScheduleRepository *ScheduleRepository
}

// NewRepositories creates all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(db),
		BuildingRepository: NewBuildingRepository(db),
		ScheduleRepository: NewScheduleRepository(db),
	}
}
