package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/campusnav/campusnav/internal/app/models"
	"github.com/campusnav/campusnav/internal/app/repositories"
)

func strPtr(s string) *string { return &s }

// defaultBuildings is the campus building catalog. Building data is managed
// out of band; this seed only fills an empty table on first startup.
var defaultBuildings = []models.Building{
	{Code: "AS", Name: "Atwood Memorial Center", Address: "720 4th Ave S", Latitude: 45.5523, Longitude: -94.1521, Description: strPtr("Student union: dining, meeting rooms, and campus services.")},
	{Code: "BH", Name: "Brown Hall", Address: "740 4th Ave S", Latitude: 45.5508, Longitude: -94.1497, Description: strPtr("Sciences and lecture halls.")},
	{Code: "CH", Name: "Centennial Hall", Address: "700 4th Ave S", Latitude: 45.5515, Longitude: -94.1512, Description: strPtr("Business school and computer labs.")},
	{Code: "ECC", Name: "Education Building", Address: "625 4th Ave S", Latitude: 45.5531, Longitude: -94.1508, Description: strPtr("College of education classrooms and offices.")},
	{Code: "EB", Name: "Engineering and Computing Center", Address: "750 4th Ave S", Latitude: 45.5502, Longitude: -94.1489, Description: strPtr("Engineering labs and the computing department.")},
	{Code: "HH", Name: "Halenbeck Hall", Address: "1000 4th Ave S", Latitude: 45.5478, Longitude: -94.1503, Description: strPtr("Athletics, gymnasium, and pool.")},
	{Code: "JWC", Name: "James W. Miller Learning Resources Center", Address: "720 4th Ave S", Latitude: 45.5519, Longitude: -94.1531, Description: strPtr("Main library and learning commons.")},
	{Code: "PAC", Name: "Performing Arts Center", Address: "640 4th Ave S", Latitude: 45.5527, Longitude: -94.1519, Description: strPtr("Theatre, recital halls, and music practice rooms.")},
	{Code: "RH", Name: "Riverview Hall", Address: "550 1st Ave S", Latitude: 45.5540, Longitude: -94.1485, Description: strPtr("Oldest classroom building on campus, overlooking the river.")},
	{Code: "SH", Name: "Stewart Hall", Address: "720 4th Ave S", Latitude: 45.5512, Longitude: -94.1525, Description: strPtr("Administration, auditorium, and humanities classrooms.")},
	{Code: "WSB", Name: "Wick Science Building", Address: "830 4th Ave S", Latitude: 45.5495, Longitude: -94.1500, Description: strPtr("Physics, chemistry, and the planetarium.")},
}

// CreateDefaultData seeds the building catalog when the table is empty.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	buildingRepo := repositories.NewBuildingRepository(dbPool)

	count, err := buildingRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count buildings: %w", err)
	}
	if count > 0 {
		lgr.Debug().Int("count", count).Msg("Building catalog already populated, skipping seed")
		return nil
	}

	lgr.Info().Int("buildings", len(defaultBuildings)).Msg("Seeding building catalog...")
	for i := range defaultBuildings {
		b := defaultBuildings[i]
		if err := buildingRepo.Create(ctx, &b); err != nil {
			return fmt.Errorf("failed to seed building %s: %w", b.Code, err)
		}
	}

	lgr.Info().Msg("Building catalog seeded")
	return nil
}
