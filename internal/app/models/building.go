package models

// Building represents a campus building from the read-only catalog.
// The catalog is seed data; rows are never written through the API.
type Building struct {
	ID          int64   `json:"id" db:"id"`
	Code        string  `json:"building_code" db:"code"`
	Name        string  `json:"name" db:"name"`
	Address     string  `json:"address" db:"address"`
	Latitude    float64 `json:"latitude" db:"lat"`
	Longitude   float64 `json:"longitude" db:"long"`
	Description *string `json:"description,omitempty" db:"description"` // Nullable
}

// HasValidCoordinates reports whether the building's coordinates fall in the
// displayable range. The catalog itself never drops rows for bad coordinates;
// consumers (map rendering, CLI listing) check this at display time.
func (b *Building) HasValidCoordinates() bool {
	return b.Latitude >= -90 && b.Latitude <= 90 &&
		b.Longitude >= -180 && b.Longitude <= 180
}
