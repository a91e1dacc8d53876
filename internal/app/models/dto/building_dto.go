package dto

import "github.com/campusnav/campusnav/internal/app/models"

// BuildingsResponse wraps the full building catalog, ordered by name.
type BuildingsResponse struct {
	Buildings []models.Building `json:"buildings"`
}
