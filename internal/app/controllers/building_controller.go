package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusnav/campusnav/internal/app/models/dto"
	"github.com/campusnav/campusnav/internal/app/services"
)

// BuildingController serves the campus building catalog.
type BuildingController struct {
	buildingService *services.BuildingService
}

// NewBuildingController creates a new BuildingController
func NewBuildingController(buildingService *services.BuildingService) *BuildingController {
	return &BuildingController{
		buildingService: buildingService,
	}
}

// List returns all buildings
// @Summary List campus buildings
// @Description Returns the full building catalog ordered by name. Public; no auth required.
// @Tags buildings
// @Produce json
// @Success 200 {object} dto.BuildingsResponse "Building catalog"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /buildings [get]
func (c *BuildingController) List(ctx *gin.Context) {
	buildings, err := c.buildingService.List(ctx.Request.Context())
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Failed to fetch buildings")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.JSON(http.StatusOK, dto.BuildingsResponse{Buildings: buildings})
}
