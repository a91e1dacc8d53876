package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campusnav/campusnav/internal/app/models/dto"
	"github.com/campusnav/campusnav/internal/app/services"
	"github.com/campusnav/campusnav/internal/middleware"
)

// ScheduleController handles the schedule sync endpoints.
type ScheduleController struct {
	scheduleService *services.ScheduleService
	logger          zerolog.Logger
}

// NewScheduleController creates a new ScheduleController
func NewScheduleController(scheduleService *services.ScheduleService, logger zerolog.Logger) *ScheduleController {
	return &ScheduleController{
		scheduleService: scheduleService,
		logger:          logger,
	}
}

// Get returns the authenticated user's schedule
// @Summary Fetch the current user's schedule
// @Description Returns all courses with their meetings, ordered by creation. Empty schedule returns an empty array.
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ScheduleResponse "The user's schedule"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedule [get]
func (c *ScheduleController) Get(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Unauthorized")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	courses, err := c.scheduleService.Fetch(ctx.Request.Context(), userID)
	if err != nil {
		c.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to fetch schedule")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Failed to fetch schedule")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.JSON(http.StatusOK, dto.ScheduleResponse{Courses: courses})
}

// Replace replaces the authenticated user's schedule wholesale
// @Summary Replace the current user's schedule
// @Description Deletes the existing schedule and inserts the provided one inside a single transaction
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ReplaceScheduleRequest true "The full new schedule"
// @Success 200 {object} dto.SuccessResponse "Schedule saved"
// @Failure 400 {object} dto.ErrorResponse "Invalid payload or empty course title"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedule [post]
func (c *ScheduleController) Replace(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Unauthorized")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.ReplaceScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid schedule payload")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid payload: courses must be an array")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.scheduleService.Replace(ctx.Request.Context(), userID, &req); err != nil {
		c.logger.Warn().Err(err).Int64("userID", userID).Msg("Failed to save schedule")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
