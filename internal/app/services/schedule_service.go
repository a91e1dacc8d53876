package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campusnav/campusnav/internal/app/models"
	"github.com/campusnav/campusnav/internal/app/models/dto"
	"github.com/campusnav/campusnav/internal/app/repositories"
	"github.com/campusnav/campusnav/internal/pkg/apperrors"
)

// ScheduleService implements the schedule sync contract: fetch the full
// schedule, or replace it wholesale. There is no patch operation and no
// optimistic locking; concurrent replaces are last-writer-wins.
type ScheduleService struct {
	scheduleRepo repositories.IScheduleRepository
	logger       zerolog.Logger
}

// NewScheduleService creates a new ScheduleService
func NewScheduleService(scheduleRepo repositories.IScheduleRepository, logger zerolog.Logger) *ScheduleService {
	return &ScheduleService{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// Fetch returns the user's schedule, empty slice included.
func (s *ScheduleService) Fetch(ctx context.Context, userID int64) ([]models.Course, error) {
	courses, err := s.scheduleRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule: %w", err)
	}
	return courses, nil
}

// Replace swaps the user's entire schedule for the incoming one. The payload
// shape is validated before storage is touched; per-course title validation
// happens inside the replace transaction so a violation rolls everything
// back and the prior schedule survives intact.
func (s *ScheduleService) Replace(ctx context.Context, userID int64, req *dto.ReplaceScheduleRequest) error {
	if req.Courses == nil {
		return apperrors.NewBadRequestError("Invalid payload: courses must be an array")
	}

	courses := make([]models.Course, 0, len(req.Courses))
	for _, in := range req.Courses {
		course := models.Course{
			UserID:     userID,
			Title:      in.Title,
			BuildingID: in.BuildingID,
		}
		for _, m := range in.Meetings {
			days := m.Days
			if days == nil {
				days = []models.Weekday{}
			}
			course.Meetings = append(course.Meetings, models.Meeting{
				Days:      days,
				StartTime: m.StartTime,
				EndTime:   m.EndTime,
				Room:      m.Room,
			})
		}
		courses = append(courses, course)
	}

	if err := s.scheduleRepo.ReplaceForUser(ctx, userID, courses); err != nil {
		return err
	}

	s.logger.Debug().Int64("userID", userID).Int("courses", len(courses)).Msg("Schedule replaced")
	return nil
}
