package services

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusnav/campusnav/internal/app/models"
	"github.com/campusnav/campusnav/internal/app/models/dto"
	"github.com/campusnav/campusnav/internal/pkg/apperrors"
)

// stubScheduleRepo mimics the replace transaction: an empty title aborts the
// whole replace and the previous schedule stays.
type stubScheduleRepo struct {
	schedules map[int64][]models.Course
}

func newStubScheduleRepo() *stubScheduleRepo {
	return &stubScheduleRepo{schedules: map[int64][]models.Course{}}
}

func (r *stubScheduleRepo) GetByUserID(ctx context.Context, userID int64) ([]models.Course, error) {
	courses := r.schedules[userID]
	if courses == nil {
		return []models.Course{}, nil
	}
	return courses, nil
}

func (r *stubScheduleRepo) ReplaceForUser(ctx context.Context, userID int64, courses []models.Course) error {
	for _, c := range courses {
		if strings.TrimSpace(c.Title) == "" {
			return apperrors.ErrCourseTitleRequired
		}
	}
	r.schedules[userID] = courses
	return nil
}

func newTestScheduleService(repo *stubScheduleRepo) *ScheduleService {
	return NewScheduleService(repo, zerolog.Nop())
}

func TestScheduleReplace(t *testing.T) {
	ctx := context.Background()

	t.Run("nil courses rejected before storage", func(t *testing.T) {
		repo := newStubScheduleRepo()
		repo.schedules[1] = []models.Course{{Title: "Calculus"}}
		svc := newTestScheduleService(repo)

		err := svc.Replace(ctx, 1, &dto.ReplaceScheduleRequest{Courses: nil})
		assert.ErrorIs(t, err, apperrors.ErrBadRequest)
		assert.Len(t, repo.schedules[1], 1)
	})

	t.Run("empty list clears the schedule", func(t *testing.T) {
		repo := newStubScheduleRepo()
		repo.schedules[1] = []models.Course{{Title: "Calculus"}}
		svc := newTestScheduleService(repo)

		err := svc.Replace(ctx, 1, &dto.ReplaceScheduleRequest{Courses: []dto.CourseInput{}})
		require.NoError(t, err)
		assert.Empty(t, repo.schedules[1])
	})

	t.Run("blank title rolls back and keeps prior schedule", func(t *testing.T) {
		repo := newStubScheduleRepo()
		repo.schedules[1] = []models.Course{{Title: "Calculus"}}
		svc := newTestScheduleService(repo)

		err := svc.Replace(ctx, 1, &dto.ReplaceScheduleRequest{Courses: []dto.CourseInput{
			{Title: "Physics"},
			{Title: "   "},
		}})
		assert.ErrorIs(t, err, apperrors.ErrCourseTitleRequired)
		require.Len(t, repo.schedules[1], 1)
		assert.Equal(t, "Calculus", repo.schedules[1][0].Title)
	})

	t.Run("converts inputs and normalizes nil day sets", func(t *testing.T) {
		repo := newStubScheduleRepo()
		svc := newTestScheduleService(repo)

		buildingID := int64(3)
		room := "EB 214"
		err := svc.Replace(ctx, 7, &dto.ReplaceScheduleRequest{Courses: []dto.CourseInput{
			{
				Title:      "Algorithms",
				BuildingID: &buildingID,
				Meetings: []dto.MeetingInput{
					{Days: []models.Weekday{models.Mon, models.Wed}, StartTime: "10:00", EndTime: "10:50", Room: &room},
					{Days: nil, StartTime: "14:00", EndTime: "15:15"},
				},
			},
		}})
		require.NoError(t, err)

		stored := repo.schedules[7]
		require.Len(t, stored, 1)
		assert.Equal(t, int64(7), stored[0].UserID)
		require.Len(t, stored[0].Meetings, 2)
		assert.Equal(t, []models.Weekday{models.Mon, models.Wed}, stored[0].Meetings[0].Days)
		assert.NotNil(t, stored[0].Meetings[1].Days)
		assert.Empty(t, stored[0].Meetings[1].Days)
	})
}

func TestScheduleFetch(t *testing.T) {
	repo := newStubScheduleRepo()
	svc := newTestScheduleService(repo)

	courses, err := svc.Fetch(context.Background(), 99)
	require.NoError(t, err)
	assert.NotNil(t, courses)
	assert.Empty(t, courses)
}
