package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusnav/campusnav/internal/app/models"
	"github.com/campusnav/campusnav/internal/db"
	"github.com/campusnav/campusnav/internal/pkg/apperrors"
)

// IScheduleRepository defines the schedule sync storage contract. The write
// side is deliberately a replace, not an update: prior courses and meetings
// are deleted and the full new state reinserted in one transaction.
type IScheduleRepository interface {
	GetByUserID(ctx context.Context, userID int64) ([]models.Course, error)
	ReplaceForUser(ctx context.Context, userID int64, courses []models.Course) error
}

// ScheduleRepository handles schedule database operations
type ScheduleRepository struct {
	db *pgxpool.Pool
}

// NewScheduleRepository creates a new ScheduleRepository
func NewScheduleRepository(db *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{
		db: db,
	}
}

// GetByUserID retrieves the user's full schedule: courses ordered by id with
// building codes resolved from the catalog, meetings ordered by (course, id).
// A user with no saved courses gets an empty slice, not an error.
func (r *ScheduleRepository) GetByUserID(ctx context.Context, userID int64) ([]models.Course, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.id, c.title, c.building_id, b.code AS building_code
		FROM courses c
		LEFT JOIN buildings b ON b.id = c.building_id
		WHERE c.user_id = $1
		ORDER BY c.id`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching courses: %w", err)
	}
	defer rows.Close()

	courses := make([]models.Course, 0)
	courseIndex := make(map[int64]int)
	for rows.Next() {
		var c models.Course
		if err := rows.Scan(&c.ID, &c.Title, &c.BuildingID, &c.BuildingCode); err != nil {
			return nil, fmt.Errorf("error scanning course: %w", err)
		}
		c.UserID = userID
		c.Meetings = make([]models.Meeting, 0)
		courseIndex[c.ID] = len(courses)
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating courses: %w", err)
	}

	if len(courses) == 0 {
		return courses, nil
	}

	courseIDs := make([]int64, 0, len(courses))
	for _, c := range courses {
		courseIDs = append(courseIDs, c.ID)
	}

	meetingRows, err := r.db.Query(ctx, `
		SELECT id, course_id, days,
		       to_char(start_time, 'HH24:MI'),
		       to_char(end_time, 'HH24:MI'),
		       room
		FROM meetings
		WHERE course_id = ANY($1)
		ORDER BY course_id, id`,
		courseIDs)
	if err != nil {
		return nil, fmt.Errorf("error fetching meetings: %w", err)
	}
	defer meetingRows.Close()

	for meetingRows.Next() {
		var m models.Meeting
		var days []string
		if err := meetingRows.Scan(&m.ID, &m.CourseID, &days, &m.StartTime, &m.EndTime, &m.Room); err != nil {
			return nil, fmt.Errorf("error scanning meeting: %w", err)
		}
		m.Days = toWeekdays(days)
		if idx, ok := courseIndex[m.CourseID]; ok {
			courses[idx].Meetings = append(courses[idx].Meetings, m)
		}
	}
	if err := meetingRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating meetings: %w", err)
	}

	return courses, nil
}

// ReplaceForUser atomically replaces the user's schedule. Inside one
// transaction it deletes all existing meetings, then courses, then inserts
// the incoming courses in order. A course with an empty title aborts the
// whole transaction, leaving the prior schedule untouched. Meetings missing
// a start or end time are skipped, not rejected.
func (r *ScheduleRepository) ReplaceForUser(ctx context.Context, userID int64, courses []models.Course) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		existingIDs, err := courseIDsForUser(ctx, tx, userID)
		if err != nil {
			return err
		}

		if len(existingIDs) > 0 {
			if _, err := tx.Exec(ctx, `DELETE FROM meetings WHERE course_id = ANY($1)`, existingIDs); err != nil {
				return fmt.Errorf("error deleting meetings: %w", err)
			}
			if _, err := tx.Exec(ctx, `DELETE FROM courses WHERE id = ANY($1)`, existingIDs); err != nil {
				return fmt.Errorf("error deleting courses: %w", err)
			}
		}

		for _, course := range courses {
			if strings.TrimSpace(course.Title) == "" {
				return apperrors.ErrCourseTitleRequired
			}

			var courseID int64
			err := tx.QueryRow(ctx, `
				INSERT INTO courses (user_id, title, building_id)
				VALUES ($1, $2, $3)
				RETURNING id`,
				userID, course.Title, course.BuildingID).Scan(&courseID)
			if err != nil {
				return fmt.Errorf("error inserting course: %w", err)
			}

			for _, m := range course.Meetings {
				if m.StartTime == "" || m.EndTime == "" {
					continue
				}
				_, err := tx.Exec(ctx, `
					INSERT INTO meetings (course_id, days, start_time, end_time, room)
					VALUES ($1, $2, $3::time, $4::time, $5)`,
					courseID, toStrings(m.Days), m.StartTime, m.EndTime, m.Room)
				if err != nil {
					return fmt.Errorf("error inserting meeting: %w", err)
				}
			}
		}

		return nil
	})
}

func courseIDsForUser(ctx context.Context, tx pgx.Tx, userID int64) ([]int64, error) {
	rows, err := tx.Query(ctx, `SELECT id FROM courses WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching course ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning course id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course ids: %w", err)
	}

	return ids, nil
}

func toWeekdays(days []string) []models.Weekday {
	out := make([]models.Weekday, 0, len(days))
	for _, d := range days {
		out = append(out, models.Weekday(d))
	}
	return out
}

func toStrings(days []models.Weekday) []string {
	out := make([]string, 0, len(days))
	for _, d := range days {
		out = append(out, string(d))
	}
	return out
}
