package dto

import "github.com/campusnav/campusnav/internal/app/models"

// ScheduleResponse wraps a user's full schedule: courses ordered by creation
// id, each carrying its meetings ordered the same way. An empty schedule is
// a legitimate state and serializes as an empty array.
type ScheduleResponse struct {
	Courses []models.Course `json:"courses"`
}

// ReplaceScheduleRequest is the replace-all payload. Courses must be present
// and an array; anything else is rejected before storage is touched. Course
// titles are validated inside the replace transaction, not here, so that a
// violation rolls the whole replace back.
type ReplaceScheduleRequest struct {
	Courses []CourseInput `json:"courses" binding:"required"`
}

// CourseInput is one incoming course in a replace payload. Generated ids from
// earlier fetches are accepted and ignored; the replace assigns fresh ids.
type CourseInput struct {
	Title      string         `json:"title"`
	BuildingID *int64         `json:"buildingId"`
	Meetings   []MeetingInput `json:"meetings"`
}

// MeetingInput is one incoming meeting. A meeting missing a start or end
// time is skipped on insert rather than rejected.
type MeetingInput struct {
	Days      []models.Weekday `json:"days"`
	StartTime string           `json:"startTime"`
	EndTime   string           `json:"endTime"`
	Room      *string          `json:"room"`
}
