package editor

import (
	"encoding/json"
	"strconv"

	"github.com/google/uuid"

	"github.com/campusnav/campusnav/internal/app/models"
)

// LegacyCourse is a persisted course record in either the current shape or
// the old flat shape that kept a single time slot directly on the course.
// The meetings field distinguishes the two: absent means flat.
type LegacyCourse struct {
	ID           json.RawMessage  `json:"id"`
	Title        string           `json:"title"`
	BuildingID   *int64           `json:"buildingId"`
	BuildingCode *string          `json:"buildingCode"`
	Meetings     *[]Meeting       `json:"meetings"`
	Days         []models.Weekday `json:"days"`
	StartTime    string           `json:"startTime"`
	EndTime      string           `json:"endTime"`
	Room         string           `json:"room"`
}

// MigrateCourse upgrades a persisted course to the current shape. A flat
// record gains exactly one meeting synthesized from its days and times; a
// record that already has a meetings array passes through untouched, so the
// migration is idempotent.
func MigrateCourse(lc LegacyCourse) Course {
	course := Course{
		ID:           migrateID(lc.ID),
		Title:        lc.Title,
		BuildingID:   lc.BuildingID,
		BuildingCode: lc.BuildingCode,
	}
	if lc.Meetings != nil {
		course.Meetings = *lc.Meetings
		return course
	}

	days := lc.Days
	if days == nil {
		days = []models.Weekday{}
	}
	course.Meetings = []Meeting{{
		ID:        uuid.NewString(),
		Days:      days,
		StartTime: lc.StartTime,
		EndTime:   lc.EndTime,
		Room:      lc.Room,
	}}
	return course
}

// migrateID normalizes a persisted id to a string. Old records stored either
// uuid strings or numeric server ids; anything unreadable gets a fresh uuid.
func migrateID(raw json.RawMessage) string {
	if len(raw) == 0 {
		return uuid.NewString()
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil && s != "" {
		return s
	}
	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		return strconv.FormatInt(n, 10)
	}
	return uuid.NewString()
}
