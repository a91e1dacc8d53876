package editor

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusnav/campusnav/internal/app/models"
)

func TestMigrateCourse_FlatRecord(t *testing.T) {
	raw := `{
		"id": "abc-123",
		"title": "Calculus I",
		"days": ["Mon", "Wed", "Fri"],
		"startTime": "09:00",
		"endTime": "09:50",
		"room": "WSB 5"
	}`
	var lc LegacyCourse
	require.NoError(t, json.Unmarshal([]byte(raw), &lc))

	course := MigrateCourse(lc)

	assert.Equal(t, "abc-123", course.ID)
	assert.Equal(t, "Calculus I", course.Title)
	require.Len(t, course.Meetings, 1)

	m := course.Meetings[0]
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, []models.Weekday{models.Mon, models.Wed, models.Fri}, m.Days)
	assert.Equal(t, "09:00", m.StartTime)
	assert.Equal(t, "09:50", m.EndTime)
	assert.Equal(t, "WSB 5", m.Room)
}

func TestMigrateCourse_Idempotent(t *testing.T) {
	meetings := []Meeting{{
		ID:        "m-1",
		Days:      []models.Weekday{models.Tue},
		StartTime: "14:00",
		EndTime:   "15:15",
	}}
	lc := LegacyCourse{
		ID:       json.RawMessage(`"abc-123"`),
		Title:    "Physics",
		Meetings: &meetings,
		// Stray flat fields on an already-migrated record are ignored.
		Days:      []models.Weekday{models.Mon},
		StartTime: "08:00",
	}

	course := MigrateCourse(lc)
	require.Len(t, course.Meetings, 1)
	assert.Equal(t, "m-1", course.Meetings[0].ID)
	assert.Equal(t, []models.Weekday{models.Tue}, course.Meetings[0].Days)

	// Running the migration over its own output changes nothing.
	again := MigrateCourse(LegacyCourse{
		ID:       json.RawMessage(`"abc-123"`),
		Title:    course.Title,
		Meetings: &course.Meetings,
	})
	assert.Equal(t, course, again)
}

func TestMigrateCourse_EmptyMeetingsStaysEmpty(t *testing.T) {
	meetings := []Meeting{}
	course := MigrateCourse(LegacyCourse{
		ID:       json.RawMessage(`"abc"`),
		Title:    "Seminar",
		Meetings: &meetings,
	})
	// An explicit empty array is already the new shape, nothing synthesized.
	assert.Empty(t, course.Meetings)
}

func TestMigrateCourse_MissingFlatFields(t *testing.T) {
	var lc LegacyCourse
	require.NoError(t, json.Unmarshal([]byte(`{"title": "Mystery"}`), &lc))

	course := MigrateCourse(lc)
	assert.NotEmpty(t, course.ID)
	require.Len(t, course.Meetings, 1)
	assert.Empty(t, course.Meetings[0].Days)
	assert.NotNil(t, course.Meetings[0].Days)
	assert.Empty(t, course.Meetings[0].StartTime)
}

func TestMigrateID(t *testing.T) {
	t.Run("string id kept", func(t *testing.T) {
		assert.Equal(t, "u-1", migrateID(json.RawMessage(`"u-1"`)))
	})
	t.Run("numeric server id stringified", func(t *testing.T) {
		assert.Equal(t, "42", migrateID(json.RawMessage(`42`)))
	})
	t.Run("absent id gets a fresh one", func(t *testing.T) {
		assert.NotEmpty(t, migrateID(nil))
	})
}
