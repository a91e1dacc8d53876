package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusnav/campusnav/internal/app/models"
)

func course(title string, meetings ...Meeting) Course {
	return Course{ID: title, Title: title, Meetings: meetings}
}

func meeting(id, start string, days ...models.Weekday) Meeting {
	return Meeting{ID: id, Days: days, StartTime: start}
}

func TestTodaysMeetings_FiltersByDay(t *testing.T) {
	courses := []Course{
		course("Calculus", meeting("m1", "09:00", models.Mon, models.Wed)),
		course("Physics", meeting("m2", "11:00", models.Tue, models.Thu)),
		course("History", meeting("m3", "13:00", models.Wed)),
	}

	entries := TodaysMeetings(courses, models.Wed)
	require.Len(t, entries, 2)
	assert.Equal(t, "Calculus", entries[0].Course.Title)
	assert.Equal(t, "History", entries[1].Course.Title)

	assert.Empty(t, TodaysMeetings(courses, models.Sat))
}

func TestTodaysMeetings_SortsByStartTime(t *testing.T) {
	courses := []Course{
		course("Afternoon", meeting("m1", "14:00", models.Mon)),
		course("Morning", meeting("m2", "09:00", models.Mon)),
		course("Midday", meeting("m3", "11:30", models.Mon)),
	}

	entries := TodaysMeetings(courses, models.Mon)
	require.Len(t, entries, 3)
	assert.Equal(t, "Morning", entries[0].Course.Title)
	assert.Equal(t, "Midday", entries[1].Course.Title)
	assert.Equal(t, "Afternoon", entries[2].Course.Title)
}

func TestTodaysMeetings_UnparsableTimesSortFirst(t *testing.T) {
	courses := []Course{
		course("Timed", meeting("m1", "08:00", models.Fri)),
		course("Untimed", meeting("m2", "", models.Fri)),
		course("Garbled", meeting("m3", "noon", models.Fri)),
	}

	entries := TodaysMeetings(courses, models.Fri)
	require.Len(t, entries, 3)
	// Unparsable starts count as midnight and keep their relative order.
	assert.Equal(t, "Untimed", entries[0].Course.Title)
	assert.Equal(t, "Garbled", entries[1].Course.Title)
	assert.Equal(t, "Timed", entries[2].Course.Title)
}

func TestTodaysMeetings_MultipleMeetingsPerCourse(t *testing.T) {
	courses := []Course{
		course("Lab Course",
			meeting("lecture", "10:00", models.Mon, models.Wed),
			meeting("lab", "15:00", models.Mon)),
	}

	entries := TodaysMeetings(courses, models.Mon)
	require.Len(t, entries, 2)
	assert.Equal(t, "lecture", entries[0].Meeting.ID)
	assert.Equal(t, "lab", entries[1].Meeting.ID)

	wednesday := TodaysMeetings(courses, models.Wed)
	require.Len(t, wednesday, 1)
	assert.Equal(t, "lecture", wednesday[0].Meeting.ID)
}

func TestMinutesSinceMidnight(t *testing.T) {
	assert.Equal(t, 0, minutesSinceMidnight("00:00"))
	assert.Equal(t, 9*60, minutesSinceMidnight("09:00"))
	assert.Equal(t, 23*60+59, minutesSinceMidnight("23:59"))
	assert.Equal(t, 0, minutesSinceMidnight(""))
	assert.Equal(t, 0, minutesSinceMidnight("noon"))
}
