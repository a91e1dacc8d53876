package editor

import (
	"sort"
	"strconv"
	"strings"

	"github.com/campusnav/campusnav/internal/app/models"
)

// TodayEntry pairs a meeting with the course it belongs to.
type TodayEntry struct {
	Course  Course
	Meeting Meeting
}

// TodaysMeetings returns the meetings whose day set contains the given
// weekday, sorted by start time. The caller supplies the weekday from its
// local wall clock, typically models.Weekdays[time.Now().Weekday()].
func TodaysMeetings(courses []Course, day models.Weekday) []TodayEntry {
	var entries []TodayEntry
	for _, course := range courses {
		for _, meeting := range course.Meetings {
			if meetsOn(meeting, day) {
				entries = append(entries, TodayEntry{Course: course, Meeting: meeting})
			}
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return minutesSinceMidnight(entries[i].Meeting.StartTime) <
			minutesSinceMidnight(entries[j].Meeting.StartTime)
	})
	return entries
}

func meetsOn(meeting Meeting, day models.Weekday) bool {
	for _, d := range meeting.Days {
		if d == day {
			return true
		}
	}
	return false
}

// minutesSinceMidnight parses an "HH:MM" string for sorting. Unparsable
// times sort first as zero.
func minutesSinceMidnight(hhmm string) int {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return hours*60 + minutes
}
