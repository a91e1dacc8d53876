package models

// Weekday is a day-of-week token as stored in a meeting's day set.
type Weekday string

// Weekday tokens, Sunday first to match time.Weekday ordering.
const (
	Sun Weekday = "Sun"
	Mon Weekday = "Mon"
	Tue Weekday = "Tue"
	Wed Weekday = "Wed"
	Thu Weekday = "Thu"
	Fri Weekday = "Fri"
	Sat Weekday = "Sat"
)

// Weekdays lists all seven tokens in time.Weekday order, so
// Weekdays[time.Now().Weekday()] yields today's token.
var Weekdays = [7]Weekday{Sun, Mon, Tue, Wed, Thu, Fri, Sat}

// IsValidWeekday reports whether s is one of the seven day tokens.
func IsValidWeekday(s string) bool {
	for _, d := range Weekdays {
		if string(d) == s {
			return true
		}
	}
	return false
}

// Course represents one class in a user's schedule. A course exists only as
// part of exactly one user's schedule and is created and destroyed in bulk by
// a schedule replace; it is never patched in place through the sync API.
type Course struct {
	ID         int64  `json:"id" db:"id"`
	UserID     int64  `json:"-" db:"user_id"`
	Title      string `json:"title" db:"title"`
	BuildingID *int64 `json:"buildingId" db:"building_id"` // Nullable reference into the building catalog

	// BuildingCode is resolved from the catalog on fetch, not stored.
	BuildingCode *string `json:"buildingCode"`

	Meetings []Meeting `json:"meetings"`
}

// Meeting is one recurring time slot of a course. Times are wall-clock
// "HH:MM" strings; no timezone handling is applied anywhere.
type Meeting struct {
	ID        int64     `json:"id" db:"id"`
	CourseID  int64     `json:"-" db:"course_id"`
	Days      []Weekday `json:"days" db:"days"`
	StartTime string    `json:"startTime" db:"start_time"`
	EndTime   string    `json:"endTime" db:"end_time"`
	Room      *string   `json:"room" db:"room"` // Nullable
}
