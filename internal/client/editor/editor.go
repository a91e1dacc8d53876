// Package editor holds the CLI's in-memory schedule draft and the mutations
// the schedule commands apply to it. Every mutation writes the draft back to
// the store so it survives between invocations.
package editor

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/campusnav/campusnav/internal/app/models"
	"github.com/campusnav/campusnav/internal/app/models/dto"
)

// Course is a draft course. IDs are uuid strings minted locally; server ids
// are carried over as their decimal form when a fetched schedule is adopted.
type Course struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	BuildingID   *int64    `json:"buildingId,omitempty"`
	BuildingCode *string   `json:"buildingCode,omitempty"`
	Meetings     []Meeting `json:"meetings"`
}

// Meeting is a draft meeting slot. Times are "HH:MM" strings.
type Meeting struct {
	ID        string           `json:"id"`
	Days      []models.Weekday `json:"days"`
	StartTime string           `json:"startTime"`
	EndTime   string           `json:"endTime"`
	Room      string           `json:"room,omitempty"`
}

// Store is the persistence the editor writes through to.
type Store interface {
	LoadSchedule() (json.RawMessage, error)
	SaveSchedule(v any) error
}

// FetchFunc retrieves the schedule stored on the server.
type FetchFunc func(ctx context.Context) ([]models.Course, error)

// PushFunc sends a replace request to the server.
type PushFunc func(ctx context.Context, req *dto.ReplaceScheduleRequest) error

// Editor edits a draft schedule backed by a Store.
type Editor struct {
	store   Store
	courses []Course
}

// NewEditor creates an editor with an empty draft.
func NewEditor(store Store) *Editor {
	return &Editor{store: store, courses: []Course{}}
}

// Courses returns the current draft.
func (e *Editor) Courses() []Course {
	return e.courses
}

// Load fills the draft: a non-empty server schedule wins and is persisted
// locally; an empty one falls back to the local draft. A fetch failure keeps
// whatever is stored locally and returns the error so the caller can warn.
func (e *Editor) Load(ctx context.Context, fetch FetchFunc) error {
	remote, err := fetch(ctx)
	if err != nil {
		if lerr := e.LoadLocal(); lerr != nil {
			return lerr
		}
		return err
	}
	if len(remote) > 0 {
		return e.AdoptServer(remote)
	}
	return e.LoadLocal()
}

// LoadLocal reads the persisted draft, migrating any legacy course records.
func (e *Editor) LoadLocal() error {
	raw, err := e.store.LoadSchedule()
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		e.courses = []Course{}
		return nil
	}

	var legacy []LegacyCourse
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return fmt.Errorf("failed to parse schedule draft: %w", err)
	}

	courses := make([]Course, 0, len(legacy))
	for _, lc := range legacy {
		courses = append(courses, MigrateCourse(lc))
	}
	e.courses = courses
	return nil
}

// AdoptServer replaces the draft with a fetched schedule and persists it.
func (e *Editor) AdoptServer(remote []models.Course) error {
	courses := make([]Course, 0, len(remote))
	for _, rc := range remote {
		course := Course{
			ID:           strconv.FormatInt(rc.ID, 10),
			Title:        rc.Title,
			BuildingID:   rc.BuildingID,
			BuildingCode: rc.BuildingCode,
			Meetings:     make([]Meeting, 0, len(rc.Meetings)),
		}
		for _, rm := range rc.Meetings {
			meeting := Meeting{
				ID:        strconv.FormatInt(rm.ID, 10),
				Days:      append([]models.Weekday{}, rm.Days...),
				StartTime: rm.StartTime,
				EndTime:   rm.EndTime,
			}
			if rm.Room != nil {
				meeting.Room = *rm.Room
			}
			course.Meetings = append(course.Meetings, meeting)
		}
		courses = append(courses, course)
	}
	e.courses = courses
	return e.persist()
}

// Save pushes the full draft to the server. The response is not merged back;
// a following pull re-reads server state with its assigned ids.
func (e *Editor) Save(ctx context.Context, push PushFunc) error {
	return push(ctx, e.ReplaceRequest())
}

// ReplaceRequest builds the replace payload from the draft.
func (e *Editor) ReplaceRequest() *dto.ReplaceScheduleRequest {
	courses := make([]dto.CourseInput, 0, len(e.courses))
	for _, c := range e.courses {
		input := dto.CourseInput{
			Title:      c.Title,
			BuildingID: c.BuildingID,
			Meetings:   make([]dto.MeetingInput, 0, len(c.Meetings)),
		}
		for _, m := range c.Meetings {
			meeting := dto.MeetingInput{
				Days:      append([]models.Weekday{}, m.Days...),
				StartTime: m.StartTime,
				EndTime:   m.EndTime,
			}
			if m.Room != "" {
				room := m.Room
				meeting.Room = &room
			}
			input.Meetings = append(input.Meetings, meeting)
		}
		courses = append(courses, input)
	}
	return &dto.ReplaceScheduleRequest{Courses: courses}
}

// AddCourse prepends a new course with one empty meeting and returns it.
func (e *Editor) AddCourse(title string) (Course, error) {
	course := Course{
		ID:       uuid.NewString(),
		Title:    title,
		Meetings: []Meeting{newMeeting()},
	}
	e.courses = append([]Course{course}, e.courses...)
	return course, e.persist()
}

// RemoveCourse deletes a course from the draft.
func (e *Editor) RemoveCourse(courseID string) error {
	idx := e.courseIndex(courseID)
	if idx < 0 {
		return fmt.Errorf("course %s not found", courseID)
	}
	e.courses = append(e.courses[:idx], e.courses[idx+1:]...)
	return e.persist()
}

// UpdateCourseTitle renames a course.
func (e *Editor) UpdateCourseTitle(courseID, title string) error {
	course, err := e.course(courseID)
	if err != nil {
		return err
	}
	course.Title = title
	return e.persist()
}

// UpdateCourseBuilding assigns or clears the course's building.
func (e *Editor) UpdateCourseBuilding(courseID string, buildingID *int64, buildingCode *string) error {
	course, err := e.course(courseID)
	if err != nil {
		return err
	}
	course.BuildingID = buildingID
	course.BuildingCode = buildingCode
	return e.persist()
}

// AddMeeting appends an empty meeting to a course and returns it.
func (e *Editor) AddMeeting(courseID string) (Meeting, error) {
	course, err := e.course(courseID)
	if err != nil {
		return Meeting{}, err
	}
	meeting := newMeeting()
	course.Meetings = append(course.Meetings, meeting)
	return meeting, e.persist()
}

// RemoveMeeting deletes a meeting from a course.
func (e *Editor) RemoveMeeting(courseID, meetingID string) error {
	course, err := e.course(courseID)
	if err != nil {
		return err
	}
	for i := range course.Meetings {
		if course.Meetings[i].ID == meetingID {
			course.Meetings = append(course.Meetings[:i], course.Meetings[i+1:]...)
			return e.persist()
		}
	}
	return fmt.Errorf("meeting %s not found", meetingID)
}

// UpdateMeetingTimes sets a meeting's start and end times.
func (e *Editor) UpdateMeetingTimes(courseID, meetingID, startTime, endTime string) error {
	meeting, err := e.meeting(courseID, meetingID)
	if err != nil {
		return err
	}
	meeting.StartTime = startTime
	meeting.EndTime = endTime
	return e.persist()
}

// UpdateMeetingRoom sets a meeting's room.
func (e *Editor) UpdateMeetingRoom(courseID, meetingID, room string) error {
	meeting, err := e.meeting(courseID, meetingID)
	if err != nil {
		return err
	}
	meeting.Room = room
	return e.persist()
}

// ToggleMeetingDay adds the day to the meeting's day set if absent, removes
// it if present. The set never holds duplicates, so toggling twice always
// restores the original membership.
func (e *Editor) ToggleMeetingDay(courseID, meetingID string, day models.Weekday) error {
	if !models.IsValidWeekday(string(day)) {
		return fmt.Errorf("invalid day %q", day)
	}
	meeting, err := e.meeting(courseID, meetingID)
	if err != nil {
		return err
	}

	for i, d := range meeting.Days {
		if d == day {
			meeting.Days = append(meeting.Days[:i], meeting.Days[i+1:]...)
			return e.persist()
		}
	}
	meeting.Days = append(meeting.Days, day)
	return e.persist()
}

func newMeeting() Meeting {
	return Meeting{
		ID:   uuid.NewString(),
		Days: []models.Weekday{},
	}
}

func (e *Editor) persist() error {
	return e.store.SaveSchedule(e.courses)
}

func (e *Editor) courseIndex(courseID string) int {
	for i := range e.courses {
		if e.courses[i].ID == courseID {
			return i
		}
	}
	return -1
}

func (e *Editor) course(courseID string) (*Course, error) {
	idx := e.courseIndex(courseID)
	if idx < 0 {
		return nil, fmt.Errorf("course %s not found", courseID)
	}
	return &e.courses[idx], nil
}

func (e *Editor) meeting(courseID, meetingID string) (*Meeting, error) {
	course, err := e.course(courseID)
	if err != nil {
		return nil, err
	}
	for i := range course.Meetings {
		if course.Meetings[i].ID == meetingID {
			return &course.Meetings[i], nil
		}
	}
	return nil, fmt.Errorf("meeting %s not found", meetingID)
}
