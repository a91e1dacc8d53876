package editor

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusnav/campusnav/internal/app/models"
)

// memStore keeps the draft in memory and counts writes so tests can verify
// write-through persistence.
type memStore struct {
	raw   json.RawMessage
	saves int
}

func (m *memStore) LoadSchedule() (json.RawMessage, error) {
	return m.raw, nil
}

func (m *memStore) SaveSchedule(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.raw = data
	m.saves++
	return nil
}

func TestAddCourse(t *testing.T) {
	store := &memStore{}
	ed := NewEditor(store)

	first, err := ed.AddCourse("Calculus I")
	require.NoError(t, err)
	second, err := ed.AddCourse("Physics")
	require.NoError(t, err)

	courses := ed.Courses()
	require.Len(t, courses, 2)
	// Newest course goes first.
	assert.Equal(t, second.ID, courses[0].ID)
	assert.Equal(t, first.ID, courses[1].ID)

	// Each new course starts with one empty meeting.
	require.Len(t, courses[0].Meetings, 1)
	assert.Empty(t, courses[0].Meetings[0].Days)
	assert.Empty(t, courses[0].Meetings[0].StartTime)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 2, store.saves)
}

func TestRemoveCourse(t *testing.T) {
	store := &memStore{}
	ed := NewEditor(store)

	course, err := ed.AddCourse("Calculus I")
	require.NoError(t, err)

	require.NoError(t, ed.RemoveCourse(course.ID))
	assert.Empty(t, ed.Courses())

	assert.Error(t, ed.RemoveCourse("missing"))
}

func TestToggleMeetingDay(t *testing.T) {
	store := &memStore{}
	ed := NewEditor(store)

	course, err := ed.AddCourse("Calculus I")
	require.NoError(t, err)
	meetingID := course.Meetings[0].ID

	t.Run("adds when absent", func(t *testing.T) {
		require.NoError(t, ed.ToggleMeetingDay(course.ID, meetingID, models.Mon))
		assert.Equal(t, []models.Weekday{models.Mon}, ed.Courses()[0].Meetings[0].Days)
	})

	t.Run("never duplicates, double toggle restores", func(t *testing.T) {
		require.NoError(t, ed.ToggleMeetingDay(course.ID, meetingID, models.Wed))
		require.NoError(t, ed.ToggleMeetingDay(course.ID, meetingID, models.Wed))
		assert.Equal(t, []models.Weekday{models.Mon}, ed.Courses()[0].Meetings[0].Days)
	})

	t.Run("removes when present", func(t *testing.T) {
		require.NoError(t, ed.ToggleMeetingDay(course.ID, meetingID, models.Mon))
		assert.Empty(t, ed.Courses()[0].Meetings[0].Days)
	})

	t.Run("rejects bad token", func(t *testing.T) {
		assert.Error(t, ed.ToggleMeetingDay(course.ID, meetingID, "Monday"))
	})
}

func TestMeetingMutations(t *testing.T) {
	store := &memStore{}
	ed := NewEditor(store)

	course, err := ed.AddCourse("Calculus I")
	require.NoError(t, err)

	meeting, err := ed.AddMeeting(course.ID)
	require.NoError(t, err)
	require.Len(t, ed.Courses()[0].Meetings, 2)

	require.NoError(t, ed.UpdateMeetingTimes(course.ID, meeting.ID, "09:00", "09:50"))
	require.NoError(t, ed.UpdateMeetingRoom(course.ID, meeting.ID, "EB 214"))

	got := ed.Courses()[0].Meetings[1]
	assert.Equal(t, "09:00", got.StartTime)
	assert.Equal(t, "09:50", got.EndTime)
	assert.Equal(t, "EB 214", got.Room)

	require.NoError(t, ed.RemoveMeeting(course.ID, meeting.ID))
	assert.Len(t, ed.Courses()[0].Meetings, 1)
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	localDraft := func() *memStore {
		store := &memStore{}
		seed := NewEditor(store)
		_, err := seed.AddCourse("Local Draft")
		require.NoError(t, err)
		return store
	}

	t.Run("non-empty server schedule wins and is persisted", func(t *testing.T) {
		store := localDraft()
		ed := NewEditor(store)

		code := "EB"
		err := ed.Load(ctx, func(ctx context.Context) ([]models.Course, error) {
			room := "101"
			return []models.Course{{
				ID:           10,
				Title:        "Server Course",
				BuildingCode: &code,
				Meetings: []models.Meeting{
					{ID: 20, Days: []models.Weekday{models.Tue}, StartTime: "08:00", EndTime: "08:50", Room: &room},
				},
			}}, nil
		})
		require.NoError(t, err)

		courses := ed.Courses()
		require.Len(t, courses, 1)
		assert.Equal(t, "Server Course", courses[0].Title)
		assert.Equal(t, "10", courses[0].ID)
		require.Len(t, courses[0].Meetings, 1)
		assert.Equal(t, "101", courses[0].Meetings[0].Room)

		// Adopting wrote the server copy over the local draft.
		fresh := NewEditor(store)
		require.NoError(t, fresh.LoadLocal())
		require.Len(t, fresh.Courses(), 1)
		assert.Equal(t, "Server Course", fresh.Courses()[0].Title)
	})

	t.Run("empty server schedule falls back to local draft", func(t *testing.T) {
		ed := NewEditor(localDraft())

		err := ed.Load(ctx, func(ctx context.Context) ([]models.Course, error) {
			return []models.Course{}, nil
		})
		require.NoError(t, err)
		require.Len(t, ed.Courses(), 1)
		assert.Equal(t, "Local Draft", ed.Courses()[0].Title)
	})

	t.Run("fetch failure keeps local draft and surfaces error", func(t *testing.T) {
		ed := NewEditor(localDraft())

		fetchErr := errors.New("connection refused")
		err := ed.Load(ctx, func(ctx context.Context) ([]models.Course, error) {
			return nil, fetchErr
		})
		assert.ErrorIs(t, err, fetchErr)
		require.Len(t, ed.Courses(), 1)
		assert.Equal(t, "Local Draft", ed.Courses()[0].Title)
	})
}

func TestReplaceRequest(t *testing.T) {
	store := &memStore{}
	ed := NewEditor(store)

	course, err := ed.AddCourse("Calculus I")
	require.NoError(t, err)
	meetingID := course.Meetings[0].ID
	require.NoError(t, ed.UpdateMeetingTimes(course.ID, meetingID, "10:00", "10:50"))
	require.NoError(t, ed.UpdateMeetingRoom(course.ID, meetingID, "WSB 5"))
	require.NoError(t, ed.ToggleMeetingDay(course.ID, meetingID, models.Fri))

	req := ed.ReplaceRequest()
	require.NotNil(t, req.Courses)
	require.Len(t, req.Courses, 1)
	assert.Equal(t, "Calculus I", req.Courses[0].Title)
	require.Len(t, req.Courses[0].Meetings, 1)
	m := req.Courses[0].Meetings[0]
	assert.Equal(t, []models.Weekday{models.Fri}, m.Days)
	assert.Equal(t, "10:00", m.StartTime)
	require.NotNil(t, m.Room)
	assert.Equal(t, "WSB 5", *m.Room)
}

func TestReplaceRequest_EmptyDraftIsArray(t *testing.T) {
	ed := NewEditor(&memStore{})
	req := ed.ReplaceRequest()

	// The server rejects a nil courses field, so an empty draft must still
	// serialize as [].
	require.NotNil(t, req.Courses)
	data, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"courses":[]}`, string(data))
}
