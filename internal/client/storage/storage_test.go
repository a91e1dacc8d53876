package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleRoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	t.Run("empty store returns nil draft", func(t *testing.T) {
		raw, err := store.LoadSchedule()
		require.NoError(t, err)
		assert.Nil(t, raw)
	})

	t.Run("saved draft reads back", func(t *testing.T) {
		draft := []map[string]any{{"id": "c1", "title": "Calculus", "meetings": []any{}}}
		require.NoError(t, store.SaveSchedule(draft))

		raw, err := store.LoadSchedule()
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":"c1","title":"Calculus","meetings":[]}]`, string(raw))
	})

	t.Run("save overwrites", func(t *testing.T) {
		require.NoError(t, store.SaveSchedule([]string{}))

		raw, err := store.LoadSchedule()
		require.NoError(t, err)
		assert.JSONEq(t, `[]`, string(raw))
	})
}

func TestSessionLifecycle(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	session, err := store.LoadSession()
	require.NoError(t, err)
	assert.Nil(t, session)

	require.NoError(t, store.SaveSession(&Session{
		Token:  "tok",
		UserID: 7,
		Email:  "student@go.minnstate.edu",
	}))

	session, err = store.LoadSession()
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "tok", session.Token)
	assert.Equal(t, int64(7), session.UserID)

	require.NoError(t, store.ClearSession())
	session, err = store.LoadSession()
	require.NoError(t, err)
	assert.Nil(t, session)

	// Clearing twice is fine.
	require.NoError(t, store.ClearSession())
}

func TestNewStore_CreatesNestedDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "deep", "state")
	store, err := NewStore(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, store.Dir())

	require.NoError(t, store.SaveSchedule([]string{}))
}
