package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_ConfirmDeleteFlow(t *testing.T) {
	f := newStoreFixture()
	session := f.store.Session("a")

	selected, err := session.Select("evt-lab-2")
	require.NoError(t, err)
	assert.Equal(t, "evt-lab-2", selected.ID)

	_, err = session.RequestDelete("evt-lab-2")
	require.NoError(t, err)

	view := session.View(f.clock.Now())
	require.NotNil(t, view.Selected)
	require.NotNil(t, view.PendingDelete)
	assert.False(t, view.ToastVisible)

	removed, err := session.ConfirmDelete()
	require.NoError(t, err)
	assert.Equal(t, "evt-lab-2", removed.ID)

	view = session.View(f.clock.Now())
	assert.Nil(t, view.Selected)
	assert.Nil(t, view.PendingDelete)
	assert.True(t, view.ToastVisible)
	assert.Equal(t, MsgEventRemoved, view.Toast)
	assert.NotContains(t, ids(view.Events), "evt-lab-2")
}

func TestSession_ToastDisappearsAfterTimer(t *testing.T) {
	f := newStoreFixture()
	session := f.store.Session("a")
	_, err := session.RequestDelete("evt-lab-1")
	require.NoError(t, err)
	_, err = session.ConfirmDelete()
	require.NoError(t, err)

	f.timers.last().fire()

	view := session.View(f.clock.Now())
	assert.False(t, view.ToastVisible)
	assert.Empty(t, view.Toast)
}

func TestSession_SecondToastReplacesFirst(t *testing.T) {
	f := newStoreFixture()
	session := f.store.Session("a")

	_, err := session.RequestDelete("evt-lab-1")
	require.NoError(t, err)
	_, err = session.ConfirmDelete()
	require.NoError(t, err)
	first := f.timers.last()

	_, err = session.RequestDelete("evt-lab-2")
	require.NoError(t, err)
	_, err = session.ConfirmDelete()
	require.NoError(t, err)

	assert.True(t, first.stopped)
	// a stale dismissal must not hide the newer toast
	first.fire()
	assert.True(t, session.View(f.clock.Now()).ToastVisible)
}

func TestSession_CancelDeleteKeepsEvent(t *testing.T) {
	f := newStoreFixture()
	session := f.store.Session("a")
	_, err := session.Select("evt-lab-1")
	require.NoError(t, err)
	_, err = session.RequestDelete("evt-lab-1")
	require.NoError(t, err)

	session.CancelDelete()

	view := session.View(f.clock.Now())
	assert.Nil(t, view.PendingDelete)
	require.NotNil(t, view.Selected)
	assert.Equal(t, "evt-lab-1", view.Selected.ID)
	assert.Contains(t, ids(view.Events), "evt-lab-1")

	_, err = session.ConfirmDelete()
	assert.ErrorIs(t, err, ErrNoPendingDeletion)
}

func TestSession_UnknownEvent(t *testing.T) {
	f := newStoreFixture()
	session := f.store.Session("a")

	_, err := session.Select("missing")
	assert.ErrorIs(t, err, ErrEventNotFound)
	_, err = session.RequestDelete("missing")
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestSession_DirectDeleteClearsDialogs(t *testing.T) {
	f := newStoreFixture()
	session := f.store.Session("a")
	_, err := session.Select("evt-leadership")
	require.NoError(t, err)
	_, err = session.RequestDelete("evt-leadership")
	require.NoError(t, err)

	session.Delete("evt-leadership")
	session.Delete("evt-leadership")

	view := session.View(f.clock.Now())
	assert.Nil(t, view.Selected)
	assert.Nil(t, view.PendingDelete)
	assert.False(t, view.ToastVisible)
	assert.Len(t, view.Events, 3)
}

func TestSession_ViewNavigation(t *testing.T) {
	f := newStoreFixture()
	session := f.store.Session("a")

	assert.Equal(t, Cursor{Year: 2025, Month: time.October}, session.PrevMonth())
	assert.Equal(t, Cursor{Year: 2025, Month: time.November}, session.NextMonth())

	view := session.View(f.clock.Now())
	assert.True(t, view.CanGoPrev)
	assert.Equal(t, []string{"evt-lab-1", "evt-lab-2"}, ids(view.MonthEvents))
	// clock is at 2025-11-01, after the onboarding mentoring
	assert.Equal(t, []string{"evt-lab-1", "evt-lab-2", "evt-leadership"}, ids(view.Upcoming))
	assert.Len(t, view.Events, 4)
}

func TestSession_FeedContainsBookableEvents(t *testing.T) {
	f := newStoreFixture()
	session := f.store.Session("a")

	feed := session.Feed(time.Hour, f.clock.Now())

	assert.Contains(t, feed, "UID:evt-mentor-1")
	assert.Contains(t, feed, "UID:evt-leadership")
}
