package schedule

import (
	"sync"
	"testing"
	"time"

	"github.com/ampliy/ampliy/internal/event_bus"
	"github.com/ampliy/ampliy/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storeFixture struct {
	store  *Store
	clock  *utils.MockClock
	timers *fakeTimers
	bus    *event_bus.EventBus
}

func newStoreFixture() storeFixture {
	clock := &utils.MockClock{FixedNow: at(2025, time.November, 1, 10, 0)}
	timers := &fakeTimers{}
	bus := event_bus.NewEventBus()
	store := NewStore(testSettings(), bus, clock, WithToastTimer(timers.AfterFunc))
	return storeFixture{store: store, clock: clock, timers: timers, bus: bus}
}

func TestStore_SessionIsCreatedOnceAndIsolated(t *testing.T) {
	f := newStoreFixture()

	first := f.store.Session("a")
	again := f.store.Session("a")
	other := f.store.Session("b")

	assert.Same(t, first, again)
	assert.NotSame(t, first, other)
	assert.Equal(t, 2, f.store.Len())

	first.Delete("evt-lab-1")
	assert.Len(t, first.View(f.clock.Now()).Events, 3)
	assert.Len(t, other.View(f.clock.Now()).Events, 4)
}

func TestStore_WithSeed(t *testing.T) {
	clock := &utils.MockClock{FixedNow: at(2025, time.November, 1, 10, 0)}
	store := NewStore(testSettings(), nil, clock, WithSeed(func() []Event {
		return []Event{{ID: "only", Title: "Única", StartTime: at(2026, time.March, 3, 9, 0)}}
	}))

	view := store.Session("a").View(clock.Now())

	assert.Equal(t, []string{"only"}, ids(view.Events))
}

func TestStore_ExpireIdle(t *testing.T) {
	f := newStoreFixture()
	f.store.Session("idle")
	f.clock.Advance(90 * time.Minute)
	f.store.Session("active")
	f.clock.Advance(31 * time.Minute)

	expired := f.store.ExpireIdle()

	assert.Equal(t, 1, expired)
	assert.Equal(t, 1, f.store.Len())

	// an expired visitor starts over from the seed
	fresh := f.store.Session("idle")
	assert.Len(t, fresh.View(f.clock.Now()).Events, 4)
	assert.Equal(t, 2, f.store.Len())
}

func TestStore_ExpireIdleCancelsToast(t *testing.T) {
	f := newStoreFixture()
	session := f.store.Session("a")
	_, err := session.RequestDelete("evt-lab-1")
	require.NoError(t, err)
	_, err = session.ConfirmDelete()
	require.NoError(t, err)
	timer := f.timers.last()
	require.NotNil(t, timer)

	f.clock.Advance(3 * time.Hour)
	f.store.ExpireIdle()

	assert.True(t, timer.stopped)
}

func TestStore_Close(t *testing.T) {
	f := newStoreFixture()
	f.store.Session("a")
	f.store.Session("b")

	f.store.Close()

	assert.Zero(t, f.store.Len())
}

func TestStore_PublishesChanges(t *testing.T) {
	f := newStoreFixture()
	var (
		mu       sync.Mutex
		received []event_bus.EventT[event_bus.ScheduledClass]
	)
	record := func(e event_bus.EventT[event_bus.ScheduledClass]) error {
		mu.Lock()
		defer mu.Unlock()
		received = append(received, e)
		return nil
	}
	event_bus.SubscribeTyped(f.bus, event_bus.ScheduleEventCreated, record)
	event_bus.SubscribeTyped(f.bus, event_bus.ScheduleEventDeleted, record)

	session := f.store.Session("a")
	created, err := session.Insert(NewEvent{Title: "Mentoria", Date: "2025-11-05", Time: "10:00"})
	require.NoError(t, err)
	session.Delete(created.ID)
	session.Delete(created.ID)

	require.Len(t, received, 2)
	assert.Equal(t, event_bus.ScheduleEventCreated, received[0].Type)
	assert.Equal(t, event_bus.ScheduleEventDeleted, received[1].Type)
	assert.Equal(t, "a", received[1].Data.SessionId)
	assert.Equal(t, created.ID, received[1].Data.EventId)
	assert.Equal(t, "Mentoria", received[1].Data.Title)
}

func TestJanitor_RejectsInvalidSchedule(t *testing.T) {
	f := newStoreFixture()

	err := NewJanitor(f.store, "not a schedule").Start()

	assert.Error(t, err)
}

func TestJanitor_StartAndStop(t *testing.T) {
	f := newStoreFixture()
	janitor := NewJanitor(f.store, "@every 1h")

	require.NoError(t, janitor.Start())
	janitor.Stop()
}
