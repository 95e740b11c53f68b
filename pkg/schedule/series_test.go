package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertSeries_WeeklyOccurrences(t *testing.T) {
	c := newTestCalendar()

	created, err := c.InsertSeries(NewSeries{
		NewEvent: NewEvent{Title: "Inglês", Date: "2025-11-06", Time: "19:30"},
		Count:    3,
	})

	require.NoError(t, err)
	require.Len(t, created, 3)
	assert.Equal(t, "Inglês - Aula 1", created[0].Title)
	assert.Equal(t, "Inglês - Aula 3", created[2].Title)
	assert.Equal(t, at(2025, time.November, 6, 19, 30), created[0].StartTime)
	assert.Equal(t, at(2025, time.November, 13, 19, 30), created[1].StartTime)
	assert.Equal(t, at(2025, time.November, 20, 19, 30), created[2].StartTime)

	events := c.Events()
	assert.Len(t, events, 7)
	for i := 1; i < len(events); i++ {
		assert.False(t, events[i].StartTime.Before(events[i-1].StartTime))
	}
}

func TestInsertSeries_SingleOccurrenceKeepsTitle(t *testing.T) {
	c := newTestCalendar()

	created, err := c.InsertSeries(NewSeries{
		NewEvent: NewEvent{Title: "Plantão", Date: "2025-11-06", Time: "19:30"},
		Count:    1,
	})

	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, "Plantão", created[0].Title)
}

func TestInsertSeries_RejectsInvalidCount(t *testing.T) {
	for _, count := range []int{0, -1, MaxSeriesWeeks + 1} {
		c := newTestCalendar()

		_, err := c.InsertSeries(NewSeries{
			NewEvent: NewEvent{Title: "Inglês", Date: "2025-11-06", Time: "19:30"},
			Count:    count,
		})

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr, "count %d", count)
		assert.Equal(t, "Informe entre 1 e 52 semanas.", validationErr.Message)
		assert.Len(t, c.Events(), 4)
	}
}

func TestInsertSeries_RejectsStartBeforeBase(t *testing.T) {
	c := newTestCalendar()

	_, err := c.InsertSeries(NewSeries{
		NewEvent: NewEvent{Title: "Inglês", Date: "2025-10-23", Time: "19:30"},
		Count:    4,
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, c.Events(), 4)
}
