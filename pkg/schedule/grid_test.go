package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMonthGrid_DimensionsForEveryMonth(t *testing.T) {
	settings := testSettings()
	cursor := settings.BaseCursor()

	for i := 0; i < 48; i++ {
		weeks := BuildMonthGrid(cursor, nil, settings.BaseDate)

		total, filled := 0, 0
		for _, week := range weeks {
			require.Len(t, week, 7, "month %s", cursor)
			for _, cell := range week {
				total++
				if cell != nil {
					filled++
				}
			}
		}
		assert.Positive(t, total, "month %s", cursor)
		assert.Zero(t, total%7, "month %s", cursor)
		assert.Equal(t, cursor.DaysInMonth(), filled, "month %s", cursor)

		cursor = cursor.AddMonths(1)
	}
}

func TestBuildMonthGrid_EveryDayExactlyOnceInOrder(t *testing.T) {
	settings := testSettings()
	cursor := Cursor{Year: 2028, Month: time.February}

	weeks := BuildMonthGrid(cursor, nil, settings.BaseDate)

	expectedDay := 1
	for _, week := range weeks {
		for _, cell := range week {
			if cell == nil {
				continue
			}
			assert.Equal(t, expectedDay, cell.Date.Day())
			expectedDay++
		}
	}
	assert.Equal(t, 30, expectedDay, "leap February has 29 days")
}

func TestBuildMonthGrid_October2025(t *testing.T) {
	settings := testSettings()
	events := []Event{
		{ID: "a", Title: "Mentoria", StartTime: at(2025, time.October, 30, 19, 0)},
		{ID: "b", Title: "Lab", StartTime: at(2025, time.November, 4, 18, 30)},
	}

	weeks := BuildMonthGrid(Cursor{Year: 2025, Month: time.October}, events, settings.BaseDate)

	// October 1st 2025 is a Wednesday: three leading padding cells, 35 cells total
	require.Len(t, weeks, 5)
	assert.Nil(t, weeks[0][0])
	assert.Nil(t, weeks[0][2])
	require.NotNil(t, weeks[0][3])
	assert.Equal(t, 1, weeks[0][3].Date.Day())
	assert.Nil(t, weeks[4][6])

	day29 := weeks[4][3]
	day30 := weeks[4][4]
	require.NotNil(t, day29)
	require.NotNil(t, day30)
	assert.Equal(t, 29, day29.Date.Day())
	assert.True(t, day29.IsBeforeBase)
	assert.False(t, day30.IsBeforeBase)
	assert.Equal(t, []string{"a"}, ids(day30.Events))

	// the November 4th event must not leak into October 4th
	day4 := weeks[0][6]
	require.NotNil(t, day4)
	assert.Equal(t, 4, day4.Date.Day())
	assert.Empty(t, day4.Events)
}

func TestBuildMonthGrid_FebruaryStartingOnSunday(t *testing.T) {
	settings := testSettings()

	weeks := BuildMonthGrid(Cursor{Year: 2026, Month: time.February}, nil, settings.BaseDate)

	require.Len(t, weeks, 4)
	assert.Equal(t, 1, weeks[0][0].Date.Day())
	assert.Equal(t, 28, weeks[3][6].Date.Day())
}

func TestBuildMonthGrid_EventsMatchCellDayAndCursorMonth(t *testing.T) {
	settings := testSettings()
	cursor := Cursor{Year: 2025, Month: time.November}
	events := []Event{
		{ID: "oct-5", StartTime: at(2025, time.October, 31, 9, 0)},
		{ID: "nov-4", StartTime: at(2025, time.November, 4, 18, 30)},
		{ID: "nov-4-late", StartTime: at(2025, time.November, 4, 21, 0)},
		{ID: "nov-30", StartTime: at(2025, time.November, 30, 8, 0)},
		{ID: "dec-4", StartTime: at(2025, time.December, 4, 18, 30)},
		{ID: "nov-2026", StartTime: at(2026, time.November, 4, 18, 30)},
	}

	weeks := BuildMonthGrid(cursor, events, settings.BaseDate)

	attached := map[string]int{}
	for _, week := range weeks {
		for _, cell := range week {
			if cell == nil {
				continue
			}
			for _, e := range cell.Events {
				assert.Equal(t, cell.Date.Day(), e.StartTime.Day())
				assert.Equal(t, cursor, CursorFor(e.StartTime))
				attached[e.ID]++
			}
		}
	}
	assert.Equal(t, map[string]int{"nov-4": 1, "nov-4-late": 1, "nov-30": 1}, attached)
}

func TestBuildMonthGrid_ConvertsEventsToScheduleZone(t *testing.T) {
	settings := testSettings()
	// 01:00 UTC on Nov 1st is still Oct 31st in Brasília
	events := []Event{{ID: "utc", StartTime: time.Date(2025, time.November, 1, 1, 0, 0, 0, time.UTC)}}

	weeks := BuildMonthGrid(Cursor{Year: 2025, Month: time.October}, events, settings.BaseDate)

	last := weeks[4][5]
	require.NotNil(t, last)
	assert.Equal(t, 31, last.Date.Day())
	assert.Equal(t, []string{"utc"}, ids(last.Events))
}
