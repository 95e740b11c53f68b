package schedule

import (
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderICS_ParsesBack(t *testing.T) {
	events := InitialEvents(brt)[:2]
	stamp := time.Date(2025, time.October, 30, 12, 0, 0, 0, time.UTC)

	feed := RenderICS(events, time.Hour, stamp)

	cal, err := ical.ParseCalendar(strings.NewReader(feed))
	require.NoError(t, err)

	parsed := cal.Events()
	require.Len(t, parsed, 2)
	assert.Equal(t, "evt-mentor-1", parsed[0].Id())
	assert.Equal(t, "Mentoria de Onboarding", parsed[0].GetProperty(ical.ComponentPropertySummary).Value)

	start, err := parsed[0].GetStartAt()
	require.NoError(t, err)
	assert.True(t, start.Equal(events[0].StartTime))

	end, err := parsed[0].GetEndAt()
	require.NoError(t, err)
	assert.Equal(t, time.Hour, end.Sub(start))
}

func TestRenderICS_EmptyCalendar(t *testing.T) {
	feed := RenderICS(nil, time.Hour, time.Now())

	assert.Contains(t, feed, "BEGIN:VCALENDAR")
	assert.Contains(t, feed, "PRODID:"+feedProductId)
	assert.NotContains(t, feed, "BEGIN:VEVENT")
}
