package schedule

import (
	"fmt"
	"strings"

	"github.com/ampliy/ampliy/internal/validation"
	"github.com/teambition/rrule-go"
)

const MaxSeriesWeeks = 52

// NewSeries schedules the same class on Count consecutive weeks.
type NewSeries struct {
	NewEvent
	Count int `json:"count"`
}

// InsertSeries adds every weekly occurrence or none of them. Occurrences of a
// series with more than one class are titled "<title> - Aula n".
func (c *Calendar) InsertSeries(in NewSeries) ([]Event, error) {
	start, err := c.parseStart(in.NewEvent)
	if err != nil {
		return nil, err
	}
	if err := validation.Validate.Var(in.Count, fmt.Sprintf("min=1,max=%d", MaxSeriesWeeks)); err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf(msgInvalidCount, MaxSeriesWeeks)}
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.WEEKLY,
		Count:   in.Count,
		Dtstart: start,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build weekly rule: %w", err)
	}

	title := strings.TrimSpace(in.Title)
	occurrences := rule.All()
	created := make([]Event, 0, len(occurrences))
	events := c.events
	for i, occurrence := range occurrences {
		e := Event{
			ID:        c.newId(),
			Title:     title,
			StartTime: occurrence.In(c.settings.Location()),
		}
		if len(occurrences) > 1 {
			e.Title = fmt.Sprintf("%s - Aula %d", title, i+1)
		}
		events = insertSorted(events, e)
		created = append(created, e)
	}
	c.events = events
	return created, nil
}
