package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/ampliy/ampliy/internal/validation"
	"github.com/google/uuid"
)

var timeLayouts = []string{"2006-01-02T15:04", "2006-01-02T15:04:05"}

// NewEvent is the admin form for a single class.
type NewEvent struct {
	Title string `json:"title" validate:"notblank"`
	Date  string `json:"date" validate:"notblank"`
	Time  string `json:"time" validate:"notblank"`
}

// Calendar is the event list and month cursor of one schedule view.
// It is not safe for concurrent use; Session serializes access.
type Calendar struct {
	settings Settings
	events   []Event
	cursor   Cursor
	newId    func() string
}

// NewCalendar starts at the base month with seed filtered to bookable events and sorted.
func NewCalendar(settings Settings, seed []Event) *Calendar {
	events := FilterValid(seed, settings.BaseDate)
	for i := range events {
		events[i].StartTime = events[i].StartTime.In(settings.Location())
	}
	SortEvents(events)
	return &Calendar{
		settings: settings,
		events:   events,
		cursor:   settings.BaseCursor(),
		newId:    newEventId,
	}
}

func newEventId() string {
	return "evt-" + uuid.NewString()
}

func (c *Calendar) Cursor() Cursor {
	return c.cursor
}

func (c *Calendar) CanGoPrev() bool {
	return c.settings.BaseCursor().Before(c.cursor)
}

// Prev moves one month back unless the cursor already shows the base month.
func (c *Calendar) Prev() Cursor {
	if c.CanGoPrev() {
		c.cursor = c.cursor.AddMonths(-1)
	}
	return c.cursor
}

func (c *Calendar) Next() Cursor {
	c.cursor = c.cursor.AddMonths(1)
	return c.cursor
}

// Goto shows target, or the base month when target is earlier.
func (c *Calendar) Goto(target Cursor) Cursor {
	if target.Before(c.settings.BaseCursor()) {
		target = c.settings.BaseCursor()
	}
	c.cursor = target
	return c.cursor
}

// Events returns the admin list: every bookable event in start order.
func (c *Calendar) Events() []Event {
	return FilterValid(c.events, c.settings.BaseDate)
}

func (c *Calendar) MonthEvents() []Event {
	return FilterMonth(c.Events(), c.cursor)
}

// Upcoming returns the student list, anchored to now rather than the base date.
func (c *Calendar) Upcoming(now time.Time) []Event {
	return FilterUpcoming(c.Events(), now)
}

func (c *Calendar) Grid() [][]*Cell {
	return BuildMonthGrid(c.cursor, c.Events(), c.settings.BaseDate)
}

func (c *Calendar) Find(id string) (Event, bool) {
	for _, e := range c.events {
		if e.ID == id {
			return e, true
		}
	}
	return Event{}, false
}

// Insert validates the form and adds the class in start order.
func (c *Calendar) Insert(in NewEvent) (Event, error) {
	start, err := c.parseStart(in)
	if err != nil {
		return Event{}, err
	}
	e := Event{ID: c.newId(), Title: strings.TrimSpace(in.Title), StartTime: start}
	c.events = insertSorted(c.events, e)
	return e, nil
}

// Delete removes the event with id. Unknown ids are ignored.
func (c *Calendar) Delete(id string) (Event, bool) {
	var (
		removed Event
		ok      bool
	)
	c.events, removed, ok = removeEvent(c.events, id)
	return removed, ok
}

func (c *Calendar) parseStart(in NewEvent) (time.Time, error) {
	if err := validation.Validate.Struct(in); err != nil {
		return time.Time{}, &ValidationError{Message: msgMissingFields, Fields: validation.FieldErrors(err)}
	}

	composed := strings.TrimSpace(in.Date) + "T" + strings.TrimSpace(in.Time)
	var (
		start time.Time
		err   error
	)
	for _, layout := range timeLayouts {
		start, err = time.ParseInLocation(layout, composed, c.settings.Location())
		if err == nil {
			break
		}
	}
	if err != nil {
		return time.Time{}, &ValidationError{Message: msgInvalidDateTime}
	}

	if start.Before(c.settings.BaseDate) {
		return time.Time{}, &ValidationError{
			Message: fmt.Sprintf(msgBeforeBaseDate, c.settings.BaseDate.Format("02/01/2006")),
		}
	}
	return start, nil
}
