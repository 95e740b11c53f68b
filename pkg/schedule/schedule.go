package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/ampliy/ampliy/internal/config"
)

const (
	DateLayout = "2006-01-02"

	msgMissingFields   = "Preencha título, data e horário da aula."
	msgInvalidDateTime = "Data ou horário inválido."
	msgBeforeBaseDate  = "Escolha uma data igual ou posterior a %s."
	msgInvalidCount    = "Informe entre 1 e %d semanas."

	MsgEventRemoved = "Aula removida com sucesso."
)

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrNoPendingDeletion = errors.New("no deletion awaiting confirmation")
)

// Event is a scheduled online class. Events are never modified after creation.
type Event struct {
	ID        string
	Title     string
	StartTime time.Time
}

// ValidationError rejects an insert. It carries the message shown next to the form.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Settings anchors the schedule in time. BaseDate is the first bookable instant and
// its location is the local time zone of the whole schedule.
type Settings struct {
	BaseDate      time.Time
	ToastDuration time.Duration
	ClassDuration time.Duration
	SessionTTL    time.Duration
}

func NewSettings(cfg config.Schedule) (Settings, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return Settings{}, fmt.Errorf("invalid schedule timezone %q: %w", cfg.Timezone, err)
	}
	base, err := time.ParseInLocation(DateLayout, cfg.BaseDate, loc)
	if err != nil {
		return Settings{}, fmt.Errorf("invalid schedule base date %q: %w", cfg.BaseDate, err)
	}
	return Settings{
		BaseDate:      base,
		ToastDuration: cfg.ToastDuration,
		ClassDuration: cfg.ClassDuration,
		SessionTTL:    cfg.SessionTTL,
	}, nil
}

func (s Settings) Location() *time.Location {
	return s.BaseDate.Location()
}

// BaseCursor is the earliest month the calendar can show.
func (s Settings) BaseCursor() Cursor {
	return CursorFor(s.BaseDate)
}

// Cursor is the month rendered by the calendar grid.
type Cursor struct {
	Year  int
	Month time.Month
}

func CursorFor(t time.Time) Cursor {
	return Cursor{Year: t.Year(), Month: t.Month()}
}

// FirstDay returns midnight of day 1 of the month in loc.
func (c Cursor) FirstDay(loc *time.Location) time.Time {
	return time.Date(c.Year, c.Month, 1, 0, 0, 0, 0, loc)
}

func (c Cursor) AddMonths(n int) Cursor {
	return CursorFor(time.Date(c.Year, c.Month+time.Month(n), 1, 0, 0, 0, 0, time.UTC))
}

func (c Cursor) Before(other Cursor) bool {
	if c.Year != other.Year {
		return c.Year < other.Year
	}
	return c.Month < other.Month
}

// DaysInMonth returns the number of the last day of the month.
func (c Cursor) DaysInMonth() int {
	return time.Date(c.Year, c.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (c Cursor) String() string {
	return fmt.Sprintf("%04d-%02d", c.Year, int(c.Month))
}
