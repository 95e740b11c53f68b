package schedule

import (
	"sync"
	"time"

	"github.com/ampliy/ampliy/pkg/toast"
)

// View is everything the schedule page renders for one session at one instant.
type View struct {
	Cursor        Cursor
	CanGoPrev     bool
	Weeks         [][]*Cell
	MonthEvents   []Event
	Events        []Event
	Upcoming      []Event
	Toast         string
	ToastVisible  bool
	Selected      *Event
	PendingDelete *Event
}

type publishFunc func(kind changeKind, sessionId string, e Event)

type changeKind int

const (
	eventCreated changeKind = iota
	eventDeleted
)

// Session is one visitor's schedule view: its calendar, the manage/confirm dialogs
// and the toast. All methods are safe for concurrent use.
type Session struct {
	mu            sync.Mutex
	id            string
	calendar      *Calendar
	toast         *toast.Notifier
	publish       publishFunc
	selected      string
	pendingDelete string
	lastSeen      time.Time
}

func (s *Session) Id() string {
	return s.id
}

func (s *Session) View(now time.Time) View {
	s.mu.Lock()
	defer s.mu.Unlock()

	message, visible := s.toast.Current()
	view := View{
		Cursor:       s.calendar.Cursor(),
		CanGoPrev:    s.calendar.CanGoPrev(),
		Weeks:        s.calendar.Grid(),
		MonthEvents:  s.calendar.MonthEvents(),
		Events:       s.calendar.Events(),
		Upcoming:     s.calendar.Upcoming(now),
		Toast:        message,
		ToastVisible: visible,
	}
	if e, ok := s.calendar.Find(s.selected); ok {
		view.Selected = &e
	}
	if e, ok := s.calendar.Find(s.pendingDelete); ok {
		view.PendingDelete = &e
	}
	return view
}

func (s *Session) PrevMonth() Cursor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calendar.Prev()
}

func (s *Session) NextMonth() Cursor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calendar.Next()
}

func (s *Session) GotoMonth(target Cursor) Cursor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calendar.Goto(target)
}

func (s *Session) Insert(in NewEvent) (Event, error) {
	s.mu.Lock()
	e, err := s.calendar.Insert(in)
	s.mu.Unlock()
	if err != nil {
		return Event{}, err
	}
	s.publish(eventCreated, s.id, e)
	return e, nil
}

func (s *Session) InsertSeries(in NewSeries) ([]Event, error) {
	s.mu.Lock()
	created, err := s.calendar.InsertSeries(in)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	for _, e := range created {
		s.publish(eventCreated, s.id, e)
	}
	return created, nil
}

// Delete removes the event directly, without the confirmation dialog.
// Deleting an unknown id does nothing.
func (s *Session) Delete(id string) {
	s.mu.Lock()
	removed, ok := s.deleteLocked(id)
	s.mu.Unlock()
	if ok {
		s.publish(eventDeleted, s.id, removed)
	}
}

// Select opens the manage dialog for an event.
func (s *Session) Select(id string) (Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.calendar.Find(id)
	if !ok {
		return Event{}, ErrEventNotFound
	}
	s.selected = id
	return e, nil
}

func (s *Session) CloseSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = ""
}

// RequestDelete opens the confirmation dialog for an event.
func (s *Session) RequestDelete(id string) (Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.calendar.Find(id)
	if !ok {
		return Event{}, ErrEventNotFound
	}
	s.pendingDelete = id
	return e, nil
}

func (s *Session) CancelDelete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingDelete = ""
}

// ConfirmDelete deletes the event awaiting confirmation, closes both dialogs and
// shows the removal toast.
func (s *Session) ConfirmDelete() (Event, error) {
	s.mu.Lock()
	if s.pendingDelete == "" {
		s.mu.Unlock()
		return Event{}, ErrNoPendingDeletion
	}
	id := s.pendingDelete
	removed, ok := s.deleteLocked(id)
	s.pendingDelete = ""
	s.selected = ""
	s.toast.Show(MsgEventRemoved)
	s.mu.Unlock()

	if ok {
		s.publish(eventDeleted, s.id, removed)
	}
	return removed, nil
}

func (s *Session) deleteLocked(id string) (Event, bool) {
	removed, ok := s.calendar.Delete(id)
	if s.selected == id {
		s.selected = ""
	}
	if s.pendingDelete == id {
		s.pendingDelete = ""
	}
	return removed, ok
}

// Feed renders the session's bookable events as an iCalendar document.
func (s *Session) Feed(classDuration time.Duration, stamp time.Time) string {
	s.mu.Lock()
	events := s.calendar.Events()
	s.mu.Unlock()
	return RenderICS(events, classDuration, stamp)
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// close cancels the pending toast timer.
func (s *Session) close() {
	s.toast.Close()
}
