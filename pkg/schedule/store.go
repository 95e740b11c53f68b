package schedule

import (
	"context"
	"sync"

	"github.com/ampliy/ampliy/internal/event_bus"
	"github.com/ampliy/ampliy/internal/utils"
	"github.com/ampliy/ampliy/pkg/toast"
	log "github.com/sirupsen/logrus"
)

// Store owns every live schedule session, keyed by session id.
type Store struct {
	mu        sync.Mutex
	sessions  map[string]*Session
	settings  Settings
	bus       *event_bus.EventBus
	clock     utils.Clock
	afterFunc toast.AfterFunc
	seed      func() []Event
}

type StoreOption func(*Store)

// WithToastTimer replaces the timer used by session toasts.
func WithToastTimer(afterFunc toast.AfterFunc) StoreOption {
	return func(s *Store) {
		s.afterFunc = afterFunc
	}
}

// WithSeed replaces the events new sessions start with.
func WithSeed(seed func() []Event) StoreOption {
	return func(s *Store) {
		s.seed = seed
	}
}

func NewStore(settings Settings, bus *event_bus.EventBus, clock utils.Clock, opts ...StoreOption) *Store {
	s := &Store{
		sessions: make(map[string]*Session),
		settings: settings,
		bus:      bus,
		clock:    clock,
		seed: func() []Event {
			return InitialEvents(settings.Location())
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Settings() Settings {
	return s.settings
}

// Session returns the session for id, creating it from the seed on first use.
func (s *Store) Session(id string) *Session {
	now := s.clock.Now()

	s.mu.Lock()
	session, ok := s.sessions[id]
	if !ok {
		notifier := toast.NewNotifier(s.settings.ToastDuration)
		if s.afterFunc != nil {
			notifier = toast.NewNotifierWithTimer(s.settings.ToastDuration, s.afterFunc)
		}
		session = &Session{
			id:       id,
			calendar: NewCalendar(s.settings, s.seed()),
			toast:    notifier,
			publish:  s.publish,
		}
		s.sessions[id] = session
		log.Debugf("created schedule session %s", id)
	}
	s.mu.Unlock()

	session.touch(now)
	return session
}

// ExpireIdle closes sessions not used for longer than the configured TTL and
// returns how many were closed.
func (s *Store) ExpireIdle() int {
	cutoff := s.clock.Now().Add(-s.settings.SessionTTL)

	s.mu.Lock()
	expired := make([]*Session, 0)
	for id, session := range s.sessions {
		if session.idleSince().Before(cutoff) {
			expired = append(expired, session)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, session := range expired {
		session.close()
	}
	return len(expired)
}

// Close closes every session.
func (s *Store) Close() {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[string]*Session)
	s.mu.Unlock()

	for _, session := range sessions {
		session.close()
	}
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Store) publish(kind changeKind, sessionId string, e Event) {
	if s.bus == nil {
		return
	}
	eventType := event_bus.ScheduleEventCreated
	if kind == eventDeleted {
		eventType = event_bus.ScheduleEventDeleted
	}
	payload := event_bus.ScheduledClass{
		SessionId: sessionId,
		EventId:   e.ID,
		Title:     e.Title,
		StartTime: e.StartTime,
	}
	if err := s.bus.Publish(event_bus.NewEvent(context.Background(), eventType, payload)); err != nil {
		log.Errorf("failed to publish %s: %v", eventType, err)
	}
}
