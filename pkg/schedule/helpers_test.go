package schedule

import (
	"sync"
	"time"

	"github.com/ampliy/ampliy/pkg/toast"
)

var brt = time.FixedZone("BRT", -3*60*60)

func testSettings() Settings {
	return Settings{
		BaseDate:      time.Date(2025, time.October, 30, 0, 0, 0, 0, brt),
		ToastDuration: 3500 * time.Millisecond,
		ClassDuration: time.Hour,
		SessionTTL:    2 * time.Hour,
	}
}

func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, brt)
}

func ids(events []Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.ID)
	}
	return out
}

type fakeTimer struct {
	fire    func()
	stopped bool
}

func (f *fakeTimer) Stop() bool {
	wasActive := !f.stopped
	f.stopped = true
	return wasActive
}

// fakeTimers records toast timers instead of running them.
type fakeTimers struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (f *fakeTimers) AfterFunc(d time.Duration, fn func()) toast.Timer {
	f.mu.Lock()
	defer f.mu.Unlock()
	timer := &fakeTimer{fire: fn}
	f.timers = append(f.timers, timer)
	return timer
}

func (f *fakeTimers) last() *fakeTimer {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.timers) == 0 {
		return nil
	}
	return f.timers[len(f.timers)-1]
}
