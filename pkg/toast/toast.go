// Package toast implements the transient notification shown after schedule actions.
// A notification stays visible for a fixed duration; showing a new one replaces the
// message and restarts the countdown instead of stacking.
package toast

import (
	"sync"
	"time"
)

type Timer interface {
	Stop() bool
}

// AfterFunc schedules f to run once after d. time.AfterFunc satisfies it.
type AfterFunc func(d time.Duration, f func()) Timer

func systemAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

type Notifier struct {
	mu         sync.Mutex
	duration   time.Duration
	afterFunc  AfterFunc
	timer      Timer
	generation uint64
	message    string
	visible    bool
	closed     bool
}

func NewNotifier(duration time.Duration) *Notifier {
	return NewNotifierWithTimer(duration, systemAfterFunc)
}

func NewNotifierWithTimer(duration time.Duration, afterFunc AfterFunc) *Notifier {
	return &Notifier{duration: duration, afterFunc: afterFunc}
}

// Show displays message and re-arms the dismissal timer.
func (n *Notifier) Show(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return
	}
	if n.timer != nil {
		n.timer.Stop()
	}
	n.generation++
	generation := n.generation
	n.message = message
	n.visible = true
	n.timer = n.afterFunc(n.duration, func() {
		n.dismiss(generation)
	})
}

// dismiss hides the toast unless it was replaced after the timer for generation was armed.
func (n *Notifier) dismiss(generation uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if generation != n.generation {
		return
	}
	n.visible = false
	n.message = ""
	n.timer = nil
}

// Current returns the visible message.
func (n *Notifier) Current() (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.message, n.visible
}

// Close cancels any pending dismissal. Later calls to Show are ignored.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.generation++
	n.closed = true
	n.visible = false
	n.message = ""
}
