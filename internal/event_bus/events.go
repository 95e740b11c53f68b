package event_bus

import "time"

const (
	ScheduleEventCreated EventType = "schedule.event.created"
	ScheduleEventDeleted EventType = "schedule.event.deleted"
)

// ScheduledClass is the payload published when a class is added to or removed from a session schedule.
type ScheduledClass struct {
	SessionId string
	EventId   string
	Title     string
	StartTime time.Time
}
