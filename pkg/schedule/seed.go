package schedule

import "time"

// InitialEvents is the fixed list every new session starts from.
func InitialEvents(loc *time.Location) []Event {
	at := func(year int, month time.Month, day, hour, minute int) time.Time {
		return time.Date(year, month, day, hour, minute, 0, 0, loc)
	}
	return []Event{
		{ID: "evt-mentor-1", Title: "Mentoria de Onboarding", StartTime: at(2025, time.October, 30, 19, 0)},
		{ID: "evt-lab-1", Title: "Laboratório de Inovação - Aula 1", StartTime: at(2025, time.November, 4, 18, 30)},
		{ID: "evt-lab-2", Title: "Laboratório de Inovação - Aula 2", StartTime: at(2025, time.November, 11, 18, 30)},
		{ID: "evt-leadership", Title: "Workshop Liderança Híbrida", StartTime: at(2025, time.December, 2, 17, 0)},
	}
}
