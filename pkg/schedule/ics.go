package schedule

import (
	"time"

	ical "github.com/arran4/golang-ical"
)

const feedProductId = "-//Ampliy//Cronograma//PT-BR"

// RenderICS renders events as an iCalendar feed, each class lasting classDuration.
func RenderICS(events []Event, classDuration time.Duration, stamp time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(feedProductId)
	cal.SetXWRCalName("Cronograma Ampliy")

	for _, e := range events {
		ve := cal.AddEvent(e.ID)
		ve.SetDtStampTime(stamp)
		ve.SetStartAt(e.StartTime)
		ve.SetEndAt(e.StartTime.Add(classDuration))
		ve.SetSummary(e.Title)
	}
	return cal.Serialize()
}
