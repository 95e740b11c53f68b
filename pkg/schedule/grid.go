package schedule

import "time"

// Cell is one day of the rendered month. Padding slots are nil cells.
type Cell struct {
	Date         time.Time
	IsBeforeBase bool
	Events       []Event
}

// BuildMonthGrid lays out the month of cursor as weeks of seven cells starting on Sunday.
// Days before base stay in the grid, flagged IsBeforeBase. Events are matched by
// day of month, and only events of the rendered month are considered.
func BuildMonthGrid(cursor Cursor, events []Event, base time.Time) [][]*Cell {
	loc := base.Location()
	firstWeekday := int(cursor.FirstDay(loc).Weekday())
	daysInMonth := cursor.DaysInMonth()
	totalCells := (firstWeekday + daysInMonth + 6) / 7 * 7

	monthEvents := make([]Event, 0, len(events))
	for _, e := range events {
		if CursorFor(e.StartTime.In(loc)) == cursor {
			monthEvents = append(monthEvents, e)
		}
	}

	cells := make([]*Cell, totalCells)
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(cursor.Year, cursor.Month, day, 0, 0, 0, 0, loc)
		cell := &Cell{
			Date:         date,
			IsBeforeBase: date.Before(base),
			Events:       []Event{},
		}
		for _, e := range monthEvents {
			if e.StartTime.In(loc).Day() == day {
				cell.Events = append(cell.Events, e)
			}
		}
		cells[firstWeekday+day-1] = cell
	}

	weeks := make([][]*Cell, 0, totalCells/7)
	for i := 0; i < totalCells; i += 7 {
		weeks = append(weeks, cells[i:i+7])
	}
	return weeks
}
