package ics

import (
	"time"

	"eventide/internal/domain/entity"

	ical "github.com/arran4/golang-ical"
)

const prodID = "-//Eventide//Calendar//EN"

// Render serializes the given events as an iCalendar document. Events
// without a calendar day (indefinite or dateless) are left out; events
// without a wall-clock time become all-day entries.
func Render(events []*entity.Event) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(prodID)

	for _, event := range events {
		if event.Indefinite || event.Date == "" {
			continue
		}

		day, err := time.Parse(time.DateOnly, event.Date)
		if err != nil {
			continue
		}

		ve := cal.AddEvent(event.EventID)
		ve.SetSummary(event.Title)
		if event.Details != "" {
			ve.SetDescription(event.Details)
		}
		ve.SetDtStampTime(time.UnixMilli(event.CreatedAt).UTC())

		clock, terr := time.Parse("15:04", event.Time)
		if event.Time != "" && terr == nil {
			start := time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, time.UTC)
			ve.SetStartAt(start)
			ve.SetEndAt(start.Add(time.Hour))
		} else {
			ve.SetAllDayStartAt(day)
			ve.SetAllDayEndAt(day.AddDate(0, 0, 1))
		}
	}

	return cal.Serialize()
}
