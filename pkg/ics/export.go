package ics

import (
	"time"

	ical "github.com/arran4/golang-ical"
)

// DefaultProductID is written to PRODID when none is given.
const DefaultProductID = "-//productivity-calendar//EN"

// Export renders events as a VCALENDAR.
func Export(prodID string, events []ExportEvent, now time.Time) string {
	if prodID == "" {
		prodID = DefaultProductID
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(prodID)

	for _, e := range events {
		ve := cal.AddEvent(e.UID)
		ve.SetDtStampTime(now.UTC())
		ve.SetStartAt(e.Start.UTC())
		ve.SetEndAt(e.End.UTC())
		ve.SetSummary(e.Summary)
		if e.Description != "" {
			ve.SetDescription(e.Description)
		}
		if e.Location != "" {
			ve.SetLocation(e.Location)
		}
		if e.Category != "" {
			ve.AddProperty(ical.ComponentPropertyCategories, e.Category)
		}
		if !e.Created.IsZero() {
			ve.SetCreatedTime(e.Created.UTC())
		}
		if !e.Modified.IsZero() {
			ve.SetModifiedAt(e.Modified.UTC())
		}
	}

	return cal.Serialize()
}
