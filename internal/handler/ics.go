package handler

import (
	"fmt"
	"net/http"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/russelescultura/sk-barangay-sub001/internal/calendar"
)

// ExportCalendarICS renders the aggregated timeline as an iCalendar feed so
// the dashboard calendar can be subscribed to from external clients.
func (h *Handler) ExportCalendarICS(w http.ResponseWriter, r *http.Request) {
	programs, events, forms, err := h.fetchCalendarSources()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	timeline := calendar.Aggregate(programs, events, forms, time.Now(), h.location)

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//SK Barangay Dashboard//EN")

	now := time.Now()
	for _, item := range timeline {
		uid := fmt.Sprintf("%s-%d@sk-barangay", item.SourceKind, item.ID)
		event := cal.AddEvent(uid)
		event.SetDtStampTime(now)
		event.SetSummary(item.Title)
		event.SetProperty(ical.ComponentPropertyStatus, item.Status)

		if item.AllDay {
			event.SetAllDayStartAt(item.Start)
			if item.End != nil {
				event.SetAllDayEndAt(*item.End)
			}
		} else {
			event.SetStartAt(item.Start)
			if item.End != nil {
				event.SetEndAt(*item.End)
			}
		}

		if venue, ok := item.Metadata["venue"]; ok && venue != "" {
			event.SetLocation(venue)
		}
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="sk-calendar.ics"`)
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte(cal.Serialize())); err != nil {
		h.logInternalServerError(r, err)
	}
}
