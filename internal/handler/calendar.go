package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/russelescultura/sk-barangay-sub001/internal/calendar"
	"github.com/russelescultura/sk-barangay-sub001/internal/domain"
)

// fetchCalendarSources reads the three calendar sources concurrently. Any
// failing read fails the whole fetch; a partial timeline would silently lie
// about what is scheduled.
func (h *Handler) fetchCalendarSources() ([]*domain.Program, []*domain.Event, []*domain.Form, error) {
	var (
		programs []*domain.Program
		events   []*domain.Event
		forms    []*domain.Form
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		programs, err = h.repository.GetAllPrograms()
		return err
	})
	g.Go(func() error {
		var err error
		events, err = h.repository.GetAllEvents()
		return err
	})
	g.Go(func() error {
		var err error
		forms, err = h.repository.GetAllForms()
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}

	return programs, events, forms, nil
}

func (h *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	filter, err := h.parseCalendarFilter(r)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	programs, events, forms, err := h.fetchCalendarSources()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	timeline := calendar.Aggregate(programs, events, forms, time.Now(), h.location)
	timeline = filter.Apply(timeline)

	h.successResponse(w, r, "calendar retrieved", timeline)
}

func (h *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	var (
		events []*domain.Event
		forms  []*domain.Form
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		events, err = h.repository.GetAllEvents()
		return err
	})
	g.Go(func() error {
		var err error
		forms, err = h.repository.GetAllForms()
		return err
	})

	if err := g.Wait(); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	notifications := calendar.DeriveNotifications(events, forms, time.Now(), h.location)

	h.successResponse(w, r, "notifications retrieved", notifications)
}

type filterParseError struct{ msg string }

func (e *filterParseError) Error() string { return e.msg }

// parseCalendarFilter builds a timeline filter from query parameters. List
// parameters are comma-separated; from and to are inclusive civil dates.
func (h *Handler) parseCalendarFilter(r *http.Request) (calendar.Filter, error) {
	q := r.URL.Query()
	filter := calendar.Filter{Query: q.Get("q")}

	for _, token := range splitList(q.Get("kinds")) {
		switch kind := calendar.SourceKind(strings.ToUpper(token)); kind {
		case calendar.SourceProgram, calendar.SourceEvent, calendar.SourceDeadline:
			filter.Kinds = append(filter.Kinds, kind)
		default:
			return calendar.Filter{}, &filterParseError{msg: "invalid kind " + strconv.Quote(token)}
		}
	}

	filter.Statuses = splitList(q.Get("statuses"))

	for _, token := range splitList(q.Get("programIDs")) {
		id, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return calendar.Filter{}, &filterParseError{msg: "invalid program ID " + strconv.Quote(token)}
		}
		filter.ProgramIDs = append(filter.ProgramIDs, id)
	}

	if raw := q.Get("from"); raw != "" {
		d, err := calendar.ParseDate(raw)
		if err != nil {
			return calendar.Filter{}, &filterParseError{msg: "invalid from date"}
		}
		start := d.Midnight(h.location)
		filter.RangeStart = &start
	}
	if raw := q.Get("to"); raw != "" {
		d, err := calendar.ParseDate(raw)
		if err != nil {
			return calendar.Filter{}, &filterParseError{msg: "invalid to date"}
		}
		end := d.AddDays(1).Midnight(h.location)
		filter.RangeEnd = &end
	}

	filter.HidePrograms = q.Get("hidePrograms") == "true"
	filter.HideEvents = q.Get("hideEvents") == "true"
	filter.HideDeadlines = q.Get("hideDeadlines") == "true"

	return filter, nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
