package calendar

import (
	"sort"
	"time"

	"github.com/russelescultura/sk-barangay-sub001/internal/domain"
)

type SourceKind string

const (
	SourceProgram  SourceKind = "PROGRAM"
	SourceEvent    SourceKind = "EVENT"
	SourceDeadline SourceKind = "DEADLINE"
)

// A deadline is flagged urgent when it falls within this many days of the
// aggregation instant.
const deadlineUrgencyDays = 7

// TimelineItem is a derived, ephemeral calendar entry. It is computed fresh
// per request and never stored.
type TimelineItem struct {
	SourceKind SourceKind        `json:"sourceKind"`
	ID         int64             `json:"id"`
	Title      string            `json:"title"`
	Start      time.Time         `json:"startInstant"`
	End        *time.Time        `json:"endInstant,omitempty"`
	AllDay     bool              `json:"allDay"`
	Status     string            `json:"status"`
	Tag        string            `json:"tag"`
	ProgramID  *int64            `json:"programID,omitempty"`
	Urgent     bool              `json:"urgent"`
	// DayIndex and DayTotal annotate same-day collisions: this item is the
	// DayIndex-th (1-based) of DayTotal items sharing its calendar date.
	// Items are never merged; label formatting belongs to the caller.
	DayIndex int               `json:"dayIndex"`
	DayTotal int               `json:"dayTotal"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// statusTags is the fixed visual palette, carried as data so the frontend
// decides how a tag is rendered.
var statusTags = map[string]string{
	string(domain.ProgramActive):    "green",
	string(domain.ProgramCompleted): "blue",
	string(domain.ProgramCancelled): "gray",
	string(domain.EventPlanned):     "indigo",
	string(domain.EventOngoing):     "green",
	string(domain.FormDraft):        "gray",
	string(domain.FormPublished):    "green",
	string(domain.FormClosed):       "red",
}

func TagForStatus(status string) string {
	if tag, ok := statusTags[status]; ok {
		return tag
	}
	return "gray"
}

// Aggregate merges the three sources into one timeline sorted by start
// instant, annotating same-day collisions. No item is ever dropped: the
// result holds one entry per program, per event, and per deadline-bearing
// form.
func Aggregate(programs []*domain.Program, events []*domain.Event, forms []*domain.Form, now time.Time, loc *time.Location) []TimelineItem {
	items := make([]TimelineItem, 0, len(programs)+len(events)+len(forms))
	today := DateOf(now.In(loc))

	for _, p := range programs {
		// Programs span whole days; the exclusive end is the day after the
		// last scheduled date.
		end := DateOf(p.EndDate.In(loc)).AddDays(1).Midnight(loc)
		items = append(items, TimelineItem{
			SourceKind: SourceProgram,
			ID:         p.ID,
			Title:      p.Title,
			Start:      DateOf(p.StartDate.In(loc)).Midnight(loc),
			End:        &end,
			AllDay:     true,
			Status:     string(p.Status),
			Tag:        TagForStatus(string(p.Status)),
			Metadata: map[string]string{
				"targetAudience": p.TargetAudience,
			},
		})
	}

	for _, e := range events {
		var end *time.Time
		if e.EndTime != nil {
			t := e.EndTime.In(loc)
			end = &t
		}
		items = append(items, TimelineItem{
			SourceKind: SourceEvent,
			ID:         e.ID,
			Title:      e.Title,
			Start:      e.StartTime.In(loc),
			End:        end,
			Status:     string(e.Status),
			Tag:        TagForStatus(string(e.Status)),
			ProgramID:  e.ProgramID,
			Metadata: map[string]string{
				"venue": e.Venue,
			},
		})
	}

	for _, f := range forms {
		if f.SubmissionDeadline == nil {
			continue
		}
		due := DateOf(f.SubmissionDeadline.In(loc))
		daysLeft := DaysBetween(today, due)
		items = append(items, TimelineItem{
			SourceKind: SourceDeadline,
			ID:         f.ID,
			Title:      f.Title,
			Start:      due.Midnight(loc),
			AllDay:     true,
			Status:     string(f.Status),
			Tag:        TagForStatus(string(f.Status)),
			Urgent:     daysLeft >= 0 && daysLeft <= deadlineUrgencyDays,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].Start.Equal(items[j].Start) {
			return items[i].Start.Before(items[j].Start)
		}
		if items[i].SourceKind != items[j].SourceKind {
			return kindRank(items[i].SourceKind) < kindRank(items[j].SourceKind)
		}
		return items[i].ID < items[j].ID
	})

	annotateCollisions(items, loc)

	return items
}

// kindRank fixes the order of items sharing an exact start instant so the
// timeline is deterministic across calls.
func kindRank(k SourceKind) int {
	switch k {
	case SourceProgram:
		return 0
	case SourceEvent:
		return 1
	default:
		return 2
	}
}

func annotateCollisions(items []TimelineItem, loc *time.Location) {
	totals := make(map[Date]int)
	for _, it := range items {
		totals[DateOf(it.Start.In(loc))]++
	}

	seen := make(map[Date]int)
	for i := range items {
		day := DateOf(items[i].Start.In(loc))
		seen[day]++
		items[i].DayIndex = seen[day]
		items[i].DayTotal = totals[day]
	}
}
