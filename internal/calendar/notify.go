package calendar

import (
	"fmt"
	"time"

	"github.com/russelescultura/sk-barangay-sub001/internal/domain"
)

type NotificationKind string

const (
	NotifyInfo    NotificationKind = "INFO"
	NotifyWarning NotificationKind = "WARNING"
	NotifySuccess NotificationKind = "SUCCESS"
)

// MaxNotifications caps the derived feed.
const MaxNotifications = 5

// Notification is derived on every call and never persisted.
type Notification struct {
	ID          string           `json:"id"`
	Kind        NotificationKind `json:"kind"`
	Message     string           `json:"message"`
	GeneratedAt time.Time        `json:"generatedAt"`
}

// DeriveNotifications produces the prioritized feed for the dashboard:
// today's events first, then form deadlines due within three days, then
// events coming up within a week. The concatenation is deduplicated and
// capped at MaxNotifications in generation order; there is deliberately no
// re-sort by urgency. The current instant is an explicit parameter so the
// whole derivation is deterministic.
func DeriveNotifications(events []*domain.Event, forms []*domain.Form, now time.Time, loc *time.Location) []Notification {
	today := DateOf(now.In(loc))
	notifications := []Notification{}
	seen := make(map[string]struct{})

	add := func(id string, kind NotificationKind, message string) {
		if _, dup := seen[id]; dup {
			return
		}
		seen[id] = struct{}{}
		notifications = append(notifications, Notification{
			ID:          id,
			Kind:        kind,
			Message:     message,
			GeneratedAt: now,
		})
	}

	// Today's events collapse into a single entry.
	var todays []*domain.Event
	for _, e := range events {
		if DateOf(e.StartTime.In(loc)) == today {
			todays = append(todays, e)
		}
	}
	switch {
	case len(todays) == 1:
		add(fmt.Sprintf("today-%d", todays[0].ID), NotifyInfo,
			fmt.Sprintf("%q is scheduled today", todays[0].Title))
	case len(todays) > 1:
		add("today-"+today.String(), NotifyInfo,
			fmt.Sprintf("%d events scheduled today", len(todays)))
	}

	// Deadlines due within (0, 3] days.
	for _, f := range forms {
		if f.SubmissionDeadline == nil {
			continue
		}
		days := DaysBetween(today, DateOf(f.SubmissionDeadline.In(loc)))
		if days > 0 && days <= 3 {
			add(fmt.Sprintf("deadline-%d", f.ID), NotifyWarning,
				fmt.Sprintf("%q closes in %d day(s)", f.Title, days))
		}
	}

	// Events coming up within (0, 7] days.
	for _, e := range events {
		days := DaysBetween(today, DateOf(e.StartTime.In(loc)))
		if days > 0 && days <= 7 {
			add(fmt.Sprintf("event-%d", e.ID), NotifyInfo,
				fmt.Sprintf("%q is in %d day(s)", e.Title, days))
		}
	}

	if len(notifications) > MaxNotifications {
		notifications = notifications[:MaxNotifications]
	}

	return notifications
}
