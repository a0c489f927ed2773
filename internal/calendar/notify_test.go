package calendar

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/russelescultura/sk-barangay-sub001/internal/domain"
)

var notifyNow = time.Date(2024, time.June, 10, 9, 30, 0, 0, pht)

func eventOn(id int64, title string, day time.Time) *domain.Event {
	return &domain.Event{ID: id, Title: title, Status: domain.EventPlanned, StartTime: day}
}

func formDue(id int64, title string, day time.Time) *domain.Form {
	return &domain.Form{ID: id, Title: title, Status: domain.FormPublished, SubmissionDeadline: &day}
}

func TestDeriveNotificationsSingleEventToday(t *testing.T) {
	events := []*domain.Event{
		eventOn(1, "Youth Assembly", time.Date(2024, time.June, 10, 15, 0, 0, 0, pht)),
	}

	got := DeriveNotifications(events, nil, notifyNow, pht)
	require.Len(t, got, 1)
	assert.Equal(t, NotifyInfo, got[0].Kind)
	assert.Equal(t, `"Youth Assembly" is scheduled today`, got[0].Message)
	assert.Equal(t, notifyNow, got[0].GeneratedAt)
}

func TestDeriveNotificationsAggregatesMultipleToday(t *testing.T) {
	events := []*domain.Event{
		eventOn(1, "Morning Run", time.Date(2024, time.June, 10, 6, 0, 0, 0, pht)),
		eventOn(2, "Evening Forum", time.Date(2024, time.June, 10, 18, 0, 0, 0, pht)),
	}

	got := DeriveNotifications(events, nil, notifyNow, pht)
	require.Len(t, got, 1)
	assert.Equal(t, "2 events scheduled today", got[0].Message)
}

func TestDeriveNotificationsDeadlineWindow(t *testing.T) {
	tests := []struct {
		daysAhead int
		want      int
	}{
		{daysAhead: -1, want: 0},
		{daysAhead: 0, want: 0}, // due today is excluded by the (0, 3] rule
		{daysAhead: 1, want: 1},
		{daysAhead: 3, want: 1},
		{daysAhead: 4, want: 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d days ahead", tt.daysAhead), func(t *testing.T) {
			due := time.Date(2024, time.June, 10+tt.daysAhead, 0, 0, 0, 0, pht)
			got := DeriveNotifications(nil, []*domain.Form{formDue(1, "Grant Form", due)}, notifyNow, pht)
			require.Len(t, got, tt.want)
			if tt.want == 1 {
				assert.Equal(t, NotifyWarning, got[0].Kind)
				assert.Equal(t, fmt.Sprintf(`"Grant Form" closes in %d day(s)`, tt.daysAhead), got[0].Message)
			}
		})
	}
}

func TestDeriveNotificationsUpcomingWindow(t *testing.T) {
	events := []*domain.Event{
		eventOn(1, "In A Week", time.Date(2024, time.June, 17, 10, 0, 0, 0, pht)),
		eventOn(2, "Too Far", time.Date(2024, time.June, 18, 10, 0, 0, 0, pht)),
		eventOn(3, "Yesterday", time.Date(2024, time.June, 9, 10, 0, 0, 0, pht)),
	}

	got := DeriveNotifications(events, nil, notifyNow, pht)
	require.Len(t, got, 1)
	assert.Equal(t, `"In A Week" is in 7 day(s)`, got[0].Message)
}

func TestDeriveNotificationsPrecedenceOrder(t *testing.T) {
	events := []*domain.Event{
		eventOn(1, "Upcoming Event", time.Date(2024, time.June, 13, 10, 0, 0, 0, pht)),
		eventOn(2, "Today Event", time.Date(2024, time.June, 10, 10, 0, 0, 0, pht)),
	}
	forms := []*domain.Form{
		formDue(3, "Closing Form", time.Date(2024, time.June, 12, 0, 0, 0, 0, pht)),
	}

	got := DeriveNotifications(events, forms, notifyNow, pht)
	require.Len(t, got, 3)
	assert.Contains(t, got[0].Message, "Today Event")
	assert.Contains(t, got[1].Message, "Closing Form")
	assert.Contains(t, got[2].Message, "Upcoming Event")
}

func TestDeriveNotificationsCappedAtFive(t *testing.T) {
	var events []*domain.Event
	for i := 0; i < 20; i++ {
		events = append(events, eventOn(int64(i+1), fmt.Sprintf("Event %d", i+1),
			time.Date(2024, time.June, 11+i%6, 10, 0, 0, 0, pht)))
	}
	var forms []*domain.Form
	for i := 0; i < 10; i++ {
		forms = append(forms, formDue(int64(100+i), fmt.Sprintf("Form %d", i+1),
			time.Date(2024, time.June, 12, 0, 0, 0, 0, pht)))
	}

	got := DeriveNotifications(events, forms, notifyNow, pht)
	assert.Len(t, got, MaxNotifications)
}

func TestDeriveNotificationsDeterministic(t *testing.T) {
	events := []*domain.Event{
		eventOn(1, "A", time.Date(2024, time.June, 10, 10, 0, 0, 0, pht)),
		eventOn(2, "B", time.Date(2024, time.June, 12, 10, 0, 0, 0, pht)),
	}
	forms := []*domain.Form{
		formDue(3, "C", time.Date(2024, time.June, 11, 0, 0, 0, 0, pht)),
	}

	first := DeriveNotifications(events, forms, notifyNow, pht)
	second := DeriveNotifications(events, forms, notifyNow, pht)
	assert.Equal(t, first, second)
}

func TestDeriveNotificationsDeduplicates(t *testing.T) {
	f := formDue(1, "Duplicate Form", time.Date(2024, time.June, 12, 0, 0, 0, 0, pht))
	got := DeriveNotifications(nil, []*domain.Form{f, f}, notifyNow, pht)
	assert.Len(t, got, 1)
}
