package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/russelescultura/sk-barangay-sub001/internal/domain"
)

func datePtr(t time.Time) *time.Time { return &t }

func TestAggregateKeepsEveryItem(t *testing.T) {
	now := time.Date(2024, time.June, 10, 12, 0, 0, 0, pht)

	programs := []*domain.Program{
		{ID: 1, Title: "Sports Clinic", Status: domain.ProgramActive,
			StartDate: time.Date(2024, time.June, 1, 0, 0, 0, 0, pht),
			EndDate:   time.Date(2024, time.June, 30, 0, 0, 0, 0, pht)},
	}
	events := []*domain.Event{
		{ID: 10, Title: "Opening Parade", Status: domain.EventPlanned,
			StartTime: time.Date(2024, time.June, 12, 9, 0, 0, 0, pht)},
		{ID: 11, Title: "Coastal Cleanup", Status: domain.EventPlanned,
			StartTime: time.Date(2024, time.June, 12, 14, 0, 0, 0, pht)},
	}
	forms := []*domain.Form{
		{ID: 20, Title: "Scholarship Application", Status: domain.FormPublished,
			SubmissionDeadline: datePtr(time.Date(2024, time.June, 14, 0, 0, 0, 0, pht))},
		{ID: 21, Title: "Volunteer Sign-up", Status: domain.FormDraft}, // no deadline, no timeline entry
	}

	items := Aggregate(programs, events, forms, now, pht)
	assert.Len(t, items, 4, "one program + two events + one deadline-bearing form")
}

func TestAggregateProgramAllDayRange(t *testing.T) {
	now := time.Date(2024, time.June, 10, 12, 0, 0, 0, pht)
	programs := []*domain.Program{
		{ID: 1, Title: "Feeding Program", Status: domain.ProgramActive,
			StartDate: time.Date(2024, time.June, 3, 0, 0, 0, 0, pht),
			EndDate:   time.Date(2024, time.June, 7, 0, 0, 0, 0, pht),
			TargetAudience: "Out-of-school youth"},
	}

	items := Aggregate(programs, nil, nil, now, pht)
	require.Len(t, items, 1)

	it := items[0]
	assert.Equal(t, SourceProgram, it.SourceKind)
	assert.True(t, it.AllDay)
	assert.Equal(t, time.Date(2024, time.June, 3, 0, 0, 0, 0, pht), it.Start)
	require.NotNil(t, it.End)
	assert.Equal(t, time.Date(2024, time.June, 8, 0, 0, 0, 0, pht), *it.End, "exclusive end is the day after the last date")
	assert.Equal(t, "green", it.Tag)
	assert.Equal(t, "Out-of-school youth", it.Metadata["targetAudience"])
}

func TestAggregateSameDayCollisionAnnotation(t *testing.T) {
	now := time.Date(2024, time.June, 10, 12, 0, 0, 0, pht)
	events := []*domain.Event{
		{ID: 2, Title: "Afternoon Forum", Status: domain.EventPlanned,
			StartTime: time.Date(2024, time.June, 12, 14, 0, 0, 0, pht)},
		{ID: 1, Title: "Morning Assembly", Status: domain.EventPlanned,
			StartTime: time.Date(2024, time.June, 12, 8, 0, 0, 0, pht)},
		{ID: 3, Title: "Next Day Session", Status: domain.EventPlanned,
			StartTime: time.Date(2024, time.June, 13, 8, 0, 0, 0, pht)},
	}

	items := Aggregate(nil, events, nil, now, pht)
	require.Len(t, items, 3)

	assert.Equal(t, "Morning Assembly", items[0].Title)
	assert.Equal(t, 1, items[0].DayIndex)
	assert.Equal(t, 2, items[0].DayTotal)

	assert.Equal(t, "Afternoon Forum", items[1].Title)
	assert.Equal(t, 2, items[1].DayIndex)
	assert.Equal(t, 2, items[1].DayTotal)

	assert.Equal(t, "Next Day Session", items[2].Title)
	assert.Equal(t, 1, items[2].DayIndex)
	assert.Equal(t, 1, items[2].DayTotal)
}

func TestAggregateDeadlineUrgency(t *testing.T) {
	now := time.Date(2024, time.June, 10, 12, 0, 0, 0, pht)
	forms := []*domain.Form{
		{ID: 1, Title: "Due Soon", Status: domain.FormPublished,
			SubmissionDeadline: datePtr(time.Date(2024, time.June, 17, 0, 0, 0, 0, pht))},
		{ID: 2, Title: "Due Later", Status: domain.FormPublished,
			SubmissionDeadline: datePtr(time.Date(2024, time.June, 18, 0, 0, 0, 0, pht))},
		{ID: 3, Title: "Already Past", Status: domain.FormClosed,
			SubmissionDeadline: datePtr(time.Date(2024, time.June, 9, 0, 0, 0, 0, pht))},
	}

	items := Aggregate(nil, nil, forms, now, pht)
	require.Len(t, items, 3)

	byID := make(map[int64]TimelineItem)
	for _, it := range items {
		byID[it.ID] = it
	}
	assert.True(t, byID[1].Urgent, "seven days out is urgent")
	assert.False(t, byID[2].Urgent, "eight days out is not")
	assert.False(t, byID[3].Urgent, "past deadlines are not urgent")
	assert.True(t, byID[1].AllDay)
}

func TestAggregateSortedAcrossSources(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, pht)
	programs := []*domain.Program{
		{ID: 1, Title: "P", Status: domain.ProgramActive,
			StartDate: time.Date(2024, time.June, 5, 0, 0, 0, 0, pht),
			EndDate:   time.Date(2024, time.June, 6, 0, 0, 0, 0, pht)},
	}
	events := []*domain.Event{
		{ID: 2, Title: "E", Status: domain.EventPlanned,
			StartTime: time.Date(2024, time.June, 5, 10, 0, 0, 0, pht)},
	}
	forms := []*domain.Form{
		{ID: 3, Title: "F", Status: domain.FormPublished,
			SubmissionDeadline: datePtr(time.Date(2024, time.June, 4, 0, 0, 0, 0, pht))},
	}

	items := Aggregate(programs, events, forms, now, pht)
	require.Len(t, items, 3)
	assert.Equal(t, SourceDeadline, items[0].SourceKind)
	assert.Equal(t, SourceProgram, items[1].SourceKind, "all-day program sorts before the mid-morning event")
	assert.Equal(t, SourceEvent, items[2].SourceKind)
}
