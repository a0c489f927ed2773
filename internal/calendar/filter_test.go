package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTimeline() []TimelineItem {
	programID := int64(1)
	end := time.Date(2024, time.June, 12, 17, 0, 0, 0, pht)
	return []TimelineItem{
		{SourceKind: SourceProgram, ID: 1, Title: "Sports Clinic", Status: "ACTIVE",
			Start: time.Date(2024, time.June, 1, 0, 0, 0, 0, pht)},
		{SourceKind: SourceEvent, ID: 10, Title: "Basketball Finals", Status: "PLANNED", ProgramID: &programID,
			Start: time.Date(2024, time.June, 12, 15, 0, 0, 0, pht), End: &end},
		{SourceKind: SourceEvent, ID: 11, Title: "Coastal Cleanup", Status: "CANCELLED",
			Start: time.Date(2024, time.June, 20, 7, 0, 0, 0, pht)},
		{SourceKind: SourceDeadline, ID: 20, Title: "Scholarship Application", Status: "PUBLISHED",
			Start: time.Date(2024, time.June, 14, 0, 0, 0, 0, pht)},
	}
}

func titles(items []TimelineItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Title
	}
	return out
}

func TestFilterEmptyImposesNoConstraint(t *testing.T) {
	items := sampleTimeline()
	got := Filter{}.Apply(items)
	assert.Equal(t, items, got, "absent clauses keep everything in order")
}

func TestFilterQueryIsCaseInsensitiveSubstring(t *testing.T) {
	got := Filter{Query: "clean"}.Apply(sampleTimeline())
	assert.Equal(t, []string{"Coastal Cleanup"}, titles(got))

	got = Filter{Query: "SPORTS"}.Apply(sampleTimeline())
	assert.Equal(t, []string{"Sports Clinic"}, titles(got))
}

func TestFilterKindAndStatusMembership(t *testing.T) {
	got := Filter{Kinds: []SourceKind{SourceEvent}}.Apply(sampleTimeline())
	assert.Equal(t, []string{"Basketball Finals", "Coastal Cleanup"}, titles(got))

	got = Filter{Statuses: []string{"PUBLISHED", "CANCELLED"}}.Apply(sampleTimeline())
	assert.Equal(t, []string{"Coastal Cleanup", "Scholarship Application"}, titles(got))
}

func TestFilterOwningProgram(t *testing.T) {
	got := Filter{ProgramIDs: []int64{1}}.Apply(sampleTimeline())
	// The program itself and the event that references it; the deadline and
	// the unaffiliated event have no owning program.
	assert.Equal(t, []string{"Sports Clinic", "Basketball Finals"}, titles(got))
}

func TestFilterInstantRange(t *testing.T) {
	rangeStart := time.Date(2024, time.June, 10, 0, 0, 0, 0, pht)
	got := Filter{RangeStart: &rangeStart}.Apply(sampleTimeline())
	assert.Equal(t, []string{"Basketball Finals", "Coastal Cleanup", "Scholarship Application"}, titles(got))

	rangeEnd := time.Date(2024, time.June, 12, 16, 0, 0, 0, pht)
	got = Filter{RangeEnd: &rangeEnd}.Apply(sampleTimeline())
	// Only items with an end are constrained by the range end; Basketball
	// Finals ends at 17:00 and falls out.
	assert.Equal(t, []string{"Sports Clinic", "Coastal Cleanup", "Scholarship Application"}, titles(got))
}

func TestFilterVisibilityTogglesShortCircuit(t *testing.T) {
	got := Filter{HideEvents: true, HideDeadlines: true}.Apply(sampleTimeline())
	assert.Equal(t, []string{"Sports Clinic"}, titles(got))

	// Hiding a kind wins even when another clause would select it.
	got = Filter{HidePrograms: true, Query: "sports"}.Apply(sampleTimeline())
	assert.Empty(t, got)
}

func TestFilterClausesCombineWithAnd(t *testing.T) {
	got := Filter{
		Kinds:    []SourceKind{SourceEvent},
		Statuses: []string{"PLANNED"},
		Query:    "basket",
	}.Apply(sampleTimeline())
	require.Len(t, got, 1)
	assert.Equal(t, "Basketball Finals", got[0].Title)
}
