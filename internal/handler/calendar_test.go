package handler

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/russelescultura/sk-barangay-sub001/internal/calendar"
)

var testZone = time.FixedZone("PHT", 8*60*60)

func filterFor(t *testing.T, target string) (calendar.Filter, error) {
	t.Helper()
	h := &Handler{location: testZone}
	return h.parseCalendarFilter(httptest.NewRequest("GET", target, nil))
}

func TestParseCalendarFilterDefaults(t *testing.T) {
	filter, err := filterFor(t, "/calendar")
	require.NoError(t, err)
	assert.Equal(t, calendar.Filter{}, filter)
}

func TestParseCalendarFilterLists(t *testing.T) {
	filter, err := filterFor(t, "/calendar?kinds=event,deadline&statuses=PLANNED,PUBLISHED&programIDs=1,3")
	require.NoError(t, err)

	assert.Equal(t, []calendar.SourceKind{calendar.SourceEvent, calendar.SourceDeadline}, filter.Kinds)
	assert.Equal(t, []string{"PLANNED", "PUBLISHED"}, filter.Statuses)
	assert.Equal(t, []int64{1, 3}, filter.ProgramIDs)
}

func TestParseCalendarFilterDateRangeIsInclusive(t *testing.T) {
	filter, err := filterFor(t, "/calendar?from=2024-06-01&to=2024-06-30")
	require.NoError(t, err)

	require.NotNil(t, filter.RangeStart)
	require.NotNil(t, filter.RangeEnd)
	assert.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, testZone), *filter.RangeStart)
	// An inclusive June 30 means the range end is July 1 midnight.
	assert.Equal(t, time.Date(2024, time.July, 1, 0, 0, 0, 0, testZone), *filter.RangeEnd)
}

func TestParseCalendarFilterVisibilityToggles(t *testing.T) {
	filter, err := filterFor(t, "/calendar?hidePrograms=true&hideDeadlines=true")
	require.NoError(t, err)

	assert.True(t, filter.HidePrograms)
	assert.False(t, filter.HideEvents)
	assert.True(t, filter.HideDeadlines)
}

func TestParseCalendarFilterRejections(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{name: "unknown kind", target: "/calendar?kinds=holiday"},
		{name: "non-numeric program ID", target: "/calendar?programIDs=abc"},
		{name: "malformed from date", target: "/calendar?from=06/01/2024"},
		{name: "malformed to date", target: "/calendar?to=someday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := filterFor(t, tt.target)
			assert.Error(t, err)
		})
	}
}
