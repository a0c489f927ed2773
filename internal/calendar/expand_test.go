package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/russelescultura/sk-barangay-sub001/internal/domain"
)

var pht = time.FixedZone("PHT", 8*60*60)

func mustSchedule(t *testing.T, raw domain.ProgramSchedule) Schedule {
	t.Helper()
	s, err := ParseSchedule(raw)
	require.NoError(t, err)
	return s
}

// January 2024 starts on a Monday; with a weekly Monday/Wednesday schedule
// and January 15 excepted, querying [Jan 1, Jan 31) yields exactly eight
// occurrences.
func TestExpandWeeklyReferenceCalendar(t *testing.T) {
	s := mustSchedule(t, domain.ProgramSchedule{
		Type:       "RECURRING",
		StartDate:  "2024-01-01",
		EndDate:    "2024-01-31",
		StartTime:  "09:00",
		EndTime:    "10:00",
		Frequency:  "WEEKLY",
		DaysOfWeek: []string{"MONDAY", "WEDNESDAY"},
		Exceptions: []string{"2024-01-15"},
	})

	got := Expand(s, NewDate(2024, time.January, 1), NewDate(2024, time.January, 31), pht)

	want := []Date{
		NewDate(2024, time.January, 1),
		NewDate(2024, time.January, 3),
		NewDate(2024, time.January, 8),
		NewDate(2024, time.January, 10),
		NewDate(2024, time.January, 17),
		NewDate(2024, time.January, 22),
		NewDate(2024, time.January, 24),
		NewDate(2024, time.January, 29),
	}
	require.Len(t, got, 8)
	for i, occ := range got {
		assert.Equal(t, want[i], occ.Date)
		assert.Equal(t, occ.Date.At(s.StartTime, pht), occ.Start)
		assert.Equal(t, occ.Date.At(s.EndTime, pht), occ.End)
	}
}

func TestExpandWeeklyWeekdaySetAndSpacing(t *testing.T) {
	s := mustSchedule(t, domain.ProgramSchedule{
		Type:       "RECURRING",
		StartDate:  "2024-01-01",
		EndDate:    "2024-06-30",
		StartTime:  "18:00",
		EndTime:    "20:00",
		Frequency:  "WEEKLY",
		DaysOfWeek: []string{"TUESDAY", "SATURDAY"},
	})

	got := Expand(s, NewDate(2024, time.February, 1), NewDate(2024, time.April, 1), pht)
	require.NotEmpty(t, got)

	lastByWeekday := make(map[time.Weekday]Date)
	for _, occ := range got {
		wd := occ.Date.Weekday()
		assert.Contains(t, []time.Weekday{time.Tuesday, time.Saturday}, wd)
		if prev, ok := lastByWeekday[wd]; ok {
			assert.Equal(t, 7, DaysBetween(prev, occ.Date), "interval 1 means consecutive same weekdays are 7 days apart")
		}
		lastByWeekday[wd] = occ.Date
	}
}

func TestExpandOneTime(t *testing.T) {
	raw := domain.ProgramSchedule{
		Type:      "ONE_TIME",
		StartDate: "2024-05-20",
		EndDate:   "2024-05-20",
		StartTime: "08:00",
		EndTime:   "12:00",
	}
	s := mustSchedule(t, raw)

	inWindow := Expand(s, NewDate(2024, time.May, 1), NewDate(2024, time.June, 1), pht)
	require.Len(t, inWindow, 1)
	assert.Equal(t, NewDate(2024, time.May, 20), inWindow[0].Date)
	assert.Equal(t, time.Date(2024, time.May, 20, 8, 0, 0, 0, pht), inWindow[0].Start)

	outOfWindow := Expand(s, NewDate(2024, time.June, 1), NewDate(2024, time.July, 1), pht)
	assert.Empty(t, outOfWindow)

	raw.Exceptions = []string{"2024-05-20"}
	excepted := Expand(mustSchedule(t, raw), NewDate(2024, time.May, 1), NewDate(2024, time.June, 1), pht)
	assert.Empty(t, excepted)
}

func TestExpandDailyInterval(t *testing.T) {
	s := mustSchedule(t, domain.ProgramSchedule{
		Type:              "RECURRING",
		StartDate:         "2024-01-01",
		EndDate:           "2024-01-31",
		StartTime:         "07:00",
		EndTime:           "08:00",
		Frequency:         "DAILY",
		FrequencyInterval: 3,
		DaysOfWeek:        []string{"MONDAY"}, // required by validation, ignored by DAILY matching
	})

	got := Expand(s, NewDate(2024, time.January, 1), NewDate(2024, time.January, 14), pht)

	var days []int
	for _, occ := range got {
		days = append(days, occ.Date.Day)
	}
	assert.Equal(t, []int{1, 4, 7, 10, 13}, days)
}

func TestExpandBiWeeklyMatchesWeeklyIntervalTwo(t *testing.T) {
	base := domain.ProgramSchedule{
		Type:       "RECURRING",
		StartDate:  "2024-01-01",
		EndDate:    "2024-03-31",
		StartTime:  "10:00",
		EndTime:    "11:00",
		DaysOfWeek: []string{"MONDAY"},
	}

	biWeekly := base
	biWeekly.Frequency = "BI_WEEKLY"

	weeklyTwo := base
	weeklyTwo.Frequency = "WEEKLY"
	weeklyTwo.FrequencyInterval = 2

	from, to := NewDate(2024, time.January, 1), NewDate(2024, time.April, 1)
	a := Expand(mustSchedule(t, biWeekly), from, to, pht)
	b := Expand(mustSchedule(t, weeklyTwo), from, to, pht)
	require.Equal(t, a, b)

	// Anchored on the start week: Jan 1, 15, 29, ...
	require.NotEmpty(t, a)
	assert.Equal(t, NewDate(2024, time.January, 1), a[0].Date)
	assert.Equal(t, NewDate(2024, time.January, 15), a[1].Date)
}

func TestExpandMonthlySkipsShortMonths(t *testing.T) {
	s := mustSchedule(t, domain.ProgramSchedule{
		Type:      "RECURRING",
		StartDate: "2024-01-31",
		EndDate:   "2024-12-31",
		StartTime: "09:00",
		EndTime:   "10:00",
		Frequency: "MONTHLY",
	})

	got := Expand(s, NewDate(2024, time.January, 1), NewDate(2024, time.July, 1), pht)

	want := []Date{
		NewDate(2024, time.January, 31),
		NewDate(2024, time.March, 31),
		NewDate(2024, time.May, 31),
	}
	require.Len(t, got, len(want))
	for i, occ := range got {
		assert.Equal(t, want[i], occ.Date, "February, April and June lack a 31st and are skipped, never rolled over")
	}
}

func TestExpandCustomFollowsWeeklySemantics(t *testing.T) {
	custom := validRecurringRaw()
	custom.Frequency = "CUSTOM"

	weekly := validRecurringRaw()

	from, to := NewDate(2024, time.January, 1), NewDate(2024, time.February, 1)
	assert.Equal(t,
		Expand(mustSchedule(t, weekly), from, to, pht),
		Expand(mustSchedule(t, custom), from, to, pht),
	)
}

func TestExpandExceptionsRemoveExactlyExceptedDates(t *testing.T) {
	raw := domain.ProgramSchedule{
		Type:       "RECURRING",
		StartDate:  "2024-01-01",
		EndDate:    "2024-02-29",
		StartTime:  "09:00",
		EndTime:    "10:00",
		Frequency:  "WEEKLY",
		DaysOfWeek: []string{"MONDAY", "FRIDAY"},
	}
	withoutExceptions := mustSchedule(t, raw)

	raw.Exceptions = []string{"2024-01-08", "2024-02-09", "2024-02-14"} // Feb 14 is a Wednesday and never matches
	withExceptions := mustSchedule(t, raw)

	from, to := NewDate(2024, time.January, 1), NewDate(2024, time.March, 1)
	all := Expand(withoutExceptions, from, to, pht)
	kept := Expand(withExceptions, from, to, pht)

	removed := make(map[Date]bool)
	for _, occ := range all {
		removed[occ.Date] = true
	}
	for _, occ := range kept {
		delete(removed, occ.Date)
	}

	assert.Len(t, kept, len(all)-2)
	assert.Equal(t, map[Date]bool{
		NewDate(2024, time.January, 8): true,
		NewDate(2024, time.February, 9): true,
	}, removed)
}

func TestExpandIsIdempotent(t *testing.T) {
	s := mustSchedule(t, validRecurringRaw())
	from, to := NewDate(2024, time.January, 1), NewDate(2024, time.February, 1)

	first := Expand(s, from, to, pht)
	second := Expand(s, from, to, pht)
	assert.Equal(t, first, second)
}

func TestExpandFirstOccurrenceMayPostdateStart(t *testing.T) {
	// 2024-01-02 is a Tuesday; the schedule only selects Fridays.
	s := mustSchedule(t, domain.ProgramSchedule{
		Type:       "RECURRING",
		StartDate:  "2024-01-02",
		EndDate:    "2024-01-31",
		StartTime:  "15:00",
		EndTime:    "17:00",
		Frequency:  "WEEKLY",
		DaysOfWeek: []string{"FRIDAY"},
	})

	got := Expand(s, NewDate(2024, time.January, 1), NewDate(2024, time.February, 1), pht)
	require.NotEmpty(t, got)
	assert.Equal(t, NewDate(2024, time.January, 5), got[0].Date)
}

func TestExpandEmptyResultIsNotAnError(t *testing.T) {
	s := mustSchedule(t, validRecurringRaw())

	// Window entirely after the schedule's end.
	got := Expand(s, NewDate(2025, time.January, 1), NewDate(2025, time.February, 1), pht)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	// Degenerate window.
	got = Expand(s, NewDate(2024, time.January, 10), NewDate(2024, time.January, 10), pht)
	assert.Empty(t, got)
}
