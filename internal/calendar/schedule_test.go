package calendar

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/russelescultura/sk-barangay-sub001/internal/domain"
)

func validRecurringRaw() domain.ProgramSchedule {
	return domain.ProgramSchedule{
		Type:       "RECURRING",
		StartDate:  "2024-01-01",
		EndDate:    "2024-01-31",
		StartTime:  "09:00",
		EndTime:    "10:00",
		Frequency:  "WEEKLY",
		DaysOfWeek: []string{"MONDAY", "WEDNESDAY"},
	}
}

func TestParseScheduleValid(t *testing.T) {
	s, err := ParseSchedule(validRecurringRaw())
	require.NoError(t, err)

	assert.Equal(t, Recurring, s.Type)
	assert.Equal(t, Weekly, s.Frequency)
	assert.Equal(t, 1, s.Interval, "absent interval defaults to 1")
	assert.True(t, s.Days.Has(time.Monday))
	assert.True(t, s.Days.Has(time.Wednesday))
	assert.False(t, s.Days.Has(time.Friday))
	assert.Equal(t, NewDate(2024, time.January, 1), s.StartDate)
	assert.Equal(t, "09:00", s.StartTime.String())
}

func TestParseScheduleOneTimeIgnoresFrequency(t *testing.T) {
	raw := domain.ProgramSchedule{
		Type:      "ONE_TIME",
		StartDate: "2024-03-15",
		EndDate:   "2024-03-15",
		StartTime: "14:00",
		EndTime:   "16:30",
	}

	s, err := ParseSchedule(raw)
	require.NoError(t, err)
	assert.Equal(t, OneTime, s.Type)
	assert.True(t, s.Days.IsEmpty())
}

func TestParseScheduleExceptions(t *testing.T) {
	raw := validRecurringRaw()
	raw.Exceptions = []string{"2024-01-15", "2024-01-17"}

	s, err := ParseSchedule(raw)
	require.NoError(t, err)
	assert.True(t, s.excepted(NewDate(2024, time.January, 15)))
	assert.True(t, s.excepted(NewDate(2024, time.January, 17)))
	assert.False(t, s.excepted(NewDate(2024, time.January, 16)))
}

func TestParseScheduleMonthlyNeedsNoWeekdays(t *testing.T) {
	raw := validRecurringRaw()
	raw.Frequency = "MONTHLY"
	raw.DaysOfWeek = nil

	_, err := ParseSchedule(raw)
	assert.NoError(t, err)
}

func TestParseScheduleRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.ProgramSchedule)
		field  string
	}{
		{
			name:   "end date before start date",
			mutate: func(r *domain.ProgramSchedule) { r.EndDate = "2023-12-31" },
			field:  "endDate",
		},
		{
			name:   "end time equal to start time",
			mutate: func(r *domain.ProgramSchedule) { r.EndTime = "09:00" },
			field:  "endTime",
		},
		{
			name:   "end time before start time",
			mutate: func(r *domain.ProgramSchedule) { r.EndTime = "08:00" },
			field:  "endTime",
		},
		{
			name:   "weekly without weekdays",
			mutate: func(r *domain.ProgramSchedule) { r.DaysOfWeek = nil },
			field:  "daysOfWeek",
		},
		{
			name:   "negative interval",
			mutate: func(r *domain.ProgramSchedule) { r.FrequencyInterval = -1 },
			field:  "frequencyInterval",
		},
		{
			name:   "malformed start date",
			mutate: func(r *domain.ProgramSchedule) { r.StartDate = "01/15/2024" },
			field:  "startDate",
		},
		{
			name:   "malformed start time",
			mutate: func(r *domain.ProgramSchedule) { r.StartTime = "9am" },
			field:  "startTime",
		},
		{
			name:   "malformed exception date",
			mutate: func(r *domain.ProgramSchedule) { r.Exceptions = []string{"next monday"} },
			field:  "exceptions",
		},
		{
			name:   "unknown schedule type",
			mutate: func(r *domain.ProgramSchedule) { r.Type = "SOMETIMES" },
			field:  "scheduleType",
		},
		{
			name:   "unknown frequency",
			mutate: func(r *domain.ProgramSchedule) { r.Frequency = "YEARLY" },
			field:  "frequency",
		},
		{
			name:   "unknown weekday token",
			mutate: func(r *domain.ProgramSchedule) { r.DaysOfWeek = []string{"MOONDAY"} },
			field:  "daysOfWeek",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRecurringRaw()
			tt.mutate(&raw)

			_, err := ParseSchedule(raw)
			require.Error(t, err)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr), "expected a ValidationError, got %T", err)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestDateArithmetic(t *testing.T) {
	d := NewDate(2024, time.January, 31)

	assert.Equal(t, NewDate(2024, time.February, 1), d.AddDays(1))
	assert.Equal(t, NewDate(2024, time.February, 29), d.AddDays(29), "2024 is a leap year")
	assert.Equal(t, 31, DaysBetween(NewDate(2024, time.January, 1), NewDate(2024, time.February, 1)))
	assert.Equal(t, -1, DaysBetween(NewDate(2024, time.January, 1), NewDate(2023, time.December, 31)))
	assert.Equal(t, time.Monday, NewDate(2024, time.January, 1).Weekday())
}
