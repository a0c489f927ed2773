package calendar

import (
	"fmt"
	"time"

	"github.com/russelescultura/sk-barangay-sub001/internal/domain"
)

type ScheduleType string

const (
	OneTime   ScheduleType = "ONE_TIME"
	Recurring ScheduleType = "RECURRING"
)

type Frequency string

const (
	Daily    Frequency = "DAILY"
	Weekly   Frequency = "WEEKLY"
	BiWeekly Frequency = "BI_WEEKLY"
	Monthly  Frequency = "MONTHLY"
	Custom   Frequency = "CUSTOM"
)

// Date is a civil calendar date with no time-of-day and no timezone. All
// date arithmetic in the calendar core happens on this type so that clock
// changes can never shift an occurrence onto a neighboring day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// At combines the date with a time-of-day into a concrete instant in loc.
func (d Date) At(tod TimeOfDay, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, tod.Hour(), tod.Minute(), 0, 0, loc)
}

func (d Date) Midnight(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

func (d Date) AddDays(n int) Date {
	return DateOf(time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC))
}

func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

func (d Date) After(o Date) bool {
	return o.Before(d)
}

func (d Date) epochDays() int {
	return int(time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Unix() / 86400)
}

// DaysBetween returns b minus a in whole days.
func DaysBetween(a, b Date) int {
	return b.epochDays() - a.epochDays()
}

// TimeOfDay is a civil wall-clock time encoded as minutes since midnight.
type TimeOfDay int

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// WeekdaySet is a bitmask over time.Weekday, Sunday = bit 0.
type WeekdaySet uint8

func (s WeekdaySet) Has(d time.Weekday) bool {
	return s&(1<<uint(d)) != 0
}

func (s WeekdaySet) IsEmpty() bool {
	return s == 0
}

func (s WeekdaySet) with(d time.Weekday) WeekdaySet {
	return s | 1<<uint(d)
}

var weekdayTokens = map[string]time.Weekday{
	"SUNDAY":    time.Sunday,
	"MONDAY":    time.Monday,
	"TUESDAY":   time.Tuesday,
	"WEDNESDAY": time.Wednesday,
	"THURSDAY":  time.Thursday,
	"FRIDAY":    time.Friday,
	"SATURDAY":  time.Saturday,
}

// Schedule is an immutable schedule definition. It is only constructed
// through ParseSchedule, which validates the raw user input once; edits on
// the caller's side go through ParseSchedule again and produce a new value.
type Schedule struct {
	Type       ScheduleType
	StartDate  Date
	EndDate    Date
	StartTime  TimeOfDay
	EndTime    TimeOfDay
	Frequency  Frequency
	Interval   int
	Days       WeekdaySet
	Exceptions map[Date]struct{}
	Note       string
}

// ValidationError reports a malformed schedule definition. It is returned to
// the caller verbatim and never auto-corrected.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// frequenciesRequiringDays lists the frequencies for which a non-empty
// weekday selection is mandatory. MONTHLY matches on day-of-month and
// ignores the selection entirely.
var frequenciesRequiringDays = map[Frequency]bool{
	Daily:    true,
	Weekly:   true,
	BiWeekly: true,
	Custom:   true,
}

// ParseSchedule validates a raw stored schedule definition and returns the
// immutable value the expander operates on. It is a pure function: no
// defaulting beyond frequencyInterval, no clock reads, no mutation of raw.
func ParseSchedule(raw domain.ProgramSchedule) (Schedule, error) {
	s := Schedule{Note: raw.CustomDescription}

	switch ScheduleType(raw.Type) {
	case OneTime, Recurring:
		s.Type = ScheduleType(raw.Type)
	default:
		return Schedule{}, invalid("scheduleType", "unknown schedule type %q", raw.Type)
	}

	var err error
	if s.StartDate, err = ParseDate(raw.StartDate); err != nil {
		return Schedule{}, invalid("startDate", "malformed date %q", raw.StartDate)
	}
	if s.EndDate, err = ParseDate(raw.EndDate); err != nil {
		return Schedule{}, invalid("endDate", "malformed date %q", raw.EndDate)
	}
	if s.EndDate.Before(s.StartDate) {
		return Schedule{}, invalid("endDate", "end date %s is before start date %s", s.EndDate, s.StartDate)
	}

	if s.StartTime, err = ParseTimeOfDay(raw.StartTime); err != nil {
		return Schedule{}, invalid("startTime", "malformed time %q", raw.StartTime)
	}
	if s.EndTime, err = ParseTimeOfDay(raw.EndTime); err != nil {
		return Schedule{}, invalid("endTime", "malformed time %q", raw.EndTime)
	}
	if s.EndTime <= s.StartTime {
		return Schedule{}, invalid("endTime", "end time %s must be after start time %s", s.EndTime, s.StartTime)
	}

	if s.Type == Recurring {
		switch Frequency(raw.Frequency) {
		case Daily, Weekly, BiWeekly, Monthly, Custom:
			s.Frequency = Frequency(raw.Frequency)
		default:
			return Schedule{}, invalid("frequency", "unknown frequency %q", raw.Frequency)
		}

		// An absent interval means the base cadence.
		s.Interval = int(raw.FrequencyInterval)
		if s.Interval == 0 {
			s.Interval = 1
		}
		if s.Interval < 1 {
			return Schedule{}, invalid("frequencyInterval", "interval must be at least 1, got %d", raw.FrequencyInterval)
		}

		for _, token := range raw.DaysOfWeek {
			wd, ok := weekdayTokens[token]
			if !ok {
				return Schedule{}, invalid("daysOfWeek", "unknown weekday %q", token)
			}
			s.Days = s.Days.with(wd)
		}
		if frequenciesRequiringDays[s.Frequency] && s.Days.IsEmpty() {
			return Schedule{}, invalid("daysOfWeek", "frequency %s requires at least one weekday", s.Frequency)
		}
	}

	if len(raw.Exceptions) > 0 {
		s.Exceptions = make(map[Date]struct{}, len(raw.Exceptions))
		for _, ex := range raw.Exceptions {
			d, err := ParseDate(ex)
			if err != nil {
				return Schedule{}, invalid("exceptions", "malformed date %q", ex)
			}
			s.Exceptions[d] = struct{}{}
		}
	}

	return s, nil
}

func (s Schedule) excepted(d Date) bool {
	_, ok := s.Exceptions[d]
	return ok
}
