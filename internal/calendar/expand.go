package calendar

import "time"

// Occurrence is one concrete instance produced by expanding a schedule.
type Occurrence struct {
	Date  Date      `json:"date"`
	Start time.Time `json:"startInstant"`
	End   time.Time `json:"endInstant"`
}

// Expand maps a schedule and a half-open date window [windowStart,
// windowEnd) to the ordered sequence of occurrences inside that window. The
// schedule's own end date stays inclusive; only the query window end is
// exclusive. Expand is stateless and restartable: identical inputs always
// yield identical output, and zero matches is a valid empty result, not an
// error.
func Expand(s Schedule, windowStart, windowEnd Date, loc *time.Location) []Occurrence {
	occurrences := []Occurrence{}

	if !windowStart.Before(windowEnd) {
		return occurrences
	}

	if s.Type == OneTime {
		d := s.StartDate
		if !d.Before(windowStart) && d.Before(windowEnd) && !s.excepted(d) {
			occurrences = append(occurrences, makeOccurrence(s, d, loc))
		}
		return occurrences
	}

	from := s.StartDate
	if windowStart.After(from) {
		from = windowStart
	}
	to := s.EndDate
	if last := windowEnd.AddDays(-1); last.Before(to) {
		to = last
	}

	for d := from; !d.After(to); d = d.AddDays(1) {
		if !matches(s, d) || s.excepted(d) {
			continue
		}
		occurrences = append(occurrences, makeOccurrence(s, d, loc))
	}

	return occurrences
}

// matches reports whether a recurring schedule has an occurrence on d.
// Callers guarantee d >= s.StartDate, so all distances are non-negative.
func matches(s Schedule, d Date) bool {
	switch s.Frequency {
	case Daily:
		return DaysBetween(s.StartDate, d)%s.Interval == 0
	case Weekly, BiWeekly, Custom:
		// CUSTOM has no expansion semantics of its own and follows the
		// weekly matching rule.
		if !s.Days.Has(d.Weekday()) {
			return false
		}
		weeks := DaysBetween(weekStart(s.StartDate), weekStart(d)) / 7
		return weeks%s.effectiveWeekInterval() == 0
	case Monthly:
		if d.Day != s.StartDate.Day {
			// Months lacking the anchor day-of-month are skipped, never
			// rolled over.
			return false
		}
		months := (d.Year-s.StartDate.Year)*12 + int(d.Month) - int(s.StartDate.Month)
		return months%s.Interval == 0
	}
	return false
}

// effectiveWeekInterval is the number of weeks between matching weeks.
// BI_WEEKLY is a fixed cadence of two and ignores the explicit interval;
// WEEKLY with interval 2 expresses the same thing.
func (s Schedule) effectiveWeekInterval() int {
	if s.Frequency == BiWeekly {
		return 2
	}
	return s.Interval
}

// weekStart returns the Monday on or before d. Week distance is measured
// between week starts so that a Wednesday and the following Monday land in
// adjacent weeks, not the same one.
func weekStart(d Date) Date {
	return d.AddDays(-((int(d.Weekday()) + 6) % 7))
}

func makeOccurrence(s Schedule, d Date, loc *time.Location) Occurrence {
	return Occurrence{
		Date:  d,
		Start: d.At(s.StartTime, loc),
		End:   d.At(s.EndTime, loc),
	}
}
