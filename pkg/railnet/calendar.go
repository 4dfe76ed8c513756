package railnet

import "time"

// MatchDate reports whether the pattern includes the given date's weekday.
// A fully unset pattern means no circulation information was provided at all,
// in which case we fail open and assume the train runs rather than hide it.
func (p WeeklyCirculationPattern) MatchDate(date time.Time) bool {
	if p.IsZero() {
		return true
	}

	switch date.Weekday() {
	case time.Monday:
		return p.Monday
	case time.Tuesday:
		return p.Tuesday
	case time.Wednesday:
		return p.Wednesday
	case time.Thursday:
		return p.Thursday
	case time.Friday:
		return p.Friday
	case time.Saturday:
		return p.Saturday
	case time.Sunday:
		return p.Sunday
	}

	return false
}

// RunsOn is the circulation calendar check used by the board path. The
// holiday/Sunday override flags and explicit override dates are carried on the
// entry but only the weekly pattern decides here.
func (s *ScheduleEntry) RunsOn(date time.Time) bool {
	return s.Circulation.MatchDate(date)
}
