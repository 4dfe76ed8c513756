package railnet

import (
	"strings"
	"time"
)

const YearMonthDayFormat = "2006-01-02"

var flexibleDateFormats = []string{
	YearMonthDayFormat,
	"02/01/2006",
	"02-01-2006",
	"02.01.2006",
}

// ParseFlexibleDate attempts the collaborator date formats in order: ISO,
// DD/MM/YYYY, DD-MM-YYYY, DD.MM.YYYY, a leading ISO prefix on a longer
// string, then RFC3339.
func ParseFlexibleDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, format := range flexibleDateFormats {
		if parsed, err := time.Parse(format, value); err == nil {
			return parsed, true
		}
	}

	if len(value) > len(YearMonthDayFormat) {
		if parsed, err := time.Parse(YearMonthDayFormat, value[:len(YearMonthDayFormat)]); err == nil {
			return parsed, true
		}
	}

	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, true
	}

	return time.Time{}, false
}

var weekdayAbbreviations = map[string]time.Weekday{
	"lun": time.Monday,
	"mar": time.Tuesday,
	"mer": time.Wednesday,
	"jeu": time.Thursday,
	"ven": time.Friday,
	"sam": time.Saturday,
	"dim": time.Sunday,
}

// MatchesWeekday reports whether value names the given weekday. Accepts the
// abbreviations lun..dim in any case, and full French weekday names via their
// first three letters.
func MatchesWeekday(value string, weekday time.Weekday) bool {
	value = strings.ToLower(strings.TrimSpace(value))
	if len(value) > 3 {
		value = value[:3]
	}

	expected, known := weekdayAbbreviations[value]
	return known && expected == weekday
}

func SameCalendarDay(a time.Time, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
