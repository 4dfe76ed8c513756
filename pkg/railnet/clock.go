package railnet

import (
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// ParseClock turns a "HH:MM" (or "HH:MM:SS") display time into minutes since
// midnight. Times are stored as strings on the wire; lexicographic comparison
// of the zero-padded form is equivalent to chronological ordering.
func ParseClock(value string) (int, bool) {
	value = strings.TrimSpace(value)
	parts := strings.Split(value, ":")
	if len(parts) < 2 {
		return 0, false
	}

	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || hours < 0 || hours > 23 {
		return 0, false
	}

	minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, false
	}

	return hours*60 + minutes, true
}

func FormatClock(minutesSinceMidnight int) string {
	minutesSinceMidnight = ((minutesSinceMidnight % minutesPerDay) + minutesPerDay) % minutesPerDay

	return fmt.Sprintf("%02d:%02d", minutesSinceMidnight/60, minutesSinceMidnight%60)
}

// AddMinutesToClock shifts a display time by delta minutes, wrapping at 24h.
// An unparseable or absent time yields "" - the estimate is undefined.
func AddMinutesToClock(value string, delta int) string {
	minutes, ok := ParseClock(value)
	if !ok {
		return ""
	}

	return FormatClock(minutes + delta)
}
