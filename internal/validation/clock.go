package validation

import (
	"fmt"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// clockLayouts covers the clock formats planner models actually emit.
// 24-hour first: "8:00 PM" fails the 24-hour layout on its trailing
// meridiem, so ordering is safe.
var clockLayouts = []string{
	"15:04",
	"15:04:05",
	"3:04 PM",
	"3 PM",
}

// MinuteOfDay normalizes a 12-hour or 24-hour clock string to a
// minute-of-day integer. Ranges like "9:00 AM - 11:00 AM" resolve to
// their start. Returns ok=false when the string is not a clock time.
func MinuteOfDay(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}

	// take the start of a range
	for _, sep := range []string{"–", " - ", " to "} {
		if i := strings.Index(s, sep); i > 0 {
			s = s[:i]
			break
		}
	}

	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.TrimSuffix(s, ".")

	// "8PM" -> "8 PM"
	if len(s) > 2 && (strings.HasSuffix(s, "AM") || strings.HasSuffix(s, "PM")) &&
		!strings.HasSuffix(s[:len(s)-2], " ") {
		s = s[:len(s)-2] + " " + s[len(s)-2:]
	}

	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Hour()*60 + t.Minute(), true
		}
	}
	return 0, false
}

// FormatClock renders a minute-of-day value as a 24-hour clock string.
func FormatClock(minute int) string {
	minute = ((minute % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

func minuteGap(a, b int) int {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d
}
