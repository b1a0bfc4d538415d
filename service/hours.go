package services

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var hoursPattern = regexp.MustCompile(`(?i)(\d+):(\d+)\s*(AM|PM)\s*-\s*(\d+):(\d+)\s*(AM|PM)`)

// IsOpenAt reports whether now falls within the "H:MM AM/PM - H:MM
// AM/PM" range, inclusive of both endpoints. Strings that do not match
// the pattern (empty, "24 hours", overnight ranges) default to open.
func IsOpenAt(openingHours string, now time.Time) bool {
	if openingHours == "" {
		return true
	}
	m := hoursPattern.FindStringSubmatch(openingHours)
	if m == nil {
		return true
	}

	openMinutes := toMinutesSinceMidnight(m[1], m[2], m[3])
	closeMinutes := toMinutesSinceMidnight(m[4], m[5], m[6])
	current := now.Hour()*60 + now.Minute()

	return current >= openMinutes && current <= closeMinutes
}

// toMinutesSinceMidnight converts a 12-hour clock reading to minutes
// since midnight. Only hour value 12 is special-cased; out-of-range
// hours pass through arithmetically.
func toMinutesSinceMidnight(hourStr, minStr, period string) int {
	hour, _ := strconv.Atoi(hourStr)
	min, _ := strconv.Atoi(minStr)
	total := hour*60 + min
	if strings.EqualFold(period, "PM") && hour != 12 {
		total += 12 * 60
	}
	if strings.EqualFold(period, "AM") && hour == 12 {
		total -= 12 * 60
	}
	return total
}
