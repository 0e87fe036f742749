package host

import (
	"regexp"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseEventDate accepts a YYYY-MM-DD calendar date.
func ParseEventDate(raw string) (time.Time, bool) {
	if !datePattern.MatchString(raw) {
		return time.Time{}, false
	}
	d, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// DateFromEventCode returns the date after the last "--" of an event code.
func DateFromEventCode(eventCode string) (string, bool) {
	parts := strings.Split(eventCode, "--")
	date := parts[len(parts)-1]
	if _, ok := ParseEventDate(date); !ok {
		return "", false
	}
	return date, true
}

func EventCode(venueSlug, eventDate string) string {
	return venueSlug + "--" + eventDate
}

// Today is the calendar date of now in loc.
func Today(now time.Time, loc *time.Location) string {
	return now.In(loc).Format(dateLayout)
}

// LocalStartAt returns the instant the wall clock in loc reads hour:00 on the
// given date. The offset is taken at a trial instant and checked once more
// at the corrected instant, so a DST change between the two is honoured.
func LocalStartAt(date time.Time, hour int, loc *time.Location) time.Time {
	naive := time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, time.UTC)
	off1 := zoneOffset(naive, loc)
	actual := naive.Add(-off1)
	if off2 := zoneOffset(actual, loc); off2 != off1 {
		actual = naive.Add(-off2)
	}
	return actual
}

// StartAt7PM is LocalStartAt at the usual 19:00 start.
func StartAt7PM(date time.Time, loc *time.Location) time.Time {
	return LocalStartAt(date, 19, loc)
}

// zoneOffset reads t's wall clock in loc as if it were UTC and returns how far
// that is from t.
func zoneOffset(t time.Time, loc *time.Location) time.Duration {
	wall := t.In(loc)
	asUTC := time.Date(wall.Year(), wall.Month(), wall.Day(), wall.Hour(), wall.Minute(), wall.Second(), 0, time.UTC)
	return asUTC.Sub(t)
}
