package host

import (
	"testing"
	"time"
	_ "time/tzdata"
)

func mustLoc(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("load %s: %v", name, err)
	}
	return loc
}

func TestLocalStartAt(t *testing.T) {
	tests := []struct {
		name string
		zone string
		date string
		want string
	}{
		{name: "denver winter", zone: "America/Denver", date: "2025-12-22", want: "2025-12-23T02:00:00Z"},
		{name: "denver summer", zone: "America/Denver", date: "2025-07-04", want: "2025-07-05T01:00:00Z"},
		{name: "denver spring forward day", zone: "America/Denver", date: "2025-03-09", want: "2025-03-10T01:00:00Z"},
		{name: "denver fall back day", zone: "America/Denver", date: "2025-11-02", want: "2025-11-03T02:00:00Z"},
		// Sydney moves to daylight time between the trial instant and the
		// corrected one, so only the second pass lands on 19:00 local.
		{name: "sydney dst start eve", zone: "Australia/Sydney", date: "2025-10-04", want: "2025-10-04T09:00:00Z"},
		{name: "utc", zone: "UTC", date: "2025-01-01", want: "2025-01-01T19:00:00Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := mustLoc(t, tt.zone)
			date, ok := ParseEventDate(tt.date)
			if !ok {
				t.Fatalf("parse %s", tt.date)
			}
			got := StartAt7PM(date, loc)
			if got.UTC().Format(time.RFC3339) != tt.want {
				t.Fatalf("start = %s, want %s", got.UTC().Format(time.RFC3339), tt.want)
			}
			local := got.In(loc)
			if local.Hour() != 19 || local.Minute() != 0 || local.Format(dateLayout) != tt.date {
				t.Fatalf("local start = %s", local)
			}
		})
	}
}

func TestParseEventDate(t *testing.T) {
	for _, bad := range []string{"", "2025-2-01", "2025/12/22", "2025-02-30", "20251222", "2025-12-22T00:00"} {
		if _, ok := ParseEventDate(bad); ok {
			t.Fatalf("expected %q rejected", bad)
		}
	}
	if _, ok := ParseEventDate("2024-02-29"); !ok {
		t.Fatal("leap day should parse")
	}
}

func TestDateFromEventCode(t *testing.T) {
	tests := []struct {
		code   string
		want   string
		wantOK bool
	}{
		{code: "pub-x--2025-12-22", want: "2025-12-22", wantOK: true},
		{code: "two--dashes--2025-01-02", want: "2025-01-02", wantOK: true},
		{code: "pub-x", wantOK: false},
		{code: "pub-x--2025-13-01", wantOK: false},
		{code: "2025-12-22", want: "2025-12-22", wantOK: true},
	}
	for _, tt := range tests {
		got, ok := DateFromEventCode(tt.code)
		if ok != tt.wantOK || got != tt.want {
			t.Fatalf("%s: got %q/%v, want %q/%v", tt.code, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestToday(t *testing.T) {
	denver := mustLoc(t, "America/Denver")
	// 03:00 UTC is still the previous evening in Denver.
	now := time.Date(2025, 12, 23, 3, 0, 0, 0, time.UTC)
	if got := Today(now, denver); got != "2025-12-22" {
		t.Fatalf("today = %s", got)
	}
	if got := Today(now, time.UTC); got != "2025-12-23" {
		t.Fatalf("today utc = %s", got)
	}
}
