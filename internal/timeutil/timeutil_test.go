package timeutil

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-03-08")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if got := FormatDate(parsed); got != "2024-03-08" {
		t.Fatalf("expected formatted date to round-trip, got %s", got)
	}
}

func TestIsDate(t *testing.T) {
	cases := map[string]bool{
		"2024-03-08": true,
		"2024-02-30": false,
		"03-08-2024": false,
		"2024-3-8":   false,
		"":           false,
	}
	for in, want := range cases {
		if got := IsDate(in); got != want {
			t.Fatalf("IsDate(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestDateIn(t *testing.T) {
	// 02:30 UTC on the 9th is still the evening of the 8th in New York.
	instant := time.Date(2024, 3, 9, 2, 30, 0, 0, time.UTC)
	ny := time.FixedZone("EST", -5*60*60)
	if got := DateIn(instant, ny); got != "2024-03-08" {
		t.Fatalf("expected local slate date, got %s", got)
	}
	if got := DateIn(instant, nil); got != "2024-03-09" {
		t.Fatalf("expected UTC date for nil location, got %s", got)
	}
}

func TestMidnightUTC(t *testing.T) {
	loc := time.FixedZone("test", 3*60*60)
	got := MidnightUTC(time.Date(2024, 3, 9, 1, 0, 0, 0, loc))
	want := time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
}
