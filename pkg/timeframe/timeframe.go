// Package timeframe holds the calendar bucketing and lookback window helpers
// used by the stats aggregation.
package timeframe

import (
	"fmt"
	"time"
)

const (
	// DefaultWindowHours is the lookback applied when the caller does not
	// supply a usable hours value.
	DefaultWindowHours = 24
	// MaxWindowHours caps the lookback at 30 days.
	MaxWindowHours = 720
)

// ClampHours corrects a raw hours value into the supported range. Invalid
// input is corrected, never rejected: non-positive values fall back to the
// default, oversized values are capped.
func ClampHours(hours int) int {
	if hours <= 0 {
		return DefaultWindowHours
	}
	if hours > MaxWindowHours {
		return MaxWindowHours
	}
	return hours
}

// WindowStart returns the inclusive lower bound of the trailing window.
func WindowStart(now time.Time, hours int) time.Time {
	return now.Add(-time.Duration(hours) * time.Hour)
}

// DayKey buckets a timestamp by UTC calendar day, e.g. "2026-08-21".
// Keys sort lexicographically in date order.
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WeekKey buckets a timestamp by ISO 8601 week, e.g. "2026-W34". The ISO year
// can differ from the calendar year around January 1st.
func WeekKey(t time.Time) string {
	year, week := t.UTC().ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}
