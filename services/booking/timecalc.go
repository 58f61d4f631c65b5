package booking

import (
	"fmt"
	"time"
)

const minutesPerDay = 24 * 60

// ParseTimeOfDay parses an "HH:MM" clock time into minutes since midnight.
// The whole input must be a valid clock time; trailing text is rejected.
func ParseTimeOfDay(value string) (int, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, value)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatTimeOfDay renders minutes since midnight as "HH:MM".
func FormatTimeOfDay(minutes int) string {
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ComputeEndTime derives a booking's end clock time from its start and the
// pooja duration. A window crossing midnight wraps to the next day's clock
// time while the stored booking date stays unchanged; callers that need the
// absolute end instant must advance the day when the result wraps.
func ComputeEndTime(startTime string, durationMinutes int) (string, error) {
	start, err := ParseTimeOfDay(startTime)
	if err != nil {
		return "", err
	}
	return FormatTimeOfDay(start + durationMinutes), nil
}

// CombineDateTime builds the absolute instant for a calendar date ("YYYY-MM-DD")
// and an "HH:MM" clock time in the local civil time zone.
func CombineDateTime(date, clock string) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTime, date)
	}
	minutes, err := ParseTimeOfDay(clock)
	if err != nil {
		return time.Time{}, err
	}
	return day.Add(time.Duration(minutes) * time.Minute), nil
}
