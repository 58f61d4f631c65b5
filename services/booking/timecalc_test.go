package booking

import (
	"errors"
	"testing"
)

func TestComputeEndTime(t *testing.T) {
	end, err := ComputeEndTime("09:00", 90)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if end != "10:30" {
		t.Fatalf("expected 10:30, got %s", end)
	}
}

func TestComputeEndTime_MidnightWrap(t *testing.T) {
	// A window crossing midnight wraps to the next day's clock time; the
	// booking date is left unchanged.
	end, err := ComputeEndTime("23:00", 90)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if end != "00:30" {
		t.Fatalf("expected 00:30, got %s", end)
	}
}

func TestComputeEndTime_ExactHour(t *testing.T) {
	end, err := ComputeEndTime("16:00", 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if end != "17:00" {
		t.Fatalf("expected 17:00, got %s", end)
	}
}

func TestParseTimeOfDay_Invalid(t *testing.T) {
	for _, value := range []string{"25:00", "09:60", "09:30xyz", "garbage", ""} {
		if _, err := ParseTimeOfDay(value); !errors.Is(err, ErrInvalidTime) {
			t.Fatalf("expected ErrInvalidTime for %q, got %v", value, err)
		}
	}
}

func TestCombineDateTime(t *testing.T) {
	instant, err := CombineDateTime("2025-06-15", "09:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if instant.Hour() != 9 || instant.Minute() != 30 {
		t.Fatalf("expected 09:30, got %02d:%02d", instant.Hour(), instant.Minute())
	}
	if instant.Year() != 2025 || int(instant.Month()) != 6 || instant.Day() != 15 {
		t.Fatalf("unexpected date: %v", instant)
	}
}

func TestCombineDateTime_BadDate(t *testing.T) {
	if _, err := CombineDateTime("15-06-2025", "09:30"); !errors.Is(err, ErrInvalidTime) {
		t.Fatalf("expected ErrInvalidTime, got %v", err)
	}
}
