package seed

import (
	"testing"
	"time"
)

func TestDailyWindows(t *testing.T) {
	day := time.Date(2025, 6, 15, 14, 23, 0, 0, time.Local)
	slots := DailyWindows("p1", day)

	if len(slots) != 2 {
		t.Fatalf("expected 2 windows per day, got %d", len(slots))
	}
	morning, evening := slots[0], slots[1]
	if morning.StartTime.Hour() != 8 || morning.EndTime.Hour() != 12 {
		t.Fatalf("unexpected morning window: %v - %v", morning.StartTime, morning.EndTime)
	}
	if evening.StartTime.Hour() != 16 || evening.EndTime.Hour() != 20 {
		t.Fatalf("unexpected evening window: %v - %v", evening.StartTime, evening.EndTime)
	}
	for _, s := range slots {
		if s.IsBooked {
			t.Fatal("seeded slots must start unbooked")
		}
		if s.PriestID != "p1" {
			t.Fatalf("unexpected priest id %q", s.PriestID)
		}
		if s.StartTime.Day() != 15 {
			t.Fatalf("slot not anchored to the given day: %v", s.StartTime)
		}
	}
}

func TestUpcomingWindows(t *testing.T) {
	from := time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)
	slots := UpcomingWindows("p1", from, SlotHorizonDays)

	if len(slots) != SlotHorizonDays*2 {
		t.Fatalf("expected %d slots, got %d", SlotHorizonDays*2, len(slots))
	}
	last := slots[len(slots)-1]
	if last.StartTime.Day() != 21 {
		t.Fatalf("expected last window on the 21st, got %v", last.StartTime)
	}
}
