package booking

import (
	"testing"
	"time"

	"poojaconnect/models"
)

func slotAt(id string, startHour, endHour int) models.AvailabilitySlot {
	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)
	return models.AvailabilitySlot{
		ID:        id,
		PriestID:  "p1",
		StartTime: day.Add(time.Duration(startHour) * time.Hour),
		EndTime:   day.Add(time.Duration(endHour) * time.Hour),
	}
}

func window(startHour, startMin, endHour, endMin int) (time.Time, time.Time) {
	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)
	start := day.Add(time.Duration(startHour)*time.Hour + time.Duration(startMin)*time.Minute)
	end := day.Add(time.Duration(endHour)*time.Hour + time.Duration(endMin)*time.Minute)
	return start, end
}

func TestFindCoveringSlot_Containment(t *testing.T) {
	slots := []models.AvailabilitySlot{slotAt("s1", 8, 12)}
	start, end := window(9, 0, 10, 30)

	match := FindCoveringSlot(slots, start, end)
	if match == nil || match.ID != "s1" {
		t.Fatalf("expected s1 to cover the window, got %v", match)
	}
}

func TestFindCoveringSlot_OverlapIsNotContainment(t *testing.T) {
	// Slot 09:00-10:00 merely overlaps a 09:30-10:30 request.
	slots := []models.AvailabilitySlot{slotAt("s1", 9, 10)}
	start, end := window(9, 30, 10, 30)

	if match := FindCoveringSlot(slots, start, end); match != nil {
		t.Fatalf("expected no match for partial overlap, got %s", match.ID)
	}
}

func TestFindCoveringSlot_SkipsBooked(t *testing.T) {
	booked := slotAt("s1", 8, 12)
	booked.IsBooked = true
	slots := []models.AvailabilitySlot{booked, slotAt("s2", 8, 12)}
	start, end := window(9, 0, 10, 0)

	match := FindCoveringSlot(slots, start, end)
	if match == nil || match.ID != "s2" {
		t.Fatalf("expected s2, got %v", match)
	}
}

func TestFindCoveringSlot_FirstInCollectionOrder(t *testing.T) {
	slots := []models.AvailabilitySlot{slotAt("s2", 8, 12), slotAt("s1", 8, 12)}
	start, end := window(9, 0, 10, 0)

	match := FindCoveringSlot(slots, start, end)
	if match == nil || match.ID != "s2" {
		t.Fatalf("expected first covering slot s2, got %v", match)
	}
}

func TestFindCoveringSlot_ExactBoundsMatch(t *testing.T) {
	slots := []models.AvailabilitySlot{slotAt("s1", 9, 11)}
	start, end := window(9, 0, 11, 0)

	if match := FindCoveringSlot(slots, start, end); match == nil {
		t.Fatal("expected exact-bounds window to match")
	}
}

func TestFindCoveringSlot_NoneQualifies(t *testing.T) {
	slots := []models.AvailabilitySlot{slotAt("s1", 8, 9)}
	start, end := window(16, 0, 17, 30)

	if match := FindCoveringSlot(slots, start, end); match != nil {
		t.Fatalf("expected nil, got %s", match.ID)
	}
}
