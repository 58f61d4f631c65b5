package models

import "time"

// AvailabilitySlot is a priest's open time window. A slot is consumed
// wholesale: once a booking reserves it, the remainder of the window is not
// re-offered.
type AvailabilitySlot struct {
	ID        string    `bson:"id" json:"id"`
	PriestID  string    `bson:"priestId" json:"priestId"`
	StartTime time.Time `bson:"startTime" json:"startTime"`
	EndTime   time.Time `bson:"endTime" json:"endTime"`
	IsBooked  bool      `bson:"isBooked" json:"isBooked"`
}

// Covers reports whether the slot fully contains the requested window.
// Containment is required; partial overlap does not qualify.
func (s *AvailabilitySlot) Covers(start, end time.Time) bool {
	return !s.StartTime.After(start) && !s.EndTime.Before(end)
}
