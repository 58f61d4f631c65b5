package seed

import (
	"time"

	"poojaconnect/models"
)

// Standard daily availability windows: morning 08:00-12:00 and evening
// 16:00-20:00.
var dailyWindows = [][2]int{
	{8, 12},
	{16, 20},
}

// SlotHorizonDays is the rolling window of seeded availability.
const SlotHorizonDays = 7

// DailyWindows builds the unbooked slots for one priest on one calendar day.
func DailyWindows(priestID string, day time.Time) []models.AvailabilitySlot {
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.Local)
	slots := make([]models.AvailabilitySlot, 0, len(dailyWindows))
	for _, w := range dailyWindows {
		slots = append(slots, models.AvailabilitySlot{
			PriestID:  priestID,
			StartTime: midnight.Add(time.Duration(w[0]) * time.Hour),
			EndTime:   midnight.Add(time.Duration(w[1]) * time.Hour),
			IsBooked:  false,
		})
	}
	return slots
}

// UpcomingWindows builds slots for a priest covering days consecutive days
// starting at from.
func UpcomingWindows(priestID string, from time.Time, days int) []models.AvailabilitySlot {
	var slots []models.AvailabilitySlot
	for d := 0; d < days; d++ {
		slots = append(slots, DailyWindows(priestID, from.AddDate(0, 0, d))...)
	}
	return slots
}
