package cron

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	priestRepo "poojaconnect/database/repository/priest"
	slotRepo "poojaconnect/database/repository/slot"
	"poojaconnect/seed"
	"poojaconnect/utils"
)

// SlotTopUpWorker keeps every active priest's availability topped up to a
// rolling window, so the daily windows seeded at launch never run out.
type SlotTopUpWorker struct {
	Priests priestRepo.PriestRepository
	Slots   slotRepo.SlotRepository

	scheduler *cron.Cron
}

// Start schedules the daily top-up shortly after midnight and runs one pass
// immediately so a long-stopped instance catches up on boot.
func (w *SlotTopUpWorker) Start() {
	logger := utils.GetLogger()

	w.scheduler = cron.New()
	if _, err := w.scheduler.AddFunc("5 0 * * *", w.runOnce); err != nil {
		logger.Error("Failed to schedule slot top-up", zap.Error(err))
		return
	}
	w.scheduler.Start()

	go w.runOnce()
	logger.Info("Slot top-up worker started")
}

// Stop halts the scheduler and waits for a running pass to finish.
func (w *SlotTopUpWorker) Stop() {
	if w.scheduler != nil {
		<-w.scheduler.Stop().Done()
	}
}

func (w *SlotTopUpWorker) runOnce() {
	logger := utils.GetLogger()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	priests, err := w.Priests.GetActive(ctx)
	if err != nil {
		logger.Error("Slot top-up: failed to load priests", zap.Error(err))
		return
	}

	horizon := seed.SlotHorizonDays
	now := time.Now()
	for _, p := range priests {
		// Extend only the days past the priest's current coverage. Counting
		// slots is coarse but safe: two windows per covered day.
		count, err := w.Slots.CountUpcoming(ctx, p.ID, now)
		if err != nil {
			logger.Error("Slot top-up: failed to count slots",
				zap.String("priestId", p.ID), zap.Error(err))
			continue
		}
		coveredDays := int(count) / 2
		if coveredDays >= horizon {
			continue
		}
		slots := seed.UpcomingWindows(p.ID, now.AddDate(0, 0, coveredDays), horizon-coveredDays)
		if err := w.Slots.CreateMany(ctx, slots); err != nil {
			logger.Error("Slot top-up: failed to create slots",
				zap.String("priestId", p.ID), zap.Error(err))
			continue
		}
		logger.Info("Slot top-up: extended availability",
			zap.String("priestId", p.ID),
			zap.Int("newSlots", len(slots)))
	}
}
