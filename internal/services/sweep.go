package services

import (
	"github.com/robfig/cron/v3"
	"github.com/ruok-app/ruok-api/internal/config"
	"gorm.io/gorm"
)

// guestSweepSchedule fires daily at 09:30.
const guestSweepSchedule = "30 9 * * *"

// StartGuestSweep schedules the daily removal of guest accounts. The
// returned cron is already running; callers stop it on shutdown.
func StartGuestSweep(db *gorm.DB) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc(guestSweepSchedule, func() {
		deleted, err := SweepGuests(db)
		if err != nil {
			config.Logger.Errorw("guest sweep failed", "error", err)
			return
		}
		config.Logger.Infow("guest sweep complete", "deleted", deleted)
	})
	if err != nil {
		config.Logger.Errorw("failed to schedule guest sweep", "error", err)
		return c
	}

	c.Start()
	return c
}
