package scheduler

import (
	"log"

	"github.com/robfig/cron/v3"

	"github.com/figliolo/bar-client/stores"
)

// Start schedules the daily shift registry refresh. Shift windows are
// valid per weekday, so the registry goes stale at midnight; a stale
// selection is reset so the guard sends the user back to the picker.
func Start(turni *stores.TurnoStore) *cron.Cron {
	c := cron.New()
	c.AddFunc("@daily", refreshShifts(turni))
	c.Start()
	return c
}

// refreshShifts is the scheduled job body, split out so it can run
// outside the schedule.
func refreshShifts(turni *stores.TurnoStore) func() {
	return func() {
		log.Println("Refreshing shift registry...")
		if !turni.FetchTurni() {
			log.Printf("Shift refresh failed: %s", turni.Error())
		}
		turni.RevalidateSelection()
	}
}
