package jobs

import (
	"log"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// OverdueCheckout sweeps checked-in bookings whose checkout date elapsed.
type OverdueCheckout interface {
	CheckOutOverdue(m *melody.Melody) error
}

var overdueCheckout OverdueCheckout

// SetOverdueCheckout wires the implementation used by the nightly job.
func SetOverdueCheckout(sweeper OverdueCheckout) {
	overdueCheckout = sweeper
}

// InitCronJobs registers the scheduled jobs and starts the scheduler.
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Nightly at 00:00: auto-checkout overdue bookings.
	_, err := c.AddFunc("0 0 * * *", func() {
		if overdueCheckout == nil {
			log.Println("overdue checkout sweeper is not configured")
			return
		}
		if err := overdueCheckout.CheckOutOverdue(m); err != nil {
			log.Printf("overdue checkout sweep failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
