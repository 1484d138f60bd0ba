package jobs

import (
	"log"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// DiscountExpirer deactivates discount programs whose end date has passed.
type DiscountExpirer interface {
	DeactivateExpired(m *melody.Melody) error
}

var discountExpirer DiscountExpirer

// SetDiscountExpirer installs the implementation used by the nightly job.
func SetDiscountExpirer(expirer DiscountExpirer) {
	discountExpirer = expirer
}

// InitCronJobs registers the scheduled jobs and starts the scheduler.
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Nightly at midnight: retire expired discounts.
	_, err := c.AddFunc("0 0 * * *", func() {
		if discountExpirer == nil {
			log.Printf("Error: DiscountExpirer is not configured")
			return
		}
		if err := discountExpirer.DeactivateExpired(m); err != nil {
			log.Printf("Error deactivating expired discounts: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
