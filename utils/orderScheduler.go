package utils

import (
	"log"
	"time"

	"lms/database"
	"lms/models"

	"github.com/robfig/cron/v3"
)

// pendingOrderTTL is how long an unpaid order survives before the
// scheduler cancels it
const pendingOrderTTL = 48 * time.Hour

// InitializeOrderScheduler starts the hourly sweep that cancels stale
// pending orders
func InitializeOrderScheduler() *cron.Cron {
	log.Println("[ORDER-SCHEDULER] Initializing order scheduler...")

	c := cron.New()

	c.AddFunc("0 * * * *", func() {
		ExpireStalePendingOrders()
	})

	c.Start()
	log.Println("[ORDER-SCHEDULER] Order scheduler started - runs hourly")
	return c
}

// ExpireStalePendingOrders cancels pending orders older than the TTL
func ExpireStalePendingOrders() {
	db := database.Database.Db
	cutoff := time.Now().Add(-pendingOrderTTL)

	result := db.Model(&models.Order{}).
		Where("status = ? AND is_deleted = ? AND created_at < ?", models.OrderStatusPending, false, cutoff).
		Update("status", models.OrderStatusCancelled)
	if result.Error != nil {
		log.Printf("[ORDER-SCHEDULER] Error expiring pending orders: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[ORDER-SCHEDULER] Cancelled %d stale pending orders", result.RowsAffected)
	}
}
