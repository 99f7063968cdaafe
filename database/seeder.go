package database

import (
	"github.com/rentster/rentster-app/models"
	"gorm.io/gorm"
)

// DefaultPlans are the three subscription tiers seeded at first boot.
// Free carries a 9% transaction fee; the paid tiers carry none.
var DefaultPlans = []models.Plan{
	{Name: "Free", Price: 0.0, TransactionFee: 9.0, MaxUsers: 1, MaxLocations: 1},
	{Name: "Business", Price: 59.0, TransactionFee: 0.0, MaxUsers: 10, MaxLocations: 5},
	{Name: "Premium", Price: 99.0, TransactionFee: 0.0, MaxUsers: 100, MaxLocations: 50},
}

// SeedDefaultPlans inserts the default plans that are not already
// present, keyed by name. Calling it again is a no-op.
func SeedDefaultPlans(db *gorm.DB) error {
	for _, plan := range DefaultPlans {
		row := plan
		if err := db.Where("name = ?", plan.Name).FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}
	return nil
}
