package services

import (
	"log"
	"time"

	"github.com/rentster/rentster-app/models"
	"github.com/rentster/rentster-app/realtime"
	"gorm.io/gorm"
)

// BookingMonitor polls for booking, payment and item rows changed since
// the last tick and pushes them to the dashboard feed. Polling keeps the
// store free of triggers; SQLite has no notification channel anyway.
type BookingMonitor struct {
	DB       *gorm.DB
	StopChan chan struct{}
	Interval time.Duration

	lastCheck time.Time
}

func NewBookingMonitor(db *gorm.DB) *BookingMonitor {
	return &BookingMonitor{
		DB:        db,
		StopChan:  make(chan struct{}),
		Interval:  1 * time.Second,
		lastCheck: time.Now(),
	}
}

func (bm *BookingMonitor) Start() {
	go func() {
		ticker := time.NewTicker(bm.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				bm.checkChanges()
			case <-bm.StopChan:
				return
			}
		}
	}()
}

func (bm *BookingMonitor) Stop() {
	close(bm.StopChan)
}

func (bm *BookingMonitor) checkChanges() {
	since := bm.lastCheck
	bm.lastCheck = time.Now()

	var bookings []models.Booking
	if err := bm.DB.Where("updated_at > ?", since).Find(&bookings).Error; err != nil {
		log.Printf("Error fetching booking changes: %v", err)
		return
	}
	for _, booking := range bookings {
		realtime.BroadcastBookingUpdate(booking)
	}

	var payments []models.Payment
	if err := bm.DB.Where("updated_at > ?", since).Find(&payments).Error; err != nil {
		log.Printf("Error fetching payment changes: %v", err)
		return
	}
	for _, payment := range payments {
		realtime.BroadcastPaymentUpdate(payment)
	}

	var items []models.RentalItem
	if err := bm.DB.Where("updated_at > ?", since).Find(&items).Error; err != nil {
		log.Printf("Error fetching item changes: %v", err)
		return
	}
	for _, item := range items {
		realtime.BroadcastItemUpdate(item)
	}
}
