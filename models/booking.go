package models

import "time"

// Lifecycle states of a booking.
const (
	BookingConfirmed = "confirmed"
	BookingPending   = "pending"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

type Booking struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	ItemID     uint       `gorm:"not null;index" json:"item_id"`
	Item       RentalItem `gorm:"foreignKey:ItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"item"`
	UserID     uint       `gorm:"not null;index" json:"user_id"`
	User       User       `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"user"`
	StartDate  string     `gorm:"type:varchar(10);not null" json:"start_date"`
	EndDate    string     `gorm:"type:varchar(10);not null" json:"end_date"`
	TotalPrice float64    `gorm:"type:decimal(10,2);not null" json:"total_price"`
	Status     string     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt  time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"not null" json:"updated_at"`
}

// ValidBookingStatus reports whether status is one of the lifecycle states.
func ValidBookingStatus(status string) bool {
	switch status {
	case BookingConfirmed, BookingPending, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}
