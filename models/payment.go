package models

import "time"

// Payment records money received against a booking. Rows are written by the
// store only; there is no gateway integration behind them.
type Payment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	BookingID     uint      `gorm:"not null;index" json:"booking_id"`
	Booking       Booking   `gorm:"foreignKey:BookingID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"booking"`
	Amount        float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaymentDate   string    `gorm:"type:varchar(10);not null" json:"payment_date"`
	PaymentMethod string    `gorm:"type:varchar(50)" json:"payment_method"`
	TransactionID string    `gorm:"type:varchar(100)" json:"transaction_id"`
	Status        string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null" json:"updated_at"`
}
