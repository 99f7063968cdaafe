package models

import "time"

// DigitalSignature stores a signature payload for a booking document.
// The payload is opaque; no verification happens anywhere.
type DigitalSignature struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	BookingID     uint      `gorm:"not null;index" json:"booking_id"`
	Booking       Booking   `gorm:"foreignKey:BookingID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"booking"`
	DocumentID    string    `gorm:"type:varchar(100)" json:"document_id"`
	SignatureData string    `gorm:"type:text" json:"signature_data"`
	SignedAt      time.Time `gorm:"not null" json:"signed_at"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
}
