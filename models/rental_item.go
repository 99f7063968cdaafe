package models

import "time"

// Availability states of a rental item.
const (
	ItemAvailable   = "available"
	ItemRented      = "rented"
	ItemMaintenance = "maintenance"
)

type RentalItem struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Name               string    `gorm:"type:varchar(255);not null" json:"name"`
	Description        string    `gorm:"type:text" json:"description"`
	Category           string    `gorm:"type:varchar(100)" json:"category"`
	CompanyID          uint      `gorm:"not null;index" json:"company_id"`
	Company            Company   `gorm:"foreignKey:CompanyID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"company"`
	LocationID         *uint     `gorm:"index" json:"location_id,omitempty"`
	Location           *Location `gorm:"foreignKey:LocationID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"location,omitempty"`
	AvailabilityStatus string    `gorm:"type:varchar(20);not null;default:'available'" json:"availability_status"`
	PricePerDay        float64   `gorm:"type:decimal(10,2);not null" json:"price_per_day"`
	ImageURL           string    `gorm:"type:varchar(255)" json:"image_url"`
	CreatedAt          time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time `gorm:"not null" json:"updated_at"`
}

// ValidItemStatus reports whether status is one of the availability states.
func ValidItemStatus(status string) bool {
	switch status {
	case ItemAvailable, ItemRented, ItemMaintenance:
		return true
	}
	return false
}
