package models

import "time"

// AccessControl grants a user a door code for a location during a
// validity window (valid_from <= valid_to).
type AccessControl struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	LocationID uint      `gorm:"not null;index" json:"location_id"`
	Location   Location  `gorm:"foreignKey:LocationID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"location"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	User       User      `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"user"`
	AccessCode string    `gorm:"type:varchar(50)" json:"access_code"`
	ValidFrom  time.Time `gorm:"not null" json:"valid_from"`
	ValidTo    time.Time `gorm:"not null" json:"valid_to"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}
