package models

import "time"

type Plan struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"type:varchar(100);unique;not null" json:"name"`
	Price          float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	TransactionFee float64   `gorm:"type:decimal(5,2);not null" json:"transaction_fee"`
	MaxUsers       int       `gorm:"not null" json:"max_users"`
	MaxLocations   int       `gorm:"not null" json:"max_locations"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null" json:"updated_at"`
}
