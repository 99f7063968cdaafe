package models

import "time"

// Valid user roles. A customer has no company; a business_owner's
// company scopes the items and bookings they can see.
const (
	RoleAdmin         = "admin"
	RoleBusinessOwner = "business_owner"
	RoleCustomer      = "customer"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"type:varchar(255);unique;not null" json:"username"`
	Email        string    `gorm:"type:varchar(255);unique;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Role         string    `gorm:"type:varchar(20);not null" json:"role"`
	CompanyID    *uint     `gorm:"index" json:"company_id,omitempty"`
	Company      *Company  `gorm:"foreignKey:CompanyID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"company,omitempty"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

// ValidRole reports whether role is one of the three enumerated values.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleBusinessOwner, RoleCustomer:
		return true
	}
	return false
}
