package store

import (
	"errors"

	"github.com/rentster/rentster-app/database"
	"github.com/rentster/rentster-app/models"
	"gorm.io/gorm"
)

// Sentinel errors surfaced by the accessor operations. Anything else that
// comes out of the database propagates to the caller untouched.
var (
	// ErrDuplicateKey signals a unique-constraint violation (username,
	// email, plan name). Callers treat it as "not created".
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrNotFound is the normal negative result for lookups and
	// authentication, not a fatal failure.
	ErrNotFound = errors.New("not found")

	// ErrInvalidValue signals a value outside an enumerated set (role,
	// availability status, booking status).
	ErrInvalidValue = errors.New("invalid value")
)

// Store is the accessor layer over the rental schema. It wraps a single
// database handle opened at process start and injected here; the store
// never opens or closes connections itself.
type Store struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{DB: db}
}

// Initialize creates all tables if absent and seeds the default plans.
// Safe to call repeatedly.
func (s *Store) Initialize() error {
	err := s.DB.AutoMigrate(
		&models.Plan{},
		&models.Company{},
		&models.User{},
		&models.Location{},
		&models.RentalItem{},
		&models.Booking{},
		&models.Payment{},
		&models.DigitalSignature{},
		&models.AccessControl{},
	)
	if err != nil {
		return err
	}
	return database.SeedDefaultPlans(s.DB)
}

// GetPlans returns the subscription plans ordered by price.
func (s *Store) GetPlans() ([]models.Plan, error) {
	var plans []models.Plan
	if err := s.DB.Order("price ASC").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}
