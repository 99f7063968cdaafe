package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/rentster/rentster-app/models"
	"gorm.io/gorm"
)

// RentalItemDetail is an item row joined with its company and location
// names, the shape the listing endpoints return.
type RentalItemDetail struct {
	ID                 uint      `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	Category           string    `json:"category"`
	CompanyID          uint      `json:"company_id"`
	CompanyName        string    `json:"company_name"`
	LocationID         *uint     `json:"location_id,omitempty"`
	LocationName       string    `json:"location_name"`
	AvailabilityStatus string    `json:"availability_status"`
	PricePerDay        float64   `json:"price_per_day"`
	ImageURL           string    `json:"image_url"`
	CreatedAt          time.Time `json:"created_at"`
}

// CreateRentalItem inserts an item for a company. Status defaults to
// "available" when empty.
func (s *Store) CreateRentalItem(item *models.RentalItem) (uint, error) {
	if item.AvailabilityStatus == "" {
		item.AvailabilityStatus = models.ItemAvailable
	}
	if !models.ValidItemStatus(item.AvailabilityStatus) {
		return 0, fmt.Errorf("%w: availability status %q", ErrInvalidValue, item.AvailabilityStatus)
	}
	if err := s.DB.Create(item).Error; err != nil {
		return 0, err
	}
	return item.ID, nil
}

// GetRentalItems returns all items joined with company and location
// names, optionally filtered to one company. No pagination.
func (s *Store) GetRentalItems(companyID *uint) ([]RentalItemDetail, error) {
	query := s.DB.Model(&models.RentalItem{}).
		Select(`rental_items.id, rental_items.name, rental_items.description,
			rental_items.category, rental_items.company_id, rental_items.location_id,
			rental_items.availability_status, rental_items.price_per_day,
			rental_items.image_url, rental_items.created_at,
			companies.name AS company_name, locations.name AS location_name`).
		Joins("LEFT JOIN companies ON companies.id = rental_items.company_id").
		Joins("LEFT JOIN locations ON locations.id = rental_items.location_id")

	if companyID != nil {
		query = query.Where("rental_items.company_id = ?", *companyID)
	}

	var items []RentalItemDetail
	if err := query.Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateItemStatus sets the availability status of an item. A plain
// column update; no transition rules are enforced.
func (s *Store) UpdateItemStatus(itemID uint, status string) error {
	if !models.ValidItemStatus(status) {
		return fmt.Errorf("%w: availability status %q", ErrInvalidValue, status)
	}
	result := s.DB.Model(&models.RentalItem{}).
		Where("id = ?", itemID).
		Update("availability_status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetRentalItemByID fetches a single item record.
func (s *Store) GetRentalItemByID(id uint) (*models.RentalItem, error) {
	var item models.RentalItem
	if err := s.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}
