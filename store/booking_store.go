package store

import (
	"fmt"
	"time"

	"github.com/rentster/rentster-app/models"
)

// BookingDetail is a booking row joined with the item name and the
// booking user's username.
type BookingDetail struct {
	ID         uint      `json:"id"`
	ItemID     uint      `json:"item_id"`
	ItemName   string    `json:"item_name"`
	UserID     uint      `json:"user_id"`
	Username   string    `json:"username"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	TotalPrice float64   `json:"total_price"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateBooking inserts a booking with status "pending" and returns the
// new id. It does not check item availability, date overlap, or that the
// item exists; two simultaneous bookings for the same item and dates are
// both accepted.
func (s *Store) CreateBooking(itemID, userID uint, startDate, endDate string, totalPrice float64) (uint, error) {
	booking := models.Booking{
		ItemID:     itemID,
		UserID:     userID,
		StartDate:  startDate,
		EndDate:    endDate,
		TotalPrice: totalPrice,
		Status:     models.BookingPending,
	}
	if err := s.DB.Create(&booking).Error; err != nil {
		return 0, err
	}
	return booking.ID, nil
}

// GetBookings returns bookings joined with item name and username,
// newest first. Filtered by the user when userID is set, else by the
// item's company when companyID is set, else unfiltered.
func (s *Store) GetBookings(userID, companyID *uint) ([]BookingDetail, error) {
	query := s.DB.Model(&models.Booking{}).
		Select(`bookings.id, bookings.item_id, bookings.user_id,
			bookings.start_date, bookings.end_date, bookings.total_price,
			bookings.status, bookings.created_at,
			rental_items.name AS item_name, users.username`).
		Joins("JOIN rental_items ON rental_items.id = bookings.item_id").
		Joins("JOIN users ON users.id = bookings.user_id").
		Order("bookings.created_at DESC, bookings.id DESC")

	if userID != nil {
		query = query.Where("bookings.user_id = ?", *userID)
	} else if companyID != nil {
		query = query.Where("rental_items.company_id = ?", *companyID)
	}

	var bookings []BookingDetail
	if err := query.Scan(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdateBookingStatus sets the lifecycle status of a booking. Only the
// enumerated values are accepted; no transition graph is enforced.
func (s *Store) UpdateBookingStatus(bookingID uint, status string) error {
	if !models.ValidBookingStatus(status) {
		return fmt.Errorf("%w: booking status %q", ErrInvalidValue, status)
	}
	result := s.DB.Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
