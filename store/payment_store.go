package store

import (
	"fmt"
	"time"

	"github.com/rentster/rentster-app/models"
)

// CreatePayment records a payment row against a booking. Status defaults
// to "pending". There is no gateway call behind this.
func (s *Store) CreatePayment(payment *models.Payment) (uint, error) {
	if payment.Status == "" {
		payment.Status = "pending"
	}
	if err := s.DB.Create(payment).Error; err != nil {
		return 0, err
	}
	return payment.ID, nil
}

// GetPayments returns payments, optionally filtered to one booking,
// newest first.
func (s *Store) GetPayments(bookingID *uint) ([]models.Payment, error) {
	query := s.DB.Model(&models.Payment{}).Order("created_at DESC, id DESC")
	if bookingID != nil {
		query = query.Where("booking_id = ?", *bookingID)
	}
	var payments []models.Payment
	if err := query.Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// CreateSignature stores a signature payload for a booking document.
// The payload is opaque and never verified.
func (s *Store) CreateSignature(sig *models.DigitalSignature) (uint, error) {
	if sig.SignedAt.IsZero() {
		sig.SignedAt = time.Now()
	}
	if err := s.DB.Create(sig).Error; err != nil {
		return 0, err
	}
	return sig.ID, nil
}

// GetSignatures returns signatures, optionally filtered to one booking.
func (s *Store) GetSignatures(bookingID *uint) ([]models.DigitalSignature, error) {
	query := s.DB.Model(&models.DigitalSignature{}).Order("signed_at DESC")
	if bookingID != nil {
		query = query.Where("booking_id = ?", *bookingID)
	}
	var sigs []models.DigitalSignature
	if err := query.Find(&sigs).Error; err != nil {
		return nil, err
	}
	return sigs, nil
}

// CreateAccessCode grants a user a door code for a location. The window
// must satisfy valid_from <= valid_to.
func (s *Store) CreateAccessCode(ac *models.AccessControl) (uint, error) {
	if ac.ValidTo.Before(ac.ValidFrom) {
		return 0, fmt.Errorf("%w: validity window ends before it starts", ErrInvalidValue)
	}
	if err := s.DB.Create(ac).Error; err != nil {
		return 0, err
	}
	return ac.ID, nil
}

// GetAccessCodes returns access grants, optionally filtered to one
// location.
func (s *Store) GetAccessCodes(locationID *uint) ([]models.AccessControl, error) {
	query := s.DB.Model(&models.AccessControl{}).Order("valid_from DESC")
	if locationID != nil {
		query = query.Where("location_id = ?", *locationID)
	}
	var codes []models.AccessControl
	if err := query.Find(&codes).Error; err != nil {
		return nil, err
	}
	return codes, nil
}
