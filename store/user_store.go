package store

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/rentster/rentster-app/models"
	"gorm.io/gorm"
)

// HashPassword digests a password for storage. A plain unsalted SHA-256
// hex digest: authentication is a lookup on (email, hash), so the digest
// has to be deterministic.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// CreateUser inserts a user and returns the new id. A duplicate username
// or email fails with ErrDuplicateKey.
func (s *Store) CreateUser(username, email, password, role string, companyID *uint) (uint, error) {
	if !models.ValidRole(role) {
		return 0, fmt.Errorf("%w: role %q", ErrInvalidValue, role)
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: HashPassword(password),
		Role:         role,
		CompanyID:    companyID,
	}

	if err := s.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, fmt.Errorf("%w: username or email taken", ErrDuplicateKey)
		}
		return 0, err
	}
	return user.ID, nil
}

// AuthenticateUser looks up a user by email and password digest. A wrong
// password and an unknown email are the same ErrNotFound; there is no
// rate limiting and no timing-safe comparison here.
func (s *Store) AuthenticateUser(email, password string) (*models.User, error) {
	var user models.User
	err := s.DB.
		Where("email = ? AND password_hash = ?", email, HashPassword(password)).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByID fetches a single user record.
func (s *Store) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUsers returns all users, admin-facing.
func (s *Store) GetUsers() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
