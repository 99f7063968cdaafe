package store

import (
	"errors"
	"fmt"

	"github.com/rentster/rentster-app/models"
	"gorm.io/gorm"
)

// CreateCompany inserts a company on a plan and returns the new id.
func (s *Store) CreateCompany(company *models.Company) (uint, error) {
	if err := s.DB.Create(company).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, fmt.Errorf("%w: company %q", ErrDuplicateKey, company.Name)
		}
		return 0, err
	}
	return company.ID, nil
}

// GetCompanies returns all companies with their plan preloaded.
func (s *Store) GetCompanies() ([]models.Company, error) {
	var companies []models.Company
	if err := s.DB.Preload("Plan").Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

// GetCompanyByID fetches a single company with its plan.
func (s *Store) GetCompanyByID(id uint) (*models.Company, error) {
	var company models.Company
	if err := s.DB.Preload("Plan").First(&company, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &company, nil
}

// CreateLocation inserts a location for a company and returns the new id.
func (s *Store) CreateLocation(location *models.Location) (uint, error) {
	if err := s.DB.Create(location).Error; err != nil {
		return 0, err
	}
	return location.ID, nil
}

// GetLocations returns locations, optionally filtered to one company.
func (s *Store) GetLocations(companyID *uint) ([]models.Location, error) {
	query := s.DB.Model(&models.Location{})
	if companyID != nil {
		query = query.Where("company_id = ?", *companyID)
	}
	var locations []models.Location
	if err := query.Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}
