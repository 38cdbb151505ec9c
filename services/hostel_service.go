package services

import (
	"errors"
	"fmt"

	"hostel-backend/models"

	"gorm.io/gorm"
)

var ErrHostelNotFound = errors.New("hostel_not_found")

type HostelService struct {
	DB *gorm.DB
}

func NewHostelService(db *gorm.DB) *HostelService {
	return &HostelService{DB: db}
}

func (s *HostelService) List() ([]models.Hostel, error) {
	var hostels []models.Hostel
	if err := s.DB.Find(&hostels).Error; err != nil {
		return nil, fmt.Errorf("failed to list hostels: %w", err)
	}
	return hostels, nil
}

func (s *HostelService) Get(id uint) (*models.Hostel, error) {
	var hostel models.Hostel
	if err := s.DB.First(&hostel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHostelNotFound
		}
		return nil, fmt.Errorf("failed to load hostel: %w", err)
	}
	return &hostel, nil
}

func (s *HostelService) Create(hostel *models.Hostel) error {
	if err := s.DB.Create(hostel).Error; err != nil {
		return fmt.Errorf("failed to create hostel: %w", err)
	}
	return nil
}

// Update applies a field patch; protected columns are stripped by the caller.
func (s *HostelService) Update(id uint, patch map[string]interface{}) (*models.Hostel, error) {
	hostel, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(hostel).Updates(patch).Error; err != nil {
		return nil, fmt.Errorf("failed to update hostel: %w", err)
	}
	return hostel, nil
}

func (s *HostelService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.DB.Delete(&models.Hostel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete hostel: %w", err)
	}
	return nil
}
