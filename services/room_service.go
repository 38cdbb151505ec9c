package services

import (
	"errors"
	"fmt"

	"hostel-backend/models"

	"gorm.io/gorm"
)

var (
	ErrRoomNotFound    = errors.New("room_not_found")
	ErrRoomNumberTaken = errors.New("room_number_already_exists")
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// List returns all rooms, optionally narrowed to one hostel.
func (s *RoomService) List(hostelID uint) ([]models.Room, error) {
	var rooms []models.Room
	query := s.DB.Preload("Hostel")
	if hostelID != 0 {
		query = query.Where("hostel_id = ?", hostelID)
	}
	if err := query.Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) ListAvailable() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Preload("Hostel").Where("is_available = ?", true).Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list available rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) Get(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.Preload("Hostel").First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to load room: %w", err)
	}
	return &room, nil
}

// Create validates the hostel reference and the per-hostel room number
// uniqueness (the composite index rejects duplicates).
func (s *RoomService) Create(room *models.Room) error {
	var hostel models.Hostel
	if err := s.DB.First(&hostel, room.HostelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHostelNotFound
		}
		return fmt.Errorf("failed to check hostel: %w", err)
	}

	if err := s.DB.Create(room).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrRoomNumberTaken
		}
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

func (s *RoomService) Update(id uint, patch map[string]interface{}) (*models.Room, error) {
	room, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(room).Updates(patch).Error; err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrRoomNumberTaken
		}
		return nil, fmt.Errorf("failed to update room: %w", err)
	}
	return room, nil
}

func (s *RoomService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.DB.Delete(&models.Room{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	return nil
}
