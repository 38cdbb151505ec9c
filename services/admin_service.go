package services

import (
	"errors"
	"fmt"

	"hostel-backend/models"

	"gorm.io/gorm"
)

var (
	ErrInvalidRole  = errors.New("invalid_role")
	ErrSelfDeletion = errors.New("cannot_delete_own_account")
)

type AdminService struct {
	DB *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{DB: db}
}

func (s *AdminService) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *AdminService) UpdateUserRole(id uint, role string) (*models.User, error) {
	if !models.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := s.DB.Model(&user).Update("role", role).Error; err != nil {
		return nil, fmt.Errorf("failed to update role: %w", err)
	}
	return &user, nil
}

// DeleteUser removes a user, unless the target is the acting admin itself.
func (s *AdminService) DeleteUser(actorID, id uint) error {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to load user: %w", err)
	}

	if user.ID == actorID {
		return ErrSelfDeletion
	}

	if err := s.DB.Delete(&user).Error; err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

type DashboardCounts struct {
	Users          int64 `json:"users"`
	Hostels        int64 `json:"hostels"`
	Rooms          int64 `json:"rooms"`
	Bookings       int64 `json:"bookings"`
	AvailableRooms int64 `json:"availableRooms"`
}

type BookingStats struct {
	Confirmed int64 `json:"confirmed"`
	Cancelled int64 `json:"cancelled"`
	Completed int64 `json:"completed"`
}

type DashboardStats struct {
	Counts         DashboardCounts  `json:"counts"`
	BookingStats   BookingStats     `json:"bookingStats"`
	RecentBookings []models.Booking `json:"recentBookings"`
}

// Dashboard aggregates entity counts, per-status booking counts and the
// five most recent bookings. Reads are independent; a busy system may
// return slightly stale numbers, which is fine for a dashboard.
func (s *AdminService) Dashboard() (*DashboardStats, error) {
	stats := DashboardStats{}

	counts := []struct {
		model interface{}
		dst   *int64
	}{
		{&models.User{}, &stats.Counts.Users},
		{&models.Hostel{}, &stats.Counts.Hostels},
		{&models.Room{}, &stats.Counts.Rooms},
		{&models.Booking{}, &stats.Counts.Bookings},
	}
	for _, c := range counts {
		if err := s.DB.Model(c.model).Count(c.dst).Error; err != nil {
			return nil, fmt.Errorf("failed to count: %w", err)
		}
	}

	if err := s.DB.Model(&models.Room{}).Where("is_available = ?", true).
		Count(&stats.Counts.AvailableRooms).Error; err != nil {
		return nil, fmt.Errorf("failed to count available rooms: %w", err)
	}

	statuses := []struct {
		status string
		dst    *int64
	}{
		{models.BookingConfirmed, &stats.BookingStats.Confirmed},
		{models.BookingCancelled, &stats.BookingStats.Cancelled},
		{models.BookingCompleted, &stats.BookingStats.Completed},
	}
	for _, st := range statuses {
		if err := s.DB.Model(&models.Booking{}).Where("booking_status = ?", st.status).
			Count(st.dst).Error; err != nil {
			return nil, fmt.Errorf("failed to count bookings: %w", err)
		}
	}

	if err := s.DB.Preload("User").Preload("Room").Preload("Hostel").
		Order("created_at DESC").Limit(5).Find(&stats.RecentBookings).Error; err != nil {
		return nil, fmt.Errorf("failed to load recent bookings: %w", err)
	}

	return &stats, nil
}
