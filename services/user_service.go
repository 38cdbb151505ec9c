package services

import (
	"errors"
	"fmt"
	"strings"

	"hostel-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email_already_registered")
	ErrPRNTaken           = errors.New("prn_already_registered")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrUserNotFound       = errors.New("user_not_found")
)

// UserService wraps *gorm.DB for identity operations.
type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	PRN       string
	Role      string
}

// Register stores a new identity with a bcrypt-hashed password. Either a
// taken email or a taken PRN rejects the registration.
func (s *UserService) Register(in RegisterInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	prn := strings.TrimSpace(in.PRN)

	var existing models.User
	if err := s.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	if err := s.DB.Where("prn = ?", prn).First(&existing).Error; err == nil {
		return nil, ErrPRNTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check prn: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := models.RoleStudent
	if in.Role == models.RoleAdmin {
		role = models.RoleAdmin
	}

	user := models.User{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Email:     email,
		PRN:       prn,
		Password:  string(hash),
		Role:      role,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		// Unique indexes backstop the lookups above under concurrent registration.
		if isDuplicateKeyError(err) {
			return nil, duplicateIdentityError(err)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// duplicateIdentityError picks the taken field out of a unique violation.
// MySQL names the index ("Duplicate entry ... for key 'users.idx_users_prn'"),
// SQLite the column ("UNIQUE constraint failed: users.prn").
func duplicateIdentityError(err error) error {
	if strings.Contains(err.Error(), "prn") {
		return ErrPRNTaken
	}
	return ErrEmailTaken
}

// Authenticate accepts email or PRN plus password. Every failure mode maps
// to the same error so callers cannot tell which lookup missed.
func (s *UserService) Authenticate(email, prn, password string) (*models.User, error) {
	var user models.User
	found := false

	if email = strings.ToLower(strings.TrimSpace(email)); email != "" {
		if err := s.DB.Where("email = ?", email).First(&user).Error; err == nil {
			found = true
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}
	}
	if !found {
		if prn = strings.TrimSpace(prn); prn != "" {
			if err := s.DB.Where("prn = ?", prn).First(&user).Error; err == nil {
				found = true
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("failed to look up user: %w", err)
			}
		}
	}

	if !found {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &user, nil
}

type ProfileUpdateInput struct {
	FirstName string
	LastName  string
	Email     string
	PRN       string
	Password  string
}

// UpdateProfile applies the provided fields; empty strings keep the stored
// value. A new password is re-hashed before persisting.
func (s *UserService) UpdateProfile(id uint, in ProfileUpdateInput) (*models.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if v := strings.TrimSpace(in.FirstName); v != "" {
		user.FirstName = v
	}
	if v := strings.TrimSpace(in.LastName); v != "" {
		user.LastName = v
	}
	if v := strings.ToLower(strings.TrimSpace(in.Email)); v != "" {
		user.Email = v
	}
	if v := strings.TrimSpace(in.PRN); v != "" {
		user.PRN = v
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hash)
	}

	if err := s.DB.Save(user).Error; err != nil {
		if isDuplicateKeyError(err) {
			return nil, duplicateIdentityError(err)
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// isDuplicateKeyError matches MySQL and SQLite unique violations.
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}
