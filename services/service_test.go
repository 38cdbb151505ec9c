package services

import (
	"testing"
	"time"

	"hostel-backend/config"
	"hostel-backend/models"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// one connection, so every query sees the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	return db
}

func createTestHostel(t *testing.T, db *gorm.DB) *models.Hostel {
	t.Helper()
	hostel := models.Hostel{
		Name:   "Voila Hostel",
		City:   "Pune",
		Floors: 5,
	}
	require.NoError(t, db.Create(&hostel).Error)
	return &hostel
}

func createTestRoom(t *testing.T, db *gorm.DB, hostelID uint, number string, price float64) *models.Room {
	t.Helper()
	room := models.Room{
		HostelID:    hostelID,
		RoomNumber:  number,
		Type:        models.RoomSingle,
		Capacity:    1,
		Price:       price,
		IsAvailable: true,
	}
	require.NoError(t, db.Create(&room).Error)
	return &room
}

func createTestUser(t *testing.T, db *gorm.DB, email, prn, role string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := models.User{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		PRN:       prn,
		Password:  string(hash),
		Role:      role,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func date(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}
