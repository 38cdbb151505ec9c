package services

import (
	"testing"

	"hostel-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboard(t *testing.T) {
	db := setupTestDB(t)
	admin := NewAdminService(db)
	bookings := NewBookingService(db)

	hostel := createTestHostel(t, db)
	roomA := createTestRoom(t, db, hostel.ID, "101", 1000)
	roomB := createTestRoom(t, db, hostel.ID, "102", 800)
	roomC := createTestRoom(t, db, hostel.ID, "103", 600)
	user := createTestUser(t, db, "a@x.com", "P1", models.RoleStudent)

	b1, err := bookings.Create(user.ID, roomA.ID, "2026-09-10", "2026-09-12")
	require.NoError(t, err)
	_, err = bookings.Create(user.ID, roomB.ID, "2026-09-10", "2026-09-12")
	require.NoError(t, err)
	_, err = bookings.Create(user.ID, roomC.ID, "2026-09-10", "2026-09-12")
	require.NoError(t, err)
	_, err = bookings.Cancel(user.ID, user.Role, b1.ID)
	require.NoError(t, err)

	stats, err := admin.Dashboard()
	require.NoError(t, err)

	assert.Equal(t, int64(1), stats.Counts.Users)
	assert.Equal(t, int64(1), stats.Counts.Hostels)
	assert.Equal(t, int64(3), stats.Counts.Rooms)
	assert.Equal(t, int64(3), stats.Counts.Bookings)
	assert.Equal(t, int64(1), stats.Counts.AvailableRooms) // roomA released by the cancel

	assert.Equal(t, int64(2), stats.BookingStats.Confirmed)
	assert.Equal(t, int64(1), stats.BookingStats.Cancelled)
	assert.Equal(t, int64(0), stats.BookingStats.Completed)

	require.Len(t, stats.RecentBookings, 3)
	assert.Equal(t, user.ID, stats.RecentBookings[0].User.ID)
	assert.NotZero(t, stats.RecentBookings[0].Room.ID)
	assert.NotZero(t, stats.RecentBookings[0].Hostel.ID)
}

func TestUpdateUserRole(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAdminService(db)
	user := createTestUser(t, db, "a@x.com", "P1", models.RoleStudent)

	updated, err := svc.UpdateUserRole(user.ID, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, updated.Role)

	_, err = svc.UpdateUserRole(user.ID, "superuser")
	assert.ErrorIs(t, err, ErrInvalidRole)

	_, err = svc.UpdateUserRole(9999, models.RoleStudent)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAdminService(db)

	admin := createTestUser(t, db, "admin@x.com", "A1", models.RoleAdmin)
	victim := createTestUser(t, db, "a@x.com", "P1", models.RoleStudent)

	// self-deletion guard
	err := svc.DeleteUser(admin.ID, admin.ID)
	assert.ErrorIs(t, err, ErrSelfDeletion)

	require.NoError(t, svc.DeleteUser(admin.ID, victim.ID))

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)

	err = svc.DeleteUser(admin.ID, victim.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
