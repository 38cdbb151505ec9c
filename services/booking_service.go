package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"hostel-backend/models"

	"gorm.io/gorm"
)

var (
	ErrBookingNotFound  = errors.New("booking_not_found")
	ErrRoomUnavailable  = errors.New("room_not_available")
	ErrInvalidDate      = errors.New("invalid_booking_date")
	ErrInvalidDateRange = errors.New("checkout_must_be_after_checkin")
	ErrInvalidStatus    = errors.New("invalid_status_value")
	ErrNotBookingOwner  = errors.New("not_authorized_for_booking")
)

const dateLayout = "2006-01-02"

// BookingService owns the booking lifecycle: create and cancel touch both
// the booking row and the room availability flag, always inside one
// transaction.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// Nights returns ceil((out-in)/24h); values <= 0 are invalid ranges.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		// accept full timestamps too, the way clients send them
		t, err = time.Parse(time.RFC3339, value)
	}
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// Create reserves a room for the user. The booking insert and the
// availability flip commit atomically; the flip is a conditional update so
// two concurrent creates for the same room cannot both win.
func (s *BookingService) Create(userID, roomID uint, checkIn, checkOut string) (*models.Booking, error) {
	ci, err := parseDate(checkIn)
	if err != nil {
		return nil, err
	}
	co, err := parseDate(checkOut)
	if err != nil {
		return nil, err
	}

	nights := Nights(ci, co)
	if nights <= 0 {
		return nil, ErrInvalidDateRange
	}

	var booking models.Booking
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("failed to load room: %w", err)
		}
		if !room.IsAvailable {
			return ErrRoomUnavailable
		}

		booking = models.Booking{
			UserID:        userID,
			RoomID:        room.ID,
			HostelID:      room.HostelID,
			CheckInDate:   ci,
			CheckOutDate:  co,
			TotalPrice:    float64(nights) * room.Price,
			PaymentStatus: models.PaymentPending,
			BookingStatus: models.BookingConfirmed,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		// Conditional flip: the WHERE clause re-checks availability so a
		// concurrent create that committed first makes this a no-op.
		res := tx.Model(&models.Room{}).
			Where("id = ? AND is_available = ?", room.ID, true).
			Update("is_available", false)
		if res.Error != nil {
			return fmt.Errorf("failed to update room availability: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrRoomUnavailable
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// Get returns the booking, visible only to its owner or an admin.
func (s *BookingService) Get(actorID uint, actorRole string, id uint) (*models.Booking, error) {
	var booking models.Booking
	query := s.DB.Preload("Room").Preload("Hostel")
	if actorRole == models.RoleAdmin {
		query = query.Preload("User")
	}
	if err := query.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	if booking.UserID != actorID && actorRole != models.RoleAdmin {
		return nil, ErrNotBookingOwner
	}
	return &booking, nil
}

// List returns the actor's own bookings, or every booking for admins.
func (s *BookingService) List(actorID uint, actorRole string) ([]models.Booking, error) {
	var bookings []models.Booking
	query := s.DB.Preload("Room").Preload("Hostel")
	if actorRole == models.RoleAdmin {
		query = query.Preload("User")
	} else {
		query = query.Where("user_id = ?", actorID)
	}
	if err := query.Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// bookingPatchColumns maps patchable JSON keys to their columns. Identity
// and ownership columns are absent on purpose.
var bookingPatchColumns = map[string]string{
	"checkInDate":    "check_in_date",
	"check_in_date":  "check_in_date",
	"checkOutDate":   "check_out_date",
	"check_out_date": "check_out_date",
	"totalPrice":     "total_price",
	"total_price":    "total_price",
	"paymentStatus":  "payment_status",
	"payment_status": "payment_status",
	"bookingStatus":  "booking_status",
	"booking_status": "booking_status",
}

// Update applies a field patch after the ownership gate. Patched statuses
// must belong to their fixed enums and patched dates must parse, but price
// and date ordering are deliberately not re-derived on edit.
func (s *BookingService) Update(actorID uint, actorRole string, id uint, patch map[string]interface{}) (*models.Booking, error) {
	booking, err := s.Get(actorID, actorRole, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	for key, value := range patch {
		col, ok := bookingPatchColumns[key]
		if !ok {
			continue
		}

		switch col {
		case "booking_status":
			status, ok := value.(string)
			if !ok || !models.ValidBookingStatus(status) {
				return nil, ErrInvalidStatus
			}
		case "payment_status":
			status, ok := value.(string)
			if !ok || !models.ValidPaymentStatus(status) {
				return nil, ErrInvalidStatus
			}
		case "check_in_date", "check_out_date":
			switch v := value.(type) {
			case string:
				parsed, err := parseDate(v)
				if err != nil {
					return nil, err
				}
				value = parsed
			case time.Time:
			default:
				return nil, ErrInvalidDate
			}
		}
		updates[col] = value
	}
	if len(updates) == 0 {
		return booking, nil
	}

	if err := s.DB.Model(booking).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	return booking, nil
}

// Cancel moves the booking to its terminal Cancelled state and releases the
// room. Cancelling an already-cancelled booking is a harmless no-op for the
// statuses and leaves the room available.
func (s *BookingService) Cancel(actorID uint, actorRole string, id uint) (*models.Booking, error) {
	booking, err := s.Get(actorID, actorRole, id)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Booking{}).Where("id = ?", booking.ID).Updates(map[string]interface{}{
			"booking_status": models.BookingCancelled,
			"payment_status": models.PaymentCancelled,
		}).Error; err != nil {
			return fmt.Errorf("failed to cancel booking: %w", err)
		}
		if err := tx.Model(&models.Room{}).Where("id = ?", booking.RoomID).
			Update("is_available", true).Error; err != nil {
			return fmt.Errorf("failed to release room: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	booking.BookingStatus = models.BookingCancelled
	booking.PaymentStatus = models.PaymentCancelled
	return booking, nil
}
