package models

import "time"

// Payment statuses.
const (
	PaymentPending   = "Pending"
	PaymentPaid      = "Paid"
	PaymentCancelled = "Cancelled"
)

// Booking statuses. Cancelled and Completed are terminal; nothing in the
// create/cancel paths sets Completed (reserved for an operator-driven flow).
const (
	BookingConfirmed = "Confirmed"
	BookingCancelled = "Cancelled"
	BookingCompleted = "Completed"
)

// ValidPaymentStatus reports whether status is one of the fixed payment set.
func ValidPaymentStatus(status string) bool {
	return status == PaymentPending || status == PaymentPaid || status == PaymentCancelled
}

// ValidBookingStatus reports whether status is one of the fixed booking set.
func ValidBookingStatus(status string) bool {
	return status == BookingConfirmed || status == BookingCancelled || status == BookingCompleted
}

type Booking struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	UserID   uint `gorm:"index;column:user_id" json:"userId"`
	RoomID   uint `gorm:"index;column:room_id" json:"roomId"`
	HostelID uint `gorm:"index;column:hostel_id" json:"hostelId"` // denormalized from the room

	CheckInDate  time.Time `gorm:"column:check_in_date" json:"checkInDate"`
	CheckOutDate time.Time `gorm:"column:check_out_date" json:"checkOutDate"`
	TotalPrice   float64   `gorm:"column:total_price" json:"totalPrice"`

	PaymentStatus string `gorm:"size:20;default:Pending" json:"paymentStatus"`
	BookingStatus string `gorm:"size:20;default:Confirmed" json:"bookingStatus"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	User   User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Room   Room   `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Hostel Hostel `gorm:"foreignKey:HostelID" json:"hostel,omitempty"`
}
