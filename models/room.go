package models

import (
	"time"

	"gorm.io/datatypes"
)

// Room types allowed by the catalog.
const (
	RoomSingle    = "Single"
	RoomDouble    = "Double"
	RoomTriple    = "Triple"
	RoomQuad      = "Quad"
	RoomDormitory = "Dormitory"
)

type Room struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	HostelID uint `gorm:"index;uniqueIndex:idx_hostel_room_number" json:"hostelId"`

	// RoomNumber is unique per hostel, not globally.
	RoomNumber string  `gorm:"column:room_number;uniqueIndex:idx_hostel_room_number;size:50" json:"roomNumber"`
	Floor      int     `json:"floor"`
	Type       string  `gorm:"size:20" json:"type"`
	Capacity   int     `json:"capacity"`
	Price      float64 `json:"price"`

	Amenities   datatypes.JSON `gorm:"column:amenities" json:"amenities,omitempty"`
	IsAvailable bool           `gorm:"column:is_available;default:true" json:"isAvailable"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Hostel Hostel `gorm:"foreignKey:HostelID" json:"hostel,omitempty"`
}
