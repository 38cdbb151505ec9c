package models

import "time"

type Hostel struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:150" json:"name" binding:"required"`
	Location    string `gorm:"size:150" json:"location"`
	Description string `gorm:"type:text" json:"description"`
	Address     string `gorm:"size:255" json:"address"`
	City        string `gorm:"size:100" json:"city"`
	State       string `gorm:"size:100" json:"state"`
	ZipCode     string `gorm:"size:20" json:"zipCode"`
	Phone       string `gorm:"size:30" json:"phone"`
	Email       string `gorm:"size:150" json:"email"`
	Floors      int    `json:"floors"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Rooms []Room `gorm:"foreignKey:HostelID" json:"rooms,omitempty"`
}
