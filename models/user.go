package models

import (
	"time"
)

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// ValidRole reports whether role is one of the fixed role set.
func ValidRole(role string) bool {
	return role == RoleStudent || role == RoleAdmin
}

type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"size:50" json:"firstName"`
	LastName  string `gorm:"size:50" json:"lastName"`
	Email     string `gorm:"uniqueIndex;size:150" json:"email"`
	PRN       string `gorm:"column:prn;uniqueIndex;size:50" json:"prn"`
	Password  string `gorm:"size:255" json:"-"` // bcrypt hash, never serialized
	Role      string `gorm:"size:20;default:student" json:"role"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
