// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered account. Users are immutable after
// registration; there are no profile-edit or delete endpoints.
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	Email      string    `gorm:"unique;not null" json:"email"`
	Password   string    `gorm:"not null" json:"-"`
	ProfileImg string    `json:"profileImg"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
