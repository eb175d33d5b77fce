package models

import (
	"time"
)

// Item visibility values.
const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

// Item is a shared post. CreatorName and CreatorImg are snapshots of the
// creating user taken at write time; they are intentionally not kept in sync
// with the user record afterwards.
type Item struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Img         string    `json:"img"`
	Visibility  string    `gorm:"not null;default:private" json:"visibility"`
	Ratings     []float64 `gorm:"serializer:json" json:"ratings"`
	CreatorName string    `json:"creatorName"`
	CreatorImg  string    `json:"creatorImg"`
	UserID      uint      `gorm:"not null;index" json:"userId"`
	User        User      `gorm:"foreignKey:UserID" json:"user"`
	Comments    []Comment `gorm:"foreignKey:ItemID" json:"comments"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// IsValidVisibility reports whether v is an accepted visibility value.
func IsValidVisibility(v string) bool {
	return v == VisibilityPublic || v == VisibilityPrivate
}
