package models

import (
	"time"
)

// Comment belongs to an Item. UserName and UserImg are snapshots of the
// author at write time, like the creator snapshot on Item.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ItemID    uint      `gorm:"not null;index" json:"itemId"`
	UserID    uint      `gorm:"not null" json:"userId"`
	UserName  string    `json:"userName"`
	UserImg   string    `json:"userImg"`
	Text      string    `gorm:"not null" json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}
