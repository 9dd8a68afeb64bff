package models

import "time"

type Task struct {
	ID          uint64   `gorm:"primarykey" json:"id"`
	Title       string   `gorm:"type:varchar(255);not null" json:"title"`
	Items       []string `gorm:"serializer:json;type:text" json:"items"`
	Description string   `gorm:"type:text" json:"description"`
	// Owner, set at creation and never reassigned.
	UserID    uint64    `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}
