package models

import "time"

type User struct {
	ID           uint64 `gorm:"primarykey" json:"id"`
	Name         string `gorm:"type:varchar(255);not null" json:"name"`
	Phone        string `gorm:"type:varchar(32);uniqueIndex;not null" json:"phone"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	// Legacy account-recovery answer, stored hashed at sign-up.
	// No recovery flow reads it yet.
	RecoveryAnswerHash string    `gorm:"type:varchar(255)" json:"-"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	// Relations
	Tasks []Task `gorm:"foreignKey:UserID" json:"-"`
}
