package models

import (
	"time"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null;size:100" json:"username"`
	Email        string    `gorm:"not null;size:200" json:"email"`
	PasswordHash string    `gorm:"not null;size:512" json:"-"`
	CreatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	Memos        []Memo    `gorm:"foreignKey:UserID" json:"memos,omitempty"`
}
