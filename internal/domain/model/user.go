package model

import (
	"time"
)

// User is a registered account. Users are created once at registration and
// never updated or deleted by this service.
type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"size:100;not null;uniqueIndex" json:"username"`
	Email        string `gorm:"size:100;not null;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"size:100;not null" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}
