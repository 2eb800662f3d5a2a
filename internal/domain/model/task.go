package model

import (
	"time"
)

// Task belongs to a parent list. CreateUserID is the user who created the
// task, which may differ from the parent list's creator when the list is
// shared. Provenance and soft-delete semantics match List.
type Task struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Title        string `gorm:"size:100;not null" json:"title"`
	IsDeleted    bool   `gorm:"not null;default:false" json:"is_deleted"`
	CreateUserID int64  `gorm:"not null" json:"create_user_id"`
	UpdateUserID *int64 `json:"update_user_id"`
	ListID       int64  `gorm:"not null;index" json:"list_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Task) TableName() string {
	return "tasks"
}
