package model

import (
	"time"
)

// List is a TODO list. IsShared records whether the list has ever been
// shared, not whether it currently is; it never resets to false. IsDeleted
// is a monotonic soft-delete flag: deleted lists are kept but unreachable.
type List struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Title        string `gorm:"size:100;not null" json:"title"`
	IsShared     bool   `gorm:"not null;default:false" json:"is_shared"`
	IsDeleted    bool   `gorm:"not null;default:false" json:"is_deleted"`
	CreateUserID int64  `gorm:"not null;index" json:"create_user_id"`
	UpdateUserID *int64 `json:"update_user_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (List) TableName() string {
	return "lists"
}
