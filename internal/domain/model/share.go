package model

import (
	"time"
)

// ListShare is one directed grant of list access from one account's email to
// another's. Grants are additive history: revocation sets IsDeleted and a
// revoked grant is never restored (a later re-share inserts a fresh row).
// The set of non-deleted grants for a list is its current shared-with set.
type ListShare struct {
	ID              int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ListID          int64  `gorm:"not null;index:idx_list_shares_grant" json:"list_id"`
	SharedByEmail   string `gorm:"size:100;not null;index:idx_list_shares_grant" json:"shared_by_email"`
	SharedWithEmail string `gorm:"size:100;not null;index:idx_list_shares_grant;index" json:"shared_with_email"`
	IsDeleted       bool   `gorm:"not null;default:false" json:"is_deleted"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (ListShare) TableName() string {
	return "list_shares"
}
