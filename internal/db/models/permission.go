package models

import "time"

type AccessType string

const (
	AccessView   AccessType = "View"
	AccessEdit   AccessType = "Edit"
	AccessDelete AccessType = "Delete"
)

// Permission rows are unique on (DocID, UserID, AccessType) across the whole
// dataset. The document owner always holds an Edit permission granted at the
// document's creation time.
type Permission struct {
	ID         int        `gorm:"primaryKey"`
	DocID      int        `gorm:"uniqueIndex:idx_permission_key;not null"`
	UserID     int        `gorm:"uniqueIndex:idx_permission_key;not null"`
	AccessType AccessType `gorm:"uniqueIndex:idx_permission_key;not null"`
	GrantedAt  time.Time
}
