package models

import "time"

type ActionType string

const (
	ActionView     ActionType = "VIEW"
	ActionDownload ActionType = "DOWNLOAD"
	ActionUpload   ActionType = "UPLOAD"
	ActionDelete   ActionType = "DELETE"
)

// Log records an action covered by an existing permission on the document.
type Log struct {
	ID              int        `gorm:"primaryKey"`
	UserID          int        `gorm:"index;not null"`
	DocID           int        `gorm:"index;not null"`
	Action          ActionType `gorm:"not null"`
	ActionTimestamp time.Time
	IPAddress       string
}
