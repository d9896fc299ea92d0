package models

import "time"

// PasswordProtection exists one-to-one with documents flagged as protected.
type PasswordProtection struct {
	ID               int    `gorm:"primaryKey"`
	DocID            int    `gorm:"uniqueIndex;not null"`
	PasswordHash     string `gorm:"not null"`
	EncryptionMethod string `gorm:"not null"`
	LastUpdatedAt    time.Time
}
