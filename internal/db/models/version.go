package models

import "time"

// Version ids are assigned by global ModifiedAt order after generation;
// VersionNumber restarts at 1 per document in the same order.
type Version struct {
	ID               int `gorm:"primaryKey"`
	DocID            int `gorm:"index;not null"`
	VersionNumber    int `gorm:"not null"`
	ModifiedByUserID int `gorm:"not null"`
	ModifiedAt       time.Time
	ChangeSummary    string
}
