package models

// Policy caps the least-privileged role id that may hold unsupervised access
// to documents at a confidentiality level. Role ids grow as privilege
// shrinks, so eligibility is RoleID <= MaxAllowedRoleID.
type Policy struct {
	ID               int    `gorm:"primaryKey"`
	LevelName        string `gorm:"unique;not null"`
	MaxAllowedRoleID int    `gorm:"not null"`
	Description      string
}
