package models

type AccountStatus string

const (
	StatusActive    AccountStatus = "Active"
	StatusSuspended AccountStatus = "Suspended"
	StatusPending   AccountStatus = "Pending"
)

// User belongs to exactly one organization; the email domain is derived from
// the organization name, so users of one organization share a domain.
type User struct {
	ID             int    `gorm:"primaryKey"`
	Name           string `gorm:"not null"`
	Email          string `gorm:"not null"`
	Phone          string
	Age            int
	RoleID         int           `gorm:"index;not null"`
	OrganizationID int           `gorm:"index;not null"`
	Status         AccountStatus `gorm:"not null"`
}
