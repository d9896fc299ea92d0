package models

// Role ids are ordered by privilege: 1 (Admin) is the most privileged,
// 4 (Commenter) the least. Downstream eligibility checks rely on this order.
const (
	RoleAdmin     = 1
	RoleEditor    = 2
	RoleViewer    = 3
	RoleCommenter = 4
)

type Role struct {
	ID          int    `gorm:"primaryKey"`
	Name        string `gorm:"unique;not null"`
	Description string
}
