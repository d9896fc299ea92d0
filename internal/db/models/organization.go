package models

import "time"

type Organization struct {
	ID        int    `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Type      string // "Legal", "Finance", "Academic", "Tech"
	Address   string
	CreatedAt time.Time
}
