package entities

import "time"

type Contact struct {
	ContactID uint   `gorm:"primaryKey" json:"contact_id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	Status    string `gorm:"default:new" json:"status"` // new|read|replied

	CreatedAt time.Time
	UpdatedAt time.Time
}
