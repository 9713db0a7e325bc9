package entities

import "time"

type User struct {
	UserID   uint   `gorm:"primaryKey" json:"user_id"`
	Name     string `json:"name"`
	Email    string `gorm:"index" json:"email"`
	Password string `json:"-"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
