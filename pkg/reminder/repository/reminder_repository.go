package repository

import (
	"time"

	"farmkeep/entities"
)

type ReminderRepository interface {
	// Create inserts a pending reminder. A (user, message, due date) that
	// already exists surfaces as gorm.ErrDuplicatedKey.
	Create(r *entities.Reminder) error
	FindByID(id uint) (*entities.Reminder, error)
	FindAll() ([]entities.Reminder, error)
	FindByUser(userID uint) ([]entities.Reminder, error)
	// FindDue lists pending reminders with from <= due_date < to.
	FindDue(from, to time.Time) ([]entities.Reminder, error)
	// Claim flips pending -> dispatching; false means another worker won.
	Claim(id uint) (bool, error)
	// Release puts a claimed reminder back to pending for the next pass.
	Release(id uint) error
	MarkDone(id uint) error
	Delete(id uint) error
	DeleteByCrop(cropID uint) error
}
