package entities

import "time"

const (
	ReminderPending     = "pending"
	ReminderDispatching = "dispatching"
	ReminderDone        = "done"
)

const (
	KindWatering   = "watering"
	KindFertilizer = "fertilizer"
	KindHarvest    = "harvest"
	KindGeneral    = "general"
)

// Reminder is one future notification. The (user_id, message, due_date)
// unique index makes re-derivation idempotent at the store level.
type Reminder struct {
	ReminderID uint   `gorm:"primaryKey" json:"reminder_id"`
	UserID     uint   `gorm:"index;uniqueIndex:idx_owner_msg_due" json:"user_id"`
	CropID     uint   `gorm:"index" json:"crop_id"`
	Kind       string `json:"kind"` // watering|fertilizer|harvest|general
	Email      string `json:"email"`
	Message    string `gorm:"uniqueIndex:idx_owner_msg_due" json:"message"`

	DueDate time.Time `gorm:"index;uniqueIndex:idx_owner_msg_due" json:"due_date"`
	Status  string    `gorm:"default:pending" json:"status"` // pending|dispatching|done

	CreatedAt time.Time
	UpdatedAt time.Time
}
