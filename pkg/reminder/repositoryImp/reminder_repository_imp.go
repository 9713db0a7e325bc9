package repositoryImp

import (
	"time"

	"farmkeep/entities"
	"farmkeep/pkg/reminder/repository"

	"gorm.io/gorm"
)

type reminderRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ReminderRepository { return &reminderRepo{db} }

func (r *reminderRepo) Create(rem *entities.Reminder) error { return r.db.Create(rem).Error }

func (r *reminderRepo) FindByID(id uint) (*entities.Reminder, error) {
	var rem entities.Reminder
	if err := r.db.Where("reminder_id = ?", id).First(&rem).Error; err != nil {
		return nil, err
	}
	return &rem, nil
}

func (r *reminderRepo) FindAll() ([]entities.Reminder, error) {
	var out []entities.Reminder
	if err := r.db.Order("due_date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *reminderRepo) FindByUser(userID uint) ([]entities.Reminder, error) {
	var out []entities.Reminder
	if err := r.db.Where("user_id = ?", userID).Order("due_date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *reminderRepo) FindDue(from, to time.Time) ([]entities.Reminder, error) {
	var out []entities.Reminder
	err := r.db.
		Where("due_date >= ? AND due_date < ?", from, to).
		Where("status = ?", entities.ReminderPending).
		Order("reminder_id ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *reminderRepo) Claim(id uint) (bool, error) {
	res := r.db.Model(&entities.Reminder{}).
		Where("reminder_id = ? AND status = ?", id, entities.ReminderPending).
		Update("status", entities.ReminderDispatching)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *reminderRepo) Release(id uint) error {
	return r.db.Model(&entities.Reminder{}).
		Where("reminder_id = ? AND status = ?", id, entities.ReminderDispatching).
		Update("status", entities.ReminderPending).Error
}

func (r *reminderRepo) MarkDone(id uint) error {
	return r.db.Model(&entities.Reminder{}).
		Where("reminder_id = ?", id).
		Update("status", entities.ReminderDone).Error
}

func (r *reminderRepo) Delete(id uint) error {
	return r.db.Delete(&entities.Reminder{}, "reminder_id = ?", id).Error
}

func (r *reminderRepo) DeleteByCrop(cropID uint) error {
	return r.db.Delete(&entities.Reminder{}, "crop_id = ?", cropID).Error
}
