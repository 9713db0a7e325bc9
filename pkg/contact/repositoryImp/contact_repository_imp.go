package repositoryImp

import (
	"farmkeep/entities"
	"farmkeep/pkg/contact/repository"

	"gorm.io/gorm"
)

type contactRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ContactRepository { return &contactRepo{db} }

func (r *contactRepo) Create(m *entities.Contact) error { return r.db.Create(m).Error }

func (r *contactRepo) FindAll() ([]entities.Contact, error) {
	var out []entities.Contact
	if err := r.db.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *contactRepo) PatchStatus(id uint, status string) error {
	return r.db.Model(&entities.Contact{}).Where("contact_id = ?", id).Update("status", status).Error
}

func (r *contactRepo) Delete(id uint) error {
	return r.db.Delete(&entities.Contact{}, "contact_id = ?", id).Error
}
