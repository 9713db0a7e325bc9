package repository

import "farmkeep/entities"

type ContactRepository interface {
	Create(m *entities.Contact) error
	FindAll() ([]entities.Contact, error)
	PatchStatus(id uint, status string) error
	Delete(id uint) error
}
