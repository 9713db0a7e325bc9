package repository

import "farmkeep/entities"

type UserRepository interface {
	Create(u *entities.User) error
	FindByID(id uint) (*entities.User, error)
	FindByEmail(email string) (*entities.User, error)
	FindAll() ([]entities.User, error)
	Save(u *entities.User) error
	Delete(id uint) error
}
