package repositoryImp

import (
	"farmkeep/entities"
	"farmkeep/pkg/user/repository"

	"gorm.io/gorm"
)

type userRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.UserRepository { return &userRepo{db} }

func (r *userRepo) Create(u *entities.User) error { return r.db.Create(u).Error }

func (r *userRepo) FindByID(id uint) (*entities.User, error) {
	var u entities.User
	if err := r.db.Where("user_id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) FindByEmail(email string) (*entities.User, error) {
	var u entities.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) FindAll() ([]entities.User, error) {
	var out []entities.User
	if err := r.db.Order("user_id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *userRepo) Save(u *entities.User) error { return r.db.Save(u).Error }

func (r *userRepo) Delete(id uint) error {
	return r.db.Delete(&entities.User{}, "user_id = ?", id).Error
}
