package repositoryImp

import (
	"farmkeep/entities"
	"farmkeep/pkg/crop/repository"

	"gorm.io/gorm"
)

type cropRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CropRepository { return &cropRepo{db} }

func (r *cropRepo) Create(c *entities.Crop) error { return r.db.Create(c).Error }

func (r *cropRepo) FindByID(id uint) (*entities.Crop, error) {
	var c entities.Crop
	if err := r.db.Where("crop_id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *cropRepo) FindByUser(userID uint) ([]entities.Crop, error) {
	var out []entities.Crop
	if err := r.db.Where("user_id = ?", userID).Order("growing_date DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *cropRepo) FindAll() ([]entities.Crop, error) {
	var out []entities.Crop
	if err := r.db.Order("crop_id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *cropRepo) Save(c *entities.Crop) error { return r.db.Save(c).Error }

func (r *cropRepo) Delete(id uint) error {
	return r.db.Delete(&entities.Crop{}, "crop_id = ?", id).Error
}

func (r *cropRepo) LatestByUser(userID uint) (*entities.Crop, error) {
	var c entities.Crop
	if err := r.db.Where("user_id = ?", userID).Order("growing_date DESC").First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}
