package repository

import "farmkeep/entities"

type CropRepository interface {
	Create(c *entities.Crop) error
	FindByID(id uint) (*entities.Crop, error)
	FindByUser(userID uint) ([]entities.Crop, error)
	FindAll() ([]entities.Crop, error)
	Save(c *entities.Crop) error
	Delete(id uint) error
	// LatestByUser returns the owner's crop with the most recent growing
	// date, or gorm.ErrRecordNotFound.
	LatestByUser(userID uint) (*entities.Crop, error)
}
