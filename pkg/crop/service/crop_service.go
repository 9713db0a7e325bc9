package service

import "farmkeep/entities"

// CropInput carries the crop fields as the API receives them. Explicit
// date lists win over frequencies; dates arrive as strings and are parsed
// leniently (unparseable entries are dropped).
type CropInput struct {
	UserID   uint     `json:"user_id"`
	CropType string   `json:"crop_type"`
	LandArea string   `json:"land_area"`
	SoilType string   `json:"soil_type"`

	GrowingDate string `json:"growing_date"`
	HarvestDate string `json:"harvest_date"`

	WateringDates   []string `json:"watering_dates"`
	FertilizerDates []string `json:"fertilizer_dates"`

	WateringFrequency   *int `json:"watering_frequency"`
	FertilizerFrequency *int `json:"fertilizer_frequency"`
}

type CropService interface {
	// Create registers the crop and derives its reminders.
	Create(in CropInput) (*entities.Crop, error)
	// Update applies the supplied subset of fields, purges the crop's old
	// reminders and derives fresh ones.
	Update(id uint, in CropInput) (*entities.Crop, error)
	// Delete removes the crop and every reminder derived from it.
	Delete(id uint) error
	// PurgeReminders drops the crop's reminders without touching the crop.
	PurgeReminders(id uint) error

	Get(id uint) (*entities.Crop, error)
	List() ([]entities.Crop, error)
	ListByUser(userID uint) ([]entities.Crop, error)
}
