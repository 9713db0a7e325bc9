package entities

import (
	"time"

	"gorm.io/datatypes"
)

type Crop struct {
	CropID   uint   `gorm:"primaryKey" json:"crop_id"`
	UserID   uint   `gorm:"index" json:"user_id"`
	CropType string `json:"crop_type"`
	LandArea string `json:"land_area"`
	SoilType string `json:"soil_type"` // sand|loam|clay|...

	GrowingDate time.Time `json:"growing_date"`
	HarvestDate time.Time `json:"harvest_date"`

	// materialized event dates, midnight-normalized
	WateringDates   datatypes.JSONSlice[time.Time] `json:"watering_dates"`
	FertilizerDates datatypes.JSONSlice[time.Time] `json:"fertilizer_dates"`

	// kept so the sequences can be regenerated on update
	WateringFrequency   *int `json:"watering_frequency"`
	FertilizerFrequency *int `json:"fertilizer_frequency"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
