package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Dish struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name              string    `gorm:"not null" json:"name"`
	NormalizedName    string    `gorm:"not null;uniqueIndex" json:"-"`
	PhotoReference    string    `json:"photo_reference"`
	HealthExplanation string    `gorm:"type:text" json:"health_explanation"`
	Ingredients       string    `gorm:"type:text" json:"ingredients"`
	Instructions      string    `gorm:"type:text" json:"instructions"`
	Calories          int       `json:"calories"`
	Protein           int       `json:"protein"`
	Carbohydrates     int       `json:"carbohydrates"`
	Fats              int       `json:"fats"`
	Sodium            int       `json:"sodium"`
	Timestamp
}

func (d *Dish) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
