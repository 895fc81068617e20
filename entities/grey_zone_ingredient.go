package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GreyZoneIngredient struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Ingredient string    `gorm:"not null;uniqueIndex" json:"ingredient"`
	Conditions string    `gorm:"type:text" json:"conditions"`
	Timestamp
}

func (g *GreyZoneIngredient) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
