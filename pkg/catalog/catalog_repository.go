package catalog

import (
	"context"

	"healthy-eats-backend/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	CatalogRepository interface {
		ListDishes(ctx context.Context) ([]*entities.Dish, error)
		CreateDish(ctx context.Context, dish *entities.Dish) error
		ExistsByNormalizedName(ctx context.Context, normalizedName string) (bool, error)
		CountDishes(ctx context.Context) (int64, error)
		ListGreyZoneIngredients(ctx context.Context) ([]*entities.GreyZoneIngredient, error)
		SaveGreyZoneIngredients(ctx context.Context, items []*entities.GreyZoneIngredient) error
	}

	catalogRepository struct {
		db *gorm.DB
	}
)

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) ListDishes(ctx context.Context) ([]*entities.Dish, error) {
	var dishes []*entities.Dish
	if err := r.db.WithContext(ctx).
		Order("normalized_name asc").
		Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}

func (r *catalogRepository) CreateDish(ctx context.Context, dish *entities.Dish) error {
	return r.db.WithContext(ctx).Create(dish).Error
}

func (r *catalogRepository) ExistsByNormalizedName(ctx context.Context, normalizedName string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Dish{}).
		Where("normalized_name = ?", normalizedName).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *catalogRepository) CountDishes(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Dish{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *catalogRepository) ListGreyZoneIngredients(ctx context.Context) ([]*entities.GreyZoneIngredient, error) {
	var items []*entities.GreyZoneIngredient
	if err := r.db.WithContext(ctx).
		Order("ingredient asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// SaveGreyZoneIngredients appends new rows and leaves existing ingredients untouched.
func (r *catalogRepository) SaveGreyZoneIngredients(ctx context.Context, items []*entities.GreyZoneIngredient) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "ingredient"}}, DoNothing: true}).
		Create(&items).Error
}
