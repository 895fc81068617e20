package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"healthy-eats-backend/domain"
	"healthy-eats-backend/entities"
	"healthy-eats-backend/pkg/catalog"
	"healthy-eats-backend/pkg/recommendation"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Seed fills an empty dish table with the default catalog and makes sure
// every built-in grey-zone ingredient has a row.
func Seed(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	repository := catalog.NewCatalogRepository(db)

	count, err := repository.CountDishes(ctx)
	if err != nil {
		return fmt.Errorf("error counting dishes: %w", err)
	}
	if count == 0 {
		service := catalog.NewCatalogService(repository, nil, nil, log)
		for _, dish := range catalog.DefaultDishes() {
			err := service.AddDish(ctx, dish)
			if err != nil && !errors.Is(err, domain.ErrDuplicateDishName) {
				return fmt.Errorf("error seeding dish %q: %w", dish.Name, err)
			}
		}
		log.Info("seeded default dishes", zap.Int("dishes", len(catalog.DefaultDishes())))
	}

	entries := recommendation.DefaultGreyZone().Entries()
	rows := make([]*entities.GreyZoneIngredient, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, &entities.GreyZoneIngredient{
			Ingredient: e.Ingredient,
			Conditions: strings.Join(e.Conditions, ","),
		})
	}
	if err := repository.SaveGreyZoneIngredients(ctx, rows); err != nil {
		return fmt.Errorf("error seeding grey zone ingredients: %w", err)
	}
	return nil
}
