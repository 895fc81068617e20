package catalog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"healthy-eats-backend/domain"
	"healthy-eats-backend/entities"
	"healthy-eats-backend/internal/metrics"
	"healthy-eats-backend/internal/utils/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type (
	// Reader is the read side the recommendation engine depends on.
	Reader interface {
		Snapshot() *Snapshot
	}

	CatalogService interface {
		Reader
		Load(ctx context.Context) error
		ListDishes() []domain.Dish
		AddDish(ctx context.Context, dish domain.Dish) error
		AddRecipe(ctx context.Context, req domain.AddRecipeRequest) (domain.Dish, error)
		GetGreyZoneIngredients() []string
	}

	// Snapshot is an immutable view of the catalog. Holders must not
	// modify the dishes it references.
	Snapshot struct {
		Dishes      []domain.Dish
		GreyZone    []string
		Fingerprint string
	}

	catalogService struct {
		repository CatalogRepository
		s3         storage.AwsS3
		recorder   *metrics.Recorder
		logger     *zap.Logger

		mu      sync.Mutex
		current atomic.Pointer[Snapshot]
	}
)

var _ CatalogService = (*catalogService)(nil)

// NewCatalogService builds a catalog persisted through repository. s3 may
// be nil, in which case photo uploads are rejected.
func NewCatalogService(repository CatalogRepository, s3 storage.AwsS3, recorder *metrics.Recorder, logger *zap.Logger) CatalogService {
	s := &catalogService{
		repository: repository,
		s3:         s3,
		recorder:   recorder,
		logger:     logger.Named("catalog"),
	}
	s.current.Store(newSnapshot(nil, nil))
	return s
}

// NewInMemoryCatalog builds a catalog without persistence, seeded with dishes.
func NewInMemoryCatalog(dishes []domain.Dish, greyZone []string, logger *zap.Logger) (CatalogService, error) {
	s := &catalogService{logger: logger.Named("catalog")}
	s.current.Store(newSnapshot(nil, greyZone))
	for _, d := range dishes {
		if err := s.AddDish(context.Background(), d); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *catalogService) Load(ctx context.Context) error {
	if s.repository == nil {
		return nil
	}

	rows, err := s.repository.ListDishes(ctx)
	if err != nil {
		return fmt.Errorf("load dishes: %w", err)
	}
	dishes := make([]domain.Dish, 0, len(rows))
	for _, row := range rows {
		d, err := toDomain(row)
		if err != nil {
			return fmt.Errorf("decode dish %q: %w", row.Name, err)
		}
		dishes = append(dishes, d)
	}

	greyRows, err := s.repository.ListGreyZoneIngredients(ctx)
	if err != nil {
		return fmt.Errorf("load grey zone ingredients: %w", err)
	}
	greyZone := make([]string, 0, len(greyRows))
	for _, g := range greyRows {
		greyZone = append(greyZone, g.Ingredient)
	}

	s.mu.Lock()
	s.current.Store(newSnapshot(dishes, greyZone))
	s.mu.Unlock()
	s.recorder.CatalogWrite("loaded", len(dishes))

	s.logger.Info("catalog loaded", zap.Int("dishes", len(dishes)), zap.Int("grey_zone", len(greyZone)))
	return nil
}

func (s *catalogService) Snapshot() *Snapshot {
	return s.current.Load()
}

func (s *catalogService) ListDishes() []domain.Dish {
	return domain.CloneDishes(s.current.Load().Dishes)
}

func (s *catalogService) GetGreyZoneIngredients() []string {
	return append([]string(nil), s.current.Load().GreyZone...)
}

func (s *catalogService) AddDish(ctx context.Context, dish domain.Dish) error {
	dish = dish.Clone()
	dish.Name = strings.TrimSpace(dish.Name)
	if dish.Ingredients == nil {
		dish.Ingredients = []string{}
	}
	if dish.Instructions == nil {
		dish.Instructions = []string{}
	}
	if err := dish.Validate(); err != nil {
		return err
	}
	key := domain.NormalizeTerm(dish.Name)

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.current.Load()
	for _, d := range prev.Dishes {
		if domain.NormalizeTerm(d.Name) == key {
			return &domain.DuplicateNameError{Name: dish.Name}
		}
	}

	if s.repository != nil {
		exists, err := s.repository.ExistsByNormalizedName(ctx, key)
		if err != nil {
			return err
		}
		if exists {
			return &domain.DuplicateNameError{Name: dish.Name}
		}
		row, err := toEntity(dish)
		if err != nil {
			return err
		}
		if err := s.repository.CreateDish(ctx, row); err != nil {
			return err
		}
	}

	dishes := make([]domain.Dish, 0, len(prev.Dishes)+1)
	dishes = append(dishes, prev.Dishes...)
	dishes = append(dishes, dish)
	s.current.Store(newSnapshot(dishes, prev.GreyZone))
	return nil
}

func (s *catalogService) AddRecipe(ctx context.Context, req domain.AddRecipeRequest) (domain.Dish, error) {
	dish := req.ToDish()
	if err := dish.Validate(); err != nil {
		s.recorder.CatalogWrite("invalid", len(s.Snapshot().Dishes))
		return domain.Dish{}, err
	}

	var objectKey string
	if req.Photo != nil {
		if s.s3 == nil {
			return domain.Dish{}, storage.ErrStorageDisabled
		}
		key, err := s.s3.UploadFile(fmt.Sprintf("dish-%s", uuid.New().String()), req.Photo, "dishes", storage.AllowImage...)
		if err != nil {
			return domain.Dish{}, err
		}
		objectKey = key
		dish.PhotoReference = s.s3.GetPublicLinkKey(objectKey)
	}

	if err := s.AddDish(ctx, dish); err != nil {
		if objectKey != "" {
			if delErr := s.s3.DeleteFile(objectKey); delErr != nil {
				s.logger.Warn("failed to remove orphaned photo", zap.String("key", objectKey), zap.Error(delErr))
			}
		}
		switch {
		case errors.Is(err, domain.ErrDuplicateDishName):
			s.recorder.CatalogWrite("duplicate", len(s.Snapshot().Dishes))
		case errors.Is(err, domain.ErrInvalidDish):
			s.recorder.CatalogWrite("invalid", len(s.Snapshot().Dishes))
		default:
			s.recorder.CatalogWrite("error", len(s.Snapshot().Dishes))
			s.logger.Error("failed to add recipe", zap.String("name", dish.Name), zap.Error(err))
		}
		return domain.Dish{}, err
	}

	s.recorder.CatalogWrite("created", len(s.Snapshot().Dishes))
	s.logger.Info("recipe added", zap.String("name", dish.Name))
	return dish.Clone(), nil
}

func newSnapshot(dishes []domain.Dish, greyZone []string) *Snapshot {
	sort.SliceStable(dishes, func(i, j int) bool {
		a, b := domain.NormalizeTerm(dishes[i].Name), domain.NormalizeTerm(dishes[j].Name)
		if a != b {
			return a < b
		}
		return dishes[i].Name < dishes[j].Name
	})
	greyZone = domain.NormalizeTerms(greyZone)

	h := sha256.New()
	for _, d := range dishes {
		h.Write([]byte(domain.NormalizeTerm(d.Name)))
		h.Write([]byte{'\n'})
	}

	return &Snapshot{
		Dishes:      dishes,
		GreyZone:    greyZone,
		Fingerprint: hex.EncodeToString(h.Sum(nil))[:16],
	}
}

func toEntity(d domain.Dish) (*entities.Dish, error) {
	ingredients, err := json.Marshal(d.Ingredients)
	if err != nil {
		return nil, err
	}
	instructions, err := json.Marshal(d.Instructions)
	if err != nil {
		return nil, err
	}
	return &entities.Dish{
		Name:              d.Name,
		NormalizedName:    domain.NormalizeTerm(d.Name),
		PhotoReference:    d.PhotoReference,
		HealthExplanation: d.HealthExplanation,
		Ingredients:       string(ingredients),
		Instructions:      string(instructions),
		Calories:          d.NutritionSummary.Calories,
		Protein:           d.NutritionSummary.Protein,
		Carbohydrates:     d.NutritionSummary.Carbohydrates,
		Fats:              d.NutritionSummary.Fats,
		Sodium:            d.NutritionSummary.Sodium,
	}, nil
}

func toDomain(e *entities.Dish) (domain.Dish, error) {
	d := domain.Dish{
		Name:              e.Name,
		PhotoReference:    e.PhotoReference,
		HealthExplanation: e.HealthExplanation,
		NutritionSummary: domain.NutritionSummary{
			Calories:      e.Calories,
			Protein:       e.Protein,
			Carbohydrates: e.Carbohydrates,
			Fats:          e.Fats,
			Sodium:        e.Sodium,
		},
		Ingredients:  []string{},
		Instructions: []string{},
	}
	if e.Ingredients != "" {
		if err := json.Unmarshal([]byte(e.Ingredients), &d.Ingredients); err != nil {
			return domain.Dish{}, err
		}
	}
	if e.Instructions != "" {
		if err := json.Unmarshal([]byte(e.Instructions), &d.Instructions); err != nil {
			return domain.Dish{}, err
		}
	}
	return d, nil
}
