package recommendation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"healthy-eats-backend/domain"
	"healthy-eats-backend/internal/metrics"
	"healthy-eats-backend/internal/utils/cache"
	"healthy-eats-backend/pkg/catalog"

	"go.uber.org/zap"
)

const personalizedSuffix = " (Personalized)"

type (
	RecommendationService interface {
		GetFoodRecommendations(ctx context.Context, profile domain.HealthProfile) ([]domain.Dish, error)
	}

	recommendationService struct {
		catalog     catalog.Reader
		scorer      *ConditionScorer
		synthesizer *StarMealSynthesizer
		cache       cache.RecommendationCache
		recorder    *metrics.Recorder
		logger      *zap.Logger
	}
)

func NewRecommendationService(
	catalogReader catalog.Reader,
	recommendationCache cache.RecommendationCache,
	recorder *metrics.Recorder,
	logger *zap.Logger,
	limit int,
) RecommendationService {
	if recommendationCache == nil {
		recommendationCache = cache.NewNoopRecommendationCache()
	}
	greyZone := DefaultGreyZone()
	return &recommendationService{
		catalog:     catalogReader,
		scorer:      NewConditionScorer(limit, greyZone),
		synthesizer: NewStarMealSynthesizer(greyZone),
		cache:       recommendationCache,
		recorder:    recorder,
		logger:      logger.Named("recommendation"),
	}
}

// GetFoodRecommendations returns the star meal (when one can be made) followed
// by the ranked catalog dishes. An empty list is a valid result.
func (s *recommendationService) GetFoodRecommendations(ctx context.Context, profile domain.HealthProfile) ([]domain.Dish, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := profile.Validate(); err != nil {
		s.recorder.ObserveRecommendation("invalid", 0, time.Since(start))
		return nil, err
	}
	p := profile.Normalized()

	snapshot := s.catalog.Snapshot()
	key := s.cacheKey(snapshot.Fingerprint, p)
	if cached, ok := s.cache.Get(ctx, key); ok {
		s.recorder.CacheLookup(true)
		s.recorder.ObserveRecommendation("cached", len(cached), time.Since(start))
		return cached, nil
	}
	s.recorder.CacheLookup(false)

	safe, excluded := FilterSafe(snapshot.Dishes, NewAllergies(p.Allergies))
	s.recorder.DishesExcluded(excluded)
	base := s.scorer.Rank(safe, p)

	result := make([]domain.Dish, 0, len(base)+1)
	star, ok := s.synthesizer.Synthesize(p)
	switch {
	case ok:
		star.Name = disambiguate(star.Name, base)
		result = append(result, star)
		s.recorder.StarMeal("included")
	case p.FavoriteFood != "":
		s.recorder.StarMeal("omitted")
		s.logger.Debug("star meal omitted", zap.String("favorite_food", p.FavoriteFood))
	}
	result = append(result, domain.CloneDishes(base)...)

	s.cache.Set(ctx, key, result)

	outcome := "ok"
	if len(result) == 0 {
		outcome = "empty"
	}
	s.recorder.ObserveRecommendation(outcome, len(result), time.Since(start))
	s.logger.Debug("recommendations computed",
		zap.Int("catalog", len(snapshot.Dishes)),
		zap.Int("excluded", excluded),
		zap.Int("returned", len(result)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return result, nil
}

func (s *recommendationService) cacheKey(fingerprint string, p domain.HealthProfile) string {
	h := sha256.New()
	fmt.Fprintf(h, "%d|%#v", s.scorer.Limit(), p)
	return fingerprint + ":" + hex.EncodeToString(h.Sum(nil))
}

// disambiguate suffixes name until it differs from every dish name in base.
func disambiguate(name string, base []domain.Dish) string {
	taken := make(map[string]struct{}, len(base))
	for _, d := range base {
		taken[domain.NormalizeTerm(d.Name)] = struct{}{}
	}
	if _, clash := taken[domain.NormalizeTerm(name)]; !clash {
		return name
	}
	candidate := name + personalizedSuffix
	for i := 2; ; i++ {
		if _, clash := taken[domain.NormalizeTerm(candidate)]; !clash {
			return candidate
		}
		candidate = fmt.Sprintf("%s (Personalized %d)", name, i)
	}
}
