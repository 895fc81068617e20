package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "healthy_eats"

// Recorder holds the business metrics. A nil *Recorder records nothing.
type Recorder struct {
	registry *prometheus.Registry

	recommendationsTotal   *prometheus.CounterVec
	recommendationDuration prometheus.Histogram
	recommendedDishes      prometheus.Histogram
	dishesExcludedTotal    prometheus.Counter
	starMealsTotal         *prometheus.CounterVec
	cacheLookupsTotal      *prometheus.CounterVec
	catalogWritesTotal     *prometheus.CounterVec
	catalogDishes          prometheus.Gauge
}

func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		recommendationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "recommendations_total",
				Help:      "Recommendation requests by outcome",
			},
			[]string{"outcome"},
		),
		recommendationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "recommendation_duration_seconds",
				Help:      "Time spent computing recommendations",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
		),
		recommendedDishes: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "recommended_dishes",
				Help:      "Number of dishes returned per request",
				Buckets:   prometheus.LinearBuckets(0, 1, 8),
			},
		),
		dishesExcludedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dishes_excluded_by_allergy_total",
				Help:      "Catalog dishes removed by the safety filter",
			},
		),
		starMealsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "star_meals_total",
				Help:      "Star meal synthesis results",
			},
			[]string{"result"},
		),
		cacheLookupsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_lookups_total",
				Help:      "Recommendation cache lookups",
			},
			[]string{"result"},
		),
		catalogWritesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "catalog_writes_total",
				Help:      "Catalog write attempts by result",
			},
			[]string{"result"},
		),
		catalogDishes: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "catalog_dishes",
				Help:      "Dishes currently in the catalog",
			},
		),
	}
}

func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

func (r *Recorder) ObserveRecommendation(outcome string, dishes int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.recommendationsTotal.WithLabelValues(outcome).Inc()
	r.recommendationDuration.Observe(elapsed.Seconds())
	r.recommendedDishes.Observe(float64(dishes))
}

func (r *Recorder) DishesExcluded(n int) {
	if r == nil || n == 0 {
		return
	}
	r.dishesExcludedTotal.Add(float64(n))
}

func (r *Recorder) StarMeal(result string) {
	if r == nil {
		return
	}
	r.starMealsTotal.WithLabelValues(result).Inc()
}

func (r *Recorder) CacheLookup(hit bool) {
	if r == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	r.cacheLookupsTotal.WithLabelValues(result).Inc()
}

func (r *Recorder) CatalogWrite(result string, size int) {
	if r == nil {
		return
	}
	r.catalogWritesTotal.WithLabelValues(result).Inc()
	r.catalogDishes.Set(float64(size))
}
