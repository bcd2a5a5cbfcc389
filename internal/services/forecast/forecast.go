// Package forecast serves the artifacts precomputed by the training job: model
// metrics and the week and year predictions.
package forecast

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"fire-risk-api/internal/models"
	"fire-risk-api/internal/repositories"
	"fire-risk-api/internal/services/synthetic"
	"fire-risk-api/pkg/logger"
	"fire-risk-api/pkg/observe"
)

const (
	metricsArtifact = "model_metrics"
	weekArtifact    = "week_predictions"
	yearArtifact    = "year_predictions"
)

// Service reads the training artifacts and substitutes built-in or synthetic
// data when one is unavailable. It never returns an artifact error.
type Service struct {
	metricsRepo     repositories.MetricsRepository
	predictionsRepo repositories.PredictionsRepository
	gen             *synthetic.Generator
	clock           clockwork.Clock
	loc             *time.Location
	l               *logger.Logger
	metrics         *observe.Metrics
}

func NewService(
	metricsRepo repositories.MetricsRepository,
	predictionsRepo repositories.PredictionsRepository,
	gen *synthetic.Generator,
	clock clockwork.Clock,
	loc *time.Location,
	l *logger.Logger,
	metrics *observe.Metrics,
) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if loc == nil {
		loc = time.UTC
	}
	if gen == nil {
		gen = synthetic.NewGenerator(0)
	}
	return &Service{
		metricsRepo:     metricsRepo,
		predictionsRepo: predictionsRepo,
		gen:             gen,
		clock:           clock,
		loc:             loc,
		l:               l,
		metrics:         metrics,
	}
}

// ModelMetrics returns the metrics artifact as written by the training job.
// An artifact without any model is treated as malformed.
func (s *Service) ModelMetrics(ctx context.Context) models.ModelComparison {
	comparison, err := s.metricsRepo.ModelComparison(ctx)
	if err == nil && comparison.NeuralNetwork == nil && comparison.KNN == nil && comparison.RandomForest == nil {
		err = repositories.ErrArtifactMalformed
	}
	if err != nil {
		s.fallback(metricsArtifact, err)
		return DefaultModelComparison()
	}
	return comparison
}

func (s *Service) WeekPredictions(ctx context.Context) []models.WeekPrediction {
	week, err := s.predictionsRepo.WeekPredictions(ctx)
	if err != nil {
		s.fallback(weekArtifact, err)
		return s.syntheticWeek()
	}
	return week
}

func (s *Service) YearPredictions(ctx context.Context) []models.YearPrediction {
	year, err := s.predictionsRepo.YearPredictions(ctx)
	if err != nil {
		s.fallback(yearArtifact, err)
		return s.syntheticYear()
	}
	return year
}

func (s *Service) fallback(artifact string, err error) {
	reason := repositories.FallbackReason(err)
	s.l.Warning("serving fallback data", map[string]any{
		"artifact": artifact,
		"reason":   reason,
		"err":      err.Error(),
	})
	s.metrics.CountFallback(artifact, reason)
}

// DefaultModelComparison is the metrics table shown when no training run is
// available.
func DefaultModelComparison() models.ModelComparison {
	return models.ModelComparison{
		NeuralNetwork: &models.ModelMetrics{
			ModelName: "Neural Network",
			Train:     &models.ErrorMetrics{MSE: 45.23, RMSE: 6.72, MAE: 4.81, R2: r2(0.87)},
			Test:      &models.ErrorMetrics{MSE: 52.18, RMSE: 7.22, MAE: 5.34, R2: r2(0.82)},
		},
		KNN: &models.ModelMetrics{
			ModelName: "KNN",
			Train:     &models.ErrorMetrics{MSE: 48.91, RMSE: 6.99, MAE: 5.12, R2: r2(0.85)},
			Test:      &models.ErrorMetrics{MSE: 55.67, RMSE: 7.46, MAE: 5.67, R2: r2(0.8)},
		},
		RandomForest: &models.ModelMetrics{
			ModelName: "Random Forest",
			Train:     &models.ErrorMetrics{MSE: 42.15, RMSE: 6.49, MAE: 4.52, R2: r2(0.89)},
			Test:      &models.ErrorMetrics{MSE: 49.33, RMSE: 7.02, MAE: 5.21, R2: r2(0.84)},
		},
	}
}

func r2(v float64) *float64 {
	return &v
}
