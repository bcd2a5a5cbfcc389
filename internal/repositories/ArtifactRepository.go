package repositories

import (
	"context"
	"errors"

	"fire-risk-api/config"
	"fire-risk-api/internal/models"
	"fire-risk-api/pkg/logger"
)

var (
	// ErrArtifactNotFound means none of the candidate files exists.
	ErrArtifactNotFound = errors.New("artifact not found")
	// ErrArtifactMalformed means at least one candidate exists but none parses.
	ErrArtifactMalformed = errors.New("artifact malformed")
)

// FallbackReason labels an artifact error for logs and metrics.
func FallbackReason(err error) string {
	switch {
	case errors.Is(err, ErrArtifactNotFound):
		return "not_found"
	case errors.Is(err, ErrArtifactMalformed):
		return "malformed"
	default:
		return "error"
	}
}

type MetricsRepository interface {
	ModelComparison(ctx context.Context) (models.ModelComparison, error)
}

type PredictionsRepository interface {
	WeekPredictions(ctx context.Context) ([]models.WeekPrediction, error)
	YearPredictions(ctx context.Context) ([]models.YearPrediction, error)
}

type ObservationRepository interface {
	Observations(ctx context.Context) ([]models.Observation, error)
}

// Repositories groups the file-backed artifact sources of the service.
type Repositories struct {
	Metrics      MetricsRepository
	Predictions  PredictionsRepository
	Observations ObservationRepository
}

func InitArtifactRepositories(cfg *config.Config, l *logger.Logger) Repositories {
	cache := newArtifactCache(cfg.ArtifactCacheTTL)

	return Repositories{
		Metrics:      NewFileMetricsRepository(cfg.MetricsPaths, cache, l),
		Predictions:  NewFilePredictionsRepository(cfg.WeekPredictionsPaths, cfg.YearPredictionsPaths, cache, l),
		Observations: NewCSVObservationRepository(cfg.HistoricalCSVPath, cache, l),
	}
}
