package repositories

import (
	"context"

	"fire-risk-api/internal/models"
	"fire-risk-api/pkg/logger"
)

const metricsCacheKey = "model_metrics"

// FileMetricsRepository reads the model comparison written by the training job.
type FileMetricsRepository struct {
	paths []string
	cache *artifactCache
	l     *logger.Logger
}

func NewFileMetricsRepository(paths []string, cache *artifactCache, l *logger.Logger) *FileMetricsRepository {
	return &FileMetricsRepository{
		paths: paths,
		cache: cache,
		l:     l,
	}
}

func (r *FileMetricsRepository) ModelComparison(ctx context.Context) (models.ModelComparison, error) {
	if err := ctx.Err(); err != nil {
		return models.ModelComparison{}, err
	}

	v, err := r.cache.load(metricsCacheKey, func() (any, error) {
		comparison, path, err := readFirstJSON[models.ModelComparison](r.paths, r.l)
		if err != nil {
			return nil, err
		}
		r.l.Info("loaded metrics artifact", map[string]any{"path": path})
		return comparison, nil
	})
	if err != nil {
		return models.ModelComparison{}, err
	}

	return v.(models.ModelComparison), nil
}
