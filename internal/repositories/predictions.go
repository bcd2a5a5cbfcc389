package repositories

import (
	"context"
	"fmt"

	"fire-risk-api/internal/models"
	"fire-risk-api/pkg/logger"
)

const (
	weekCacheKey = "week_predictions"
	yearCacheKey = "year_predictions"
)

// FilePredictionsRepository reads the week and year prediction artifacts.
type FilePredictionsRepository struct {
	weekPaths []string
	yearPaths []string
	cache     *artifactCache
	l         *logger.Logger
}

func NewFilePredictionsRepository(weekPaths, yearPaths []string, cache *artifactCache, l *logger.Logger) *FilePredictionsRepository {
	return &FilePredictionsRepository{
		weekPaths: weekPaths,
		yearPaths: yearPaths,
		cache:     cache,
		l:         l,
	}
}

func (r *FilePredictionsRepository) WeekPredictions(ctx context.Context) ([]models.WeekPrediction, error) {
	v, err := loadList[models.WeekPrediction](ctx, r, weekCacheKey, r.weekPaths)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *FilePredictionsRepository) YearPredictions(ctx context.Context) ([]models.YearPrediction, error) {
	v, err := loadList[models.YearPrediction](ctx, r, yearCacheKey, r.yearPaths)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// loadList reads a JSON array artifact. An empty array counts as malformed.
func loadList[T any](ctx context.Context, r *FilePredictionsRepository, key string, paths []string) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v, err := r.cache.load(key, func() (any, error) {
		list, path, err := readFirstJSON[[]T](paths, r.l)
		if err != nil {
			return nil, err
		}
		if len(list) == 0 {
			return nil, fmt.Errorf("%w: %s is empty", ErrArtifactMalformed, path)
		}
		r.l.Info("loaded predictions artifact", map[string]any{"path": path, "entries": len(list)})
		return list, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]T), nil
}
