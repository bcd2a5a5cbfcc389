package risk

import (
	"context"
	"math"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"

	"fire-risk-api/internal/models"
	"fire-risk-api/internal/repositories"
	"fire-risk-api/pkg/logger"
	"fire-risk-api/pkg/observe"
)

// TimestampLayout is RFC 3339 with milliseconds, always rendered in UTC.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

const metricsArtifact = "model_metrics"

var (
	ErrMissingCoordinates = errors.New("latitude and longitude are required")
	ErrInvalidCoordinates = errors.New("latitude and longitude must be finite numbers")
)

// Service answers point predictions.
type Service struct {
	repo      repositories.MetricsRepository
	projector *Projector
	clock     clockwork.Clock
	loc       *time.Location
	l         *logger.Logger
	metrics   *observe.Metrics
}

func NewService(
	repo repositories.MetricsRepository,
	projector *Projector,
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
	if projector == nil {
		projector = NewProjector(nil)
	}
	return &Service{
		repo:      repo,
		projector: projector,
		clock:     clock,
		loc:       loc,
		l:         l,
		metrics:   metrics,
	}
}

func (s *Service) Projector() *Projector {
	return s.projector
}

// Now returns the current instant in the configured zone.
func (s *Service) Now() time.Time {
	return s.clock.Now().In(s.loc)
}

// ModelData loads accuracy and feature importance. It never fails: when the
// metrics artifact cannot be used the defaults are returned.
func (s *Service) ModelData(ctx context.Context) models.ModelData {
	comparison, err := s.repo.ModelComparison(ctx)
	if err != nil {
		reason := repositories.FallbackReason(err)
		s.l.Warning("using default model data", map[string]any{"reason": reason, "err": err.Error()})
		s.metrics.CountFallback(metricsArtifact, reason)
		return DefaultModelData()
	}
	return DeriveModelData(comparison)
}

// Predict estimates the fire risk of a point for the current month.
func (s *Service) Predict(ctx context.Context, req models.PredictionRequest) (models.PredictionResponse, error) {
	if req.Latitude == nil || req.Longitude == nil {
		return models.PredictionResponse{}, ErrMissingCoordinates
	}
	if !finite(*req.Latitude) || !finite(*req.Longitude) {
		return models.PredictionResponse{}, ErrInvalidCoordinates
	}
	if err := ctx.Err(); err != nil {
		return models.PredictionResponse{}, errors.Wrap(err, "predict")
	}

	now := s.Now()
	month := int(now.Month())
	in := ResolveInput(req, month)
	data := s.ModelData(ctx)

	base := ComputeBaseRisk(in, data.FeatureImportance, month)
	predictions := s.projector.Project(base*100, data.Accuracy)
	average := Round(predictions.Mean(), 1)
	level := models.RiskLevelFor(average)

	municipio := req.Municipio
	if municipio == "" {
		municipio = DefaultMunicipio
	}

	s.l.Debug("computed prediction", map[string]any{
		"lat":       in.Latitude,
		"lon":       in.Longitude,
		"month":     month,
		"baseRisk":  base,
		"average":   average,
		"riskLevel": level,
	})
	s.metrics.CountPrediction(string(level))

	return models.PredictionResponse{
		Location: models.Location{
			Latitude:  in.Latitude,
			Longitude: in.Longitude,
			Municipio: municipio,
		},
		InputFeatures: models.InputFeatures{
			DiaSemChuva:  in.DiaSemChuva,
			Precipitacao: in.Precipitacao,
			FRP:          in.FRP,
			Mes:          month,
		},
		Predictions: models.PointPredictions{
			ModelPredictions: predictions,
			Average:          average,
			RiskLevel:        level,
		},
		Timestamp: now.UTC().Format(TimestampLayout),
	}, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
