package forecast_test

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fire-risk-api/internal/models"
	"fire-risk-api/internal/repositories"
	"fire-risk-api/internal/services/forecast"
	"fire-risk-api/internal/services/synthetic"
	"fire-risk-api/pkg/logger"
	"fire-risk-api/pkg/observe"
)

type stubMetricsRepository struct {
	comparison models.ModelComparison
	err        error
}

func (s *stubMetricsRepository) ModelComparison(context.Context) (models.ModelComparison, error) {
	return s.comparison, s.err
}

type stubPredictionsRepository struct {
	week    []models.WeekPrediction
	year    []models.YearPrediction
	weekErr error
	yearErr error
}

func (s *stubPredictionsRepository) WeekPredictions(context.Context) ([]models.WeekPrediction, error) {
	return s.week, s.weekErr
}

func (s *stubPredictionsRepository) YearPredictions(context.Context) ([]models.YearPrediction, error) {
	return s.year, s.yearErr
}

// monday is 2025-03-10 09:00 in Fortaleza.
var monday = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

func newService(t *testing.T, mr repositories.MetricsRepository, pr repositories.PredictionsRepository, seed uint64) (*forecast.Service, *observe.Metrics) {
	t.Helper()
	loc, err := time.LoadLocation("America/Fortaleza")
	require.NoError(t, err)

	m := observe.NewMetrics()
	svc := forecast.NewService(mr, pr, synthetic.NewGenerator(seed), clockwork.NewFakeClockAt(monday), loc, logger.NewNopLogger(), m)
	return svc, m
}

func missingArtifacts() *stubPredictionsRepository {
	return &stubPredictionsRepository{weekErr: repositories.ErrArtifactNotFound, yearErr: repositories.ErrArtifactNotFound}
}

func TestModelMetrics_FromArtifact(t *testing.T) {
	artifact := models.ModelComparison{KNN: &models.ModelMetrics{ModelName: "KNN"}}
	svc, m := newService(t, &stubMetricsRepository{comparison: artifact}, missingArtifacts(), 1)

	assert.Equal(t, artifact, svc.ModelMetrics(context.Background()))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.ArtifactFallbacks.WithLabelValues("model_metrics", "not_found")))
}

func TestModelMetrics_Fallback(t *testing.T) {
	svc, m := newService(t, &stubMetricsRepository{err: repositories.ErrArtifactNotFound}, missingArtifacts(), 1)

	got := svc.ModelMetrics(context.Background())
	require.NotNil(t, got.RandomForest)
	assert.Equal(t, "Random Forest", got.RandomForest.ModelName)
	assert.Equal(t, 0.84, *got.RandomForest.Test.R2)
	assert.Equal(t, 45.23, got.NeuralNetwork.Train.MSE)
	assert.Equal(t, 5.67, got.KNN.Test.MAE)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ArtifactFallbacks.WithLabelValues("model_metrics", "not_found")))
}

func TestModelMetrics_EmptyArtifactIsMalformed(t *testing.T) {
	svc, m := newService(t, &stubMetricsRepository{}, missingArtifacts(), 1)

	assert.Equal(t, forecast.DefaultModelComparison(), svc.ModelMetrics(context.Background()))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ArtifactFallbacks.WithLabelValues("model_metrics", "malformed")))
}

func TestWeekPredictions_FromArtifact(t *testing.T) {
	week := []models.WeekPrediction{{Date: "2025-03-10", DayName: "Segunda-feira"}}
	svc, _ := newService(t, &stubMetricsRepository{}, &stubPredictionsRepository{week: week}, 1)

	assert.Equal(t, week, svc.WeekPredictions(context.Background()))
}

func TestWeekPredictions_Fallback(t *testing.T) {
	svc, m := newService(t, &stubMetricsRepository{}, missingArtifacts(), 42)

	week := svc.WeekPredictions(context.Background())
	require.Len(t, week, 7)

	assert.Equal(t, "2025-03-10", week[0].Date)
	assert.Equal(t, "Segunda-feira", week[0].DayName)
	assert.Equal(t, 0, week[0].DayOfWeek)
	assert.Equal(t, "2025-03-16", week[6].Date)
	assert.Equal(t, "Domingo", week[6].DayName)
	assert.Equal(t, 6, week[6].DayOfWeek)

	for _, day := range week {
		p := day.Predictions
		assert.GreaterOrEqual(t, p.NeuralNetwork, 30.0)
		assert.LessOrEqual(t, p.NeuralNetwork, 70.0)
		assert.GreaterOrEqual(t, p.KNN, 28.0)
		assert.LessOrEqual(t, p.KNN, 70.0)
		assert.GreaterOrEqual(t, p.RandomForest, 32.0)
		assert.LessOrEqual(t, p.RandomForest, 70.0)

		assert.InDelta(t, p.Mean(), day.AveragePrediction, 0.05)
		assert.Equal(t, models.SeasonalRiskLevelFor(day.AveragePrediction/100), day.RiskLevel)
		assert.Equal(t, 10.0, day.FeaturesUsed.DiaSemChuva)
	}

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ArtifactFallbacks.WithLabelValues("week_predictions", "not_found")))
}

func TestWeekPredictions_FallbackIsSeeded(t *testing.T) {
	a, _ := newService(t, &stubMetricsRepository{}, missingArtifacts(), 7)
	b, _ := newService(t, &stubMetricsRepository{}, missingArtifacts(), 7)

	assert.Equal(t, a.WeekPredictions(context.Background()), b.WeekPredictions(context.Background()))
}

func TestYearPredictions_FromArtifact(t *testing.T) {
	year := []models.YearPrediction{{Month: 1, MonthName: "Janeiro", Year: 2025}}
	svc, _ := newService(t, &stubMetricsRepository{}, &stubPredictionsRepository{year: year, weekErr: repositories.ErrArtifactNotFound}, 1)

	assert.Equal(t, year, svc.YearPredictions(context.Background()))
}

func TestYearPredictions_Fallback(t *testing.T) {
	svc, m := newService(t, &stubMetricsRepository{}, &stubPredictionsRepository{yearErr: repositories.ErrArtifactMalformed}, 42)

	year := svc.YearPredictions(context.Background())
	require.Len(t, year, 12)

	assert.Equal(t, "Janeiro", year[0].MonthName)
	assert.Equal(t, "2025-01-15", year[0].Date)
	assert.Equal(t, "Dezembro", year[11].MonthName)
	assert.Equal(t, "2025-12-15", year[11].Date)

	for _, p := range year {
		assert.Equal(t, 2025, p.Year)

		base := p.Predictions.NeuralNetwork
		assert.Equal(t, base, p.AveragePrediction)
		assert.Equal(t, base, p.HistoricalData.RiscoMedioHistorico)
		assert.InDelta(t, base, p.Predictions.KNN, 0.05)
		assert.InDelta(t, base, p.Predictions.RandomForest, 0.05)
		assert.GreaterOrEqual(t, p.HistoricalData.RegistrosHistoricos, 100)
		assert.LessOrEqual(t, p.HistoricalData.RegistrosHistoricos, 1600)
		assert.GreaterOrEqual(t, p.FeaturesUsed.FRP, 2.0)
		assert.LessOrEqual(t, p.FeaturesUsed.FRP, 10.0)

		if p.Month >= 6 && p.Month <= 11 {
			assert.GreaterOrEqual(t, base, 0.8)
			assert.LessOrEqual(t, base, 1.0)
			assert.Equal(t, models.SeasonalCritical, p.RiskLevel)
			assert.GreaterOrEqual(t, p.FeaturesUsed.DiaSemChuva, 30.0)
			assert.Equal(t, 0.0, p.FeaturesUsed.Precipitacao)
		} else {
			assert.GreaterOrEqual(t, base, 0.3)
			assert.LessOrEqual(t, base, 0.7)
			assert.LessOrEqual(t, p.FeaturesUsed.DiaSemChuva, 12.0)
			assert.Contains(t, []models.SeasonalRiskLevel{models.SeasonalLow, models.SeasonalModerate, models.SeasonalHigh}, p.RiskLevel)
		}
		if p.Month >= 6 {
			assert.Equal(t, 0.0, p.FeaturesUsed.Precipitacao)
		} else {
			assert.LessOrEqual(t, p.FeaturesUsed.Precipitacao, 5.0)
		}
	}

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ArtifactFallbacks.WithLabelValues("year_predictions", "malformed")))
}
