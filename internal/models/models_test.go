package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRiskLevelFor_Boundaries(t *testing.T) {
	tests := []struct {
		pct  float64
		want RiskLevel
	}{
		{0, RiskLow},
		{24.9, RiskLow},
		{25, RiskMedium},
		{49.99, RiskMedium},
		{50, RiskHigh},
		{74.9, RiskHigh},
		{75, RiskCritical},
		{100, RiskCritical},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RiskLevelFor(tt.pct), "pct=%v", tt.pct)
	}
}

func TestRiskLevelFor_Exhaustive(t *testing.T) {
	for i := 0; i <= 1000; i++ {
		pct := float64(i) / 10
		got := RiskLevelFor(pct)
		matches := 0
		if pct < 25 && got == RiskLow {
			matches++
		}
		if pct >= 25 && pct < 50 && got == RiskMedium {
			matches++
		}
		if pct >= 50 && pct < 75 && got == RiskHigh {
			matches++
		}
		if pct >= 75 && got == RiskCritical {
			matches++
		}
		assert.Equal(t, 1, matches, "pct=%v got %s", pct, got)
	}
}

func TestSeasonalRiskLevelFor(t *testing.T) {
	assert.Equal(t, SeasonalCritical, SeasonalRiskLevelFor(0.8))
	assert.Equal(t, SeasonalHigh, SeasonalRiskLevelFor(0.79))
	assert.Equal(t, SeasonalHigh, SeasonalRiskLevelFor(0.6))
	assert.Equal(t, SeasonalModerate, SeasonalRiskLevelFor(0.4))
	assert.Equal(t, SeasonalLow, SeasonalRiskLevelFor(0.2))
	assert.Equal(t, SeasonalMinimal, SeasonalRiskLevelFor(0.19))
}

func TestModelPredictions_GetSetMean(t *testing.T) {
	var p ModelPredictions
	p.Set(NeuralNetwork, 30)
	p.Set(KNN, 40)
	p.Set(RandomForest, 50)
	p.Set("svm", 99)

	assert.Equal(t, 30.0, p.Get(NeuralNetwork))
	assert.Equal(t, 40.0, p.Get(KNN))
	assert.Equal(t, 50.0, p.Get(RandomForest))
	assert.Equal(t, 0.0, p.Get("svm"))
	assert.Equal(t, 40.0, p.Mean())
}

func TestPointPredictions_JSONIsFlat(t *testing.T) {
	p := PointPredictions{
		ModelPredictions: ModelPredictions{NeuralNetwork: 1, KNN: 2, RandomForest: 3},
		Average:          2,
		RiskLevel:        RiskLow,
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"neural_network":1,"knn":2,"random_forest":3,"average":2,"risk_level":"low"}`, string(data))
}

func TestFeatureImportance_Sum(t *testing.T) {
	fi := FeatureImportance{FeatureMes: 0.589, FeatureDiaSemChuva: 0.105, FeatureLongitude: 0.109, FeatureLatitude: 0.081, FeatureFRP: 0.023}
	assert.InDelta(t, 0.907, fi.Sum(), 1e-9)
}

func TestModelComparison_Model(t *testing.T) {
	rf := &ModelMetrics{ModelName: "Random Forest"}
	c := ModelComparison{RandomForest: rf}

	assert.Same(t, rf, c.Model(RandomForest))
	assert.Nil(t, c.Model(KNN))
	assert.Nil(t, c.Model("svm"))
}

func TestIsMissing(t *testing.T) {
	assert.True(t, IsMissing(-999))
	assert.False(t, IsMissing(-998.9))
	assert.False(t, IsMissing(0))
}

func TestObservation_ID(t *testing.T) {
	o := Observation{
		DataHora:  time.Date(2024, 9, 15, 17, 20, 0, 0, time.UTC),
		Municipio: "MOSSORÓ",
		Latitude:  -5.19,
		Longitude: -37.34,
	}

	id := o.ID()
	assert.Regexp(t, `^inc-[0-9a-f]{16}$`, id)
	assert.Equal(t, id, o.ID())

	o.RiscoFogo = 0.9
	assert.Equal(t, id, o.ID(), "measurements do not change the id")

	o.Latitude = -5.2
	assert.NotEqual(t, id, o.ID())
}

func TestMunicipioID(t *testing.T) {
	assert.Regexp(t, `^mun-[0-9a-f]{16}$`, MunicipioID("APODI"))
	assert.Equal(t, MunicipioID("APODI"), MunicipioID("APODI"))
	assert.NotEqual(t, MunicipioID("APODI"), MunicipioID("MOSSORÓ"))
}

func TestModelMetrics_TestR2(t *testing.T) {
	var missing *ModelMetrics
	_, ok := missing.TestR2()
	assert.False(t, ok)

	_, ok = (&ModelMetrics{}).TestR2()
	assert.False(t, ok)

	var m ModelMetrics
	require.NoError(t, json.Unmarshal([]byte(`{"test": {"mse": 1, "r2": null}}`), &m))
	_, ok = m.TestR2()
	assert.False(t, ok)

	require.NoError(t, json.Unmarshal([]byte(`{"test": {"r2": 0.42}}`), &m))
	r2, ok := m.TestR2()
	assert.True(t, ok)
	assert.Equal(t, 0.42, r2)
}
