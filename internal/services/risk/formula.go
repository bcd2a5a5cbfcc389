// Package risk estimates the fire risk of a point from climate features and
// the feature-importance weights of the trained models.
package risk

import (
	"math"

	"fire-risk-api/internal/models"
)

// Reference center of the study region. Geographic risk decreases with the
// distance from it.
const (
	ReferenceLatitude  = -5.5
	ReferenceLongitude = -37.5
)

// Defaults applied to absent request fields.
const (
	DefaultMunicipio        = "Mossoró"
	DefaultDryDaysDrySeason = 50
	DefaultDryDaysWetSeason = 10
	DefaultPrecipitacao     = 0.0
	DefaultFRP              = 5.0
	DrySeasonStartMonth     = 6
)

// DefaultFeatureImportance returns the weights used when the metrics artifact
// has none.
func DefaultFeatureImportance() models.FeatureImportance {
	return models.FeatureImportance{
		models.FeatureMes:         0.589,
		models.FeatureDiaSemChuva: 0.105,
		models.FeatureLongitude:   0.109,
		models.FeatureLatitude:    0.081,
		models.FeatureFRP:         0.023,
	}
}

// DefaultAccuracy returns the test-set R² used when the metrics artifact has none.
func DefaultAccuracy() models.ModelAccuracy {
	return models.ModelAccuracy{
		models.NeuralNetwork: 0.71,
		models.KNN:           0.76,
		models.RandomForest:  0.79,
	}
}

// ResolveInput fills the optional request fields. The dry-days default
// depends on the season of month.
func ResolveInput(req models.PredictionRequest, month int) models.FeatureInput {
	in := models.FeatureInput{
		DiaSemChuva:  DefaultDryDaysWetSeason,
		Precipitacao: DefaultPrecipitacao,
		FRP:          DefaultFRP,
	}
	if month >= DrySeasonStartMonth {
		in.DiaSemChuva = DefaultDryDaysDrySeason
	}

	if req.Latitude != nil {
		in.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		in.Longitude = *req.Longitude
	}
	if req.DiaSemChuva != nil {
		in.DiaSemChuva = *req.DiaSemChuva
	}
	if req.Precipitacao != nil {
		in.Precipitacao = *req.Precipitacao
	}
	if req.FRP != nil {
		in.FRP = *req.FRP
	}
	return in
}

// MonthRisk models a dry season starting in June.
func MonthRisk(month int) float64 {
	if month >= DrySeasonStartMonth {
		return 0.9 + float64(month-DrySeasonStartMonth)*0.02
	}
	return 0.3 + float64(month)*0.05
}

func DryDaysRisk(diaSemChuva int) float64 {
	return math.Min(1, float64(diaSemChuva)/100)
}

// GeoRisk is 1 at the reference center and decreases linearly with the
// distance. It is negative for far away points and is not clamped here.
func GeoRisk(lat, lng float64) float64 {
	latNorm := math.Abs(lat-ReferenceLatitude) / 2
	lngNorm := math.Abs(lng-ReferenceLongitude) / 2
	return 1 - (latNorm+lngNorm)/2
}

func FRPRisk(frp float64) float64 {
	return math.Min(1, frp/50)
}

func PrecipitationReduction(precipitacao float64) float64 {
	if precipitacao <= 0 {
		return 0
	}
	return math.Min(0.5, precipitacao/20)
}

// weight returns fi[name], or the default weight when the key is absent.
func weight(fi models.FeatureImportance, name string) float64 {
	if w, ok := fi[name]; ok {
		return w
	}
	return DefaultFeatureImportance()[name]
}

// ComputeBaseRisk combines the normalized features with the importance
// weights and returns the base risk in [0,1]. Only the final value is clamped.
func ComputeBaseRisk(in models.FeatureInput, fi models.FeatureImportance, month int) float64 {
	weighted := MonthRisk(month)*weight(fi, models.FeatureMes) +
		DryDaysRisk(in.DiaSemChuva)*weight(fi, models.FeatureDiaSemChuva) +
		GeoRisk(in.Latitude, in.Longitude)*(weight(fi, models.FeatureLongitude)+weight(fi, models.FeatureLatitude)) +
		FRPRisk(in.FRP)*weight(fi, models.FeatureFRP)

	return Clamp(weighted-PrecipitationReduction(in.Precipitacao), 0, 1)
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Round rounds half away from zero to the given number of decimals.
func Round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
