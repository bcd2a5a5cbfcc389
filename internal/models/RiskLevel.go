package models

// RiskLevel is the bucket of a point prediction on the 0..100 scale.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// RiskLevelFor buckets a percentage: [0,25) low, [25,50) medium, [50,75) high,
// [75,100] critical.
func RiskLevelFor(pct float64) RiskLevel {
	switch {
	case pct < 25:
		return RiskLow
	case pct < 50:
		return RiskMedium
	case pct < 75:
		return RiskHigh
	default:
		return RiskCritical
	}
}

// SeasonalRiskLevel is the Portuguese label used by week and year artifacts.
type SeasonalRiskLevel string

const (
	SeasonalCritical SeasonalRiskLevel = "CRÍTICO"
	SeasonalHigh     SeasonalRiskLevel = "ALTO"
	SeasonalModerate SeasonalRiskLevel = "MODERADO"
	SeasonalLow      SeasonalRiskLevel = "BAIXO"
	SeasonalMinimal  SeasonalRiskLevel = "MÍNIMO"
)

// SeasonalRiskLevelFor buckets a risk on the 0..1 scale.
func SeasonalRiskLevelFor(risk float64) SeasonalRiskLevel {
	switch {
	case risk >= 0.8:
		return SeasonalCritical
	case risk >= 0.6:
		return SeasonalHigh
	case risk >= 0.4:
		return SeasonalModerate
	case risk >= 0.2:
		return SeasonalLow
	default:
		return SeasonalMinimal
	}
}
