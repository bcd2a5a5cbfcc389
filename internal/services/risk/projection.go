package risk

import (
	"fire-risk-api/internal/models"
)

// DefaultProjectionFactors are the multipliers of the R²-amplified projection.
func DefaultProjectionFactors() map[string]float64 {
	return map[string]float64{
		models.NeuralNetwork: 1.3,
		models.KNN:           1.25,
		models.RandomForest:  1.2,
	}
}

// Projector derives one prediction per model from a shared base risk:
// clamp(round1(base * r2[model] * factor[model]), 0, 100).
type Projector struct {
	factors map[string]float64
}

// NewProjector copies factors; models missing from it use the default factor.
func NewProjector(factors map[string]float64) *Projector {
	p := &Projector{factors: DefaultProjectionFactors()}
	for id, f := range factors {
		p.factors[id] = f
	}
	return p
}

// Project returns the per-model percentages for a base risk given in percent.
func (p *Projector) Project(basePct float64, accuracy models.ModelAccuracy) models.ModelPredictions {
	defaults := DefaultAccuracy()

	var out models.ModelPredictions
	for _, id := range models.ModelIDs {
		r2, ok := accuracy[id]
		if !ok {
			r2 = defaults[id]
		}
		out.Set(id, Clamp(Round(basePct*r2*p.factors[id], 1), 0, 100))
	}
	return out
}
