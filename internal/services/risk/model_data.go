package risk

import (
	"fire-risk-api/internal/models"
)

// DefaultModelData is used when the metrics artifact is unavailable.
func DefaultModelData() models.ModelData {
	return models.ModelData{
		Accuracy:          DefaultAccuracy(),
		FeatureImportance: DefaultFeatureImportance(),
	}
}

// DeriveModelData extracts accuracy and feature importance from a metrics
// artifact. Accuracy falls back per model; feature importance falls back as a
// whole when the random forest lists none.
func DeriveModelData(c models.ModelComparison) models.ModelData {
	data := DefaultModelData()

	for _, id := range models.ModelIDs {
		if r2, ok := c.Model(id).TestR2(); ok {
			data.Accuracy[id] = r2
		}
	}

	if c.RandomForest != nil && len(c.RandomForest.FeatureImportance) > 0 {
		fi := make(models.FeatureImportance, len(c.RandomForest.FeatureImportance))
		for _, w := range c.RandomForest.FeatureImportance {
			fi[w.Feature] = w.Importance
		}
		data.FeatureImportance = fi
	}

	return data
}
