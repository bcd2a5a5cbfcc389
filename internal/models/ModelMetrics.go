package models

// ErrorMetrics are the regression errors of one split. R2 is nil when the
// artifact leaves it out or sets it to null.
type ErrorMetrics struct {
	MSE  float64  `json:"mse"`
	RMSE float64  `json:"rmse"`
	MAE  float64  `json:"mae"`
	R2   *float64 `json:"r2"`
}

type FeatureWeight struct {
	Feature    string  `json:"feature"`
	Importance float64 `json:"importance"`
}

// ModelMetrics is one model's entry of the metrics artifact. Test is a
// pointer so a missing section can be told apart from zeroed metrics.
type ModelMetrics struct {
	ModelName         string          `json:"model_name"`
	Train             *ErrorMetrics   `json:"train,omitempty"`
	Test              *ErrorMetrics   `json:"test,omitempty"`
	FeatureImportance []FeatureWeight `json:"feature_importance,omitempty"`
}

// TestR2 returns the test-set R² and whether the artifact recorded one.
func (m *ModelMetrics) TestR2() (float64, bool) {
	if m == nil || m.Test == nil || m.Test.R2 == nil {
		return 0, false
	}
	return *m.Test.R2, true
}

// ModelComparison is the metrics artifact written by the training job.
type ModelComparison struct {
	NeuralNetwork *ModelMetrics `json:"neural_network,omitempty"`
	KNN           *ModelMetrics `json:"knn,omitempty"`
	RandomForest  *ModelMetrics `json:"random_forest,omitempty"`
}

func (c ModelComparison) Model(id string) *ModelMetrics {
	switch id {
	case NeuralNetwork:
		return c.NeuralNetwork
	case KNN:
		return c.KNN
	case RandomForest:
		return c.RandomForest
	}
	return nil
}

// Feature names used by the risk formula.
const (
	FeatureMes         = "Mes"
	FeatureDiaSemChuva = "DiaSemChuva"
	FeatureLongitude   = "Longitude"
	FeatureLatitude    = "Latitude"
	FeatureFRP         = "FRP"
)

// FeatureImportance maps a feature name to its weight.
type FeatureImportance map[string]float64

// Sum adds every weight. Artifacts are not required to sum to one.
func (f FeatureImportance) Sum() float64 {
	var total float64
	for _, w := range f {
		total += w
	}
	return total
}

// ModelAccuracy maps a model id to its test-set R².
type ModelAccuracy map[string]float64

// ModelData is what the risk formula and projection need from the metrics artifact.
type ModelData struct {
	Accuracy          ModelAccuracy
	FeatureImportance FeatureImportance
}
