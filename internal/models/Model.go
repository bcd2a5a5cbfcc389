package models

// Model identifiers as they appear in artifacts and responses.
const (
	NeuralNetwork = "neural_network"
	KNN           = "knn"
	RandomForest  = "random_forest"
)

// ModelIDs lists the models in response order.
var ModelIDs = []string{NeuralNetwork, KNN, RandomForest}

// ModelPredictions holds one value per model.
type ModelPredictions struct {
	NeuralNetwork float64 `json:"neural_network" example:"41.6"`
	KNN           float64 `json:"knn" example:"42.8"`
	RandomForest  float64 `json:"random_forest" example:"42.7"`
}

// Get returns the value for a model id, or 0 for an unknown id.
func (p ModelPredictions) Get(id string) float64 {
	switch id {
	case NeuralNetwork:
		return p.NeuralNetwork
	case KNN:
		return p.KNN
	case RandomForest:
		return p.RandomForest
	}
	return 0
}

// Set assigns the value of a model id; unknown ids are ignored.
func (p *ModelPredictions) Set(id string, v float64) {
	switch id {
	case NeuralNetwork:
		p.NeuralNetwork = v
	case KNN:
		p.KNN = v
	case RandomForest:
		p.RandomForest = v
	}
}

func (p ModelPredictions) Mean() float64 {
	return (p.NeuralNetwork + p.KNN + p.RandomForest) / 3
}
