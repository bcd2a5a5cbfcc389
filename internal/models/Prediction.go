package models

// PredictionRequest is the body of POST /predict. Pointers distinguish an
// absent field from an explicit zero.
type PredictionRequest struct {
	Latitude     *float64 `json:"latitude" validate:"required,gte=-90,lte=90" example:"-5.1894"`
	Longitude    *float64 `json:"longitude" validate:"required,gte=-180,lte=180" example:"-37.3444"`
	Municipio    string   `json:"municipio,omitempty" example:"Mossoró"`
	DiaSemChuva  *int     `json:"diaSemChuva,omitempty" validate:"omitempty,gte=0" example:"10"`
	Precipitacao *float64 `json:"precipitacao,omitempty" validate:"omitempty,gte=0" example:"0"`
	FRP          *float64 `json:"frp,omitempty" validate:"omitempty,gte=0" example:"15"`
}

// FeatureInput is a request with every default resolved.
type FeatureInput struct {
	Latitude     float64
	Longitude    float64
	DiaSemChuva  int
	Precipitacao float64
	FRP          float64
}

type Location struct {
	Latitude  float64 `json:"latitude" example:"-5.1894"`
	Longitude float64 `json:"longitude" example:"-37.3444"`
	Municipio string  `json:"municipio" example:"Mossoró"`
}

type InputFeatures struct {
	DiaSemChuva  int     `json:"diaSemChuva" example:"10"`
	Precipitacao float64 `json:"precipitacao" example:"0"`
	FRP          float64 `json:"frp" example:"15"`
	Mes          int     `json:"mes" example:"3"`
}

type PointPredictions struct {
	ModelPredictions
	Average   float64   `json:"average" example:"42.4"`
	RiskLevel RiskLevel `json:"risk_level" example:"medium"`
}

type PredictionResponse struct {
	Location      Location         `json:"location"`
	InputFeatures InputFeatures    `json:"input_features"`
	Predictions   PointPredictions `json:"predictions"`
	Timestamp     string           `json:"timestamp" example:"2025-03-10T12:00:00.000Z"`
}
