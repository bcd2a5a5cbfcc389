package models

type FeaturesUsed struct {
	DiaSemChuva  float64 `json:"DiaSemChuva"`
	Precipitacao float64 `json:"Precipitacao"`
	FRP          float64 `json:"FRP"`
}

type WeekPrediction struct {
	Date              string            `json:"date" example:"2025-03-10"`
	DayName           string            `json:"day_name" example:"Segunda-feira"`
	DayOfWeek         int               `json:"day_of_week" example:"0"`
	FeaturesUsed      FeaturesUsed      `json:"features_used"`
	Predictions       ModelPredictions  `json:"predictions"`
	AveragePrediction float64           `json:"average_prediction"`
	RiskLevel         SeasonalRiskLevel `json:"risk_level" example:"MODERADO"`
}

type HistoricalSummary struct {
	RegistrosHistoricos int     `json:"registros_historicos"`
	RiscoMedioHistorico float64 `json:"risco_medio_historico"`
}

type YearPrediction struct {
	Month             int               `json:"month" example:"9"`
	MonthName         string            `json:"month_name" example:"Setembro"`
	Year              int               `json:"year" example:"2025"`
	Date              string            `json:"date" example:"2025-09-15"`
	FeaturesUsed      FeaturesUsed      `json:"features_used"`
	HistoricalData    HistoricalSummary `json:"historical_data"`
	Predictions       ModelPredictions  `json:"predictions"`
	AveragePrediction float64           `json:"average_prediction"`
	RiskLevel         SeasonalRiskLevel `json:"risk_level" example:"CRÍTICO"`
}
