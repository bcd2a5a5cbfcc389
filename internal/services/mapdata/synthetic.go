package mapdata

import (
	"fmt"

	"fire-risk-api/internal/models"
	"fire-risk-api/internal/services/risk"
)

type site struct {
	name     string
	lat, lng float64
	risk     float64
}

// Mossoró neighbourhoods shown when the historical dataset is unavailable.
var neighbourhoods = []site{
	{"Centro", -5.1894, -37.3444, 45},
	{"Alto de São Manoel", -5.175, -37.335, 52},
	{"Nova Betânia", -5.198, -37.358, 38},
	{"Abolição", -5.205, -37.32, 61},
	{"Santo Antônio", -5.165, -37.365, 29},
	{"Barrocas", -5.22, -37.33, 55},
	{"Aeroporto", -5.21, -37.37, 72},
	{"Boa Vista", -5.18, -37.31, 48},
	{"Paredões", -5.24, -37.35, 67},
	{"Belo Horizonte", -5.155, -37.325, 35},
	{"Rincão", -5.195, -37.29, 58},
	{"Dom Jaime Câmara", -5.215, -37.385, 44},
	{"Alto do Sumaré", -5.17, -37.375, 76},
	{"Vingt Rosado", -5.185, -37.395, 41},
	{"Costa e Silva", -5.23, -37.31, 63},
}

var nearbyMunicipios = []site{
	{"AREIA BRANCA", -4.95, -37.12, 68},
	{"GROSSOS", -4.98, -37.15, 54},
	{"TIBAU", -4.84, -37.25, 71},
	{"BARAÚNA", -5.07, -37.61, 82},
	{"GOVERNADOR DIX-SEPT ROSADO", -5.45, -37.52, 59},
	{"UPANEMA", -5.64, -37.26, 64},
	{"APODI", -5.66, -37.8, 47},
	{"FELIPE GUERRA", -5.6, -37.69, 73},
}

// jitter spans of a synthetic point: its risk, then each model.
type jitter struct {
	risk                   float64
	neuralNetwork, knn, rf float64
}

var (
	neighbourhoodJitter = jitter{risk: 10, neuralNetwork: 8, knn: 10, rf: 6}
	nearbyJitter        = jitter{risk: 15, neuralNetwork: 10, knn: 12, rf: 8}
)

func (s *Service) syntheticPoints() []models.MapDataPoint {
	now := s.risk.Now().UTC().Format(risk.TimestampLayout)

	points := make([]models.MapDataPoint, 0, len(neighbourhoods)+len(nearbyMunicipios))
	for i, n := range neighbourhoods {
		p := s.syntheticPoint(n, neighbourhoodJitter)
		p.ID = fmt.Sprintf("mosoro-%d", i+1)
		p.Municipio = "MOSSORÓ - " + n.name
		p.DataHora = now
		points = append(points, p)
	}
	for i, n := range nearbyMunicipios {
		p := s.syntheticPoint(n, nearbyJitter)
		p.ID = fmt.Sprintf("nearby-%d", i+1)
		p.Municipio = n.name
		p.DataHora = now
		points = append(points, p)
	}
	return points
}

func (s *Service) syntheticPoint(site site, j jitter) models.MapDataPoint {
	level := risk.Clamp(site.risk+s.gen.Jitter(j.risk), 0, 100)

	predictions := models.ModelPredictions{
		NeuralNetwork: percent(level + s.gen.Jitter(j.neuralNetwork)),
		KNN:           percent(level + s.gen.Jitter(j.knn)),
		RandomForest:  percent(level + s.gen.Jitter(j.rf)),
	}

	return models.MapDataPoint{
		Latitude:    site.lat,
		Longitude:   site.lng,
		RiskLevel:   risk.Round(level, 1),
		Predictions: &predictions,
	}
}

func percent(v float64) float64 {
	return risk.Clamp(risk.Round(v, 1), 0, 100)
}
