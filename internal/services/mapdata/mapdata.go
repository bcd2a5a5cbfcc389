// Package mapdata builds the points of the risk map from the historical
// observations.
package mapdata

import (
	"context"
	"sort"
	"strings"
	"time"

	"fire-risk-api/internal/models"
	"fire-risk-api/internal/repositories"
	"fire-risk-api/internal/services/risk"
	"fire-risk-api/internal/services/synthetic"
	"fire-risk-api/pkg/logger"
	"fire-risk-api/pkg/observe"
)

const observationsArtifact = "observations"

// Filter narrows the map to a region name and a bounding box. Nil bounds are
// open.
type Filter struct {
	Region string
	MinLat *float64
	MaxLat *float64
	MinLon *float64
	MaxLon *float64
}

func (f Filter) match(p models.MapDataPoint) bool {
	if f.Region != "" && !strings.Contains(strings.ToLower(p.Municipio), strings.ToLower(f.Region)) {
		return false
	}
	if f.MinLat != nil && p.Latitude < *f.MinLat {
		return false
	}
	if f.MaxLat != nil && p.Latitude > *f.MaxLat {
		return false
	}
	if f.MinLon != nil && p.Longitude < *f.MinLon {
		return false
	}
	if f.MaxLon != nil && p.Longitude > *f.MaxLon {
		return false
	}
	return true
}

type Service struct {
	repo    repositories.ObservationRepository
	risk    *risk.Service
	gen     *synthetic.Generator
	l       *logger.Logger
	metrics *observe.Metrics
}

func NewService(
	repo repositories.ObservationRepository,
	riskService *risk.Service,
	gen *synthetic.Generator,
	l *logger.Logger,
	metrics *observe.Metrics,
) *Service {
	if gen == nil {
		gen = synthetic.NewGenerator(0)
	}
	return &Service{
		repo:    repo,
		risk:    riskService,
		gen:     gen,
		l:       l,
		metrics: metrics,
	}
}

// Points returns one point per municipio of the historical dataset, or the
// synthetic Mossoró map when the dataset is unavailable.
func (s *Service) Points(ctx context.Context, f Filter) []models.MapDataPoint {
	var points []models.MapDataPoint

	observations, err := s.repo.Observations(ctx)
	if err != nil {
		reason := repositories.FallbackReason(err)
		s.l.Warning("serving synthetic map", map[string]any{"reason": reason, "err": err.Error()})
		s.metrics.CountFallback(observationsArtifact, reason)
		points = s.syntheticPoints()
	} else {
		data := s.risk.ModelData(ctx)
		points = Aggregate(observations, s.risk.Projector(), data.Accuracy)
	}

	filtered := points[:0]
	for _, p := range points {
		if f.match(p) {
			filtered = append(filtered, p)
		}
	}

	s.l.Debug("built map", map[string]any{"points": len(filtered), "region": f.Region})
	return filtered
}

type accumulator struct {
	records        int
	lat, lon, risk float64
	dryDays, frp   float64
	dryDaysN, frpN int
	latest         time.Time
}

// usable reports whether o can contribute to a regional average.
func usable(o models.Observation) bool {
	return o.Municipio != "" &&
		!models.IsMissing(o.Latitude) &&
		!models.IsMissing(o.Longitude) &&
		!models.IsMissing(o.RiscoFogo)
}

// Aggregate averages observations per municipio in a single pass. Records
// without a municipio, coordinates or RiscoFogo are discarded; a missing
// DiaSemChuva or FRP only leaves that field's mean out. Points are sorted by
// municipio.
func Aggregate(observations []models.Observation, projector *risk.Projector, accuracy models.ModelAccuracy) []models.MapDataPoint {
	groups := make(map[string]*accumulator)

	for _, o := range observations {
		if !usable(o) {
			continue
		}

		acc, ok := groups[o.Municipio]
		if !ok {
			acc = &accumulator{}
			groups[o.Municipio] = acc
		}

		acc.records++
		acc.lat += o.Latitude
		acc.lon += o.Longitude
		acc.risk += o.RiscoFogo
		if !models.IsMissing(o.DiaSemChuva) {
			acc.dryDays += o.DiaSemChuva
			acc.dryDaysN++
		}
		if !models.IsMissing(o.FRP) {
			acc.frp += o.FRP
			acc.frpN++
		}
		if o.DataHora.After(acc.latest) {
			acc.latest = o.DataHora
		}
	}

	points := make([]models.MapDataPoint, 0, len(groups))
	for municipio, acc := range groups {
		n := float64(acc.records)
		pct := risk.Clamp(risk.Round(acc.risk/n*100, 1), 0, 100)
		predictions := projector.Project(pct, accuracy)

		p := models.MapDataPoint{
			ID:          models.MunicipioID(municipio),
			Latitude:    risk.Round(acc.lat/n, 4),
			Longitude:   risk.Round(acc.lon/n, 4),
			RiskLevel:   pct,
			Municipio:   municipio,
			Predictions: &predictions,
			Records:     acc.records,
		}
		if !acc.latest.IsZero() {
			p.DataHora = acc.latest.UTC().Format(time.RFC3339)
		}
		if acc.dryDaysN > 0 {
			v := risk.Round(acc.dryDays/float64(acc.dryDaysN), 1)
			p.DiaSemChuva = &v
		}
		if acc.frpN > 0 {
			v := risk.Round(acc.frp/float64(acc.frpN), 1)
			p.FRP = &v
		}
		points = append(points, p)
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Municipio < points[j].Municipio
	})
	return points
}
