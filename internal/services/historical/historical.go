// Package historical queries the fire observations of the historical dataset.
package historical

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"fire-risk-api/internal/models"
	"fire-risk-api/internal/repositories"
	"fire-risk-api/pkg/logger"
	"fire-risk-api/pkg/observe"
)

const (
	DefaultLimit = 100
	MaxLimit     = 1000

	observationsArtifact = "observations"
)

var ErrInvalidQuery = errors.New("invalid query")

// Query selects incidents. Dates are inclusive calendar days; empty means open.
type Query struct {
	Region    string
	StartDate string
	EndDate   string
	Limit     int
}

// ParseQuery validates raw query-string values. An absent limit defaults to
// DefaultLimit and a larger one is capped at MaxLimit.
func ParseQuery(region, startDate, endDate, limit string) (Query, error) {
	q := Query{Region: strings.TrimSpace(region), Limit: DefaultLimit}

	for _, d := range []struct {
		name  string
		value string
		dst   *string
	}{
		{"startDate", startDate, &q.StartDate},
		{"endDate", endDate, &q.EndDate},
	} {
		if d.value == "" {
			continue
		}
		if _, err := time.Parse(time.DateOnly, d.value); err != nil {
			return Query{}, errors.Wrapf(ErrInvalidQuery, "%s must be YYYY-MM-DD", d.name)
		}
		*d.dst = d.value
	}

	if q.StartDate != "" && q.EndDate != "" && q.StartDate > q.EndDate {
		return Query{}, errors.Wrap(ErrInvalidQuery, "startDate is after endDate")
	}

	if limit != "" {
		n, err := parseLimit(limit)
		if err != nil {
			return Query{}, errors.Wrap(ErrInvalidQuery, "limit must be a positive integer")
		}
		q.Limit = n
	}

	return q, nil
}

// parseLimit reads a positive base-10 count, capped at MaxLimit. Leading zeros
// are decimal padding, not an octal prefix.
func parseLimit(s string) (int, error) {
	if strings.Trim(s, "0123456789") != "" {
		return 0, errors.Errorf("%q is not a decimal number", s)
	}
	digits := strings.TrimLeft(s, "0")
	if digits == "" {
		return 0, errors.New("zero limit")
	}
	if len(digits) > len(strconv.Itoa(MaxLimit)) {
		return MaxLimit, nil
	}
	n, err := cast.ToIntE(digits)
	if err != nil {
		return 0, err
	}
	return min(n, MaxLimit), nil
}

func (q Query) match(o models.Observation) bool {
	if q.Region != "" && !strings.Contains(strings.ToLower(o.Municipio), strings.ToLower(q.Region)) {
		return false
	}
	if q.StartDate == "" && q.EndDate == "" {
		return true
	}
	if o.DataHora.IsZero() {
		return false
	}
	date := o.DataHora.Format(time.DateOnly)
	if q.StartDate != "" && date < q.StartDate {
		return false
	}
	if q.EndDate != "" && date > q.EndDate {
		return false
	}
	return true
}

type Service struct {
	repo    repositories.ObservationRepository
	l       *logger.Logger
	metrics *observe.Metrics
}

func NewService(repo repositories.ObservationRepository, l *logger.Logger, metrics *observe.Metrics) *Service {
	return &Service{
		repo:    repo,
		l:       l,
		metrics: metrics,
	}
}

// Incidents returns the matching observations, newest first. An unavailable
// dataset yields an empty list.
func (s *Service) Incidents(ctx context.Context, q Query) ([]models.FireIncident, error) {
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}

	observations, err := s.repo.Observations(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.Wrap(ctxErr, "load observations")
		}
		reason := repositories.FallbackReason(err)
		s.l.Warning("historical dataset unavailable", map[string]any{"reason": reason, "err": err.Error()})
		s.metrics.CountFallback(observationsArtifact, reason)
		return []models.FireIncident{}, nil
	}

	matched := make([]models.Observation, 0)
	for _, o := range observations {
		if q.match(o) {
			matched = append(matched, o)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].DataHora.After(matched[j].DataHora)
	})

	if len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}

	incidents := make([]models.FireIncident, 0, len(matched))
	for _, o := range matched {
		incidents = append(incidents, toIncident(o))
	}

	s.l.Debug("queried incidents", map[string]any{
		"region":  q.Region,
		"start":   q.StartDate,
		"end":     q.EndDate,
		"limit":   q.Limit,
		"matched": len(incidents),
	})
	return incidents, nil
}

func toIncident(o models.Observation) models.FireIncident {
	incident := models.FireIncident{
		ID:           o.ID(),
		Satelite:     o.Satelite,
		Pais:         o.Pais,
		Estado:       o.Estado,
		Municipio:    o.Municipio,
		Bioma:        o.Bioma,
		DiaSemChuva:  nullable(o.DiaSemChuva),
		Precipitacao: nullable(o.Precipitacao),
		RiscoFogo:    nullable(o.RiscoFogo),
		FRP:          nullable(o.FRP),
		Latitude:     o.Latitude,
		Longitude:    o.Longitude,
	}
	if !o.DataHora.IsZero() {
		incident.DataHora = o.DataHora.UTC().Format(time.RFC3339)
	}
	return incident
}

func nullable(v float64) *float64 {
	if models.IsMissing(v) {
		return nil
	}
	return &v
}
