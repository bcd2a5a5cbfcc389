package repositories

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cast"

	"fire-risk-api/internal/models"
	"fire-risk-api/pkg/logger"
)

const observationsCacheKey = "observations"

// Column names of the historical dataset.
const (
	ColDataHora     = "DataHora"
	ColSatelite     = "Satelite"
	ColPais         = "Pais"
	ColEstado       = "Estado"
	ColMunicipio    = "Municipio"
	ColBioma        = "Bioma"
	ColDiaSemChuva  = "DiaSemChuva"
	ColPrecipitacao = "Precipitacao"
	ColRiscoFogo    = "RiscoFogo"
	ColFRP          = "FRP"
	ColLatitude     = "Latitude"
	ColLongitude    = "Longitude"
)

var requiredColumns = []string{ColLatitude, ColLongitude, ColMunicipio}

var dataHoraLayouts = []string{
	"2006/01/02 15:04:05",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02 15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// CSVObservationRepository reads the historical fire observations export.
type CSVObservationRepository struct {
	path  string
	cache *artifactCache
	l     *logger.Logger
}

func NewCSVObservationRepository(path string, cache *artifactCache, l *logger.Logger) *CSVObservationRepository {
	return &CSVObservationRepository{
		path:  path,
		cache: cache,
		l:     l,
	}
}

func (r *CSVObservationRepository) Observations(ctx context.Context) ([]models.Observation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v, err := r.cache.load(observationsCacheKey, func() (any, error) {
		return r.readFile()
	})
	if err != nil {
		return nil, err
	}

	return v.([]models.Observation), nil
}

func (r *CSVObservationRepository) readFile() ([]models.Observation, error) {
	if r.path == "" {
		return nil, fmt.Errorf("%w: no historical dataset configured", ErrArtifactNotFound)
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrArtifactNotFound, r.path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrArtifactMalformed, r.path, err)
	}

	observations, skipped, err := ParseObservations(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrArtifactMalformed, r.path, err)
	}

	r.l.Info("loaded historical dataset", map[string]any{
		"path":    r.path,
		"rows":    len(observations),
		"skipped": skipped,
	})

	return observations, nil
}

// ParseObservations decodes a header-driven CSV export. Rows whose
// coordinates or municipio cannot be read are skipped and counted; empty
// measurements are stored as models.MissingValue.
func ParseObservations(in io.Reader) ([]models.Observation, int, error) {
	raw, err := io.ReadAll(in)
	if err != nil {
		return nil, 0, err
	}
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))

	reader := csv.NewReader(bytes.NewReader(raw))
	reader.Comma = sniffDelimiter(raw)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, 0, fmt.Errorf("missing column %q", col)
		}
	}

	var (
		observations []models.Observation
		skipped      int
	)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("read row: %w", err)
		}

		obs, ok := parseRow(record, index)
		if !ok {
			skipped++
			continue
		}
		observations = append(observations, obs)
	}

	return observations, skipped, nil
}

func parseRow(record []string, index map[string]int) (models.Observation, bool) {
	field := func(col string) string {
		i, ok := index[col]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	lat, errLat := cast.ToFloat64E(field(ColLatitude))
	lon, errLon := cast.ToFloat64E(field(ColLongitude))
	municipio := field(ColMunicipio)
	if errLat != nil || errLon != nil || field(ColLatitude) == "" || field(ColLongitude) == "" || municipio == "" {
		return models.Observation{}, false
	}

	return models.Observation{
		DataHora:     parseDataHora(field(ColDataHora)),
		Satelite:     field(ColSatelite),
		Pais:         field(ColPais),
		Estado:       field(ColEstado),
		Municipio:    municipio,
		Bioma:        field(ColBioma),
		DiaSemChuva:  measurement(field(ColDiaSemChuva)),
		Precipitacao: measurement(field(ColPrecipitacao)),
		RiscoFogo:    measurement(field(ColRiscoFogo)),
		FRP:          measurement(field(ColFRP)),
		Latitude:     lat,
		Longitude:    lon,
	}, true
}

func measurement(s string) float64 {
	if s == "" {
		return models.MissingValue
	}
	v, err := cast.ToFloat64E(s)
	if err != nil {
		return models.MissingValue
	}
	return v
}

func parseDataHora(s string) time.Time {
	for _, layout := range dataHoraLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t
		}
	}
	return time.Time{}
}

// sniffDelimiter picks ';' when the header line uses it instead of ','.
func sniffDelimiter(raw []byte) rune {
	line := raw
	if i := bytes.IndexByte(raw, '\n'); i >= 0 {
		line = raw[:i]
	}
	if bytes.Count(line, []byte(";")) > bytes.Count(line, []byte(",")) {
		return ';'
	}
	return ','
}
