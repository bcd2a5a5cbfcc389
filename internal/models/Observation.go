package models

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// MissingValue is the dataset marker for "not recorded".
const MissingValue = -999.0

// IsMissing reports whether a measurement carries the missing-value marker.
func IsMissing(v float64) bool {
	return v == MissingValue
}

// Observation is one row of the historical fire dataset. Measurements keep the
// raw value, including MissingValue.
type Observation struct {
	DataHora     time.Time
	Satelite     string
	Pais         string
	Estado       string
	Municipio    string
	Bioma        string
	DiaSemChuva  float64
	Precipitacao float64
	RiscoFogo    float64
	FRP          float64
	Latitude     float64
	Longitude    float64
}

func (o Observation) String() string {
	return fmt.Sprintf("%s@%s (%.4f, %.4f)", o.Municipio, o.DataHora.Format(time.DateTime), o.Latitude, o.Longitude)
}

// ID is a stable identifier derived from the fields that locate the record.
func (o Observation) ID() string {
	return "inc-" + shortHash(fmt.Sprintf("%s|%s|%.4f|%.4f",
		o.Municipio, o.DataHora.Format(time.RFC3339), o.Latitude, o.Longitude))
}

// MunicipioID identifies the aggregated map point of a municipio.
func MunicipioID(municipio string) string {
	return "mun-" + shortHash(municipio)
}

func shortHash(input string) string {
	hash := sha256.Sum256([]byte(input))
	return hex.EncodeToString(hash[:8])
}

// FireIncident is an Observation as served by GET /historical. Measurements
// that were not recorded are null.
type FireIncident struct {
	ID           string   `json:"id" example:"inc-3f2a9c0b1d4e5f60"`
	DataHora     string   `json:"dataHora" example:"2024-09-15T17:20:00Z"`
	Satelite     string   `json:"satelite" example:"AQUA_M-T"`
	Pais         string   `json:"pais" example:"Brasil"`
	Estado       string   `json:"estado" example:"RIO GRANDE DO NORTE"`
	Municipio    string   `json:"municipio" example:"MOSSORÓ"`
	Bioma        string   `json:"bioma" example:"Caatinga"`
	DiaSemChuva  *float64 `json:"diaSemChuva"`
	Precipitacao *float64 `json:"precipitacao"`
	RiscoFogo    *float64 `json:"riscoFogo"`
	FRP          *float64 `json:"frp"`
	Latitude     float64  `json:"latitude" example:"-5.1894"`
	Longitude    float64  `json:"longitude" example:"-37.3444"`
}

// MapDataPoint is one marker of the risk map.
type MapDataPoint struct {
	ID          string            `json:"id" example:"mun-5d41402abc4b2a76"`
	Latitude    float64           `json:"latitude" example:"-5.1894"`
	Longitude   float64           `json:"longitude" example:"-37.3444"`
	RiskLevel   float64           `json:"riskLevel" example:"45.2"`
	Municipio   string            `json:"municipio" example:"MOSSORÓ - Centro"`
	DataHora    string            `json:"dataHora" example:"2024-09-15T17:20:00Z"`
	Predictions *ModelPredictions `json:"predictions,omitempty"`
	DiaSemChuva *float64          `json:"diaSemChuva,omitempty"`
	FRP         *float64          `json:"frp,omitempty"`
	Records     int               `json:"records,omitempty"`
}
