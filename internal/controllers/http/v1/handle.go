package http

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"fire-risk-api/internal/models"
	"fire-risk-api/internal/services/historical"
	"fire-risk-api/internal/services/mapdata"
	"fire-risk-api/internal/services/risk"
	"fire-risk-api/pkg/httpserver"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"latitude is required"`
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: msg})
}

// GetModelMetrics godoc
// @Summary Get model metrics
// @Description Train and test error metrics of every model, as written by the last training run
// @Tags Models
// @Produce json
// @Success 200 {object} models.ModelComparison
// @Router /api/fire-risk/metrics [get]
func (r *routes) handleModelMetrics(c *fiber.Ctx) error {
	return c.JSON(r.forecast.ModelMetrics(c.UserContext()))
}

// GetWeekPredictions godoc
// @Summary Get week predictions
// @Description Daily risk predictions for the next seven days
// @Tags Predictions
// @Produce json
// @Success 200 {array} models.WeekPrediction
// @Router /api/fire-risk/predictions/week [get]
func (r *routes) handleWeekPredictions(c *fiber.Ctx) error {
	return c.JSON(r.forecast.WeekPredictions(c.UserContext()))
}

// GetYearPredictions godoc
// @Summary Get year predictions
// @Description Monthly risk predictions for the current year
// @Tags Predictions
// @Produce json
// @Success 200 {array} models.YearPrediction
// @Router /api/fire-risk/predictions/year [get]
func (r *routes) handleYearPredictions(c *fiber.Ctx) error {
	return c.JSON(r.forecast.YearPredictions(c.UserContext()))
}

// GetHistorical godoc
// @Summary Get historical incidents
// @Description Fire observations of the historical dataset, newest first
// @Tags Historical
// @Produce json
// @Param region query string false "Case-insensitive part of the municipio name" example(mossoró)
// @Param startDate query string false "First day, inclusive (YYYY-MM-DD)" example(2024-09-01)
// @Param endDate query string false "Last day, inclusive (YYYY-MM-DD)" example(2024-09-30)
// @Param limit query integer false "Maximum number of incidents (default 100, max 1000)" minimum(1) maximum(1000)
// @Success 200 {array} models.FireIncident
// @Failure 400 {object} ErrorResponse "Bad request - invalid parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/fire-risk/historical [get]
func (r *routes) handleHistorical(c *fiber.Ctx) error {
	q, err := historical.ParseQuery(c.Query("region"), c.Query("startDate"), c.Query("endDate"), c.Query("limit"))
	if err != nil {
		return badRequest(c, err.Error())
	}

	incidents, err := r.historical.Incidents(c.UserContext(), q)
	if err != nil {
		r.l.Error(err, map[string]any{"query": q, "requestId": c.Locals(httpserver.RequestIDKey)})
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to fetch historical data",
		})
	}

	return c.JSON(incidents)
}

// GetMapData godoc
// @Summary Get map data
// @Description Average fire risk per municipio, with the per-model predictions
// @Tags Map
// @Produce json
// @Param region query string false "Case-insensitive part of the municipio name" example(mossoró)
// @Param minLat query number false "Southern bound" example(-6)
// @Param maxLat query number false "Northern bound" example(-4.5)
// @Param minLon query number false "Western bound" example(-38)
// @Param maxLon query number false "Eastern bound" example(-37)
// @Success 200 {array} models.MapDataPoint
// @Failure 400 {object} ErrorResponse "Bad request - invalid parameters"
// @Router /api/fire-risk/map-data [get]
func (r *routes) handleMapData(c *fiber.Ctx) error {
	f := mapdata.Filter{
		Region: c.Query("region", c.Query("municipio")),
	}

	for _, b := range []struct {
		name string
		dst  **float64
	}{
		{"minLat", &f.MinLat},
		{"maxLat", &f.MaxLat},
		{"minLon", &f.MinLon},
		{"maxLon", &f.MaxLon},
	} {
		raw := c.Query(b.name)
		if raw == "" {
			continue
		}
		v, err := cast.ToFloat64E(raw)
		if err != nil {
			return badRequest(c, fmt.Sprintf("Invalid %s format", b.name))
		}
		*b.dst = &v
	}

	return c.JSON(r.mapData.Points(c.UserContext(), f))
}

// PostPredict godoc
// @Summary Predict fire risk
// @Description Estimates the fire risk of a point for the current month with every model
// @Tags Predictions
// @Accept json
// @Produce json
// @Param request body models.PredictionRequest true "Point and optional climate features"
// @Success 200 {object} models.PredictionResponse "Successful response"
// @Failure 400 {object} ErrorResponse "Bad request - invalid parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/fire-risk/predict [post]
// @Example {curl} Example usage:
//
//	curl -X POST "http://localhost:8080/api/fire-risk/predict" -H "Content-Type: application/json" \
//	  -d '{"latitude": -5.1894, "longitude": -37.3444, "frp": 15}'
func (r *routes) handlePredict(c *fiber.Ctx) error {
	var req models.PredictionRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := r.validate.Struct(req); err != nil {
		return badRequest(c, validationMessage(err))
	}

	resp, err := r.risk.Predict(c.UserContext(), req)
	if err != nil {
		if errors.Is(err, risk.ErrMissingCoordinates) || errors.Is(err, risk.ErrInvalidCoordinates) {
			return badRequest(c, err.Error())
		}

		r.l.Error(err, map[string]any{
			"lat":       req.Latitude,
			"lon":       req.Longitude,
			"requestId": c.Locals(httpserver.RequestIDKey),
		})
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to compute prediction",
		})
	}

	return c.JSON(resp)
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+" is required")
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be >= %s", fe.Field(), fe.Param()))
		case "lte":
			msgs = append(msgs, fmt.Sprintf("%s must be <= %s", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fe.Field()+" is invalid")
		}
	}
	return strings.Join(msgs, "; ")
}
