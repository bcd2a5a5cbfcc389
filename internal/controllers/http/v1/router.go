package http

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"fire-risk-api/docs"
	"fire-risk-api/internal/services/forecast"
	"fire-risk-api/internal/services/historical"
	"fire-risk-api/internal/services/mapdata"
	"fire-risk-api/internal/services/risk"
	"fire-risk-api/pkg/logger"
)

// APIPrefix is the mount point of the fire-risk routes.
const APIPrefix = "/api/fire-risk"

// Services are the handlers' dependencies.
type Services struct {
	Risk       *risk.Service
	Forecast   *forecast.Service
	MapData    *mapdata.Service
	Historical *historical.Service
}

type routes struct {
	risk       *risk.Service
	forecast   *forecast.Service
	mapData    *mapdata.Service
	historical *historical.Service
	validate   *validator.Validate
	l          *logger.Logger
}

func NewRouter(
	app *fiber.App,
	services Services,
	l *logger.Logger,
) {
	r := &routes{
		risk:       services.Risk,
		forecast:   services.Forecast,
		mapData:    services.MapData,
		historical: services.Historical,
		validate:   newValidator(),
		l:          l,
	}

	// Swagger documentation
	app.Get("/swagger/doc.json", func(c *fiber.Ctx) error {
		c.Set("Content-Type", "application/json")
		return c.SendString(docs.SwaggerInfo.ReadDoc())
	})

	app.Get("/swagger/*", swagger.New(swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
	}))

	// API routes
	api := app.Group(APIPrefix)
	api.Get("/metrics", r.handleModelMetrics)
	api.Get("/predictions/week", r.handleWeekPredictions)
	api.Get("/predictions/year", r.handleYearPredictions)
	api.Get("/historical", r.handleHistorical)
	api.Get("/map-data", r.handleMapData)
	api.Post("/predict", r.handlePredict)
}

// newValidator reports fields by their JSON name.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
