package httpserver

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fire-risk-api/pkg/observe"
)

// RequestIDKey is the Locals key holding the X-Request-ID of a request.
const RequestIDKey = "requestid"

const (
	LivenessEndpoint  = "/manage/health"
	ReadinessEndpoint = "/manage/ready"
	MetricsEndpoint   = "/manage/metrics"
)

// InitFiberServer builds the Fiber app with recovery, request ids, CORS, health
// probes and request instrumentation. ready may be nil, in which case the
// readiness probe always succeeds.
func InitFiberServer(appName string, metrics *observe.Metrics, ready func() bool) *fiber.App {
	s := fiber.New(fiber.Config{
		AppName:      appName,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		BodyLimit:    1024 * 1024,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	})

	s.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	s.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	s.Use(cors.New())
	s.Use(healthcheck.New(healthcheck.Config{
		LivenessEndpoint:  LivenessEndpoint,
		ReadinessEndpoint: ReadinessEndpoint,
		ReadinessProbe: func(*fiber.Ctx) bool {
			return ready == nil || ready()
		},
	}))

	if metrics != nil {
		s.Use(instrument(metrics))
		s.Get(MetricsEndpoint, adaptor.HTTPHandler(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))
	}

	return s
}

func instrument(m *observe.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}

		// Route().Path is the registered pattern, not the raw request path.
		route := c.Route().Path
		m.HTTPRequests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		m.HTTPRequestDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())

		return err
	}
}
