package httpserver

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fire-risk-api/pkg/observe"
)

func status(t *testing.T, app *fiber.App, method, target string) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, target, nil), -1)
	require.NoError(t, err)
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return resp.StatusCode
}

func TestInitFiberServer_Probes(t *testing.T) {
	ready := false
	app := InitFiberServer("test", nil, func() bool { return ready })

	assert.Equal(t, http.StatusOK, status(t, app, http.MethodGet, LivenessEndpoint))
	assert.Equal(t, http.StatusServiceUnavailable, status(t, app, http.MethodGet, ReadinessEndpoint))

	ready = true
	assert.Equal(t, http.StatusOK, status(t, app, http.MethodGet, ReadinessEndpoint))

	assert.Equal(t, http.StatusNotFound, status(t, app, http.MethodGet, MetricsEndpoint), "no metrics route without a registry")
}

func TestInitFiberServer_RecoversPanics(t *testing.T) {
	app := InitFiberServer("test", nil, nil)
	app.Get("/boom", func(*fiber.Ctx) error { panic("boom") })

	assert.Equal(t, http.StatusInternalServerError, status(t, app, http.MethodGet, "/boom"))
}

func TestInitFiberServer_InstrumentsRoutes(t *testing.T) {
	m := observe.NewMetrics()
	app := InitFiberServer("test", m, nil)
	app.Get("/items/:id", func(c *fiber.Ctx) error { return c.SendString(c.Params("id")) })
	app.Get("/teapot", func(*fiber.Ctx) error { return fiber.NewError(http.StatusTeapot, "short and stout") })

	status(t, app, http.MethodGet, "/items/1")
	status(t, app, http.MethodGet, "/items/2")
	status(t, app, http.MethodGet, "/teapot")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues(http.MethodGet, "/items/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues(http.MethodGet, "/teapot", "418")))
	assert.Equal(t, http.StatusOK, status(t, app, http.MethodGet, MetricsEndpoint))
}

func TestInitFiberServer_RequestID(t *testing.T) {
	app := InitFiberServer("test", nil, nil)
	app.Get("/id", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(RequestIDKey).(string))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/id", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Len(t, string(body), 36)
	assert.Equal(t, string(body), resp.Header.Get(fiber.HeaderXRequestID))
}
