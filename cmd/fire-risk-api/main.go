package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/jonboulle/clockwork"

	"fire-risk-api/config"
	v1 "fire-risk-api/internal/controllers/http/v1"
	"fire-risk-api/internal/repositories"
	"fire-risk-api/internal/services/forecast"
	"fire-risk-api/internal/services/historical"
	"fire-risk-api/internal/services/mapdata"
	"fire-risk-api/internal/services/risk"
	"fire-risk-api/internal/services/synthetic"
	"fire-risk-api/pkg/httpserver"
	"fire-risk-api/pkg/logger"
	"fire-risk-api/pkg/observe"
)

// @title Fire Risk API
// @version 1.0.0
// @description Fire-risk estimation for the Mossoró region from climate features and trained model metrics.
// @description Point predictions, precomputed week and year forecasts, the risk map and historical fire observations.

// @contact.name Fire Risk API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Predictions
// @tag.description Point risk estimation and precomputed forecasts
// @tag.name Models
// @tag.description Training metrics of the models
// @tag.name Map
// @tag.description Aggregated risk per municipio
// @tag.name Historical
// @tag.description Historical fire observations
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf, err := config.NewConfig()
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	writers := []io.Writer{os.Stdout}
	var hook *observe.SentryHook
	if cnf.SentryDSN != "" {
		hook = observe.NewSentryHook(cnf.AppEnv, cnf.AppName, cnf.SentryDSN, !cnf.IsProduction())
		writers = append(writers, hook)
	}

	l := logger.NewZapLogger(cnf.AppName, cnf.AppEnv, cnf.LogLevel, writers...)
	if hook != nil {
		hook.SetLogger(l)
	}

	var ready atomic.Bool
	metrics := observe.NewMetrics()
	app := httpserver.InitFiberServer(cnf.AppName, metrics, ready.Load)

	repos := repositories.InitArtifactRepositories(cnf, l)

	clock := clockwork.NewRealClock()
	gen := synthetic.NewGenerator(cnf.FallbackSeed)
	riskService := risk.NewService(repos.Metrics, risk.NewProjector(cnf.ProjectionFactors), clock, cnf.Location(), l, metrics)

	v1.NewRouter(
		app,
		v1.Services{
			Risk:       riskService,
			Forecast:   forecast.NewService(repos.Metrics, repos.Predictions, gen, clock, cnf.Location(), l, metrics),
			MapData:    mapdata.NewService(repos.Observations, riskService, gen, l, metrics),
			Historical: historical.NewService(repos.Observations, l, metrics),
		},
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err})
		}
	}()

	ready.Store(true)
	l.Info("application started successfully", map[string]any{
		"port":         cnf.Port,
		"version":      cnf.AppVersion,
		"timeZone":     cnf.TimeZone,
		"fallbackSeed": gen.Seed(),
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		ready.Store(false)
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cnf.ShutdownTimeout)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		if hook != nil {
			hook.Flush()
		}
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}
