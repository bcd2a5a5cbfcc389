package config

import (
	"fmt"
	"maps"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"fire-risk-api/internal/models"
)

const DefaultConfigFile = "config/config.yaml"

type Config struct {
	AppName    string `yaml:"app_name" envconfig:"APP_NAME"`
	AppVersion string `yaml:"app_version" envconfig:"APP_VERSION"`
	AppEnv     string `yaml:"app_env" envconfig:"APP_ENV"`
	Port       string `yaml:"port" envconfig:"PORT"`
	LogLevel   string `yaml:"log_level" envconfig:"LOG_LEVEL"`

	// TimeZone drives the "current month" of the risk formula.
	TimeZone string `yaml:"time_zone" envconfig:"TIME_ZONE"`

	MetricsPaths         []string      `yaml:"metrics_paths" envconfig:"METRICS_PATHS"`
	WeekPredictionsPaths []string      `yaml:"week_predictions_paths" envconfig:"WEEK_PREDICTIONS_PATHS"`
	YearPredictionsPaths []string      `yaml:"year_predictions_paths" envconfig:"YEAR_PREDICTIONS_PATHS"`
	HistoricalCSVPath    string        `yaml:"historical_csv_path" envconfig:"HISTORICAL_CSV_PATH"`
	ArtifactCacheTTL     time.Duration `yaml:"artifact_cache_ttl" envconfig:"ARTIFACT_CACHE_TTL"`

	// FallbackSeed seeds the synthetic data generator; 0 seeds from the clock.
	FallbackSeed uint64 `yaml:"fallback_seed" envconfig:"FALLBACK_SEED"`

	// ProjectionFactors are the per-model multipliers applied on top of R².
	// PROJECTION_FACTORS entries override single models of the file and the
	// defaults; models it leaves out keep their value.
	ProjectionFactors map[string]float64 `yaml:"projection_factors" envconfig:"PROJECTION_FACTORS"`

	SentryDSN       string        `yaml:"sentry_dsn,omitempty" envconfig:"SENTRY_DSN"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT"`
}

// Defaults returns the configuration used when neither the YAML file nor the
// environment set a value.
func Defaults() *Config {
	return &Config{
		AppName:    "fire-risk-api",
		AppVersion: "1.0.0",
		AppEnv:     "development",
		Port:       "8080",
		LogLevel:   "info",
		TimeZone:   "America/Fortaleza",
		MetricsPaths: []string{
			"src/scripts/output/model_metrics.json",
			"output/model_metrics.json",
		},
		WeekPredictionsPaths: []string{
			"output/week_predictions.json",
		},
		YearPredictionsPaths: []string{
			"src/scripts/output/year_predictions.json",
			"output/year_predictions.json",
		},
		HistoricalCSVPath: "data/bdqueimadas.csv",
		ArtifactCacheTTL:  5 * time.Minute,
		ProjectionFactors: map[string]float64{
			models.NeuralNetwork: 1.3,
			models.KNN:           1.25,
			models.RandomForest:  1.2,
		},
		ShutdownTimeout: 30 * time.Second,
	}
}

// NewConfig loads the file named by CONFIG_FILE (config/config.yaml by default).
func NewConfig() (*Config, error) {
	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = DefaultConfigFile
	}
	return Load(path)
}

// Load applies, in order: defaults, the YAML file at path (a missing file is
// not an error), environment variables. The result is validated.
func Load(path string) (*Config, error) {
	cnf := Defaults()

	if yamlData, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(yamlData, cnf); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read YAML config %s: %w", path, err)
	}

	factors := maps.Clone(cnf.ProjectionFactors)
	if err := envconfig.Process("", cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}
	if factors == nil {
		factors = make(map[string]float64, len(cnf.ProjectionFactors))
	}
	maps.Copy(factors, cnf.ProjectionFactors)
	cnf.ProjectionFactors = factors

	if err := cnf.Validate(); err != nil {
		return nil, err
	}

	return cnf, nil
}

func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.AppName) == "" {
		problems = append(problems, "app_name is required")
	}
	if port, err := strconv.Atoi(c.Port); err != nil || port <= 0 || port > 65535 {
		problems = append(problems, fmt.Sprintf("port %q is not a valid TCP port", c.Port))
	}
	if _, err := time.LoadLocation(c.TimeZone); err != nil {
		problems = append(problems, fmt.Sprintf("time_zone %q is unknown", c.TimeZone))
	}
	if len(c.MetricsPaths) == 0 {
		problems = append(problems, "metrics_paths must list at least one path")
	}
	if c.ArtifactCacheTTL < 0 {
		problems = append(problems, "artifact_cache_ttl must not be negative")
	}
	if c.ShutdownTimeout <= 0 {
		problems = append(problems, "shutdown_timeout must be positive")
	}
	for _, id := range models.ModelIDs {
		if f, ok := c.ProjectionFactors[id]; !ok || f <= 0 {
			problems = append(problems, fmt.Sprintf("projection_factors.%s must be positive", id))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Location returns the configured time zone. Validate guarantees it loads.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production" || c.AppEnv == "prod"
}
