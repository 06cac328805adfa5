package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// PlaceholderBaseURL is the value shipped in example configuration. The
// HTTP dispatcher refuses to call it so a fresh install fails fast instead
// of hitting a known-invalid host.
const PlaceholderBaseURL = "https://your-site.example/wp-json/somahar/v1"

// API holds the remote WordPress endpoint settings.
type API struct {
	BaseURL string
	Key     string
	Timeout time.Duration
}

// Mock configures the offline simulation backend.
type Mock struct {
	Enabled bool
	Seed    int64
	Latency time.Duration
	Orders  int
}

// HTTP holds the mock API server bind address.
type HTTP struct {
	Host string
	Port int
}

// Observability contains logging, tracing, and metrics configuration.
type Observability struct {
	ServiceName     string
	Environment     string
	LogLevel        string
	LogEncoding     string
	EnableTracing   bool
	TraceExporter   string
	TraceEndpoint   string
	TraceInsecure   bool
	EnableMetrics   bool
	MetricsExporter string
	PrometheusPath  string
}

// Config wraps all application configuration knobs.
type Config struct {
	API           API
	Mock          Mock
	HTTP          HTTP
	Observability Observability
}

// Module wires the configuration loader into the Fx graph.
var Module = fx.Provide(New)

var loadEnvOnce sync.Once

// New builds a Config from environment variables or defaults.
func New() (Config, error) {
	loadEnvOnce.Do(func() {
		_ = godotenv.Load()
	})

	cfg := Config{
		API: API{
			BaseURL: getEnv("API_BASE_URL", PlaceholderBaseURL),
			Key:     getEnv("API_KEY", ""),
			Timeout: getEnvAsDuration("API_TIMEOUT", 10*time.Second),
		},
		Mock: Mock{
			Enabled: getEnvAsBool("MOCK_MODE", false),
			Seed:    getEnvAsInt64("MOCK_SEED", 0),
			Latency: getEnvAsDuration("MOCK_LATENCY", 400*time.Millisecond),
			Orders:  getEnvAsInt("MOCK_ORDERS", 45),
		},
		HTTP: HTTP{
			Host: getEnv("HTTP_HOST", "0.0.0.0"),
			Port: getEnvAsInt("HTTP_PORT", 8080),
		},
		Observability: Observability{
			ServiceName:     getEnv("OBS_SERVICE_NAME", "somahar"),
			Environment:     getEnv("OBS_ENVIRONMENT", "local"),
			LogLevel:        getEnv("OBS_LOG_LEVEL", "info"),
			LogEncoding:     getEnv("OBS_LOG_ENCODING", "json"),
			EnableTracing:   getEnvAsBool("OBS_ENABLE_TRACING", false),
			TraceExporter:   getEnv("OBS_TRACE_EXPORTER", "stdout"),
			TraceEndpoint:   getEnv("OBS_OTLP_ENDPOINT", "localhost:4317"),
			TraceInsecure:   getEnvAsBool("OBS_OTLP_INSECURE", true),
			EnableMetrics:   getEnvAsBool("OBS_ENABLE_METRICS", true),
			MetricsExporter: getEnv("OBS_METRICS_EXPORTER", "prometheus"),
			PrometheusPath:  getEnv("OBS_PROMETHEUS_PATH", "/metrics"),
		},
	}

	if cfg.HTTP.Port <= 0 {
		return Config{}, fmt.Errorf("invalid HTTP port: %d", cfg.HTTP.Port)
	}

	if cfg.API.Timeout <= 0 {
		cfg.API.Timeout = 10 * time.Second
	}

	if cfg.Mock.Orders <= 0 {
		return Config{}, fmt.Errorf("invalid mock order count: %d", cfg.Mock.Orders)
	}
	if cfg.Mock.Latency < 0 {
		cfg.Mock.Latency = 0
	}

	cfg.Observability.LogLevel = strings.ToLower(strings.TrimSpace(cfg.Observability.LogLevel))
	if cfg.Observability.LogLevel == "" {
		cfg.Observability.LogLevel = "info"
	}
	cfg.Observability.LogEncoding = strings.ToLower(strings.TrimSpace(cfg.Observability.LogEncoding))
	if cfg.Observability.LogEncoding == "" {
		cfg.Observability.LogEncoding = "json"
	}
	cfg.Observability.TraceExporter = strings.ToLower(strings.TrimSpace(cfg.Observability.TraceExporter))
	if cfg.Observability.TraceExporter == "" {
		cfg.Observability.TraceExporter = "stdout"
	}
	cfg.Observability.MetricsExporter = strings.ToLower(strings.TrimSpace(cfg.Observability.MetricsExporter))
	if cfg.Observability.MetricsExporter == "" {
		cfg.Observability.MetricsExporter = "prometheus"
	}

	if cfg.Observability.PrometheusPath == "" {
		cfg.Observability.PrometheusPath = "/metrics"
	} else if !strings.HasPrefix(cfg.Observability.PrometheusPath, "/") {
		cfg.Observability.PrometheusPath = "/" + cfg.Observability.PrometheusPath
	}

	return cfg, nil
}
