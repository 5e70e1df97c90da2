package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the typed configuration of a smart-proxy process.
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Log     LogConfig
	Metrics MetricsConfig
}

type AppConfig struct {
	Name  string
	Env   string // local | production | testing
	Debug bool
}

// IsProduction reports whether APP_ENV is "production".
func (c AppConfig) IsProduction() bool { return c.Env == "production" }

type HTTPConfig struct {
	Port int
}

// Addr is the listen address for Port on all interfaces.
func (c HTTPConfig) Addr() string { return ":" + strconv.Itoa(c.Port) }

type LogConfig struct {
	Level string // debug | info | warn | error
	// Development selects the console encoder and stack traces on warnings.
	Development bool
}

type MetricsConfig struct {
	Enabled bool
}

// Load reads .env (if present) and populates a Config from environment variables.
// Call once at bootstrap: cfg := config.Load()
func Load(envFiles ...string) *Config {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	// Non-fatal: .env may not exist in production
	_ = godotenv.Load(files...)

	app := AppConfig{
		Name:  env("APP_NAME", "smart-proxy"),
		Env:   env("APP_ENV", "local"),
		Debug: envBool("APP_DEBUG", true),
	}

	return &Config{
		App: app,
		HTTP: HTTPConfig{
			Port: GetInt("HTTP_PORT", 8000),
		},
		Log: LogConfig{
			Level:       env("LOG_LEVEL", "info"),
			Development: !app.IsProduction(),
		},
		Metrics: MetricsConfig{
			Enabled: envBool("METRICS_ENABLED", true),
		},
	}
}

// Get returns a raw env value, falling back to defaultVal.
func Get(key, defaultVal string) string {
	return env(key, defaultVal)
}

// GetInt returns an int env value.
func GetInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

// GetBool returns a bool env value.
func GetBool(key string, defaultVal bool) bool {
	return envBool(key, defaultVal)
}

// ── helpers ─────────────────────────────────────────────────────────────────

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
