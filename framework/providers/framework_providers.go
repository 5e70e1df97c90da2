package providers

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/upadhyeammit/smart-proxy/framework/config"
	"github.com/upadhyeammit/smart-proxy/framework/container"
	gohttp "github.com/upadhyeammit/smart-proxy/framework/http"
	"github.com/upadhyeammit/smart-proxy/framework/logging"
	"github.com/upadhyeammit/smart-proxy/framework/metrics"
	"github.com/upadhyeammit/smart-proxy/framework/routing"
)

// Dependency names declared by the framework providers.
const (
	Config          = "config"
	Logger          = "logger"
	Router          = "router"
	Metrics         = "metrics"
	MetricsObserver = "metrics_observer"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider loads the application configuration from .env and
// declares it as "config".
//
// Declared dependencies:
//   - "config"  → *config.Config (singleton)
type ConfigServiceProvider struct {
	container.BaseProvider
	EnvFiles []string
}

func (p *ConfigServiceProvider) Register(w *container.Wiring) {
	envFiles := p.EnvFiles
	w.SingletonDependency(Config, container.Func(func() *config.Config {
		return config.Load(envFiles...)
	}))
}

// ── LoggingServiceProvider ────────────────────────────────────────────────────

// LoggingServiceProvider builds the process logger from "config" and hands
// it to the container once booted.
//
// Declared dependencies:
//   - "logger"  → *zap.Logger (singleton)
type LoggingServiceProvider struct {
	container.BaseProvider
}

func (p *LoggingServiceProvider) Register(w *container.Wiring) {
	w.SingletonDependency(Logger, container.Provide(func(c *container.Container) (*zap.Logger, error) {
		cfg, err := container.Resolve[*config.Config](c, Config)
		if err != nil {
			return nil, err
		}
		return logging.New(cfg.Log)
	}))
}

func (p *LoggingServiceProvider) Boot(c *container.Container) error {
	logger, err := container.Resolve[*zap.Logger](c, Logger)
	if err != nil {
		return err
	}
	c.SetLogger(logger)
	return nil
}

// ── MetricsServiceProvider ────────────────────────────────────────────────────

// MetricsServiceProvider is deferred: nothing is built until "metrics" or
// "metrics_observer" is first resolved. Booting it attaches the resolution
// observer to the container.
//
// Declared dependencies:
//   - "metrics"           → *metrics.Registry (singleton)
//   - "metrics_observer"  → *metrics.Observer (singleton)
type MetricsServiceProvider struct {
	container.BaseProvider
}

func (p *MetricsServiceProvider) Register(w *container.Wiring) {
	w.SingletonDependency(Metrics, container.Provide(func(c *container.Container) (*metrics.Registry, error) {
		cfg, err := container.Resolve[*config.Config](c, Config)
		if err != nil {
			return nil, err
		}
		return metrics.NewRegistry(cfg.App.Name), nil
	}))
	w.SingletonDependency(MetricsObserver, container.Provide(func(c *container.Container) (*metrics.Observer, error) {
		registry, err := container.Resolve[*metrics.Registry](c, Metrics)
		if err != nil {
			return nil, err
		}
		return metrics.NewObserver(registry.Registerer)
	}))
}

func (p *MetricsServiceProvider) Boot(c *container.Container) error {
	observer, err := container.Resolve[*metrics.Observer](c, MetricsObserver)
	if err != nil {
		return err
	}
	c.SetObserver(observer)
	return nil
}

func (p *MetricsServiceProvider) IsDeferred() bool   { return true }
func (p *MetricsServiceProvider) Provides() []string { return []string{Metrics, MetricsObserver} }

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RoutingServiceProvider declares the HTTP router and, on boot, mounts the
// container introspection endpoints and the metrics exporter.
//
// Declared dependencies:
//   - "router"  → *routing.Router (singleton)
type RoutingServiceProvider struct {
	container.BaseProvider
}

func (p *RoutingServiceProvider) Register(w *container.Wiring) {
	w.SingletonDependency(Router, container.Provide(func(c *container.Container) (*routing.Router, error) {
		logger, err := container.Resolve[*zap.Logger](c, Logger)
		if err != nil {
			return nil, err
		}
		return routing.New(logger.Named("http")), nil
	}))
}

func (p *RoutingServiceProvider) Boot(c *container.Container) error {
	var deps struct {
		Config *config.Config  `inject:"config"`
		Router *routing.Router `inject:"router"`
	}
	if err := container.Populate(c, &deps); err != nil {
		return err
	}

	gohttp.NewDependenciesHandler(c).Routes(deps.Router, "/dependencies")

	if !deps.Config.Metrics.Enabled {
		return nil
	}
	registry, err := container.Resolve[*metrics.Registry](c, Metrics)
	if err != nil {
		return errors.Wrap(err, "metrics exporter")
	}
	deps.Router.Mount("/metrics", registry.Handler())
	return nil
}
