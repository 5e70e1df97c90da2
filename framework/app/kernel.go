package app

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/upadhyeammit/smart-proxy/framework/config"
	"github.com/upadhyeammit/smart-proxy/framework/container"
	"github.com/upadhyeammit/smart-proxy/framework/providers"
	"github.com/upadhyeammit/smart-proxy/framework/routing"
)

// ShutdownTimeout bounds how long Run waits for in-flight requests.
const ShutdownTimeout = 10 * time.Second

// applicationAccessors declares the attributes every Application reads from
// its own container.
var applicationAccessors = container.NewAccessors(nil).
	InjectAttr(providers.Config, "config").
	InjectAttr(providers.Logger, "logger").
	InjectAttr(providers.Router, "router")

// Application is the top-level process object. It owns a Container, the
// ProviderRegistry declaring into it, and reads its own collaborators back
// through injected attributes.
type Application struct {
	container *container.Container
	providers *container.ProviderRegistry
	attrs     *container.Attributes
}

// New creates the application and registers the framework providers. Nothing
// is resolved until Boot.
func New(envFiles ...string) (*Application, error) {
	c := container.New()
	a := &Application{
		container: c,
		providers: container.NewProviderRegistry(c),
		attrs:     applicationAccessors.NewAttributesFrom(c),
	}

	for _, p := range []container.ServiceProvider{
		&providers.ConfigServiceProvider{EnvFiles: envFiles},
		&providers.LoggingServiceProvider{},
		&providers.MetricsServiceProvider{},
		&providers.RoutingServiceProvider{},
	} {
		if err := a.Register(p); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// ContainerInstance returns the application's container.
func (a *Application) ContainerInstance() *container.Container { return a.container }

// Register adds a ServiceProvider to the application.
func (a *Application) Register(provider container.ServiceProvider) error {
	return a.providers.Register(provider)
}

// Boot runs the Boot() phase on all providers.
func (a *Application) Boot() error {
	if err := a.providers.Boot(); err != nil {
		return errors.Wrap(err, "boot application")
	}
	return nil
}

// Booted reports whether Boot has run.
func (a *Application) Booted() bool { return a.providers.Booted() }

// Config returns the injected *config.Config.
func (a *Application) Config() (*config.Config, error) {
	return container.Attr[*config.Config](a.attrs, "config")
}

// Logger returns the injected *zap.Logger.
func (a *Application) Logger() (*zap.Logger, error) {
	return container.Attr[*zap.Logger](a.attrs, "logger")
}

// Router returns the injected *routing.Router.
func (a *Application) Router() (*routing.Router, error) {
	return container.Attr[*routing.Router](a.attrs, "router")
}

// Run boots the application (if needed), listens on the configured port and
// serves until ctx is done.
func (a *Application) Run(ctx context.Context) error {
	if err := a.ensureBooted(); err != nil {
		return err
	}
	cfg, err := a.Config()
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", cfg.HTTP.Addr())
	if err != nil {
		return errors.Wrapf(err, "listen on %s", cfg.HTTP.Addr())
	}
	return a.Serve(ctx, ln)
}

// Serve is like Run on an existing listener. The listener is closed on return.
func (a *Application) Serve(ctx context.Context, ln net.Listener) error {
	if err := a.ensureBooted(); err != nil {
		ln.Close()
		return err
	}
	cfg, err := a.Config()
	if err != nil {
		ln.Close()
		return err
	}
	logger, err := a.Logger()
	if err != nil {
		ln.Close()
		return err
	}
	router, err := a.Router()
	if err != nil {
		ln.Close()
		return err
	}

	srv := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening",
			zap.String("app", cfg.App.Name),
			zap.String("env", cfg.App.Env),
			zap.String("addr", ln.Addr().String()),
		)
		serveErr <- srv.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "http server")
	case <-ctx.Done():
	}

	logger.Info("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "http server shutdown")
	}
	<-serveErr
	_ = logger.Sync()
	return nil
}

func (a *Application) ensureBooted() error {
	if a.providers.Booted() {
		return nil
	}
	return a.Boot()
}
