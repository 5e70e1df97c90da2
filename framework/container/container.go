package container

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ── Options ───────────────────────────────────────────────────────────────────

// Observer is notified about every resolution attempt.
type Observer interface {
	// Resolved is called after a registered name was resolved; err is the
	// factory error, if any.
	Resolved(name string, strategy Strategy, err error)

	// Missed is called when a name has no registration.
	Missed(name string)
}

// Option configures a Container at construction time.
type Option func(c *Container)

// WithLogger sets the logger used for registration and lookup events.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Container) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithObserver attaches an Observer, e.g. a metrics collector.
func WithObserver(o Observer) Option {
	return func(c *Container) {
		c.observer = o
	}
}

// ── Container ─────────────────────────────────────────────────────────────────

// Container maps dependency names to Wrappers.
//
// It supports:
//   - Register (instance or singleton strategy, last registration wins)
//   - GetDependency / Resolve (generic)
//   - Dependencies (introspection of the registered strategies)
//
// A Container is safe for concurrent use. Factories run without the registry
// lock held, so they can resolve other dependencies from the same Container.
type Container struct {
	id string

	mu       sync.RWMutex
	wrappers map[string]Wrapper
	logger   *zap.Logger
	observer Observer
}

// New creates an empty container.
func New(opts ...Option) *Container {
	c := &Container{
		id:       uuid.NewString(),
		wrappers: make(map[string]Wrapper),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(zap.String("container", c.id))
	return c
}

// ID returns the random identifier assigned at construction.
func (c *Container) ID() string { return c.id }

// ContainerInstance lets a *Container be used wherever a Locator is expected.
func (c *Container) ContainerInstance() *Container { return c }

// SetLogger replaces the logger. Used when the logger is itself a dependency
// that only becomes available after boot.
func (c *Container) SetLogger(logger *zap.Logger) {
	if logger == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger = logger.With(zap.String("container", c.id))
}

// SetObserver replaces the Observer; nil detaches it.
func (c *Container) SetObserver(o Observer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observer = o
}

// ── Registration ──────────────────────────────────────────────────────────────

// Register stores f under name with the given strategy. An existing
// registration for name is replaced, including any cached singleton value.
//
//	c.Register("puppet_client", container.Type[PuppetClient](), container.StrategyInstance)
func (c *Container) Register(name string, f Factory, s Strategy) {
	c.store(name, NewWrapper(f, s), f.Kind())
}

// registerDeferred installs a placeholder that stands in for name until a
// deferred provider registers the real dependency.
func (c *Container) registerDeferred(name string, f Factory) {
	c.store(name, &deferredWrapper{InstanceWrapper{factory: f}}, f.Kind())
}

func (c *Container) store(name string, w Wrapper, kind FactoryKind) {
	c.mu.Lock()
	_, overwritten := c.wrappers[name]
	c.wrappers[name] = w
	logger := c.logger
	c.mu.Unlock()

	logger.Debug("dependency registered",
		zap.String("name", name),
		zap.Stringer("strategy", w.Strategy()),
		zap.Stringer("factory", kind),
		zap.Bool("overwritten", overwritten),
	)
}

// ── Resolution ────────────────────────────────────────────────────────────────

// GetDependency resolves name. Unknown names fail with *NotFoundError; factory
// errors are returned as they are.
//
//	v, err := c.GetDependency("puppet_client")
func (c *Container) GetDependency(name string) (any, error) {
	c.mu.RLock()
	w, ok := c.wrappers[name]
	logger, observer := c.logger, c.observer
	c.mu.RUnlock()

	if !ok {
		logger.Debug("dependency not found", zap.String("name", name))
		if observer != nil {
			observer.Missed(name)
		}
		return nil, &NotFoundError{Name: name}
	}

	v, err := w.Resolve(c)
	if observer != nil {
		observer.Resolved(name, w.Strategy(), err)
	}
	if err != nil {
		logger.Debug("dependency factory failed",
			zap.String("name", name),
			zap.Stringer("strategy", w.Strategy()),
			zap.Error(err),
		)
	}
	return v, err
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// Dependencies returns a snapshot of the name → Wrapper mapping.
func (c *Container) Dependencies() map[string]Wrapper {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]Wrapper, len(c.wrappers))
	for name, w := range c.wrappers {
		out[name] = w
	}
	return out
}

// Has returns true if name has been registered.
func (c *Container) Has(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.wrappers[name]
	return ok
}

// Names returns the registered names in sorted order.
func (c *Container) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.wrappers))
	for name := range c.wrappers {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Forget removes the registration for name.
func (c *Container) Forget(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.wrappers, name)
}

// Flush removes every registration.
func (c *Container) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.wrappers = make(map[string]Wrapper)
}

// ── Generics helper ───────────────────────────────────────────────────────────

// Resolve calls GetDependency and type-asserts the result.
//
//	// Instead of: v, err := c.GetDependency("config"); cfg := v.(*config.Config)
//	// Write:      cfg, err := container.Resolve[*config.Config](c, "config")
func Resolve[T any](c *Container, name string) (T, error) {
	var zero T
	v, err := c.GetDependency(name)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, &TypeMismatchError{
			Name:     name,
			Expected: fmt.Sprintf("%T", &zero)[1:],
			Got:      fmt.Sprintf("%T", v),
		}
	}
	return typed, nil
}

// MustResolve is like Resolve but panics on any error.
func MustResolve[T any](c *Container, name string) T {
	v, err := Resolve[T](c, name)
	if err != nil {
		panic(err)
	}
	return v
}
