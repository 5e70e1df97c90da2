package container

import (
	"sync"

	"github.com/pkg/errors"
)

// ── ServiceProvider interface ─────────────────────────────────────────────────

// ServiceProvider groups the Wiring declarations of one area of the
// application.
//
// Register() declares dependencies. Boot() is called after ALL providers have
// been registered, making it safe to resolve other dependencies inside Boot().
//
//	type PuppetProvider struct{ container.BaseProvider }
//
//	func (p *PuppetProvider) Register(w *container.Wiring) {
//	    w.SingletonDependency("puppet_client", container.Provide(newPuppetClient))
//	}
//
//	func (p *PuppetProvider) Boot(c *container.Container) error {
//	    _, err := c.GetDependency("puppet_client")
//	    return err
//	}
type ServiceProvider interface {
	// Register declares dependencies.
	// Do NOT resolve other dependencies here; use Boot() for that.
	Register(w *Wiring)

	// Boot is called after all providers are registered.
	Boot(c *Container) error

	// Provides returns the dependency names this provider registers.
	// Only consulted for deferred providers.
	Provides() []string

	// IsDeferred returns true if this provider should be loaded lazily,
	// only when one of its Provides() names is first resolved.
	IsDeferred() bool
}

// ── BaseProvider ──────────────────────────────────────────────────────────────

// BaseProvider is an embeddable struct that provides no-op implementations
// of Boot(), Provides(), and IsDeferred().
//
//	type MyProvider struct{ container.BaseProvider }
//	func (p *MyProvider) Register(w *container.Wiring) { ... }
type BaseProvider struct{}

func (p *BaseProvider) Boot(_ *Container) error { return nil }
func (p *BaseProvider) Provides() []string      { return nil }
func (p *BaseProvider) IsDeferred() bool        { return false }

// ── ProviderRegistry ──────────────────────────────────────────────────────────

// ProviderRegistry manages registration and booting of ServiceProviders,
// including deferred (lazy) providers.
type ProviderRegistry struct {
	wiring *Wiring

	mu         sync.Mutex
	eager      []ServiceProvider
	registered map[ServiceProvider]bool
	deferred   map[ServiceProvider]*deferredLoad
	pending    []ServiceProvider // deferred providers loaded before Boot
	booted     bool
}

// deferredLoad tracks the one-time Register of a deferred provider.
type deferredLoad struct {
	once     sync.Once
	declared map[string]bool
	err      error
}

// NewProviderRegistry creates a registry declaring into owner's Container.
func NewProviderRegistry(owner Locator) *ProviderRegistry {
	return &ProviderRegistry{
		wiring:     Wire(owner),
		registered: make(map[ServiceProvider]bool),
		deferred:   make(map[ServiceProvider]*deferredLoad),
	}
}

// Register adds a provider and calls its Register() method (unless deferred).
// Registering the same provider twice is a no-op.
func (r *ProviderRegistry) Register(provider ServiceProvider) error {
	r.mu.Lock()
	if r.registered[provider] {
		r.mu.Unlock()
		return nil
	}
	r.registered[provider] = true
	booted := r.booted
	if provider.IsDeferred() {
		r.deferred[provider] = &deferredLoad{}
	} else {
		r.eager = append(r.eager, provider)
	}
	r.mu.Unlock()

	if provider.IsDeferred() {
		r.interceptDeferred(provider)
		return nil
	}

	provider.Register(r.wiring)

	// If already booted, boot this provider immediately
	if booted {
		return bootProvider(provider, r.wiring.Container())
	}
	return nil
}

// interceptDeferred installs a placeholder for each deferred name. The first
// resolution runs the provider's real Register(), whose registrations replace
// the placeholders, and then resolves the real dependency. Concurrent first
// resolutions wait for that Register() to finish.
func (r *ProviderRegistry) interceptDeferred(provider ServiceProvider) {
	c := r.wiring.Container()
	for _, name := range provider.Provides() {
		name := name
		c.registerDeferred(name, Parameterized(func(c *Container) (any, error) {
			load := r.loadDeferred(provider)
			if load.err != nil {
				return nil, load.err
			}
			if !load.declared[name] {
				// Provider ran and did not register name.
				return nil, &NotFoundError{Name: name}
			}
			return c.GetDependency(name)
		}))
	}
}

// loadDeferred runs provider.Register exactly once; callers arriving while it
// runs block until it has finished.
func (r *ProviderRegistry) loadDeferred(provider ServiceProvider) *deferredLoad {
	r.mu.Lock()
	load := r.deferred[provider]
	r.mu.Unlock()

	load.once.Do(func() {
		declared := make(map[string]bool)
		w := &Wiring{owner: r.wiring.owner, declared: func(name string) { declared[name] = true }}
		provider.Register(w)
		load.declared = declared

		r.mu.Lock()
		booted := r.booted
		if !booted {
			r.pending = append(r.pending, provider)
		}
		r.mu.Unlock()

		if booted {
			load.err = bootProvider(provider, w.Container())
		}
	})
	return load
}

// Boot calls Boot() on all eager providers, then on deferred providers that
// were loaded before it, stopping at the first error. Must be called after
// ALL providers have been registered; later calls are no-ops.
func (r *ProviderRegistry) Boot() error {
	r.mu.Lock()
	if r.booted {
		r.mu.Unlock()
		return nil
	}
	r.booted = true
	providers := make([]ServiceProvider, 0, len(r.eager)+len(r.pending))
	providers = append(providers, r.eager...)
	providers = append(providers, r.pending...)
	r.pending = nil
	r.mu.Unlock()

	c := r.wiring.Container()
	for _, provider := range providers {
		if err := bootProvider(provider, c); err != nil {
			return err
		}
	}
	return nil
}

// Booted returns true if Boot() has been called.
func (r *ProviderRegistry) Booted() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.booted
}

// Providers returns all registered eager providers.
func (r *ProviderRegistry) Providers() []ServiceProvider {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ServiceProvider, len(r.eager))
	copy(out, r.eager)
	return out
}

func bootProvider(provider ServiceProvider, c *Container) error {
	if err := provider.Boot(c); err != nil {
		return errors.Wrapf(err, "boot %T", provider)
	}
	return nil
}
