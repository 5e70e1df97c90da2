// Package container provides a name-based dependency injection container,
// a declarative Wiring surface for the types that own dependencies and an
// Accessors surface for the types that consume them.
//
// # Overview
//
// A Container maps dependency names to Wrappers. A Wrapper holds a Factory
// and one of two strategies:
//
//   - instance: the factory runs on every resolution
//   - singleton: the factory runs once, the value is cached for the
//     lifetime of the Container
//
// Registering a name twice replaces the first registration; there is no
// duplicate error.
//
// # Factories
//
//	container.Type[PuppetClient]()                          // new(PuppetClient) each call
//	container.Func(func() *Cache { return NewCache(64) })   // zero-argument closure
//	container.Provide(func(c *container.Container) (*API, error) {
//	    client, err := container.Resolve[*PuppetClient](c, "puppet_client")
//	    if err != nil {
//	        return nil, err
//	    }
//	    return &API{Client: client}, nil
//	})
//
// # Owners
//
// Each owner type has exactly one Container, created on first access:
//
//	type ProxyDependencies struct{}
//
//	c := container.Of[ProxyDependencies]()
//	c == container.Of[ProxyDependencies]() // true
//
// # Wiring
//
//	var _ = container.Wire(container.OwnedBy[ProxyDependencies]()).
//	    Dependency("puppet_client", container.Type[PuppetClient]()).
//	    SingletonDependency("cache", container.Func(NewDefaultCache))
//
// # Resolving
//
//	v, err := c.GetDependency("cache")                  // untyped
//	cache, err := container.Resolve[*Cache](c, "cache") // typed
//
// Unknown names fail with *NotFoundError (errors.Is(err, container.ErrNotFound)).
// Factory errors are returned unchanged.
//
// # Accessors
//
//	var apiAccessors = container.NewAccessors(container.OwnedBy[ProxyDependencies]()).
//	    InjectAttr("puppet_client", "client")
//
//	type API struct{ attrs *container.Attributes }
//
//	func NewAPI() *API { return &API{attrs: apiAccessors.NewAttributes()} }
//
//	func (a *API) Client() (*PuppetClient, error) {
//	    return container.Attr[*PuppetClient](a.attrs, "client")
//	}
//
// The first read of an attribute resolves it; later reads on the same
// instance return the same value, even for instance-strategy dependencies.
//
// # Service Providers
//
//	type PuppetProvider struct{ container.BaseProvider }
//
//	func (p *PuppetProvider) Register(w *container.Wiring) {
//	    w.SingletonDependency("puppet_client", container.Type[PuppetClient]())
//	}
//
//	registry := container.NewProviderRegistry(container.OwnedBy[ProxyDependencies]())
//	registry.Register(&PuppetProvider{})
//	registry.Boot()
package container
