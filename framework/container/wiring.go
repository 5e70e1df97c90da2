package container

// Locator is implemented by every type that registers into, or resolves
// from, a Container.
type Locator interface {
	ContainerInstance() *Container
}

// ContainerFunc adapts a function to the Locator interface.
type ContainerFunc func() *Container

func (f ContainerFunc) ContainerInstance() *Container { return f() }

// ── Wiring ────────────────────────────────────────────────────────────────────

// Wiring is the declaration surface of a dependency-owning type. It is meant
// to be built once, at package initialisation:
//
//	type ProxyDependencies struct{}
//
//	func (ProxyDependencies) ContainerInstance() *container.Container {
//	    return container.Of[ProxyDependencies]()
//	}
//
//	var _ = container.Wire(ProxyDependencies{}).
//	    Dependency("puppet_client", container.Type[PuppetClient]()).
//	    SingletonDependency("cache", container.Func(NewCache))
type Wiring struct {
	owner Locator

	// declared, when set, is told every name this Wiring registers.
	declared func(name string)
}

// Wire starts declarations for owner.
func Wire(owner Locator) *Wiring {
	return &Wiring{owner: owner}
}

// Container returns the owner's Container.
func (w *Wiring) Container() *Container {
	return w.owner.ContainerInstance()
}

// Dependency registers name with the instance strategy: every resolution
// builds a new value.
func (w *Wiring) Dependency(name string, factory Factory) *Wiring {
	w.Container().Register(name, factory, StrategyInstance)
	w.note(name)
	return w
}

// SingletonDependency registers name with the singleton strategy: the first
// resolution builds the value and every later one returns it.
func (w *Wiring) SingletonDependency(name string, factory Factory) *Wiring {
	w.Container().Register(name, factory, StrategySingleton)
	w.note(name)
	return w
}

func (w *Wiring) note(name string) {
	if w.declared != nil {
		w.declared(name)
	}
}
