package container

import (
	"fmt"
	"sync"
)

// Accessors is the declaration table of a dependency-consuming type: which
// attribute is backed by which dependency name, and where to resolve it.
//
//	var proxyAccessors = container.NewAccessors(container.OwnedBy[ProxyDependencies]()).
//	    InjectAttr("puppet_client", "client").
//	    InjectAttr("cache", "cache")
//
//	type PuppetAPI struct{ attrs *container.Attributes }
//
//	func NewPuppetAPI() *PuppetAPI { return &PuppetAPI{attrs: proxyAccessors.NewAttributes()} }
//
//	func (a *PuppetAPI) Client() (*PuppetClient, error) {
//	    return container.Attr[*PuppetClient](a.attrs, "client")
//	}
type Accessors struct {
	source Locator

	mu    sync.RWMutex
	deps  map[string]string // attribute → dependency name
	order []string
}

// NewAccessors starts a declaration table resolving against source. source
// may be nil when every instance supplies its own via NewAttributesFrom.
func NewAccessors(source Locator) *Accessors {
	return &Accessors{
		source: source,
		deps:   make(map[string]string),
	}
}

// InjectAttr declares that attribute is backed by dependency. Declaring the
// same attribute again rebinds it for attribute sets created afterwards.
func (a *Accessors) InjectAttr(dependency, attribute string) *Accessors {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.deps[attribute]; !ok {
		a.order = append(a.order, attribute)
	}
	a.deps[attribute] = dependency
	return a
}

// Attributes returns the declared attribute names in declaration order.
func (a *Accessors) Attributes() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]string, len(a.order))
	copy(out, a.order)
	return out
}

// DependencyOf returns the dependency name backing attribute.
func (a *Accessors) DependencyOf(attribute string) (string, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	dep, ok := a.deps[attribute]
	return dep, ok
}

// NewAttributes returns the per-instance attribute set, resolving against
// the declared source.
func (a *Accessors) NewAttributes() *Attributes {
	return a.NewAttributesFrom(a.source)
}

// NewAttributesFrom is like NewAttributes with an instance-specific source.
func (a *Accessors) NewAttributesFrom(source Locator) *Attributes {
	a.mu.RLock()
	deps := make(map[string]string, len(a.deps))
	for attr, dep := range a.deps {
		deps[attr] = dep
	}
	a.mu.RUnlock()

	return &Attributes{
		source:   source,
		deps:     deps,
		resolved: make(map[string]any, len(deps)),
	}
}

// ── Attributes ────────────────────────────────────────────────────────────────

// Attributes holds one consumer instance's injected attributes. Each attribute
// starts unresolved; the first successful Get resolves it from the container
// and every later Get returns that same value.
type Attributes struct {
	source Locator
	deps   map[string]string

	mu       sync.Mutex
	resolved map[string]any
}

// Get returns the value of attribute, resolving it on first read. A failed
// resolution leaves the attribute unresolved and returns the error as is.
func (at *Attributes) Get(attribute string) (any, error) {
	dep, ok := at.deps[attribute]
	if !ok {
		return nil, &UndeclaredAttributeError{Attribute: attribute}
	}

	at.mu.Lock()
	v, ok := at.resolved[attribute]
	at.mu.Unlock()
	if ok {
		return v, nil
	}

	if at.source == nil {
		return nil, fmt.Errorf("container: attribute [%s] has no container source", attribute)
	}

	c := at.source.ContainerInstance()
	if c == nil {
		return nil, fmt.Errorf("container: attribute [%s] source returned no container", attribute)
	}

	v, err := c.GetDependency(dep)
	if err != nil {
		return nil, err
	}

	at.mu.Lock()
	defer at.mu.Unlock()
	// A concurrent first read may have won; its value is the one observed.
	if existing, ok := at.resolved[attribute]; ok {
		return existing, nil
	}
	at.resolved[attribute] = v
	return v, nil
}

// IsResolved reports whether attribute already holds a value.
func (at *Attributes) IsResolved(attribute string) bool {
	at.mu.Lock()
	defer at.mu.Unlock()
	_, ok := at.resolved[attribute]
	return ok
}

// Attr is the typed form of Attributes.Get.
func Attr[T any](at *Attributes, attribute string) (T, error) {
	var zero T
	v, err := at.Get(attribute)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, &TypeMismatchError{
			Name:     at.deps[attribute],
			Expected: fmt.Sprintf("%T", &zero)[1:],
			Got:      fmt.Sprintf("%T", v),
		}
	}
	return typed, nil
}
