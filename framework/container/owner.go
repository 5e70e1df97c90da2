package container

import (
	"reflect"
	"sync"
)

var (
	ownersMu sync.Mutex
	owners   = make(map[reflect.Type]*Container)
)

// Of returns the Container owned by type O, creating it on first access.
// Every call with the same O returns the identical Container; different
// owner types never share one. opts only apply to the first call.
//
//	type ProxyDependencies struct{}
//	c := container.Of[ProxyDependencies]()
func Of[O any](opts ...Option) *Container {
	key := reflect.TypeOf((*O)(nil)).Elem()

	ownersMu.Lock()
	defer ownersMu.Unlock()

	if c, ok := owners[key]; ok {
		return c
	}
	c := New(opts...)
	owners[key] = c
	return c
}

// OwnedBy returns a Locator for the Container owned by O, suitable for
// package-level Wire and NewAccessors declarations.
func OwnedBy[O any]() Locator {
	return ContainerFunc(func() *Container { return Of[O]() })
}
