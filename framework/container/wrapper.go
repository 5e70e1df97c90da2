package container

import "sync"

// Strategy is the resolution policy of a registered dependency.
type Strategy uint8

const (
	// StrategyInstance builds a fresh value on every resolution.
	StrategyInstance Strategy = iota + 1

	// StrategySingleton builds the value once and reuses it afterwards.
	StrategySingleton
)

func (s Strategy) String() string {
	switch s {
	case StrategyInstance:
		return "instance"
	case StrategySingleton:
		return "singleton"
	default:
		return "unknown"
	}
}

// Wrapper pairs a Factory with a resolution strategy.
type Wrapper interface {
	Strategy() Strategy
	Resolve(c *Container) (any, error)
}

// NewWrapper returns the Wrapper implementing s. Anything other than
// StrategySingleton resolves per access.
func NewWrapper(f Factory, s Strategy) Wrapper {
	if s == StrategySingleton {
		return &SingletonWrapper{factory: f}
	}
	return &InstanceWrapper{factory: f}
}

// ── InstanceWrapper ───────────────────────────────────────────────────────────

// InstanceWrapper invokes its factory on every resolution.
type InstanceWrapper struct {
	factory Factory
}

func (w *InstanceWrapper) Strategy() Strategy { return StrategyInstance }

// Resolve builds a new value. The wrapper itself is never modified.
func (w *InstanceWrapper) Resolve(c *Container) (any, error) {
	return w.factory.invoke(c)
}

// deferredWrapper is the placeholder of a name a deferred provider has not
// registered yet. It resolves like an InstanceWrapper.
type deferredWrapper struct {
	InstanceWrapper
}

// ── SingletonWrapper ──────────────────────────────────────────────────────────

// SingletonWrapper invokes its factory at most once successfully and returns
// the cached value from then on.
type SingletonWrapper struct {
	factory Factory

	mu       sync.Mutex
	value    any
	resolved bool
}

func (w *SingletonWrapper) Strategy() Strategy { return StrategySingleton }

// Resolve returns the cached value, building it on first use. The factory
// runs under the wrapper lock, so concurrent first resolutions observe one
// value. A failed build caches nothing.
func (w *SingletonWrapper) Resolve(c *Container) (any, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.resolved {
		return w.value, nil
	}

	v, err := w.factory.invoke(c)
	if err != nil {
		return nil, err
	}
	w.value = v
	w.resolved = true
	return v, nil
}

// Resolved reports whether a value has been cached.
func (w *SingletonWrapper) Resolved() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.resolved
}
