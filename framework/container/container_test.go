package container_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/upadhyeammit/smart-proxy/framework/container"
)

type widget struct {
	serial int
}

// ── Register / GetDependency ──────────────────────────────────────────────────

func TestContainer_WidgetScenario(t *testing.T) {
	c := container.New()
	newWidget := container.Func(func() *widget { return &widget{} })

	c.Register("foo", newWidget, container.StrategySingleton)
	foo1, err := c.GetDependency("foo")
	require.NoError(t, err)
	foo2, err := c.GetDependency("foo")
	require.NoError(t, err)
	assert.Same(t, foo1, foo2)

	c.Register("bar", newWidget, container.StrategyInstance)
	bar1, err := c.GetDependency("bar")
	require.NoError(t, err)
	bar2, err := c.GetDependency("bar")
	require.NoError(t, err)
	assert.NotSame(t, bar1, bar2)
	assert.IsType(t, &widget{}, bar1)
	assert.IsType(t, &widget{}, bar2)
}

func TestContainer_ReRegistrationLastWriteWins(t *testing.T) {
	c := container.New()
	c.Register("svc", container.Func(func() string { return "first" }), container.StrategySingleton)

	v, err := c.GetDependency("svc")
	require.NoError(t, err)
	assert.Equal(t, "first", v)

	c.Register("svc", container.Func(func() string { return "second" }), container.StrategyInstance)

	v, err = c.GetDependency("svc")
	require.NoError(t, err)
	assert.Equal(t, "second", v, "the replacement drops the cached singleton")
	assert.IsType(t, &container.InstanceWrapper{}, c.Dependencies()["svc"])
}

func TestContainer_EmptyContainerFailsEveryLookup(t *testing.T) {
	c := container.New()
	for _, name := range []string{"", "db", "singleton_dependency"} {
		_, err := c.GetDependency(name)
		assert.ErrorIs(t, err, container.ErrNotFound, "name %q", name)
	}
}

func TestContainer_FactoryErrorPropagatesUnchanged(t *testing.T) {
	boom := errors.New("boom")
	c := container.New()
	c.Register("broken", container.Niladic(func() (any, error) { return nil, boom }), container.StrategyInstance)

	_, err := c.GetDependency("broken")
	assert.Same(t, boom, err)
}

func TestContainer_FactoriesCanResolveOtherDependencies(t *testing.T) {
	c := container.New()
	c.Register("serial", container.Func(func() int { return 42 }), container.StrategySingleton)
	c.Register("widget", container.Provide(func(c *container.Container) (*widget, error) {
		serial, err := container.Resolve[int](c, "serial")
		if err != nil {
			return nil, err
		}
		return &widget{serial: serial}, nil
	}), container.StrategySingleton)

	w, err := container.Resolve[*widget](c, "widget")
	require.NoError(t, err)
	assert.Equal(t, 42, w.serial)
}

func TestContainer_NestedMissingDependencySurfacesNotFound(t *testing.T) {
	c := container.New()
	c.Register("widget", container.Parameterized(func(c *container.Container) (any, error) {
		return c.GetDependency("missing")
	}), container.StrategyInstance)

	_, err := c.GetDependency("widget")
	var nf *container.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "missing", nf.Name)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func TestContainer_HasNamesForgetFlush(t *testing.T) {
	c := container.New()
	c.Register("beta", container.Type[widget](), container.StrategyInstance)
	c.Register("alpha", container.Type[widget](), container.StrategySingleton)

	assert.True(t, c.Has("alpha"))
	assert.False(t, c.Has("gamma"))
	assert.Equal(t, []string{"alpha", "beta"}, c.Names())

	c.Forget("alpha")
	assert.False(t, c.Has("alpha"))
	assert.Equal(t, []string{"beta"}, c.Names())

	c.Flush()
	assert.Empty(t, c.Names())
	assert.Empty(t, c.Dependencies())
}

func TestContainer_DependenciesIsSnapshot(t *testing.T) {
	c := container.New()
	c.Register("a", container.Type[widget](), container.StrategyInstance)

	deps := c.Dependencies()
	delete(deps, "a")

	assert.True(t, c.Has("a"))
}

func TestContainer_IDIsUniquePerContainer(t *testing.T) {
	a, b := container.New(), container.New()
	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestContainer_IsItsOwnLocator(t *testing.T) {
	c := container.New()
	assert.Same(t, c, c.ContainerInstance())
}

// ── Resolve / MustResolve ─────────────────────────────────────────────────────

func TestResolve_TypeMismatch(t *testing.T) {
	c := container.New()
	c.Register("name", container.Func(func() string { return "proxy" }), container.StrategyInstance)

	_, err := container.Resolve[int](c, "name")
	var mismatch *container.TypeMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, "name", mismatch.Name)
	assert.Equal(t, "int", mismatch.Expected)
	assert.Equal(t, "string", mismatch.Got)
}

func TestResolve_InterfaceTarget(t *testing.T) {
	c := container.New()
	c.Register("err", container.Func(func() error { return errors.New("value") }), container.StrategySingleton)

	v, err := container.Resolve[error](c, "err")
	require.NoError(t, err)
	assert.EqualError(t, v, "value")
}

func TestMustResolve_PanicsOnMissing(t *testing.T) {
	c := container.New()
	assert.Panics(t, func() { container.MustResolve[*widget](c, "nope") })
}

func TestMustResolve_ReturnsValue(t *testing.T) {
	c := container.New()
	c.Register("w", container.Func(func() *widget { return &widget{serial: 7} }), container.StrategyInstance)
	assert.Equal(t, 7, container.MustResolve[*widget](c, "w").serial)
}

// ── Logging / Observer ────────────────────────────────────────────────────────

type recordingObserver struct {
	mu       sync.Mutex
	resolved []string
	missed   []string
}

func (o *recordingObserver) Resolved(name string, s container.Strategy, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.resolved = append(o.resolved, name+":"+s.String())
}

func (o *recordingObserver) Missed(name string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.missed = append(o.missed, name)
}

func TestContainer_ObserverSeesResolutionsAndMisses(t *testing.T) {
	obs := &recordingObserver{}
	c := container.New(container.WithObserver(obs))
	c.Register("w", container.Type[widget](), container.StrategySingleton)

	_, _ = c.GetDependency("w")
	_, _ = c.GetDependency("ghost")

	assert.Equal(t, []string{"w:singleton"}, obs.resolved)
	assert.Equal(t, []string{"ghost"}, obs.missed)

	c.SetObserver(nil)
	_, _ = c.GetDependency("w")
	assert.Len(t, obs.resolved, 1)
}

func TestContainer_LogsRegistrationAndMiss(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := container.New(container.WithLogger(zap.New(core)))

	c.Register("w", container.Type[widget](), container.StrategyInstance)
	c.Register("w", container.Type[widget](), container.StrategySingleton)
	_, _ = c.GetDependency("ghost")

	registered := logs.FilterMessage("dependency registered").All()
	require.Len(t, registered, 2)
	assert.Equal(t, false, registered[0].ContextMap()["overwritten"])
	assert.Equal(t, true, registered[1].ContextMap()["overwritten"])
	assert.Equal(t, "singleton", registered[1].ContextMap()["strategy"])
	assert.Equal(t, c.ID(), registered[1].ContextMap()["container"])

	assert.Equal(t, 1, logs.FilterMessage("dependency not found").Len())
}

func TestContainer_SetLoggerIgnoresNil(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := container.New()
	c.SetLogger(zap.New(core))
	c.SetLogger(nil)

	c.Register("w", container.Type[widget](), container.StrategyInstance)
	assert.Equal(t, 1, logs.Len())
}
