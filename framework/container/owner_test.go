package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/upadhyeammit/smart-proxy/framework/container"
)

type ownerA struct{}
type ownerB struct{}
type ownerWithOptions struct{}

func TestOf_SameOwnerSameContainer(t *testing.T) {
	first := container.Of[ownerA]()
	second := container.Of[ownerA]()
	assert.Same(t, first, second)
}

func TestOf_OwnersAreIsolated(t *testing.T) {
	a := container.Of[ownerA]()
	b := container.Of[ownerB]()
	require.NotSame(t, a, b)

	a.Register("only_in_a", container.Type[widget](), container.StrategySingleton)
	t.Cleanup(func() { a.Forget("only_in_a") })

	_, err := a.GetDependency("only_in_a")
	require.NoError(t, err)

	_, err = b.GetDependency("only_in_a")
	assert.ErrorIs(t, err, container.ErrNotFound)
}

func TestOf_PointerAndValueOwnersDiffer(t *testing.T) {
	assert.NotSame(t, container.Of[ownerA](), container.Of[*ownerA]())
}

func TestOf_OptionsOnlyApplyOnFirstAccess(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := container.Of[ownerWithOptions](container.WithLogger(zap.New(core)))

	other, _ := observer.New(zapcore.DebugLevel)
	again := container.Of[ownerWithOptions](container.WithLogger(zap.New(other)))
	require.Same(t, c, again)

	c.Register("x", container.Type[widget](), container.StrategyInstance)
	assert.Equal(t, 1, logs.Len())
}

func TestOwnedBy_LocatesOwnerContainer(t *testing.T) {
	loc := container.OwnedBy[ownerB]()
	assert.Same(t, container.Of[ownerB](), loc.ContainerInstance())
}
