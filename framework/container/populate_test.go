package container_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upadhyeammit/smart-proxy/framework/container"
)

type greeter interface{ Greet() string }

type englishGreeter struct{}

func (englishGreeter) Greet() string { return "hello" }

type handler struct {
	Widget   *widget `inject:"widget"`
	Greeter  greeter `inject:"greeter"`
	Optional *widget `inject:"nil_widget"`
	Plain    string
	Skipped  int `inject:""`
}

func populatedContainer() *container.Container {
	c := container.New()
	c.Register("widget", container.Func(func() *widget { return &widget{serial: 7} }), container.StrategySingleton)
	c.Register("greeter", container.Func(func() englishGreeter { return englishGreeter{} }), container.StrategyInstance)
	c.Register("nil_widget", container.Niladic(func() (any, error) { return nil, nil }), container.StrategyInstance)
	return c
}

func TestPopulate_AssignsTaggedFields(t *testing.T) {
	c := populatedContainer()
	h := handler{Plain: "kept", Optional: &widget{serial: 99}}

	require.NoError(t, container.Populate(c, &h))

	require.NotNil(t, h.Widget)
	assert.Equal(t, 7, h.Widget.serial)
	assert.Equal(t, "hello", h.Greeter.Greet())
	assert.Nil(t, h.Optional, "a nil dependency zeroes the field")
	assert.Equal(t, "kept", h.Plain)
	assert.Zero(t, h.Skipped)

	singleton, err := c.GetDependency("widget")
	require.NoError(t, err)
	assert.Same(t, singleton, h.Widget)
}

func TestPopulate_InvalidTargets(t *testing.T) {
	c := container.New()
	var nilHandler *handler
	tests := []struct {
		name   string
		target any
	}{
		{"Nil", nil},
		{"NonPointer", handler{}},
		{"NilPointer", nilHandler},
		{"PointerToNonStruct", new(int)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, container.Populate(c, tt.target), container.ErrInvalidTarget)
		})
	}
}

func TestPopulate_MissingDependencyIsWrapped(t *testing.T) {
	c := container.New()
	var h handler

	err := container.Populate(c, &h)
	require.Error(t, err)
	assert.ErrorIs(t, err, container.ErrNotFound)
	assert.Contains(t, err.Error(), "handler.Widget")
}

func TestPopulate_TypeMismatch(t *testing.T) {
	c := container.New()
	c.Register("widget", container.Func(func() string { return "not a widget" }), container.StrategyInstance)

	var target struct {
		Widget *widget `inject:"widget"`
	}
	err := container.Populate(c, &target)

	var mismatch *container.TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "widget", mismatch.Name)
	assert.Equal(t, "string", mismatch.Got)
}

func TestPopulate_UnexportedTaggedField(t *testing.T) {
	c := populatedContainer()
	var target struct {
		widget *widget `inject:"widget"`
	}

	err := container.Populate(c, &target)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not exported")
	assert.Nil(t, target.widget)
}

func ExamplePopulate() {
	c := container.New()
	c.Register("greeter", container.Func(func() englishGreeter { return englishGreeter{} }), container.StrategySingleton)

	var h struct {
		Greeter greeter `inject:"greeter"`
	}
	if err := container.Populate(c, &h); err != nil {
		panic(err)
	}
	fmt.Println(h.Greeter.Greet())
	// Output: hello
}
