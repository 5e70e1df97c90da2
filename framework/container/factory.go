package container

// FactoryKind tells how a Factory is invoked.
type FactoryKind uint8

const (
	// FactoryNiladic factories are called with no arguments.
	FactoryNiladic FactoryKind = iota + 1

	// FactoryParameterized factories receive the resolving Container.
	FactoryParameterized
)

func (k FactoryKind) String() string {
	switch k {
	case FactoryNiladic:
		return "niladic"
	case FactoryParameterized:
		return "parameterized"
	default:
		return "empty"
	}
}

// Factory produces the value of a dependency. It is built with exactly one
// of Niladic or Parameterized (or a helper wrapping them), so the calling
// convention is fixed at registration time.
type Factory struct {
	kind          FactoryKind
	niladic       func() (any, error)
	parameterized func(c *Container) (any, error)
}

// Niladic builds a Factory that is invoked without arguments.
//
//	container.Niladic(func() (any, error) { return NewClock(), nil })
func Niladic(fn func() (any, error)) Factory {
	if fn == nil {
		return Factory{}
	}
	return Factory{kind: FactoryNiladic, niladic: fn}
}

// Parameterized builds a Factory that receives the Container it is resolved
// from, so it can look up other dependencies.
//
//	container.Parameterized(func(c *container.Container) (any, error) {
//	    cfg, err := container.Resolve[*config.Config](c, "config")
//	    if err != nil {
//	        return nil, err
//	    }
//	    return NewPuppetClient(cfg), nil
//	})
func Parameterized(fn func(c *Container) (any, error)) Factory {
	if fn == nil {
		return Factory{}
	}
	return Factory{kind: FactoryParameterized, parameterized: fn}
}

// Type builds a niladic Factory that allocates a fresh zero *T on every call.
// T should not be zero-sized: Go may hand out the same address for every
// allocation of a zero-sized type.
func Type[T any]() Factory {
	return Niladic(func() (any, error) { return new(T), nil })
}

// Func builds a niladic Factory from a closure that cannot fail.
func Func[T any](fn func() T) Factory {
	if fn == nil {
		return Factory{}
	}
	return Niladic(func() (any, error) { return fn(), nil })
}

// Provide builds a parameterized Factory from a typed closure.
func Provide[T any](fn func(c *Container) (T, error)) Factory {
	if fn == nil {
		return Factory{}
	}
	return Parameterized(func(c *Container) (any, error) {
		v, err := fn(c)
		if err != nil {
			return nil, err
		}
		return v, nil
	})
}

// Kind reports the calling convention; zero factories report 0 ("empty").
func (f Factory) Kind() FactoryKind { return f.kind }

// invoke runs the factory. Errors from the factory are returned unchanged.
func (f Factory) invoke(c *Container) (any, error) {
	switch f.kind {
	case FactoryNiladic:
		return f.niladic()
	case FactoryParameterized:
		return f.parameterized(c)
	default:
		return nil, ErrEmptyFactory
	}
}
