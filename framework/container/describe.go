package container

import "sort"

// Description is a read-only view of one registration. Resolved is only ever
// true for a singleton whose value has been built. Deferred marks the
// placeholder of a deferred provider that has not loaded yet; its Strategy is
// the placeholder's, not that of the registration that will replace it.
type Description struct {
	Name     string `json:"name"`
	Strategy string `json:"strategy"`
	Resolved bool   `json:"resolved"`
	Deferred bool   `json:"deferred,omitempty"`
}

// Describe lists every registration sorted by name. It never invokes a
// factory.
func (c *Container) Describe() []Description {
	deps := c.Dependencies()
	out := make([]Description, 0, len(deps))
	for name, w := range deps {
		out = append(out, describe(name, w))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// DescribeOne returns the Description of name, or *NotFoundError.
func (c *Container) DescribeOne(name string) (Description, error) {
	c.mu.RLock()
	w, ok := c.wrappers[name]
	c.mu.RUnlock()
	if !ok {
		return Description{}, &NotFoundError{Name: name}
	}
	return describe(name, w), nil
}

func describe(name string, w Wrapper) Description {
	d := Description{Name: name, Strategy: w.Strategy().String()}
	switch w := w.(type) {
	case *SingletonWrapper:
		d.Resolved = w.Resolved()
	case *deferredWrapper:
		d.Deferred = true
	}
	return d
}
