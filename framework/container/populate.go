package container

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// Populate resolves every field of *target tagged `inject:"name"` from c and
// assigns it. Unlike Attributes, resolution is eager and the values are not
// shared with any other consumer.
//
//	type Handler struct {
//	    Client *PuppetClient `inject:"puppet_client"`
//	    Cache  Cache         `inject:"cache"`
//	}
//	var h Handler
//	err := container.Populate(c, &h)
func Populate(c *Container, target any) error {
	v := reflect.ValueOf(target)
	if !v.IsValid() || v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return ErrInvalidTarget
	}
	sv := v.Elem()
	st := sv.Type()

	for i := 0; i < st.NumField(); i++ {
		sf := st.Field(i)
		name, ok := sf.Tag.Lookup("inject")
		if !ok || name == "" {
			continue
		}
		if !sf.IsExported() {
			return errors.Errorf("container: field %s.%s is tagged for injection but not exported", st, sf.Name)
		}

		dep, err := c.GetDependency(name)
		if err != nil {
			return errors.Wrapf(err, "populate %s.%s", st, sf.Name)
		}

		fv := sv.Field(i)
		if dep == nil {
			fv.Set(reflect.Zero(sf.Type))
			continue
		}
		dv := reflect.ValueOf(dep)
		if !dv.Type().AssignableTo(sf.Type) {
			return &TypeMismatchError{
				Name:     name,
				Expected: sf.Type.String(),
				Got:      fmt.Sprintf("%T", dep),
			}
		}
		fv.Set(dv)
	}
	return nil
}
