package router

import (
	"reflect"

	"github.com/vitalvas/waypoint/pattern"
)

// Factory builds the component for a matched path. The path passed to Build
// views router-owned memory that is reused once the entry is popped;
// components that keep the path must clone it.
type Factory[T any] interface {
	Build(path string) (T, error)
}

// Destroyer is implemented by factories whose components need releasing when
// their entry leaves the stack.
type Destroyer[T any] interface {
	Destroy(component T) error
}

// FactoryFunc adapts an ordinary function to Factory.
type FactoryFunc[T any] func(path string) (T, error)

// Build calls f(path).
func (f FactoryFunc[T]) Build(path string) (T, error) {
	return f(path)
}

// Funcs adapts a build and an optional destroy function to Factory and
// Destroyer. A nil DestroyFunc means components need no release.
type Funcs[T any] struct {
	BuildFunc   func(path string) (T, error)
	DestroyFunc func(component T) error
}

// Build implements Factory.
func (f Funcs[T]) Build(path string) (T, error) {
	return f.BuildFunc(path)
}

// Destroy implements Destroyer.
func (f Funcs[T]) Destroy(component T) error {
	if f.DestroyFunc == nil {
		return nil
	}

	return f.DestroyFunc(component)
}

// Route binds a pattern to the factory that builds its component.
type Route[T any] struct {
	// Name labels the route in logs, events and metrics. Empty means the
	// pattern is used instead.
	Name string

	// Pattern is matched against navigation paths; see package pattern.
	Pattern string

	Factory Factory[T]
}

// Label returns Name, or Pattern when Name is empty.
func (r Route[T]) Label() string {
	if r.Name != "" {
		return r.Name
	}

	return r.Pattern
}

// compiledRoute is a table entry after validation.
type compiledRoute[T any] struct {
	Route[T]

	pattern   *pattern.Pattern
	destroyer Destroyer[T]
}

func compileRoute[T any](r Route[T]) (compiledRoute[T], error) {
	p, err := pattern.Compile(r.Pattern)
	if err != nil {
		return compiledRoute[T]{}, err
	}

	out := compiledRoute[T]{Route: r, pattern: p}
	if d, ok := r.Factory.(Destroyer[T]); ok {
		out.destroyer = d
	}

	return out, nil
}

// validFactory reports whether f can build components.
func validFactory[T any](f Factory[T]) bool {
	switch v := f.(type) {
	case nil:
		return false
	case FactoryFunc[T]:
		return v != nil
	case Funcs[T]:
		return v.BuildFunc != nil
	case *Funcs[T]:
		return v != nil && v.BuildFunc != nil
	default:
		rv := reflect.ValueOf(f)
		switch rv.Kind() {
		case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
			return !rv.IsNil()
		}

		return true
	}
}
