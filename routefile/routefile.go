package routefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vitalvas/waypoint"
	"github.com/vitalvas/waypoint/router"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalid is returned for route files that fail to decode or
	// validate.
	ErrInvalid = fmt.Errorf("routefile: invalid route file: %w", waypoint.ErrInvalidArgument)

	// ErrUnknownComponent is returned by Config when a route names a
	// component missing from the factory map.
	ErrUnknownComponent = fmt.Errorf("routefile: unknown component: %w", waypoint.ErrNotFound)
)

// File is a declarative router configuration.
type File struct {
	StackCapacity int     `yaml:"stack_capacity" validate:"gte=0"`
	MaxParams     int     `yaml:"max_params,omitempty" validate:"gte=0"`
	MaxPathLength int     `yaml:"max_path_length,omitempty" validate:"gte=0"`
	Routes        []Route `yaml:"routes" validate:"dive"`
}

// Route is one route table entry. Component names the factory that builds
// the route's component.
type Route struct {
	Name      string `yaml:"name,omitempty"`
	Pattern   string `yaml:"pattern" validate:"required,routepattern"`
	Component string `yaml:"component" validate:"required"`
}

// Parse decodes and validates a route file.
func Parse(data []byte) (*File, error) {
	return Load(bytes.NewReader(data))
}

// Load decodes and validates a route file read from r. Unknown keys are
// rejected.
func Load(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalid)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// LoadFile reads and validates the route file at path.
func LoadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("routefile: %w", err)
	}
	defer fh.Close()

	f, err := Load(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Encode writes f as YAML.
func (f *File) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("routefile: encode: %w", err)
	}

	return enc.Close()
}

// Config builds a router configuration from f, resolving each route's
// component through factories. Routes keep their file order.
func Config[T any](f *File, factories map[string]router.Factory[T]) (router.Config[T], error) {
	routes := make([]router.Route[T], 0, len(f.Routes))

	for i, r := range f.Routes {
		factory, ok := factories[r.Component]
		if !ok {
			return router.Config[T]{}, fmt.Errorf("%w: %q (route %d, pattern %q)", ErrUnknownComponent, r.Component, i, r.Pattern)
		}

		routes = append(routes, router.Route[T]{
			Name:    r.Name,
			Pattern: r.Pattern,
			Factory: factory,
		})
	}

	return router.Config[T]{
		Routes:        routes,
		StackCapacity: f.StackCapacity,
		MaxParams:     f.MaxParams,
		MaxPathLength: f.MaxPathLength,
	}, nil
}
