// Package router implements a bounded navigation stack for UI-style
// screens.
//
// A Router owns a table of routes, each pairing a path pattern with a
// Factory that builds a component of type T. Navigate finds the first route
// whose pattern matches a path, builds the component and pushes it onto a
// history stack with a fixed capacity. Back pops and releases the top entry.
//
// # Routes
//
//	r, err := router.New(router.Config[Screen]{
//		StackCapacity: 16,
//		Routes: []router.Route[Screen]{
//			{Name: "home", Pattern: "/", Factory: router.FactoryFunc[Screen](newHome)},
//			{Name: "user", Pattern: "/users/:id", Factory: router.Funcs[Screen]{
//				BuildFunc:   newUserScreen,
//				DestroyFunc: closeScreen,
//			}},
//		},
//	})
//
// Routes are tried in table order and the first match wins, so more
// specific patterns must come first. Patterns are validated by New.
//
// # Navigation
//
// Navigate is transactional: it either pushes exactly one entry or leaves
// the stack untouched. Navigating to the path already on top returns the
// existing component without building a new one.
//
//	home, _ := r.Navigate("/")
//	user, _ := r.Navigate("/users/42")
//	params, _ := r.Params() // id=42
//	home, err = r.Back()
//
// Back always pops when there is a previous entry. If releasing the popped
// component fails, the new top component is returned together with the
// error.
//
// # Memory
//
// Each pushed path is copied into memory from the configured
// alloc.Allocator, and the stack footprint is reserved from it by New and
// returned by Shutdown. The path handed to Factory.Build and Event.Path view
// that memory and must be cloned to outlive their entry. Current, History,
// CurrentEntry and Params return copies.
//
// # Errors
//
// Apart from ErrClosed, every router error wraps one of the kinds in
// package waypoint:
//
//	ErrStackFull, ErrPathTooLong       waypoint.ErrOverflow
//	ErrNoRoute, ErrNoPrevious          waypoint.ErrNotFound
//	ErrEmptyStack                      waypoint.ErrNotFound
//
// Factory errors are returned as is. After Shutdown every operation
// returns ErrClosed.
package router
