package router

import "time"

// Op identifies the router operation an Event describes.
type Op string

const (
	// OpNavigate is a Navigate call that tried to push a new entry.
	OpNavigate Op = "navigate"

	// OpReuse is a Navigate call to the path already on top.
	OpReuse Op = "reuse"

	// OpBack is a Back call.
	OpBack Op = "back"

	// OpRelease is one entry leaving the stack, from Back, Clear or Shutdown.
	OpRelease Op = "release"

	// OpClear is a Clear or Shutdown emptying the stack.
	OpClear Op = "clear"
)

// Event describes a completed router operation.
type Event struct {
	Op Op

	// Route is the label of the route involved, empty when none matched.
	Route string

	// Path may view router-owned memory; clone it to keep it after
	// Observe returns.
	Path string

	// Depth is the stack depth after the operation.
	Depth int

	// Duration is the time spent in Factory.Build for OpNavigate and in
	// Destroyer.Destroy for OpRelease.
	Duration time.Duration

	Err error
}

// Observer receives an Event after each operation. Observe runs on the
// caller's goroutine and must not call back into the router.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

// Observe calls f(e).
func (f ObserverFunc) Observe(e Event) {
	f(e)
}

type nopObserver struct{}

func (nopObserver) Observe(Event) {}
