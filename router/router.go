package router

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"
	"unsafe"

	"github.com/google/uuid"
	"github.com/vitalvas/waypoint"
	"github.com/vitalvas/waypoint/alloc"
	"github.com/vitalvas/waypoint/pattern"
	"github.com/vitalvas/waypoint/uri"
)

// DefaultMaxParams is the parameter capacity used when Config.MaxParams is
// zero.
const DefaultMaxParams = 8

// Config configures a Router.
type Config[T any] struct {
	// Routes is the route table, matched in order. The slice is copied.
	Routes []Route[T]

	// StackCapacity is the maximum history depth. Zero is legal: every
	// Navigate then fails with ErrStackFull.
	StackCapacity int

	// MaxParams is the parameter capacity for Resolve and Params.
	// Default: DefaultMaxParams.
	MaxParams int

	// MaxPathLength limits the byte length of navigated paths.
	// Default: 0 (unlimited).
	MaxPathLength int

	// Allocator provides memory for path copies and the stack reservation.
	// Default: alloc.Heap.
	Allocator alloc.Allocator

	// Logger receives debug records for stack changes and warnings for
	// release failures. Default: discard.
	Logger *slog.Logger

	// Observer is notified after every operation. Default: none.
	Observer Observer

	// NewID generates entry IDs. Default: UUIDv7.
	NewID func() string
}

// entry is one history slot. path views buf.
type entry[T any] struct {
	id        string
	route     *compiledRoute[T]
	path      string
	buf       []byte
	component T
}

// Entry is a snapshot of a history slot.
type Entry[T any] struct {
	ID        string
	Route     Route[T]
	Path      string
	Component T
}

// Router keeps a bounded stack of navigated components. It is not safe for
// concurrent use.
type Router[T any] struct {
	routes        []compiledRoute[T]
	entries       []entry[T]
	capacity      int
	maxParams     int
	maxPathLength int

	alloc    alloc.Allocator
	logger   *slog.Logger
	observer Observer
	newID    func() string

	reserved []byte
	closed   bool
}

func newUUID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// New validates cfg, compiles every route pattern and reserves the stack
// footprint from the allocator.
func New[T any](cfg Config[T]) (*Router[T], error) {
	if cfg.StackCapacity < 0 {
		return nil, fmt.Errorf("router: negative stack capacity %d: %w", cfg.StackCapacity, waypoint.ErrInvalidArgument)
	}

	if cfg.MaxParams < 0 {
		return nil, fmt.Errorf("router: negative max params %d: %w", cfg.MaxParams, waypoint.ErrInvalidArgument)
	}

	if cfg.MaxPathLength < 0 {
		return nil, fmt.Errorf("router: negative max path length %d: %w", cfg.MaxPathLength, waypoint.ErrInvalidArgument)
	}

	routes := make([]compiledRoute[T], 0, len(cfg.Routes))
	for i, r := range cfg.Routes {
		if !validFactory(r.Factory) {
			return nil, fmt.Errorf("router: route %d (%q) has no factory: %w", i, r.Pattern, waypoint.ErrInvalidArgument)
		}

		c, err := compileRoute(r)
		if err != nil {
			return nil, fmt.Errorf("router: route %d: %w", i, err)
		}

		routes = append(routes, c)
	}

	rt := &Router[T]{
		routes:        routes,
		capacity:      cfg.StackCapacity,
		maxParams:     cfg.MaxParams,
		maxPathLength: cfg.MaxPathLength,
		alloc:         alloc.Default(cfg.Allocator),
		logger:        cfg.Logger,
		observer:      cfg.Observer,
		newID:         cfg.NewID,
	}

	if rt.maxParams == 0 {
		rt.maxParams = DefaultMaxParams
	}

	if rt.logger == nil {
		rt.logger = slog.New(slog.DiscardHandler)
	}

	if rt.observer == nil {
		rt.observer = nopObserver{}
	}

	if rt.newID == nil {
		rt.newID = newUUID
	}

	size := int(unsafe.Sizeof(entry[T]{}))
	if cfg.StackCapacity > 0 && cfg.StackCapacity > math.MaxInt/size {
		return nil, fmt.Errorf("router: stack capacity %d: %w", cfg.StackCapacity, waypoint.ErrOverflow)
	}

	footprint := cfg.StackCapacity * size

	reserved, err := rt.alloc.Alloc(footprint)
	if err != nil {
		return nil, fmt.Errorf("router: reserve stack: %w", err)
	}

	if reserved == nil {
		return nil, fmt.Errorf("router: reserve stack: %w", alloc.ErrOutOfMemory)
	}

	rt.reserved = reserved
	rt.entries = make([]entry[T], 0, cfg.StackCapacity)

	return rt, nil
}

// Navigate pushes the component for path, or returns the top component if
// path is already on top. The empty path means "/".
//
// On any error the stack is left exactly as it was. Errors from the route's
// Factory are returned unwrapped.
func (r *Router[T]) Navigate(path string) (T, error) {
	var zero T

	if r.closed {
		return zero, ErrClosed
	}

	if path == "" {
		path = "/"
	}

	if r.maxPathLength > 0 && len(path) > r.maxPathLength {
		err := fmt.Errorf("%w: %d bytes, limit %d", ErrPathTooLong, len(path), r.maxPathLength)
		r.observe(Event{Op: OpNavigate, Path: path, Err: err})
		return zero, err
	}

	if n := len(r.entries); n > 0 && r.entries[n-1].path == path {
		top := &r.entries[n-1]
		r.logger.Debug("router: reuse top entry", "path", path, "route", top.route.Label(), "id", top.id)
		r.observe(Event{Op: OpReuse, Route: top.route.Label(), Path: path})
		return top.component, nil
	}

	if len(r.entries) >= r.capacity {
		err := fmt.Errorf("%w: capacity %d", ErrStackFull, r.capacity)
		r.observe(Event{Op: OpNavigate, Path: path, Err: err})
		return zero, err
	}

	route := r.lookup(path)
	if route == nil {
		err := fmt.Errorf("%w: %q", ErrNoRoute, path)
		r.observe(Event{Op: OpNavigate, Path: path, Err: err})
		return zero, err
	}

	buf, view, err := r.copyPath(path)
	if err != nil {
		r.observe(Event{Op: OpNavigate, Route: route.Label(), Path: path, Err: err})
		return zero, err
	}

	start := time.Now()
	component, err := route.Factory.Build(view)
	took := time.Since(start)

	if err != nil {
		if ferr := r.alloc.Free(buf); ferr != nil {
			r.logger.Warn("router: free path copy after failed build", "path", path, "error", ferr)
		}
		r.observe(Event{Op: OpNavigate, Route: route.Label(), Path: path, Duration: took, Err: err})
		return zero, err
	}

	e := entry[T]{
		id:        r.newID(),
		route:     route,
		path:      view,
		buf:       buf,
		component: component,
	}
	r.entries = append(r.entries, e)

	r.logger.Debug("router: push", "path", path, "route", route.Label(), "id", e.id, "depth", len(r.entries))
	r.observe(Event{Op: OpNavigate, Route: route.Label(), Path: path, Duration: took})

	return component, nil
}

// NavigateURI navigates to the path component of raw. A URI without a path
// navigates to "/".
func (r *Router[T]) NavigateURI(raw string) (T, error) {
	return r.Navigate(uri.Parse(raw).Path)
}

// CanBack reports whether Back would succeed.
func (r *Router[T]) CanBack() bool {
	return !r.closed && len(r.entries) > 1
}

// Back pops the top entry and returns the component that becomes the new
// top. The popped entry is released first; if that fails the entry is still
// popped and the release error is returned alongside the new top component.
func (r *Router[T]) Back() (T, error) {
	var zero T

	if r.closed {
		return zero, ErrClosed
	}

	if len(r.entries) < 2 {
		r.observe(Event{Op: OpBack, Err: ErrNoPrevious})
		return zero, ErrNoPrevious
	}

	from, err := r.pop()

	top := &r.entries[len(r.entries)-1]
	r.logger.Debug("router: back", "from", from, "to", top.path, "depth", len(r.entries))
	r.observe(Event{Op: OpBack, Route: top.route.Label(), Path: top.path, Err: err})

	return top.component, err
}

// Current returns the top entry's path and component. The path is a copy
// and stays valid after the entry is popped.
func (r *Router[T]) Current() (string, T, error) {
	var zero T

	if r.closed {
		return "", zero, ErrClosed
	}

	if len(r.entries) == 0 {
		return "", zero, ErrEmptyStack
	}

	top := &r.entries[len(r.entries)-1]

	return strings.Clone(top.path), top.component, nil
}

// CurrentEntry returns a snapshot of the top entry. The snapshot owns its
// path.
func (r *Router[T]) CurrentEntry() (Entry[T], error) {
	if r.closed {
		return Entry[T]{}, ErrClosed
	}

	if len(r.entries) == 0 {
		return Entry[T]{}, ErrEmptyStack
	}

	return r.entries[len(r.entries)-1].snapshot(), nil
}

// Params captures the route parameters of the top entry.
func (r *Router[T]) Params() (pattern.Params, error) {
	if r.closed {
		return nil, ErrClosed
	}

	if len(r.entries) == 0 {
		return nil, ErrEmptyStack
	}

	top := &r.entries[len(r.entries)-1]

	return r.capture(top.route, strings.Clone(top.path))
}

// Resolve finds the route for path and captures its parameters without
// touching the stack.
func (r *Router[T]) Resolve(path string) (Route[T], pattern.Params, error) {
	if r.closed {
		return Route[T]{}, nil, ErrClosed
	}

	if path == "" {
		path = "/"
	}

	route := r.lookup(path)
	if route == nil {
		return Route[T]{}, nil, fmt.Errorf("%w: %q", ErrNoRoute, path)
	}

	params, err := r.capture(route, path)
	if err != nil {
		return Route[T]{}, nil, err
	}

	return route.Route, params, nil
}

// History returns copies of the stacked paths from bottom to top.
func (r *Router[T]) History() []string {
	out := make([]string, len(r.entries))
	for i := range r.entries {
		out[i] = strings.Clone(r.entries[i].path)
	}

	return out
}

// Len returns the current stack depth.
func (r *Router[T]) Len() int {
	return len(r.entries)
}

// Cap returns the configured stack capacity.
func (r *Router[T]) Cap() int {
	return r.capacity
}

// Clear releases every entry from top to bottom. Every entry is popped even
// if some releases fail; the failures are joined into the returned error.
func (r *Router[T]) Clear() error {
	if r.closed {
		return ErrClosed
	}

	return r.clear()
}

// Shutdown clears the stack and returns the stack reservation to the
// allocator. Further calls to any method other than Shutdown, Len, Cap and
// History return ErrClosed; repeated Shutdown calls return nil.
func (r *Router[T]) Shutdown() error {
	if r.closed {
		return nil
	}

	err := r.clear()

	if ferr := r.alloc.Free(r.reserved); ferr != nil {
		err = errors.Join(err, fmt.Errorf("router: release stack: %w", ferr))
	}

	r.reserved = nil
	r.entries = nil
	r.closed = true

	r.logger.Debug("router: shutdown", "error", err)

	return err
}

func (r *Router[T]) clear() error {
	depth := len(r.entries)

	var errs []error
	for len(r.entries) > 0 {
		if _, err := r.pop(); err != nil {
			errs = append(errs, err)
		}
	}

	err := errors.Join(errs...)
	if depth > 0 {
		r.logger.Debug("router: clear", "released", depth)
	}
	r.observe(Event{Op: OpClear, Err: err})

	return err
}

// pop releases and removes the top entry, returning a copy of its path.
// The entry is removed even when releasing fails.
func (r *Router[T]) pop() (string, error) {
	i := len(r.entries) - 1
	e := r.entries[i]
	path := strings.Clone(e.path)

	r.entries[i] = entry[T]{}
	r.entries = r.entries[:i]

	start := time.Now()

	var derr error
	if e.route.destroyer != nil {
		derr = e.route.destroyer.Destroy(e.component)
	}

	took := time.Since(start)

	ferr := r.alloc.Free(e.buf)

	err := errors.Join(derr, ferr)
	if err != nil {
		r.logger.Warn("router: release entry", "path", path, "route", e.route.Label(), "id", e.id, "error", err)
	} else {
		r.logger.Debug("router: pop", "path", path, "route", e.route.Label(), "id", e.id, "depth", len(r.entries))
	}

	r.observe(Event{Op: OpRelease, Route: e.route.Label(), Path: path, Duration: took, Err: err})

	return path, err
}

// lookup returns the first route whose pattern matches path.
func (r *Router[T]) lookup(path string) *compiledRoute[T] {
	for i := range r.routes {
		if r.routes[i].pattern.Matches(path) {
			return &r.routes[i]
		}
	}

	return nil
}

func (r *Router[T]) capture(route *compiledRoute[T], path string) (pattern.Params, error) {
	params := make([]pattern.Param, r.maxParams)

	n, _, err := route.pattern.Match(path, params)
	if err != nil {
		return nil, err
	}

	return pattern.Params(params[:n]), nil
}

// copyPath copies path into allocator memory and returns the block together
// with a string viewing it.
func (r *Router[T]) copyPath(path string) ([]byte, string, error) {
	buf, err := r.alloc.Alloc(len(path))
	if err != nil {
		return nil, "", err
	}

	if len(buf) < len(path) {
		if ferr := r.alloc.Free(buf); ferr != nil {
			r.logger.Warn("router: free short path copy", "path", path, "error", ferr)
		}
		return nil, "", fmt.Errorf("%w: short block for path copy", alloc.ErrOutOfMemory)
	}

	buf = buf[:len(path)]
	copy(buf, path)

	return buf, unsafe.String(unsafe.SliceData(buf), len(buf)), nil
}

func (r *Router[T]) observe(e Event) {
	e.Depth = len(r.entries)
	r.observer.Observe(e)
}

func (e *entry[T]) snapshot() Entry[T] {
	return Entry[T]{
		ID:        e.id,
		Route:     e.route.Route,
		Path:      strings.Clone(e.path),
		Component: e.component,
	}
}
