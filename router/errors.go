package router

import (
	"errors"
	"fmt"

	"github.com/vitalvas/waypoint"
)

var (
	// ErrStackFull is returned by Navigate when the history already holds
	// StackCapacity entries.
	ErrStackFull = fmt.Errorf("router: navigation stack is full: %w", waypoint.ErrOverflow)

	// ErrPathTooLong is returned by Navigate for paths longer than
	// MaxPathLength.
	ErrPathTooLong = fmt.Errorf("router: path too long: %w", waypoint.ErrOverflow)

	// ErrNoRoute is returned when no route pattern matches a path.
	ErrNoRoute = fmt.Errorf("router: no route matches path: %w", waypoint.ErrNotFound)

	// ErrNoPrevious is returned by Back when there is no entry to go back to.
	ErrNoPrevious = fmt.Errorf("router: no previous entry: %w", waypoint.ErrNotFound)

	// ErrEmptyStack is returned by Current and friends when nothing has been
	// navigated to yet.
	ErrEmptyStack = fmt.Errorf("router: navigation stack is empty: %w", waypoint.ErrNotFound)

	// ErrClosed is returned by every operation after Shutdown.
	ErrClosed = errors.New("router: closed")
)
