package alloc

import (
	"errors"
	"fmt"
)

// Counting wraps an Allocator, recording every call and optionally failing
// a chosen call. It is meant for tests that need to observe leaks or drive
// error paths.
type Counting struct {
	parent Allocator

	// FailAllocOn makes the Nth Alloc or Realloc call (1-based, counted
	// from construction or the last Reset) fail with ErrOutOfMemory.
	// Zero disables injection.
	FailAllocOn int

	// FailFreeOn makes the Nth Free call fail with ErrInjected.
	// Zero disables injection.
	FailFreeOn int

	allocs    int
	reallocs  int
	frees     int
	live      int
	liveBytes int
}

// ErrInjected is returned by Counting for injected Free failures.
var ErrInjected = errors.New("alloc: injected failure")

// NewCounting returns a Counting allocator delegating to parent, or to Heap
// when parent is nil.
func NewCounting(parent Allocator) *Counting {
	return &Counting{parent: Default(parent)}
}

// Alloc implements Allocator.
func (c *Counting) Alloc(size int) ([]byte, error) {
	c.allocs++
	if c.FailAllocOn != 0 && c.allocs+c.reallocs == c.FailAllocOn {
		return nil, fmt.Errorf("%w: injected on call %d", ErrOutOfMemory, c.FailAllocOn)
	}

	buf, err := c.parent.Alloc(size)
	if err != nil {
		return nil, err
	}

	c.live++
	c.liveBytes += len(buf)

	return buf, nil
}

// Realloc implements Allocator.
func (c *Counting) Realloc(buf []byte, size int) ([]byte, error) {
	c.reallocs++
	if c.FailAllocOn != 0 && c.allocs+c.reallocs == c.FailAllocOn {
		return nil, fmt.Errorf("%w: injected on call %d", ErrOutOfMemory, c.FailAllocOn)
	}

	out, err := c.parent.Realloc(buf, size)
	if err != nil {
		return nil, err
	}

	if buf == nil {
		c.live++
	}
	c.liveBytes += len(out) - len(buf)

	return out, nil
}

// Free implements Allocator.
func (c *Counting) Free(buf []byte) error {
	if buf == nil {
		return nil
	}

	c.frees++
	if c.FailFreeOn != 0 && c.frees == c.FailFreeOn {
		return ErrInjected
	}

	if err := c.parent.Free(buf); err != nil {
		return err
	}

	c.live--
	c.liveBytes -= len(buf)

	return nil
}

// Allocs returns the number of Alloc calls.
func (c *Counting) Allocs() int { return c.allocs }

// Frees returns the number of Free calls with a non-nil buffer.
func (c *Counting) Frees() int { return c.frees }

// Live returns the number of blocks allocated and not yet freed.
func (c *Counting) Live() int { return c.live }

// LiveBytes returns the number of bytes allocated and not yet freed.
func (c *Counting) LiveBytes() int { return c.liveBytes }

// Reset zeroes the counters and disables failure injection. Live blocks
// are forgotten, not freed.
func (c *Counting) Reset() {
	*c = Counting{parent: c.parent}
}
