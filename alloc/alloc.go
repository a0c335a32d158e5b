package alloc

import (
	"errors"
	"fmt"
)

// ErrOutOfMemory is returned when an allocator cannot satisfy a request.
var ErrOutOfMemory = errors.New("alloc: out of memory")

// ErrInvalidSize is returned for negative allocation sizes.
var ErrInvalidSize = errors.New("alloc: invalid size")

// Allocator hands out byte buffers owned by the caller until they are freed.
type Allocator interface {
	// Alloc returns a zeroed buffer of exactly size bytes.
	Alloc(size int) ([]byte, error)

	// Realloc resizes buf, preserving min(len(buf), size) leading bytes.
	// The returned buffer replaces buf; buf must not be used afterwards.
	Realloc(buf []byte, size int) ([]byte, error)

	// Free releases buf. Freeing a nil buffer is a no-op.
	Free(buf []byte) error
}

// Heap allocates from the Go heap. Free is a no-op and memory is reclaimed
// by the garbage collector.
type Heap struct{}

// Alloc implements Allocator.
func (Heap) Alloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	return make([]byte, size), nil
}

// Realloc implements Allocator.
func (h Heap) Realloc(buf []byte, size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	if size <= cap(buf) {
		grown := buf[:size]
		clear(grown[min(len(buf), size):])
		return grown, nil
	}

	out := make([]byte, size)
	copy(out, buf)

	return out, nil
}

// Free implements Allocator.
func (Heap) Free([]byte) error {
	return nil
}

// Default returns a if it is not nil, otherwise Heap.
func Default(a Allocator) Allocator {
	if a == nil {
		return Heap{}
	}

	return a
}
