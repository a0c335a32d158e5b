package alloc

import (
	"fmt"
	"unsafe"
)

// Arena is a fixed-capacity bump allocator. Blocks are carved from a single
// backing buffer; freeing the most recent block rewinds the arena, freeing
// any other block is accepted and reclaimed only by Reset.
//
// Arena is not safe for concurrent use.
type Arena struct {
	buf  []byte
	off  int
	last int
}

// NewArena returns an arena holding at most size bytes.
func NewArena(size int) *Arena {
	if size < 0 {
		size = 0
	}

	return &Arena{buf: make([]byte, size), last: -1}
}

// Alloc implements Allocator.
func (a *Arena) Alloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	if size > len(a.buf)-a.off {
		return nil, fmt.Errorf("%w: arena has %d of %d bytes left, need %d",
			ErrOutOfMemory, len(a.buf)-a.off, len(a.buf), size)
	}

	start := a.off
	a.off += size
	a.last = start

	block := a.buf[start:a.off:a.off]
	clear(block)

	return block, nil
}

// Realloc implements Allocator. The most recent block grows in place when
// space allows; any other block is moved to a fresh allocation.
func (a *Arena) Realloc(buf []byte, size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	if start, ok := a.offsetOf(buf); ok && start == a.last {
		if start+size > len(a.buf) {
			return nil, fmt.Errorf("%w: cannot grow block to %d bytes", ErrOutOfMemory, size)
		}

		old := len(buf)
		a.off = start + size
		block := a.buf[start:a.off:a.off]
		if size > old {
			clear(block[old:])
		}

		return block, nil
	}

	out, err := a.Alloc(size)
	if err != nil {
		return nil, err
	}
	copy(out, buf)

	return out, nil
}

// Free implements Allocator.
func (a *Arena) Free(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}

	start, ok := a.offsetOf(buf)
	if !ok {
		return fmt.Errorf("alloc: block does not belong to arena")
	}

	if start == a.last && start+len(buf) == a.off {
		a.off = start
		a.last = -1
	}

	return nil
}

// Reset releases every block at once.
func (a *Arena) Reset() {
	a.off = 0
	a.last = -1
}

// Used returns the number of bytes currently carved from the arena.
func (a *Arena) Used() int {
	return a.off
}

// Cap returns the total arena size.
func (a *Arena) Cap() int {
	return len(a.buf)
}

// offsetOf returns the offset of buf within the backing buffer.
func (a *Arena) offsetOf(buf []byte) (int, bool) {
	if len(a.buf) == 0 || cap(buf) == 0 {
		return 0, false
	}

	base := uintptr(unsafe.Pointer(unsafe.SliceData(a.buf)))
	p := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	if p < base || p >= base+uintptr(len(a.buf)) {
		return 0, false
	}

	return int(p - base), true
}
