// Package alloc defines the allocator boundary used by the router for memory
// it owns: path copies of navigation entries and the reserved footprint of
// the navigation stack.
//
// Three implementations are provided:
//
//   - Heap allocates from the Go heap and is the default.
//   - Arena carves blocks from one fixed buffer, giving a hard memory budget.
//   - Counting wraps another allocator, counts calls and live blocks, and
//     fails a chosen call on demand.
//
// Counting is the usual way to test error paths:
//
//	a := alloc.NewCounting(nil)
//	a.FailAllocOn = a.Allocs() + 1 // next allocation fails
//	_, err := r.Navigate("/users/7")
//	// errors.Is(err, alloc.ErrOutOfMemory) == true
//	// a.Live() is unchanged
package alloc
