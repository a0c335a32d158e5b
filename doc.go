// Package waypoint is the root of a small client-side routing toolkit:
// URI decomposition, route pattern matching and a bounded navigation stack
// whose entries are produced and released by caller-supplied factories.
//
// The work is split across packages:
//
//   - uri splits URI strings into scheme, authority, path, query and
//     fragment without copying, and looks up query parameters.
//   - pattern matches paths against route patterns made of literal,
//     ":name" and trailing "*" segments.
//   - router resolves paths against an ordered route table and keeps a
//     fixed-capacity LIFO history of built components.
//   - alloc is the allocator boundary for memory the router owns.
//   - routefile loads route tables from YAML.
//   - routemetrics exports router events to Prometheus.
//
// This package only holds the error kinds shared by the others.
package waypoint
