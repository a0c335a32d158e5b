// Package pattern matches request paths against route patterns.
//
// A pattern is a '/'-separated template. Each segment is one of:
//
//	users   literal, must equal the path segment byte for byte
//	:id     named parameter, captures the path segment under "id"
//	*       wildcard, matches the rest of the path (zero or more segments)
//
// The wildcard may only be the last segment and a parameter must have a
// name; Validate rejects anything else with ErrInvalidPattern.
//
// Patterns and paths are normalised the same way before matching: the empty
// string means "/", trailing slashes are ignored and runs of slashes count
// as one delimiter, so "//users/42/" matches "/users/:id".
//
//	params := make([]pattern.Param, 4)
//	n, ok, err := pattern.Match("/users/:id", "/users/42", params)
//	// n == 1, ok == true, params[0] == Param{Key: "id", Value: "42"}
//
//	ok, _ = pattern.Matches("/files/*", "/files")     // true
//	ok, _ = pattern.Matches("/files/*", "/files/a/b") // true
//	ok, _ = pattern.Matches("/users/:id", "/users")   // false
//
// The output array has a fixed capacity; a pattern that captures more
// parameters than it holds fails with ErrTooManyParams instead of
// truncating.
//
// Compile validates a pattern once and returns a *Pattern for repeated
// matching, which is what the router does for its route table.
package pattern
