// Package uri splits URI strings into their components without copying.
//
// Parse scans a string once and returns a URI whose fields are sub-slices of
// the input:
//
//	u := uri.Parse("app://example.com/users/42?tab=posts&debug#top")
//	// u.Scheme    == "app"
//	// u.Authority == "example.com"
//	// u.Path      == "/users/42"
//	// u.Query     == "tab=posts&debug"
//	// u.Fragment  == "top"
//
// Components are never percent-decoded or case-normalised. Callers that need
// an IDNA host call ParseAuthority and Authority.ASCIIHost explicitly.
//
// # Query Lookup
//
// QueryValue and FindQuery return the value of the first pair whose key
// matches exactly:
//
//	v, ok, err := u.QueryValue("tab")   // "posts", true, nil
//	v, ok, err = u.QueryValue("debug")  // "", true, nil
//	v, ok, err = u.QueryValue("page")   // "", false, nil
//	_, _, err = u.QueryValue("")        // ErrEmptyKey
package uri
