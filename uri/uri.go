package uri

import "strings"

// URI holds the components of a parsed URI. Every field is a sub-slice of
// the string passed to Parse and shares its memory; nothing is decoded or
// normalised.
type URI struct {
	// Scheme is the text before "://", without the separator.
	Scheme string

	// Authority is host[:port] with optional userinfo, present only when a
	// scheme was found.
	Authority string

	// Path runs from the end of the authority (or the start of the input)
	// to the first '?' or '#'.
	Path string

	// Query is the text after '?' up to '#', without the '?'.
	Query string

	// Fragment is the text after '#', without the '#'.
	Fragment string
}

// Slice returns s[start:end], or the canonical empty string when the range
// is empty. It never allocates.
func Slice(s string, start, end int) string {
	if end <= start {
		return ""
	}

	return s[start:end]
}

// Parse splits s into scheme, authority, path, query and fragment.
//
// A scheme is recognised only when "://" appears after at least one byte.
// The authority then ends at the first '/', '?' or '#'. Malformed input is
// not rejected; it simply yields whatever components the scan produces, and
// an empty string yields an empty URI.
func Parse(s string) URI {
	var u URI

	if s == "" {
		return u
	}

	n := len(s)
	pathStart := 0

	if i := strings.Index(s, "://"); i > 0 {
		u.Scheme = s[:i]
		authStart := i + 3

		authEnd := n
		if j := strings.IndexAny(s[authStart:], "/?#"); j >= 0 {
			authEnd = authStart + j
		}

		u.Authority = Slice(s, authStart, authEnd)
		pathStart = authEnd
	}

	pathEnd := n
	queryStart, fragStart := -1, -1

	if j := strings.IndexAny(s[pathStart:], "?#"); j >= 0 {
		pathEnd = pathStart + j
		if s[pathEnd] == '?' {
			queryStart = pathEnd + 1
		} else {
			fragStart = pathEnd + 1
		}
	}

	u.Path = Slice(s, pathStart, pathEnd)

	if queryStart >= 0 {
		queryEnd := n
		if j := strings.IndexByte(s[queryStart:], '#'); j >= 0 {
			queryEnd = queryStart + j
			fragStart = queryEnd + 1
		}

		u.Query = Slice(s, queryStart, queryEnd)
	}

	if fragStart >= 0 {
		u.Fragment = Slice(s, fragStart, n)
	}

	return u
}

// String reassembles the URI. Components that are empty are omitted along
// with their delimiters, so String of Parse(s) equals s whenever s has no
// empty delimited components.
func (u URI) String() string {
	var b strings.Builder

	b.Grow(len(u.Scheme) + len(u.Authority) + len(u.Path) + len(u.Query) + len(u.Fragment) + 5)

	if u.Scheme != "" {
		b.WriteString(u.Scheme)
		b.WriteString("://")
		b.WriteString(u.Authority)
	}

	b.WriteString(u.Path)

	if u.Query != "" {
		b.WriteByte('?')
		b.WriteString(u.Query)
	}

	if u.Fragment != "" {
		b.WriteByte('#')
		b.WriteString(u.Fragment)
	}

	return b.String()
}

// IsZero reports whether every component is empty.
func (u URI) IsZero() bool {
	return u == URI{}
}
