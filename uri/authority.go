package uri

import (
	"strings"

	"golang.org/x/net/idna"
)

// Authority is the decomposed authority component of a URI. Like URI, its
// fields borrow from the parsed string.
type Authority struct {
	UserInfo string
	Host     string
	Port     string
}

// ParseAuthority splits a into userinfo, host and port. The userinfo ends
// at the last '@'. A host in square brackets (an IPv6 literal) keeps its
// brackets, and the port is whatever follows the closing bracket's ':'.
// Nothing is validated or decoded.
func ParseAuthority(a string) Authority {
	var out Authority

	if i := strings.LastIndexByte(a, '@'); i >= 0 {
		out.UserInfo = a[:i]
		a = a[i+1:]
	}

	if strings.HasPrefix(a, "[") {
		if end := strings.IndexByte(a, ']'); end >= 0 {
			out.Host = a[:end+1]
			if rest := a[end+1:]; strings.HasPrefix(rest, ":") {
				out.Port = rest[1:]
			}

			return out
		}
	}

	if i := strings.LastIndexByte(a, ':'); i >= 0 {
		out.Host = a[:i]
		out.Port = a[i+1:]

		return out
	}

	out.Host = a

	return out
}

// ASCIIHost returns the host converted to its ASCII (punycode) form using
// the IDNA lookup profile. Bracketed IPv6 literals are returned unchanged.
func (a Authority) ASCIIHost() (string, error) {
	if a.Host == "" || strings.HasPrefix(a.Host, "[") {
		return a.Host, nil
	}

	return idna.Lookup.ToASCII(a.Host)
}

// UnicodeHost returns the host converted to its Unicode form for display.
// Bracketed IPv6 literals are returned unchanged.
func (a Authority) UnicodeHost() (string, error) {
	if a.Host == "" || strings.HasPrefix(a.Host, "[") {
		return a.Host, nil
	}

	return idna.Display.ToUnicode(a.Host)
}

// String reassembles the authority.
func (a Authority) String() string {
	var b strings.Builder

	if a.UserInfo != "" {
		b.WriteString(a.UserInfo)
		b.WriteByte('@')
	}

	b.WriteString(a.Host)

	if a.Port != "" {
		b.WriteByte(':')
		b.WriteString(a.Port)
	}

	return b.String()
}
