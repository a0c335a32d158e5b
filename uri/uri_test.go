package uri

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitalvas/waypoint"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected URI
	}{
		{
			name:  "all components",
			input: "app://example.com/path/one?foo=bar&flag#frag",
			expected: URI{
				Scheme:    "app",
				Authority: "example.com",
				Path:      "/path/one",
				Query:     "foo=bar&flag",
				Fragment:  "frag",
			},
		},
		{
			name:     "fragment without query",
			input:    "app://example.com/path#frag",
			expected: URI{Scheme: "app", Authority: "example.com", Path: "/path", Fragment: "frag"},
		},
		{
			name:     "query without fragment",
			input:    "app://example.com/path?bar=baz",
			expected: URI{Scheme: "app", Authority: "example.com", Path: "/path", Query: "bar=baz"},
		},
		{
			name:     "authority only",
			input:    "app://host",
			expected: URI{Scheme: "app", Authority: "host"},
		},
		{
			name:     "authority ends at query",
			input:    "app://host?x=1",
			expected: URI{Scheme: "app", Authority: "host", Query: "x=1"},
		},
		{
			name:     "authority ends at fragment",
			input:    "app://host#top",
			expected: URI{Scheme: "app", Authority: "host", Fragment: "top"},
		},
		{
			name:     "empty authority",
			input:    "file:///etc/hosts",
			expected: URI{Scheme: "file", Path: "/etc/hosts"},
		},
		{
			name:     "local path",
			input:    "/local/path",
			expected: URI{Path: "/local/path"},
		},
		{
			name:     "no scheme",
			input:    "noscheme",
			expected: URI{Path: "noscheme"},
		},
		{
			name:     "separator at start is not a scheme",
			input:    "://host/a",
			expected: URI{Path: "://host/a"},
		},
		{
			name:     "empty input",
			input:    "",
			expected: URI{},
		},
		{
			name:     "hash inside query belongs to fragment",
			input:    "/p?a=1#b=2?c",
			expected: URI{Path: "/p", Query: "a=1", Fragment: "b=2?c"},
		},
		{
			name:     "question mark inside fragment",
			input:    "/p#frag?x",
			expected: URI{Path: "/p", Fragment: "frag?x"},
		},
		{
			name:     "empty query and fragment",
			input:    "/p?#",
			expected: URI{Path: "/p"},
		},
		{
			name:     "no decoding",
			input:    "HTTP://Ex%41mple.com/a%20b?k=%2F#%23",
			expected: URI{Scheme: "HTTP", Authority: "Ex%41mple.com", Path: "/a%20b", Query: "k=%2F", Fragment: "%23"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Parse(tt.input))
		})
	}
}

func TestParseVerbatimComponents(t *testing.T) {
	schemes := []string{"app", "https", "x-custom"}
	hosts := []string{"example.com", "localhost:8080", "user@host"}
	paths := []string{"/a", "/users/42", "/files/a/b"}

	for _, scheme := range schemes {
		for _, host := range hosts {
			for _, path := range paths {
				raw := scheme + "://" + host + path + "?k1=v1&k2=v2#frag"
				u := Parse(raw)
				assert.Equal(t, scheme, u.Scheme, raw)
				assert.Equal(t, host, u.Authority, raw)
				assert.Equal(t, path, u.Path, raw)
				assert.Equal(t, "k1=v1&k2=v2", u.Query, raw)
				assert.Equal(t, "frag", u.Fragment, raw)
				assert.Equal(t, raw, u.String())
			}
		}
	}
}

func TestURIString(t *testing.T) {
	assert.Equal(t, "", URI{}.String())
	assert.Equal(t, "/a?b#c", URI{Path: "/a", Query: "b", Fragment: "c"}.String())
	assert.Equal(t, "app://h", URI{Scheme: "app", Authority: "h"}.String())
}

func TestURIIsZero(t *testing.T) {
	assert.True(t, Parse("").IsZero())
	assert.False(t, Parse("/").IsZero())
}

func TestSlice(t *testing.T) {
	assert.Equal(t, "bc", Slice("abcd", 1, 3))
	assert.Equal(t, "", Slice("abcd", 2, 2))
	assert.Equal(t, "", Slice("abcd", 3, 1))
}

func TestFindQuery(t *testing.T) {
	t.Run("finds keys left to right", func(t *testing.T) {
		u := Parse("/p?a=1&b=2")

		v, ok, err := u.QueryValue("a")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "1", v)

		v, ok, err = u.QueryValue("b")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "2", v)

		_, ok, err = u.QueryValue("c")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("pair without value", func(t *testing.T) {
		v, ok, err := FindQuery("foo=bar&flag", "flag")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Empty(t, v)
	})

	t.Run("first match wins", func(t *testing.T) {
		v, ok, err := FindQuery("k=1&k=2", "k")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "1", v)
	})

	t.Run("value keeps later equals signs", func(t *testing.T) {
		v, _, err := FindQuery("expr=a=b", "expr")
		require.NoError(t, err)
		assert.Equal(t, "a=b", v)
	})

	t.Run("key prefix does not match", func(t *testing.T) {
		_, ok, err := FindQuery("foobar=1", "foo")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("empty query", func(t *testing.T) {
		_, ok, err := FindQuery("", "foo")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("empty key is a range error", func(t *testing.T) {
		_, _, err := FindQuery("a=1", "")
		assert.ErrorIs(t, err, ErrEmptyKey)
		assert.ErrorIs(t, err, waypoint.ErrRange)
	})

	t.Run("trailing separator", func(t *testing.T) {
		v, ok, err := FindQuery("a=1&", "a")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "1", v)
	})
}

func TestFindQueryFunc(t *testing.T) {
	t.Run("comparator error aborts lookup", func(t *testing.T) {
		boom := errors.New("boom")
		_, _, err := FindQueryFunc("foo=bar", "foo", func(string, string) (bool, error) {
			return false, boom
		})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("custom comparator", func(t *testing.T) {
		calls := 0
		v, ok, err := FindQueryFunc("a=1&B=2", "b", func(a, b string) (bool, error) {
			calls++
			return len(a) == len(b) && (a == b || a == "B" && b == "b"), nil
		})
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "2", v)
		assert.Equal(t, 2, calls)
	})

	t.Run("nil comparator uses byte equality", func(t *testing.T) {
		v, ok, err := FindQueryFunc("a=1", "a", nil)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "1", v)
	})
}

func TestQueryPairs(t *testing.T) {
	type pair struct{ k, v string }

	var got []pair
	for k, v := range QueryPairs("a=1&&flag&b=x=y") {
		got = append(got, pair{k, v})
	}

	assert.Equal(t, []pair{{"a", "1"}, {"", ""}, {"flag", ""}, {"b", "x=y"}}, got)

	t.Run("stops early", func(t *testing.T) {
		n := 0
		for range QueryPairs("a&b&c") {
			n++
			break
		}
		assert.Equal(t, 1, n)
	})

	t.Run("empty query yields nothing", func(t *testing.T) {
		for range QueryPairs("") {
			t.Fatal("unexpected pair")
		}
	})
}

func TestParseAuthority(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Authority
	}{
		{name: "host", input: "example.com", expected: Authority{Host: "example.com"}},
		{name: "host and port", input: "example.com:8080", expected: Authority{Host: "example.com", Port: "8080"}},
		{name: "userinfo", input: "user:pw@host:1", expected: Authority{UserInfo: "user:pw", Host: "host", Port: "1"}},
		{name: "ipv6", input: "[::1]:443", expected: Authority{Host: "[::1]", Port: "443"}},
		{name: "ipv6 without port", input: "[fe80::1]", expected: Authority{Host: "[fe80::1]"}},
		{name: "empty", input: "", expected: Authority{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := ParseAuthority(tt.input)
			assert.Equal(t, tt.expected, a)
			assert.Equal(t, tt.input, a.String())
		})
	}
}

func TestAuthorityHostConversion(t *testing.T) {
	t.Run("ascii", func(t *testing.T) {
		h, err := ParseAuthority("münchen.de:80").ASCIIHost()
		require.NoError(t, err)
		assert.Equal(t, "xn--mnchen-3ya.de", h)
	})

	t.Run("unicode", func(t *testing.T) {
		h, err := ParseAuthority("xn--mnchen-3ya.de").UnicodeHost()
		require.NoError(t, err)
		assert.Equal(t, "münchen.de", h)
	})

	t.Run("ipv6 unchanged", func(t *testing.T) {
		h, err := ParseAuthority("[::1]").ASCIIHost()
		require.NoError(t, err)
		assert.Equal(t, "[::1]", h)

		h, err = ParseAuthority("[::1]").UnicodeHost()
		require.NoError(t, err)
		assert.Equal(t, "[::1]", h)
	})

	t.Run("parse does not convert", func(t *testing.T) {
		u := Parse("app://münchen.de/x")
		assert.Equal(t, "münchen.de", u.Authority)
	})
}
