package pattern

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitalvas/waypoint"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "", expected: "/"},
		{input: "/", expected: "/"},
		{input: "//", expected: "/"},
		{input: "/a/", expected: "/a"},
		{input: "/a///", expected: "/a"},
		{input: "a", expected: "a"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalize(tt.input))
		})
	}
}

func TestSegments(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{input: "", expected: nil},
		{input: "/", expected: nil},
		{input: "/a", expected: []string{"a"}},
		{input: "//a", expected: []string{"a"}},
		{input: "a/b", expected: []string{"a", "b"}},
		{input: "/a//b/", expected: []string{"a", "b"}},
		{input: "/:id/*", expected: []string{":id", "*"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, slices.Collect(Segments(tt.input)))
		})
	}
}

func TestScannerMore(t *testing.T) {
	sc := scanner{s: "/a//"}
	_, ok := sc.next()
	require.True(t, ok)
	assert.False(t, sc.more())

	sc = scanner{s: "/a//b"}
	_, _ = sc.next()
	assert.True(t, sc.more())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		valid   bool
	}{
		{name: "empty", pattern: "", valid: true},
		{name: "root", pattern: "/", valid: true},
		{name: "literal", pattern: "/home", valid: true},
		{name: "parameter", pattern: "/users/:id", valid: true},
		{name: "trailing wildcard", pattern: "/files/*", valid: true},
		{name: "lone wildcard", pattern: "*", valid: true},
		{name: "wildcard with trailing slash", pattern: "/files/*/", valid: true},
		{name: "star inside a literal", pattern: "/a*b", valid: true},
		{name: "wildcard not last", pattern: "/files/*/x", valid: false},
		{name: "empty parameter", pattern: "/:", valid: false},
		{name: "empty parameter in middle", pattern: "/bad/:/x", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.pattern)
			if tt.valid {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, ErrInvalidPattern)
			assert.ErrorIs(t, err, waypoint.ErrInvalidArgument)
		})
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		path    string
		match   bool
		params  Params
	}{
		{name: "both empty", pattern: "", path: "", match: true},
		{name: "empty pattern is root", pattern: "", path: "/", match: true},
		{name: "literal", pattern: "/home", path: "/home", match: true},
		{name: "trailing slash on pattern", pattern: "/home/", path: "/home", match: true},
		{name: "trailing slash on path", pattern: "/home", path: "/home/", match: true},
		{name: "repeated slashes", pattern: "/a/b", path: "//a///b", match: true},
		{name: "literal mismatch", pattern: "/home", path: "/about", match: false},
		{name: "literal is case sensitive", pattern: "/Home", path: "/home", match: false},
		{name: "pattern shorter", pattern: "/a", path: "/a/b", match: false},
		{name: "path shorter", pattern: "/a/b", path: "/a", match: false},
		{
			name:    "parameter",
			pattern: "/users/:id",
			path:    "/users/42",
			match:   true,
			params:  Params{{Key: "id", Value: "42"}},
		},
		{name: "parameter needs a segment", pattern: "/users/:id", path: "/users", match: false},
		{name: "parameter takes one segment", pattern: "/users/:id", path: "/users/42/extra", match: false},
		{
			name:    "two parameters",
			pattern: "/u/:uid/posts/:pid",
			path:    "/u/7/posts/9",
			match:   true,
			params:  Params{{Key: "uid", Value: "7"}, {Key: "pid", Value: "9"}},
		},
		{name: "lone wildcard matches root", pattern: "*", path: "", match: true},
		{name: "lone wildcard matches anything", pattern: "*", path: "/files", match: true},
		{name: "wildcard zero segments", pattern: "/files/*", path: "/files", match: true},
		{name: "wildcard one segment", pattern: "/files/*", path: "/files/a", match: true},
		{name: "wildcard many segments", pattern: "/files/*", path: "/files/a/b/c", match: true},
		{name: "wildcard prefix mismatch", pattern: "/files/*", path: "/docs/a", match: false},
		{
			name:    "parameter then wildcard",
			pattern: "/repo/:name/*",
			path:    "/repo/waypoint/tree/main",
			match:   true,
			params:  Params{{Key: "name", Value: "waypoint"}},
		},
		{name: "bad pattern not reached", pattern: "/a/*/b", path: "/c", match: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := make([]Param, 4)
			n, ok, err := Match(tt.pattern, tt.path, params)
			require.NoError(t, err)
			assert.Equal(t, tt.match, ok)

			if !tt.match {
				assert.Zero(t, n)
				return
			}

			assert.Equal(t, len(tt.params), n)
			if len(tt.params) > 0 {
				assert.Equal(t, tt.params, Params(params[:n]))
			}

			matched, err := Matches(tt.pattern, tt.path)
			require.NoError(t, err)
			assert.True(t, matched)
		})
	}
}

func TestMatchErrors(t *testing.T) {
	t.Run("empty parameter name", func(t *testing.T) {
		_, _, err := Match("/users/:", "/users/42", make([]Param, 2))
		assert.ErrorIs(t, err, ErrInvalidPattern)
	})

	t.Run("empty parameter name against shorter path is a miss", func(t *testing.T) {
		_, ok, err := Match("/users/:", "/users", make([]Param, 2))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("wildcard not last", func(t *testing.T) {
		_, _, err := Match("/files/*/more", "/files/x", make([]Param, 2))
		assert.ErrorIs(t, err, ErrInvalidPattern)
	})

	t.Run("wildcard not last with exhausted path", func(t *testing.T) {
		_, _, err := Match("/files/*/more", "/files", make([]Param, 2))
		assert.ErrorIs(t, err, ErrInvalidPattern)
	})

	t.Run("output array too small", func(t *testing.T) {
		_, _, err := Match("/users/:id", "/users/42", nil)
		assert.ErrorIs(t, err, ErrTooManyParams)
		assert.ErrorIs(t, err, waypoint.ErrOverflow)

		_, _, err = Match("/a/:x/:y", "/a/1/2", make([]Param, 1))
		assert.ErrorIs(t, err, ErrTooManyParams)
	})

	t.Run("matches without capture ignores capacity", func(t *testing.T) {
		ok, err := Matches("/users/:id", "/users/42")
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestCapture(t *testing.T) {
	params, ok, err := Capture("/users/:id/:tab", "/users/42/posts")
	require.NoError(t, err)
	require.True(t, ok)

	v, found := params.Get("tab")
	assert.True(t, found)
	assert.Equal(t, "posts", v)
	assert.Equal(t, map[string]string{"id": "42", "tab": "posts"}, params.Map())

	_, found = params.Get("missing")
	assert.False(t, found)

	params, ok, err = Capture("/users/:id", "/teams/1")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, params)
}

func TestCompile(t *testing.T) {
	t.Run("rejects invalid patterns", func(t *testing.T) {
		_, err := Compile("/files/*/x")
		assert.ErrorIs(t, err, ErrInvalidPattern)

		_, err = Compile("/:")
		assert.ErrorIs(t, err, ErrInvalidPattern)

		assert.Panics(t, func() { MustCompile("/:") })
	})

	t.Run("metadata", func(t *testing.T) {
		c := MustCompile("/repo/:owner/:name/*")
		assert.Equal(t, "/repo/:owner/:name/*", c.String())
		assert.Equal(t, 2, c.NumParams())
		assert.True(t, c.HasWildcard())
		assert.False(t, MustCompile("/").HasWildcard())
	})

	t.Run("agrees with uncompiled match", func(t *testing.T) {
		patterns := []string{"", "/", "*", "/home", "/users/:id", "/files/*", "/a/:b/c", "/a/:b/*"}
		paths := []string{"", "/", "/home", "/home/", "/users", "/users/42", "/users/42/x", "/files", "/files/a/b", "/a/1/c", "/a/1/d/e"}

		for _, p := range patterns {
			c := MustCompile(p)
			for _, path := range paths {
				want := make([]Param, 4)
				got := make([]Param, 4)

				wn, wok, werr := Match(p, path, want)
				gn, gok, gerr := c.Match(path, got)

				require.NoError(t, werr)
				require.NoError(t, gerr)
				assert.Equal(t, wok, gok, "%q vs %q", p, path)
				assert.Equal(t, want[:wn], got[:gn], "%q vs %q", p, path)
				assert.Equal(t, wok, c.Matches(path), "%q vs %q", p, path)
			}
		}
	})

	t.Run("capture", func(t *testing.T) {
		c := MustCompile("/users/:id")

		params, ok := c.Capture("/users/42")
		require.True(t, ok)
		assert.Equal(t, Params{{Key: "id", Value: "42"}}, params)

		_, ok = c.Capture("/users")
		assert.False(t, ok)
	})

	t.Run("capacity", func(t *testing.T) {
		_, _, err := MustCompile("/users/:id").Match("/users/42", make([]Param, 0))
		assert.ErrorIs(t, err, ErrTooManyParams)
	})
}

func TestFirstMatchDependsOnOrder(t *testing.T) {
	// Both patterns match; the caller's table order decides which one wins.
	table := []string{"/users/:id", "/users/me"}

	first := ""
	for _, p := range table {
		if ok, _ := Matches(p, "/users/me"); ok {
			first = p
			break
		}
	}

	assert.Equal(t, "/users/:id", first)
}
