package pattern

import "fmt"

// segment is one precompiled pattern segment. For parameters text holds the
// name without the leading ':'.
type segment struct {
	kind segmentKind
	text string
}

// Pattern is a validated, pre-split route pattern. It is immutable and safe
// for concurrent use.
type Pattern struct {
	raw      string
	segments []segment
	params   int
	wildcard bool
}

// Compile validates p and splits it into segments.
func Compile(p string) (*Pattern, error) {
	if err := Validate(p); err != nil {
		return nil, err
	}

	out := &Pattern{raw: p}

	for seg := range Segments(normalize(p)) {
		switch kindOf(seg) {
		case kindWildcard:
			out.wildcard = true
			out.segments = append(out.segments, segment{kind: kindWildcard})
		case kindParam:
			out.params++
			out.segments = append(out.segments, segment{kind: kindParam, text: seg[1:]})
		default:
			out.segments = append(out.segments, segment{kind: kindLiteral, text: seg})
		}
	}

	return out, nil
}

// MustCompile is like Compile but panics on an invalid pattern. It is meant
// for package-level route tables.
func MustCompile(p string) *Pattern {
	c, err := Compile(p)
	if err != nil {
		panic(err)
	}

	return c
}

// String returns the pattern as given to Compile.
func (c *Pattern) String() string {
	return c.raw
}

// NumParams returns the number of parameter segments.
func (c *Pattern) NumParams() int {
	return c.params
}

// HasWildcard reports whether the pattern ends in "*".
func (c *Pattern) HasWildcard() bool {
	return c.wildcard
}

// Match behaves like the package-level Match but never reports
// ErrInvalidPattern.
func (c *Pattern) Match(path string, params []Param) (int, bool, error) {
	return c.match(path, params, true)
}

// Matches reports whether path matches without capturing parameters.
func (c *Pattern) Matches(path string) bool {
	_, ok, _ := c.match(path, nil, false)
	return ok
}

// Capture matches path and returns every captured parameter.
func (c *Pattern) Capture(path string) (Params, bool) {
	params := make([]Param, c.params)

	n, ok, _ := c.match(path, params, true)
	if !ok {
		return nil, false
	}

	return Params(params[:n]), true
}

func (c *Pattern) match(path string, params []Param, capture bool) (int, bool, error) {
	ss := scanner{s: normalize(path)}
	n := 0

	for _, pseg := range c.segments {
		if pseg.kind == kindWildcard {
			return n, true, nil
		}

		sseg, ok := ss.next()
		if !ok {
			return 0, false, nil
		}

		switch pseg.kind {
		case kindParam:
			if capture {
				if n >= len(params) {
					return 0, false, fmt.Errorf("%w: capacity %d", ErrTooManyParams, len(params))
				}
				params[n] = Param{Key: pseg.text, Value: sseg}
				n++
			}
		default:
			if pseg.text != sseg {
				return 0, false, nil
			}
		}
	}

	if ss.more() {
		return 0, false, nil
	}

	return n, true, nil
}
