package pattern

import (
	"fmt"

	"github.com/vitalvas/waypoint"
)

// ErrInvalidPattern is returned for structurally illegal patterns: a "*"
// segment that is not the last segment, or a ":" segment without a name.
var ErrInvalidPattern = fmt.Errorf("pattern: invalid route pattern: %w", waypoint.ErrInvalidArgument)

// ErrTooManyParams is returned when a match captures more parameters than
// the caller's output array can hold.
var ErrTooManyParams = fmt.Errorf("pattern: too many route parameters: %w", waypoint.ErrOverflow)

// Param is a captured named parameter. Key borrows from the pattern and
// Value borrows from the matched path.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered list of captured parameters.
type Params []Param

// Get returns the value of the first parameter named key.
func (ps Params) Get(key string) (string, bool) {
	for _, p := range ps {
		if p.Key == key {
			return p.Value, true
		}
	}

	return "", false
}

// Map returns the parameters as a map. Later duplicates overwrite earlier
// ones.
func (ps Params) Map() map[string]string {
	m := make(map[string]string, len(ps))
	for _, p := range ps {
		m[p.Key] = p.Value
	}

	return m
}

func misplacedWildcard(p string) error {
	return fmt.Errorf("%w: %q: wildcard must be the last segment", ErrInvalidPattern, p)
}

func emptyParamName(p string) error {
	return fmt.Errorf("%w: %q: parameter segment has no name", ErrInvalidPattern, p)
}

// Validate reports whether p is a legal route pattern without matching it
// against anything. The empty pattern is legal and stands for "/".
func Validate(p string) error {
	sc := scanner{s: normalize(p)}

	for {
		seg, ok := sc.next()
		if !ok {
			return nil
		}

		switch kindOf(seg) {
		case kindWildcard:
			if sc.more() {
				return misplacedWildcard(p)
			}
			return nil
		case kindParam:
			if len(seg) == 1 {
				return emptyParamName(p)
			}
		}
	}
}

// Match matches path against pattern p, writing captured parameters into
// params. len(params) is the capacity of the output; capturing more than
// that fails with ErrTooManyParams. It returns the number of parameters
// written and whether the path matched.
//
// Structural problems in p are reported only when the walk reaches them, so
// "/a/*/b" fails with ErrInvalidPattern against "/a/x" but simply does not
// match "/c". Use Validate or Compile to check a pattern up front.
func Match(p, path string, params []Param) (int, bool, error) {
	return match(p, path, params, true)
}

// Matches is Match without parameter capture.
func Matches(p, path string) (bool, error) {
	_, ok, err := match(p, path, nil, false)
	return ok, err
}

// Capture is Match with an output array sized to fit every parameter.
func Capture(p, path string) (Params, bool, error) {
	params := make([]Param, countParams(p))

	n, ok, err := Match(p, path, params)
	if err != nil || !ok {
		return nil, ok, err
	}

	return Params(params[:n]), true, nil
}

func match(p, path string, params []Param, capture bool) (int, bool, error) {
	ps := scanner{s: normalize(p)}
	ss := scanner{s: normalize(path)}
	n := 0

	for {
		pseg, pok := ps.next()
		sseg, sok := ss.next()

		if !pok {
			if sok {
				return 0, false, nil
			}
			return n, true, nil
		}

		kind := kindOf(pseg)

		if kind == kindWildcard {
			if ps.more() {
				return 0, false, misplacedWildcard(p)
			}
			return n, true, nil
		}

		if !sok {
			return 0, false, nil
		}

		switch kind {
		case kindParam:
			if len(pseg) == 1 {
				return 0, false, emptyParamName(p)
			}

			if capture {
				if n >= len(params) {
					return 0, false, fmt.Errorf("%w: capacity %d", ErrTooManyParams, len(params))
				}
				params[n] = Param{Key: pseg[1:], Value: sseg}
				n++
			}
		default:
			if pseg != sseg {
				return 0, false, nil
			}
		}
	}
}

// countParams returns the number of parameter segments in p.
func countParams(p string) int {
	n := 0
	for seg := range Segments(p) {
		if kindOf(seg) == kindParam {
			n++
		}
	}

	return n
}
