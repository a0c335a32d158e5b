package pattern

import "iter"

// root is the normalised form of an empty pattern or path.
const root = "/"

// normalize maps "" to "/" and trims trailing slashes from anything longer
// than "/".
func normalize(s string) string {
	if s == "" {
		return root
	}

	n := len(s)
	for n > 1 && s[n-1] == '/' {
		n--
	}

	return s[:n]
}

// scanner walks the '/'-separated segments of a string, treating runs of
// slashes as a single delimiter.
type scanner struct {
	s string
	i int
}

// next returns the next segment and false once the string is exhausted.
func (sc *scanner) next() (string, bool) {
	for sc.i < len(sc.s) && sc.s[sc.i] == '/' {
		sc.i++
	}

	if sc.i >= len(sc.s) {
		return "", false
	}

	start := sc.i
	for sc.i < len(sc.s) && sc.s[sc.i] != '/' {
		sc.i++
	}

	return sc.s[start:sc.i], true
}

// more reports whether another segment follows without consuming it.
func (sc *scanner) more() bool {
	for i := sc.i; i < len(sc.s); i++ {
		if sc.s[i] != '/' {
			return true
		}
	}

	return false
}

// Segments yields the segments of s in order. Leading, trailing and repeated
// slashes produce no empty segments, so "//a/b/" yields "a" then "b".
func Segments(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		sc := scanner{s: s}
		for {
			seg, ok := sc.next()
			if !ok || !yield(seg) {
				return
			}
		}
	}
}

// segmentKind classifies a pattern segment.
type segmentKind uint8

const (
	kindLiteral segmentKind = iota
	kindParam
	kindWildcard
)

// kindOf classifies seg. A bare ":" is reported as kindParam with an empty
// name; callers treat that as invalid.
func kindOf(seg string) segmentKind {
	switch {
	case seg == "*":
		return kindWildcard
	case len(seg) > 0 && seg[0] == ':':
		return kindParam
	default:
		return kindLiteral
	}
}
