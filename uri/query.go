package uri

import (
	"fmt"
	"iter"
	"strings"

	"github.com/vitalvas/waypoint"
)

// ErrEmptyKey is returned when a query lookup is asked for an empty key.
var ErrEmptyKey = fmt.Errorf("uri: empty query key: %w", waypoint.ErrRange)

// EqualFunc reports whether a and b are equal. A non-nil error aborts the
// operation that called it.
type EqualFunc func(a, b string) (bool, error)

// bytewiseEqual is the default EqualFunc.
func bytewiseEqual(a, b string) (bool, error) {
	return a == b, nil
}

// QueryValue looks up key in the query component. See FindQuery.
func (u URI) QueryValue(key string) (string, bool, error) {
	return FindQuery(u.Query, key)
}

// FindQuery scans query for the first '&'-separated pair whose key equals
// key byte for byte. The key is the text before the first '=' of the pair
// and the value is the text after it; a pair without '=' has an empty
// value. A missing key is reported with found == false and a nil error.
func FindQuery(query, key string) (value string, found bool, err error) {
	return FindQueryFunc(query, key, bytewiseEqual)
}

// FindQueryFunc is FindQuery with a caller-supplied comparator. Comparator
// errors are returned unchanged. A nil equal uses byte equality.
func FindQueryFunc(query, key string, equal EqualFunc) (value string, found bool, err error) {
	if key == "" {
		return "", false, ErrEmptyKey
	}

	if equal == nil {
		equal = bytewiseEqual
	}

	if query == "" {
		return "", false, nil
	}

	for {
		pair, rest, more := strings.Cut(query, "&")
		k, v, _ := strings.Cut(pair, "=")

		ok, err := equal(k, key)
		if err != nil {
			return "", false, err
		}
		if ok {
			return v, true, nil
		}

		if !more {
			return "", false, nil
		}
		query = rest
	}
}

// QueryPairs yields every key/value pair of query in order. Empty pairs,
// such as the one between "&&", are yielded as ("", "").
func QueryPairs(query string) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if query == "" {
			return
		}

		for {
			pair, rest, more := strings.Cut(query, "&")
			k, v, _ := strings.Cut(pair, "=")

			if !yield(k, v) || !more {
				return
			}
			query = rest
		}
	}
}
