package numparse

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Converter turns one command-line token into a value.
type Converter[T any] func(string) (T, error)

// Range binds bounds to one of the range parsers, giving a Converter.
//
//	cents := numparse.Range(numparse.NumberRange[uint8], 0, 99)
//
// Panics if min > max.
func Range[T constraints.Integer](parse func(string, T, T) (T, error), min, max T) Converter[T] {
	mustOrder(min, max)
	return func(s string) (T, error) {
		return parse(s, min, max)
	}
}

// ParseAll converts every token, stopping at the first failure.
// The error names the failing element and wraps its *Error.
func ParseAll[T any](tokens []string, parse Converter[T]) ([]T, error) {
	out := make([]T, len(tokens))
	for i := range tokens {
		v, err := parse(tokens[i])
		if err != nil {
			return nil, fmt.Errorf("element %d (%q): %w", i, tokens[i], err)
		}
		out[i] = v
	}
	return out, nil
}
