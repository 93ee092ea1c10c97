// Copyright © 2023 aerth
// Permission is hereby granted, free of charge, to any person obtaining a copy of this software and associated documentation files (the “Software”), to deal in the Software without restriction, including without limitation the rights to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of the Software, and to permit persons to whom the Software is furnished to do so, subject to the following conditions:
// The above copyright notice and this permission notice shall be included in all copies or substantial portions of the Software.
// THE SOFTWARE IS PROVIDED “AS IS”, WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package numparse

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// MaybeHex parses a hexadecimal token when it starts with "0x" or "0X", decimal otherwise.
//
//	MaybeHex[uint32]("0XABcDE") // 703710
//	MaybeHex[uint8]("123")      // 123
func MaybeHex[T constraints.Unsigned](s string) (T, error) {
	if hasPrefix(s, 'x') {
		return parse[T](s, 2, 16)
	}
	return parse[T](s, 0, 10)
}

// MaybeHexRange is MaybeHex followed by CheckRange.
func MaybeHexRange[T constraints.Unsigned](s string, min, max T) (T, error) {
	mustOrder(min, max)
	v, err := MaybeHex[T](s)
	if err != nil {
		return v, err
	}
	return CheckRange(v, min, max)
}

// MaybeBin parses a binary token when it starts with "0b" or "0B", decimal otherwise.
func MaybeBin[T constraints.Unsigned](s string) (T, error) {
	if hasPrefix(s, 'b') {
		return parse[T](s, 2, 2)
	}
	return parse[T](s, 0, 10)
}

// MaybeBinRange is MaybeBin followed by CheckRange.
func MaybeBinRange[T constraints.Unsigned](s string, min, max T) (T, error) {
	mustOrder(min, max)
	v, err := MaybeBin[T](s)
	if err != nil {
		return v, err
	}
	return CheckRange(v, min, max)
}

// NumberRange parses a signed or unsigned decimal integer within [min, max].
//
// Values that are not numbers give "invalid digit ...", values too wide for T
// give "number too large to fit in target type", and values outside the range
// give "61 exceeds maximum of 60" or "-41 is less than minimum of -40".
func NumberRange[T constraints.Integer](s string, min, max T) (T, error) {
	mustOrder(min, max)
	v, err := parse[T](s, 0, 10)
	if err != nil {
		return v, err
	}
	return CheckRange(v, min, max)
}

// CheckRange returns v if min <= v <= max.
// It panics if min > max.
func CheckRange[T constraints.Integer](v, min, max T) (T, error) {
	mustOrder(min, max)
	switch {
	case v > max:
		return 0, &Error{Kind: KindAboveMax, Value: fmt.Sprint(v), Bound: fmt.Sprint(max)}
	case v < min:
		return 0, &Error{Kind: KindBelowMin, Value: fmt.Sprint(v), Bound: fmt.Sprint(min)}
	}
	return v, nil
}

func mustOrder[T constraints.Integer](min, max T) {
	if min > max {
		panic(fmt.Sprintf("numparse: minimum of %v exceeds maximum of %v", min, max))
	}
}

// hasPrefix reports "0<c>" or "0<C>"
func hasPrefix(s string, c byte) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == c || s[1] == c-('a'-'A'))
}
