// Copyright © 2023 aerth
// Permission is hereby granted, free of charge, to any person obtaining a copy of this software and associated documentation files (the “Software”), to deal in the Software without restriction, including without limitation the rights to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of the Software, and to permit persons to whom the Software is furnished to do so, subject to the following conditions:
// The above copyright notice and this permission notice shall be included in all copies or substantial portions of the Software.
// THE SOFTWARE IS PROVIDED “AS IS”, WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package numparse

import (
	"math/bits"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/constraints"
)

type multiplier struct {
	factor uint64
	divide bool // sub-unit: the value is divided by factor and must stay whole
}

// siSymbols are the case sensitive metric prefixes accepted by SINumber.
// 'K' is accepted as a common spelling of kilo.
var siSymbols = map[rune]multiplier{
	'n': {1_000_000_000, true},
	'u': {1_000_000, true},
	'µ': {1_000_000, true}, // U+00B5 MICRO SIGN
	'μ': {1_000_000, true}, // U+03BC GREEK SMALL LETTER MU
	'm': {1_000, true},
	'k': {1_000, false},
	'K': {1_000, false},
	'M': {1_000_000, false},
	'G': {1_000_000_000, false},
	'T': {1_000_000_000_000, false},
	'P': {1_000_000_000_000_000, false},
	'E': {1_000_000_000_000_000_000, false},
}

// SINumber parses a decimal integer with an optional trailing metric prefix.
//
//	| Symbol | Name  | Value                     |
//	|--------|-------|---------------------------|
//	| E      | exa   | 1_000_000_000_000_000_000 |
//	| P      | peta  | 1_000_000_000_000_000     |
//	| T      | tera  | 1_000_000_000_000         |
//	| G      | giga  | 1_000_000_000             |
//	| M      | mega  | 1_000_000                 |
//	| k, K   | kilo  | 1_000                     |
//	| m      | milli | 1/1_000                   |
//	| u, µ   | micro | 1/1_000_000               |
//	| n      | nano  | 1/1_000_000_000           |
//
// Underscores may separate digits ("1_000k"). The sub-unit prefixes only accept
// values that divide exactly: "5000m" is 5, "5m" is an error, never 0.
// Scaling never wraps; "99999G" as a uint32 is an overflow error.
func SINumber[T constraints.Integer](s string) (T, error) {
	if s == "" {
		return 0, &Error{Kind: KindEmpty, Token: s}
	}
	end := len(s)
	m := multiplier{factor: 1}
	r, size := utf8.DecodeLastRuneInString(s)
	if sym, ok := siSymbols[r]; ok {
		m = sym
		end -= size
		if end == 0 || (end == 1 && (s[0] == '+' || s[0] == '-')) {
			return 0, &Error{Kind: KindNoValue, Token: s}
		}
	} else if r >= utf8.RuneSelf || unicode.IsLetter(r) {
		return 0, &Error{Kind: KindUnknownSymbol, Token: s, Char: r, Offset: end - size}
	}

	_, signed := width[T]()
	neg, mag, err := syntax{base: 10, signed: signed, underscores: true}.scan(s, 0, end)
	if err != nil {
		return 0, err
	}
	if m.divide {
		if mag%m.factor != 0 {
			return 0, &Error{Kind: KindNotWhole, Token: s}
		}
		mag /= m.factor
	} else {
		hi, lo := bits.Mul64(mag, m.factor)
		if hi != 0 {
			return 0, &Error{Kind: KindOverflow, Token: s, Negative: neg}
		}
		mag = lo
	}
	return fit[T](s, neg, mag)
}

// SINumberRange is SINumber followed by CheckRange on the scaled value.
//
//	SINumberRange[uint32]("3333k", 800, 3_333_000) // 3333000
func SINumberRange[T constraints.Integer](s string, min, max T) (T, error) {
	mustOrder(min, max)
	v, err := SINumber[T](s)
	if err != nil {
		return v, err
	}
	return CheckRange(v, min, max)
}
