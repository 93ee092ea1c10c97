// Copyright © 2023 aerth
// Permission is hereby granted, free of charge, to any person obtaining a copy of this software and associated documentation files (the “Software”), to deal in the Software without restriction, including without limitation the rights to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of the Software, and to permit persons to whom the Software is furnished to do so, subject to the following conditions:
// The above copyright notice and this permission notice shall be included in all copies or substantial portions of the Software.
// THE SOFTWARE IS PROVIDED “AS IS”, WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package numparse

import (
	"math"
	"math/bits"
	"reflect"
	"unicode/utf8"

	"golang.org/x/exp/constraints"
)

// width of T in bits, and whether T is signed
func width[T constraints.Integer]() (int, bool) {
	var zero T
	return reflect.TypeOf(zero).Bits(), ^zero < 0
}

// syntax of the digits accepted by scan
type syntax struct {
	base        int
	signed      bool // a leading '-' is allowed
	underscores bool // '_' is allowed strictly between two digits
}

// scan reads token[start:end] as a magnitude in s.base. A sign is only recognized
// at offset 0, so prefixed tokens ("0x..") are never signed. Offsets in errors
// are relative to token.
//
// Digits are validated before overflow is reported: "1x99999999999999999999" is
// an invalid digit, not an overflow.
func (s syntax) scan(token string, start, end int) (neg bool, mag uint64, err error) {
	if len(token) == 0 {
		return false, 0, &Error{Kind: KindEmpty, Token: token}
	}
	i := start
	if i == 0 && i < end && (token[0] == '+' || token[0] == '-') {
		if token[0] == '-' && !s.signed {
			return false, 0, invalidDigit(token, 0)
		}
		neg = token[0] == '-'
		i++
		if i == end {
			return false, 0, invalidDigit(token, 0)
		}
	}
	if i == end {
		return false, 0, &Error{Kind: KindEmpty, Token: token}
	}
	first := i
	overflow := false
	for ; i < end; i++ {
		c := token[i]
		if c == '_' && s.underscores {
			if i == first || i+1 >= end || !isDigit(token[i-1], s.base) || !isDigit(token[i+1], s.base) {
				return false, 0, invalidDigit(token, i)
			}
			continue
		}
		d := digitValue(c)
		if d >= uint64(s.base) {
			return false, 0, invalidDigit(token, i)
		}
		if overflow {
			continue
		}
		hi, lo := bits.Mul64(mag, uint64(s.base))
		lo, carry := bits.Add64(lo, d, 0)
		if hi != 0 || carry != 0 {
			overflow = true
			continue
		}
		mag = lo
	}
	if overflow {
		return neg, 0, &Error{Kind: KindOverflow, Token: token, Negative: neg}
	}
	return neg, mag, nil
}

// fit converts a signed magnitude to T, or reports overflow
func fit[T constraints.Integer](token string, neg bool, mag uint64) (T, error) {
	n, signed := width[T]()
	limit := uint64(math.MaxUint64) >> (64 - n)
	if signed {
		limit = 1<<(n-1) - 1
		if neg {
			limit++
		}
	}
	if mag > limit || (neg && !signed && mag != 0) {
		return 0, &Error{Kind: KindOverflow, Token: token, Negative: neg}
	}
	v := T(mag)
	if neg {
		v = -v
	}
	return v, nil
}

// parse is the shared path for the unprefixed and prefixed integer parsers
func parse[T constraints.Integer](token string, start, base int) (T, error) {
	_, signed := width[T]()
	neg, mag, err := syntax{base: base, signed: signed}.scan(token, start, len(token))
	if err != nil {
		return 0, err
	}
	return fit[T](token, neg, mag)
}

func invalidDigit(token string, offset int) *Error {
	r, _ := utf8.DecodeRuneInString(token[offset:])
	return &Error{Kind: KindInvalidDigit, Token: token, Char: r, Offset: offset}
}

func isDigit(c byte, base int) bool {
	return digitValue(c) < uint64(base)
}

// digitValue of c in base 36, or 36 if c is not a digit
func digitValue(c byte) uint64 {
	switch {
	case '0' <= c && c <= '9':
		return uint64(c - '0')
	case 'a' <= c && c <= 'z':
		return uint64(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return uint64(c-'A') + 10
	}
	return 36
}
