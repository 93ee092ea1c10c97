// Copyright © 2023 aerth
// Permission is hereby granted, free of charge, to any person obtaining a copy of this software and associated documentation files (the “Software”), to deal in the Software without restriction, including without limitation the rights to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of the Software, and to permit persons to whom the Software is furnished to do so, subject to the following conditions:
// The above copyright notice and this permission notice shall be included in all copies or substantial portions of the Software.
// THE SOFTWARE IS PROVIDED “AS IS”, WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

// numparse package validates and parses integer command-line tokens.
//
// Every function is a converter of the shape func(string) (T, error), so it can be
// handed directly to a flag.Value, a kong mapper, or any other argument parser.
// Errors are *Error values whose message is a single line fit for a usage diagnostic.
package numparse

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Kind is the closed set of reasons a token can be rejected.
type Kind int

const (
	KindNone          Kind = iota
	KindEmpty              // nothing to parse
	KindInvalidDigit       // character not valid in the number's base (or misplaced '_')
	KindOverflow           // does not fit the target integer width
	KindBelowMin           // less than the inclusive minimum
	KindAboveMax           // greater than the inclusive maximum
	KindUnknownSymbol      // trailing SI symbol not in the table
	KindNotWhole           // sub-unit SI symbol left a fraction
	KindNoValue            // SI symbol with no digits before it
)

var kindNames = [...]string{
	KindNone:          "none",
	KindEmpty:         "empty",
	KindInvalidDigit:  "invalid digit",
	KindOverflow:      "overflow",
	KindBelowMin:      "below minimum",
	KindAboveMax:      "above maximum",
	KindUnknownSymbol: "unknown symbol",
	KindNotWhole:      "not a whole number",
	KindNoValue:       "no value",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Error describes a rejected token. Only the fields relevant to Kind are set.
type Error struct {
	Kind     Kind
	Token    string // the input, as given
	Char     rune   // offending character (KindInvalidDigit, KindUnknownSymbol)
	Offset   int    // byte offset of Char in Token
	Value    string // parsed value (KindBelowMin, KindAboveMax)
	Bound    string // violated bound (KindBelowMin, KindAboveMax)
	Negative bool   // KindOverflow: below the smallest value of the type
}

var _ error = (*Error)(nil)

func (e *Error) Error() string {
	switch e.Kind {
	case KindEmpty:
		return "cannot parse integer from empty string"
	case KindInvalidDigit:
		return fmt.Sprintf("invalid digit %q found at offset %d", e.char(), e.Offset)
	case KindOverflow:
		if e.Negative {
			return "number too small to fit in target type"
		}
		return "number too large to fit in target type"
	case KindBelowMin:
		return fmt.Sprintf("%s is less than minimum of %s", e.Value, e.Bound)
	case KindAboveMax:
		return fmt.Sprintf("%s exceeds maximum of %s", e.Value, e.Bound)
	case KindUnknownSymbol:
		return fmt.Sprintf("unknown SI symbol %q", e.char())
	case KindNotWhole:
		return fmt.Sprintf("%s is not a whole number", e.Token)
	case KindNoValue:
		return "no value found before SI symbol"
	}
	return fmt.Sprintf("invalid number %q", e.Token)
}

// char is the offending character, or the raw byte when Token is not valid UTF-8 there
func (e *Error) char() string {
	if e.Char == utf8.RuneError && e.Offset >= 0 && e.Offset < len(e.Token) {
		if _, size := utf8.DecodeRuneInString(e.Token[e.Offset:]); size == 1 {
			return e.Token[e.Offset : e.Offset+1]
		}
	}
	return string(e.Char)
}

// KindOf returns the Kind of the first *Error in err's chain, or KindNone.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindNone
}
