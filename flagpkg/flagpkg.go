// flagpkg package provides numeric flag types that validate with numparse converters.
//
//	var cents uint8
//	flagpkg.RangeVar(nil, &cents, "cents", 0, 0, 99, "change in cents")
//
// A rejected value makes flag print the converter's message, for example:
//
//	invalid value "120" for flag -cents: 120 exceeds maximum of 99
package flagpkg

import (
	"flag"
	"fmt"
	"strings"

	"github.com/aerth/numflag/numparse"
	"golang.org/x/exp/constraints"
)

// ListSeparator splits the values of a ListVar flag
var ListSeparator = ","

// Var defines a flag that is converted with parse. If fs is nil, flag.CommandLine is used.
//
// The default value is not validated.
func Var[T any](fs *flag.FlagSet, p *T, name string, value T, usage string, parse numparse.Converter[T]) {
	if p == nil || parse == nil {
		panic("flagpkg: nil pointer or converter for flag " + name)
	}
	if fs == nil {
		fs = flag.CommandLine
	}
	fs.Var(newValue(value, p, parse), name, usage)
}

// HexVar defines an unsigned flag that accepts decimal or 0x-prefixed hexadecimal.
func HexVar[T constraints.Unsigned](fs *flag.FlagSet, p *T, name string, value T, usage string) {
	Var(fs, p, name, value, usage, numparse.MaybeHex[T])
}

// RangeVar defines a decimal flag limited to [min, max], inclusive.
func RangeVar[T constraints.Integer](fs *flag.FlagSet, p *T, name string, value, min, max T, usage string) {
	Var(fs, p, name, value, usage, numparse.Range(numparse.NumberRange[T], min, max))
}

// SIVar defines a flag that accepts metric prefixes ("47k" is 47000).
func SIVar[T constraints.Integer](fs *flag.FlagSet, p *T, name string, value T, usage string) {
	Var(fs, p, name, value, usage, numparse.SINumber[T])
}

// SIRangeVar is SIVar limited to [min, max] after scaling.
func SIRangeVar[T constraints.Integer](fs *flag.FlagSet, p *T, name string, value, min, max T, usage string) {
	Var(fs, p, name, value, usage, numparse.Range(numparse.SINumberRange[T], min, max))
}

// ListVar defines a flag holding ListSeparator separated values.
//
// Each occurrence of the flag replaces the list: "-ports 80,443" sets two values.
func ListVar[T any](fs *flag.FlagSet, p *[]T, name string, value []T, usage string, parse numparse.Converter[T]) {
	if p == nil || parse == nil {
		panic("flagpkg: nil pointer or converter for flag " + name)
	}
	if fs == nil {
		fs = flag.CommandLine
	}
	*p = value
	fs.Var(&listValue[T]{p: p, parse: parse}, name, usage)
}

// -- converted Value
// like the flag package's own values, but Set runs a converter
type value[T any] struct {
	p     *T
	parse numparse.Converter[T]
}

var _ flag.Getter = (*value[int])(nil)

func newValue[T any](val T, p *T, parse numparse.Converter[T]) *value[T] {
	*p = val
	return &value[T]{p: p, parse: parse}
}

// Set keeps the previous value when the converter fails.
func (v *value[T]) Set(s string) error {
	x, err := v.parse(s)
	if err != nil {
		return err
	}
	*v.p = x
	return nil
}

func (v *value[T]) Get() any { return *v.p }

// String is also called on a zero value, by flag.PrintDefaults
func (v *value[T]) String() string {
	if v.p == nil {
		var zero T
		return fmt.Sprint(zero)
	}
	return fmt.Sprint(*v.p)
}

// -- list Value
type listValue[T any] struct {
	p     *[]T
	parse numparse.Converter[T]
}

var _ flag.Getter = (*listValue[int])(nil)

func (v *listValue[T]) Set(s string) error {
	list, err := numparse.ParseAll(strings.Split(s, ListSeparator), v.parse)
	if err != nil {
		return err
	}
	*v.p = list
	return nil
}

func (v *listValue[T]) Get() any { return *v.p }

func (v *listValue[T]) String() string {
	if v.p == nil {
		return ""
	}
	parts := make([]string, len(*v.p))
	for i, x := range *v.p {
		parts[i] = fmt.Sprint(x)
	}
	return strings.Join(parts, ListSeparator)
}
