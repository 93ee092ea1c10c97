// kongmap package adapts numparse converters to github.com/alecthomas/kong mappers.
//
//	var cli struct {
//		Addr       uint16 `type:"hex"`
//		Resistance uint64 `type:"si"`
//	}
//	parser := kong.Must(&cli, kongmap.Named())
package kongmap

import (
	"fmt"
	"reflect"

	"github.com/alecthomas/kong"
	"github.com/aerth/numflag/numparse"
)

// Mapper decodes a flag or argument with parse. The converted value must be
// convertible to the field type.
//
//	kong.TypeMapper(reflect.TypeOf(uint8(0)), kongmap.Mapper(numparse.Range(numparse.NumberRange[uint8], 0, 99)))
func Mapper[T any](parse numparse.Converter[T]) kong.Mapper {
	if parse == nil {
		panic("kongmap: nil converter")
	}
	return kong.MapperFunc(func(ctx *kong.DecodeContext, target reflect.Value) error {
		var s string
		if err := ctx.Scan.PopValueInto("value", &s); err != nil {
			return err
		}
		return set(target, parse, s)
	})
}

// Named registers the "hex", "bin" and "si" mappers, selected with the type tag.
// hex and bin need unsigned fields; si works on every integer kind.
func Named() kong.Option {
	return kong.OptionFunc(func(k *kong.Kong) error {
		for name, m := range map[string]kong.Mapper{
			"hex": kong.MapperFunc(decodeHex),
			"bin": kong.MapperFunc(decodeBin),
			"si":  kong.MapperFunc(decodeSI),
		} {
			if err := kong.NamedMapper(name, m).Apply(k); err != nil {
				return err
			}
		}
		return nil
	})
}

func decodeHex(ctx *kong.DecodeContext, target reflect.Value) error {
	var s string
	if err := ctx.Scan.PopValueInto("hex", &s); err != nil {
		return err
	}
	switch target.Kind() {
	case reflect.Uint:
		return set(target, numparse.MaybeHex[uint], s)
	case reflect.Uint8:
		return set(target, numparse.MaybeHex[uint8], s)
	case reflect.Uint16:
		return set(target, numparse.MaybeHex[uint16], s)
	case reflect.Uint32:
		return set(target, numparse.MaybeHex[uint32], s)
	case reflect.Uint64:
		return set(target, numparse.MaybeHex[uint64], s)
	case reflect.Uintptr:
		if target.Type().Bits() == 32 {
			return set(target, numparse.MaybeHex[uint32], s)
		}
		return set(target, numparse.MaybeHex[uint64], s)
	}
	return fmt.Errorf("hex mapper needs an unsigned field, not %s", target.Type())
}

func decodeBin(ctx *kong.DecodeContext, target reflect.Value) error {
	var s string
	if err := ctx.Scan.PopValueInto("bin", &s); err != nil {
		return err
	}
	switch target.Kind() {
	case reflect.Uint:
		return set(target, numparse.MaybeBin[uint], s)
	case reflect.Uint8:
		return set(target, numparse.MaybeBin[uint8], s)
	case reflect.Uint16:
		return set(target, numparse.MaybeBin[uint16], s)
	case reflect.Uint32:
		return set(target, numparse.MaybeBin[uint32], s)
	case reflect.Uint64:
		return set(target, numparse.MaybeBin[uint64], s)
	case reflect.Uintptr:
		if target.Type().Bits() == 32 {
			return set(target, numparse.MaybeBin[uint32], s)
		}
		return set(target, numparse.MaybeBin[uint64], s)
	}
	return fmt.Errorf("bin mapper needs an unsigned field, not %s", target.Type())
}

func decodeSI(ctx *kong.DecodeContext, target reflect.Value) error {
	var s string
	if err := ctx.Scan.PopValueInto("si", &s); err != nil {
		return err
	}
	switch target.Kind() {
	case reflect.Int:
		return set(target, numparse.SINumber[int], s)
	case reflect.Int8:
		return set(target, numparse.SINumber[int8], s)
	case reflect.Int16:
		return set(target, numparse.SINumber[int16], s)
	case reflect.Int32:
		return set(target, numparse.SINumber[int32], s)
	case reflect.Int64:
		return set(target, numparse.SINumber[int64], s)
	case reflect.Uint:
		return set(target, numparse.SINumber[uint], s)
	case reflect.Uint8:
		return set(target, numparse.SINumber[uint8], s)
	case reflect.Uint16:
		return set(target, numparse.SINumber[uint16], s)
	case reflect.Uint32:
		return set(target, numparse.SINumber[uint32], s)
	case reflect.Uint64:
		return set(target, numparse.SINumber[uint64], s)
	case reflect.Uintptr:
		if target.Type().Bits() == 32 {
			return set(target, numparse.SINumber[uint32], s)
		}
		return set(target, numparse.SINumber[uint64], s)
	}
	return fmt.Errorf("si mapper needs an integer field, not %s", target.Type())
}

func set[T any](target reflect.Value, parse func(string) (T, error), s string) error {
	v, err := parse(s)
	if err != nil {
		return err
	}
	rv := reflect.ValueOf(v)
	if !rv.Type().ConvertibleTo(target.Type()) {
		return fmt.Errorf("cannot store %s in %s", rv.Type(), target.Type())
	}
	out := rv.Convert(target.Type())
	if !sameNumber(rv, out) {
		return &numparse.Error{Kind: numparse.KindOverflow, Token: s, Negative: rv.CanInt() && rv.Int() < 0}
	}
	target.Set(out)
	return nil
}

// sameNumber reports whether a reflect conversion kept an integer's value.
// Non-integer values are always the same.
func sameNumber(a, b reflect.Value) bool {
	switch {
	case a.CanInt() && b.CanInt():
		return a.Int() == b.Int()
	case a.CanUint() && b.CanUint():
		return a.Uint() == b.Uint()
	case a.CanInt() && b.CanUint():
		return a.Int() >= 0 && uint64(a.Int()) == b.Uint()
	case a.CanUint() && b.CanInt():
		return b.Int() >= 0 && a.Uint() == uint64(b.Int())
	}
	return true
}
