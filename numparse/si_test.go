package numparse_test

import (
	"math"
	"testing"

	"github.com/aerth/numflag/numparse"
)

func TestSINumber(t *testing.T) {
	run(t, []testcase{
		{"zero", func() (any, error) { return numparse.SINumber[uint8]("0") }, uint8(0), ""},
		{"one", func() (any, error) { return numparse.SINumber[uint8]("1") }, uint8(1), ""},
		{"neg_one", func() (any, error) { return numparse.SINumber[int8]("-1") }, int8(-1), ""},
		{"limit", func() (any, error) { return numparse.SINumber[uint8]("255") }, uint8(255), ""},
		{"underscores", func() (any, error) { return numparse.SINumber[uint32]("1_000_000") }, uint32(1_000_000), ""},
		{"underscore_symbol", func() (any, error) { return numparse.SINumber[uint32]("1_0k") }, uint32(10_000), ""},

		{"kilo", func() (any, error) { return numparse.SINumber[uint16]("3k") }, uint16(3_000), ""},
		{"kilo_caps", func() (any, error) { return numparse.SINumber[uint16]("3K") }, uint16(3_000), ""},
		{"mega", func() (any, error) { return numparse.SINumber[uint32]("1M") }, uint32(1_000_000), ""},
		{"giga", func() (any, error) { return numparse.SINumber[uint64]("1G") }, uint64(1_000_000_000), ""},
		{"tera", func() (any, error) { return numparse.SINumber[uint64]("1T") }, uint64(1_000_000_000_000), ""},
		{"peta", func() (any, error) { return numparse.SINumber[uint64]("1P") }, uint64(1_000_000_000_000_000), ""},
		{"exa", func() (any, error) { return numparse.SINumber[uint64]("1E") }, uint64(1_000_000_000_000_000_000), ""},
		{"exa_unsigned_wide", func() (any, error) { return numparse.SINumber[uint64]("10E") }, uint64(10_000_000_000_000_000_000), ""},
		{"exa_signed_near_min", func() (any, error) { return numparse.SINumber[int64]("-9E") }, int64(-9_000_000_000_000_000_000), ""},
		{"negative_kilo", func() (any, error) { return numparse.SINumber[int16]("-12k") }, int16(-12_000), ""},
		{"int64_min", func() (any, error) { return numparse.SINumber[int64]("-9_223_372_036_854_775_808") }, int64(math.MinInt64), ""},

		{"milli", func() (any, error) { return numparse.SINumber[uint32]("5000m") }, uint32(5), ""},
		{"negative_milli", func() (any, error) { return numparse.SINumber[int32]("-2000m") }, int32(-2), ""},
		{"micro", func() (any, error) { return numparse.SINumber[uint32]("3000000u") }, uint32(3), ""},
		{"micro_sign", func() (any, error) { return numparse.SINumber[uint32]("1000000µ") }, uint32(1), ""},
		{"nano", func() (any, error) { return numparse.SINumber[uint32]("2_000_000_000n") }, uint32(2), ""},
		{"zero_milli", func() (any, error) { return numparse.SINumber[uint32]("0m") }, uint32(0), ""},

		{"milli_inexact", func() (any, error) { return numparse.SINumber[uint32]("5m") }, nil, "5m is not a whole number"},
		{"micro_inexact", func() (any, error) { return numparse.SINumber[uint32]("1µ") }, nil, "1µ is not a whole number"},
		{"nano_inexact", func() (any, error) { return numparse.SINumber[int64]("1500000000n") }, nil, "1500000000n is not a whole number"},

		{"overflow", func() (any, error) { return numparse.SINumber[uint8]("1k") }, nil, "number too large to fit in target type"},
		{"normal_overflow", func() (any, error) { return numparse.SINumber[uint8]("300") }, nil, "number too large to fit in target type"},
		{"giga_overflow", func() (any, error) { return numparse.SINumber[uint32]("99999G") }, nil, "number too large to fit in target type"},
		{"giga_underflow", func() (any, error) { return numparse.SINumber[int32]("-99999G") }, nil, "number too small to fit in target type"},
		{"exa_overflow_64", func() (any, error) { return numparse.SINumber[uint64]("20E") }, nil, "number too large to fit in target type"},
		{"exa_overflow_signed", func() (any, error) { return numparse.SINumber[int64]("10E") }, nil, "number too large to fit in target type"},
		{"digits_overflow", func() (any, error) { return numparse.SINumber[uint64]("999999999999999999999k") }, nil, "number too large to fit in target type"},

		{"multiple_suffix", func() (any, error) { return numparse.SINumber[uint16]("1kk") }, nil, `invalid digit "k" found at offset 1`},
		{"inner_symbol", func() (any, error) { return numparse.SINumber[uint16]("1k2") }, nil, `invalid digit "k" found at offset 1`},
		{"decimal", func() (any, error) { return numparse.SINumber[uint32]("3.333M") }, nil, `invalid digit "." found at offset 1`},
		{"trailing_dec", func() (any, error) { return numparse.SINumber[uint8]("1.") }, nil, `invalid digit "." found at offset 1`},
		{"leading_underscore", func() (any, error) { return numparse.SINumber[uint32]("_100") }, nil, `invalid digit "_" found at offset 0`},
		{"trailing_underscore", func() (any, error) { return numparse.SINumber[uint32]("100_") }, nil, `invalid digit "_" found at offset 3`},
		{"double_underscore", func() (any, error) { return numparse.SINumber[uint32]("1__0") }, nil, `invalid digit "_" found at offset 1`},
		{"underscore_after_sign", func() (any, error) { return numparse.SINumber[int32]("-_1") }, nil, `invalid digit "_" found at offset 1`},
		{"underscore_before_symbol", func() (any, error) { return numparse.SINumber[uint32]("1_k") }, nil, `invalid digit "_" found at offset 1`},
		{"unsigned_negative", func() (any, error) { return numparse.SINumber[uint32]("-1k") }, nil, `invalid digit "-" found at offset 0`},
		{"space", func() (any, error) { return numparse.SINumber[uint32]("1 k") }, nil, `invalid digit " " found at offset 1`},

		{"leading_si", func() (any, error) { return numparse.SINumber[uint16]("k") }, nil, "no value found before SI symbol"},
		{"signed_si", func() (any, error) { return numparse.SINumber[int16]("-M") }, nil, "no value found before SI symbol"},
		{"unknown", func() (any, error) { return numparse.SINumber[uint16]("1x") }, nil, `unknown SI symbol "x"`},
		{"unknown_caps", func() (any, error) { return numparse.SINumber[uint16]("1Z") }, nil, `unknown SI symbol "Z"`},
		{"unknown_multibyte", func() (any, error) { return numparse.SINumber[uint64]("1˲") }, nil, `unknown SI symbol "˲"`},
		{"invalid_utf8_digit", func() (any, error) { return numparse.SINumber[uint64]("1\xffk") }, nil, `invalid digit "\xff" found at offset 1`},
		{"invalid_utf8_symbol", func() (any, error) { return numparse.SINumber[uint64]("1\xff") }, nil, `unknown SI symbol "\xff"`},
		{"replacement_char", func() (any, error) { return numparse.SINumber[uint64]("1\uFFFDk") }, nil, "invalid digit \"\uFFFD\" found at offset 1"},
		{"empty", func() (any, error) { return numparse.SINumber[uint64]("") }, nil, "cannot parse integer from empty string"},
	})
}

// multi-byte input must be reported, never sliced mid-rune
func TestSINumberMultibyte(t *testing.T) {
	for _, s := range []string{"˲TP", "˲.E", "˲", "1\xff", "€k", "µ"} {
		_, err := numparse.SINumber[uint64](s)
		if err == nil {
			t.Errorf("%q: expected error", s)
		}
	}
	_, err := numparse.SINumber[uint64]("˲TP")
	if numparse.KindOf(err) != numparse.KindInvalidDigit {
		t.Fatalf("˲TP: kind %v: %v", numparse.KindOf(err), err)
	}
	_, err = numparse.SINumber[uint64]("€")
	if numparse.KindOf(err) != numparse.KindUnknownSymbol {
		t.Fatalf("€: kind %v: %v", numparse.KindOf(err), err)
	}
}

func TestSINumberRange(t *testing.T) {
	run(t, []testcase{
		{"minimum", func() (any, error) { return numparse.SINumberRange[uint32]("800", 800, 3_333_000) }, uint32(800), ""},
		{"kilo", func() (any, error) { return numparse.SINumberRange[uint32]("3333k", 800, 3_333_000) }, uint32(3_333_000), ""},
		{"decimal", func() (any, error) { return numparse.SINumberRange[uint32]("3.333M", 800, 3_333_000) }, nil, `invalid digit "." found at offset 1`},
		{"above", func() (any, error) { return numparse.SINumberRange[uint32]("3334k", 800, 3_333_000) }, nil, "3334000 exceeds maximum of 3333000"},
		{"below", func() (any, error) { return numparse.SINumberRange[uint32]("799", 800, 3_333_000) }, nil, "799 is less than minimum of 800"},
		{"scaled_below", func() (any, error) { return numparse.SINumberRange[int32]("-1k", 0, 10) }, nil, "-1000 is less than minimum of 0"},
		{"overflow_first", func() (any, error) { return numparse.SINumberRange[uint16]("1M", 0, 10) }, nil, "number too large to fit in target type"},
	})
}
