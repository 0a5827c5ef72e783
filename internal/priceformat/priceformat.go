// Package priceformat implements the bond-market "whole-32nds-eighths"
// fractional price notation and its round trip to decimal.Decimal.
//
// Encoding (decimal -> "I-xyZ"):
//
//	I  = integer part of the price
//	T  = round((p - I) * 256), the tick count on the 1/256 grid
//	xy = T / 8, zero padded to two digits (00-31)
//	z  = T % 8, rendered as '+' when it equals 4
//
// Decoding reverses this: value = I + xy/32 + z'/256, where z' is 4 when
// the glyph is '+' and the literal digit otherwise.
package priceformat

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yanun0323/decimal"
)

// Encode renders a decimal price on the 1/256 grid as "I-xyZ".
func Encode(p decimal.Decimal) string {
	whole := p.Floor(0)
	frac := p.Sub(whole)

	ticks := frac.Mul(decimal.NewFromInt(256)).Round(0)
	t := ticks.IntPart()

	xy := t / 8
	z := t % 8

	glyph := strconv.FormatInt(z, 10)
	if z == 4 {
		glyph = "+"
	}

	return fmt.Sprintf("%s-%02d%s", whole.String(), xy, glyph)
}

// Decode parses "I-xyZ" into a decimal price on the 1/256 grid.
func Decode(s string) (decimal.Decimal, error) {
	dash := strings.IndexByte(s, '-')
	if dash < 0 || dash+3 > len(s) {
		return decimal.Decimal(""), fmt.Errorf("priceformat: malformed price %q", s)
	}

	wholePart := s[:dash]
	xyPart := s[dash+1 : dash+3]
	glyph := s[dash+3:]

	whole, err := decimal.NewFromString(wholePart)
	if err != nil {
		return decimal.Decimal(""), fmt.Errorf("priceformat: bad integer part %q: %w", s, err)
	}

	xy, err := strconv.ParseInt(xyPart, 10, 64)
	if err != nil || xy < 0 || xy > 31 {
		return decimal.Decimal(""), fmt.Errorf("priceformat: bad xy segment %q", s)
	}

	var z int64
	switch glyph {
	case "+":
		z = 4
	case "0", "1", "2", "3", "4", "5", "6", "7":
		z, err = strconv.ParseInt(glyph, 10, 64)
		if err != nil {
			return decimal.Decimal(""), fmt.Errorf("priceformat: bad z segment %q", s)
		}
	default:
		return decimal.Decimal(""), fmt.Errorf("priceformat: bad z segment %q", s)
	}

	ticks := xy*8 + z
	fraction := decimal.NewFromInt(ticks).Div(decimal.NewFromInt(256))
	return whole.Add(fraction), nil
}
