package css

import (
	"strconv"
	"strings"
)

// consumeNumeric scans the numeric grammar
//
//	[+-]? ( \d+ (\. \d+)? | \. \d+ ) ( [eE] [+-]? \d+ )?
//
// and emits Number, Percentage, or Dimension depending on what follows.
//
// Spec reference: https://www.w3.org/TR/css-syntax-3/#consume-numeric-token
func (c *Cursor) consumeNumeric() Token {
	start := c.pos
	signed := false
	isInteger := true

	if c.currentByte() == '+' || c.currentByte() == '-' {
		signed = true
		c.advance(1)
	}

	c.consumeDigits()

	if !c.isEOF() && c.currentByte() == '.' && c.hasAtLeast(1) && isDigitByte(c.byteAt(1)) {
		isInteger = false
		c.advance(1)
		c.consumeDigits()
	}

	if !c.isEOF() && (c.currentByte() == 'e' || c.currentByte() == 'E') {
		if c.hasAtLeast(1) && isDigitByte(c.byteAt(1)) {
			isInteger = false
			c.advance(1)
			c.consumeDigits()
		} else if c.hasAtLeast(1) && (c.byteAt(1) == '+' || c.byteAt(1) == '-') &&
			c.hasAtLeast(2) && isDigitByte(c.byteAt(2)) {
			isInteger = false
			c.advance(2)
			c.consumeDigits()
		}
	}

	numeric := parseNumericValue(c.sliceFrom(start), isInteger, signed)

	if !c.isEOF() && c.currentByte() == '%' {
		c.advance(1)
		return Token{Type: Percentage, Numeric: numeric}
	}
	if c.isIdentStart(0) {
		return Token{Type: Dimension, Numeric: numeric, Unit: c.consumeName()}
	}
	return Token{Type: Number, Numeric: numeric}
}

func (c *Cursor) consumeDigits() {
	for !c.isEOF() && isDigitByte(c.currentByte()) {
		c.advance(1)
	}
}

// parseNumericValue parses the literal text of a number into a
// NumericValue. A leading '+' is stripped before parsing: it is tokenizer-
// only syntax and has no semantic weight of its own once Signed is set.
//
// If the literal is an integer but overflows 64 bits, IntValue is left nil
// and the token carries only its float Value - the literal, as an integer,
// simply does not fit.
func parseNumericValue(literal string, isInteger, signed bool) NumericValue {
	text := strings.TrimPrefix(literal, "+")

	value, _ := strconv.ParseFloat(text, 64)
	nv := NumericValue{Value: value, Signed: signed}

	if isInteger {
		if iv, err := strconv.ParseInt(text, 10, 64); err == nil {
			nv.IntValue = &iv
		}
	}
	return nv
}
