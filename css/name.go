package css

import "strings"

// consumeName scans a CSS name: a maximal run of name characters
// ([A-Za-z0-9_-], non-ASCII bytes, NUL, or escapes).
//
// Spec reference: https://www.w3.org/TR/css-syntax-3/#consume-name
func (c *Cursor) consumeName() string {
	var sb strings.Builder
	for {
		if c.isEOF() {
			return sb.String()
		}
		b := c.currentByte()
		switch {
		case isNameByte(b):
			sb.WriteByte(b)
			c.advance(1)
		case b == 0:
			sb.WriteRune('\uFFFD')
			c.advance(1)
		case b == '\\':
			if !c.isValidEscapeAt(0) {
				return sb.String()
			}
			c.advance(1)
			sb.WriteRune(c.consumeEscape())
		case b >= 0x80:
			sb.WriteRune(c.consumeRune())
		default:
			return sb.String()
		}
	}
}

// consumeIdentLike scans a name and, depending on what follows, emits
// Ident, Function, or delegates to the URL scanner for "url(".
//
// Spec reference: https://www.w3.org/TR/css-syntax-3/#consume-ident-like-token
func (c *Cursor) consumeIdentLike() Token {
	name := c.consumeName()
	if !c.isEOF() && c.currentByte() == '(' {
		c.advance(1)
		if strings.EqualFold(name, "url") {
			return c.consumeURL()
		}
		return Token{Type: Function, Value: name}
	}
	return Token{Type: Ident, Value: name}
}
