package css

import "strings"

// consumeString scans a quoted string. The cursor must be positioned at the
// opening quote character, which this function consumes. An unescaped
// newline inside the string yields BadString, with the cursor left
// positioned at the newline (it is not consumed, so the next token is the
// whitespace run starting there). Reaching EOF before the closing quote
// closes the string successfully with whatever was accumulated.
//
// Spec reference: https://www.w3.org/TR/css-syntax-3/#consume-string-token
func (c *Cursor) consumeString(quote byte) Token {
	c.advance(1) // opening quote

	var sb strings.Builder
	for {
		if c.isEOF() {
			return Token{Type: QuotedString, Value: sb.String()}
		}
		b := c.currentByte()
		switch {
		case b == quote:
			c.advance(1)
			return Token{Type: QuotedString, Value: sb.String()}
		case b == '\n' || b == '\r' || b == '\f':
			return Token{Type: BadString, Value: sb.String()}
		case b == '\\':
			if !c.hasAtLeast(1) {
				// Backslash at EOF: the string ends without a closing
				// quote, treated as a successful close.
				c.advance(1)
				return Token{Type: QuotedString, Value: sb.String()}
			}
			switch c.byteAt(1) {
			case '\n', '\f':
				c.advance(2)
			case '\r':
				c.advance(2)
				if !c.isEOF() && c.currentByte() == '\n' {
					c.advance(1)
				}
			default:
				c.advance(1)
				sb.WriteRune(c.consumeEscape())
			}
		case b == 0:
			sb.WriteRune('\uFFFD')
			c.advance(1)
		default:
			sb.WriteRune(c.consumeRune())
		}
	}
}
