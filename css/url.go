package css

import "strings"

// consumeURL scans the body of a url(...) token. The cursor must be
// positioned just after "url(" has already been consumed.
//
// Spec reference: https://www.w3.org/TR/css-syntax-3/#consume-url-token
func (c *Cursor) consumeURL() Token {
	c.skipWhitespace()

	if c.isEOF() {
		return Token{Type: Url, Value: ""}
	}
	if c.currentByte() == ')' {
		c.advance(1)
		return Token{Type: Url, Value: ""}
	}
	if c.currentByte() == '"' || c.currentByte() == '\'' {
		str := c.consumeString(c.currentByte())
		if str.Type == BadString {
			return c.consumeBadURL()
		}
		return c.urlEnd(str.Value)
	}
	return c.consumeUnquotedURL()
}

// urlEnd consumes trailing whitespace and the closing ')', or enters
// bad-URL recovery if anything else follows.
func (c *Cursor) urlEnd(text string) Token {
	c.skipWhitespace()
	if c.isEOF() {
		return Token{Type: Url, Value: text}
	}
	if c.currentByte() == ')' {
		c.advance(1)
		return Token{Type: Url, Value: text}
	}
	return c.consumeBadURL()
}

// consumeUnquotedURL scans an unquoted url(...) body.
func (c *Cursor) consumeUnquotedURL() Token {
	var sb strings.Builder
	for {
		if c.isEOF() {
			return Token{Type: Url, Value: sb.String()}
		}
		b := c.currentByte()
		switch {
		case isWhitespaceByte(b):
			return c.urlEnd(sb.String())
		case b == ')':
			c.advance(1)
			return Token{Type: Url, Value: sb.String()}
		case isNonPrintable(b) || b == '"' || b == '\'' || b == '(':
			return c.consumeBadURL()
		case b == '\\':
			if c.hasNewlineAt(1) {
				return c.consumeBadURL()
			}
			c.advance(1)
			sb.WriteRune(c.consumeEscape())
		case b == 0:
			sb.WriteRune('\uFFFD')
			c.advance(1)
		default:
			sb.WriteRune(c.consumeRune())
		}
	}
}

// consumeBadURL consumes up to and including the next unescaped ')',
// resynchronizing after a malformed URL body.
func (c *Cursor) consumeBadURL() Token {
	for !c.isEOF() {
		b := c.currentByte()
		if b == ')' {
			c.advance(1)
			break
		}
		if b == '\\' {
			c.advance(1)
			if !c.isEOF() {
				c.consumeRune()
			}
			continue
		}
		c.advance(1)
	}
	return Token{Type: BadUrl}
}

func (c *Cursor) skipWhitespace() {
	for !c.isEOF() && isWhitespaceByte(c.currentByte()) {
		c.advance(1)
	}
}
