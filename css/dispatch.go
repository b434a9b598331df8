package css

// dispatch produces the next token starting at the cursor's current
// position. It first consumes any leading comments, then switches on the
// leading byte to decide which scanner to delegate to.
//
// Spec reference: https://www.w3.org/TR/css-syntax-3/#consume-token
func (c *Cursor) dispatch() Token {
	c.consumeComments()
	if c.isEOF() {
		return Token{Type: EOF}
	}

	b := c.currentByte()
	switch {
	case isWhitespaceByte(b):
		return c.consumeWhitespace()
	case b == '"':
		return c.consumeString('"')
	case b == '\'':
		return c.consumeString('\'')
	case b == '#':
		return c.consumeHash()
	case b == '$' || b == '*' || b == '^' || b == '~':
		return c.consumeMatchOrDelim(b)
	case b == '|':
		return c.consumePipe()
	case b == '(':
		c.advance(1)
		return Token{Type: ParenthesisBlock}
	case b == ')':
		c.advance(1)
		return Token{Type: CloseParenthesis}
	case b == '[':
		c.advance(1)
		return Token{Type: SquareBracketBlock}
	case b == ']':
		c.advance(1)
		return Token{Type: CloseSquareBracket}
	case b == '{':
		c.advance(1)
		return Token{Type: CurlyBracketBlock}
	case b == '}':
		c.advance(1)
		return Token{Type: CloseCurlyBracket}
	case b == ':':
		c.advance(1)
		return Token{Type: Colon}
	case b == ',':
		c.advance(1)
		return Token{Type: Comma}
	case b == ';':
		c.advance(1)
		return Token{Type: Semicolon}
	case b == '+' || b == '-' || b == '.':
		if c.startsNumber() {
			return c.consumeNumeric()
		}
		if b == '-' {
			if c.hasPrefix("-->") {
				c.advance(3)
				return Token{Type: CDC}
			}
			if c.isIdentStart(0) {
				return c.consumeIdentLike()
			}
		}
		c.advance(1)
		return delim(rune(b))
	case b >= '0' && b <= '9':
		return c.consumeNumeric()
	case b == '<':
		if c.hasPrefix("<!--") {
			c.advance(4)
			return Token{Type: CDO}
		}
		c.advance(1)
		return delim('<')
	case b == '@':
		c.advance(1)
		if c.isIdentStart(0) {
			name := c.consumeName()
			return Token{Type: AtKeyword, Value: name}
		}
		return delim('@')
	case b == 'u' || b == 'U':
		if c.isUnicodeRangeStart() {
			return c.consumeUnicodeRange()
		}
		return c.consumeIdentLike()
	case b == '\\':
		if c.isValidEscapeAt(0) {
			return c.consumeIdentLike()
		}
		c.advance(1)
		return delim('\\')
	case b == '_' || b == 0 || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z'):
		return c.consumeIdentLike()
	default:
		if b >= 0x80 {
			return c.consumeIdentLike()
		}
		r := c.consumeRune()
		return delim(r)
	}
}

// consumeComments skips any number of back-to-back CSS comments
// (/* ... */). An unterminated comment consumes to EOF without error;
// comments do not nest.
func (c *Cursor) consumeComments() {
	for c.hasPrefix("/*") {
		c.advance(2)
		for {
			if c.isEOF() {
				return
			}
			if c.currentByte() == '*' && c.hasAtLeast(1) && c.byteAt(1) == '/' {
				c.advance(2)
				break
			}
			c.advance(1)
		}
	}
}

func (c *Cursor) consumeWhitespace() Token {
	for !c.isEOF() && isWhitespaceByte(c.currentByte()) {
		c.advance(1)
	}
	return Token{Type: WhiteSpace}
}

func (c *Cursor) consumeHash() Token {
	c.advance(1) // '#'
	if c.isIdentStart(0) {
		return Token{Type: IDHash, Value: c.consumeName()}
	}
	if c.isNameContinuationAt(0) {
		return Token{Type: Hash, Value: c.consumeName()}
	}
	return delim('#')
}

func (c *Cursor) consumeMatchOrDelim(b byte) Token {
	var tt TokenType
	switch b {
	case '$':
		tt = SuffixMatch
	case '*':
		tt = SubstringMatch
	case '^':
		tt = PrefixMatch
	case '~':
		tt = IncludeMatch
	}
	if c.hasAtLeast(1) && c.byteAt(1) == '=' {
		c.advance(2)
		return Token{Type: tt}
	}
	c.advance(1)
	return delim(rune(b))
}

func (c *Cursor) consumePipe() Token {
	if c.hasAtLeast(1) && c.byteAt(1) == '=' {
		c.advance(2)
		return Token{Type: DashMatch}
	}
	if c.hasAtLeast(1) && c.byteAt(1) == '|' {
		c.advance(2)
		return Token{Type: Column}
	}
	c.advance(1)
	return delim('|')
}

// startsNumber reports whether the numeric grammar can begin at the
// cursor's current position, which must hold '+', '-', or '.'.
func (c *Cursor) startsNumber() bool {
	switch c.currentByte() {
	case '+', '-':
		if c.hasAtLeast(1) && isDigitByte(c.byteAt(1)) {
			return true
		}
		return c.hasAtLeast(1) && c.byteAt(1) == '.' &&
			c.hasAtLeast(2) && isDigitByte(c.byteAt(2))
	case '.':
		return c.hasAtLeast(1) && isDigitByte(c.byteAt(1))
	}
	return false
}

// isIdentStart reports whether an identifier can start at the given offset
// from the cursor's current position: a letter, '_', NUL, non-ASCII byte, a
// valid escape, or '-' followed by any ident-start character or '-'.
func (c *Cursor) isIdentStart(offset int) bool {
	if !c.hasAtLeast(offset) {
		return false
	}
	b := c.byteAt(offset)
	switch {
	case b == '_' || b == 0:
		return true
	case (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z'):
		return true
	case b >= 0x80:
		return true
	case b == '\\':
		return c.isValidEscapeAt(offset)
	case b == '-':
		if !c.hasAtLeast(offset + 1) {
			return false
		}
		if c.byteAt(offset+1) == '-' {
			return true
		}
		return c.isIdentStart(offset + 1)
	default:
		return false
	}
}

// isNameContinuationAt reports whether the byte (or escape) at the given
// offset is a CSS name character: [A-Za-z0-9_-], non-ASCII, or a valid
// escape.
func (c *Cursor) isNameContinuationAt(offset int) bool {
	if !c.hasAtLeast(offset) {
		return false
	}
	b := c.byteAt(offset)
	switch {
	case isNameByte(b):
		return true
	case b >= 0x80:
		return true
	case b == '\\':
		return c.isValidEscapeAt(offset)
	default:
		return false
	}
}

// isValidEscapeAt reports whether a backslash at the given offset starts a
// valid escape: it must not be followed by a newline. A backslash at the
// very end of input is a valid escape (it decodes to U+FFFD).
func (c *Cursor) isValidEscapeAt(offset int) bool {
	if !c.hasAtLeast(offset) || c.byteAt(offset) != '\\' {
		return false
	}
	if !c.hasAtLeast(offset + 1) {
		return true
	}
	return !c.hasNewlineAt(offset + 1)
}

// isUnicodeRangeStart reports whether the cursor is positioned at 'u'/'U'
// followed by '+' and then a hex digit or '?'.
func (c *Cursor) isUnicodeRangeStart() bool {
	return c.hasAtLeast(1) && c.byteAt(1) == '+' &&
		c.hasAtLeast(2) && (isHexDigitByte(c.byteAt(2)) || c.byteAt(2) == '?')
}

func isWhitespaceByte(b byte) bool {
	switch b {
	case '\t', '\n', '\r', '\f', ' ':
		return true
	}
	return false
}

func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHexDigitByte(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isNameByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9') || b == '_' || b == '-'
}

func isNonPrintable(b byte) bool {
	return (b >= 0x01 && b <= 0x08) || b == 0x0B || (b >= 0x0E && b <= 0x1F) || b == 0x7F
}
