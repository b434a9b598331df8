package css

import "unicode/utf8"

// Cursor is a byte-indexed view over a CSS source string, with a one-slot
// pushback buffer layered on top so callers can peek a token without
// committing to it.
//
// A Cursor is mutable and is meant to be owned by a single caller for the
// duration of tokenization; it does not suspend, block, or hold references
// into anything but its own input string.
type Cursor struct {
	input    string
	pos      int
	pushback *Token
}

// NewCursor returns a new Cursor positioned at the start of input.
func NewCursor(input string) *Cursor {
	return &Cursor{input: input}
}

// Next returns the next token from the input, consuming it. Once the input
// is exhausted, Next returns a Token with Type EOF on every subsequent call.
func (c *Cursor) Next() Token {
	if c.pushback != nil {
		t := *c.pushback
		c.pushback = nil
		return t
	}
	return c.dispatch()
}

// Peek returns the next token without consuming it: the token is buffered
// so the following Next call returns the same value.
func (c *Cursor) Peek() Token {
	if c.pushback == nil {
		t := c.dispatch()
		c.pushback = &t
	}
	return *c.pushback
}

// PushBack makes t the next token returned by Next. It panics if a token is
// already buffered: at most one token of lookahead is supported, and a
// caller that violates this has a bug.
func (c *Cursor) PushBack(t Token) {
	if c.pushback != nil {
		panic("css: PushBack called with a token already buffered")
	}
	c.pushback = &t
}

// isEOF reports whether the cursor has consumed the entire input.
func (c *Cursor) isEOF() bool {
	return c.pos >= len(c.input)
}

// hasAtLeast reports whether at least n+1 bytes remain counting the current
// byte (n more after it), i.e. whether byteAt(n) is safe to call.
func (c *Cursor) hasAtLeast(n int) bool {
	return c.pos+n < len(c.input)
}

// currentByte returns the byte at the cursor's current position. Callers
// must check isEOF first.
func (c *Cursor) currentByte() byte {
	return c.input[c.pos]
}

// byteAt returns the byte at the given offset from the current position.
// Callers must check hasAtLeast(offset) first.
func (c *Cursor) byteAt(offset int) byte {
	return c.input[c.pos+offset]
}

// hasNewlineAt reports whether the byte at the given offset is a CSS line
// terminator (\n, \r, or \f).
func (c *Cursor) hasNewlineAt(offset int) bool {
	if !c.hasAtLeast(offset) {
		return false
	}
	switch c.byteAt(offset) {
	case '\n', '\r', '\f':
		return true
	}
	return false
}

// advance moves the cursor forward by n bytes.
func (c *Cursor) advance(n int) {
	c.pos += n
}

// consumeRune decodes the rune at the current position, advances past it by
// its UTF-8 byte width, and returns it. It must not be called at EOF.
func (c *Cursor) consumeRune() rune {
	r, size := utf8.DecodeRuneInString(c.input[c.pos:])
	c.pos += size
	return r
}

// hasPrefix reports whether the remaining input starts with needle.
func (c *Cursor) hasPrefix(needle string) bool {
	if c.pos+len(needle) > len(c.input) {
		return false
	}
	return c.input[c.pos:c.pos+len(needle)] == needle
}

// sliceFrom returns the input between start and the cursor's current
// position.
func (c *Cursor) sliceFrom(start int) string {
	return c.input[start:c.pos]
}

// remaining returns the unconsumed tail of the input.
func (c *Cursor) remaining() string {
	return c.input[c.pos:]
}
