package css

import "testing"

func TestURLEmptyOnWhitespaceThenEOF(t *testing.T) {
	toks := allTokens("url(   ")
	if len(toks) != 1 || toks[0].Type != Url || toks[0].Value != "" {
		t.Fatalf("got %v", toks)
	}
}

func TestURLUnquotedWithEscape(t *testing.T) {
	toks := allTokens(`url(foo\ bar.png)`)
	if len(toks) != 1 || toks[0].Type != Url || toks[0].Value != "foo bar.png" {
		t.Fatalf("got %v", toks)
	}
}

func TestURLBadOnUnescapedQuoteInBody(t *testing.T) {
	toks := allTokens(`url(a"b)`)
	if len(toks) != 1 || toks[0].Type != BadUrl {
		t.Fatalf("got %v", toks)
	}
}

func TestURLBadRecoveryEscapesCloseParen(t *testing.T) {
	// The escaped ')' inside bad-URL recovery must not close the token;
	// only the next *unescaped* ')' ends recovery.
	toks := allTokens(`url(a"\))rest`)
	if len(toks) != 2 {
		t.Fatalf("got %v", toks)
	}
	if toks[0].Type != BadUrl {
		t.Errorf("token 0: got %v", toks[0])
	}
	if toks[1].Type != Ident || toks[1].Value != "rest" {
		t.Errorf("token 1: got %v", toks[1])
	}
}

func TestURLQuotedBadStringPropagates(t *testing.T) {
	toks := allTokens("url('unterminated\n")
	if len(toks) != 1 || toks[0].Type != BadUrl {
		t.Fatalf("got %v", toks)
	}
}

func TestURLTrailingGarbageIsBad(t *testing.T) {
	toks := allTokens(`url(a b)`)
	if len(toks) != 1 || toks[0].Type != BadUrl {
		t.Fatalf("got %v", toks)
	}
}

func TestURLNonPrintableIsBad(t *testing.T) {
	toks := allTokens("url(\x01)")
	if len(toks) != 1 || toks[0].Type != BadUrl {
		t.Fatalf("got %v", toks)
	}
}
