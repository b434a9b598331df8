package css

import "testing"

func TestNumericIntegerOverflowFallsBackToFloat(t *testing.T) {
	// 64-bit signed integers max out at 9223372036854775807; one digit more
	// overflows, and per the documented open-question resolution this
	// falls back to a float-only Number rather than panicking.
	toks := allTokens("99999999999999999999")
	if len(toks) != 1 {
		t.Fatalf("got %v", toks)
	}
	tok := toks[0]
	if tok.Type != Number {
		t.Fatalf("got %v", tok)
	}
	if tok.Numeric.IntValue != nil {
		t.Errorf("expected IntValue nil on overflow, got %v", *tok.Numeric.IntValue)
	}
	if tok.Numeric.Value <= 0 {
		t.Errorf("expected a positive float Value, got %v", tok.Numeric.Value)
	}
}

func TestNumericIntegerExclusivity(t *testing.T) {
	cases := map[string]bool{
		"1":     true,
		"1.0":   false,
		"1e2":   false,
		"1.5e2": false,
		"-1":    true,
		"+1":    true,
	}
	for input, wantInt := range cases {
		toks := allTokens(input)
		if len(toks) != 1 || toks[0].Type != Number {
			t.Fatalf("input %q: got %v", input, toks)
		}
		gotInt := toks[0].Numeric.IntValue != nil
		if gotInt != wantInt {
			t.Errorf("input %q: IntValue present = %v, want %v", input, gotInt, wantInt)
		}
	}
}

func TestNumericLeadingPlusStripped(t *testing.T) {
	toks := allTokens("+5")
	if len(toks) != 1 || toks[0].Type != Number {
		t.Fatalf("got %v", toks)
	}
	if !toks[0].Numeric.Signed {
		t.Errorf("expected Signed true")
	}
	if toks[0].Numeric.IntValue == nil || *toks[0].Numeric.IntValue != 5 {
		t.Errorf("got %+v", toks[0].Numeric)
	}
}

func TestNumericDotWithoutDigitIsDelim(t *testing.T) {
	toks := allTokens(". a")
	if len(toks) != 3 || toks[0].Type != Delim || toks[0].Value != "." {
		t.Fatalf("got %v", toks)
	}
}

func TestNumericExponentRequiresDigit(t *testing.T) {
	// "1e" with no following digit: the 'e' is not part of the number, and
	// since 'e' is an ident-start character, a Dimension is emitted instead
	// of a bare Number followed by an Ident.
	toks := allTokens("1e")
	if len(toks) != 1 || toks[0].Type != Dimension || toks[0].Unit != "e" {
		t.Fatalf("got %v", toks)
	}
}
