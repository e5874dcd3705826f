package numparse

import "testing"

func TestParseInteger(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"", 0},
		{"0", 0},
		{"42", 42},
		{"-17", -17},
		{"+17", 17},
		{"32767", 32767},
		{"-32768", -32768},
	}
	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			r, err := Parse(test.in, false)
			if err != nil {
				t.Fatalf("Parse(%q): %v", test.in, err)
			}
			if r.Sigil != '%' {
				t.Fatalf("Parse(%q) sigil = %c, want %%", test.in, r.Sigil)
			}
			if r.Int != test.want {
				t.Fatalf("Parse(%q) = %d, want %d", test.in, r.Int, test.want)
			}
		})
	}
}

func TestParseIntegerOverflowFallsThroughToSingle(t *testing.T) {
	r, err := Parse("40000", false)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if r.Sigil != '!' {
		t.Fatalf("sigil = %c, want !", r.Sigil)
	}
	if r.Mantissa.Int64() != 40000 || r.Exp10 != 0 {
		t.Fatalf("mantissa/exp10 = %v/%d, want 40000/0", r.Mantissa, r.Exp10)
	}
}

func TestParseHex(t *testing.T) {
	r, err := Parse("&HFF", false)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if r.Sigil != '%' || r.Int != 255 {
		t.Fatalf("got %c %d, want %% 255", r.Sigil, r.Int)
	}
}

func TestParseHexNegativeWraparound(t *testing.T) {
	r, err := Parse("&HFFFF", false)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if r.Int != -1 {
		t.Fatalf("&HFFFF = %d, want -1", r.Int)
	}
}

func TestParseOctal(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"&O17", 15},
		{"&17", 15},
		{"&O1 7", 15},
	}
	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			r, err := Parse(test.in, false)
			if err != nil {
				t.Fatalf("Parse(%q): %v", test.in, err)
			}
			if r.Int != test.want {
				t.Fatalf("Parse(%q) = %d, want %d", test.in, r.Int, test.want)
			}
		})
	}
}

func TestParseDecimalFloat(t *testing.T) {
	r, err := Parse("1.5", false)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if r.Sigil != '!' {
		t.Fatalf("sigil = %c, want !", r.Sigil)
	}
	if r.Mantissa.Int64() != 15 || r.Exp10 != -1 {
		t.Fatalf("mantissa/exp10 = %v/%d, want 15/-1", r.Mantissa, r.Exp10)
	}
}

func TestParseDoubleExponent(t *testing.T) {
	r, err := Parse("1.5D+10", false)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if r.Sigil != '#' {
		t.Fatalf("sigil = %c, want #", r.Sigil)
	}
	if r.Mantissa.Int64() != 15 || r.Exp10 != 9 {
		t.Fatalf("mantissa/exp10 = %v/%d, want 15/9", r.Mantissa, r.Exp10)
	}
}

func TestParseTrailingSigilForcesType(t *testing.T) {
	r, err := Parse("5#", false)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if r.Sigil != '#' {
		t.Fatalf("sigil = %c, want #", r.Sigil)
	}
}

func TestParseTrailingPercentDoesNotForceInteger(t *testing.T) {
	r, err := Parse("1.5%", false)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if r.Sigil != '!' {
		t.Fatalf("sigil = %c, want ! (trailing %% must not force Integer)", r.Sigil)
	}
}

func TestScanDecimalELRollback(t *testing.T) {
	word, consumed := ScanDecimal("5ELSE")
	if word != "5" || consumed != 1 {
		t.Fatalf("ScanDecimal(5ELSE) = %q,%d, want 5,1", word, consumed)
	}
}

func TestScanDecimalEQRollback(t *testing.T) {
	word, consumed := ScanDecimal("5EQV")
	if word != "5" || consumed != 1 {
		t.Fatalf("ScanDecimal(5EQV) = %q,%d, want 5,1", word, consumed)
	}
}

func TestParseSyntaxError(t *testing.T) {
	if _, err := Parse("1.2.3", false); err == nil {
		t.Fatalf("expected Syntax Error for 1.2.3")
	}
}

func TestParseAllowNonNumLeniency(t *testing.T) {
	r, err := Parse("ABC", true)
	if err != nil {
		t.Fatalf("Parse with allowNonNum: %v", err)
	}
	if r.Sigil != '%' || r.Int != 0 {
		t.Fatalf("got %c %d, want %% 0", r.Sigil, r.Int)
	}
}
