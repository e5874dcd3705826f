package numfmt

import (
	"testing"

	"github.com/dbasic/gwvalue/mbf"
)

func single(t *testing.T, v float64) mbf.Single {
	t.Helper()
	s, err := mbf.SingleFromValue(v)
	if err != nil {
		t.Fatalf("SingleFromValue(%v): %v", v, err)
	}
	return s
}

func double(t *testing.T, v float64) mbf.Double {
	t.Helper()
	d, err := mbf.DoubleFromValue(v)
	if err != nil {
		t.Fatalf("DoubleFromValue(%v): %v", v, err)
	}
	return d
}

func TestListingSingle(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{12345.678, "12345.68!"},
		{5, "5!"},
		{1.5, "1.5!"},
		{0, "0!"},
		{0.001, ".001!"},
		{-2.5, "-2.5!"},
		{100000000, "1E+08"},
		{1.5e30, "1.5E+30"},
		{-1e-9, "-1E-09"},
	}
	for _, test := range tests {
		t.Run(test.want, func(t *testing.T) {
			if got := Listing(single(t, test.in)); got != test.want {
				t.Fatalf("Listing(%v) = %q, want %q", test.in, got, test.want)
			}
		})
	}
}

func TestListingDouble(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2.5, "2.5#"},
		{4, "4#"},
		{0, "0#"},
		{1e20, "1D+20"},
	}
	for _, test := range tests {
		t.Run(test.want, func(t *testing.T) {
			if got := Listing(double(t, test.in)); got != test.want {
				t.Fatalf("Listing(%v) = %q, want %q", test.in, got, test.want)
			}
		})
	}
}

func TestStrAndWrite(t *testing.T) {
	s := single(t, 1.5)
	if got := Str(s); got != " 1.5" {
		t.Fatalf("Str(1.5) = %q, want %q", got, " 1.5")
	}
	if got := Str(single(t, -1.5)); got != "-1.5" {
		t.Fatalf("Str(-1.5) = %q, want %q", got, "-1.5")
	}
	if got := Write(s); got != "1.5" {
		t.Fatalf("Write(1.5) = %q, want %q", got, "1.5")
	}
	if got := Str(single(t, 0)); got != " 0" {
		t.Fatalf("Str(0) = %q, want %q", got, " 0")
	}
}

func TestFormatNumberFixed(t *testing.T) {
	tests := []struct {
		name         string
		in           float64
		tokens       string
		before, dec  int
		want         string
	}{
		{"basic", 1.2, "##.##", 2, 2, " 1.20"},
		{"half", 0.5, "##.##", 2, 2, " 0.50"},
		{"zero", 0, "##.##", 2, 2, " 0.00"},
		{"negative", -1.2, "##.##", 2, 2, "-1.20"},
		{"overflow", -12.2, "##.##", 2, 2, "%-12.20"},
		{"integer field", 42, "###", 3, 0, " 42"},
		{"leading plus", 1.2, "+#.##", 1, 2, "+1.20"},
		{"trailing minus neg", -1.2, "#.##-", 1, 2, "1.20-"},
		{"trailing minus pos", 1.2, "#.##-", 1, 2, "1.20 "},
		{"dollar", 1.2, "$##.##", 2, 2, " $1.20"},
		{"star fill", 1.2, "**#.##", 3, 2, "**1.20"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := FormatNumber(single(t, test.in), test.tokens, test.before, test.dec)
			if err != nil {
				t.Fatalf("FormatNumber: %v", err)
			}
			if got != test.want {
				t.Fatalf("FormatNumber(%v, %q) = %q, want %q", test.in, test.tokens, got, test.want)
			}
		})
	}
}

func TestFormatNumberTooManyDigits(t *testing.T) {
	_, err := FormatNumber(single(t, 1), "#", 20, 10)
	if err == nil {
		t.Fatalf("expected Illegal Function Call for digits_before+decimals > 24")
	}
}

func TestFormatNumberScientific(t *testing.T) {
	tests := []struct {
		name        string
		in          float64
		tokens      string
		before, dec int
		want        string
	}{
		{"zero single", 0, "#^^^^", 1, 0, " E+00"},
		{"one no digits", 1, "#^^^^", 1, 0, " E+01"},
		{"with decimals", 123, "#.####^^^^", 1, 4, " .1230E+03"},
		{"negative", -123, "#.####^^^^", 1, 4, "-.1230E+03"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := FormatNumber(single(t, test.in), test.tokens, test.before, test.dec)
			if err != nil {
				t.Fatalf("FormatNumber: %v", err)
			}
			if got != test.want {
				t.Fatalf("FormatNumber(%v, %q) = %q, want %q", test.in, test.tokens, got, test.want)
			}
		})
	}
}

func TestFormatNumberScientificZeroDouble(t *testing.T) {
	got, err := FormatNumber(double(t, 0), "#^^^^", 1, 0)
	if err != nil {
		t.Fatalf("FormatNumber: %v", err)
	}
	if got != "0D+00" {
		t.Fatalf("FormatNumber(Double 0, #^^^^) = %q, want %q", got, "0D+00")
	}
}
