package cli

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"4000", "$4,000.00"},
		{"146000", "$146,000.00"},
		{"1234567.89", "$1,234,567.89"},
		{"-500", "-$500.00"},
		{"33.333", "$33.33"},
		{"0.5", "$0.50"},
	}
	for _, tc := range cases {
		d := decimal.RequireFromString(tc.in)
		if got := FormatCurrency(d); got != tc.want {
			t.Errorf("FormatCurrency(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4500, "-4,500"},
	}
	for _, tc := range cases {
		if got := FormatNumber(tc.in); got != tc.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(2.6667); got != "2.7%" {
		t.Errorf("FormatPercent(2.6667) = %q, want %q", got, "2.7%")
	}
	if got := FormatPercent(150); got != "150.0%" {
		t.Errorf("FormatPercent(150) = %q, want %q", got, "150.0%")
	}
}

func TestFormatDimensions(t *testing.T) {
	if got := FormatDimensions(12, 10, 8); got != "12x10x8 ft" {
		t.Errorf("got %q, want %q", got, "12x10x8 ft")
	}
	if got := FormatDimensions(0, 10, 8); got != "-" {
		t.Errorf("missing length: got %q, want -", got)
	}
	if got := FormatDimensions(12.5, 10, 8); got != "12.5x10x8 ft" {
		t.Errorf("got %q, want %q", got, "12.5x10x8 ft")
	}
}

func TestFormatSqft(t *testing.T) {
	if got := FormatSqft(1850); got != "1,850 sq ft" {
		t.Errorf("got %q, want %q", got, "1,850 sq ft")
	}
}

func TestTitleCase(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"in_progress", "In Progress"},
		{"planning", "Planning"},
		{"on_hold", "On Hold"},
		{"sf_class_a", "Sf Class A"},
	}
	for _, tc := range cases {
		if got := TitleCase(tc.in); got != tc.want {
			t.Errorf("TitleCase(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatCondition(t *testing.T) {
	if got := FormatCondition(3); got != "3/5" {
		t.Errorf("got %q, want 3/5", got)
	}
}
