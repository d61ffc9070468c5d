package utils

import "testing"

func TestFormatRand(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "R 0"},
		{999, "R 999"},
		{1000, "R 1,000"},
		{12500, "R 12,500"},
		{1234567, "R 1,234,567"},
		{-8900, "-R 8,900"},
	}
	for _, tc := range cases {
		if got := FormatRand(tc.in); got != tc.want {
			t.Fatalf("FormatRand(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseRandToInt(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"R 1,000", 1000},
		{"1000", 1000},
		{"r 12,500", 12500},
	}
	for _, tc := range cases {
		got, err := ParseRandToInt(tc.in)
		if err != nil {
			t.Fatalf("ParseRandToInt(%q) error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseRandToInt(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
	if _, err := ParseRandToInt("  "); err == nil {
		t.Fatalf("expected error for blank input")
	}
}

func TestReferenceShapes(t *testing.T) {
	ref := NewBookingReference()
	if len(ref) != len("TM-")+8 {
		t.Fatalf("booking reference %q has wrong length", ref)
	}
	if ref[:3] != "TM-" {
		t.Fatalf("booking reference %q missing TM- prefix", ref)
	}
	for _, c := range ref[3:] {
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			t.Fatalf("booking reference %q has invalid character %q", ref, c)
		}
	}

	code := NewDiscountCode()
	if code[:8] != "LOYAL15-" {
		t.Fatalf("discount code %q missing LOYAL15- prefix", code)
	}
}
