package main

import (
	"errors"
	"strings"
	"testing"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		input string
		want  uint64
	}{
		{"0B", 0},
		{"10B", 10},
		{"4K", 4096},
		{"100M", 100 << 20},
		{"500M", 500 * 1024 * 1024},
		{"1G", 1 << 30},
		{"2T", 2 << 40},
	}
	for _, test := range tests {
		got, err := parseSize(test.input)
		if err != nil {
			t.Errorf("parseSize(%q): %s", test.input, err)
			continue
		}
		if got != test.want {
			t.Errorf("parseSize(%q) = %d, want %d", test.input, got, test.want)
		}
	}
}

func TestParseSizeInvalid(t *testing.T) {
	for _, input := range []string{
		"", "M", "100", "10X", "-5M", "+5M", "1.5G", " 5M", "5m", "5 M",
		"99999999999T",
	} {
		if _, err := parseSize(input); !errors.Is(err, errInvalidSizeFormat) {
			t.Errorf("parseSize(%q) error = %v, want errInvalidSizeFormat",
				input, err)
		}
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		input uint64
		want  string
	}{
		{0, "0.00 B"},
		{1, "1.00 B"},
		{1023, "1023.00 B"},
		{1024, "1.00 K"},
		{1536, "1.50 K"},
		{100 << 20, "100.00 M"},
		{1 << 30, "1.00 G"},
		{5 << 40, "5.00 T"},
		{1 << 50, "1024.00 T"},
	}
	for _, test := range tests {
		if got := formatSize(test.input); got != test.want {
			t.Errorf("formatSize(%d) = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestFormatSizeChoosesLargestUnit(t *testing.T) {
	for _, n := range []uint64{1 << 30, 1<<30 + 1, 3 << 30, 1<<40 - 1, 1 << 40,
		7<<40 + 12345} {
		got := formatSize(n)
		if !strings.HasSuffix(got, " G") && !strings.HasSuffix(got, " T") {
			t.Errorf("formatSize(%d) = %q, want unit G or larger", n, got)
		}
	}
}

func TestFormatSizeRoundTripIsApproximate(t *testing.T) {
	n := uint64(1536 << 20) // 1.50 G
	text := strings.Replace(formatSize(n), " ", "", 1)
	if text != "1.50G" {
		t.Fatalf("formatSize(%d) = %q", n, text)
	}
	if _, err := parseSize(text); !errors.Is(err, errInvalidSizeFormat) {
		t.Errorf("fractional sizes are not parseable, got %v", err)
	}
}

func TestSizeValue(t *testing.T) {
	var size sizeValue
	if err := size.Set("250M"); err != nil {
		t.Fatal(err)
	}
	if size != 250<<20 {
		t.Errorf("Set(250M) = %d", size)
	}
	if got := size.String(); got != "250.00 M" {
		t.Errorf("String() = %q", got)
	}
	if err := size.Set("250"); !errors.Is(err, errInvalidSizeFormat) {
		t.Errorf("Set(250) error = %v", err)
	}
	if size != 250<<20 {
		t.Errorf("failed Set modified value to %d", size)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		input int64
		want  string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
	}
	for _, test := range tests {
		if got := formatNumber(test.input); got != test.want {
			t.Errorf("formatNumber(%d) = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		input    float64
		decimals int
		want     string
	}{
		{1234.56, 1, "1,234.6"},
		{1234.56, 0, "1,235"},
		{999.96, 1, "1,000.0"},
		{0.25, 2, "0.25"},
		{-1234.56, 0, "-1,235"},
		{-0.01, 1, "0.0"},
	}
	for _, test := range tests {
		if got := formatFloat(test.input, test.decimals); got != test.want {
			t.Errorf("formatFloat(%v, %d) = %q, want %q",
				test.input, test.decimals, got, test.want)
		}
	}
}
