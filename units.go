package main

import (
	"fmt"
	"math"
	"strconv"
)

type sizeUnit struct {
	suffix byte
	factor uint64
}

// sizeUnits is ordered from smallest to largest. B is the floor unit.
var sizeUnits = []sizeUnit{
	{'B', 1},
	{'K', 1 << 10},
	{'M', 1 << 20},
	{'G', 1 << 30},
	{'T', 1 << 40},
}

// parseSize converts a human size string (e.g. "500M", "1G", "0B") to bytes.
// The string must be a non-negative integer followed by exactly one unit.
func parseSize(s string) (uint64, error) {
	if len(s) < 2 {
		return 0, fmt.Errorf("%w: %q", errInvalidSizeFormat, s)
	}
	last := s[len(s)-1]
	for _, unit := range sizeUnits {
		if unit.suffix != last {
			continue
		}
		digits := s[:len(s)-1]
		for i := 0; i < len(digits); i++ {
			if digits[i] < '0' || digits[i] > '9' {
				return 0, fmt.Errorf("%w: %q", errInvalidSizeFormat, s)
			}
		}
		val, err := strconv.ParseUint(digits, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", errInvalidSizeFormat, s, err)
		}
		if val > math.MaxUint64/unit.factor {
			return 0, fmt.Errorf("%w: %q overflows", errInvalidSizeFormat, s)
		}
		return val * unit.factor, nil
	}
	return 0, fmt.Errorf("%w: %q has no unit suffix (B, K, M, G, T)",
		errInvalidSizeFormat, s)
}

// formatSize renders bytes with the largest unit not exceeding the value,
// e.g. 1536 -> "1.50 K".
func formatSize(bytes uint64) string {
	unit := sizeUnits[0]
	for i := len(sizeUnits) - 1; i >= 0; i-- {
		if bytes >= sizeUnits[i].factor {
			unit = sizeUnits[i]
			break
		}
	}
	return fmt.Sprintf("%.2f %c", float64(bytes)/float64(unit.factor),
		unit.suffix)
}

// sizeValue is a byte count that satisfies the flag.Value interface.
type sizeValue uint64

func (size *sizeValue) String() string {
	if size == nil {
		return ""
	}
	return formatSize(uint64(*size))
}

func (size *sizeValue) Set(value string) error {
	val, err := parseSize(value)
	if err != nil {
		return err
	}
	*size = sizeValue(val)
	return nil
}

// formatNumber adds thousand separators (e.g. 1234567 -> "1,234,567").
func formatNumber(n int64) string {
	if n < 0 {
		return "-" + formatNumber(-n)
	}
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var result []byte
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, byte(c))
	}
	return string(result)
}

// formatFloat formats a float with thousand separators.
func formatFloat(f float64, decimals int) string {
	rounded := strconv.FormatFloat(math.Abs(f), 'f', decimals, 64)
	intPart, frac := rounded, ""
	for i := 0; i < len(rounded); i++ {
		if rounded[i] == '.' {
			intPart, frac = rounded[:i], rounded[i:]
			break
		}
	}
	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return rounded
	}
	formatted := formatNumber(n) + frac
	if f < 0 && formatted != "0"+frac {
		formatted = "-" + formatted
	}
	return formatted
}
