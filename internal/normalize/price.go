package normalize

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var currencyCodeRe = regexp.MustCompile(`\s*(USD|EUR|GBP|SAR|AED|KWD|QAR|EGP)\s*$`)

// ParsePrice parses a decimal price.
// Handles "29.99", "$29.99", "1,299.00", "1.299,00", "29.99 SAR".
func ParsePrice(value string) (float64, error) {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return 0, fmt.Errorf("empty price value")
	}

	cleaned = strings.Map(func(r rune) rune {
		switch r {
		case '$', '€', '£', '¥', ' ', '\u00A0':
			return -1
		}
		return r
	}, cleaned)
	cleaned = currencyCodeRe.ReplaceAllString(strings.ToUpper(cleaned), "")
	if cleaned == "" {
		return 0, fmt.Errorf("no numeric value found")
	}

	lastDot := strings.LastIndex(cleaned, ".")
	lastComma := strings.LastIndex(cleaned, ",")

	switch {
	case lastComma > lastDot && lastDot == -1 && len(cleaned)-lastComma-1 == 3:
		// "1,299" is a thousands separator, not a decimal comma
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	case lastComma > lastDot:
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	case lastDot > lastComma:
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	}

	result, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price format: %w", err)
	}
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, fmt.Errorf("invalid price format: %q", value)
	}
	return result, nil
}

// ParsePercentage parses a percentage such as "25" or "25%"
func ParsePercentage(value string) (float64, error) {
	cleaned := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), "%"))
	if cleaned == "" {
		return 0, fmt.Errorf("empty percentage value")
	}
	result, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid percentage format: %w", err)
	}
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, fmt.Errorf("invalid percentage format: %q", value)
	}
	return result, nil
}

// CompareAtFromDiscount derives the original price from a discount percentage.
// ok is false unless 0 < discount < 100.
func CompareAtFromDiscount(price, discount float64) (float64, bool) {
	if !(discount > 0 && discount < 100) {
		return 0, false
	}
	return RoundCents(price / (1 - discount/100)), true
}

// RoundCents rounds to two decimal places
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatPrice formats a price with two decimals (e.g., 12.5 -> "12.50")
func FormatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
