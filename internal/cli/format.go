// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency formats a dollar amount with comma separators and two
// decimal places. e.g., 146000 -> "$146,000.00", -500 -> "-$500.00"
func FormatCurrency(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, fracPart, _ := strings.Cut(s, ".")

	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	return sign + "$" + groupThousands(intPart) + "." + fracPart
}

// FormatPercent formats a 0-100 percentage value.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatSqft formats a square footage value. e.g., 1850 -> "1,850 sq ft"
func FormatSqft(sqft float64) string {
	return FormatNumber(int64(sqft+0.5)) + " sq ft"
}

// FormatDimensions renders room dimensions, omitting absent sides.
// e.g., (12, 10, 8) -> "12x10x8 ft", (0, 0, 8) -> "-"
func FormatDimensions(length, width, height float64) string {
	if length <= 0 || width <= 0 {
		return "-"
	}
	return fmt.Sprintf("%gx%gx%g ft", length, width, height)
}

// FormatHours formats labor hours. e.g., 24 -> "24.0 hrs"
func FormatHours(hours float64) string {
	return fmt.Sprintf("%.1f hrs", hours)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	return groupThousands(strconv.FormatInt(n, 10))
}

// FormatCondition renders a 1-5 condition rating. e.g., 3 -> "3/5"
func FormatCondition(rating int) string {
	return fmt.Sprintf("%d/5", rating)
}

// TitleCase converts an enum literal to display form.
// e.g., "in_progress" -> "In Progress"
func TitleCase(s string) string {
	words := strings.Split(s, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}
