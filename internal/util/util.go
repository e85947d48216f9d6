package util

import (
	"fmt"
	"strings"
)

// FirstNonEmpty returns the first non-empty string in values.
func FirstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}

// TruncateText shortens text to at most maxLength characters, trimming
// trailing whitespace and appending an ellipsis when truncation happened.
func TruncateText(text string, maxLength int) string {
	if maxLength <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return strings.TrimSpace(string(runes[:maxLength])) + "..."
}

// FormatPrice renders a nightly rate as a whole-dollar USD amount with
// thousands separators, e.g. 1250 -> "$1,250".
func FormatPrice(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	whole := int64(amount + 0.5)
	digits := fmt.Sprintf("%d", whole)

	var builder strings.Builder
	if negative {
		builder.WriteByte('-')
	}
	builder.WriteByte('$')

	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	builder.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		builder.WriteByte(',')
		builder.WriteString(digits[i : i+3])
	}
	return builder.String()
}
