package formatter

import (
	"strconv"
	"strings"
)

// FormatNumber inserts thousands separators: 1234567 -> "1,234,567".
func FormatNumber(n int) string {
	digits := strconv.Itoa(n)
	sign := ""
	if n < 0 {
		sign, digits = "-", digits[1:]
	}
	if len(digits) <= 3 {
		return sign + digits
	}

	var sb strings.Builder
	sb.WriteString(sign)
	head := len(digits) % 3
	if head > 0 {
		sb.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if sb.Len() > len(sign) {
			sb.WriteByte(',')
		}
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}

// CountLabel renders a counter for the story footer, e.g. "1 view", "1,204 views".
func CountLabel(n int, singular, plural string) string {
	if n == 1 {
		return "1 " + singular
	}
	return FormatNumber(n) + " " + plural
}
