package view

import (
	"fmt"
	"math"
	"strings"
)

// maxCartNameLen is the display cutoff for product names in cart rows.
const maxCartNameLen = 10

// FormatEUR renders an amount as a euro label with thousands separators,
// e.g. 12345.678 -> "€12,345.68".
func FormatEUR(amount float64) string {
	s := fmt.Sprintf("%.2f", amount)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, d := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	if neg {
		return "-€" + b.String() + "." + frac
	}
	return "€" + b.String() + "." + frac
}

// Stars renders a rating as a five-character star string, filled stars for
// the whole part of the rating, e.g. 4.2 -> "★★★★☆".
func Stars(rating float64) string {
	full := int(math.Floor(rating))
	if full < 0 {
		full = 0
	}
	if full > 5 {
		full = 5
	}
	return strings.Repeat("★", full) + strings.Repeat("☆", 5-full)
}

// TruncateName shortens a product name for cart display, ellipsizing past
// the cutoff.
func TruncateName(name string) string {
	runes := []rune(name)
	if len(runes) <= maxCartNameLen {
		return name
	}
	return string(runes[:maxCartNameLen]) + "..."
}
