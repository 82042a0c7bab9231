package domain

import (
	"fmt"
	"strings"
	"unicode"
)

// FormatDuration "1h 30min", "2h", "45min"
func FormatDuration(minutes int) string {
	hours, mins := minutes/60, minutes%60
	switch {
	case hours > 0 && mins > 0:
		return fmt.Sprintf("%dh %dmin", hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dmin", mins)
	}
}

// Initials первые буквы первых двух слов имени в верхнем регистре
func Initials(name string) string {
	initials := make([]rune, 0, 2)
	for _, word := range strings.Fields(name) {
		initials = append(initials, unicode.ToUpper([]rune(word)[0]))
		if len(initials) == 2 {
			break
		}
	}
	return string(initials)
}

// FormatPrice "85 €", "42,50 €"
func FormatPrice(price float64) string {
	if price == float64(int64(price)) {
		return fmt.Sprintf("%d €", int64(price))
	}
	return strings.Replace(fmt.Sprintf("%.2f €", price), ".", ",", 1)
}
