package utils

import (
	"fmt"
	"strings"
)

// FormatRUB formats an amount to a string like "12 500 ₽".
// Catalog prices are integral rubles, so no decimals are kept.
func FormatRUB(value int) string {
	s := fmt.Sprintf("%d", value)

	// Insert spaces every 3 digits
	var b strings.Builder
	cnt := 0
	for i := len(s) - 1; i >= 0; i-- {
		b.WriteByte(s[i])
		cnt++
		if cnt%3 == 0 && i != 0 {
			b.WriteByte(' ')
		}
	}
	// Reverse the string
	runes := []rune(b.String())
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes) + " ₽"
}
