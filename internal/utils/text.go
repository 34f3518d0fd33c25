package utils

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// NormalizeText trims surrounding whitespace and converts to NFC so that
// visually identical names compare equal.
func NormalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// RuneLen returns the number of characters in s
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// TitleCase capitalizes each word for display ("short sword" -> "Short Sword")
func TitleCase(s string) string {
	return cases.Title(language.English).String(s)
}
