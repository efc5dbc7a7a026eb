package stringsx

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FirstNonEmpty returns the first string in vals that is non-empty when trimmed.
func FirstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

// Casers keep state, so each call gets its own.
func Upper(s string) string { return cases.Upper(language.Und).String(s) }
func Lower(s string) string { return cases.Lower(language.Und).String(s) }

// Capitalize upper-cases the leading letter and lower-cases the rest: "jOHN" -> "John".
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	_, n := utf8.DecodeRuneInString(s)
	return Upper(s[:n]) + Lower(s[n:])
}

// Decapitalize lower-cases the leading letter only: "John" -> "john".
func Decapitalize(s string) string {
	if s == "" {
		return s
	}
	_, n := utf8.DecodeRuneInString(s)
	return Lower(s[:n]) + s[n:]
}

// Toggle flips the case of every letter: "John" -> "jOHN".
func Toggle(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsLower(r):
			b.WriteRune(unicode.ToUpper(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FirstRune returns the leading character of s, or "" for an empty string.
func FirstRune(s string) string {
	if s == "" {
		return ""
	}
	_, n := utf8.DecodeRuneInString(s)
	return s[:n]
}

// Len counts characters, not bytes.
func Len(s string) int { return utf8.RuneCountInString(s) }
