package validation

import (
	"regexp"
	"unicode/utf16"
)

// Local part, domain and TLD exclude '@' and any Unicode space or BOM.
var emailRe = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

// MinPasswordLength is the shortest accepted password, in UTF-16 code units.
const MinPasswordLength = 6

// IsValidEmail reports whether s looks like local@domain.tld.
func IsValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// IsValidPassword reports whether s has at least MinPasswordLength UTF-16
// code units, so a character outside the BMP counts twice.
func IsValidPassword(s string) bool {
	return textLen(s) >= MinPasswordLength
}

// textLen counts s in UTF-16 code units, the unit form field limits use.
func textLen(s string) int {
	return len(utf16.Encode([]rune(s)))
}
