package catalog

import "strings"

var identifierSeparators = strings.NewReplacer("-", "", " ", "")

// IdentifierLooksValid reports whether identifier has the shape of an
// ISBN-10 or ISBN-13: after removing hyphens and spaces it must be exactly
// 10 or 13 ASCII digits. No checksum is verified.
func IdentifierLooksValid(identifier string) bool {
	digits := identifierSeparators.Replace(identifier)
	if len(digits) != 10 && len(digits) != 13 {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	return true
}
