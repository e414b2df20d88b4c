package usecases

import (
	"strings"

	domainErrors "cvnest.backend/internal/domain/errors"
)

// NormalizePhone maps the common ways users write a phone number onto the
// canonical +<country><10 digits> form. Accepted shapes for country code 90:
//
//	5321234567      bare local number
//	05321234567     local number with trunk zero
//	905321234567    country code prefixed
//	+905321234567   full international form
//
// Separators (spaces, dashes, parentheses, dots) are stripped first. Anything
// else is rejected.
func NormalizePhone(raw, countryCode string) (string, error) {
	var b strings.Builder
	hasPlus := false
	for i, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			hasPlus = true
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '.':
			// separator, skip
		default:
			return "", domainErrors.ErrInvalidPhone
		}
	}
	digits := b.String()

	if hasPlus {
		if len(digits) == len(countryCode)+10 && strings.HasPrefix(digits, countryCode) {
			return "+" + digits, nil
		}
		return "", domainErrors.ErrInvalidPhone
	}

	switch {
	case len(digits) == 10:
		return "+" + countryCode + digits, nil
	case len(digits) == 11 && digits[0] == '0':
		return "+" + countryCode + digits[1:], nil
	case len(digits) == len(countryCode)+10 && strings.HasPrefix(digits, countryCode):
		return "+" + digits, nil
	}
	return "", domainErrors.ErrInvalidPhone
}
