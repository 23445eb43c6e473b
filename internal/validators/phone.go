package validators

import "strings"

// Indicativo de Colombia, prefijo por defecto para números locales.
const CountryCode = "57"

// NormalizePhone deja solo dígitos y antepone el indicativo 57
// cuando el número local no lo trae.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	digits := b.String()
	if digits == "" {
		return ""
	}

	if !strings.HasPrefix(digits, CountryCode) {
		digits = CountryCode + digits
	}

	return digits
}

// IsPhoneValid exige al menos un número local de 7 dígitos.
func IsPhoneValid(raw string) bool {
	normalized := NormalizePhone(raw)
	return len(normalized) >= len(CountryCode)+7
}
