package domain

// Locale identifies one of the site's fixed language variants.
type Locale string

const (
	LocaleTR Locale = "tr"
	LocaleEN Locale = "en"

	DefaultLocale = LocaleTR
)

var locales = []Locale{LocaleTR, LocaleEN}

// Locales returns the fixed set of supported locales.
func Locales() []Locale {
	out := make([]Locale, len(locales))
	copy(out, locales)
	return out
}

// ValidLocale reports whether s names a supported locale.
func ValidLocale(s string) bool {
	for _, l := range locales {
		if string(l) == s {
			return true
		}
	}
	return false
}
