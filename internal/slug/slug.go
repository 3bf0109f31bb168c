// Package slug derives URL slugs from localized titles. Turkish letters get
// an explicit mapping (ı and İ do not decompose to ASCII under NFD), every
// other accent is folded off, and the result is lowercase ASCII with single
// hyphens.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var turkish = map[rune]rune{
	'ç': 'c', 'Ç': 'c',
	'ğ': 'g', 'Ğ': 'g',
	'ı': 'i', 'I': 'i',
	'İ': 'i',
	'ö': 'o', 'Ö': 'o',
	'ş': 's', 'Ş': 's',
	'ü': 'u', 'Ü': 'u',
}

var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make returns the deterministic slug for a title: "Göz Sağlığı!" becomes
// "goz-sagligi".
func Make(title string) string {
	mapped := strings.Map(func(r rune) rune {
		if repl, ok := turkish[r]; ok {
			return repl
		}
		return r
	}, title)

	if folded, _, err := transform.String(foldAccents, mapped); err == nil {
		mapped = folded
	}
	mapped = strings.ToLower(mapped)

	var sb strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range mapped {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				sb.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(sb.String(), "-")
}
