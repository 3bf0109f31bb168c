package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/egemed/clinic_backend/internal/domain"
)

func TestT(t *testing.T) {
	tests := []struct {
		name   string
		locale domain.Locale
		key    string
		want   string
	}{
		{"turkish", domain.LocaleTR, "error.not_found", "Kayıt bulunamadı."},
		{"english", domain.LocaleEN, "error.not_found", "Record not found."},
		{"unknown locale falls back to default", domain.Locale("de"), "error.not_found", "Kayıt bulunamadı."},
		{"unknown key falls back to the key", domain.LocaleTR, "error.nope", "error.nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, T(tt.locale, tt.key))
		})
	}
}

// Both dictionaries carry the same key set, so no locale can hit the
// cross-locale fallback for a key the other locale has.
func TestDictionariesAreInSync(t *testing.T) {
	tr := dictionaries[domain.LocaleTR]
	en := dictionaries[domain.LocaleEN]

	for key := range tr {
		_, ok := en[key]
		assert.True(t, ok, "missing en translation for %s", key)
	}
	for key := range en {
		_, ok := tr[key]
		assert.True(t, ok, "missing tr translation for %s", key)
	}
}
