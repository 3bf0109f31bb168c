// Package i18n holds the user-facing message dictionaries for the site's
// two locales. Missing keys fall back to the default locale, then to the
// key itself so a translation gap is visible instead of blank.
package i18n

import "github.com/egemed/clinic_backend/internal/domain"

var dictionaries = map[domain.Locale]map[string]string{
	domain.LocaleTR: {
		"error.generic":             "Bir hata oluştu, lütfen tekrar deneyin.",
		"error.not_found":           "Kayıt bulunamadı.",
		"error.unauthorized":        "Bu işlem için giriş yapmalısınız.",
		"error.file_too_large":      "Dosya çok büyük.",
		"error.unsupported_format":  "Desteklenmeyen dosya formatı.",
		"error.rate_limited":        "Çok fazla istek gönderdiniz, lütfen daha sonra tekrar deneyin.",
		"error.reorder_filtered":    "Arama filtresi açıkken sıralama değiştirilemez.",
		"error.confirm_required":    "Silme işlemi onay gerektirir.",
		"contact.name_required":     "İsim alanı zorunludur.",
		"contact.email_required":    "E-posta alanı zorunludur.",
		"contact.email_invalid":     "Geçerli bir e-posta adresi girin.",
		"contact.phone_invalid":     "Geçerli bir telefon numarası girin.",
		"contact.message_too_short": "Mesajınız en az 10 karakter olmalıdır.",
		"contact.received":          "Mesajınız alındı, en kısa sürede dönüş yapacağız.",
		"form.title_required":       "Başlık alanı zorunludur.",
		"form.content_required":     "İçerik alanı zorunludur.",
		"form.question_required":    "Soru alanı zorunludur.",
		"form.answer_required":      "Cevap alanı zorunludur.",
		"form.name_required":        "İsim alanı zorunludur.",
		"form.image_required":       "Bir görsel dosyası veya görsel adresi gereklidir.",
	},
	domain.LocaleEN: {
		"error.generic":             "Something went wrong, please try again.",
		"error.not_found":           "Record not found.",
		"error.unauthorized":        "You must be logged in for this action.",
		"error.file_too_large":      "The file is too large.",
		"error.unsupported_format":  "Unsupported file format.",
		"error.rate_limited":        "Too many requests, please try again later.",
		"error.reorder_filtered":    "Reordering is disabled while a search filter is active.",
		"error.confirm_required":    "Deleting requires confirmation.",
		"contact.name_required":     "Name is required.",
		"contact.email_required":    "Email is required.",
		"contact.email_invalid":     "Enter a valid email address.",
		"contact.phone_invalid":     "Enter a valid phone number.",
		"contact.message_too_short": "Your message must be at least 10 characters.",
		"contact.received":          "Your message has been received, we will get back to you shortly.",
		"form.title_required":       "Title is required.",
		"form.content_required":     "Content is required.",
		"form.question_required":    "Question is required.",
		"form.answer_required":      "Answer is required.",
		"form.name_required":        "Name is required.",
		"form.image_required":       "An image file or an image URL is required.",
	},
}

// T resolves key in the given locale.
func T(locale domain.Locale, key string) string {
	if dict, ok := dictionaries[locale]; ok {
		if msg, ok := dict[key]; ok {
			return msg
		}
	}
	if msg, ok := dictionaries[domain.DefaultLocale][key]; ok {
		return msg
	}
	return key
}
