package domain

import (
	"context"
	"encoding/json"
)

// SettingsSection names one editable block of the website configuration.
// Each section is an opaque JSON object owned by the upstream API; the
// backend validates the section name and passes the payload through.
type SettingsSection string

const (
	SectionSite         SettingsSection = "site"
	SectionColors       SettingsSection = "colors"
	SectionContact      SettingsSection = "contact"
	SectionSocial       SettingsSection = "social"
	SectionWorkingHours SettingsSection = "working-hours"
	SectionMaps         SettingsSection = "maps"
	SectionSEO          SettingsSection = "seo"
	SectionAbout        SettingsSection = "about"
)

var settingsSections = []SettingsSection{
	SectionSite, SectionColors, SectionContact, SectionSocial,
	SectionWorkingHours, SectionMaps, SectionSEO, SectionAbout,
}

func ValidSection(s string) bool {
	for _, sec := range settingsSections {
		if string(sec) == s {
			return true
		}
	}
	return false
}

// SiteConfig is the aggregate every public page needs: all sections keyed by
// name, as delivered by the upstream public settings endpoint.
type SiteConfig map[string]json.RawMessage

type SettingsRepository interface {
	PublicConfig(ctx context.Context) (SiteConfig, error)
	PublicAbout(ctx context.Context, locale Locale) (json.RawMessage, error)
	GetSection(ctx context.Context, section SettingsSection) (json.RawMessage, error)
	UpdateSection(ctx context.Context, section SettingsSection, payload json.RawMessage) error
}
