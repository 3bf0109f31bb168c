package upstream

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/egemed/clinic_backend/internal/domain"
)

type SettingsRepository struct {
	api *Client
}

func NewSettingsRepository(api *Client) domain.SettingsRepository {
	return &SettingsRepository{api: api}
}

func (r *SettingsRepository) PublicConfig(ctx context.Context) (domain.SiteConfig, error) {
	payload, err := r.api.request(ctx, http.MethodGet, "/api/v1/public/settings", nil)
	if err != nil {
		return nil, err
	}
	var cfg domain.SiteConfig
	if err := json.Unmarshal(payload, &cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (r *SettingsRepository) PublicAbout(ctx context.Context, locale domain.Locale) (json.RawMessage, error) {
	return r.api.request(ctx, http.MethodGet, "/api/v1/public/about?locale="+string(locale), nil)
}

func (r *SettingsRepository) GetSection(ctx context.Context, section domain.SettingsSection) (json.RawMessage, error) {
	return r.api.request(ctx, http.MethodGet, "/api/v1/settings/"+string(section), nil)
}

func (r *SettingsRepository) UpdateSection(ctx context.Context, section domain.SettingsSection, payload json.RawMessage) error {
	_, err := r.api.request(ctx, http.MethodPut, "/api/v1/settings/"+string(section), payload)
	return err
}
