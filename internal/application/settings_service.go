package application

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/egemed/clinic_backend/internal/domain"
)

type SettingsService struct {
	repo  domain.SettingsRepository
	cache *ContentCache
}

func NewSettingsService(repo domain.SettingsRepository, cache *ContentCache) *SettingsService {
	return &SettingsService{repo: repo, cache: cache}
}

func (s *SettingsService) GetSection(ctx context.Context, section string) (json.RawMessage, error) {
	if !domain.ValidSection(section) {
		return nil, fmt.Errorf("unknown settings section: %s", section)
	}
	return s.repo.GetSection(ctx, domain.SettingsSection(section))
}

// UpdateSection validates the section name, checks the payload is a JSON
// object, forwards it, and drops the cached public config so the site picks
// the change up immediately.
func (s *SettingsService) UpdateSection(ctx context.Context, section string, payload json.RawMessage) error {
	if !domain.ValidSection(section) {
		return fmt.Errorf("unknown settings section: %s", section)
	}
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(payload, &probe); err != nil {
		return fmt.Errorf("settings payload must be a JSON object: %w", err)
	}
	if err := s.repo.UpdateSection(ctx, domain.SettingsSection(section), payload); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Invalidate("public:config")
		s.cache.Invalidate("public:about")
	}
	return nil
}
