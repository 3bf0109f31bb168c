package application

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/egemed/clinic_backend/internal/domain"
)

// PublicService serves the read side of the public site. Its contract is
// best-effort: every method degrades to a neutral default instead of
// returning an error, so a page renders empty rather than failing when the
// upstream API is unreachable or the tenant is misconfigured. Reads go
// through the short-TTL content cache.
type PublicService struct {
	blogs       domain.BlogRepository
	specialties domain.SpecialtyRepository
	gallery     domain.GalleryRepository
	faqs        domain.FAQRepository
	settings    domain.SettingsRepository
	cache       *ContentCache
}

func NewPublicService(
	blogs domain.BlogRepository,
	specialties domain.SpecialtyRepository,
	gallery domain.GalleryRepository,
	faqs domain.FAQRepository,
	settings domain.SettingsRepository,
	cache *ContentCache,
) *PublicService {
	return &PublicService{
		blogs:       blogs,
		specialties: specialties,
		gallery:     gallery,
		faqs:        faqs,
		settings:    settings,
		cache:       cache,
	}
}

func (s *PublicService) Blogs(ctx context.Context, locale domain.Locale, page, limit int) domain.List[domain.Blog] {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 9
	}
	key := fmt.Sprintf("public:blogs:%s:%d:%d", locale, page, limit)
	if cached, ok := s.cache.Get(key); ok {
		return cached.(domain.List[domain.Blog])
	}
	list, err := s.blogs.PublicList(ctx, locale, page, limit)
	if err != nil {
		log.Printf("public blogs fetch failed: %v", err)
		return domain.EmptyList[domain.Blog]()
	}
	s.cache.Set(key, list)
	return list
}

// BlogBySlug is the one public read that distinguishes "not found" (nil)
// from a rendered result; failures still degrade to nil.
func (s *PublicService) BlogBySlug(ctx context.Context, locale domain.Locale, slug string) *domain.Blog {
	key := fmt.Sprintf("public:blogs:%s:slug:%s", locale, slug)
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*domain.Blog)
	}
	blog, err := s.blogs.PublicBySlug(ctx, locale, slug)
	if err != nil {
		log.Printf("public blog %q fetch failed: %v", slug, err)
		return nil
	}
	s.cache.Set(key, blog)
	return blog
}

func (s *PublicService) Specialties(ctx context.Context, locale domain.Locale) domain.PublicSpecialties {
	key := fmt.Sprintf("public:specialties:%s", locale)
	if cached, ok := s.cache.Get(key); ok {
		return cached.(domain.PublicSpecialties)
	}
	out, err := s.specialties.PublicList(ctx, locale)
	if err != nil {
		log.Printf("public specialties fetch failed: %v", err)
		return domain.PublicSpecialties{Categories: []domain.Category{}, Data: []domain.Specialty{}}
	}
	s.cache.Set(key, out)
	return out
}

func (s *PublicService) SpecialtyBySlug(ctx context.Context, locale domain.Locale, slug string) *domain.Specialty {
	key := fmt.Sprintf("public:specialties:%s:slug:%s", locale, slug)
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*domain.Specialty)
	}
	sp, err := s.specialties.PublicBySlug(ctx, locale, slug)
	if err != nil {
		log.Printf("public specialty %q fetch failed: %v", slug, err)
		return nil
	}
	s.cache.Set(key, sp)
	return sp
}

func (s *PublicService) Gallery(ctx context.Context) domain.List[domain.GalleryPhoto] {
	if cached, ok := s.cache.Get("public:gallery"); ok {
		return cached.(domain.List[domain.GalleryPhoto])
	}
	list, err := s.gallery.PublicList(ctx)
	if err != nil {
		log.Printf("public gallery fetch failed: %v", err)
		return domain.EmptyList[domain.GalleryPhoto]()
	}
	s.cache.Set("public:gallery", list)
	return list
}

func (s *PublicService) FAQs(ctx context.Context, locale domain.Locale) domain.List[domain.FAQ] {
	key := fmt.Sprintf("public:faqs:%s", locale)
	if cached, ok := s.cache.Get(key); ok {
		return cached.(domain.List[domain.FAQ])
	}
	list, err := s.faqs.PublicList(ctx, locale)
	if err != nil {
		log.Printf("public faqs fetch failed: %v", err)
		return domain.EmptyList[domain.FAQ]()
	}
	s.cache.Set(key, list)
	return list
}

func (s *PublicService) Config(ctx context.Context) domain.SiteConfig {
	if cached, ok := s.cache.Get("public:config"); ok {
		return cached.(domain.SiteConfig)
	}
	cfg, err := s.settings.PublicConfig(ctx)
	if err != nil {
		log.Printf("public config fetch failed: %v", err)
		return nil
	}
	s.cache.Set("public:config", cfg)
	return cfg
}

func (s *PublicService) About(ctx context.Context, locale domain.Locale) json.RawMessage {
	key := fmt.Sprintf("public:about:%s", locale)
	if cached, ok := s.cache.Get(key); ok {
		return cached.(json.RawMessage)
	}
	about, err := s.settings.PublicAbout(ctx, locale)
	if err != nil {
		log.Printf("public about fetch failed: %v", err)
		return nil
	}
	s.cache.Set(key, about)
	return about
}
