package application

import (
	"context"
	"strings"

	"github.com/egemed/clinic_backend/internal/domain"
	"github.com/egemed/clinic_backend/internal/editor"
	"github.com/egemed/clinic_backend/internal/slug"
)

type BlogService struct {
	repo    domain.BlogRepository
	content *editor.Pipeline
	cache   *ContentCache
}

// NewBlogService accepts a nil cache; public reads then rely on the TTL
// alone.
func NewBlogService(repo domain.BlogRepository, content *editor.Pipeline, cache *ContentCache) *BlogService {
	return &BlogService{repo: repo, content: content, cache: cache}
}

func (s *BlogService) List(ctx context.Context, locale domain.Locale, q domain.ListQuery) (domain.List[domain.Blog], error) {
	return s.repo.List(ctx, locale, q)
}

func (s *BlogService) Get(ctx context.Context, id int) (*domain.Blog, error) {
	return s.repo.Get(ctx, id)
}

func (s *BlogService) Create(ctx context.Context, in domain.BlogInput) (*domain.Blog, error) {
	prepared, err := s.prepare(ctx, in)
	if err != nil {
		return nil, err
	}
	blog, err := s.repo.Create(ctx, prepared)
	if err != nil {
		return nil, err
	}
	s.invalidate()
	return blog, nil
}

func (s *BlogService) Update(ctx context.Context, id int, in domain.BlogInput) (*domain.Blog, error) {
	prepared, err := s.prepare(ctx, in)
	if err != nil {
		return nil, err
	}
	blog, err := s.repo.Update(ctx, id, prepared)
	if err != nil {
		return nil, err
	}
	s.invalidate()
	return blog, nil
}

func (s *BlogService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *BlogService) invalidate() {
	if s.cache != nil {
		s.cache.Invalidate("public:blogs")
	}
}

// prepare applies the shared form rules: title and content are required, the
// slug defaults to the transliterated title, and the content body runs
// through the editor pipeline before anything is sent upstream.
func (s *BlogService) prepare(ctx context.Context, in domain.BlogInput) (domain.BlogInput, error) {
	if strings.TrimSpace(in.Title) == "" {
		return in, &ValidationError{Field: "title", Key: "form.title_required"}
	}
	if strings.TrimSpace(in.Content) == "" {
		return in, &ValidationError{Field: "content", Key: "form.content_required"}
	}
	if in.Slug == "" {
		in.Slug = slug.Make(in.Title)
	}
	if !domain.ValidLocale(string(in.Locale)) {
		in.Locale = domain.DefaultLocale
	}
	content, err := s.content.Process(ctx, in.Content)
	if err != nil {
		return in, err
	}
	in.Content = content
	return in, nil
}
