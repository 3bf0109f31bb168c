package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/egemed/clinic_backend/internal/domain"
	"github.com/egemed/clinic_backend/internal/editor"
	"github.com/egemed/clinic_backend/internal/slug"
)

type SpecialtyService struct {
	repo    domain.SpecialtyRepository
	content *editor.Pipeline
	cache   *ContentCache
}

// NewSpecialtyService accepts a nil cache; public reads then rely on the
// TTL alone.
func NewSpecialtyService(repo domain.SpecialtyRepository, content *editor.Pipeline, cache *ContentCache) *SpecialtyService {
	return &SpecialtyService{repo: repo, content: content, cache: cache}
}

func (s *SpecialtyService) List(ctx context.Context, locale domain.Locale, q domain.ListQuery) (domain.List[domain.Specialty], error) {
	return s.repo.List(ctx, locale, q)
}

func (s *SpecialtyService) Get(ctx context.Context, id int) (*domain.Specialty, error) {
	return s.repo.Get(ctx, id)
}

func (s *SpecialtyService) Create(ctx context.Context, in domain.SpecialtyInput) (*domain.Specialty, error) {
	prepared, err := s.prepare(ctx, in)
	if err != nil {
		return nil, err
	}
	if prepared.Order == nil {
		list, err := s.repo.List(ctx, prepared.Locale, domain.ListQuery{Limit: 1})
		if err == nil {
			prepared.Order = &list.Total
		}
	}
	sp, err := s.repo.Create(ctx, prepared)
	if err != nil {
		return nil, err
	}
	s.invalidate()
	return sp, nil
}

func (s *SpecialtyService) Update(ctx context.Context, id int, in domain.SpecialtyInput) (*domain.Specialty, error) {
	prepared, err := s.prepare(ctx, in)
	if err != nil {
		return nil, err
	}
	sp, err := s.repo.Update(ctx, id, prepared)
	if err != nil {
		return nil, err
	}
	s.invalidate()
	return sp, nil
}

func (s *SpecialtyService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// Move reorders specialties within the current page: when paginated, the
// batch covers that page only, so only page-local order values are touched.
func (s *SpecialtyService) Move(ctx context.Context, locale domain.Locale, page, limit, id int, dir Direction) ([]domain.Specialty, ReorderStatus, error) {
	query := domain.ListQuery{Page: page, Limit: limit}
	list, err := s.repo.List(ctx, locale, query)
	if err != nil {
		return nil, ReorderNoop, err
	}

	refs := make([]OrderRef, len(list.Data))
	for i, sp := range list.Data {
		refs[i] = OrderRef{ID: sp.ID, Order: sp.Order}
	}
	sorted := sortRefs(refs)

	moved, ok := Move(sorted, indexOf(sorted, id), dir)
	if !ok {
		return applySpecialtyOrders(list.Data, sorted), ReorderNoop, nil
	}

	optimistic := applySpecialtyOrders(list.Data, moved)
	if err := s.repo.Reorder(ctx, Payload(moved)); err != nil {
		fresh, ferr := s.repo.List(ctx, locale, query)
		if ferr != nil {
			return nil, ReorderRolledBack, fmt.Errorf("reorder failed and rollback fetch failed: %w", ferr)
		}
		return fresh.Data, ReorderRolledBack, err
	}
	s.invalidate()
	return optimistic, ReorderConfirmed, nil
}

func (s *SpecialtyService) prepare(ctx context.Context, in domain.SpecialtyInput) (domain.SpecialtyInput, error) {
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

func (s *SpecialtyService) invalidate() {
	if s.cache != nil {
		s.cache.Invalidate("public:specialties")
	}
}

func applySpecialtyOrders(items []domain.Specialty, refs []OrderRef) []domain.Specialty {
	orders := make(map[int]int, len(refs))
	for _, ref := range refs {
		orders[ref.ID] = ref.Order
	}
	out := make([]domain.Specialty, 0, len(refs))
	byID := make(map[int]domain.Specialty, len(items))
	for _, item := range items {
		if order, ok := orders[item.ID]; ok {
			item.Order = order
		}
		byID[item.ID] = item
	}
	for _, ref := range refs {
		if item, ok := byID[ref.ID]; ok {
			out = append(out, item)
		}
	}
	return out
}

type CategoryService struct {
	repo  domain.CategoryRepository
	cache *ContentCache
}

// Categories render inside the public specialties payload, so category
// writes invalidate that prefix.
func NewCategoryService(repo domain.CategoryRepository, cache *ContentCache) *CategoryService {
	return &CategoryService{repo: repo, cache: cache}
}

func (s *CategoryService) List(ctx context.Context, locale domain.Locale) ([]domain.Category, error) {
	return s.repo.List(ctx, locale)
}

func (s *CategoryService) Create(ctx context.Context, in domain.CategoryInput) (*domain.Category, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, &ValidationError{Field: "name", Key: "form.name_required"}
	}
	if in.Slug == "" {
		in.Slug = slug.Make(in.Name)
	}
	category, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.invalidate()
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, id int, in domain.CategoryInput) (*domain.Category, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, &ValidationError{Field: "name", Key: "form.name_required"}
	}
	if in.Slug == "" {
		in.Slug = slug.Make(in.Name)
	}
	category, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	s.invalidate()
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *CategoryService) invalidate() {
	if s.cache != nil {
		s.cache.Invalidate("public:specialties")
	}
}
