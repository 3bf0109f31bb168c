package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/egemed/clinic_backend/internal/domain"
)

type FAQService struct {
	repo  domain.FAQRepository
	cache *ContentCache
}

// NewFAQService accepts a nil cache; public reads then rely on the TTL
// alone.
func NewFAQService(repo domain.FAQRepository, cache *ContentCache) *FAQService {
	return &FAQService{repo: repo, cache: cache}
}

func (s *FAQService) List(ctx context.Context, locale domain.Locale, q domain.ListQuery) (domain.List[domain.FAQ], error) {
	return s.repo.List(ctx, locale, q)
}

// Create assigns the next order slot (the current list length) when the
// form did not pick one; an explicit order, including 0, is kept.
func (s *FAQService) Create(ctx context.Context, in domain.FAQInput) (*domain.FAQ, error) {
	if err := validateFAQ(in); err != nil {
		return nil, err
	}
	if in.Order == nil {
		list, err := s.repo.List(ctx, in.Locale, domain.ListQuery{Limit: 1})
		if err == nil {
			in.Order = &list.Total
		}
	}
	faq, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.invalidate()
	return faq, nil
}

func (s *FAQService) Update(ctx context.Context, id int, in domain.FAQInput) (*domain.FAQ, error) {
	if err := validateFAQ(in); err != nil {
		return nil, err
	}
	faq, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	s.invalidate()
	return faq, nil
}

func (s *FAQService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// Move runs the reorder protocol for one FAQ: optimistic swap, batch
// persist, authoritative re-fetch on failure. The returned list is always
// safe to render: the optimistic state when confirmed, the server state
// when rolled back.
func (s *FAQService) Move(ctx context.Context, locale domain.Locale, id int, dir Direction) ([]domain.FAQ, ReorderStatus, error) {
	list, err := s.repo.List(ctx, locale, domain.ListQuery{Limit: 500})
	if err != nil {
		return nil, ReorderNoop, err
	}

	refs := make([]OrderRef, len(list.Data))
	for i, f := range list.Data {
		refs[i] = OrderRef{ID: f.ID, Order: f.Order}
	}
	sorted := sortRefs(refs)

	moved, ok := Move(sorted, indexOf(sorted, id), dir)
	if !ok {
		return applyFAQOrders(list.Data, sorted), ReorderNoop, nil
	}

	optimistic := applyFAQOrders(list.Data, moved)
	if err := s.repo.Reorder(ctx, Payload(moved)); err != nil {
		fresh, ferr := s.repo.List(ctx, locale, domain.ListQuery{Limit: 500})
		if ferr != nil {
			return nil, ReorderRolledBack, fmt.Errorf("reorder failed and rollback fetch failed: %w", ferr)
		}
		return fresh.Data, ReorderRolledBack, err
	}
	s.invalidate()
	return optimistic, ReorderConfirmed, nil
}

func (s *FAQService) invalidate() {
	if s.cache != nil {
		s.cache.Invalidate("public:faqs")
	}
}

func validateFAQ(in domain.FAQInput) error {
	if strings.TrimSpace(in.Question) == "" {
		return &ValidationError{Field: "question", Key: "form.question_required"}
	}
	if strings.TrimSpace(in.Answer) == "" {
		return &ValidationError{Field: "answer", Key: "form.answer_required"}
	}
	return nil
}

// applyFAQOrders writes the protocol's order values back onto the typed
// items and returns them in display order.
func applyFAQOrders(items []domain.FAQ, refs []OrderRef) []domain.FAQ {
	orders := make(map[int]int, len(refs))
	for _, ref := range refs {
		orders[ref.ID] = ref.Order
	}
	out := make([]domain.FAQ, 0, len(refs))
	byID := make(map[int]domain.FAQ, len(items))
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
