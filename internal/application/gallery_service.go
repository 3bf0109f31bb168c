package application

import (
	"context"
	"fmt"

	"github.com/egemed/clinic_backend/internal/domain"
)

type GalleryService struct {
	repo  domain.GalleryRepository
	cache *ContentCache
}

// NewGalleryService accepts a nil cache; public reads then rely on the TTL
// alone.
func NewGalleryService(repo domain.GalleryRepository, cache *ContentCache) *GalleryService {
	return &GalleryService{repo: repo, cache: cache}
}

func (s *GalleryService) List(ctx context.Context, q domain.ListQuery) (domain.List[domain.GalleryPhoto], error) {
	return s.repo.List(ctx, q)
}

func (s *GalleryService) Create(ctx context.Context, in domain.GalleryPhotoInput) (*domain.GalleryPhoto, error) {
	if in.URL == "" && in.Image == nil {
		return nil, &ValidationError{Field: "image", Key: "form.image_required"}
	}
	if in.Order == nil {
		list, err := s.repo.List(ctx, domain.ListQuery{Limit: 1})
		if err == nil {
			in.Order = &list.Total
		}
	}
	photo, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.invalidate()
	return photo, nil
}

func (s *GalleryService) Update(ctx context.Context, id int, in domain.GalleryPhotoInput) (*domain.GalleryPhoto, error) {
	photo, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	s.invalidate()
	return photo, nil
}

func (s *GalleryService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *GalleryService) Move(ctx context.Context, id int, dir Direction) ([]domain.GalleryPhoto, ReorderStatus, error) {
	list, err := s.repo.List(ctx, domain.ListQuery{Limit: 500})
	if err != nil {
		return nil, ReorderNoop, err
	}

	refs := make([]OrderRef, len(list.Data))
	for i, p := range list.Data {
		refs[i] = OrderRef{ID: p.ID, Order: p.Order}
	}
	sorted := sortRefs(refs)

	moved, ok := Move(sorted, indexOf(sorted, id), dir)
	if !ok {
		return applyPhotoOrders(list.Data, sorted), ReorderNoop, nil
	}

	optimistic := applyPhotoOrders(list.Data, moved)
	if err := s.repo.Reorder(ctx, Payload(moved)); err != nil {
		fresh, ferr := s.repo.List(ctx, domain.ListQuery{Limit: 500})
		if ferr != nil {
			return nil, ReorderRolledBack, fmt.Errorf("reorder failed and rollback fetch failed: %w", ferr)
		}
		return fresh.Data, ReorderRolledBack, err
	}
	s.invalidate()
	return optimistic, ReorderConfirmed, nil
}

func (s *GalleryService) invalidate() {
	if s.cache != nil {
		s.cache.Invalidate("public:gallery")
	}
}

func applyPhotoOrders(items []domain.GalleryPhoto, refs []OrderRef) []domain.GalleryPhoto {
	orders := make(map[int]int, len(refs))
	for _, ref := range refs {
		orders[ref.ID] = ref.Order
	}
	out := make([]domain.GalleryPhoto, 0, len(refs))
	byID := make(map[int]domain.GalleryPhoto, len(items))
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
