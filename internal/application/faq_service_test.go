package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egemed/clinic_backend/internal/domain"
)

type fakeFAQRepo struct {
	lists      []domain.List[domain.FAQ] // consumed in order by List
	listErr    error
	reorderErr error
	reorders   []domain.ReorderRequest
	created    *domain.FAQInput
}

func (f *fakeFAQRepo) PublicList(ctx context.Context, locale domain.Locale) (domain.List[domain.FAQ], error) {
	return f.nextList()
}

func (f *fakeFAQRepo) List(ctx context.Context, locale domain.Locale, q domain.ListQuery) (domain.List[domain.FAQ], error) {
	return f.nextList()
}

func (f *fakeFAQRepo) nextList() (domain.List[domain.FAQ], error) {
	if f.listErr != nil {
		return domain.EmptyList[domain.FAQ](), f.listErr
	}
	if len(f.lists) == 0 {
		return domain.EmptyList[domain.FAQ](), nil
	}
	list := f.lists[0]
	if len(f.lists) > 1 {
		f.lists = f.lists[1:]
	}
	return list, nil
}

func (f *fakeFAQRepo) Create(ctx context.Context, in domain.FAQInput) (*domain.FAQ, error) {
	f.created = &in
	faq := &domain.FAQ{ID: 1, Question: in.Question, Answer: in.Answer}
	if in.Order != nil {
		faq.Order = *in.Order
	}
	return faq, nil
}

func (f *fakeFAQRepo) Update(ctx context.Context, id int, in domain.FAQInput) (*domain.FAQ, error) {
	return &domain.FAQ{ID: id, Question: in.Question, Answer: in.Answer}, nil
}

func (f *fakeFAQRepo) Delete(ctx context.Context, id int) error { return nil }

func (f *fakeFAQRepo) Reorder(ctx context.Context, req domain.ReorderRequest) error {
	f.reorders = append(f.reorders, req)
	return f.reorderErr
}

func faqList(items ...domain.FAQ) domain.List[domain.FAQ] {
	return domain.List[domain.FAQ]{Data: items, Total: len(items)}
}

func TestFAQMoveConfirmed(t *testing.T) {
	repo := &fakeFAQRepo{lists: []domain.List[domain.FAQ]{faqList(
		domain.FAQ{ID: 1, Question: "a", Order: 0},
		domain.FAQ{ID: 2, Question: "b", Order: 1},
		domain.FAQ{ID: 3, Question: "c", Order: 2},
	)}}
	svc := NewFAQService(repo, nil)

	got, status, err := svc.Move(context.Background(), domain.LocaleTR, 2, MoveUp)
	require.NoError(t, err)
	assert.Equal(t, ReorderConfirmed, status)

	ids := []int{got[0].ID, got[1].ID, got[2].ID}
	assert.Equal(t, []int{2, 1, 3}, ids)
	// The batch persists an order value for every item, not just the pair.
	require.Len(t, repo.reorders, 1)
	assert.Len(t, repo.reorders[0].Items, 3)
}

func TestFAQMoveBoundaryNoop(t *testing.T) {
	repo := &fakeFAQRepo{lists: []domain.List[domain.FAQ]{faqList(
		domain.FAQ{ID: 1, Order: 0},
		domain.FAQ{ID: 2, Order: 1},
	)}}
	svc := NewFAQService(repo, nil)

	got, status, err := svc.Move(context.Background(), domain.LocaleTR, 1, MoveDown)
	require.NoError(t, err)
	assert.Equal(t, ReorderNoop, status)
	assert.Equal(t, []int{got[0].ID, got[1].ID}, []int{1, 2})
	// No request may be issued for a boundary move.
	assert.Empty(t, repo.reorders)
}

func TestFAQMoveRollbackMatchesFreshFetch(t *testing.T) {
	initial := faqList(
		domain.FAQ{ID: 1, Question: "a", Order: 0},
		domain.FAQ{ID: 2, Question: "b", Order: 1},
	)
	// The authoritative state after the failed persist differs from both the
	// initial and the optimistic state.
	fresh := faqList(
		domain.FAQ{ID: 2, Question: "b", Order: 0},
		domain.FAQ{ID: 1, Question: "a", Order: 1},
		domain.FAQ{ID: 3, Question: "c", Order: 2},
	)
	repo := &fakeFAQRepo{
		lists:      []domain.List[domain.FAQ]{initial, fresh},
		reorderErr: errors.New("upstream 500"),
	}
	svc := NewFAQService(repo, nil)

	got, status, err := svc.Move(context.Background(), domain.LocaleTR, 2, MoveUp)
	require.Error(t, err)
	assert.Equal(t, ReorderRolledBack, status)
	assert.Equal(t, fresh.Data, got)
}

func TestFAQCreateAssignsNextOrder(t *testing.T) {
	repo := &fakeFAQRepo{lists: []domain.List[domain.FAQ]{{Data: nil, Total: 4}}}
	svc := NewFAQService(repo, nil)

	_, err := svc.Create(context.Background(), domain.FAQInput{Question: "q", Answer: "a"})
	require.NoError(t, err)
	require.NotNil(t, repo.created)
	require.NotNil(t, repo.created.Order)
	assert.Equal(t, 4, *repo.created.Order)
}

// An explicit order 0 is a choice, not an absent field.
func TestFAQCreateKeepsExplicitZeroOrder(t *testing.T) {
	repo := &fakeFAQRepo{lists: []domain.List[domain.FAQ]{{Data: nil, Total: 4}}}
	svc := NewFAQService(repo, nil)

	zero := 0
	_, err := svc.Create(context.Background(), domain.FAQInput{Question: "q", Answer: "a", Order: &zero})
	require.NoError(t, err)
	require.NotNil(t, repo.created.Order)
	assert.Equal(t, 0, *repo.created.Order)
}

func TestFAQCreateRequiresFields(t *testing.T) {
	svc := NewFAQService(&fakeFAQRepo{}, nil)
	_, err := svc.Create(context.Background(), domain.FAQInput{Question: "q"})
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "answer", verr.Field)
	assert.Equal(t, "form.answer_required", verr.Key)
}

func TestFAQWritesInvalidatePublicCache(t *testing.T) {
	cache := NewContentCache(30 * time.Second)
	cache.Set("public:faqs:tr", 1)
	cache.Set("public:gallery", 2)

	repo := &fakeFAQRepo{}
	svc := NewFAQService(repo, cache)

	_, err := svc.Create(context.Background(), domain.FAQInput{Question: "q", Answer: "a"})
	require.NoError(t, err)

	_, ok := cache.Get("public:faqs:tr")
	assert.False(t, ok)
	// Unrelated entries stay.
	_, ok = cache.Get("public:gallery")
	assert.True(t, ok)
}
