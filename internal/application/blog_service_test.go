package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egemed/clinic_backend/internal/domain"
	"github.com/egemed/clinic_backend/internal/editor"
)

type capturingBlogRepo struct {
	failingBlogRepo
	created *domain.BlogInput
}

func (r *capturingBlogRepo) Create(ctx context.Context, in domain.BlogInput) (*domain.Blog, error) {
	r.created = &in
	return &domain.Blog{ID: 1, Title: in.Title, Slug: in.Slug, Content: in.Content}, nil
}

func TestBlogCreateDefaultsSlugFromTitle(t *testing.T) {
	repo := &capturingBlogRepo{}
	svc := NewBlogService(repo, editor.NewPipeline(nil), nil)

	_, err := svc.Create(context.Background(), domain.BlogInput{
		Title:   "Göz Sağlığı Rehberi",
		Content: "<p>İçerik buraya gelir.</p>",
	})
	require.NoError(t, err)
	require.NotNil(t, repo.created)
	assert.Equal(t, "goz-sagligi-rehberi", repo.created.Slug)
	assert.Equal(t, domain.DefaultLocale, repo.created.Locale)
}

func TestBlogCreateKeepsExplicitSlug(t *testing.T) {
	repo := &capturingBlogRepo{}
	svc := NewBlogService(repo, editor.NewPipeline(nil), nil)

	_, err := svc.Create(context.Background(), domain.BlogInput{
		Title:   "Göz Sağlığı",
		Slug:    "custom-slug",
		Content: "<p>x</p>",
		Locale:  domain.LocaleEN,
	})
	require.NoError(t, err)
	assert.Equal(t, "custom-slug", repo.created.Slug)
	assert.Equal(t, domain.LocaleEN, repo.created.Locale)
}

// Content runs through the editor pipeline before anything goes upstream.
func TestBlogCreateSanitizesContent(t *testing.T) {
	repo := &capturingBlogRepo{}
	svc := NewBlogService(repo, editor.NewPipeline(nil), nil)

	_, err := svc.Create(context.Background(), domain.BlogInput{
		Title:   "t",
		Content: `<p>ok</p><script>alert(1)</script>`,
	})
	require.NoError(t, err)
	assert.Equal(t, "<p>ok</p>", repo.created.Content)
}

// Required-field failures are field-scoped validation errors, so the HTTP
// layer answers 400, not 500.
func TestBlogCreateRequiresTitleAndContent(t *testing.T) {
	svc := NewBlogService(&capturingBlogRepo{}, editor.NewPipeline(nil), nil)

	_, err := svc.Create(context.Background(), domain.BlogInput{Content: "<p>x</p>"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "title", verr.Field)
	assert.Equal(t, "form.title_required", verr.Key)

	_, err = svc.Create(context.Background(), domain.BlogInput{Title: "t", Content: "   "})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "content", verr.Field)
	assert.Equal(t, "form.content_required", verr.Key)
}

func TestBlogWritesInvalidatePublicCache(t *testing.T) {
	cache := NewContentCache(30 * time.Second)
	cache.Set("public:blogs:tr:1:9", 1)
	cache.Set("public:faqs:tr", 2)

	svc := NewBlogService(&capturingBlogRepo{}, editor.NewPipeline(nil), cache)
	_, err := svc.Create(context.Background(), domain.BlogInput{Title: "t", Content: "<p>x</p>"})
	require.NoError(t, err)

	_, ok := cache.Get("public:blogs:tr:1:9")
	assert.False(t, ok)
	_, ok = cache.Get("public:faqs:tr")
	assert.True(t, ok)
}
