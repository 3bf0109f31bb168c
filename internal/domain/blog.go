package domain

import (
	"context"
	"time"
)

type Blog struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Summary   string    `json:"summary"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"image_url"`
	Locale    Locale    `json:"locale"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BlogInput carries the admin form fields for create/update. Image is the
// raw bytes of an attached file; when nil, ImageURL (possibly empty) is sent
// as a plain field and the request goes out as JSON instead of multipart.
type BlogInput struct {
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Summary   string `json:"summary"`
	Content   string `json:"content"`
	ImageURL  string `json:"image_url"`
	Locale    Locale `json:"locale"`
	Published bool   `json:"published"`

	Image         []byte `json:"-"`
	ImageFilename string `json:"-"`
}

type BlogRepository interface {
	PublicList(ctx context.Context, locale Locale, page, limit int) (List[Blog], error)
	PublicBySlug(ctx context.Context, locale Locale, slug string) (*Blog, error)
	List(ctx context.Context, locale Locale, q ListQuery) (List[Blog], error)
	Get(ctx context.Context, id int) (*Blog, error)
	Create(ctx context.Context, in BlogInput) (*Blog, error)
	Update(ctx context.Context, id int, in BlogInput) (*Blog, error)
	Delete(ctx context.Context, id int) error
}
