package domain

import (
	"context"
	"time"
)

type Specialty struct {
	ID         int       `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Summary    string    `json:"summary"`
	Content    string    `json:"content"`
	ImageURL   string    `json:"image_url"`
	CategoryID int       `json:"category_id"`
	Order      int       `json:"order"`
	Locale     Locale    `json:"locale"`
	Published  bool      `json:"published"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SpecialtyInput's Order is a pointer: nil means "not chosen" and the
// service assigns the next slot, while an explicit 0 is kept.
type SpecialtyInput struct {
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	Summary    string `json:"summary"`
	Content    string `json:"content"`
	ImageURL   string `json:"image_url"`
	CategoryID int    `json:"category_id"`
	Order      *int   `json:"order,omitempty"`
	Locale     Locale `json:"locale"`
	Published  bool   `json:"published"`

	Image         []byte `json:"-"`
	ImageFilename string `json:"-"`
}

type Category struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Locale    Locale    `json:"locale"`
	CreatedAt time.Time `json:"created_at"`
}

type CategoryInput struct {
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Locale Locale `json:"locale"`
}

// PublicSpecialties groups the published specialties under their categories
// for the public site.
type PublicSpecialties struct {
	Categories []Category  `json:"categories"`
	Data       []Specialty `json:"data"`
	Total      int         `json:"total"`
}

type SpecialtyRepository interface {
	PublicList(ctx context.Context, locale Locale) (PublicSpecialties, error)
	PublicBySlug(ctx context.Context, locale Locale, slug string) (*Specialty, error)
	List(ctx context.Context, locale Locale, q ListQuery) (List[Specialty], error)
	Get(ctx context.Context, id int) (*Specialty, error)
	Create(ctx context.Context, in SpecialtyInput) (*Specialty, error)
	Update(ctx context.Context, id int, in SpecialtyInput) (*Specialty, error)
	Delete(ctx context.Context, id int) error
	Reorder(ctx context.Context, req ReorderRequest) error
}

type CategoryRepository interface {
	List(ctx context.Context, locale Locale) ([]Category, error)
	Create(ctx context.Context, in CategoryInput) (*Category, error)
	Update(ctx context.Context, id int, in CategoryInput) (*Category, error)
	Delete(ctx context.Context, id int) error
}
