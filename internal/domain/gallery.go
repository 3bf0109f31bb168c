package domain

import (
	"context"
	"time"
)

type GalleryPhoto struct {
	ID        int       `json:"id"`
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	AltText   string    `json:"alt_text"`
	Order     int       `json:"order"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// GalleryPhotoInput's Order is a pointer: nil means "not chosen" and the
// service assigns the next slot, while an explicit 0 is kept.
type GalleryPhotoInput struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	AltText string `json:"alt_text"`
	Order   *int   `json:"order,omitempty"`
	Active  bool   `json:"active"`

	Image         []byte `json:"-"`
	ImageFilename string `json:"-"`
}

type GalleryRepository interface {
	PublicList(ctx context.Context) (List[GalleryPhoto], error)
	List(ctx context.Context, q ListQuery) (List[GalleryPhoto], error)
	Create(ctx context.Context, in GalleryPhotoInput) (*GalleryPhoto, error)
	Update(ctx context.Context, id int, in GalleryPhotoInput) (*GalleryPhoto, error)
	Delete(ctx context.Context, id int) error
	Reorder(ctx context.Context, req ReorderRequest) error
}
