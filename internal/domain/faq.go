package domain

import (
	"context"
	"time"
)

type FAQ struct {
	ID        int       `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Order     int       `json:"order"`
	Active    bool      `json:"active"`
	Locale    Locale    `json:"locale"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FAQInput's Order is a pointer so "not chosen" (nil, service assigns the
// next slot) stays distinct from an explicit order 0.
type FAQInput struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Order    *int   `json:"order,omitempty"`
	Active   bool   `json:"active"`
	Locale   Locale `json:"locale"`
}

type FAQRepository interface {
	PublicList(ctx context.Context, locale Locale) (List[FAQ], error)
	List(ctx context.Context, locale Locale, q ListQuery) (List[FAQ], error)
	Create(ctx context.Context, in FAQInput) (*FAQ, error)
	Update(ctx context.Context, id int, in FAQInput) (*FAQ, error)
	Delete(ctx context.Context, id int) error
	Reorder(ctx context.Context, req ReorderRequest) error
}
