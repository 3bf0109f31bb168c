package domain

import (
	"context"
	"time"
)

type ContactMessage struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	Replied   bool      `json:"replied"`
	CreatedAt time.Time `json:"created_at"`
}

type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type ContactRepository interface {
	PublicSubmit(ctx context.Context, in ContactInput) (*ContactMessage, error)
	List(ctx context.Context, q ListQuery) (List[ContactMessage], error)
	MarkRead(ctx context.Context, id int) error
	MarkReplied(ctx context.Context, id int) error
	Delete(ctx context.Context, id int) error
}
