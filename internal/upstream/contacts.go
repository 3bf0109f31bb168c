package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/egemed/clinic_backend/internal/domain"
)

type ContactRepository struct {
	api *Client
}

func NewContactRepository(api *Client) domain.ContactRepository {
	return &ContactRepository{api: api}
}

func (r *ContactRepository) PublicSubmit(ctx context.Context, in domain.ContactInput) (*domain.ContactMessage, error) {
	payload, err := r.api.request(ctx, http.MethodPost, "/api/v1/public/contact", in)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.ContactMessage](payload)
}

func (r *ContactRepository) List(ctx context.Context, query domain.ListQuery) (domain.List[domain.ContactMessage], error) {
	payload, err := r.api.request(ctx, http.MethodGet, "/api/v1/contact-messages?"+listValues("", query).Encode(), nil)
	if err != nil {
		return domain.List[domain.ContactMessage]{}, err
	}
	return decodeList[domain.ContactMessage](payload)
}

func (r *ContactRepository) MarkRead(ctx context.Context, id int) error {
	_, err := r.api.request(ctx, http.MethodPatch, fmt.Sprintf("/api/v1/contact-messages/%d/read", id), nil)
	return err
}

func (r *ContactRepository) MarkReplied(ctx context.Context, id int) error {
	_, err := r.api.request(ctx, http.MethodPatch, fmt.Sprintf("/api/v1/contact-messages/%d/replied", id), nil)
	return err
}

func (r *ContactRepository) Delete(ctx context.Context, id int) error {
	_, err := r.api.request(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/contact-messages/%d", id), nil)
	return err
}
