package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/egemed/clinic_backend/internal/domain"
)

type FAQRepository struct {
	api *Client
}

func NewFAQRepository(api *Client) domain.FAQRepository {
	return &FAQRepository{api: api}
}

func (r *FAQRepository) PublicList(ctx context.Context, locale domain.Locale) (domain.List[domain.FAQ], error) {
	payload, err := r.api.request(ctx, http.MethodGet, "/api/v1/public/faqs?locale="+string(locale), nil)
	if err != nil {
		return domain.List[domain.FAQ]{}, err
	}
	return decodeList[domain.FAQ](payload)
}

func (r *FAQRepository) List(ctx context.Context, locale domain.Locale, query domain.ListQuery) (domain.List[domain.FAQ], error) {
	payload, err := r.api.request(ctx, http.MethodGet, "/api/v1/faqs?"+listValues(locale, query).Encode(), nil)
	if err != nil {
		return domain.List[domain.FAQ]{}, err
	}
	return decodeList[domain.FAQ](payload)
}

func (r *FAQRepository) Create(ctx context.Context, in domain.FAQInput) (*domain.FAQ, error) {
	payload, err := r.api.request(ctx, http.MethodPost, "/api/v1/faqs", in)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.FAQ](payload)
}

func (r *FAQRepository) Update(ctx context.Context, id int, in domain.FAQInput) (*domain.FAQ, error) {
	payload, err := r.api.request(ctx, http.MethodPut, fmt.Sprintf("/api/v1/faqs/%d", id), in)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.FAQ](payload)
}

func (r *FAQRepository) Delete(ctx context.Context, id int) error {
	_, err := r.api.request(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/faqs/%d", id), nil)
	return err
}

func (r *FAQRepository) Reorder(ctx context.Context, req domain.ReorderRequest) error {
	_, err := r.api.request(ctx, http.MethodPut, "/api/v1/faqs/reorder", req)
	return err
}
