package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/egemed/clinic_backend/internal/domain"
)

type SpecialtyRepository struct {
	api *Client
}

func NewSpecialtyRepository(api *Client) domain.SpecialtyRepository {
	return &SpecialtyRepository{api: api}
}

func (r *SpecialtyRepository) PublicList(ctx context.Context, locale domain.Locale) (domain.PublicSpecialties, error) {
	payload, err := r.api.request(ctx, http.MethodGet, "/api/v1/public/specialties?locale="+string(locale), nil)
	if err != nil {
		return domain.PublicSpecialties{}, err
	}
	// This endpoint has two historical shapes as well: a bare array of
	// specialties, or the grouped {categories, data, total} object.
	var grouped domain.PublicSpecialties
	if err := json.Unmarshal(payload, &grouped); err == nil && grouped.Data != nil {
		if grouped.Categories == nil {
			grouped.Categories = []domain.Category{}
		}
		if grouped.Total == 0 {
			grouped.Total = len(grouped.Data)
		}
		return grouped, nil
	}
	list, err := decodeList[domain.Specialty](payload)
	if err != nil {
		return domain.PublicSpecialties{}, err
	}
	return domain.PublicSpecialties{
		Categories: []domain.Category{},
		Data:       list.Data,
		Total:      list.Total,
	}, nil
}

func (r *SpecialtyRepository) PublicBySlug(ctx context.Context, locale domain.Locale, slug string) (*domain.Specialty, error) {
	path := fmt.Sprintf("/api/v1/public/specialties/%s?locale=%s", url.PathEscape(slug), locale)
	payload, err := r.api.request(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Specialty](payload)
}

func (r *SpecialtyRepository) List(ctx context.Context, locale domain.Locale, query domain.ListQuery) (domain.List[domain.Specialty], error) {
	payload, err := r.api.request(ctx, http.MethodGet, "/api/v1/specialties?"+listValues(locale, query).Encode(), nil)
	if err != nil {
		return domain.List[domain.Specialty]{}, err
	}
	return decodeList[domain.Specialty](payload)
}

func (r *SpecialtyRepository) Get(ctx context.Context, id int) (*domain.Specialty, error) {
	payload, err := r.api.request(ctx, http.MethodGet, fmt.Sprintf("/api/v1/specialties/%d", id), nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Specialty](payload)
}

func (r *SpecialtyRepository) Create(ctx context.Context, in domain.SpecialtyInput) (*domain.Specialty, error) {
	payload, err := r.send(ctx, http.MethodPost, "/api/v1/specialties", in)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Specialty](payload)
}

func (r *SpecialtyRepository) Update(ctx context.Context, id int, in domain.SpecialtyInput) (*domain.Specialty, error) {
	payload, err := r.send(ctx, http.MethodPut, fmt.Sprintf("/api/v1/specialties/%d", id), in)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Specialty](payload)
}

func (r *SpecialtyRepository) Delete(ctx context.Context, id int) error {
	_, err := r.api.request(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/specialties/%d", id), nil)
	return err
}

func (r *SpecialtyRepository) Reorder(ctx context.Context, req domain.ReorderRequest) error {
	_, err := r.api.request(ctx, http.MethodPut, "/api/v1/specialties/reorder", req)
	return err
}

func (r *SpecialtyRepository) send(ctx context.Context, method, path string, in domain.SpecialtyInput) ([]byte, error) {
	if in.Image == nil {
		return r.api.request(ctx, method, path, in)
	}
	fields := map[string]string{
		"title":       in.Title,
		"slug":        in.Slug,
		"summary":     in.Summary,
		"content":     in.Content,
		"image_url":   in.ImageURL,
		"category_id": strconv.Itoa(in.CategoryID),
		"locale":      string(in.Locale),
		"published":   strconv.FormatBool(in.Published),
	}
	if in.Order != nil {
		fields["order"] = strconv.Itoa(*in.Order)
	}
	return r.api.requestMultipart(ctx, method, path, fields, "image", in.ImageFilename, in.Image)
}

type CategoryRepository struct {
	api *Client
}

func NewCategoryRepository(api *Client) domain.CategoryRepository {
	return &CategoryRepository{api: api}
}

func (r *CategoryRepository) List(ctx context.Context, locale domain.Locale) ([]domain.Category, error) {
	payload, err := r.api.request(ctx, http.MethodGet, "/api/v1/categories?locale="+string(locale), nil)
	if err != nil {
		return nil, err
	}
	list, err := decodeList[domain.Category](payload)
	if err != nil {
		return nil, err
	}
	return list.Data, nil
}

func (r *CategoryRepository) Create(ctx context.Context, in domain.CategoryInput) (*domain.Category, error) {
	payload, err := r.api.request(ctx, http.MethodPost, "/api/v1/categories", in)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Category](payload)
}

func (r *CategoryRepository) Update(ctx context.Context, id int, in domain.CategoryInput) (*domain.Category, error) {
	payload, err := r.api.request(ctx, http.MethodPut, fmt.Sprintf("/api/v1/categories/%d", id), in)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Category](payload)
}

func (r *CategoryRepository) Delete(ctx context.Context, id int) error {
	_, err := r.api.request(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/categories/%d", id), nil)
	return err
}
