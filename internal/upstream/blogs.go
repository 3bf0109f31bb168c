package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/egemed/clinic_backend/internal/domain"
)

type BlogRepository struct {
	api *Client
}

func NewBlogRepository(api *Client) domain.BlogRepository {
	return &BlogRepository{api: api}
}

func (r *BlogRepository) PublicList(ctx context.Context, locale domain.Locale, page, limit int) (domain.List[domain.Blog], error) {
	q := url.Values{}
	q.Set("locale", string(locale))
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	payload, err := r.api.request(ctx, http.MethodGet, "/api/v1/public/blogs?"+q.Encode(), nil)
	if err != nil {
		return domain.List[domain.Blog]{}, err
	}
	return decodeList[domain.Blog](payload)
}

func (r *BlogRepository) PublicBySlug(ctx context.Context, locale domain.Locale, slug string) (*domain.Blog, error) {
	path := fmt.Sprintf("/api/v1/public/blogs/%s?locale=%s", url.PathEscape(slug), locale)
	payload, err := r.api.request(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Blog](payload)
}

func (r *BlogRepository) List(ctx context.Context, locale domain.Locale, query domain.ListQuery) (domain.List[domain.Blog], error) {
	payload, err := r.api.request(ctx, http.MethodGet, "/api/v1/blogs?"+listValues(locale, query).Encode(), nil)
	if err != nil {
		return domain.List[domain.Blog]{}, err
	}
	return decodeList[domain.Blog](payload)
}

func (r *BlogRepository) Get(ctx context.Context, id int) (*domain.Blog, error) {
	payload, err := r.api.request(ctx, http.MethodGet, fmt.Sprintf("/api/v1/blogs/%d", id), nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Blog](payload)
}

func (r *BlogRepository) Create(ctx context.Context, in domain.BlogInput) (*domain.Blog, error) {
	payload, err := r.send(ctx, http.MethodPost, "/api/v1/blogs", in)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Blog](payload)
}

func (r *BlogRepository) Update(ctx context.Context, id int, in domain.BlogInput) (*domain.Blog, error) {
	payload, err := r.send(ctx, http.MethodPut, fmt.Sprintf("/api/v1/blogs/%d", id), in)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Blog](payload)
}

func (r *BlogRepository) Delete(ctx context.Context, id int) error {
	_, err := r.api.request(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/blogs/%d", id), nil)
	return err
}

// send picks the body encoding per call: multipart when a file is attached,
// JSON otherwise.
func (r *BlogRepository) send(ctx context.Context, method, path string, in domain.BlogInput) ([]byte, error) {
	if in.Image == nil {
		return r.api.request(ctx, method, path, in)
	}
	fields := map[string]string{
		"title":     in.Title,
		"slug":      in.Slug,
		"summary":   in.Summary,
		"content":   in.Content,
		"image_url": in.ImageURL,
		"locale":    string(in.Locale),
		"published": strconv.FormatBool(in.Published),
	}
	return r.api.requestMultipart(ctx, method, path, fields, "image", in.ImageFilename, in.Image)
}

// listValues builds the shared admin list query string.
func listValues(locale domain.Locale, q domain.ListQuery) url.Values {
	q = q.Normalize()
	v := url.Values{}
	if locale != "" {
		v.Set("locale", string(locale))
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("limit", strconv.Itoa(q.Limit))
	return v
}
