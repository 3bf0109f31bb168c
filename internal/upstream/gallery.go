package upstream

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/egemed/clinic_backend/internal/domain"
)

type GalleryRepository struct {
	api *Client
}

func NewGalleryRepository(api *Client) domain.GalleryRepository {
	return &GalleryRepository{api: api}
}

func (r *GalleryRepository) PublicList(ctx context.Context) (domain.List[domain.GalleryPhoto], error) {
	payload, err := r.api.request(ctx, http.MethodGet, "/api/v1/public/gallery", nil)
	if err != nil {
		return domain.List[domain.GalleryPhoto]{}, err
	}
	return decodeList[domain.GalleryPhoto](payload)
}

func (r *GalleryRepository) List(ctx context.Context, query domain.ListQuery) (domain.List[domain.GalleryPhoto], error) {
	payload, err := r.api.request(ctx, http.MethodGet, "/api/v1/gallery?"+listValues("", query).Encode(), nil)
	if err != nil {
		return domain.List[domain.GalleryPhoto]{}, err
	}
	return decodeList[domain.GalleryPhoto](payload)
}

func (r *GalleryRepository) Create(ctx context.Context, in domain.GalleryPhotoInput) (*domain.GalleryPhoto, error) {
	payload, err := r.send(ctx, http.MethodPost, "/api/v1/gallery", in)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.GalleryPhoto](payload)
}

func (r *GalleryRepository) Update(ctx context.Context, id int, in domain.GalleryPhotoInput) (*domain.GalleryPhoto, error) {
	payload, err := r.send(ctx, http.MethodPut, fmt.Sprintf("/api/v1/gallery/%d", id), in)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.GalleryPhoto](payload)
}

func (r *GalleryRepository) Delete(ctx context.Context, id int) error {
	_, err := r.api.request(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/gallery/%d", id), nil)
	return err
}

func (r *GalleryRepository) Reorder(ctx context.Context, req domain.ReorderRequest) error {
	_, err := r.api.request(ctx, http.MethodPut, "/api/v1/gallery/reorder", req)
	return err
}

func (r *GalleryRepository) send(ctx context.Context, method, path string, in domain.GalleryPhotoInput) ([]byte, error) {
	if in.Image == nil {
		return r.api.request(ctx, method, path, in)
	}
	fields := map[string]string{
		"url":      in.URL,
		"title":    in.Title,
		"alt_text": in.AltText,
		"active":   strconv.FormatBool(in.Active),
	}
	if in.Order != nil {
		fields["order"] = strconv.Itoa(*in.Order)
	}
	return r.api.requestMultipart(ctx, method, path, fields, "image", in.ImageFilename, in.Image)
}
