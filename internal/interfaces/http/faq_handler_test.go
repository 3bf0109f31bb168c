package http

import (
	"context"
	"encoding/json"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egemed/clinic_backend/internal/application"
	"github.com/egemed/clinic_backend/internal/domain"
)

type stubFAQRepo struct {
	list       domain.List[domain.FAQ]
	reorderErr error
	reorders   int
	creates    int
	deletes    []int
}

func (r *stubFAQRepo) PublicList(ctx context.Context, locale domain.Locale) (domain.List[domain.FAQ], error) {
	return r.list, nil
}
func (r *stubFAQRepo) List(ctx context.Context, locale domain.Locale, q domain.ListQuery) (domain.List[domain.FAQ], error) {
	return r.list, nil
}
func (r *stubFAQRepo) Create(ctx context.Context, in domain.FAQInput) (*domain.FAQ, error) {
	r.creates++
	return &domain.FAQ{ID: 1, Question: in.Question, Answer: in.Answer}, nil
}
func (r *stubFAQRepo) Update(ctx context.Context, id int, in domain.FAQInput) (*domain.FAQ, error) {
	return &domain.FAQ{ID: id, Question: in.Question, Answer: in.Answer}, nil
}
func (r *stubFAQRepo) Delete(ctx context.Context, id int) error {
	r.deletes = append(r.deletes, id)
	return nil
}
func (r *stubFAQRepo) Reorder(ctx context.Context, req domain.ReorderRequest) error {
	r.reorders++
	return r.reorderErr
}

func newFAQApp(repo *stubFAQRepo) *fiber.App {
	h := NewFAQHandler(application.NewFAQService(repo, nil))
	app := fiber.New()
	grp := app.Group("/api/admin/faqs")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
	grp.Post("/:id/move", h.Move)
	return app
}

func threeFAQs() domain.List[domain.FAQ] {
	return domain.List[domain.FAQ]{Data: []domain.FAQ{
		{ID: 1, Question: "a", Order: 0},
		{ID: 2, Question: "b", Order: 1},
		{ID: 3, Question: "c", Order: 2},
	}, Total: 3}
}

func moveRequest(path, direction string) *nethttp.Request {
	req := httptest.NewRequest(nethttp.MethodPost, path, strings.NewReader(`{"direction":"`+direction+`"}`))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestFAQMoveEndpoint(t *testing.T) {
	repo := &stubFAQRepo{list: threeFAQs()}
	app := newFAQApp(repo)

	resp, err := app.Test(moveRequest("/api/admin/faqs/2/move", "up"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	var body struct {
		Status string       `json:"status"`
		Data   []domain.FAQ `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "confirmed", body.Status)
	require.Len(t, body.Data, 3)
	assert.Equal(t, 2, body.Data[0].ID)
	assert.Equal(t, 1, repo.reorders)
}

func TestFAQMoveBoundaryIsNoop(t *testing.T) {
	repo := &stubFAQRepo{list: threeFAQs()}
	app := newFAQApp(repo)

	resp, err := app.Test(moveRequest("/api/admin/faqs/1/move", "up"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	var body struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "noop", body.Status)
	assert.Zero(t, repo.reorders)
}

// A move under an active search filter is rejected outright.
func TestFAQMoveRejectedWhileFiltered(t *testing.T) {
	repo := &stubFAQRepo{list: threeFAQs()}
	app := newFAQApp(repo)

	resp, err := app.Test(moveRequest("/api/admin/faqs/2/move?search=lens", "up"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, nethttp.StatusUnprocessableEntity, resp.StatusCode)
	assert.Zero(t, repo.reorders)
}

func TestFAQMoveRollbackAnswersBadGateway(t *testing.T) {
	repo := &stubFAQRepo{list: threeFAQs(), reorderErr: errors.New("upstream 500")}
	app := newFAQApp(repo)

	resp, err := app.Test(moveRequest("/api/admin/faqs/2/move", "down"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, nethttp.StatusBadGateway, resp.StatusCode)

	var body struct {
		Status string       `json:"status"`
		Data   []domain.FAQ `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "rolled_back", body.Status)
	// The rolled-back payload is the authoritative server list.
	assert.Len(t, body.Data, 3)
}

func TestFAQMoveInvalidDirection(t *testing.T) {
	app := newFAQApp(&stubFAQRepo{list: threeFAQs()})

	resp, err := app.Test(moveRequest("/api/admin/faqs/2/move", "sideways"))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
}

// A create with a missing required field is a client error, not a server one.
func TestFAQCreateMissingAnswerAnswersBadRequest(t *testing.T) {
	repo := &stubFAQRepo{list: threeFAQs()}
	app := newFAQApp(repo)

	req := httptest.NewRequest(nethttp.MethodPost, "/api/admin/faqs/", strings.NewReader(`{"question":"q"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, repo.creates)

	var body struct {
		Error string `json:"error"`
		Field string `json:"field"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "answer", body.Field)
	assert.NotEmpty(t, body.Error)
}

// Deletes are confirm-gated: without the flag nothing reaches the upstream.
func TestFAQDeleteRequiresConfirm(t *testing.T) {
	repo := &stubFAQRepo{list: threeFAQs()}
	app := newFAQApp(repo)

	resp, err := app.Test(httptest.NewRequest(nethttp.MethodDelete, "/api/admin/faqs/2", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, repo.deletes)

	resp, err = app.Test(httptest.NewRequest(nethttp.MethodDelete, "/api/admin/faqs/2?confirm=true", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, nethttp.StatusNoContent, resp.StatusCode)
	assert.Equal(t, []int{2}, repo.deletes)
}
