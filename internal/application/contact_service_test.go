package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egemed/clinic_backend/internal/domain"
)

type recordingContactRepo struct {
	submitted []domain.ContactInput
}

func (r *recordingContactRepo) PublicSubmit(ctx context.Context, in domain.ContactInput) (*domain.ContactMessage, error) {
	r.submitted = append(r.submitted, in)
	return &domain.ContactMessage{ID: 1, Name: in.Name, Email: in.Email, Message: in.Message}, nil
}
func (r *recordingContactRepo) List(ctx context.Context, q domain.ListQuery) (domain.List[domain.ContactMessage], error) {
	return domain.EmptyList[domain.ContactMessage](), nil
}
func (r *recordingContactRepo) MarkRead(ctx context.Context, id int) error    { return nil }
func (r *recordingContactRepo) MarkReplied(ctx context.Context, id int) error { return nil }
func (r *recordingContactRepo) Delete(ctx context.Context, id int) error      { return nil }

func validContact() domain.ContactInput {
	return domain.ContactInput{
		Name:    "Ayşe Yılmaz",
		Email:   "ayse@example.com",
		Phone:   "+90 532 123 45 67",
		Subject: "Randevu",
		Message: "Katarakt ameliyatı hakkında bilgi almak istiyorum.",
	}
}

func TestContactSubmit(t *testing.T) {
	repo := &recordingContactRepo{}
	svc := NewContactService(repo, nil, "")

	msg, err := svc.Submit(context.Background(), validContact())
	require.NoError(t, err)
	assert.Equal(t, 1, msg.ID)
	assert.Len(t, repo.submitted, 1)
}

// Invalid input never reaches the upstream API: the first failing check
// returns a field-scoped error with an i18n key and no request is issued.
func TestContactSubmitValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*domain.ContactInput)
		wantField string
		wantKey   string
	}{
		{"missing name", func(in *domain.ContactInput) { in.Name = "  " }, "name", "contact.name_required"},
		{"missing email", func(in *domain.ContactInput) { in.Email = "" }, "email", "contact.email_required"},
		{"bad email", func(in *domain.ContactInput) { in.Email = "not-an-email" }, "email", "contact.email_invalid"},
		{"bad phone", func(in *domain.ContactInput) { in.Phone = "abc" }, "phone", "contact.phone_invalid"},
		{"short message", func(in *domain.ContactInput) { in.Message = "hi" }, "message", "contact.message_too_short"},
		{"whitespace-padded short message", func(in *domain.ContactInput) { in.Message = "   hello    " }, "message", "contact.message_too_short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &recordingContactRepo{}
			svc := NewContactService(repo, nil, "")

			in := validContact()
			tt.mutate(&in)

			_, err := svc.Submit(context.Background(), in)
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
			assert.Equal(t, tt.wantKey, verr.Key)
			assert.Empty(t, repo.submitted)
		})
	}
}

func TestContactPhoneIsOptional(t *testing.T) {
	repo := &recordingContactRepo{}
	svc := NewContactService(repo, nil, "")

	in := validContact()
	in.Phone = ""

	_, err := svc.Submit(context.Background(), in)
	assert.NoError(t, err)
}
