package application

import (
	"context"
	"fmt"
	"log"

	"github.com/egemed/clinic_backend/internal/domain"
	"github.com/egemed/clinic_backend/internal/email"
)

type ContactService struct {
	repo      domain.ContactRepository
	mailer    *email.Client
	notifyTo  string
	validator Validator
}

// NewContactService accepts a nil mailer; submissions then skip the
// notification step.
func NewContactService(repo domain.ContactRepository, mailer *email.Client, notifyTo string) *ContactService {
	return &ContactService{repo: repo, mailer: mailer, notifyTo: notifyTo}
}

// Submit validates the public contact form before any request is issued,
// forwards it upstream, and notifies the clinic by mail. A mail failure is
// logged, never surfaced: the visitor's message is already stored.
func (s *ContactService) Submit(ctx context.Context, in domain.ContactInput) (*domain.ContactMessage, error) {
	if err := s.Validate(in); err != nil {
		return nil, err
	}
	msg, err := s.repo.PublicSubmit(ctx, in)
	if err != nil {
		return nil, err
	}
	if s.mailer != nil && s.notifyTo != "" {
		body := fmt.Sprintf(
			"<p><strong>%s</strong> (%s, %s)</p><p>%s</p>",
			in.Name, in.Email, in.Phone, in.Message,
		)
		if err := s.mailer.Send(s.notifyTo, "New contact message: "+in.Subject, body); err != nil {
			log.Printf("contact notification mail failed: %v", err)
		}
	}
	return msg, nil
}

// Validate runs every client-side check; the first failure wins and no
// request goes out.
func (s *ContactService) Validate(in domain.ContactInput) error {
	if err := s.validator.ValidateName(in.Name); err != nil {
		return err
	}
	if err := s.validator.ValidateEmail(in.Email); err != nil {
		return err
	}
	if err := s.validator.ValidatePhone(in.Phone); err != nil {
		return err
	}
	return s.validator.ValidateMessage(in.Message)
}

func (s *ContactService) List(ctx context.Context, q domain.ListQuery) (domain.List[domain.ContactMessage], error) {
	return s.repo.List(ctx, q)
}

func (s *ContactService) MarkRead(ctx context.Context, id int) error {
	return s.repo.MarkRead(ctx, id)
}

func (s *ContactService) MarkReplied(ctx context.Context, id int) error {
	return s.repo.MarkReplied(ctx, id)
}

func (s *ContactService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
