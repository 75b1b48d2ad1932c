package service

import (
	"context"
	"fmt"
	"time"

	"blog_backend/internal/config"
	"blog_backend/internal/logger"
	"blog_backend/internal/mailer"
	"blog_backend/internal/models"
	"blog_backend/internal/repository"

	"github.com/google/uuid"
)

const (
	adminTemplate = "contact_admin.html"
	replyTemplate = "contact_user_reply.html"

	adminSubject = "New contact inquiry"
	replySubject = "Thank you for contacting us"
)

// ContactService persists contact-form submissions and fans them out as an
// admin notification plus an auto-reply to the submitter.
type ContactService struct {
	repo     repository.Contacts
	sender   mailer.Sender
	renderer *mailer.Renderer
	cfg      config.Mail
	log      *logger.Logger
}

func NewContactService(repo repository.Contacts, sender mailer.Sender, renderer *mailer.Renderer, cfg config.Mail, log *logger.Logger) *ContactService {
	return &ContactService{repo: repo, sender: sender, renderer: renderer, cfg: cfg, log: log}
}

// templateContext is the data both email templates render with.
type templateContext struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// Submit stores the message and sends both emails. Delivery is best effort:
// a send failure is logged but does not fail the submission, which is
// already persisted at that point.
func (s *ContactService) Submit(ctx context.Context, in ContactInput) error {
	msg := models.ContactMessage{
		ID:            uuid.NewString(),
		Name:          in.Name,
		Email:         in.Email,
		ContactNumber: in.ContactNumber,
		Message:       in.Message,
		SubmittedAt:   time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, msg); err != nil {
		return err
	}

	tc := templateContext{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.ContactNumber,
		Message: in.Message,
	}

	s.deliver(ctx, mailer.Message{
		To:      s.cfg.AdminAddress,
		Subject: adminSubject,
		Text: fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\n\nMessage:\n%s",
			in.Name, in.Email, in.ContactNumber, in.Message),
		HTML: s.render(adminTemplate, tc),
	})
	s.deliver(ctx, mailer.Message{
		To:      in.Email,
		Subject: replySubject,
		Text: fmt.Sprintf("Hi %s,\n\nThank you for contacting us. We will reply soon.",
			in.Name),
		HTML: s.render(replyTemplate, tc),
	})
	return nil
}

// render returns the rendered template or "" on failure; the email then
// goes out as plain text only.
func (s *ContactService) render(name string, tc templateContext) string {
	if s.renderer == nil {
		return ""
	}
	html, err := s.renderer.Render(name, tc)
	if err != nil {
		if s.log != nil {
			s.log.Errorw("contact_template_render_failed", "template", name, "err", err)
		}
		return ""
	}
	return html
}

func (s *ContactService) deliver(ctx context.Context, m mailer.Message) {
	if m.To == "" {
		return
	}
	if err := s.sender.Send(ctx, m); err != nil {
		if s.log != nil {
			s.log.Errorw("contact_email_failed", "to", m.To, "err", err)
		}
		return
	}
	if s.log != nil {
		s.log.Infow("contact_email_sent", "to", m.To)
	}
}
