package service

import (
	"context"
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-portfolio/internal/adapter"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/models"
)

type contactService struct {
	backend adapter.PublicAPI
}

func NewContactService(backend adapter.PublicAPI) ContactService {
	return &contactService{backend: backend}
}

func (c *contactService) Validate(msg models.ContactMessage) error {
	msg = trimContact(msg)

	switch {
	case msg.Name == "":
		return ErrContactNameRequired
	case msg.Email == "":
		return ErrContactEmailRequired
	case msg.Subject == "":
		return ErrContactSubjectRequired
	case msg.Body == "":
		return ErrContactBodyRequired
	}

	if _, err := mail.ParseAddress(msg.Email); err != nil {
		return ErrContactEmailInvalid
	}
	return nil
}

func (c *contactService) Send(ctx context.Context, msg models.ContactMessage) error {
	if err := c.Validate(msg); err != nil {
		return err
	}

	if err := c.backend.SendMessage(ctx, trimContact(msg)); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "contactService.Send").Msg("failed to send contact message")
		return err
	}
	return nil
}

func trimContact(msg models.ContactMessage) models.ContactMessage {
	return models.ContactMessage{
		Name:    strings.TrimSpace(msg.Name),
		Email:   strings.TrimSpace(msg.Email),
		Subject: strings.TrimSpace(msg.Subject),
		Body:    strings.TrimSpace(msg.Body),
	}
}
