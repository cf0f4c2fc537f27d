package service

import (
	"context"

	"github.com/MKhiriev/go-portfolio/internal/adapter"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/models"
)

// MessagePageSize is the page size of the inbox.
const MessagePageSize = 10

type messageService struct {
	backend adapter.AdminAPI
}

func NewMessageService(backend adapter.AdminAPI) MessageService {
	return &messageService{backend: backend}
}

func (m *messageService) List(ctx context.Context, q models.MessageQuery) (models.Page[models.Message], error) {
	if q.Size <= 0 {
		q.Size = MessagePageSize
	}

	page, err := m.backend.ListMessages(ctx, q)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "messageService.List").Msg("failed to list messages")
		return models.Page[models.Message]{}, err
	}
	return page, nil
}

func (m *messageService) Open(ctx context.Context, id int64) (models.Message, error) {
	return m.backend.GetMessage(ctx, id)
}

func (m *messageService) ToggleRead(ctx context.Context, message models.Message) (models.Message, error) {
	return m.backend.SetMessageRead(ctx, message.ID, !message.Read)
}

func (m *messageService) Delete(ctx context.Context, id int64) error {
	return m.backend.DeleteMessage(ctx, id)
}
