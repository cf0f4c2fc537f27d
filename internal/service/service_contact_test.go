package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-portfolio/internal/adapter"
	"github.com/MKhiriev/go-portfolio/internal/mock"
	"github.com/MKhiriev/go-portfolio/models"
)

func TestContactService_Validate(t *testing.T) {
	valid := models.ContactMessage{Name: "Ann", Email: "ann@example.com", Subject: "Hi", Body: "Hello"}

	tests := []struct {
		name   string
		modify func(m *models.ContactMessage)
		want   error
	}{
		{"valid", func(*models.ContactMessage) {}, nil},
		{"blank name", func(m *models.ContactMessage) { m.Name = "  " }, ErrContactNameRequired},
		{"no email", func(m *models.ContactMessage) { m.Email = "" }, ErrContactEmailRequired},
		{"bad email", func(m *models.ContactMessage) { m.Email = "ann" }, ErrContactEmailInvalid},
		{"no subject", func(m *models.ContactMessage) { m.Subject = "" }, ErrContactSubjectRequired},
		{"no body", func(m *models.ContactMessage) { m.Body = "\n" }, ErrContactBodyRequired},
	}

	svc := NewContactService(mock.NewMockPublicAPI(gomock.NewController(t)))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := valid
			tt.modify(&msg)
			assert.ErrorIs(t, svc.Validate(msg), tt.want)
		})
	}
}

func TestContactService_Send(t *testing.T) {
	backend := mock.NewMockPublicAPI(gomock.NewController(t))
	svc := NewContactService(backend)
	ctx := context.Background()

	backend.EXPECT().SendMessage(ctx, models.ContactMessage{
		Name: "Ann", Email: "ann@example.com", Subject: "Hi", Body: "Hello",
	}).Return(nil)

	err := svc.Send(ctx, models.ContactMessage{Name: " Ann ", Email: "ann@example.com", Subject: "Hi ", Body: " Hello"})
	assert.NoError(t, err)
}

func TestContactService_Send_InvalidSkipsBackend(t *testing.T) {
	backend := mock.NewMockPublicAPI(gomock.NewController(t))
	svc := NewContactService(backend)

	backend.EXPECT().SendMessage(gomock.Any(), gomock.Any()).Times(0)

	assert.ErrorIs(t, svc.Send(context.Background(), models.ContactMessage{}), ErrContactNameRequired)
}

func TestContactService_Send_BackendError(t *testing.T) {
	backend := mock.NewMockPublicAPI(gomock.NewController(t))
	svc := NewContactService(backend)

	backend.EXPECT().SendMessage(gomock.Any(), gomock.Any()).Return(adapter.ErrBadGateway)

	err := svc.Send(context.Background(), models.ContactMessage{Name: "A", Email: "a@b.co", Subject: "S", Body: "B"})
	assert.ErrorIs(t, err, adapter.ErrBadGateway)
}
