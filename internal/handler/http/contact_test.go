package http

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-portfolio/internal/adapter"
	"github.com/MKhiriev/go-portfolio/internal/service"
	"github.com/MKhiriev/go-portfolio/models"
)

func contactValues() url.Values {
	return url.Values{
		"name":    {"Ann"},
		"email":   {"ann@example.com"},
		"subject": {"Hello"},
		"body":    {"Let us build something"},
	}
}

var contactMsg = models.ContactMessage{
	Name: "Ann", Email: "ann@example.com", Subject: "Hello", Body: "Let us build something",
}

func TestContactSubmit_AsksForConfirmation(t *testing.T) {
	s := newTestSite(t)
	s.landing.EXPECT().Load(gomock.Any()).Return(testLanding())
	s.contact.EXPECT().Validate(contactMsg).Return(nil)
	s.contact.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)

	rec := s.do(postForm("/contact", contactValues()))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Send message from Ann (ann@example.com)?")
	assert.Contains(t, body, "Subject: Hello")
	assert.Contains(t, body, `formaction="/contact/confirm#contact"`)
}

func TestContactSubmit_ValidationError(t *testing.T) {
	s := newTestSite(t)
	s.landing.EXPECT().Load(gomock.Any()).Return(testLanding())
	s.contact.EXPECT().Validate(gomock.Any()).Return(service.ErrContactEmailInvalid)

	values := contactValues()
	values.Set("email", "not-an-email")
	rec := s.do(postForm("/contact", values))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, service.ErrContactEmailInvalid.Error())
	assert.Contains(t, body, `value="not-an-email"`)
	assert.NotContains(t, body, "Send message from")
}

func TestContactConfirm_Success(t *testing.T) {
	s := newTestSite(t)
	s.landing.EXPECT().Load(gomock.Any()).Return(testLanding())
	s.contact.EXPECT().Send(gomock.Any(), contactMsg).Return(nil)

	rec := s.do(postForm("/contact/confirm", contactValues()))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, contactSuccessText)
	assert.NotContains(t, body, `value="Ann"`)
}

func TestContactConfirm_BackendError(t *testing.T) {
	s := newTestSite(t)
	s.landing.EXPECT().Load(gomock.Any()).Return(testLanding())
	s.contact.EXPECT().Send(gomock.Any(), contactMsg).Return(&adapter.APIError{
		Status: http.StatusBadGateway,
		Body:   models.APIErrorResponse{Message: "Mail relay is down"},
	})

	rec := s.do(postForm("/contact/confirm", contactValues()))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Mail relay is down")
	assert.Contains(t, body, `value="Ann"`)
}

func TestContactCancel_KeepsValuesWithoutSending(t *testing.T) {
	s := newTestSite(t)
	s.landing.EXPECT().Load(gomock.Any()).Return(testLanding())
	s.contact.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)
	s.contact.EXPECT().Validate(gomock.Any()).Times(0)

	rec := s.do(postForm("/contact/cancel", contactValues()))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `value="Ann"`)
	assert.Contains(t, body, "Let us build something")
	assert.NotContains(t, body, "Send message from")
}
