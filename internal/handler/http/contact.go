package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-portfolio/internal/adapter"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/models"
)

// The contact form is a two-step flow: POST /contact validates and asks for
// confirmation, /contact/confirm sends and /contact/cancel returns to the
// filled form without contacting the backend.

func (h *Handler) contactSubmit(w http.ResponseWriter, r *http.Request) {
	msg := contactFromForm(r)

	if err := h.services.Contact.Validate(msg); err != nil {
		h.renderContact(w, r, statusFromError(err), contactView{Values: msg, Error: err.Error()})
		return
	}
	h.renderContact(w, r, http.StatusOK, contactView{Values: msg, Confirming: true})
}

func (h *Handler) contactConfirm(w http.ResponseWriter, r *http.Request) {
	msg := contactFromForm(r)

	if err := h.services.Contact.Send(r.Context(), msg); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "Handler.contactConfirm").Msg("contact message not sent")
		h.renderContact(w, r, statusFromError(err), contactView{Values: msg, Error: adapter.FormatError(err)})
		return
	}
	h.renderContact(w, r, http.StatusOK, contactView{Success: contactSuccessText})
}

func (h *Handler) contactCancel(w http.ResponseWriter, r *http.Request) {
	h.renderContact(w, r, http.StatusOK, contactView{Values: contactFromForm(r)})
}

func (h *Handler) renderContact(w http.ResponseWriter, r *http.Request, status int, contact contactView) {
	landing := h.services.Landing.Load(r.Context())
	h.render(w, r, status, "landing", h.buildPage(r, landing, contact))
}

func contactFromForm(r *http.Request) models.ContactMessage {
	return models.ContactMessage{
		Name:    strings.TrimSpace(r.PostFormValue("name")),
		Email:   strings.TrimSpace(r.PostFormValue("email")),
		Subject: strings.TrimSpace(r.PostFormValue("subject")),
		Body:    strings.TrimSpace(r.PostFormValue("body")),
	}
}
