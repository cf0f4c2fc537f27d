package http

import (
	"net/http"

	"github.com/MKhiriev/go-portfolio/internal/utils"
)

func (h *Handler) landing(w http.ResponseWriter, r *http.Request) {
	landing := h.services.Landing.Load(r.Context())
	h.render(w, r, http.StatusOK, "landing", h.buildPage(r, landing, contactView{}))
}

// testimonialPartial serves the testimonial card polled by the page on the
// rotation interval.
func (h *Handler) testimonialPartial(w http.ResponseWriter, r *http.Request) {
	landing := h.services.Landing.Load(r.Context())
	card := h.currentTestimonial(landing.Testimonials)
	if card == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.render(w, r, http.StatusOK, "testimonial", card)
}

func (h *Handler) landingJSON(w http.ResponseWriter, r *http.Request) {
	landing := h.services.Landing.Load(r.Context())
	if _, err := utils.WriteJSON(w, landing, http.StatusOK); err != nil {
		h.logger.Err(err).Str("func", "Handler.landingJSON").Msg("failed to write landing")
	}
}
