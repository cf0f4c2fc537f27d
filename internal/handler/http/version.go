package http

import (
	"net/http"

	"github.com/MKhiriev/go-portfolio/internal/utils"
	"github.com/MKhiriev/go-portfolio/models"
)

type versionResponse struct {
	AppVersion string              `json:"appVersion"`
	Build      models.AppBuildInfo `json:"build"`
}

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	resp := versionResponse{
		AppVersion: h.services.AppInfo.GetAppVersion(ctx),
		Build:      h.services.AppInfo.GetBuildInfo(ctx),
	}

	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		h.logger.Err(err).Str("func", "Handler.getVersion").Msg("failed to write version")
	}
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}
