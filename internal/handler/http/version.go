package http

import (
	"net/http"

	"github.com/MKhiriev/vote-monitor/internal/utils"
)

// getServerVersion godoc
//
//	@Summary	Build information
//	@Tags		info
//	@Produce	json
//	@Success	200	{object}	models.VersionResponse
//	@Router		/api/version [get]
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetBuildInfo(r.Context())
	utils.WriteJSON(w, info.Response(), http.StatusOK)
}
