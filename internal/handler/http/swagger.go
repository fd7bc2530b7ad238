package http

import (
	"net/http"

	"github.com/swaggo/swag"

	"github.com/MKhiriev/vote-monitor/docs"
	"github.com/MKhiriev/vote-monitor/internal/logger"
	"github.com/MKhiriev/vote-monitor/internal/utils"
)

// swaggerSpec serves the generated OpenAPI document.
func (h *Handler) swaggerSpec(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("swagger document is not registered")
		utils.WriteEmptyJSON(w, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(doc))
}
