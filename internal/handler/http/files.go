package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/vote-monitor/internal/logger"
	"github.com/MKhiriev/vote-monitor/internal/utils"
	"github.com/MKhiriev/vote-monitor/models"
)

const (
	uploadFormField = "file"

	// maxUploadSize bounds multipart upload bodies.
	maxUploadSize = 50 << 20
)

// uploadFile godoc
//
//	@Summary	Upload a file
//	@Tags		file
//	@Accept		multipart/form-data
//	@Produce	json
//	@Security	Bearer
//	@Param		file	formData	file	true	"file to upload"
//	@Success	200		{object}	models.FileUploadResponse
//	@Failure	400		{object}	models.ValidationErrors
//	@Router		/api/v1/file/upload [post]
func (h *Handler) uploadFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		errs := models.ValidationErrors{}
		if errors.As(err, &tooLarge) {
			errs.Add(uploadFormField, "The file is too large.")
		} else {
			errs.Add(uploadFormField, "The file field is required.")
		}
		log.Debug().Err(err).Msg("invalid upload request")
		utils.WriteJSON(w, errs, http.StatusBadRequest)
		return
	}
	defer file.Close()

	address, err := h.files.Upload(r.Context(), file, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		status := statusFromError(err)
		if status == http.StatusBadRequest {
			errs := models.ValidationErrors{}
			errs.Add(uploadFormField, "The file is empty.")
			utils.WriteJSON(w, errs, status)
			return
		}
		log.Err(err).Str("file", header.Filename).Msg("file upload failed")
		utils.WriteEmptyJSON(w, status)
		return
	}

	log.Info().Str("file", header.Filename).Str("address", address).Msg("file uploaded")
	utils.WriteJSON(w, models.FileUploadResponse{FileAddress: address}, http.StatusOK)
}
