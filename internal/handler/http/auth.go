package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/vote-monitor/internal/logger"
	"github.com/MKhiriev/vote-monitor/internal/service"
	"github.com/MKhiriev/vote-monitor/internal/utils"
	"github.com/MKhiriev/vote-monitor/models"
)

// deviceMismatchMessage is returned when a locked observer logs in from
// another device.
const deviceMismatchMessage = "A aparut o eroare la logarea in aplicatie. Contul este asociat cu un alt dispozitiv. Va rugam sa contactati organizatia."

// authorizeObserver godoc
//
//	@Summary	Authorize an observer
//	@Tags		access
//	@Accept		json
//	@Produce	json
//	@Param		request	body		models.AuthorizeRequest	true	"phone, PIN and device id"
//	@Success	200		{object}	models.TokenResponse
//	@Failure	400		{object}	models.LoginErrorResponse
//	@Router		/api/v1/access/authorize [post]
func (h *Handler) authorizeObserver(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.AuthorizeRequest
	if errs := h.decodeAndValidate(r, &request); errs != nil {
		log.Debug().Any("errors", errs).Msg("invalid authorize request")
		utils.WriteJSON(w, errs, http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.LoginObserver(r.Context(), request)
	if err != nil {
		h.writeLoginError(w, r, err)
		return
	}

	log.Debug().Str("user", token.Subject).Msg("observer successfully logged in")
	utils.WriteJSON(w, models.TokenResponse{AccessToken: token.String(), ExpiresIn: token.ExpiresIn()}, http.StatusOK)
}

// authorizeNgoAdmin godoc
//
//	@Summary	Authorize an NGO admin
//	@Tags		access
//	@Accept		json
//	@Produce	json
//	@Param		request	body		models.AdminAuthorizeRequest	true	"account and password"
//	@Success	200		{object}	models.TokenResponse
//	@Failure	400		{object}	models.LoginErrorResponse
//	@Router		/api/v2/access/authorize [post]
func (h *Handler) authorizeNgoAdmin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.AdminAuthorizeRequest
	if errs := h.decodeAndValidate(r, &request); errs != nil {
		utils.WriteJSON(w, errs, http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.LoginNgoAdmin(r.Context(), request)
	if err != nil {
		h.writeLoginError(w, r, err)
		return
	}

	log.Debug().Str("user", token.Subject).Msg("ngo admin successfully logged in")
	utils.WriteJSON(w, models.TokenResponse{AccessToken: token.String(), ExpiresIn: token.ExpiresIn()}, http.StatusOK)
}

// writeLoginError answers rejected logins with 400 and a generic message,
// other failures with an empty JSON body.
func (h *Handler) writeLoginError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status != http.StatusBadRequest {
		log.Err(err).Msg("unexpected error occurred during login")
		utils.WriteEmptyJSON(w, status)
		return
	}

	message := h.invalidCredentialsMessage
	if errors.Is(err, service.ErrDeviceMismatch) {
		message = deviceMismatchMessage
	}

	log.Info().Err(err).Msg("login rejected")
	utils.WriteJSON(w, models.LoginErrorResponse{Error: message}, http.StatusBadRequest)
}

// accessTest godoc
//
//	@Summary	Echo the claims of the caller
//	@Tags		access
//	@Produce	json
//	@Security	Bearer
//	@Success	200	{object}	models.CallerInfo
//	@Failure	401
//	@Failure	403
//	@Router		/api/v1/access/test [get]
func (h *Handler) accessTest(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, models.CallerInfo{
		User:       claims.Subject,
		NgoID:      claims.NgoID,
		ObserverID: claims.ObserverID,
		NgoAdminID: claims.NgoAdminID,
		Organizer:  claims.Organizer,
	}, http.StatusOK)
}
