package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/adhdiary/internal/app"
	"github.com/MKhiriev/adhdiary/internal/logger"
	"github.com/MKhiriev/adhdiary/internal/service"
	"github.com/MKhiriev/adhdiary/internal/store"
	"github.com/MKhiriev/adhdiary/internal/utils"
	"github.com/MKhiriev/adhdiary/models"
)

func accountFromForm(r *http.Request) (models.Account, error) {
	if err := r.ParseForm(); err != nil {
		return models.Account{}, err
	}

	return models.Account{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}, nil
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	account, err := accountFromForm(r)
	if err != nil {
		log.Err(err).Msg("invalid form was passed")
		utils.SeeOther(w, r, "/signup?error="+app.ErrorInvalidSignup)
		return
	}

	created, err := h.services.AuthService.SignUp(r.Context(), account)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.SeeOther(w, r, "/signup?error="+app.ErrorInvalidSignup)
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			log.Err(err).Str("username", account.Username).Msg("username already exists")
			utils.SeeOther(w, r, "/signup?error="+app.ErrorUsernameExists)
		default:
			log.Err(err).Msg("unexpected error occurred during signup")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	log.Info().Int64("id", created.ID).Str("username", created.Username).Msg("account created")
	utils.SeeOther(w, r, "/login")
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	account, err := accountFromForm(r)
	if err != nil {
		log.Err(err).Msg("invalid form was passed")
		utils.SeeOther(w, r, "/login?error="+app.ErrorLoginFailed)
		return
	}

	found, err := h.services.AuthService.Login(ctx, account)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided) || errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Str("username", account.Username).Msg("no account was found/wrong password")
			utils.SeeOther(w, r, "/login?error="+app.ErrorLoginFailed)
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, found)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("id", found.ID).Msg("account successfully logged in")

	h.setSessionCookie(w, token)
	utils.SeeOther(w, r, "/")
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	utils.SeeOther(w, r, "/login")
}
