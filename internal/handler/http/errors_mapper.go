package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/adhdiary/internal/service"
	"github.com/MKhiriev/adhdiary/internal/store"
	"github.com/MKhiriev/adhdiary/models"
)

// errorStatuses is checked in order; the first sentinel found in the chain
// decides the status, so service-level errors take precedence over the store
// and model errors they wrap.
var errorStatuses = []struct {
	err    error
	status int
}{
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError},
	{service.ErrVersionIsNotSpecified, http.StatusInternalServerError},

	{models.ErrUnknownCategory, http.StatusNotFound},

	{store.ErrUsernameAlreadyExists, http.StatusConflict},
	{store.ErrAccountNotFound, http.StatusNotFound},
	{store.ErrRecordNotFound, http.StatusNotFound},
	{store.ErrRecordNotSaved, http.StatusInternalServerError},
	{store.ErrSavingImage, http.StatusInternalServerError},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, mapping := range errorStatuses {
		if errors.Is(err, mapping.err) {
			return mapping.status
		}
	}
	return http.StatusInternalServerError
}
