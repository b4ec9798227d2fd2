package http

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/adhdiary/internal/app"
	"github.com/MKhiriev/adhdiary/internal/logger"
	"github.com/MKhiriev/adhdiary/internal/service"
	"github.com/MKhiriev/adhdiary/internal/store"
	"github.com/MKhiriev/adhdiary/internal/utils"
	"github.com/MKhiriev/adhdiary/models"
)

const (
	// maxMemoryForm is the part of a multipart form kept in memory; the rest
	// spills to temporary files.
	maxMemoryForm = 32 << 20
)

func categoryFromRequest(r *http.Request) (models.Category, bool) {
	category, err := models.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Send()
		return "", false
	}
	return category, true
}

func idFromRequest(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// recordFromForm reads the common and category-specific fields of a save
// form. The returned image is nil when no file was attached; the caller
// closes it.
func recordFromForm(r *http.Request, ownerID int64, category models.Category) (models.Record, multipart.File, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxMemoryForm); err != nil {
			return models.Record{}, nil, err
		}
	} else if err := r.ParseForm(); err != nil {
		return models.Record{}, nil, err
	}

	record := models.Record{
		OwnerID:  ownerID,
		Category: category,
		Date:     strings.TrimSpace(r.PostFormValue("date")),
		Memo:     strings.TrimSpace(r.PostFormValue("memo")),
		Fields:   category.NewFields(),
	}
	for _, column := range record.Fields.Columns() {
		record.Fields.Set(column, strings.TrimSpace(r.PostFormValue(column)))
	}

	file, header, err := r.FormFile("image")
	if err != nil || header.Filename == "" || header.Size == 0 {
		if file != nil {
			file.Close()
		}
		return record, nil, nil
	}

	return record, file, nil
}

func (h *Handler) saveRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	category, ok := categoryFromRequest(r)
	if !ok {
		utils.SeeOther(w, r, "/")
		return
	}
	categoryURL := "/" + category.String()

	record, file, err := recordFromForm(r, ownerID(r), category)
	if err != nil {
		log.Err(err).Msg("invalid form was passed")
		utils.SeeOther(w, r, categoryURL+"?error="+app.ErrorMissingFields)
		return
	}

	var image io.Reader
	if file != nil {
		defer file.Close()
		image = file
	}

	saved, err := h.services.RecordService.SaveRecord(r.Context(), record, image)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			log.Err(err).Str("category", category.String()).Msg("required fields are missing")
			utils.SeeOther(w, r, categoryURL+"?error="+app.ErrorMissingFields)
			return
		}
		log.Err(err).Str("category", category.String()).Msg("unexpected error occurred during saving record")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	log.Info().Str("category", category.String()).Int64("id", saved.ID).Msg("record saved")
	utils.SeeOther(w, r, categoryURL)
}

// deleteRecord always redirects to the feed: a missing or foreign record is
// silently ignored.
func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	category, ok := categoryFromRequest(r)
	id, idOK := idFromRequest(r)
	if ok && idOK {
		if err := h.services.RecordService.DeleteRecord(r.Context(), ownerID(r), category, id); err != nil {
			log.Err(err).Str("category", category.String()).Int64("id", id).Msg("error deleting record")
		}
	}

	utils.SeeOther(w, r, "/")
}

func (h *Handler) recordDetail(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	category, ok := categoryFromRequest(r)
	id, idOK := idFromRequest(r)
	if !ok || !idOK {
		utils.WriteJSON(w, notFoundResponse, http.StatusNotFound)
		return
	}

	record, err := h.services.RecordService.GetRecord(r.Context(), ownerID(r), category, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			utils.WriteJSON(w, notFoundResponse, http.StatusNotFound)
			return
		}
		log.Err(err).Str("category", category.String()).Int64("id", id).Msg("error getting record")
		status := statusFromError(err)
		message := strings.ToLower(http.StatusText(status))
		if status >= http.StatusInternalServerError {
			message = app.MsgInternalServerError
		}
		utils.WriteJSON(w, errorResponse{Error: message}, status)
		return
	}

	item := models.NewFeedItem(record)
	if item.Memo == "" {
		item.Memo = app.MsgNoContent
	}

	utils.WriteJSON(w, item, http.StatusOK)
}
