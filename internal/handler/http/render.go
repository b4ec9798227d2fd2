package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"slices"
	"strings"

	"github.com/MKhiriev/adhdiary/internal/logger"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pages = template.Must(
	template.New("pages").
		Funcs(template.FuncMap{
			"contains": slices.Contains[[]string],
			"label":    fieldLabel,
		}).
		ParseFS(templatesFS, "templates/*.html"),
)

// fieldLabel turns a column name into a form label.
func fieldLabel(column string) string {
	if column == "" {
		return ""
	}
	return strings.ToUpper(column[:1]) + column[1:]
}

// render executes the named page into a buffer first so that a template
// error produces a clean 500 instead of a half-written page.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		logger.FromRequest(r).Err(err).Str("template", name).Msg("error rendering page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}
