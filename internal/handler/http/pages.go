package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/adhdiary/internal/app"
	"github.com/MKhiriev/adhdiary/internal/logger"
	"github.com/MKhiriev/adhdiary/internal/utils"
	"github.com/MKhiriev/adhdiary/models"
)

// page holds the fields the shared layout reads.
type page struct {
	PageTitle string
	LoggedIn  bool
}

type authPageData struct {
	page
	Error string
}

type feedPageData struct {
	page
	Items []models.FeedItem
}

type categoryPageData struct {
	page
	Category models.Category
	Heading  string
	Columns  []string
	Required []string
	Today    string
	Error    string
	Records  []models.Record
}

var headings = map[models.Category]string{
	models.Book:  "📖 Book",
	models.Diet:  "⚖️ Diet",
	models.Daily: "🙂 Daily",
	models.Food:  "🍴 Food",
}

func (h *Handler) feedPage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	items, err := h.services.FeedService.BuildFeed(r.Context(), ownerID(r))
	if err != nil {
		log.Err(err).Msg("error building feed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	h.render(w, r, "feed.html", feedPageData{
		page:  page{PageTitle: "Feed", LoggedIn: true},
		Items: items,
	})
}

func (h *Handler) categoryPage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	category, ok := categoryFromRequest(r)
	if !ok {
		utils.SeeOther(w, r, "/")
		return
	}

	records, err := h.services.RecordService.ListRecords(r.Context(), ownerID(r), category)
	if err != nil {
		log.Err(err).Str("category", category.String()).Msg("error listing records")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	fields := category.NewFields()
	h.render(w, r, "category.html", categoryPageData{
		page:     page{PageTitle: headings[category], LoggedIn: true},
		Category: category,
		Heading:  headings[category],
		Columns:  fields.Columns(),
		Required: fields.Missing(),
		Today:    time.Now().Format(time.DateOnly),
		Error:    r.URL.Query().Get("error"),
		Records:  records,
	})
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	data := authPageData{page: page{PageTitle: "Log in"}}
	if r.URL.Query().Get("error") == app.ErrorLoginFailed {
		data.Error = app.ErrorLoginFailed
	}

	h.render(w, r, "login.html", data)
}

func (h *Handler) signupPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "signup.html", authPageData{
		page:  page{PageTitle: "Sign up"},
		Error: r.URL.Query().Get("error"),
	})
}

func (h *Handler) privacyPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "privacy.html", page{PageTitle: "Privacy"})
}
