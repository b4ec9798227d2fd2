package models

// FeedItem is the category-independent display tuple used by the feed and
// the detail endpoint.
type FeedItem struct {
	ID        int64    `json:"id"`
	Type      Category `json:"type"`
	Title     string   `json:"title"`
	Date      string   `json:"date"`
	Memo      string   `json:"memo"`
	ImagePath string   `json:"image_path"`
}

// NewFeedItem maps a record to its display tuple.
func NewFeedItem(r Record) FeedItem {
	return FeedItem{
		ID:        r.ID,
		Type:      r.Category,
		Title:     r.Title(),
		Date:      r.Date,
		Memo:      r.Memo,
		ImagePath: r.ImagePath,
	}
}
