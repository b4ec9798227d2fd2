package models

// Record is a single diary entry of any category.
//
// Fields common to every category live on Record itself; the
// category-specific part is held by Fields, whose concrete type always
// matches Category.
type Record struct {
	// ID is the table-local identifier assigned by the database.
	ID int64 `json:"id"`

	// OwnerID is the id of the account the record belongs to.
	OwnerID int64 `json:"-"`

	// Category selects the table and the concrete type of Fields.
	Category Category `json:"type"`

	// Date is free-form text; callers are expected to send YYYY-MM-DD.
	Date string `json:"date"`

	// Memo is the optional free text of the entry.
	Memo string `json:"memo"`

	// ImagePath is the public path or URL of the attached image, empty when
	// no image was saved.
	ImagePath string `json:"image_path"`

	// Fields holds the category-specific columns.
	Fields RecordFields `json:"fields"`
}

// Title returns the display title of the record.
func (r Record) Title() string {
	if r.Fields == nil {
		return ""
	}
	return r.Fields.Title()
}

// RecordFields is the category-specific part of a [Record].
type RecordFields interface {
	// Category reports which category the field set belongs to.
	Category() Category

	// Columns returns the table column names in a fixed order.
	Columns() []string

	// Values returns the column values in the order of Columns.
	Values() []any

	// ScanDest returns pointers to the fields in the order of Columns.
	ScanDest() []any

	// Set assigns a field by its column name. Unknown names are ignored.
	Set(column, value string)

	// Missing returns the column names of required fields that are empty.
	Missing() []string

	// Title formats the display title shown in the feed and detail view.
	Title() string
}
