package models

import "fmt"

// BookFields is the field set of a [Book] record.
type BookFields struct {
	BookTitle string `json:"title"`
}

func (f *BookFields) Category() Category { return Book }
func (f *BookFields) Columns() []string  { return []string{"title"} }
func (f *BookFields) Values() []any      { return []any{f.BookTitle} }
func (f *BookFields) ScanDest() []any    { return []any{&f.BookTitle} }

func (f *BookFields) Set(column, value string) {
	if column == "title" {
		f.BookTitle = value
	}
}

func (f *BookFields) Missing() []string {
	return missing(map[string]string{"title": f.BookTitle}, "title")
}

func (f *BookFields) Title() string {
	return "📖 " + f.BookTitle
}

// DietFields is the field set of a [Diet] record.
type DietFields struct {
	Weight string `json:"weight"`
	Meal   string `json:"meal"`
}

func (f *DietFields) Category() Category { return Diet }
func (f *DietFields) Columns() []string  { return []string{"weight", "meal"} }
func (f *DietFields) Values() []any      { return []any{f.Weight, f.Meal} }
func (f *DietFields) ScanDest() []any    { return []any{&f.Weight, &f.Meal} }

func (f *DietFields) Set(column, value string) {
	switch column {
	case "weight":
		f.Weight = value
	case "meal":
		f.Meal = value
	}
}

func (f *DietFields) Missing() []string {
	return missing(map[string]string{"weight": f.Weight, "meal": f.Meal}, "weight", "meal")
}

func (f *DietFields) Title() string {
	return fmt.Sprintf("⚖️ %skg - %s", f.Weight, f.Meal)
}

// DailyFields is the field set of a [Daily] record.
type DailyFields struct {
	Emoji string `json:"emoji"`
}

func (f *DailyFields) Category() Category { return Daily }
func (f *DailyFields) Columns() []string  { return []string{"emoji"} }
func (f *DailyFields) Values() []any      { return []any{f.Emoji} }
func (f *DailyFields) ScanDest() []any    { return []any{&f.Emoji} }

func (f *DailyFields) Set(column, value string) {
	if column == "emoji" {
		f.Emoji = value
	}
}

func (f *DailyFields) Missing() []string {
	return missing(map[string]string{"emoji": f.Emoji}, "emoji")
}

func (f *DailyFields) Title() string {
	return f.Emoji + " Daily"
}

// FoodFields is the field set of a [Food] record.
type FoodFields struct {
	Place  string `json:"place"`
	Rating string `json:"rating"`
}

func (f *FoodFields) Category() Category { return Food }
func (f *FoodFields) Columns() []string  { return []string{"place", "rating"} }
func (f *FoodFields) Values() []any      { return []any{f.Place, f.Rating} }
func (f *FoodFields) ScanDest() []any    { return []any{&f.Place, &f.Rating} }

func (f *FoodFields) Set(column, value string) {
	switch column {
	case "place":
		f.Place = value
	case "rating":
		f.Rating = value
	}
}

// Missing treats rating as optional.
func (f *FoodFields) Missing() []string {
	return missing(map[string]string{"place": f.Place}, "place")
}

// Title shows the place only; rating stays in the detail fields.
func (f *FoodFields) Title() string {
	return "🍴 " + f.Place
}

func missing(values map[string]string, required ...string) []string {
	var empty []string
	for _, column := range required {
		if values[column] == "" {
			empty = append(empty, column)
		}
	}
	return empty
}
