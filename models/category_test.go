package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Category
		wantErr bool
	}{
		{name: "book", input: "book", want: Book},
		{name: "diet", input: "diet", want: Diet},
		{name: "daily", input: "daily", want: Daily},
		{name: "food", input: "food", want: Food},
		{name: "unknown", input: "movie", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "case sensitive", input: "Book", wantErr: true},
		{name: "reserved route", input: "login", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnknownCategory)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategory_Table(t *testing.T) {
	assert.Equal(t, "book_records", Book.Table())
	assert.Equal(t, "diet_records", Diet.Table())
	assert.Equal(t, "daily_records", Daily.Table())
	assert.Equal(t, "food_records", Food.Table())
}

func TestCategory_NewFields_MatchesCategory(t *testing.T) {
	for _, c := range Categories {
		fields := c.NewFields()
		require.NotNil(t, fields, c)
		assert.Equal(t, c, fields.Category())
		assert.Len(t, fields.Values(), len(fields.Columns()))
		assert.Len(t, fields.ScanDest(), len(fields.Columns()))
	}

	assert.Nil(t, Category("movie").NewFields())
}

func TestRecordFields_Title(t *testing.T) {
	tests := []struct {
		name   string
		fields RecordFields
		want   string
	}{
		{name: "book", fields: &BookFields{BookTitle: "Dune"}, want: "📖 Dune"},
		{name: "diet", fields: &DietFields{Weight: "70", Meal: "salad"}, want: "⚖️ 70kg - salad"},
		{name: "daily", fields: &DailyFields{Emoji: "😀"}, want: "😀 Daily"},
		{name: "food without rating", fields: &FoodFields{Place: "Noodle Bar"}, want: "🍴 Noodle Bar"},
		{name: "food rating is not part of the title", fields: &FoodFields{Place: "Noodle Bar", Rating: "5"}, want: "🍴 Noodle Bar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fields.Title())
		})
	}
}

func TestRecordFields_SetAndMissing(t *testing.T) {
	diet := Diet.NewFields()
	assert.Equal(t, []string{"weight", "meal"}, diet.Missing())

	diet.Set("weight", "70")
	diet.Set("unknown", "ignored")
	assert.Equal(t, []string{"meal"}, diet.Missing())

	diet.Set("meal", "rice")
	assert.Empty(t, diet.Missing())
	assert.Equal(t, []any{"70", "rice"}, diet.Values())

	food := Food.NewFields()
	food.Set("place", "Cafe")
	assert.Empty(t, food.Missing(), "rating is optional")
}

func TestRecord_TitleWithoutFields(t *testing.T) {
	assert.Empty(t, Record{}.Title())
}

func TestNewFeedItem(t *testing.T) {
	r := Record{
		ID:        7,
		OwnerID:   1,
		Category:  Book,
		Date:      "2025-03-01",
		Memo:      "good",
		ImagePath: "/uploads/a.jpg",
		Fields:    &BookFields{BookTitle: "Dune"},
	}

	item := NewFeedItem(r)

	assert.Equal(t, FeedItem{
		ID:        7,
		Type:      Book,
		Title:     "📖 Dune",
		Date:      "2025-03-01",
		Memo:      "good",
		ImagePath: "/uploads/a.jpg",
	}, item)
}
