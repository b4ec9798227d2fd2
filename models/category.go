// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// ErrUnknownCategory is returned by [ParseCategory] when the given string
// does not name one of the four diary categories.
var ErrUnknownCategory = errors.New("unknown category")

// Category is the closed set of diary entry kinds. Every category owns its
// own table, field schema and display-title rule.
type Category string

const (
	// Book is a reading log entry.
	Book Category = "book"
	// Diet is a weight and meal entry.
	Diet Category = "diet"
	// Daily is a daily mood entry.
	Daily Category = "daily"
	// Food is a restaurant / food place entry.
	Food Category = "food"
)

// Categories lists every category in feed order.
var Categories = []Category{Book, Diet, Daily, Food}

// ParseCategory converts a routing segment into a [Category].
func ParseCategory(s string) (Category, error) {
	switch c := Category(s); c {
	case Book, Diet, Daily, Food:
		return c, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// String implements [fmt.Stringer].
func (c Category) String() string {
	return string(c)
}

// Table returns the name of the table holding records of this category.
func (c Category) Table() string {
	return string(c) + "_records"
}

// NewFields returns an empty, category-specific field set for c.
// It returns nil for an unknown category.
func (c Category) NewFields() RecordFields {
	switch c {
	case Book:
		return &BookFields{}
	case Diet:
		return &DietFields{}
	case Daily:
		return &DailyFields{}
	case Food:
		return &FoodFields{}
	default:
		return nil
	}
}
