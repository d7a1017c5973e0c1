package model

import (
	"fmt"
	"strings"
)

// Category identifies one GeekNews listing page.
type Category string

// Valid categories. The set is closed; anything else is caller error.
const (
	CategoryTop  Category = "top"
	CategoryNew  Category = "new"
	CategoryAsk  Category = "ask"
	CategoryShow Category = "show"
)

// Categories lists every valid category.
var Categories = []Category{CategoryTop, CategoryNew, CategoryAsk, CategoryShow}

// ParseCategory maps a raw string onto the closed category set.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryTop:
		return CategoryTop, nil
	case CategoryNew:
		return CategoryNew, nil
	case CategoryAsk:
		return CategoryAsk, nil
	case CategoryShow:
		return CategoryShow, nil
	}
	return "", fmt.Errorf("unknown category %q (valid: top, new, ask, show)", s)
}

// Path returns the listing path suffix for the category. The top
// listing lives at the site root.
func (c Category) Path() string {
	if c == CategoryTop {
		return ""
	}
	return "/" + string(c)
}

func (c Category) String() string {
	return string(c)
}
