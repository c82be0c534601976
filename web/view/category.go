// ABOUTME: Category presentation helpers for article badges
// ABOUTME: Maps raw category values to badge styles and display labels

package view

import (
	"strings"

	"catcare-web/core/domain"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Badge styles per known category
var categoryStyles = map[domain.Category]string{
	domain.CategoryCareTasks: "bg-blue-100 text-blue-800",
	domain.CategoryBehavior:  "bg-purple-100 text-purple-800",
	domain.CategoryGeneral:   "bg-gray-100 text-gray-800",
}

var upper = cases.Upper(language.English)

// CategoryStyle returns the badge style for a category. Unknown categories
// use the general style.
func CategoryStyle(category domain.Category) string {
	if style, ok := categoryStyles[category]; ok {
		return style
	}
	return categoryStyles[domain.CategoryGeneral]
}

// CategoryLabel returns the display label: the first hyphen becomes a space
// and the result is upper-cased ("care-tasks" -> "CARE TASKS").
func CategoryLabel(category domain.Category) string {
	return upper.String(strings.Replace(string(category), "-", " ", 1))
}

// CategoryPath returns the listing route for a known category, or "" for others
func CategoryPath(category domain.Category) string {
	switch category {
	case domain.CategoryCareTasks, domain.CategoryBehavior:
		return "/" + string(category)
	default:
		return ""
	}
}
