// ABOUTME: Date and image URL formatting for rendered pages
// ABOUTME: Produces the display strings used on cards and article pages

package view

import (
	"strings"
	"time"

	"catcare-web/core/domain"
)

// PlaceholderImage is served when an article has no usable image
const PlaceholderImage = "/placeholder-cat.jpg"

const (
	longDateLayout  = "January 2, 2006"
	shortDateLayout = "Jan 2, 2006"
)

// FormatLongDate formats t as "March 15, 2024". The zero time yields "".
func FormatLongDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(longDateLayout)
}

// FormatShortDate formats t as "Mar 15, 2024". The zero time yields "".
func FormatShortDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(shortDateLayout)
}

// ImageURL returns an absolute URL for the asset's file, or the placeholder
// image when the asset or its file is missing. Protocol-relative URLs get https.
func ImageURL(asset *domain.Asset) string {
	if !asset.HasFile() {
		return PlaceholderImage
	}

	url := asset.File.URL
	if strings.HasPrefix(url, "//") {
		return "https:" + url
	}
	return url
}

// ImageAlt returns alt text for an image, falling back to the given title
func ImageAlt(asset *domain.Asset, fallback string) string {
	if asset != nil && asset.Title != "" {
		return asset.Title
	}
	if fallback != "" {
		return fallback
	}
	return "Article image"
}
