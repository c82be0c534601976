// ABOUTME: Asset domain model represents a media file attached to CMS entries
// ABOUTME: Assets are referenced by link from entries and resolved from response includes

package domain

// Asset is a media asset (usually an image) stored in the CMS
type Asset struct {
	ID          string
	Title       string
	Description string

	// File is nil when the asset has no uploaded file
	File *AssetFile
}

// AssetFile describes the uploaded file behind an asset
type AssetFile struct {
	// URL is usually protocol-relative, e.g. //images.ctfassets.net/...
	URL         string
	FileName    string
	ContentType string
	Size        int64
	Width       int
	Height      int
}

// HasFile reports whether the asset points to an actual file
func (a *Asset) HasFile() bool {
	return a != nil && a.File != nil && a.File.URL != ""
}
