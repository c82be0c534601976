// ABOUTME: Product recommendation and gallery image domain models
// ABOUTME: Both are read-only CMS entities fetched alongside articles

package domain

// ProductContentType is the CMS content type identifier for product recommendations
const ProductContentType = "productRecommendation"

// GalleryImageContentType is the CMS content type identifier for gallery images
const GalleryImageContentType = "galleryImage"

// ProductRecommendation is a recommended product with an affiliate link
type ProductRecommendation struct {
	ID            string
	Name          string
	Description   string
	Category      string
	ImageURL      string // optional
	AffiliateLink string
	Rationale     string
}

// GalleryImage is a captioned image from the gallery
type GalleryImage struct {
	ID       string
	Title    string
	Image    *Asset
	Caption  string
	Category string
}
