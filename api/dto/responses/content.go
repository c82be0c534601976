// ABOUTME: Response DTOs for the read-only content API
// ABOUTME: Articles, products and gallery images shaped for JSON clients

package responses

import "time"

// ArticleSummaryResponse represents an article in listings
type ArticleSummaryResponse struct {
	ID            string     `json:"id" doc:"Entry identifier"`
	Slug          string     `json:"slug" doc:"URL key of the article"`
	Title         string     `json:"title" doc:"Article headline"`
	Category      string     `json:"category" doc:"Raw category value"`
	CategoryLabel string     `json:"category_label" doc:"Display label for the category"`
	Excerpt       string     `json:"excerpt" doc:"Short teaser text"`
	ImageURL      string     `json:"image_url" doc:"Featured image URL or the placeholder image"`
	PublishDate   *time.Time `json:"publish_date,omitempty" doc:"Publication date"`
	URL           string     `json:"url" doc:"Site path of the article page"`
}

// ArticleResponse represents a full article
type ArticleResponse struct {
	ArticleSummaryResponse
	HTML string `json:"html" doc:"Article body rendered as HTML"`
	Text string `json:"text" doc:"Article body as plain text"`
}

// ArticleListResponse is the response for listing articles
type ArticleListResponse struct {
	Articles []ArticleSummaryResponse `json:"articles" doc:"Articles, newest first"`
	Total    int                      `json:"total" doc:"Number of matching articles across all pages"`
	Page     int                      `json:"page,omitempty" doc:"Current page number"`
	PerPage  int                      `json:"per_page,omitempty" doc:"Articles per page"`
}

// ProductResponse represents a product recommendation
type ProductResponse struct {
	ID            string `json:"id" doc:"Entry identifier"`
	Name          string `json:"name" doc:"Product name"`
	Description   string `json:"description" doc:"Product description"`
	Category      string `json:"category" doc:"Product category"`
	ImageURL      string `json:"image_url,omitempty" doc:"Product image URL"`
	AffiliateLink string `json:"affiliate_link" doc:"Where to buy"`
	Rationale     string `json:"rationale" doc:"Why it is recommended"`
}

// ProductListResponse is the response for listing products
type ProductListResponse struct {
	Products []ProductResponse `json:"products" doc:"Product recommendations"`
	Total    int               `json:"total" doc:"Number of products returned"`
}

// GalleryImageResponse represents a gallery image
type GalleryImageResponse struct {
	ID       string `json:"id" doc:"Entry identifier"`
	Title    string `json:"title" doc:"Image title"`
	Caption  string `json:"caption" doc:"Image caption"`
	Category string `json:"category" doc:"Image category"`
	ImageURL string `json:"image_url" doc:"Image URL or the placeholder image"`
}

// GalleryListResponse is the response for listing gallery images
type GalleryListResponse struct {
	Images []GalleryImageResponse `json:"images" doc:"Gallery images"`
	Total  int                    `json:"total" doc:"Number of images returned"`
}

// ContentTypeResponse describes one content model
type ContentTypeResponse struct {
	ID   string `json:"id" doc:"Content type API identifier"`
	Name string `json:"name" doc:"Content type display name"`
}

// DiagnosticsResponse summarizes the content store
type DiagnosticsResponse struct {
	ContentTypes     []ContentTypeResponse `json:"content_types" doc:"Content types defined in the space"`
	TotalEntries     int                   `json:"total_entries" doc:"Total number of entries"`
	FirstContentType string                `json:"first_content_type,omitempty" doc:"Content type of the first entry"`
}

// HealthResponse reports service liveness
type HealthResponse struct {
	Status    string    `json:"status" doc:"Service status" example:"ok"`
	Timestamp time.Time `json:"timestamp" doc:"Server time"`
}
