// ABOUTME: Wire types for Contentful Content Delivery API responses
// ABOUTME: Converts the JSON envelope and includes into domain collections

package contentful

import (
	"encoding/json"
	"time"

	"catcare-web/core/domain"
)

type sys struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	LinkType    string    `json:"linkType,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	ContentType *struct {
		Sys struct {
			ID string `json:"id"`
		} `json:"sys"`
	} `json:"contentType,omitempty"`
}

type entriesResponse struct {
	Total    int         `json:"total"`
	Skip     int         `json:"skip"`
	Limit    int         `json:"limit"`
	Items    []entryJSON `json:"items"`
	Includes struct {
		Asset []assetJSON `json:"Asset"`
	} `json:"includes"`
}

type entryJSON struct {
	Sys    sys                        `json:"sys"`
	Fields map[string]json.RawMessage `json:"fields"`
}

type assetJSON struct {
	Sys    sys `json:"sys"`
	Fields struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		File        *struct {
			URL         string `json:"url"`
			FileName    string `json:"fileName"`
			ContentType string `json:"contentType"`
			Details     struct {
				Size  int64 `json:"size"`
				Image *struct {
					Width  int `json:"width"`
					Height int `json:"height"`
				} `json:"image,omitempty"`
			} `json:"details"`
		} `json:"file,omitempty"`
	} `json:"fields"`
}

type contentTypesResponse struct {
	Items []struct {
		Sys          sys    `json:"sys"`
		Name         string `json:"name"`
		Description  string `json:"description"`
		DisplayField string `json:"displayField"`
	} `json:"items"`
}

type errorResponse struct {
	Sys struct {
		ID string `json:"id"`
	} `json:"sys"`
	Message   string `json:"message"`
	RequestID string `json:"requestId"`
}

// toDomain converts the response envelope into a domain collection
func (r *entriesResponse) toDomain() *domain.EntryCollection {
	collection := &domain.EntryCollection{
		Total:  r.Total,
		Skip:   r.Skip,
		Limit:  r.Limit,
		Items:  make([]domain.Entry, 0, len(r.Items)),
		Assets: make(map[string]*domain.Asset, len(r.Includes.Asset)),
	}

	for _, item := range r.Items {
		entry := domain.Entry{
			ID:        item.Sys.ID,
			CreatedAt: item.Sys.CreatedAt,
			UpdatedAt: item.Sys.UpdatedAt,
			Fields:    item.Fields,
		}
		if item.Sys.ContentType != nil {
			entry.ContentType = item.Sys.ContentType.Sys.ID
		}
		if entry.Fields == nil {
			entry.Fields = map[string]json.RawMessage{}
		}
		collection.Items = append(collection.Items, entry)
	}

	for _, raw := range r.Includes.Asset {
		collection.Assets[raw.Sys.ID] = raw.toDomain()
	}

	return collection
}

// toDomain converts an included asset
func (a *assetJSON) toDomain() *domain.Asset {
	asset := &domain.Asset{
		ID:          a.Sys.ID,
		Title:       a.Fields.Title,
		Description: a.Fields.Description,
	}

	if f := a.Fields.File; f != nil {
		asset.File = &domain.AssetFile{
			URL:         f.URL,
			FileName:    f.FileName,
			ContentType: f.ContentType,
			Size:        f.Details.Size,
		}
		if f.Details.Image != nil {
			asset.File.Width = f.Details.Image.Width
			asset.File.Height = f.Details.Image.Height
		}
	}

	return asset
}
