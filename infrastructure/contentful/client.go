// ABOUTME: Contentful Content Delivery API client built on the injected HTTP client
// ABOUTME: Queries entries and content types and converts them into domain records

package contentful

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"catcare-web/core/domain"
	"catcare-web/core/errors"
	"catcare-web/core/interfaces"
	stdhttp "catcare-web/infrastructure/http/standard"
	"catcare-web/pkg/config"
)

const (
	// DefaultBaseURL is the public Content Delivery API host
	DefaultBaseURL = "https://cdn.contentful.com"

	// DefaultEnvironment is the environment used when none is configured
	DefaultEnvironment = "master"

	apiName = "contentful"
)

// Client talks to a single Contentful space and environment
type Client struct {
	httpClient  interfaces.HTTPClient
	baseURL     string
	spaceID     string
	environment string
	accessToken string
}

// NewHTTPClient builds the HTTP client for store requests. Each request is
// sent once; a failed fetch is reported to the caller without retrying.
func NewHTTPClient(cfg config.ContentfulConfig, opts ...stdhttp.Option) *stdhttp.StandardHTTPClient {
	opts = append(opts, stdhttp.WithMaxAttempts(1))
	return stdhttp.NewStandardHTTPClient(cfg.Timeout, opts...)
}

// NewClient creates a delivery client. Both the space id and the access token
// are required; a missing one is reported as a ConfigError.
func NewClient(cfg config.ContentfulConfig, httpClient interfaces.HTTPClient) (*Client, error) {
	if cfg.SpaceID == "" {
		return nil, &errors.ConfigError{Key: "CONTENTFUL_SPACE_ID", Message: "must be set"}
	}
	if cfg.AccessToken == "" {
		return nil, &errors.ConfigError{Key: "CONTENTFUL_ACCESS_TOKEN", Message: "must be set"}
	}
	if httpClient == nil {
		return nil, &errors.ConfigError{Key: "http_client", Message: "HTTP client not configured"}
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	environment := cfg.Environment
	if environment == "" {
		environment = DefaultEnvironment
	}

	return &Client{
		httpClient:  httpClient,
		baseURL:     baseURL,
		spaceID:     cfg.SpaceID,
		environment: environment,
		accessToken: cfg.AccessToken,
	}, nil
}

// GetEntries fetches entries matching the query, resolving linked assets from includes
func (c *Client) GetEntries(ctx context.Context, query domain.EntryQuery) (*domain.EntryCollection, error) {
	var payload entriesResponse
	if err := c.get(ctx, "entries", encodeQuery(query), &payload); err != nil {
		return nil, err
	}

	return payload.toDomain(), nil
}

// GetContentTypes lists the content types defined in the space
func (c *Client) GetContentTypes(ctx context.Context) ([]domain.ContentType, error) {
	var payload contentTypesResponse
	if err := c.get(ctx, "content_types", nil, &payload); err != nil {
		return nil, err
	}

	types := make([]domain.ContentType, 0, len(payload.Items))
	for _, item := range payload.Items {
		types = append(types, domain.ContentType{
			ID:           item.Sys.ID,
			Name:         item.Name,
			Description:  item.Description,
			DisplayField: item.DisplayField,
		})
	}
	return types, nil
}

// get performs a GET against the environment-scoped resource and decodes the JSON body
func (c *Client) get(ctx context.Context, resource string, params url.Values, out interface{}) error {
	endpoint := c.resourceURL(resource, params)

	resp, err := c.httpClient.Get(ctx, endpoint, interfaces.Headers{
		"Authorization": "Bearer " + c.accessToken,
	})
	if err != nil {
		return errors.WrapError(err, "contentful request failed")
	}
	defer resp.Body().Close()

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return errors.WrapError(err, "failed to read contentful response")
	}

	if resp.StatusCode() != http.StatusOK {
		return newAPIError(resp.StatusCode(), body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.WrapError(err, "failed to decode contentful response")
	}
	return nil
}

// resourceURL builds the full URL for a resource below the configured environment
func (c *Client) resourceURL(resource string, params url.Values) string {
	endpoint := fmt.Sprintf("%s/spaces/%s/environments/%s/%s",
		c.baseURL,
		url.PathEscape(c.spaceID),
		url.PathEscape(c.environment),
		resource,
	)
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}
	return endpoint
}

// encodeQuery converts an EntryQuery to CDA search parameters
func encodeQuery(query domain.EntryQuery) url.Values {
	params := url.Values{}
	if query.ContentType != "" {
		params.Set("content_type", query.ContentType)
	}
	if len(query.Order) > 0 {
		params.Set("order", strings.Join(query.Order, ","))
	}
	for field, value := range query.FieldEquals {
		params.Set("fields."+field, value)
	}
	if query.Limit > 0 {
		params.Set("limit", strconv.Itoa(query.Limit))
	}
	if query.Skip > 0 {
		params.Set("skip", strconv.Itoa(query.Skip))
	}
	if query.Include > 0 {
		params.Set("include", strconv.Itoa(query.Include))
	}
	return params
}

// newAPIError turns a non-200 response into an ExternalAPIError
func newAPIError(statusCode int, body []byte) error {
	message := http.StatusText(statusCode)

	var payload errorResponse
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		message = payload.Message
		if payload.Sys.ID != "" {
			message = payload.Sys.ID + ": " + payload.Message
		}
	}

	return &errors.ExternalAPIError{
		StatusCode: statusCode,
		Message:    message,
		API:        apiName,
	}
}
