// ABOUTME: Raw entry models returned by the remote content store
// ABOUTME: Entries carry an untyped field bag that services decode into domain types

package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Entry is a single content record tagged with a content type and a field bag
type Entry struct {
	ID          string
	ContentType string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Fields      map[string]json.RawMessage
}

// EntryCollection is one page of entries plus the assets linked from them
type EntryCollection struct {
	Total  int
	Skip   int
	Limit  int
	Items  []Entry
	Assets map[string]*Asset
}

// EntryQuery describes an entries request against the content store
type EntryQuery struct {
	// ContentType restricts results to a single content type
	ContentType string

	// Order lists sort fields, prefixed with '-' for descending
	Order []string

	// FieldEquals holds equality filters keyed by field name (without "fields." prefix)
	FieldEquals map[string]string

	// Limit caps the number of items returned (0 means server default)
	Limit int

	// Skip offsets into the result set
	Skip int

	// Include is the link resolution depth
	Include int
}

// Key returns a deterministic string for the query, used as a cache key
func (q EntryQuery) Key() string {
	var b strings.Builder
	b.WriteString("entries:")
	b.WriteString(q.ContentType)
	b.WriteString("|order=")
	b.WriteString(strings.Join(q.Order, ","))

	fields := make([]string, 0, len(q.FieldEquals))
	for name := range q.FieldEquals {
		fields = append(fields, name)
	}
	sort.Strings(fields)
	for _, name := range fields {
		fmt.Fprintf(&b, "|%s=%s", name, q.FieldEquals[name])
	}

	fmt.Fprintf(&b, "|limit=%d|skip=%d|include=%d", q.Limit, q.Skip, q.Include)
	return b.String()
}

// ContentType describes a content model defined in the CMS
type ContentType struct {
	ID           string
	Name         string
	Description  string
	DisplayField string
}

// Diagnostics summarizes what the content store holds, for operator troubleshooting
type Diagnostics struct {
	ContentTypes     []ContentType
	TotalEntries     int
	FirstContentType string
}
