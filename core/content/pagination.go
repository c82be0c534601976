// ABOUTME: Pagination utilities for content listings
// ABOUTME: Slices an ordered listing into fixed-size pages for API responses

package content

// DefaultPerPage is used when a caller asks for a non-positive page size
const DefaultPerPage = 10

// Paginate returns one page of items. Pages are 1-based; a page past the end
// yields an empty, non-nil slice.
func Paginate[T any](items []T, page, perPage int) []T {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	// Compare page indexes before multiplying so huge inputs cannot overflow
	if len(items) == 0 || page-1 > (len(items)-1)/perPage {
		return []T{}
	}

	start := (page - 1) * perPage
	end := len(items)
	if perPage < end-start {
		end = start + perPage
	}

	return items[start:end]
}
