// ABOUTME: Content source interface abstracts the remote headless CMS
// ABOUTME: Lets services be tested against a fake store instead of the network

package interfaces

import (
	"context"

	"catcare-web/core/domain"
)

// ContentSource queries a remote content store.
// Implementations return errors; callers decide how to degrade.
type ContentSource interface {
	// GetEntries returns the entries matching the query together with the
	// assets linked from them.
	GetEntries(ctx context.Context, query domain.EntryQuery) (*domain.EntryCollection, error)

	// GetContentTypes lists the content models defined in the store.
	GetContentTypes(ctx context.Context) ([]domain.ContentType, error)
}
