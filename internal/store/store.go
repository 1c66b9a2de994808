// Package store defines the persistence collaborator the import pipeline
// writes through, plus an in-memory implementation.
package store

import (
	"context"

	"github.com/verdante/import-service/internal/types"
)

// ProductInserter persists one canonical product
type ProductInserter interface {
	InsertProduct(ctx context.Context, record types.ProductRecord) error
}

// BlogPostInserter persists one canonical blog post
type BlogPostInserter interface {
	InsertBlogPost(ctx context.Context, record types.BlogRecord) error
}

// Inserter persists both entity kinds
type Inserter interface {
	ProductInserter
	BlogPostInserter
}
