package store

import (
	"context"
	"sync"

	"github.com/verdante/import-service/internal/types"
)

// Memory keeps records in maps keyed by slug.
// It enforces the same uniqueness rules as the database tables.
type Memory struct {
	mu       sync.RWMutex
	products map[string]types.ProductRecord
	posts    map[string]types.BlogRecord
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{
		products: make(map[string]types.ProductRecord),
		posts:    make(map[string]types.BlogRecord),
	}
}

// InsertProduct stores a product, rejecting duplicate slugs and SKUs
func (m *Memory) InsertProduct(ctx context.Context, record types.ProductRecord) error {
	if err := ctx.Err(); err != nil {
		return NewError(CodeInternal, err, "insert cancelled: %v", err)
	}
	if record.Slug == "" {
		return NewError(CodeInvalid, nil, "product slug is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.products[record.Slug]; exists {
		return NewError(CodeDuplicate, nil, "product with slug %q already exists", record.Slug)
	}
	if record.SKU != nil {
		for _, existing := range m.products {
			if existing.SKU != nil && *existing.SKU == *record.SKU {
				return NewError(CodeDuplicate, nil, "product with sku %q already exists", *record.SKU)
			}
		}
	}

	m.products[record.Slug] = record
	return nil
}

// InsertBlogPost stores a post, rejecting duplicate slugs
func (m *Memory) InsertBlogPost(ctx context.Context, record types.BlogRecord) error {
	if err := ctx.Err(); err != nil {
		return NewError(CodeInternal, err, "insert cancelled: %v", err)
	}
	if record.Slug == "" {
		return NewError(CodeInvalid, nil, "blog post slug is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.posts[record.Slug]; exists {
		return NewError(CodeDuplicate, nil, "blog post with slug %q already exists", record.Slug)
	}

	m.posts[record.Slug] = record
	return nil
}

// Product returns a stored product by slug
func (m *Memory) Product(slug string) (types.ProductRecord, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.products[slug]
	return p, ok
}

// BlogPost returns a stored post by slug
func (m *Memory) BlogPost(slug string) (types.BlogRecord, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.posts[slug]
	return p, ok
}

// Counts returns the number of stored products and posts
func (m *Memory) Counts() (products, posts int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.products), len(m.posts)
}
