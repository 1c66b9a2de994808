package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/verdante/import-service/internal/settings"
	"github.com/verdante/import-service/internal/types"
)

// Repository writes imported records and site settings to PostgreSQL.
// Insert failures are returned as *store.Error.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a repository on the given pool
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// InsertProduct inserts one product row
func (r *Repository) InsertProduct(ctx context.Context, p types.ProductRecord) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO products (
			id, name, name_ar, slug, description, description_ar,
			category, subcategory, price, compare_at_price, sku,
			stock_quantity, images, tags, is_featured, is_on_sale, is_new
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17
		)
	`,
		uuid.New().String(), p.Name, p.NameLocalized, p.Slug, p.Description, p.DescriptionLocalized,
		p.Category, p.Subcategory, p.Price, p.CompareAtPrice, p.SKU,
		p.StockQuantity, nonNil(p.Images), nonNil(p.Tags), p.IsFeatured, p.IsOnSale, p.IsNew,
	)
	return classify(err, fmt.Sprintf("product %q", p.Slug))
}

// InsertBlogPost inserts one blog post row
func (r *Repository) InsertBlogPost(ctx context.Context, b types.BlogRecord) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO blog_posts (
			id, title, slug, content, excerpt, author, published_date,
			categories, tags, status, reading_time
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)
	`,
		uuid.New().String(), b.Title, b.Slug, b.Content, b.Excerpt, b.Author, b.PublishedDate,
		nonNil(b.Categories), nonNil(b.Tags), string(b.Status), b.ReadingTime,
	)
	return classify(err, fmt.Sprintf("blog post %q", b.Slug))
}

// GetSettings loads a settings section, falling back to its defaults when
// nothing has been saved yet
func (r *Repository) GetSettings(ctx context.Context, name settings.SectionName) (settings.Section, error) {
	var raw []byte
	err := r.pool.QueryRow(ctx, `SELECT value FROM site_settings WHERE section = $1`, string(name)).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return settings.Defaults(name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s settings: %w", name, err)
	}
	return settings.Decode(name, raw)
}

// PutSettings validates and upserts a settings section
func (r *Repository) PutSettings(ctx context.Context, section settings.Section) error {
	if err := section.Validate(); err != nil {
		return err
	}
	raw, err := json.Marshal(section)
	if err != nil {
		return fmt.Errorf("failed to encode %s settings: %w", section.Name(), err)
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO site_settings (section, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (section) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at
	`, string(section.Name()), raw)
	if err != nil {
		return fmt.Errorf("failed to save %s settings: %w", section.Name(), err)
	}
	return nil
}

// nonNil keeps NOT NULL array columns satisfied
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
