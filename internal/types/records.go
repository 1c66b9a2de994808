package types

import "time"

// EntityKind identifies what an import run persists
type EntityKind string

const (
	EntityProducts  EntityKind = "products"
	EntityBlogPosts EntityKind = "blog_posts"
)

// ParseEntityKind resolves an entity name as used in URLs and CLI arguments
func ParseEntityKind(s string) (EntityKind, bool) {
	switch s {
	case "products", "product":
		return EntityProducts, true
	case "blogs", "blog", "blog_posts", "posts":
		return EntityBlogPosts, true
	default:
		return "", false
	}
}

// ProductRecord is the canonical product produced by the normalizer
type ProductRecord struct {
	Name                 string   `json:"name"`
	NameLocalized        *string  `json:"nameLocalized,omitempty"`
	Slug                 string   `json:"slug"`
	Description          *string  `json:"description,omitempty"`
	DescriptionLocalized *string  `json:"descriptionLocalized,omitempty"`
	Category             string   `json:"category"`
	Subcategory          *string  `json:"subcategory,omitempty"`
	Price                float64  `json:"price"`
	CompareAtPrice       *float64 `json:"compareAtPrice,omitempty"`
	SKU                  *string  `json:"sku,omitempty"`
	StockQuantity        int      `json:"stockQuantity"`
	Images               []string `json:"images"`
	Tags                 []string `json:"tags"`
	IsFeatured           bool     `json:"isFeatured"`
	IsOnSale             bool     `json:"isOnSale"`
	IsNew                bool     `json:"isNew"`
	// RowNumber is the source line (CSV) or sheet row (XLSX), 1-based
	RowNumber int `json:"rowNumber"`
}

// BlogStatus is the publication state of an imported post
type BlogStatus string

const (
	BlogStatusPublished BlogStatus = "published"
	BlogStatusDraft     BlogStatus = "draft"
)

// BlogRecord is the canonical blog post produced by the WXR parser
type BlogRecord struct {
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	Excerpt       string     `json:"excerpt"`
	Slug          string     `json:"slug"`
	PublishedDate string     `json:"publishedDate"`
	Author        string     `json:"author"`
	Categories    []string   `json:"categories"`
	Tags          []string   `json:"tags"`
	Status        BlogStatus `json:"status"`
	// ReadingTime is the estimated reading time in minutes
	ReadingTime int `json:"readingTime"`
}

// ProductParseResult is the output of a product file parse
type ProductParseResult struct {
	Records []ProductRecord `json:"records"`
	// TotalRows counts data rows seen, including dropped ones
	TotalRows int `json:"totalRows"`
	// Dropped counts rows without a name
	Dropped int `json:"dropped"`
}

// BlogParseResult is the output of a WordPress export parse
type BlogParseResult struct {
	Records []BlogRecord `json:"records"`
	// TotalItems counts every item element in the document
	TotalItems int `json:"totalItems"`
	// Skipped counts items whose post type is not "post"
	Skipped int `json:"skipped"`
	// Dropped counts posts without a title
	Dropped int `json:"dropped"`
}

// ImportResult summarizes one import run
type ImportResult struct {
	RunID      string     `json:"runId"`
	Entity     EntityKind `json:"entity"`
	Total      int        `json:"total"`
	Success    int        `json:"success"`
	Failed     int        `json:"failed"`
	Errors     []string   `json:"errors"`
	StartedAt  time.Time  `json:"startedAt"`
	FinishedAt time.Time  `json:"finishedAt"`
}

// StringPtr returns a pointer to the given string
func StringPtr(s string) *string {
	return &s
}

// Float64Ptr returns a pointer to the given float64
func Float64Ptr(f float64) *float64 {
	return &f
}
