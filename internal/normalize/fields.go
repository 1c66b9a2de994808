package normalize

import (
	"sort"
	"strings"
)

// Field is a canonical product field name
type Field string

const (
	FieldName                 Field = "name"
	FieldNameLocalized        Field = "name_localized"
	FieldSlug                 Field = "slug"
	FieldDescription          Field = "description"
	FieldDescriptionLocalized Field = "description_localized"
	FieldCategory             Field = "category"
	FieldSubcategory          Field = "subcategory"
	FieldPrice                Field = "price"
	FieldCompareAtPrice       Field = "compare_at_price"
	FieldDiscountPercentage   Field = "discount_percentage"
	FieldSKU                  Field = "sku"
	FieldStockQuantity        Field = "stock_quantity"
	FieldImage                Field = "image"
	FieldImages               Field = "images"
	FieldTags                 Field = "tags"
	FieldIsFeatured           Field = "is_featured"
	FieldIsOnSale             Field = "is_on_sale"
	FieldIsNew                Field = "is_new"
)

// headerAliases maps normalized header spellings to canonical fields.
// Spreadsheet exports from hosted storefronts use "Variant Price" style headers,
// which normalize to variant_price.
var headerAliases = map[string]Field{
	"name":         FieldName,
	"product_name": FieldName,
	"title":        FieldName,

	"name_ar":        FieldNameLocalized,
	"arabic_name":    FieldNameLocalized,
	"name_localized": FieldNameLocalized,

	"slug":   FieldSlug,
	"handle": FieldSlug,

	"description": FieldDescription,
	"body":        FieldDescription,
	"body_html":   FieldDescription,
	"body_(html)": FieldDescription,

	"description_ar":        FieldDescriptionLocalized,
	"arabic_description":    FieldDescriptionLocalized,
	"description_localized": FieldDescriptionLocalized,

	"category":     FieldCategory,
	"type":         FieldCategory,
	"product_type": FieldCategory,

	"subcategory":  FieldSubcategory,
	"sub_category": FieldSubcategory,

	"price":         FieldPrice,
	"variant_price": FieldPrice,

	"compare_at_price":         FieldCompareAtPrice,
	"variant_compare_at_price": FieldCompareAtPrice,
	"compare_price":            FieldCompareAtPrice,
	"original_price":           FieldCompareAtPrice,

	"discount_percentage": FieldDiscountPercentage,
	"discount":            FieldDiscountPercentage,
	"discount_percent":    FieldDiscountPercentage,

	"sku":         FieldSKU,
	"variant_sku": FieldSKU,

	"stock_quantity":        FieldStockQuantity,
	"stock":                 FieldStockQuantity,
	"quantity":              FieldStockQuantity,
	"inventory":             FieldStockQuantity,
	"variant_inventory_qty": FieldStockQuantity,

	"featured_image": FieldImage,
	"image":          FieldImage,
	"image_src":      FieldImage,
	"image_url":      FieldImage,

	"images":         FieldImages,
	"gallery":        FieldImages,
	"gallery_images": FieldImages,

	"tags": FieldTags,
	"tag":  FieldTags,

	"is_featured": FieldIsFeatured,
	"featured":    FieldIsFeatured,

	"is_on_sale": FieldIsOnSale,
	"on_sale":    FieldIsOnSale,
	"sale":       FieldIsOnSale,

	"is_new": FieldIsNew,
	"new":    FieldIsNew,
}

// TemplateHeaders is the documented header row for product CSV files
var TemplateHeaders = []string{
	"name", "name_ar", "category", "subcategory", "price", "compare_at_price",
	"discount_percentage", "sku", "stock_quantity", "featured_image", "images", "tags",
	"is_featured", "is_on_sale", "is_new", "description", "description_ar",
}

// NormalizeHeader lowercases a header and collapses whitespace runs to a single underscore
func NormalizeHeader(h string) string {
	return strings.Join(strings.Fields(strings.ToLower(h)), "_")
}

// LookupHeader returns the canonical field for a raw header, if any
func LookupHeader(h string) (Field, bool) {
	f, ok := headerAliases[NormalizeHeader(h)]
	return f, ok
}

// HeaderMap maps column indices to canonical fields
type HeaderMap map[int]Field

// MapHeaders resolves a header row. Unrecognized headers are left out.
func MapHeaders(headers []string) HeaderMap {
	m := make(HeaderMap, len(headers))
	for i, h := range headers {
		if f, ok := LookupHeader(h); ok {
			m[i] = f
		}
	}
	return m
}

// Fields returns the distinct canonical fields present in the map, in column order
func (m HeaderMap) Fields() []Field {
	indices := make([]int, 0, len(m))
	for i := range m {
		indices = append(indices, i)
	}
	sort.Ints(indices)

	seen := make(map[Field]bool, len(m))
	fields := make([]Field, 0, len(m))
	for _, i := range indices {
		f := m[i]
		if seen[f] {
			continue
		}
		seen[f] = true
		fields = append(fields, f)
	}
	return fields
}

// RawRecord holds raw string values keyed by canonical field
type RawRecord map[Field]string

// Record builds a RawRecord from one row of values.
// When several columns map to the same field the first non-empty value wins.
func (m HeaderMap) Record(values []string) RawRecord {
	raw := make(RawRecord, len(m))
	for i := 0; i < len(values); i++ {
		f, ok := m[i]
		if !ok {
			continue
		}
		v := strings.TrimSpace(values[i])
		if v == "" {
			continue
		}
		if _, exists := raw[f]; exists {
			continue
		}
		raw[f] = v
	}
	return raw
}

// Get returns the value for a field, empty when unset
func (r RawRecord) Get(f Field) string {
	return r[f]
}

// Optional returns a pointer to the value, nil when unset
func (r RawRecord) Optional(f Field) *string {
	v, ok := r[f]
	if !ok || v == "" {
		return nil
	}
	return &v
}
