package normalize

import (
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/verdante/import-service/internal/types"
)

const (
	// DefaultCategory is used when a row has no category
	DefaultCategory = "general"
	// DefaultStockQuantity is used when a row has no parseable stock value
	DefaultStockQuantity = 10
)

// Product converts a raw record into a canonical product.
// It returns false when the row has no name and must be dropped.
func Product(raw RawRecord, rowNumber int) (types.ProductRecord, bool) {
	name := strings.TrimSpace(raw.Get(FieldName))
	if name == "" {
		return types.ProductRecord{}, false
	}

	slug := raw.Get(FieldSlug)
	if slug == "" {
		slug = Slugify(name)
	}

	category := raw.Get(FieldCategory)
	if category == "" {
		category = DefaultCategory
	}

	price := 0.0
	if v := raw.Get(FieldPrice); v != "" {
		parsed, err := ParsePrice(v)
		if err != nil {
			log.Debug().Int("row", rowNumber).Str("value", v).Err(err).Msg("Price parse failed, using 0")
		} else if parsed > 0 {
			price = parsed
		}
	}

	var compareAt *float64
	if v := raw.Get(FieldCompareAtPrice); v != "" {
		// negative compare-at prices are treated as unset
		if parsed, err := ParsePrice(v); err == nil && parsed >= 0 {
			compareAt = &parsed
		}
	}
	if compareAt == nil {
		if v := raw.Get(FieldDiscountPercentage); v != "" {
			if discount, err := ParsePercentage(v); err == nil {
				if derived, ok := CompareAtFromDiscount(price, discount); ok {
					compareAt = &derived
				}
			}
		}
	}

	images := make([]string, 0, 4)
	if primary := raw.Get(FieldImage); primary != "" {
		images = append(images, primary)
	}
	images = append(images, SplitList(raw.Get(FieldImages), "|")...)

	onSale := ParseFlag(raw.Get(FieldIsOnSale)) || (compareAt != nil && *compareAt > price)

	return types.ProductRecord{
		Name:                 name,
		NameLocalized:        raw.Optional(FieldNameLocalized),
		Slug:                 slug,
		Description:          raw.Optional(FieldDescription),
		DescriptionLocalized: raw.Optional(FieldDescriptionLocalized),
		Category:             category,
		Subcategory:          raw.Optional(FieldSubcategory),
		Price:                price,
		CompareAtPrice:       compareAt,
		SKU:                  raw.Optional(FieldSKU),
		StockQuantity:        parseStock(raw.Get(FieldStockQuantity)),
		Images:               images,
		Tags:                 SplitList(raw.Get(FieldTags), ","),
		IsFeatured:           ParseFlag(raw.Get(FieldIsFeatured)),
		IsOnSale:             onSale,
		IsNew:                ParseFlag(raw.Get(FieldIsNew)),
		RowNumber:            rowNumber,
	}, true
}

// parseStock parses an integer stock count, truncating decimals ("12.0" -> 12).
// Counts outside the int32 range of the stock column fall back to the default.
func parseStock(v string) int {
	v = strings.TrimSpace(v)
	if v == "" {
		return DefaultStockQuantity
	}
	if n, err := strconv.ParseInt(v, 10, 32); err == nil {
		return int(n)
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return DefaultStockQuantity
	}
	f = math.Trunc(f)
	if f < math.MinInt32 || f > math.MaxInt32 {
		return DefaultStockQuantity
	}
	return int(f)
}
