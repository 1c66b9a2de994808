package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "variant_price", NormalizeHeader("  Variant   Price "))
	assert.Equal(t, "body_(html)", NormalizeHeader("Body (HTML)"))
	assert.Equal(t, "name", NormalizeHeader("NAME"))
}

func TestLookupHeader_Aliases(t *testing.T) {
	groups := map[Field][]string{
		FieldName:               {"name", "Product Name", "Title"},
		FieldNameLocalized:      {"name_ar", "Arabic Name"},
		FieldSlug:               {"slug", "Handle"},
		FieldDescription:        {"description", "Body (HTML)", "body_html"},
		FieldCategory:           {"category", "Type", "Product Type"},
		FieldSubcategory:        {"subcategory", "sub category"},
		FieldPrice:              {"price", "Variant Price"},
		FieldCompareAtPrice:     {"compare_at_price", "Variant Compare At Price", "original price"},
		FieldDiscountPercentage: {"discount_percentage", "Discount"},
		FieldSKU:                {"sku", "Variant SKU"},
		FieldStockQuantity:      {"stock_quantity", "Stock", "Variant Inventory Qty"},
		FieldImage:              {"featured_image", "Image Src"},
		FieldImages:             {"images", "Gallery"},
		FieldTags:               {"tags", "Tag"},
		FieldIsFeatured:         {"is_featured", "Featured"},
		FieldIsOnSale:           {"is_on_sale", "On Sale"},
		FieldIsNew:              {"is_new", "New"},
	}

	for field, spellings := range groups {
		for _, s := range spellings {
			got, ok := LookupHeader(s)
			require.True(t, ok, "header %q", s)
			assert.Equal(t, field, got, "header %q", s)
		}
	}

	_, ok := LookupHeader("Variant Weight Unit")
	assert.False(t, ok)
}

func TestTemplateHeadersAreRecognized(t *testing.T) {
	for _, h := range TemplateHeaders {
		_, ok := LookupHeader(h)
		assert.True(t, ok, h)
	}
}

func TestHeaderMap_Record(t *testing.T) {
	m := MapHeaders([]string{"Title", "Weight", "name", "Price", "Tags"})
	assert.Equal(t, []Field{FieldName, FieldPrice, FieldTags}, m.Fields())

	t.Run("first non-empty value wins", func(t *testing.T) {
		raw := m.Record([]string{"", "2kg", "Snake Plant", "15", "indoor"})
		assert.Equal(t, "Snake Plant", raw.Get(FieldName))

		raw = m.Record([]string{"Pothos", "", "Ignored", "9", ""})
		assert.Equal(t, "Pothos", raw.Get(FieldName))
		assert.Nil(t, raw.Optional(FieldTags))
	})

	t.Run("short row leaves trailing fields unset", func(t *testing.T) {
		raw := m.Record([]string{"Fern", "1kg"})
		assert.Equal(t, "Fern", raw.Get(FieldName))
		assert.Equal(t, "", raw.Get(FieldPrice))
	})

	t.Run("values are trimmed", func(t *testing.T) {
		raw := m.Record([]string{"  Aloe  ", "", "", " 7.5 "})
		assert.Equal(t, "Aloe", raw.Get(FieldName))
		assert.Equal(t, "7.5", raw.Get(FieldPrice))
	})
}

func TestHeaderAliasEquivalence(t *testing.T) {
	a := MapHeaders([]string{"name", "price", "stock_quantity"}).Record([]string{"Cactus", "12", "4"})
	b := MapHeaders([]string{"Title", "Variant Price", "Variant Inventory Qty"}).Record([]string{"Cactus", "12", "4"})

	pa, ok := Product(a, 2)
	require.True(t, ok)
	pb, ok := Product(b, 2)
	require.True(t, ok)
	assert.Equal(t, pa, pb)
}
