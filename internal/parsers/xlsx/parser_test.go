package xlsx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// buildWorkbook writes rows to the named sheets and returns the xlsx bytes
func buildWorkbook(t *testing.T, sheets map[string][][]any, order ...string) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, name := range order {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", name))
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for r, row := range sheets[name] {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestParser_Parse(t *testing.T) {
	content := buildWorkbook(t, map[string][][]any{
		"Products": {
			{},
			{"Title", "Variant Price", "Variant Compare At Price", "Tags", "Featured"},
			{"Bird of Paradise", "89.00", "120", "indoor, large", "yes"},
			{"", "", "", "", ""},
			{"", "15", "", "", ""},
			{"Calathea", "35.5", "", "", ""},
		},
	}, "Products")

	result, err := NewParser(Options{}).Parse(content)
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalRows)
	assert.Equal(t, 1, result.Dropped)
	require.Len(t, result.Records, 2)

	bird := result.Records[0]
	assert.Equal(t, "Bird of Paradise", bird.Name)
	assert.Equal(t, "bird-of-paradise", bird.Slug)
	assert.Equal(t, 89.0, bird.Price)
	require.NotNil(t, bird.CompareAtPrice)
	assert.Equal(t, 120.0, *bird.CompareAtPrice)
	assert.True(t, bird.IsOnSale)
	assert.True(t, bird.IsFeatured)
	assert.Equal(t, []string{"indoor", "large"}, bird.Tags)
	assert.Equal(t, 3, bird.RowNumber)

	calathea := result.Records[1]
	assert.Equal(t, 35.5, calathea.Price)
	assert.Equal(t, 6, calathea.RowNumber)
}

func TestParser_SheetSelection(t *testing.T) {
	content := buildWorkbook(t, map[string][][]any{
		"Notes":     {{"just notes"}},
		"Catalogue": {{"name", "price"}, {"Fern", "12"}},
	}, "Notes", "Catalogue")

	result, err := NewParser(Options{Sheet: "Catalogue"}).Parse(content)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "Fern", result.Records[0].Name)

	result, err = NewParser(Options{SheetIndex: 1}).Parse(content)
	require.NoError(t, err)
	assert.Len(t, result.Records, 1)

	_, err = NewParser(Options{Sheet: "Missing"}).Parse(content)
	assert.Error(t, err)

	_, err = NewParser(Options{SheetIndex: 5}).Parse(content)
	assert.Error(t, err)
}

func TestParser_EmptySheet(t *testing.T) {
	content := buildWorkbook(t, map[string][][]any{"Sheet": {}}, "Sheet")
	result, err := NewParser(Options{}).Parse(content)
	require.NoError(t, err)
	assert.Empty(t, result.Records)
}

func TestParser_InvalidWorkbook(t *testing.T) {
	_, err := NewParser(Options{}).Parse([]byte("name,price\nFern,12\n"))
	assert.ErrorIs(t, err, ErrInvalidWorkbook)
}
