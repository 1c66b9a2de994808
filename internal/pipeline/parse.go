package pipeline

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/verdante/import-service/internal/parsers/csv"
	"github.com/verdante/import-service/internal/parsers/wxr"
	"github.com/verdante/import-service/internal/parsers/xlsx"
	"github.com/verdante/import-service/internal/types"
)

// ParseProducts picks a reader by file extension and returns normalized products
func (p *Pipeline) ParseProducts(filename string, content []byte) (*types.ProductParseResult, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".csv", ".txt":
		return csv.NewParser(p.csvOptions).Parse(content)
	case ".tsv":
		opts := p.csvOptions
		opts.Delimiter = csv.DelimiterTab
		return csv.NewParser(opts).Parse(content)
	case ".xlsx":
		result, err := xlsx.NewParser(p.xlsxOptions).Parse(content)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
		}
		return result, nil
	default:
		return nil, fmt.Errorf("%w: %q (expected .csv, .tsv or .xlsx)", ErrUnsupportedFormat, ext)
	}
}

// ParseBlogPosts reads a WordPress export and returns normalized posts
func (p *Pipeline) ParseBlogPosts(content []byte) (*types.BlogParseResult, error) {
	return wxr.Parse(content)
}
