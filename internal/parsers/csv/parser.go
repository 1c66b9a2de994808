package csv

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/verdante/import-service/internal/normalize"
	"github.com/verdante/import-service/internal/parsers/charset"
	"github.com/verdante/import-service/internal/types"
)

// Parser turns product CSV files into canonical product records
type Parser struct {
	options Options
}

// NewParser creates a new CSV parser with the given options
func NewParser(options Options) *Parser {
	if options.Delimiter == 0 {
		options.Delimiter = DelimiterComma
	}
	if options.QuoteChar == 0 {
		options.QuoteChar = '"'
	}
	return &Parser{options: options}
}

// Parse decodes content and normalizes every data row.
// Rows without a name are counted in Dropped and left out of Records.
func (p *Parser) Parse(content []byte) (*types.ProductParseResult, error) {
	decoded, err := charset.Decode(content, charset.DetectEncoding(content))
	if err != nil {
		return nil, fmt.Errorf("failed to decode content: %w", err)
	}

	header, rows := Tokenize(decoded, p.options)
	result := &types.ProductParseResult{
		Records: make([]types.ProductRecord, 0, len(rows)),
	}
	if header == nil {
		return result, nil
	}

	headerMap := normalize.MapHeaders(header)
	log.Debug().Int("columns", len(header)).Interface("fields", headerMap.Fields()).Msg("Resolved CSV headers")

	for _, row := range rows {
		result.TotalRows++
		record, ok := normalize.Product(headerMap.Record(row.Fields), row.Line)
		if !ok {
			result.Dropped++
			continue
		}
		result.Records = append(result.Records, record)
	}

	return result, nil
}
