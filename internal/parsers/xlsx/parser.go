package xlsx

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/verdante/import-service/internal/normalize"
	"github.com/verdante/import-service/internal/types"
)

// ErrInvalidWorkbook is returned when the content is not a readable workbook
var ErrInvalidWorkbook = errors.New("invalid Excel workbook")

// Parser turns product spreadsheets into canonical product records.
// Headers go through the same alias table as CSV files.
type Parser struct {
	options Options
}

// NewParser creates a new XLSX parser
func NewParser(options Options) *Parser {
	return &Parser{options: options}
}

// Parse reads the selected sheet and normalizes every row below the header.
// The first non-blank row is the header. Blank rows are skipped; rows without
// a name are counted in Dropped.
func (p *Parser) Parse(content []byte) (*types.ProductParseResult, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkbook, err)
	}
	defer f.Close()

	sheetName, err := p.selectSheet(f)
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %q: %w", sheetName, err)
	}

	result := &types.ProductParseResult{
		Records: make([]types.ProductRecord, 0, len(rows)),
	}

	headerIdx := 0
	for headerIdx < len(rows) && isBlank(rows[headerIdx]) {
		headerIdx++
	}
	if headerIdx == len(rows) {
		log.Warn().Str("sheet", sheetName).Msg("Excel sheet is empty")
		return result, nil
	}

	headerMap := normalize.MapHeaders(rows[headerIdx])
	log.Debug().Str("sheet", sheetName).Interface("fields", headerMap.Fields()).Msg("Resolved Excel headers")

	for i := headerIdx + 1; i < len(rows); i++ {
		if isBlank(rows[i]) {
			continue
		}
		result.TotalRows++
		record, ok := normalize.Product(headerMap.Record(rows[i]), i+1)
		if !ok {
			result.Dropped++
			continue
		}
		result.Records = append(result.Records, record)
	}

	return result, nil
}

// selectSheet resolves the configured sheet by name, then by index
func (p *Parser) selectSheet(f *excelize.File) (string, error) {
	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return "", fmt.Errorf("%w: workbook has no sheets", ErrInvalidWorkbook)
	}

	if p.options.Sheet != "" {
		for _, name := range sheetList {
			if name == p.options.Sheet {
				return name, nil
			}
		}
		return "", fmt.Errorf("sheet %q not found. Available sheets: %s", p.options.Sheet, strings.Join(sheetList, ", "))
	}

	if p.options.SheetIndex < 0 || p.options.SheetIndex >= len(sheetList) {
		return "", fmt.Errorf("sheet index %d not found. Workbook has %d sheets", p.options.SheetIndex, len(sheetList))
	}
	return sheetList[p.options.SheetIndex], nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
