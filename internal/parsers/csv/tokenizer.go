package csv

import (
	"strings"
)

// SplitLine splits one line into fields.
// The quote character toggles quoted state; delimiters inside quotes are data.
// Quote characters are dropped from the output and every field is trimmed.
func SplitLine(line string, delimiter Delimiter, quoteChar rune) []string {
	fields := make([]string, 0, 16)
	var current strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == quoteChar:
			inQuotes = !inQuotes
		case r == rune(delimiter) && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	fields = append(fields, strings.TrimSpace(current.String()))

	return fields
}

// Tokenize splits content into a header row and data rows.
// Blank lines are discarded; the first remaining line is the header.
func Tokenize(content string, opts Options) ([]string, []Row) {
	if opts.Delimiter == 0 {
		opts.Delimiter = DelimiterComma
	}
	if opts.QuoteChar == 0 {
		opts.QuoteChar = '"'
	}

	var header []string
	rows := make([]Row, 0)

	for i, line := range splitLines(content) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := SplitLine(line, opts.Delimiter, opts.QuoteChar)
		if header == nil {
			header = fields
			continue
		}
		rows = append(rows, Row{Line: i + 1, Fields: fields})
	}

	return header, rows
}

// splitLines splits content into lines handling different line endings
func splitLines(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	return strings.Split(content, "\n")
}
